package kvcache

// Hooks lightweight callbacks for high-signal events.
// Implementations MUST be cheap and non-blocking.
// The cache calls them inline on every operation.
type Hooks interface {
	// A value was written under storageKey.
	Stored(storageKey string, kind Kind, size int)

	// A read found nothing under storageKey.
	Miss(storageKey string)

	// A typed read could not decode the stored bytes.
	DecodeFailed(storageKey string, err error)

	// Provider returned ok=false on Set (backpressure/eviction).
	SetRejected(storageKey string)

	// Incrementing or reading a call counter failed.
	CounterError(name string, err error)

	// The cache was opened in fresh mode and the store was flushed.
	Flushed(namespace string)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) Stored(string, Kind, int)   {}
func (NopHooks) Miss(string)                {}
func (NopHooks) DecodeFailed(string, error) {}
func (NopHooks) SetRejected(string)         {}
func (NopHooks) CounterError(string, error) {}
func (NopHooks) Flushed(string)             {}
