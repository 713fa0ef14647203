package kvcache

import (
	"context"
	"time"

	"github.com/unkn0wn-root/kvcache/counter"
	pr "github.com/unkn0wn-root/kvcache/provider"
)

// OpStore is the fully-qualified name Store is counted under.
const OpStore = "kvcache.Cache.Store"

// Cache is the facade over the external store.
type Cache interface {
	// Store writes v under a freshly generated key and returns that key.
	// Every call bumps the OpStore counter first.
	Store(ctx context.Context, v Value) (string, error)

	// Get returns the raw stored bytes. A missing key is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Typed reads. Missing keys are (zero, false, nil); bytes that do not
	// parse are a *DecodeError.
	GetStr(ctx context.Context, key string) (string, bool, error)
	GetInt(ctx context.Context, key string) (int64, bool, error)
	GetFloat(ctx context.Context, key string) (float64, bool, error)

	// Calls reads the call counter of op (e.g. OpStore). Never-called ops are 0.
	Calls(ctx context.Context, op string) (int64, error)

	Close(context.Context) error
}

// KeyFunc generates the key for a new entry.
type KeyFunc func() (string, error)

// Options configure a Cache. Only Provider is required.
//
// When Counters is nil the call counters are kept in Provider itself if it
// implements provider.Incrementer (the Redis provider does), so they sit in
// the same store as the values. In-process providers fall back to
// counter.NewLocal().
type Options struct {
	// Required
	Provider pr.Provider

	Counters  counter.Store // nil => see below
	Namespace string        // optional prefix for value and counter keys, e.g. "app:prod"
	Logger    Logger        // if nil, NopLogger is used
	Hooks     Hooks         // if nil, NopHooks is used
	KeyFunc   KeyFunc       // nil => random UUID v4
	TTL       time.Duration // 0 => entries never expire

	// Middleware wraps Store inside the call counter (first listed runs first).
	Middleware []Middleware[Value, string]
}

// OpenFresh builds a Cache and then flushes the provider and the counters.
// This is a full reset: everything in the backing store is dropped (with
// Redis, the whole selected database). The provider must implement
// provider.Flusher.
func OpenFresh(ctx context.Context, opts Options) (Cache, error) {
	c, err := newCache(opts)
	if err != nil {
		return nil, err
	}
	if err := c.flush(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// OpenExisting builds a Cache over whatever the store already holds.
// Providers implementing provider.Pinger are pinged first.
func OpenExisting(ctx context.Context, opts Options) (Cache, error) {
	c, err := newCache(opts)
	if err != nil {
		return nil, err
	}
	if p, ok := c.provider.(pr.Pinger); ok {
		if err := p.Ping(ctx); err != nil {
			return nil, err
		}
	}
	return c, nil
}
