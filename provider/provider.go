// Package provider defines the storage abstraction used by kvcache.
//
// Implementations MUST be byte-for-byte transparent: Get must return exactly the
// same []byte that was previously passed to Set for a key (no prepended/appended
// metadata, no re-encoding, no mutation). kvcache relies on this to hand back
// the canonical text of stored numbers.
package provider

import (
	"context"
	"time"
)

// Provider is a minimal byte store with TTLs.
// Must be safe for concurrent use.
type Provider interface {
	// Get returns (value, true, nil) on hit; (nil, false, nil) on miss.
	// If an IO/remote error happens, return (nil, false, err).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value with the given TTL (ttl <= 0 means no expiry where the
	// store supports it). May ignore cost if unsupported.
	// Returns ok=false when the store rejected the write under pressure.
	Set(ctx context.Context, key string, value []byte, cost int64, ttl time.Duration) (ok bool, err error)

	// Del removes a key (best-effort).
	Del(ctx context.Context, key string) error

	// Close releases resources.
	Close(ctx context.Context) error
}

// Flusher is implemented by providers that can drop every entry at once.
// kvcache.OpenFresh requires it.
type Flusher interface {
	Flush(ctx context.Context) error
}

// Pinger is implemented by providers backed by a remote server.
// kvcache.OpenExisting uses it to fail fast on an unreachable store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Incrementer is implemented by providers that can keep atomic counters as
// keys of the store itself. kvcache keeps its call counters there when
// Options.Counters is nil.
type Incrementer interface {
	// Incr adds one to key, creating it at 0 first, and returns the new count.
	Incr(ctx context.Context, key string) (int64, error)

	// Count returns the current value of key. A missing key is 0.
	Count(ctx context.Context, key string) (int64, error)
}
