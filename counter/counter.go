// Package counter keeps per-operation call counters.
//
// A counter is a monotonically increasing int64 addressed by name. Missing
// counters read as 0 and INCR semantics apply: the first Incr creates the
// counter at 0 and returns 1. Counters are only reset by Flush.
package counter

import "context"

// Store abstracts where counters live.
// Use Local for in-process counters, or Redis to keep them next to the
// cached values in the same server.
type Store interface {
	// Incr atomically increments name and returns the new value.
	Incr(ctx context.Context, name string) (int64, error)
	// Get returns the current value; missing => 0.
	Get(ctx context.Context, name string) (int64, error)
	// GetMany returns values for many names; missing => 0.
	GetMany(ctx context.Context, names []string) (map[string]int64, error)
	// Flush resets every counter owned by the store.
	Flush(ctx context.Context) error
	// Close releases resources (no-op ok).
	Close(context.Context) error
}
