// Package kvcache is a small client-side facade over an external key-value
// store (Redis in production). It stores values under freshly generated
// random keys, reads them back with optional type coercion, and counts how
// often the store operation is invoked.
//
// Components:
//   - Provider: byte store the values live in (Redis, Ristretto, BigCache).
//   - counter.Store: per-operation call counters (INCR-backed on Redis).
//   - Value: closed union of the storable kinds (Text, Bytes, Int, Float).
//   - Middleware: generic wrappers around an operation; CountCalls is the
//     one applied to Store.
//
// Opening:
//
//	c, _ := kvcache.OpenFresh(ctx, opts)    // FLUSHDB first: drops everything
//	c, _ := kvcache.OpenExisting(ctx, opts) // keeps data and counters
//
// Round trip:
//
//	key, _ := c.Store(ctx, kvcache.Int(42))
//	n, ok, err := c.GetInt(ctx, key) // 42, true, nil
//
// Numerics are stored as decimal text, so the reader has to know which
// coercion to ask for.
package kvcache
