// Package asynchook moves kvcache hook calls off the caller's goroutine.
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{MissEvery: 100})
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	c, _ := kvcache.OpenExisting(ctx, kvcache.Options{
//	    Provider: provider,
//	    Hooks:    hooks,
//	})
//
// Events are dropped when the queue is full.
package asynchook

import (
	"sync"
	"sync/atomic"

	"github.com/unkn0wn-root/kvcache"
)

type Hooks struct {
	inner   kvcache.Hooks
	q       chan func()
	wg      sync.WaitGroup
	once    sync.Once
	dropped atomic.Uint64
}

var _ kvcache.Hooks = (*Hooks)(nil)

func New(inner kvcache.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close drains queued events and stops the workers. Events sent after
// Close are dropped.
func (h *Hooks) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

// Dropped reports how many events were discarded because the queue was full.
func (h *Hooks) Dropped() uint64 { return h.dropped.Load() }

func (h *Hooks) try(f func()) {
	defer func() {
		// send on a closed queue after Close
		if recover() != nil {
			h.dropped.Add(1)
		}
	}()
	select {
	case h.q <- f:
	default:
		h.dropped.Add(1)
	}
}

func (h *Hooks) Miss(k string)                    { h.try(func() { h.inner.Miss(k) }) }
func (h *Hooks) SetRejected(k string)             { h.try(func() { h.inner.SetRejected(k) }) }
func (h *Hooks) Flushed(ns string)                { h.try(func() { h.inner.Flushed(ns) }) }
func (h *Hooks) DecodeFailed(k string, err error) { h.try(func() { h.inner.DecodeFailed(k, err) }) }
func (h *Hooks) CounterError(n string, err error) { h.try(func() { h.inner.CounterError(n, err) }) }
func (h *Hooks) Stored(k string, kind kvcache.Kind, size int) {
	h.try(func() { h.inner.Stored(k, kind, size) })
}
