package counter

import (
	"context"
	"sync"
)

// Local keeps counters in-process. Safe for concurrent use.
type Local struct {
	mu     sync.RWMutex
	counts map[string]int64
}

var _ Store = (*Local)(nil)

func NewLocal() *Local {
	return &Local{counts: make(map[string]int64)}
}

func (s *Local) Incr(_ context.Context, name string) (int64, error) {
	s.mu.Lock()
	s.counts[name]++
	n := s.counts[name]
	s.mu.Unlock()
	return n, nil
}

func (s *Local) Get(_ context.Context, name string) (int64, error) {
	s.mu.RLock()
	n := s.counts[name]
	s.mu.RUnlock()
	return n, nil
}

// GetMany acquires the read lock once and reads all requested names.
func (s *Local) GetMany(_ context.Context, names []string) (map[string]int64, error) {
	out := make(map[string]int64, len(names))
	s.mu.RLock()
	for _, n := range names {
		out[n] = s.counts[n] // zero value (0) if missing
	}
	s.mu.RUnlock()
	return out, nil
}

func (s *Local) Flush(_ context.Context) error {
	s.mu.Lock()
	clear(s.counts)
	s.mu.Unlock()
	return nil
}

func (s *Local) Close(_ context.Context) error { return nil }
