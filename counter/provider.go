package counter

import (
	"context"

	pr "github.com/unkn0wn-root/kvcache/provider"
)

// InProvider keeps counters as keys of the value provider itself, so they
// live in the same store as the values. The provider owns the connection
// and the data: Flush and Close do nothing, and the counters are dropped
// together with the provider's own flush.
type InProvider struct {
	inc pr.Incrementer
}

var _ Store = (*InProvider)(nil)

func NewInProvider(inc pr.Incrementer) *InProvider { return &InProvider{inc: inc} }

func (s *InProvider) Incr(ctx context.Context, name string) (int64, error) {
	return s.inc.Incr(ctx, name)
}

func (s *InProvider) Get(ctx context.Context, name string) (int64, error) {
	return s.inc.Count(ctx, name)
}

func (s *InProvider) GetMany(ctx context.Context, names []string) (map[string]int64, error) {
	out := make(map[string]int64, len(names))
	for _, n := range names {
		v, err := s.inc.Count(ctx, n)
		if err != nil {
			return nil, err
		}
		out[n] = v
	}
	return out, nil
}

func (s *InProvider) Flush(context.Context) error { return nil }
func (s *InProvider) Close(context.Context) error { return nil }
