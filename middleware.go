package kvcache

import (
	"context"

	"github.com/unkn0wn-root/kvcache/counter"
)

// Op is a single operation taking In and producing Out.
type Op[In, Out any] func(ctx context.Context, in In) (Out, error)

// Middleware wraps an Op with extra behavior and returns the wrapped Op.
type Middleware[In, Out any] func(next Op[In, Out]) Op[In, Out]

// Chain wraps op with mws. The first middleware is the outermost one, so it
// runs first on the way in. Nil middlewares are skipped.
func Chain[In, Out any](op Op[In, Out], mws ...Middleware[In, Out]) Op[In, Out] {
	for i := len(mws) - 1; i >= 0; i-- {
		if mws[i] != nil {
			op = mws[i](op)
		}
	}
	return op
}

// Around runs before ahead of the wrapped op and after once it returned.
// A non-nil error from before aborts the call: next is not invoked and that
// error is returned. Either hook may be nil.
func Around[In, Out any](
	before func(ctx context.Context, in In) error,
	after func(ctx context.Context, in In, out Out, err error),
) Middleware[In, Out] {
	return func(next Op[In, Out]) Op[In, Out] {
		return func(ctx context.Context, in In) (Out, error) {
			if before != nil {
				if err := before(ctx, in); err != nil {
					var zero Out
					return zero, err
				}
			}
			out, err := next(ctx, in)
			if after != nil {
				after(ctx, in, out, err)
			}
			return out, err
		}
	}
}

// CountCalls increments the counter name before every invocation of the
// wrapped op. If the increment fails the op is not run and a *CountError is
// returned.
func CountCalls[In, Out any](counters counter.Store, name string) Middleware[In, Out] {
	return Around[In, Out](func(ctx context.Context, _ In) error {
		if _, err := counters.Incr(ctx, name); err != nil {
			return &CountError{Name: name, Err: err}
		}
		return nil
	}, nil)
}
