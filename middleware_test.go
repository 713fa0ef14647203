package kvcache

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/unkn0wn-root/kvcache/counter"
)

func echo(_ context.Context, in string) (string, error) { return in, nil }

func tag(name string, trace *[]string) Middleware[string, string] {
	return Around[string, string](
		func(context.Context, string) error {
			*trace = append(*trace, name+">")
			return nil
		},
		func(context.Context, string, string, error) {
			*trace = append(*trace, "<"+name)
		},
	)
}

func TestChainOrder(t *testing.T) {
	var trace []string
	op := Chain(Op[string, string](echo), tag("a", &trace), nil, tag("b", &trace))

	out, err := op(context.Background(), "x")
	if err != nil || out != "x" {
		t.Fatalf("op = %q, %v", out, err)
	}
	if got := strings.Join(trace, " "); got != "a> b> <b <a" {
		t.Fatalf("trace = %q", got)
	}
}

func TestAroundBeforeErrorShortCircuits(t *testing.T) {
	stop := errors.New("stop")
	called := false
	var afterCalled bool
	op := Chain(
		Op[string, string](func(context.Context, string) (string, error) {
			called = true
			return "unreachable", nil
		}),
		Around[string, string](
			func(context.Context, string) error { return stop },
			func(context.Context, string, string, error) { afterCalled = true },
		),
	)

	out, err := op(context.Background(), "x")
	if !errors.Is(err, stop) || out != "" {
		t.Fatalf("expected stop error, out=%q err=%v", out, err)
	}
	if called || afterCalled {
		t.Fatalf("wrapped op or after hook ran after before failed")
	}
}

func TestAroundAfterSeesResult(t *testing.T) {
	var seenOut string
	var seenErr error
	fail := errors.New("fail")
	op := Chain(
		Op[string, string](func(_ context.Context, in string) (string, error) { return in + "!", fail }),
		Around[string, string](nil, func(_ context.Context, _ string, out string, err error) {
			seenOut, seenErr = out, err
		}),
	)
	_, _ = op(context.Background(), "hi")
	if seenOut != "hi!" || seenErr != fail {
		t.Fatalf("after saw %q, %v", seenOut, seenErr)
	}
}

func TestCountCallsCountsBeforeInvoking(t *testing.T) {
	ctx := context.Background()
	counters := counter.NewLocal()

	var seenAtCall int64
	op := Chain(
		Op[string, string](func(ctx context.Context, in string) (string, error) {
			seenAtCall, _ = counters.Get(ctx, "pkg.Op")
			return in, nil
		}),
		CountCalls[string, string](counters, "pkg.Op"),
	)

	for i := 1; i <= 3; i++ {
		if _, err := op(ctx, "x"); err != nil {
			t.Fatalf("op: %v", err)
		}
		if seenAtCall != int64(i) {
			t.Fatalf("call %d saw counter %d; increment must happen first", i, seenAtCall)
		}
	}
}

func TestCountCallsCountsFailedCalls(t *testing.T) {
	ctx := context.Background()
	counters := counter.NewLocal()
	op := Chain(
		Op[string, string](func(context.Context, string) (string, error) { return "", errors.New("nope") }),
		CountCalls[string, string](counters, "pkg.Op"),
	)
	_, _ = op(ctx, "x")
	_, _ = op(ctx, "x")
	if n, _ := counters.Get(ctx, "pkg.Op"); n != 2 {
		t.Fatalf("failed calls are still calls, got %d", n)
	}
}

func TestStoreMiddlewareRunsInsideCounter(t *testing.T) {
	ctx := context.Background()
	counters := counter.NewLocal()
	veto := errors.New("veto")

	var countAtMiddleware int64
	c := newTestCache(t, newMemProvider(), func(o *Options) {
		o.Counters = counters
		o.Middleware = []Middleware[Value, string]{
			Around[Value, string](func(ctx context.Context, v Value) error {
				countAtMiddleware, _ = counters.Get(ctx, OpStore)
				if v.Kind() == KindFloat {
					return veto
				}
				return nil
			}, nil),
		}
	})

	mustStore(t, c, Text("ok"))
	if countAtMiddleware != 1 {
		t.Fatalf("middleware saw count %d, want 1", countAtMiddleware)
	}
	if _, err := c.Store(ctx, Float(1)); !errors.Is(err, veto) {
		t.Fatalf("expected veto, got %v", err)
	}
	if n, _ := c.Calls(ctx, OpStore); n != 2 {
		t.Fatalf("vetoed call must still be counted, got %d", n)
	}
}
