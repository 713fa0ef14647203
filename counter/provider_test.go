package counter

import (
	"context"
	"errors"
	"testing"
)

type fakeIncrementer struct {
	m   map[string]int64
	err error
}

func (f *fakeIncrementer) Incr(_ context.Context, key string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.m[key]++
	return f.m[key], nil
}

func (f *fakeIncrementer) Count(_ context.Context, key string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.m[key], nil
}

func TestInProvider(t *testing.T) {
	ctx := context.Background()
	inc := &fakeIncrementer{m: map[string]int64{}}
	s := NewInProvider(inc)

	for i := 0; i < 2; i++ {
		if _, err := s.Incr(ctx, "a"); err != nil {
			t.Fatalf("Incr: %v", err)
		}
	}
	if n, err := s.Get(ctx, "a"); err != nil || n != 2 {
		t.Fatalf("Get = %d, %v", n, err)
	}
	got, err := s.GetMany(ctx, []string{"a", "b"})
	if err != nil || got["a"] != 2 || got["b"] != 0 {
		t.Fatalf("GetMany = %v, %v", got, err)
	}

	// the provider owns the data: Flush and Close leave it alone
	if err := s.Flush(ctx); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if err := s.Close(ctx); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if inc.m["a"] != 2 {
		t.Fatalf("Flush must not touch provider counters")
	}

	inc.err = errors.New("down")
	if _, err := s.GetMany(ctx, []string{"a"}); !errors.Is(err, inc.err) {
		t.Fatalf("GetMany error = %v", err)
	}
}
