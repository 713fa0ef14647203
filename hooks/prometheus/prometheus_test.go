package prometheus

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/unkn0wn-root/kvcache"
)

func TestHooksCount(t *testing.T) {
	reg := prometheus.NewRegistry()
	h := New(reg)

	h.Stored("k1", kvcache.KindInt, 2)
	h.Stored("k2", kvcache.KindInt, 3)
	h.Stored("k3", kvcache.KindText, 5)
	h.Miss("k4")
	h.DecodeFailed("k1", errors.New("bad"))
	h.SetRejected("k5")
	h.CounterError("kvcache.Cache.Store", errors.New("down"))
	h.Flushed("")

	if got := testutil.ToFloat64(h.stored.WithLabelValues("int")); got != 2 {
		t.Fatalf("stored{int} = %v", got)
	}
	if got := testutil.ToFloat64(h.storedBytes.WithLabelValues("int")); got != 5 {
		t.Fatalf("stored_bytes{int} = %v", got)
	}
	if got := testutil.ToFloat64(h.stored.WithLabelValues("text")); got != 1 {
		t.Fatalf("stored{text} = %v", got)
	}
	for name, c := range map[string]prometheus.Counter{
		"misses":       h.misses,
		"decodeFailed": h.decodeFailed,
		"setRejected":  h.setRejected,
		"flushes":      h.flushes,
	} {
		if got := testutil.ToFloat64(c); got != 1 {
			t.Fatalf("%s = %v, want 1", name, got)
		}
	}
	if got := testutil.ToFloat64(h.counterErrs.WithLabelValues("kvcache.Cache.Store")); got != 1 {
		t.Fatalf("counter_errors = %v", got)
	}
}

func TestDoubleRegisterPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	_ = New(reg)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on duplicate registration")
		}
	}()
	_ = New(reg)
}
