package main

import (
	"context"
	"errors"
	"testing"

	"github.com/unkn0wn-root/kvcache"
	"github.com/unkn0wn-root/kvcache/provider/ristretto"
)

func TestParseValue(t *testing.T) {
	cases := []struct {
		typ, in string
		want    string
		kind    kvcache.Kind
	}{
		{"text", "hello", "hello", kvcache.KindText},
		{"bytes", "\x00\x01", "\x00\x01", kvcache.KindBytes},
		{"int", "-42", "-42", kvcache.KindInt},
		{"float", "3.14", "3.14", kvcache.KindFloat},
	}
	for _, tc := range cases {
		v, err := parseValue(tc.typ, tc.in)
		if err != nil {
			t.Fatalf("parseValue(%q, %q): %v", tc.typ, tc.in, err)
		}
		if v.Kind() != tc.kind || string(v.Encode()) != tc.want {
			t.Fatalf("parseValue(%q, %q) = %s %q, want %s %q", tc.typ, tc.in, v.Kind(), v.Encode(), tc.kind, tc.want)
		}
	}

	if _, err := parseValue("int", "x"); err == nil {
		t.Fatalf("expected error for bad int")
	}
	if _, err := parseValue("list", "x"); !errors.Is(err, kvcache.ErrUnsupportedValue) {
		t.Fatalf("want ErrUnsupportedValue, got %v", err)
	}
}

func TestReadAs(t *testing.T) {
	ctx := context.Background()
	p, err := ristretto.New(ristretto.Config{NumCounters: 1e4, MaxCost: 1 << 20, BufferItems: 64})
	if err != nil {
		t.Fatalf("ristretto.New: %v", err)
	}
	c, err := kvcache.OpenFresh(ctx, kvcache.Options{Provider: p})
	if err != nil {
		t.Fatalf("OpenFresh: %v", err)
	}
	defer c.Close(ctx)

	key, err := c.Store(ctx, kvcache.Int(7))
	if err != nil {
		t.Fatalf("Store: %v", err)
	}

	out, ok, err := readAs(ctx, c, "int", key)
	if err != nil || !ok || out.(int64) != 7 {
		t.Fatalf("readAs int = %v %v %v", out, ok, err)
	}
	out, ok, err = readAs(ctx, c, "raw", key)
	if err != nil || !ok || out.(string) != `"7"` {
		t.Fatalf("readAs raw = %v %v %v", out, ok, err)
	}
	if _, ok, err = readAs(ctx, c, "str", "missing"); err != nil || ok {
		t.Fatalf("readAs missing = %v %v", ok, err)
	}
	if _, _, err = readAs(ctx, c, "yaml", key); err == nil {
		t.Fatalf("expected error for unknown coercion")
	}
}
