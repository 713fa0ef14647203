package codec

import (
	"bytes"
	"errors"
	"math"
	"strconv"
	"testing"
	"time"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type point struct {
	X  int       `json:"x" cbor:"x" msgpack:"x"`
	Y  int       `json:"y" cbor:"y" msgpack:"y"`
	At time.Time `json:"at" cbor:"at" msgpack:"at"`
}

func roundTrip[V any](t *testing.T, c Codec[V], v V) V {
	t.Helper()
	b, err := c.Encode(v)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	out, err := c.Decode(b)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	return out
}

func TestStructCodecs(t *testing.T) {
	p := point{X: 1, Y: -2, At: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	codecs := map[string]Codec[point]{
		"json":    JSON[point]{},
		"cbor":    MustCBOR[point](false),
		"cborDet": MustCBOR[point](true),
		"msgpack": Msgpack[point]{},
	}
	for name, c := range codecs {
		t.Run(name, func(t *testing.T) {
			got := roundTrip(t, c, p)
			if got.X != p.X || got.Y != p.Y || !got.At.Equal(p.At) {
				t.Fatalf("got %+v want %+v", got, p)
			}
		})
	}
}

func TestCBORDeterministicIsStable(t *testing.T) {
	c := MustCBOR[map[string]int](true)
	m := map[string]int{"b": 2, "a": 1, "c": 3}
	first, _ := c.Encode(m)
	for i := 0; i < 10; i++ {
		again, _ := c.Encode(m)
		if !bytes.Equal(first, again) {
			t.Fatalf("deterministic encoding changed between runs")
		}
	}
}

func TestProtobuf(t *testing.T) {
	c := NewProtobuf(func() *wrapperspb.StringValue { return &wrapperspb.StringValue{} })
	got := roundTrip[*wrapperspb.StringValue](t, c, wrapperspb.String("hello"))
	if !proto.Equal(got, wrapperspb.String("hello")) {
		t.Fatalf("got %v", got)
	}
}

func TestRawCodecs(t *testing.T) {
	if got := roundTrip[string](t, String{}, "héllo"); got != "héllo" {
		t.Fatalf("String got %q", got)
	}
	if got := roundTrip[[]byte](t, Bytes{}, []byte{0, 0xff}); !bytes.Equal(got, []byte{0, 0xff}) {
		t.Fatalf("Bytes got %x", got)
	}
}

func TestInt(t *testing.T) {
	cases := map[string]int64{
		"42":                   42,
		"-7":                   -7,
		"+3":                   3,
		" 12\n":                12,
		"9223372036854775807":  math.MaxInt64,
		"-9223372036854775808": math.MinInt64,
	}
	for in, want := range cases {
		got, err := Int{}.Decode([]byte(in))
		if err != nil || got != want {
			t.Fatalf("Decode(%q) = %d, %v; want %d", in, got, err, want)
		}
	}
	for _, bad := range []string{"", "4.2", "abc", "1_000", "0x10", "9223372036854775808"} {
		_, err := Int{}.Decode([]byte(bad))
		var ne *strconv.NumError
		if !errors.As(err, &ne) {
			t.Fatalf("Decode(%q): expected *strconv.NumError, got %v", bad, err)
		}
	}
	if b, _ := (Int{}).Encode(-15); string(b) != "-15" {
		t.Fatalf("Encode got %q", b)
	}
}

func TestFloat(t *testing.T) {
	cases := map[float64]string{
		3.14:    "3.14",
		-0.5:    "-0.5",
		2:       "2.0",
		1e21:    "1e+21",
		1e-7:    "1e-07",
		0.1:     "0.1",
		1.5e300: "1.5e+300",
	}
	for in, want := range cases {
		b, _ := Float{}.Encode(in)
		if string(b) != want {
			t.Fatalf("Encode(%v) = %q want %q", in, b, want)
		}
		back, err := Float{}.Decode(b)
		if err != nil || back != in {
			t.Fatalf("Decode(%q) = %v, %v", b, back, err)
		}
	}
	if _, err := (Float{}).Decode([]byte("pi")); err == nil {
		t.Fatalf("expected error for non-numeric text")
	}
}

func TestLimit(t *testing.T) {
	c := Limit[string]{Inner: String{}, MaxDecode: 4}
	if _, err := c.Decode([]byte("12345")); err == nil {
		t.Fatalf("expected size error")
	}
	if got, err := c.Decode([]byte("1234")); err != nil || got != "1234" {
		t.Fatalf("got %q, %v", got, err)
	}
	unlimited := Limit[string]{Inner: String{}}
	if _, err := unlimited.Decode(bytes.Repeat([]byte("x"), 1<<16)); err != nil {
		t.Fatalf("MaxDecode=0 must not limit: %v", err)
	}
}
