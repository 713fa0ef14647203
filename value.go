package kvcache

import (
	"fmt"
	"math"
	"strconv"

	"github.com/unkn0wn-root/kvcache/codec"
)

// Kind tags the variant of a Value.
type Kind uint8

const (
	KindText Kind = iota + 1
	KindBytes
	KindInt
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindBytes:
		return "bytes"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "unknown"
	}
}

// Value is the closed set of things Store accepts. The variants are Text,
// Bytes, Int and Float; the interface cannot be implemented outside this
// package.
type Value interface {
	Kind() Kind
	// Encode returns the representation written to the store.
	Encode() []byte

	sealed()
}

// Text is stored as its UTF-8 bytes.
type Text string

// Bytes is stored unchanged.
type Bytes []byte

// Int is stored as base-10 text.
type Int int64

// Float is stored as the shortest decimal text that parses back to the
// same float64, always carrying a fraction or an exponent (3.0, 1e+20),
// so it never parses as an integer. NaN and infinities are stored as nan,
// inf and -inf.
type Float float64

var (
	_ Value = Text("")
	_ Value = Bytes(nil)
	_ Value = Int(0)
	_ Value = Float(0)
)

func (Text) Kind() Kind  { return KindText }
func (Bytes) Kind() Kind { return KindBytes }
func (Int) Kind() Kind   { return KindInt }
func (Float) Kind() Kind { return KindFloat }

func (v Text) Encode() []byte { return []byte(v) }

func (v Bytes) Encode() []byte {
	// some providers treat a nil slice as "no entry"
	if v == nil {
		return []byte{}
	}
	return []byte(v)
}

func (v Int) Encode() []byte { return strconv.AppendInt(nil, int64(v), 10) }

func (v Float) Encode() []byte { return codec.AppendFloat(nil, float64(v)) }

func (Text) sealed()  {}
func (Bytes) sealed() {}
func (Int) sealed()   {}
func (Float) sealed() {}

// ValueOf maps a dynamic Go value onto the union. Strings become Text,
// byte slices Bytes, every integer kind Int and both float kinds Float.
// Anything else is ErrUnsupportedValue. Unsigned values above math.MaxInt64
// are rejected rather than wrapped.
func ValueOf(x any) (Value, error) {
	switch v := x.(type) {
	case Value:
		return v, nil
	case string:
		return Text(v), nil
	case []byte:
		return Bytes(v), nil
	case int:
		return Int(v), nil
	case int8:
		return Int(v), nil
	case int16:
		return Int(v), nil
	case int32:
		return Int(v), nil
	case int64:
		return Int(v), nil
	case uint:
		return uintValue(uint64(v))
	case uint8:
		return Int(v), nil
	case uint16:
		return Int(v), nil
	case uint32:
		return Int(v), nil
	case uint64:
		return uintValue(v)
	case float32:
		// keep the float32's own shortest decimal, not its widened float64 form
		f, _ := strconv.ParseFloat(strconv.FormatFloat(float64(v), 'g', -1, 32), 64)
		return Float(f), nil
	case float64:
		return Float(v), nil
	case nil:
		return nil, ErrNilValue
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, x)
	}
}

func uintValue(u uint64) (Value, error) {
	if u > math.MaxInt64 {
		return nil, fmt.Errorf("%w: %d overflows int64", ErrUnsupportedValue, u)
	}
	return Int(int64(u)), nil
}
