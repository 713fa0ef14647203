package codec

import (
	"bytes"
	"math"
	"strconv"
	"strings"
)

// Int reads and writes base-10 integer text, the form kvcache stores
// integers in. Surrounding ASCII whitespace is tolerated on Decode; a sign
// is accepted, underscores and other bases are not.
type Int struct{}

// Float reads and writes decimal float text. Encode writes the shortest
// digits that round-trip, always with a fraction or an exponent so the
// text never reads as an integer: 3.0, 0.0001, 1e-05, 1e+16. NaN and
// infinities are nan, inf and -inf. Decode accepts anything
// strconv.ParseFloat does.
type Float struct{}

var (
	_ Codec[int64]   = Int{}
	_ Codec[float64] = Float{}
)

func (Int) Encode(n int64) ([]byte, error) { return strconv.AppendInt(nil, n, 10), nil }
func (Int) Decode(b []byte) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(string(b)), 10, 64)
}

func (Float) Encode(f float64) ([]byte, error) { return AppendFloat(nil, f), nil }
func (Float) Decode(b []byte) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(string(b)), 64)
}

// AppendFloat appends the Float text form of f to dst.
// Exponent form is used below 1e-4 and from 1e16 up.
func AppendFloat(dst []byte, f float64) []byte {
	switch {
	case math.IsNaN(f):
		return append(dst, "nan"...)
	case math.IsInf(f, 1):
		return append(dst, "inf"...)
	case math.IsInf(f, -1):
		return append(dst, "-inf"...)
	}
	sci := strconv.AppendFloat(nil, f, 'e', -1, 64)
	exp, _ := strconv.Atoi(string(sci[bytes.IndexByte(sci, 'e')+1:]))
	if exp < -4 || exp >= 16 {
		return append(dst, sci...)
	}
	n := len(dst)
	dst = strconv.AppendFloat(dst, f, 'f', -1, 64)
	if bytes.IndexByte(dst[n:], '.') < 0 {
		dst = append(dst, ".0"...)
	}
	return dst
}
