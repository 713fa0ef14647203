package codec

// Bytes is an identity codec for []byte values. Encode/Decode return the
// input unchanged.
type Bytes struct{}

// String converts between Go strings and their UTF-8 bytes. Invalid UTF-8
// is passed through untouched; no validation is done.
type String struct{}

var (
	_ Codec[[]byte] = Bytes{}
	_ Codec[string] = String{}
)

func (Bytes) Encode(b []byte) ([]byte, error) { return b, nil }
func (Bytes) Decode(b []byte) ([]byte, error) { return b, nil }

func (String) Encode(s string) ([]byte, error) { return []byte(s), nil }
func (String) Decode(b []byte) (string, error) { return string(b), nil }
