package kvcache

import (
	"context"

	"github.com/unkn0wn-root/kvcache/codec"
)

// decodeReporter is implemented by the package's own Cache so typed reads
// through the generic helpers still reach Hooks.DecodeFailed.
type decodeReporter interface {
	decodeFailed(key string, err error)
}

// GetAs reads key from c and runs decode over the stored bytes.
//
// decode is optional: with a nil decode and T = []byte the raw bytes are
// returned; for any other T a nil decode is ErrNilDecoder. A missing key is
// (zero, false, nil). A decode failure is returned as a *DecodeError that
// wraps the decoder's error.
func GetAs[T any](ctx context.Context, c Cache, key string, decode func([]byte) (T, error)) (T, bool, error) {
	var zero T
	if decode == nil {
		if _, isBytes := any(zero).([]byte); !isBytes {
			return zero, false, ErrNilDecoder
		}
	}

	raw, ok, err := c.Get(ctx, key)
	if err != nil || !ok {
		return zero, false, err
	}
	if decode == nil {
		return any(raw).(T), true, nil
	}

	v, err := decode(raw)
	if err != nil {
		if r, ok := c.(decodeReporter); ok {
			r.decodeFailed(key, err)
		}
		return zero, false, &DecodeError{Key: key, Err: err}
	}
	return v, true, nil
}

// GetWith is GetAs with the decode side of a codec.
func GetWith[T any](ctx context.Context, c Cache, key string, cd codec.Codec[T]) (T, bool, error) {
	return GetAs(ctx, c, key, cd.Decode)
}

// StoreWith encodes v with cd and stores the result as Bytes. Read it back
// with GetWith and the same codec.
func StoreWith[T any](ctx context.Context, c Cache, v T, cd codec.Codec[T]) (string, error) {
	b, err := cd.Encode(v)
	if err != nil {
		return "", err
	}
	return c.Store(ctx, Bytes(b))
}
