package kvcache

import (
	"errors"
	"fmt"
)

var (
	// ErrNilValue is returned by Store when called with a nil Value.
	ErrNilValue = errors.New("kvcache: nil value")
	// ErrUnsupportedValue is returned by ValueOf for types outside the union.
	ErrUnsupportedValue = errors.New("kvcache: unsupported value type")
	// ErrRejected is returned when the provider refused a write.
	ErrRejected = errors.New("kvcache: write rejected by provider")
	// ErrNilDecoder is returned by GetAs when no decoder is given and the
	// result type is not []byte.
	ErrNilDecoder = errors.New("kvcache: nil decoder")
	// ErrFlushUnsupported is returned by OpenFresh when the provider cannot flush.
	ErrFlushUnsupported = errors.New("kvcache: provider does not support flush")
)

// DecodeError reports stored bytes that could not be coerced to the
// requested type.
type DecodeError struct {
	Key string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("kvcache: decode %q: %v", e.Key, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// CountError reports a call counter that could not be incremented.
// The counted operation did not run.
type CountError struct {
	Name string
	Err  error
}

func (e *CountError) Error() string {
	return fmt.Sprintf("kvcache: count %s: %v", e.Name, e.Err)
}

func (e *CountError) Unwrap() error { return e.Err }
