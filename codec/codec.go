// Package codec converts values to and from the bytes kept in the store.
// kvcache uses the Decode side for typed reads (GetStr, GetInt, GetWith)
// and the Encode side for StoreWith.
package codec

// Codec encodes/decodes values V to []byte for storage.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
