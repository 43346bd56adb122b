// Package codec implements the combinator layer of rcodec: paired
// encoders/decoders over github.com/plausiblelabs/rcodec/bytevector,
// composed via github.com/plausiblelabs/rcodec/hlist into codecs for
// records with nested and data-dependent fields.
package codec

import "github.com/plausiblelabs/rcodec/bytevector"

// Unit stands in for Rust's () / Scala's Unit: the value type of codecs
// that carry no decoded information of their own (ignore, constant,
// drop_left's discarded left-hand side).
type Unit struct{}

// DecodeResult pairs a decoded value with the unconsumed remainder of the
// input byte vector.
type DecodeResult[V any] struct {
	Value     V
	Remainder bytevector.ByteVector
}

// Codec encodes values of type V to a byte vector and decodes a byte
// vector back into a V plus whatever input it didn't consume. Every Codec
// produced by this package is immutable and carries no mutable state, so a
// single Codec value is safe to share and reuse concurrently.
type Codec[V any] interface {
	Encode(value V) (bytevector.ByteVector, error)
	Decode(input bytevector.ByteVector) (DecodeResult[V], error)
}
