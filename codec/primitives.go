package codec

import "github.com/plausiblelabs/rcodec/bytevector"

// Ignore produces n zero bytes on encode and discards n bytes on decode,
// carrying no value of its own. Used for reserved/padding fields.
func Ignore(n uint64) Codec[Unit] {
	return ignoreCodec{n: n}
}

type ignoreCodec struct{ n uint64 }

func (c ignoreCodec) Encode(Unit) (bytevector.ByteVector, error) {
	return bytevector.Fill(0, c.n), nil
}

func (c ignoreCodec) Decode(input bytevector.ByteVector) (DecodeResult[Unit], error) {
	remainder, err := input.Drop(c.n)
	if err != nil {
		return DecodeResult[Unit]{}, err
	}
	return DecodeResult[Unit]{Value: Unit{}, Remainder: remainder}, nil
}

// Constant encodes to exactly the given bytes every time, and on decode
// requires the input to begin with those same bytes, failing otherwise.
func Constant(bytes bytevector.ByteVector) Codec[Unit] {
	return constantCodec{bytes: bytes}
}

type constantCodec struct{ bytes bytevector.ByteVector }

func (c constantCodec) Encode(Unit) (bytevector.ByteVector, error) {
	return c.bytes, nil
}

func (c constantCodec) Decode(input bytevector.ByteVector) (DecodeResult[Unit], error) {
	got, err := input.Take(c.bytes.Length())
	if err != nil {
		return DecodeResult[Unit]{}, err
	}
	if !got.Equal(c.bytes) {
		return DecodeResult[Unit]{}, codecErrf("Expected constant %s but got %s", c.bytes, got)
	}
	remainder, err := input.Drop(c.bytes.Length())
	if err != nil {
		return DecodeResult[Unit]{}, err
	}
	return DecodeResult[Unit]{Value: Unit{}, Remainder: remainder}, nil
}

// IdentityBytes encodes a ByteVector as itself, and decodes by taking the
// entire input as the value and leaving an empty remainder.
func IdentityBytes() Codec[bytevector.ByteVector] {
	return identityBytesCodec{}
}

type identityBytesCodec struct{}

func (identityBytesCodec) Encode(v bytevector.ByteVector) (bytevector.ByteVector, error) {
	return v, nil
}

func (identityBytesCodec) Decode(input bytevector.ByteVector) (DecodeResult[bytevector.ByteVector], error) {
	return DecodeResult[bytevector.ByteVector]{Value: input, Remainder: bytevector.Empty()}, nil
}

// Bytes codes exactly n raw bytes.
func Bytes(n uint64) Codec[bytevector.ByteVector] {
	return FixedSizeBytes(n, IdentityBytes())
}

// FixedSizeBytes restricts inner to encoding/decoding within exactly n
// bytes: encode pads inner's output to n bytes on the right and fails if
// inner's output is longer than n; decode hands inner exactly the first n
// bytes of the input and advances the outer remainder by n regardless of
// how much of that window inner itself consumed.
func FixedSizeBytes[V any](n uint64, inner Codec[V]) Codec[V] {
	return fixedSizeBytesCodec[V]{n: n, inner: inner}
}

type fixedSizeBytesCodec[V any] struct {
	n     uint64
	inner Codec[V]
}

func (c fixedSizeBytesCodec[V]) Encode(v V) (bytevector.ByteVector, error) {
	encoded, err := c.inner.Encode(v)
	if err != nil {
		return bytevector.ByteVector{}, err
	}
	if encoded.Length() > c.n {
		return bytevector.ByteVector{}, codecErrf("Encoding requires %d bytes but codec is limited to fixed length of %d", encoded.Length(), c.n)
	}
	return encoded.PadRight(c.n)
}

func (c fixedSizeBytesCodec[V]) Decode(input bytevector.ByteVector) (DecodeResult[V], error) {
	window, err := input.Take(c.n)
	if err != nil {
		return DecodeResult[V]{}, err
	}
	decoded, err := c.inner.Decode(window)
	if err != nil {
		return DecodeResult[V]{}, err
	}
	remainder, err := input.Drop(c.n)
	if err != nil {
		return DecodeResult[V]{}, err
	}
	return DecodeResult[V]{Value: decoded.Value, Remainder: remainder}, nil
}

// UnsignedWidth constrains the length type accepted by VariableSizeBytes to
// Go's unsigned integer kinds, mirroring the restriction (discussed in the
// design notes) that a variable-size length prefix must never be signed.
type UnsignedWidth interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// VariableSizeBytes codes a length-prefixed field: lengthCodec encodes/decodes
// an unsigned count of bytes, followed immediately by inner's encoding of
// exactly that many bytes.
func VariableSizeBytes[L UnsignedWidth, V any](lengthCodec Codec[L], inner Codec[V]) Codec[V] {
	return variableSizeBytesCodec[L, V]{lengthCodec: lengthCodec, inner: inner}
}

type variableSizeBytesCodec[L UnsignedWidth, V any] struct {
	lengthCodec Codec[L]
	inner       Codec[V]
}

func (c variableSizeBytesCodec[L, V]) Encode(v V) (bytevector.ByteVector, error) {
	encoded, err := c.inner.Encode(v)
	if err != nil {
		return bytevector.ByteVector{}, err
	}
	length := encoded.Length()
	asL := L(length)
	if uint64(asL) != length {
		return bytevector.ByteVector{}, codecErrf("Length of %d bytes does not fit in the configured length field", length)
	}
	lengthBytes, err := c.lengthCodec.Encode(asL)
	if err != nil {
		return bytevector.ByteVector{}, err
	}
	return bytevector.Append(lengthBytes, encoded), nil
}

func (c variableSizeBytesCodec[L, V]) Decode(input bytevector.ByteVector) (DecodeResult[V], error) {
	decodedLength, err := c.lengthCodec.Decode(input)
	if err != nil {
		return DecodeResult[V]{}, err
	}
	n := uint64(decodedLength.Value)
	window, err := decodedLength.Remainder.Take(n)
	if err != nil {
		return DecodeResult[V]{}, err
	}
	decoded, err := c.inner.Decode(window)
	if err != nil {
		return DecodeResult[V]{}, err
	}
	remainder, err := decodedLength.Remainder.Drop(n)
	if err != nil {
		return DecodeResult[V]{}, err
	}
	return DecodeResult[V]{Value: decoded.Value, Remainder: remainder}, nil
}

// Eager adapts a ByteVector-valued codec into a []byte-valued one by
// materializing the decoded vector eagerly, rather than leaving it as a
// lazily-readable handle.
func Eager(bvCodec Codec[bytevector.ByteVector]) Codec[[]byte] {
	return eagerCodec{inner: bvCodec}
}

type eagerCodec struct{ inner Codec[bytevector.ByteVector] }

func (c eagerCodec) Encode(v []byte) (bytevector.ByteVector, error) {
	return c.inner.Encode(bytevector.FromBytes(v))
}

func (c eagerCodec) Decode(input bytevector.ByteVector) (DecodeResult[[]byte], error) {
	decoded, err := c.inner.Decode(input)
	if err != nil {
		return DecodeResult[[]byte]{}, err
	}
	buf, err := decoded.Value.ToVec()
	if err != nil {
		return DecodeResult[[]byte]{}, err
	}
	return DecodeResult[[]byte]{Value: buf, Remainder: decoded.Remainder}, nil
}
