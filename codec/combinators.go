package codec

import (
	"github.com/plausiblelabs/rcodec/bytevector"
	"github.com/plausiblelabs/rcodec/hlist"
)

// HNilCodec codes the empty hlist: it consumes nothing and produces nothing.
func HNilCodec() Codec[hlist.Nil] {
	return hnilCodec{}
}

type hnilCodec struct{}

func (hnilCodec) Encode(hlist.Nil) (bytevector.ByteVector, error) {
	return bytevector.Empty(), nil
}

func (hnilCodec) Decode(input bytevector.ByteVector) (DecodeResult[hlist.Nil], error) {
	return DecodeResult[hlist.Nil]{Value: hlist.Nil{}, Remainder: input}, nil
}

// HListPrepend composes a codec for the head of an hlist with a codec for
// its tail into a codec for the combined Cons. The two component codecs are
// independent of each other's decoded value.
func HListPrepend[H any, T any](headCodec Codec[H], tailCodec Codec[T]) Codec[hlist.Cons[H, T]] {
	return hlistPrependCodec[H, T]{headCodec: headCodec, tailCodec: tailCodec}
}

type hlistPrependCodec[H any, T any] struct {
	headCodec Codec[H]
	tailCodec Codec[T]
}

func (c hlistPrependCodec[H, T]) Encode(v hlist.Cons[H, T]) (bytevector.ByteVector, error) {
	headBytes, err := c.headCodec.Encode(v.Head)
	if err != nil {
		return bytevector.ByteVector{}, err
	}
	tailBytes, err := c.tailCodec.Encode(v.Tail)
	if err != nil {
		return bytevector.ByteVector{}, err
	}
	return bytevector.Append(headBytes, tailBytes), nil
}

func (c hlistPrependCodec[H, T]) Decode(input bytevector.ByteVector) (DecodeResult[hlist.Cons[H, T]], error) {
	head, err := c.headCodec.Decode(input)
	if err != nil {
		return DecodeResult[hlist.Cons[H, T]]{}, err
	}
	tail, err := c.tailCodec.Decode(head.Remainder)
	if err != nil {
		return DecodeResult[hlist.Cons[H, T]]{}, err
	}
	return DecodeResult[hlist.Cons[H, T]]{
		Value:     hlist.New(head.Value, tail.Value),
		Remainder: tail.Remainder,
	}, nil
}

// HListFlatPrepend is HListPrepend with a data-dependent tail: the tail
// codec is chosen from the already-decoded (or about-to-be-encoded) head
// value, so later fields can vary in shape based on earlier ones (e.g. a
// tag byte selecting the codec for the rest of the record).
func HListFlatPrepend[H any, T any](headCodec Codec[H], tailCodecFor func(H) Codec[T]) Codec[hlist.Cons[H, T]] {
	return hlistFlatPrependCodec[H, T]{headCodec: headCodec, tailCodecFor: tailCodecFor}
}

type hlistFlatPrependCodec[H any, T any] struct {
	headCodec    Codec[H]
	tailCodecFor func(H) Codec[T]
}

func (c hlistFlatPrependCodec[H, T]) Encode(v hlist.Cons[H, T]) (bytevector.ByteVector, error) {
	headBytes, err := c.headCodec.Encode(v.Head)
	if err != nil {
		return bytevector.ByteVector{}, err
	}
	tailBytes, err := c.tailCodecFor(v.Head).Encode(v.Tail)
	if err != nil {
		return bytevector.ByteVector{}, err
	}
	return bytevector.Append(headBytes, tailBytes), nil
}

func (c hlistFlatPrependCodec[H, T]) Decode(input bytevector.ByteVector) (DecodeResult[hlist.Cons[H, T]], error) {
	head, err := c.headCodec.Decode(input)
	if err != nil {
		return DecodeResult[hlist.Cons[H, T]]{}, err
	}
	tail, err := c.tailCodecFor(head.Value).Decode(head.Remainder)
	if err != nil {
		return DecodeResult[hlist.Cons[H, T]]{}, err
	}
	return DecodeResult[hlist.Cons[H, T]]{
		Value:     hlist.New(head.Value, tail.Value),
		Remainder: tail.Remainder,
	}, nil
}

// DropLeft sequences a Unit-valued codec (typically Ignore or Constant)
// ahead of a value codec, discarding the left side's decoded value and
// keeping only valueCodec's.
func DropLeft[V any](unitCodec Codec[Unit], valueCodec Codec[V]) Codec[V] {
	return dropLeftCodec[V]{unitCodec: unitCodec, valueCodec: valueCodec}
}

type dropLeftCodec[V any] struct {
	unitCodec  Codec[Unit]
	valueCodec Codec[V]
}

func (c dropLeftCodec[V]) Encode(v V) (bytevector.ByteVector, error) {
	unitBytes, err := c.unitCodec.Encode(Unit{})
	if err != nil {
		return bytevector.ByteVector{}, err
	}
	valueBytes, err := c.valueCodec.Encode(v)
	if err != nil {
		return bytevector.ByteVector{}, err
	}
	return bytevector.Append(unitBytes, valueBytes), nil
}

func (c dropLeftCodec[V]) Decode(input bytevector.ByteVector) (DecodeResult[V], error) {
	left, err := c.unitCodec.Decode(input)
	if err != nil {
		return DecodeResult[V]{}, err
	}
	return c.valueCodec.Decode(left.Remainder)
}

// WithContext wraps inner so that any codecerr.Error it produces gains label
// as the outermost segment of its context path. Non-rcodec errors pass
// through unchanged.
func WithContext[V any](label string, inner Codec[V]) Codec[V] {
	return withContextCodec[V]{label: label, inner: inner}
}

type withContextCodec[V any] struct {
	label string
	inner Codec[V]
}

func (c withContextCodec[V]) Encode(v V) (bytevector.ByteVector, error) {
	encoded, err := c.inner.Encode(v)
	if err != nil {
		return bytevector.ByteVector{}, pushContext(c.label, err)
	}
	return encoded, nil
}

func (c withContextCodec[V]) Decode(input bytevector.ByteVector) (DecodeResult[V], error) {
	decoded, err := c.inner.Decode(input)
	if err != nil {
		return DecodeResult[V]{}, pushContext(c.label, err)
	}
	return decoded, nil
}
