package codec

import "github.com/plausiblelabs/rcodec/bytevector"

// HListConvertible is implemented by a record type R that can expose its
// fields as an hlist of shape L, so StructCodec can bridge between a codec
// for L and a codec for R.
type HListConvertible[L any] interface {
	ToHList() L
}

// StructCodec bridges a codec over an hlist shape L to a codec over a
// record type R, given the hlist-to-record direction as fromHList and the
// record-to-hlist direction via R's ToHList method. The two directions must
// be mutual inverses for round-tripping to hold.
func StructCodec[L any, R HListConvertible[L]](hlistCodec Codec[L], fromHList func(L) R) Codec[R] {
	return structCodec[L, R]{hlistCodec: hlistCodec, fromHList: fromHList}
}

type structCodec[L any, R HListConvertible[L]] struct {
	hlistCodec Codec[L]
	fromHList  func(L) R
}

func (c structCodec[L, R]) Encode(v R) (bytevector.ByteVector, error) {
	return c.hlistCodec.Encode(v.ToHList())
}

func (c structCodec[L, R]) Decode(input bytevector.ByteVector) (DecodeResult[R], error) {
	decoded, err := c.hlistCodec.Decode(input)
	if err != nil {
		return DecodeResult[R]{}, err
	}
	return DecodeResult[R]{Value: c.fromHList(decoded.Value), Remainder: decoded.Remainder}, nil
}
