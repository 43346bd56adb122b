package codec

import (
	"encoding/binary"

	"github.com/plausiblelabs/rcodec/bytevector"
)

// fixedWidthCodec implements every fixed-width integer codec in this file:
// encode always produces exactly width bytes, decode always consumes
// exactly width bytes. The two closures hold only pure functions (no
// captured mutable state), so values of this type stay safe to share.
type fixedWidthCodec[V any] struct {
	width  uint64
	encode func(V, []byte)
	decode func([]byte) V
}

func (c fixedWidthCodec[V]) Encode(v V) (bytevector.ByteVector, error) {
	buf := make([]byte, c.width)
	c.encode(v, buf)
	return bytevector.FromBytes(buf), nil
}

func (c fixedWidthCodec[V]) Decode(input bytevector.ByteVector) (DecodeResult[V], error) {
	buf := make([]byte, c.width)
	if _, err := input.Read(buf, 0, c.width); err != nil {
		return DecodeResult[V]{}, err
	}
	remainder, err := input.Drop(c.width)
	if err != nil {
		return DecodeResult[V]{}, err
	}
	return DecodeResult[V]{Value: c.decode(buf), Remainder: remainder}, nil
}

// Uint8 codes a single unsigned byte.
func Uint8() Codec[uint8] {
	return fixedWidthCodec[uint8]{
		width:  1,
		encode: func(v uint8, b []byte) { b[0] = v },
		decode: func(b []byte) uint8 { return b[0] },
	}
}

// Int8 codes a single signed byte.
func Int8() Codec[int8] {
	return fixedWidthCodec[int8]{
		width:  1,
		encode: func(v int8, b []byte) { b[0] = byte(v) },
		decode: func(b []byte) int8 { return int8(b[0]) },
	}
}

// Uint16BE codes a big-endian uint16.
func Uint16BE() Codec[uint16] {
	return fixedWidthCodec[uint16]{
		width:  2,
		encode: func(v uint16, b []byte) { binary.BigEndian.PutUint16(b, v) },
		decode: func(b []byte) uint16 { return binary.BigEndian.Uint16(b) },
	}
}

// Uint16LE codes a little-endian uint16.
func Uint16LE() Codec[uint16] {
	return fixedWidthCodec[uint16]{
		width:  2,
		encode: func(v uint16, b []byte) { binary.LittleEndian.PutUint16(b, v) },
		decode: func(b []byte) uint16 { return binary.LittleEndian.Uint16(b) },
	}
}

// Int16BE codes a big-endian int16.
func Int16BE() Codec[int16] {
	return fixedWidthCodec[int16]{
		width:  2,
		encode: func(v int16, b []byte) { binary.BigEndian.PutUint16(b, uint16(v)) },
		decode: func(b []byte) int16 { return int16(binary.BigEndian.Uint16(b)) },
	}
}

// Int16LE codes a little-endian int16.
func Int16LE() Codec[int16] {
	return fixedWidthCodec[int16]{
		width:  2,
		encode: func(v int16, b []byte) { binary.LittleEndian.PutUint16(b, uint16(v)) },
		decode: func(b []byte) int16 { return int16(binary.LittleEndian.Uint16(b)) },
	}
}

// Uint32BE codes a big-endian uint32.
func Uint32BE() Codec[uint32] {
	return fixedWidthCodec[uint32]{
		width:  4,
		encode: func(v uint32, b []byte) { binary.BigEndian.PutUint32(b, v) },
		decode: func(b []byte) uint32 { return binary.BigEndian.Uint32(b) },
	}
}

// Uint32LE codes a little-endian uint32.
func Uint32LE() Codec[uint32] {
	return fixedWidthCodec[uint32]{
		width:  4,
		encode: func(v uint32, b []byte) { binary.LittleEndian.PutUint32(b, v) },
		decode: func(b []byte) uint32 { return binary.LittleEndian.Uint32(b) },
	}
}

// Int32BE codes a big-endian int32.
func Int32BE() Codec[int32] {
	return fixedWidthCodec[int32]{
		width:  4,
		encode: func(v int32, b []byte) { binary.BigEndian.PutUint32(b, uint32(v)) },
		decode: func(b []byte) int32 { return int32(binary.BigEndian.Uint32(b)) },
	}
}

// Int32LE codes a little-endian int32.
func Int32LE() Codec[int32] {
	return fixedWidthCodec[int32]{
		width:  4,
		encode: func(v int32, b []byte) { binary.LittleEndian.PutUint32(b, uint32(v)) },
		decode: func(b []byte) int32 { return int32(binary.LittleEndian.Uint32(b)) },
	}
}

// Uint64BE codes a big-endian uint64.
func Uint64BE() Codec[uint64] {
	return fixedWidthCodec[uint64]{
		width:  8,
		encode: func(v uint64, b []byte) { binary.BigEndian.PutUint64(b, v) },
		decode: func(b []byte) uint64 { return binary.BigEndian.Uint64(b) },
	}
}

// Uint64LE codes a little-endian uint64.
func Uint64LE() Codec[uint64] {
	return fixedWidthCodec[uint64]{
		width:  8,
		encode: func(v uint64, b []byte) { binary.LittleEndian.PutUint64(b, v) },
		decode: func(b []byte) uint64 { return binary.LittleEndian.Uint64(b) },
	}
}

// Int64BE codes a big-endian int64.
func Int64BE() Codec[int64] {
	return fixedWidthCodec[int64]{
		width:  8,
		encode: func(v int64, b []byte) { binary.BigEndian.PutUint64(b, uint64(v)) },
		decode: func(b []byte) int64 { return int64(binary.BigEndian.Uint64(b)) },
	}
}

// Int64LE codes a little-endian int64.
func Int64LE() Codec[int64] {
	return fixedWidthCodec[int64]{
		width:  8,
		encode: func(v int64, b []byte) { binary.LittleEndian.PutUint64(b, uint64(v)) },
		decode: func(b []byte) int64 { return int64(binary.LittleEndian.Uint64(b)) },
	}
}
