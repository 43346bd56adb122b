package codec

import (
	"bytes"
	"io"
	"math"

	"github.com/plausiblelabs/rcodec/bytevector"
	"github.com/therootcompany/xz"
)

// XZBlob decodes the whole of its input as an xz-compressed stream,
// consuming it entirely and returning the decompressed bytes as the value
// with an empty remainder. github.com/therootcompany/xz exposes only a
// decompressing reader, no writer, so Encode always fails; this mirrors how
// the archive readers that depend on this library only ever read xz
// members, never produce them.
func XZBlob() Codec[[]byte] {
	return xzBlobCodec{}
}

type xzBlobCodec struct{}

func (xzBlobCodec) Encode([]byte) (bytevector.ByteVector, error) {
	return bytevector.ByteVector{}, codecErrf("xz encoding is not supported by this codec")
}

func (xzBlobCodec) Decode(input bytevector.ByteVector) (DecodeResult[[]byte], error) {
	raw, err := input.ToVec()
	if err != nil {
		return DecodeResult[[]byte]{}, err
	}
	r, err := xz.NewReader(bytes.NewReader(raw), xz.DefaultDictMax)
	if err != nil {
		return DecodeResult[[]byte]{}, codecErrf("Failed to open xz stream: %v", err)
	}
	decompressed, err := io.ReadAll(io.LimitReader(r, math.MaxInt64))
	if err != nil {
		return DecodeResult[[]byte]{}, codecErrf("Failed to decompress xz stream: %v", err)
	}
	return DecodeResult[[]byte]{Value: decompressed, Remainder: bytevector.Empty()}, nil
}
