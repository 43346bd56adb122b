package codec

import (
	"testing"

	"github.com/plausiblelabs/rcodec/bytevector"
	"github.com/plausiblelabs/rcodec/hlist"
)

func TestHNilCodecConsumesNothing(t *testing.T) {
	c := HNilCodec()
	encoded, err := c.Encode(hlist.Nil{})
	if err != nil {
		t.Fatal(err)
	}
	if encoded.Length() != 0 {
		t.Fatalf("expected empty encoding, got length %d", encoded.Length())
	}

	input := bytevector.FromBytes([]byte{1, 2})
	decoded, err := c.Decode(input)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Remainder.Length() != 2 {
		t.Fatal("hnil codec should not consume any input")
	}
}

func TestHListPrependRoundTrip(t *testing.T) {
	c := HListPrepend(Uint8(), HListPrepend(Uint16BE(), HNilCodec()))
	value := hlist.New(uint8(7), hlist.New(uint16(0x0102), hlist.Nil{}))

	encoded, err := c.Encode(value)
	if err != nil {
		t.Fatal(err)
	}
	expectBytes(t, encoded, 7, 0x01, 0x02)

	decoded, err := c.Decode(encoded)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Value.Head != 7 || decoded.Value.Tail.Head != 0x0102 {
		t.Fatalf("decoded = %+v", decoded.Value)
	}
	if decoded.Remainder.Length() != 0 {
		t.Fatal("expected the whole input to be consumed")
	}
}

func TestHListFlatPrependChoosesTailByHead(t *testing.T) {
	c := HListFlatPrepend(Uint8(), func(tag uint8) Codec[uint16] {
		if tag == 0 {
			return constZero{}
		}
		return Uint16BE()
	})

	decoded, err := c.Decode(bytevector.FromBytes([]byte{1, 0x01, 0x02}))
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Value.Tail != 0x0102 {
		t.Fatalf("tail = %#x, want 0x0102", decoded.Value.Tail)
	}

	zeroDecoded, err := c.Decode(bytevector.FromBytes([]byte{0, 0xff, 0xff}))
	if err != nil {
		t.Fatal(err)
	}
	if zeroDecoded.Value.Tail != 0 {
		t.Fatalf("tail = %#x, want 0 when tag selects the zero codec", zeroDecoded.Value.Tail)
	}
}

// constZero is a Codec[uint16] that always decodes to 0 without consuming
// any input, used to exercise data-dependent tail selection.
type constZero struct{}

func (constZero) Encode(uint16) (bytevector.ByteVector, error) {
	return bytevector.Empty(), nil
}

func (constZero) Decode(input bytevector.ByteVector) (DecodeResult[uint16], error) {
	return DecodeResult[uint16]{Value: 0, Remainder: input}, nil
}

func TestDropLeftDiscardsUnitValue(t *testing.T) {
	c := DropLeft(Ignore(2), Uint8())
	input := bytevector.FromBytes([]byte{0, 0, 42})
	decoded, err := c.Decode(input)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Value != 42 {
		t.Fatalf("decoded value = %d, want 42", decoded.Value)
	}
}

type point struct {
	X, Y uint8
}

func (p point) ToHList() hlist.Cons[uint8, hlist.Cons[uint8, hlist.Nil]] {
	return hlist.New(p.X, hlist.New(p.Y, hlist.Nil{}))
}

func pointFromHList(l hlist.Cons[uint8, hlist.Cons[uint8, hlist.Nil]]) point {
	return point{X: l.Head, Y: l.Tail.Head}
}

func TestStructCodecRoundTrip(t *testing.T) {
	hlistCodec := HListPrepend(Uint8(), HListPrepend(Uint8(), HNilCodec()))
	c := StructCodec[hlist.Cons[uint8, hlist.Cons[uint8, hlist.Nil]], point](hlistCodec, pointFromHList)

	encoded, err := c.Encode(point{X: 3, Y: 4})
	if err != nil {
		t.Fatal(err)
	}
	expectBytes(t, encoded, 3, 4)

	decoded, err := c.Decode(encoded)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Value != (point{X: 3, Y: 4}) {
		t.Fatalf("decoded = %+v", decoded.Value)
	}
}
