package codec

import (
	"testing"

	"github.com/plausiblelabs/rcodec/bytevector"
)

func expectBytes(t *testing.T, v bytevector.ByteVector, want ...byte) {
	t.Helper()
	got, err := v.ToVec()
	if err != nil {
		t.Fatalf("ToVec failed: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("byte %d: got %#x, want %#x (full: got=%v want=%v)", i, got[i], want[i], got, want)
		}
	}
}

func TestUint8RoundTrip(t *testing.T) {
	c := Uint8()
	encoded, err := c.Encode(7)
	if err != nil {
		t.Fatal(err)
	}
	expectBytes(t, encoded, 7)

	decoded, err := c.Decode(encoded)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Value != 7 || decoded.Remainder.Length() != 0 {
		t.Fatalf("decoded = %+v", decoded)
	}
}

func TestUint16Endianness(t *testing.T) {
	be, err := Uint16BE().Encode(0x1234)
	if err != nil {
		t.Fatal(err)
	}
	expectBytes(t, be, 0x12, 0x34)

	le, err := Uint16LE().Encode(0x1234)
	if err != nil {
		t.Fatal(err)
	}
	expectBytes(t, le, 0x34, 0x12)
}

func TestInt64BigEndianNegative(t *testing.T) {
	encoded, err := Int64BE().Encode(-2)
	if err != nil {
		t.Fatal(err)
	}
	expectBytes(t, encoded, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xfe)

	decoded, err := Int64BE().Decode(encoded)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Value != -2 {
		t.Fatalf("decoded = %d, want -2", decoded.Value)
	}
}

func TestDecodeFailsOnShortInput(t *testing.T) {
	_, err := Uint8().Decode(bytevector.Empty())
	if err == nil {
		t.Fatal("expected an error decoding a uint8 from an empty vector")
	}
	want := "Requested read offset of 0 and length 1 bytes exceeds vector length of 0"
	if got := err.Error(); got != want {
		t.Fatalf("error = %q, want %q", got, want)
	}
}

func TestIgnoreEncodesZerosAndSkipsOnDecode(t *testing.T) {
	c := Ignore(3)
	encoded, err := c.Encode(Unit{})
	if err != nil {
		t.Fatal(err)
	}
	expectBytes(t, encoded, 0, 0, 0)

	input := bytevector.FromBytes([]byte{9, 9, 9, 1})
	decoded, err := c.Decode(input)
	if err != nil {
		t.Fatal(err)
	}
	expectBytes(t, decoded.Remainder, 1)
}

func TestConstantRejectsMismatch(t *testing.T) {
	c := Constant(bytevector.FromBytes([]byte{6, 6, 6}))
	_, err := c.Decode(bytevector.FromBytes([]byte{1, 2, 3, 4}))
	if err == nil {
		t.Fatal("expected mismatch error")
	}
	want := "Expected constant 060606 but got 010203"
	if got := err.Error(); got != want {
		t.Fatalf("error = %q, want %q", got, want)
	}
}

func TestConstantAcceptsMatch(t *testing.T) {
	c := Constant(bytevector.FromBytes([]byte{1, 2, 3}))
	decoded, err := c.Decode(bytevector.FromBytes([]byte{1, 2, 3, 4}))
	if err != nil {
		t.Fatal(err)
	}
	expectBytes(t, decoded.Remainder, 4)
}

func TestConstantFailsOnShortInput(t *testing.T) {
	c := Constant(bytevector.FromBytes([]byte{1, 2, 3}))
	_, err := c.Decode(bytevector.FromBytes([]byte{9}))
	if err == nil {
		t.Fatal("expected a view bounds error")
	}
	want := "Requested view offset of 0 and length 3 bytes exceeds vector length of 1"
	if got := err.Error(); got != want {
		t.Fatalf("error = %q, want %q", got, want)
	}
}

func TestFixedSizeBytesPadsAndTruncatesWindow(t *testing.T) {
	c := FixedSizeBytes(4, Uint16BE())
	encoded, err := c.Encode(0x0102)
	if err != nil {
		t.Fatal(err)
	}
	expectBytes(t, encoded, 0x01, 0x02, 0, 0)

	input := bytevector.FromBytes([]byte{0x01, 0x02, 0xff, 0xff, 0x99})
	decoded, err := c.Decode(input)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Value != 0x0102 {
		t.Fatalf("decoded value = %#x", decoded.Value)
	}
	expectBytes(t, decoded.Remainder, 0x99)
}

func TestFixedSizeBytesRejectsOversizedEncoding(t *testing.T) {
	c := FixedSizeBytes[bytevector.ByteVector](2, IdentityBytes())
	_, err := c.Encode(bytevector.FromBytes([]byte{1, 2, 3}))
	if err == nil {
		t.Fatal("expected an oversized-encoding error")
	}
	want := "Encoding requires 3 bytes but codec is limited to fixed length of 2"
	if got := err.Error(); got != want {
		t.Fatalf("error = %q, want %q", got, want)
	}
}

func TestVariableSizeBytesRoundTrip(t *testing.T) {
	c := VariableSizeBytes[uint8](Uint8(), IdentityBytes())
	payload := bytevector.FromBytes([]byte{1, 2, 3})
	encoded, err := c.Encode(payload)
	if err != nil {
		t.Fatal(err)
	}
	expectBytes(t, encoded, 3, 1, 2, 3)

	input := bytevector.Append(encoded, bytevector.FromBytes([]byte{0xaa}))
	decoded, err := c.Decode(input)
	if err != nil {
		t.Fatal(err)
	}
	if !decoded.Value.Equal(payload) {
		t.Fatalf("decoded value = %v, want %v", decoded.Value, payload)
	}
	expectBytes(t, decoded.Remainder, 0xaa)
}

func TestVariableSizeBytesRejectsOverflowingLength(t *testing.T) {
	c := VariableSizeBytes[uint8](Uint8(), IdentityBytes())
	big := make([]byte, 300)
	_, err := c.Encode(bytevector.FromBytes(big))
	if err == nil {
		t.Fatal("expected a length-overflow error")
	}
}

func TestEagerMaterializesBytes(t *testing.T) {
	c := Eager(Bytes(3))
	input := bytevector.FromBytes([]byte{1, 2, 3, 4})
	decoded, err := c.Decode(input)
	if err != nil {
		t.Fatal(err)
	}
	if len(decoded.Value) != 3 || decoded.Value[0] != 1 || decoded.Value[2] != 3 {
		t.Fatalf("decoded.Value = %v", decoded.Value)
	}
}

func TestWithContextPushesLabelOnFailure(t *testing.T) {
	c := WithContext("length", Uint8())
	_, err := c.Decode(bytevector.Empty())
	if err == nil {
		t.Fatal("expected an error")
	}
	want := "length: Requested read offset of 0 and length 1 bytes exceeds vector length of 0"
	if got := err.Error(); got != want {
		t.Fatalf("error = %q, want %q", got, want)
	}
}

func TestWithContextNestsOutermostFirst(t *testing.T) {
	c := WithContext("outer", WithContext("inner", Uint8()))
	_, err := c.Decode(bytevector.Empty())
	if err == nil {
		t.Fatal("expected an error")
	}
	want := "outer/inner: Requested read offset of 0 and length 1 bytes exceeds vector length of 0"
	if got := err.Error(); got != want {
		t.Fatalf("error = %q, want %q", got, want)
	}
}
