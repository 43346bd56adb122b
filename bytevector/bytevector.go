// Package bytevector implements a persistent, rope-shaped byte container.
//
// A ByteVector is an immutable handle around one of several storage
// variants (empty, inline, heap, file, append, view). Handles are cheap to
// copy: the backing storage is shared, never mutated once observed, so
// cloning a handle never copies bytes. Concatenation (Append) and slicing
// (Take/Drop) are O(1) — they build tree nodes rather than linearizing —
// and the only place bytes actually get copied is Read, ToVec, and I/O
// against a File-backed handle.
package bytevector

import (
	"math"

	"github.com/plausiblelabs/rcodec/codecerr"
)

// InlineSizeLimit is the maximum length that can be stored directly inside
// a ByteVector handle without a heap allocation.
const InlineSizeLimit = 8

// node is the shared contract of every storage variant. All methods assume
// the caller already knows the node's own length; readAt re-validates
// offset/length against it before doing any variant-specific work, mirroring
// the belt-and-suspenders bounds checking of the reference implementation.
type node interface {
	length() uint64
	readAt(dst []byte, offset, length uint64) (int, *codecerr.Error)
}

// ByteVector is an immutable, persistent sequence of bytes.
type ByteVector struct {
	n node
}

var emptySingleton = ByteVector{n: emptyNode{}}

// Empty returns the byte vector of length 0.
func Empty() ByteVector {
	return emptySingleton
}

// resolved returns v's node, substituting the empty node for the zero value;
// both mean "no handle yet" / "zero bytes" and are treated identically.
func (v ByteVector) resolved() node {
	if v.n == nil {
		return emptyNode{}
	}
	return v.n
}

// FromBytes copies bytes into a new byte vector, using inline storage for
// short inputs and a heap allocation otherwise.
func FromBytes(bytes []byte) ByteVector {
	if len(bytes) <= InlineSizeLimit {
		var n inlineNode
		n.length = uint8(len(bytes))
		copy(n.bytes[:], bytes)
		return ByteVector{n: n}
	}
	owned := make([]byte, len(bytes))
	copy(owned, bytes)
	return ByteVector{n: &heapNode{bytes: owned}}
}

// Fill returns a byte vector containing value repeated count times.
func Fill(value byte, count uint64) ByteVector {
	if count == 0 {
		return Empty()
	}
	owned := make([]byte, count)
	for i := range owned {
		owned[i] = value
	}
	return ByteVector{n: &heapNode{bytes: owned}}
}

// Append returns a byte vector containing the contents of a followed by the
// contents of b. Either side being empty is collapsed away in O(1).
func Append(a, b ByteVector) ByteVector {
	al, bl := a.Length(), b.Length()
	switch {
	case al == 0 && bl == 0:
		return Empty()
	case al == 0:
		return b
	case bl == 0:
		return a
	default:
		return ByteVector{n: &appendNode{lhs: a.resolved(), rhs: b.resolved(), len: al + bl}}
	}
}

// Length returns the number of bytes in v. This is always O(1).
func (v ByteVector) Length() uint64 {
	return v.resolved().length()
}

// Read copies up to length bytes, starting at offset, into dst. It returns
// the number of bytes actually written. dst must have capacity for at least
// length bytes.
func (v ByteVector) Read(dst []byte, offset, length uint64) (int, error) {
	total := v.Length()
	if err := boundsCheck("read", offset, length, total); err != nil {
		return 0, err
	}
	n, err := v.resolved().readAt(dst, offset, length)
	if err != nil {
		return n, err
	}
	return n, nil
}

// Take returns the first n bytes of v, or an error if v is shorter than n.
func (v ByteVector) Take(n uint64) (ByteVector, error) {
	nn, err := view(v.resolved(), 0, n)
	if err != nil {
		return ByteVector{}, err
	}
	return ByteVector{n: nn}, nil
}

// Drop returns all but the first n bytes of v, or an error if v is shorter
// than n.
func (v ByteVector) Drop(n uint64) (ByteVector, error) {
	total := v.Length()
	if n > total {
		return ByteVector{}, codecerr.Newf("Requested length of %d bytes exceeds vector length of %d", n, total)
	}
	nn, err := view(v.resolved(), n, total-n)
	if err != nil {
		return ByteVector{}, err
	}
	return ByteVector{n: nn}, nil
}

// PadLeft returns a vector of length n consisting of zero or more leading
// zero bytes followed by v's contents. It is an error if v is already
// longer than n.
func (v ByteVector) PadLeft(n uint64) (ByteVector, error) {
	total := v.Length()
	if n < total {
		return ByteVector{}, codecerr.Newf("Requested padded length of %d bytes is smaller than vector length of %d", n, total)
	}
	if n == total {
		return v, nil
	}
	return Append(Fill(0, n-total), v), nil
}

// PadRight returns a vector of length n consisting of v's contents followed
// by zero or more trailing zero bytes. It is an error if v is already
// longer than n.
func (v ByteVector) PadRight(n uint64) (ByteVector, error) {
	total := v.Length()
	if n < total {
		return ByteVector{}, codecerr.Newf("Requested padded length of %d bytes is smaller than vector length of %d", n, total)
	}
	if n == total {
		return v, nil
	}
	return Append(v, Fill(0, n-total)), nil
}

// ToVec materializes v into a single contiguous, owned buffer. This is the
// one place (besides Read and I/O) where the rope is linearized.
func (v ByteVector) ToVec() ([]byte, error) {
	total := v.Length()
	buf := make([]byte, total)
	n, err := v.Read(buf, 0, total)
	if err != nil {
		return nil, err
	}
	if uint64(n) != total {
		return nil, codecerr.Newf("Short read while materializing byte vector: got %d of %d bytes", n, total)
	}
	return buf, nil
}

// Equal reports whether v and other have the same length and the same
// bytes at every index. Equality is structural on the observed byte
// sequence, never on tree shape.
func (v ByteVector) Equal(other ByteVector) bool {
	total := v.Length()
	if total != other.Length() {
		return false
	}
	const chunk = 4096
	abuf := make([]byte, chunk)
	bbuf := make([]byte, chunk)
	for off := uint64(0); off < total; {
		n := total - off
		if n > chunk {
			n = chunk
		}
		if _, err := v.Read(abuf[:n], off, n); err != nil {
			return false
		}
		if _, err := other.Read(bbuf[:n], off, n); err != nil {
			return false
		}
		for i := uint64(0); i < n; i++ {
			if abuf[i] != bbuf[i] {
				return false
			}
		}
		off += n
	}
	return true
}

const hexChars = "0123456789abcdef"

// String renders v as lowercase hex, two characters per byte, no separator.
func (v ByteVector) String() string {
	total := v.Length()
	out := make([]byte, 0, total*2)
	var buf [4096]byte
	for off := uint64(0); off < total; {
		n := total - off
		if n > uint64(len(buf)) {
			n = uint64(len(buf))
		}
		if _, err := v.Read(buf[:n], off, n); err != nil {
			return "<error: " + err.Error() + ">"
		}
		for i := uint64(0); i < n; i++ {
			b := buf[i]
			out = append(out, hexChars[b>>4], hexChars[b&0xf])
		}
		off += n
	}
	return string(out)
}

// boundsCheck implements the shared offset/length validation used by both
// the view and read algorithms: offset must not exceed total, offset+length
// must not overflow, and offset+length must not exceed total. op names the
// operation in the resulting error message ("view" or "read").
func boundsCheck(op string, offset, length, total uint64) *codecerr.Error {
	if offset > total {
		return codecerr.Newf("Requested %s offset of %d bytes exceeds vector length of %d", op, offset, total)
	}
	if length > math.MaxUint64-offset {
		return codecerr.Newf("Requested %s offset of %d and length %d bytes would overflow maximum value of usize", op, offset, length)
	}
	if offset+length > total {
		return codecerr.Newf("Requested %s offset of %d and length %d bytes exceeds vector length of %d", op, offset, length, total)
	}
	return nil
}
