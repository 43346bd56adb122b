// Package codeccache adds an optional decode-memoization layer in front of
// any codec.Codec: an in-process, tinylfu-admission cache for hot values
// (Memo) and an on-disk, pebble-backed cache for cross-run persistence
// (Store). Both are invisible on failure: a cache that can't be read from
// or written to degrades to calling the wrapped codec directly, never
// surfaces as a decode error.
package codeccache

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/cespare/xxhash/v2"
	"github.com/plausiblelabs/rcodec/bytevector"
)

// Key identifies a memoized decode by the codec's name and the content of
// the bytes it was asked to decode.
type Key struct {
	h uint64
}

// NewKey hashes codecName and the full contents of input into a Key.
// Two inputs with the same bytes under the same codec name collide on
// purpose: that's the cache hit.
func NewKey(codecName string, input bytevector.ByteVector) (Key, error) {
	d := xxhash.New()
	d.WriteString(codecName)
	d.Write([]byte{0})

	const chunk = 4096
	var buf [chunk]byte
	total := input.Length()
	for off := uint64(0); off < total; {
		n := total - off
		if n > chunk {
			n = chunk
		}
		if _, err := input.Read(buf[:n], off, n); err != nil {
			return Key{}, err
		}
		d.Write(buf[:n])
		off += n
	}
	return Key{h: d.Sum64()}, nil
}

func (k Key) bytes() []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], k.h)
	return b[:]
}

// String renders the key as lowercase hex, mainly for logging.
func (k Key) String() string {
	return hex.EncodeToString(k.bytes())
}
