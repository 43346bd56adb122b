package codeccache

import (
	"github.com/dgryski/go-tinylfu"
	"github.com/plausiblelabs/rcodec/bytevector"
	"github.com/plausiblelabs/rcodec/codec"
)

// entry records enough to reconstruct a DecodeResult without retaining the
// original input vector: the decoded value, and how many bytes of the input
// the decode consumed (the remainder is just input.Drop(consumed)).
type entry[V any] struct {
	value    V
	consumed uint64
}

// Memo is an in-process admission cache of decode results for a single
// codec, keyed by the codec's name and the input bytes. A nil *Memo behaves
// like no cache at all: every method is safe to call on it.
type Memo[V any] struct {
	cache *tinylfu.T[uint64, entry[V]]
	name  string
}

// identityHash is the Memo cache's hasher: keys are already xxhash digests,
// so there's no second hash worth paying for.
func identityHash(k uint64) uint64 { return k }

// NewMemo creates a Memo admitting up to size hot entries for the codec
// identified by name. The sample window follows the library's own ratio of
// ten samples per admitted slot.
func NewMemo[V any](name string, size int) *Memo[V] {
	if size <= 0 {
		return nil
	}
	return &Memo[V]{cache: tinylfu.New[uint64, entry[V]](size, size*10, identityHash), name: name}
}

// Decode returns inner.Decode(input), transparently serving a cached result
// when available and populating the cache on a miss. Any failure to hash
// the key or to use the cache falls back to calling inner directly; only
// inner's own decode error is ever returned.
func (m *Memo[V]) Decode(inner codec.Codec[V], input bytevector.ByteVector) (codec.DecodeResult[V], error) {
	if m == nil {
		return inner.Decode(input)
	}

	key, keyErr := NewKey(m.name, input)
	if keyErr == nil {
		if e, ok := m.cache.Get(key.h); ok {
			if remainder, err := input.Drop(e.consumed); err == nil {
				return codec.DecodeResult[V]{Value: e.value, Remainder: remainder}, nil
			}
		}
	}

	result, err := inner.Decode(input)
	if err != nil {
		return result, err
	}

	if keyErr == nil {
		consumed := input.Length() - result.Remainder.Length()
		m.cache.Add(key.h, entry[V]{value: result.Value, consumed: consumed})
	}
	return result, nil
}
