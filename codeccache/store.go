package codeccache

import (
	"log/slog"

	"github.com/cockroachdb/pebble/v2"
)

// Store is an on-disk cache of decompressed or otherwise expensively
// derived blobs, keyed by Key, persisted across process runs with pebble.
// Every method degrades silently to a cache miss on any storage error: a
// corrupted or unavailable cache directory must never fail a decode, only
// slow it down.
type Store struct {
	db  *pebble.DB
	log *slog.Logger
}

// OpenStore opens (creating if necessary) a pebble-backed cache directory.
func OpenStore(dir string, log *slog.Logger) (*Store, error) {
	if log == nil {
		log = slog.Default()
	}
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, err
	}
	return &Store{db: db, log: log}, nil
}

// Close releases the underlying pebble handle.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	return s.db.Close()
}

// Get returns the cached blob for key, and whether it was found. A storage
// error is logged and treated as a miss.
func (s *Store) Get(key Key) ([]byte, bool) {
	if s == nil {
		return nil, false
	}
	v, closer, err := s.db.Get(key.bytes())
	if err != nil {
		if err != pebble.ErrNotFound {
			s.log.Warn("codeccache: store read failed", "error", err)
		}
		return nil, false
	}
	defer closer.Close()
	out := make([]byte, len(v))
	copy(out, v)
	return out, true
}

// Put persists value under key. A storage error is logged and otherwise
// ignored: the caller already has the value in hand and doesn't need the
// write to succeed.
func (s *Store) Put(key Key, value []byte) {
	if s == nil {
		return
	}
	if err := s.db.Set(key.bytes(), value, pebble.Sync); err != nil {
		s.log.Warn("codeccache: store write failed", "error", err)
	}
}
