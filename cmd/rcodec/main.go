// Command rcodec reports the size of every file matching a glob pattern
// under a root directory, transparently decompressing .xz members through
// the library's xz blob codec. Results are memoized both in-process and on
// disk, so that repeat runs over the same tree skip re-decompressing
// unchanged files.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/plausiblelabs/rcodec/bytevector"
	"github.com/plausiblelabs/rcodec/codec"
	"github.com/plausiblelabs/rcodec/codeccache"
	"github.com/plausiblelabs/rcodec/rcodecconfig"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: rcodec <root-dir> <glob-pattern>")
		os.Exit(2)
	}
	root, pattern := os.Args[1], os.Args[2]

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	store, err := codeccache.OpenStore(cacheDir(log), log)
	if err != nil {
		log.Warn("cache directory unavailable, continuing without it", "error", err)
		store = nil
	}
	defer store.Close()

	memoSlots := rcodecconfig.CacheBytes() / (256 * 1024) // rough slots at ~256KiB/entry
	memo := codeccache.NewMemo[[]byte]("xz-blob", memoSlots)

	matches, err := doublestar.Glob(os.DirFS(root), pattern)
	if err != nil {
		log.Error("invalid glob pattern", "pattern", pattern, "error", err)
		os.Exit(1)
	}

	for _, rel := range matches {
		report(log, store, memo, rel, filepath.Join(root, rel))
	}
}

func report(log *slog.Logger, store *codeccache.Store, memo *codeccache.Memo[[]byte], rel, path string) {
	v, err := bytevector.FromFile(path)
	if err != nil {
		log.Warn("skipping unreadable file", "path", path, "error", err)
		return
	}

	if strings.HasSuffix(rel, ".xz") {
		reportXZ(log, store, memo, rel, v)
		return
	}

	key, err := codeccache.NewKey("file-contents", v)
	if err != nil {
		log.Warn("failed to hash file", "path", path, "error", err)
		return
	}
	fmt.Printf("%s\t%d bytes\t%s\n", rel, v.Length(), key)
}

func reportXZ(log *slog.Logger, store *codeccache.Store, memo *codeccache.Memo[[]byte], rel string, v bytevector.ByteVector) {
	key, err := codeccache.NewKey("xz-blob", v)
	if err != nil {
		log.Warn("failed to hash xz member", "path", rel, "error", err)
		return
	}

	if cached, hit := store.Get(key); hit {
		fmt.Printf("%s\t%d bytes compressed -> %d bytes (disk cache)\n", rel, v.Length(), len(cached))
		return
	}

	result, err := memo.Decode(codec.XZBlob(), v)
	if err != nil {
		log.Warn("failed to decompress xz member", "path", rel, "error", err)
		return
	}

	store.Put(key, result.Value)
	fmt.Printf("%s\t%d bytes compressed -> %d bytes\n", rel, v.Length(), len(result.Value))
}

// cacheDir resolves the directory backing the on-disk decode cache,
// honoring RCODEC_CACHE_DIR before falling back to the OS user cache
// directory.
func cacheDir(log *slog.Logger) string {
	if dir := os.Getenv("RCODEC_CACHE_DIR"); dir != "" {
		return dir
	}
	base, err := os.UserCacheDir()
	if err != nil {
		log.Warn("could not determine user cache directory, using ./.rcodec-cache", "error", err)
		return ".rcodec-cache"
	}
	return filepath.Join(base, "rcodec")
}
