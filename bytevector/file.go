package bytevector

import (
	"io"
	"os"
	"runtime"

	"github.com/plausiblelabs/rcodec/codecerr"
)

// positionedReader performs reads at an explicit offset with no shared
// cursor, so concurrent reads against the same open file never race on a
// seek position. openPositionedReader supplies the platform-specific
// implementation (raw pread on unix, os.File.ReadAt elsewhere).
type positionedReader interface {
	ReadAt(p []byte, off int64) (int, error)
	Close() error
}

// fileNode is a handle onto an on-disk file, opened read-only. Its declared
// length is captured at open time; the file's observable content through
// this node is treated as immutable for the lifetime of the handle.
type fileNode struct {
	pr     positionedReader
	length uint64
	path   string
}

// FromFile opens path read-only and returns a byte vector backed by it. The
// file is stat'd once to learn its length; reads are satisfied with
// positioned reads on demand, never a shared seek cursor.
func FromFile(path string) (ByteVector, error) {
	info, err := os.Stat(path)
	if err != nil {
		return ByteVector{}, codecerr.Newf("Failed to open file %s: %v", path, err)
	}
	pr, err := openPositionedReader(path)
	if err != nil {
		return ByteVector{}, codecerr.Newf("Failed to open file %s: %v", path, err)
	}
	n := &fileNode{pr: pr, length: uint64(info.Size()), path: path}
	runtime.AddCleanup(n, func(c positionedReader) { _ = c.Close() }, pr)
	return ByteVector{n: n}, nil
}

func (n *fileNode) length() uint64 { return n.length }

// readAt performs a positioned read, retrying against the remainder of the
// request until the full count is satisfied or a non-transient error
// occurs. This loop is not error recovery: it is the well-defined semantics
// of a positioned read against a blocking stream, which may return fewer
// bytes than requested with no error at all.
func (n *fileNode) readAt(dst []byte, offset, length uint64) (int, *codecerr.Error) {
	if err := boundsCheck("read", offset, length, n.length); err != nil {
		return 0, err
	}

	var total uint64
	for total < length {
		m, err := n.pr.ReadAt(dst[total:length], int64(offset+total))
		if m > 0 {
			total += uint64(m)
		}
		if err != nil {
			if err == io.EOF && total >= length {
				break
			}
			return int(total), codecerr.Newf("Failed to read file %s: %v", n.path, err)
		}
		if m == 0 {
			return int(total), codecerr.Newf("Failed to read file %s: short read made no progress", n.path)
		}
	}
	return int(total), nil
}
