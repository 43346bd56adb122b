//go:build unix

package bytevector

import (
	"os"

	"golang.org/x/sys/unix"
)

// unixPositionedReader reads via pread(2), grounding the "positioned read,
// no shared cursor" contract in the syscall that actually provides it,
// rather than leaning on the os package's own (already-pread-backed) path.
type unixPositionedReader struct {
	fd int
	f  *os.File
}

func openPositionedReader(path string) (positionedReader, error) {
	f, err := os.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, err
	}
	return &unixPositionedReader{fd: int(f.Fd()), f: f}, nil
}

func (r *unixPositionedReader) ReadAt(p []byte, off int64) (int, error) {
	return unix.Pread(r.fd, p, off)
}

func (r *unixPositionedReader) Close() error {
	return r.f.Close()
}
