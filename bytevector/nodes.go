package bytevector

import "github.com/plausiblelabs/rcodec/codecerr"

// emptyNode is the zero-length variant. It is a zero-size value, not a
// pointer, since there is exactly one empty byte vector and it holds no
// state worth sharing by reference.
type emptyNode struct{}

func (emptyNode) length() uint64 { return 0 }

func (emptyNode) readAt(dst []byte, offset, length uint64) (int, *codecerr.Error) {
	if err := boundsCheck("read", offset, length, 0); err != nil {
		return 0, err
	}
	if length == 0 {
		return 0, nil
	}
	return 0, codecerr.New("Cannot read from empty vector")
}

// inlineNode stores up to InlineSizeLimit bytes directly, avoiding a heap
// allocation for small values — most wire integers and magic numbers never
// need more than this.
type inlineNode struct {
	bytes  [InlineSizeLimit]byte
	length uint8
}

func (n inlineNode) length() uint64 { return uint64(n.length) }

func (n inlineNode) readAt(dst []byte, offset, length uint64) (int, *codecerr.Error) {
	total := uint64(n.length)
	if err := boundsCheck("read", offset, length, total); err != nil {
		return 0, err
	}
	count := total - offset
	if count > length {
		count = length
	}
	copy(dst[:count], n.bytes[offset:offset+count])
	return int(count), nil
}

// heapNode owns a byte slice on the heap. Once wrapped in a ByteVector
// handle, the slice is never mutated: all sharing is copy-on-nothing
// because the contents are immutable by contract.
type heapNode struct {
	bytes []byte
}

func (n *heapNode) length() uint64 { return uint64(len(n.bytes)) }

func (n *heapNode) readAt(dst []byte, offset, length uint64) (int, *codecerr.Error) {
	total := uint64(len(n.bytes))
	if err := boundsCheck("read", offset, length, total); err != nil {
		return 0, err
	}
	count := total - offset
	if count > length {
		count = length
	}
	copy(dst[:count], n.bytes[offset:offset+count])
	return int(count), nil
}

// appendNode is a zero-copy concatenation of two nodes. Its length is
// cached at construction so Length() stays O(1) no matter how deep the
// rope gets.
type appendNode struct {
	lhs, rhs node
	len      uint64
}

func (n *appendNode) length() uint64 { return n.len }

func (n *appendNode) readAt(dst []byte, offset, length uint64) (int, *codecerr.Error) {
	if err := boundsCheck("read", offset, length, n.len); err != nil {
		return 0, err
	}

	lhsLen := n.lhs.length()
	var lhsRead int
	if offset < lhsLen {
		lcount := lhsLen - offset
		if lcount > length {
			lcount = length
		}
		m, err := n.lhs.readAt(dst[:lcount], offset, lcount)
		if err != nil {
			return 0, err
		}
		lhsRead = m
	}

	if uint64(lhsRead) >= length {
		return lhsRead, nil
	}

	roff := uint64(0)
	if offset > lhsLen {
		roff = offset - lhsLen
	}
	rcount := length - uint64(lhsRead)
	m, err := n.rhs.readAt(dst[lhsRead:uint64(lhsRead)+rcount], roff, rcount)
	if err != nil {
		return lhsRead, err
	}
	return lhsRead + m, nil
}

// viewNode is a zero-copy window of vlen bytes starting at offset within
// target.
type viewNode struct {
	target       node
	offset, vlen uint64
}

func (n *viewNode) length() uint64 { return n.vlen }

func (n *viewNode) readAt(dst []byte, offset, length uint64) (int, *codecerr.Error) {
	if err := boundsCheck("read", offset, length, n.vlen); err != nil {
		return 0, err
	}
	if n.offset > ^uint64(0)-offset {
		return 0, codecerr.Newf("Requested read offset of %d plus storage offset %d would overflow maximum value of usize", offset, n.offset)
	}
	return n.target.readAt(dst, n.offset+offset, length)
}

// newAppendNode builds a raw Append node without the empty-collapse that the
// public Append function performs; used internally by view's split case,
// where both sides are already known to be non-empty.
func newAppendNode(lhs, rhs node) node {
	return &appendNode{lhs: lhs, rhs: rhs, len: lhs.length() + rhs.length()}
}
