package bytevector

import "github.com/plausiblelabs/rcodec/codecerr"

// view returns a projection of n spanning length bytes starting at offset,
// collapsing through View-of-View and splitting across Append boundaries so
// that the result is never deeper than necessary.
func view(n node, offset, length uint64) (node, *codecerr.Error) {
	total := n.length()
	if err := boundsCheck("view", offset, length, total); err != nil {
		return nil, err
	}
	if length == total {
		return n, nil
	}

	switch t := n.(type) {
	case emptyNode:
		return nil, codecerr.New("Cannot create view for empty vector")

	case *appendNode:
		lhsLen := t.lhs.length()
		switch {
		case offset+length <= lhsLen:
			return view(t.lhs, offset, length)
		case offset >= lhsLen:
			return view(t.rhs, offset-lhsLen, length)
		default:
			lhsViewLen := lhsLen - offset
			rhsViewLen := length - lhsViewLen
			lv, err := view(t.lhs, offset, lhsViewLen)
			if err != nil {
				return nil, err
			}
			rv, err := view(t.rhs, 0, rhsViewLen)
			if err != nil {
				return nil, err
			}
			return newAppendNode(lv, rv), nil
		}

	case *viewNode:
		if t.offset > ^uint64(0)-offset {
			return nil, codecerr.Newf("Requested view offset of %d plus storage offset %d would overflow maximum value of usize", offset, t.offset)
		}
		return view(t.target, t.offset+offset, length)

	default:
		// inlineNode, *heapNode, *fileNode: wrap in a fresh View.
		return &viewNode{target: n, offset: offset, vlen: length}, nil
	}
}
