package hufftree

import (
	"fmt"
)

// BitReader is the bit-stream input contract: single bits consumed
// sequentially, with no buffering or rewind assumed.  *bitio.Reader from
// github.com/icza/bitio satisfies it.
type BitReader interface {
	ReadBool() (bool, error)
}

// BitWriter is the bit-stream output contract: single bits appended
// sequentially.  *bitio.Writer from github.com/icza/bitio satisfies it.
type BitWriter interface {
	WriteBool(bool) error
}

// WriteHeader writes the tree to w in the compact bit-packed header format:
// a pre-order traversal emitting a 0 bit for each internal node followed by
// its left and right subtrees, and a 1 bit for each leaf followed by the
// leaf's symbol id as a 9-bit unsigned integer, least significant bit first.
// The format fully encodes topology, so ReadHeader reproduces the tree node
// for node, and it is self-delimiting: no length prefix or terminator is
// written.
//
// A symbol above MaxHeaderSymbol does not fit the fixed-width field and is
// rejected rather than silently truncated.
//
func (t *Tree) WriteHeader(w BitWriter) error {
	return writeHeader(t.root, w)
}

func writeHeader(n *node, w BitWriter) error {
	if n == nil {
		return fmt.Errorf("tree has an internal node with only one child")
	}
	if n.isLeaf() {
		if n.symbol < 0 || n.symbol > MaxHeaderSymbol {
			return fmt.Errorf("symbol %d does not fit in a %d-bit header field", n.symbol, symbolBits)
		}
		if err := w.WriteBool(true); err != nil {
			return err
		}
		return write9(w, n.symbol)
	}
	if err := w.WriteBool(false); err != nil {
		return err
	}
	if err := writeHeader(n.left, w); err != nil {
		return err
	}
	return writeHeader(n.right, w)
}

// ReadHeader constructs a Tree from the bit-packed header format produced by
// WriteHeader.  Recursion bottoms out exactly when every branch has reached
// a leaf, so reading stops at the header's last bit and any payload that
// follows in the stream stays unconsumed.  Errors reported by r propagate
// unchanged.
func ReadHeader(r BitReader) (*Tree, error) {
	root, err := readHeader(r)
	if err != nil {
		return nil, err
	}
	return &Tree{root: root}, nil
}

func readHeader(r BitReader) (*node, error) {
	leaf, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	n := &node{symbol: InvalidSymbol}
	if leaf {
		n.symbol, err = read9(r)
		if err != nil {
			return nil, err
		}
		return n, nil
	}
	if n.left, err = readHeader(r); err != nil {
		return nil, err
	}
	if n.right, err = readHeader(r); err != nil {
		return nil, err
	}
	return n, nil
}
