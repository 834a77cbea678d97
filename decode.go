package hufftree

import (
	"fmt"
	"io"
)

// Decode reads Huffman-coded bits from r, repeatedly walking the tree from
// the root (a 0 bit selects the left child, a 1 bit the right) until a leaf
// is reached, and writes each decoded symbol's byte value to w.  Decoding
// stops when the leaf holding the eof symbol is reached; the eof symbol
// itself is not written and no bits are read past its code, so trailing
// padding in the stream stays unconsumed for the caller to deal with.
//
// eof must be the same reserved symbol id the tree was built with, or
// decoding will not terminate at the intended point.  Errors reported by r,
// typically end-of-stream on truncated input, abort the call and are
// returned unchanged.
//
func (t *Tree) Decode(r BitReader, w io.ByteWriter, eof Symbol) error {
	for {
		current := t.root
		for !current.isLeaf() {
			bit, err := r.ReadBool()
			if err != nil {
				return err
			}
			if bit {
				current = current.right
			} else {
				current = current.left
			}
			if current == nil {
				return fmt.Errorf("coded bits walked off the tree")
			}
		}
		if current.symbol == eof {
			return nil
		}
		if err := w.WriteByte(byte(current.symbol)); err != nil {
			return err
		}
	}
}
