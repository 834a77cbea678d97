package hufftree

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Tree is a prefix-code tree: a full binary tree in which every internal
// node has exactly two children and every leaf carries one symbol.  A Tree
// is built once by one of the constructors and is read-only thereafter, so
// any number of concurrent readers may share it.
type Tree struct {
	root *node
}

// NewFromFrequencies constructs a Tree from an array of occurrence counts,
// one count per symbol value.  Symbols with a zero count get no leaf.  A
// synthetic end-of-file leaf with symbol id len(counts) and weight 1 is
// always added, so the tree has at least one leaf even when every count is
// zero.
//
// Nodes are merged lowest-weight-first; equal weights are broken FIFO, so
// the shape of the resulting tree is deterministic for a given counts array.
//
// The end-of-file symbol id must fit the bit-packed header's 9-bit field,
// which caps len(counts) at MaxHeaderSymbol.
//
func NewFromFrequencies(counts []uint32) *Tree {
	assert.Assertf(len(counts) <= int(MaxHeaderSymbol), "alphabet size %d > %d: end-of-file symbol would not fit a %d-bit header field", len(counts), int(MaxHeaderSymbol), symbolBits)

	var h nodeHeap
	var seq uint32
	for symbol := Symbol(0); symbol < Symbol(len(counts)); symbol++ {
		if count := counts[symbol]; count != 0 {
			h.list = append(h.list, weightedNode{&node{symbol: symbol}, uint64(count), seq})
			seq++
		}
	}
	h.list = append(h.list, weightedNode{&node{symbol: Symbol(len(counts))}, 1, seq})
	seq++
	h.Init()

	for h.Len() > 1 {
		a := heap.Pop(&h).(weightedNode)
		b := heap.Pop(&h).(weightedNode)
		merged := &node{symbol: InvalidSymbol, left: a.node, right: b.node}
		heap.Push(&h, weightedNode{merged, a.weight + b.weight, seq})
		seq++
	}

	root := heap.Pop(&h).(weightedNode)
	return &Tree{root: root.node}
}

// Leaves reports the number of leaves in the tree, which is also the number
// of symbols in its code.
func (t *Tree) Leaves() int {
	var total int
	walkCodes(t.root, "", func(Symbol, string) {
		total++
	})
	return total
}

// Dump writes a programmer-readable debugging dump of the Tree's leaves and
// their codes to the given writer.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	walkCodes(t.root, "", func(symbol Symbol, path string) {
		fmt.Fprintf(&buf, "\tLeaf(%d) = %q\n", symbol, path)
	})
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// String returns a human-readable one-line summary of this Tree.
func (t *Tree) String() string {
	return fmt.Sprintf("(Huffman tree with %d leaves)", t.Leaves())
}

var _ fmt.Stringer = (*Tree)(nil)
