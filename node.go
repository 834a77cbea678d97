package hufftree

import (
	"container/heap"
)

// node is either a leaf carrying one symbol or an internal branch point
// owning exactly two children.  Leaf-ness is determined by the absence of
// children, never by the symbol field: text-format parsing creates
// intermediate nodes whose symbol stays InvalidSymbol until a header path
// terminates on them.
type node struct {
	symbol Symbol
	left   *node
	right  *node
}

func (n *node) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// type weightedNode + type nodeHeap {{{

// weightedNode pairs a node with its aggregate frequency during greedy
// construction.  Weights order the merge and are discarded once the tree is
// built.
type weightedNode struct {
	node   *node
	weight uint64
	seq    uint32
}

// nodeHeap is a min-heap of weightedNodes ordered by ascending weight.
// Equal weights are broken FIFO by insertion sequence, so construction
// yields the same tree shape on every run for a given frequency array.
type nodeHeap struct {
	list []weightedNode
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(weightedNode))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = weightedNode{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
