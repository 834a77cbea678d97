package hufftree

// AssignCodes fills in the caller-allocated codes slice, indexed by symbol
// id, with the root-to-leaf bit path of every leaf in the tree.  Entries for
// symbols that have no leaf are left untouched.  The tree is not modified.
//
// The recorded paths form a prefix code: no path is a prefix of another.
//
func (t *Tree) AssignCodes(codes []string) {
	walkCodes(t.root, "", func(symbol Symbol, path string) {
		codes[symbol] = path
	})
}

// walkCodes visits every leaf below n in left-before-right depth-first
// order, accumulating the '0'/'1' path taken from the root.  Recursion depth
// is bounded by the longest code, which for realistic alphabets is far below
// any stack limit.
func walkCodes(n *node, path string, visit func(Symbol, string)) {
	if n == nil {
		return
	}
	if n.isLeaf() {
		visit(n.symbol, path)
		return
	}
	walkCodes(n.left, path+"0", visit)
	walkCodes(n.right, path+"1", visit)
}
