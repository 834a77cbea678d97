package hufftree

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// WriteText writes the tree to w in the line-oriented header format: for
// every leaf, in left-before-right depth-first order, one line holding the
// leaf's symbol id followed by one line holding its root-to-leaf bit path.
// Internal nodes produce no output, and leaf order is determined solely by
// traversal order, not by symbol id or weight.
func (t *Tree) WriteText(w io.Writer) error {
	var err error
	walkCodes(t.root, "", func(symbol Symbol, path string) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, "%d\n%s\n", symbol, path)
	})
	return err
}

// ParseText constructs a Tree from the line-oriented header format produced
// by WriteText.  Line pairs are consumed until r is exhausted: a symbol id,
// then the bit path at which that symbol's leaf lives.  Missing interior
// nodes are created as each path is walked.
//
// Paths are assumed prefix-free, as any real tree's code is.  Overlapping
// paths in a hand-crafted header are not detected: a later pair simply
// overwrites the symbol at the conflicting node.
//
func ParseText(r io.Reader) (*Tree, error) {
	scanner := bufio.NewScanner(r)
	root := &node{symbol: InvalidSymbol}
	for scanner.Scan() {
		symbol, err := strconv.ParseInt(scanner.Text(), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("malformed header: symbol line: %v", err)
		}
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("malformed header: symbol %d has no path line", symbol)
		}
		path := scanner.Text()
		current := root
		for i := 0; i < len(path); i++ {
			switch path[i] {
			case '0':
				if current.left == nil {
					current.left = &node{symbol: InvalidSymbol}
				}
				current = current.left
			case '1':
				if current.right == nil {
					current.right = &node{symbol: InvalidSymbol}
				}
				current = current.right
			default:
				return nil, fmt.Errorf("malformed header: path for symbol %d contains %q", symbol, path[i])
			}
		}
		current.symbol = Symbol(symbol)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return &Tree{root: root}, nil
}
