package hufftree

import (
	"fmt"
	"io"
)

// CountFrequencies reads r to exhaustion and returns the number of
// occurrences of every symbol value, indexed by symbol id.  alphabetSize is
// the number of distinct symbol values the caller supports; an input byte at
// or above it is an error.
func CountFrequencies(r io.ByteReader, alphabetSize int) ([]uint32, error) {
	counts := make([]uint32, alphabetSize)
	for {
		c, err := r.ReadByte()
		if err == io.EOF {
			return counts, nil
		}
		if err != nil {
			return nil, err
		}
		if int(c) >= alphabetSize {
			return nil, fmt.Errorf("input byte %d outside alphabet of size %d", c, alphabetSize)
		}
		counts[c]++
	}
}

// Encode reads bytes from r to exhaustion, writing each byte's Huffman code
// to w, and finally writes the code of the eof symbol so that Decode knows
// where the message ends.  A byte with no leaf in the tree is an error: it
// cannot have occurred in the frequency data the tree was built from.
//
// When the tree's only leaf is the eof symbol itself, its code is empty and
// Encode writes no bits at all, mirroring Decode's zero-bit termination on
// such a tree.
//
func (t *Tree) Encode(r io.ByteReader, w BitWriter, eof Symbol) error {
	codes := make(map[Symbol]string)
	walkCodes(t.root, "", func(symbol Symbol, path string) {
		codes[symbol] = path
	})

	for {
		c, err := r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if err := writeCode(w, codes, Symbol(c)); err != nil {
			return err
		}
	}
	return writeCode(w, codes, eof)
}

func writeCode(w BitWriter, codes map[Symbol]string, symbol Symbol) error {
	path, found := codes[symbol]
	if !found {
		return fmt.Errorf("symbol %d has no code in this tree", symbol)
	}
	for i := 0; i < len(path); i++ {
		if err := w.WriteBool(path[i] == '1'); err != nil {
			return err
		}
	}
	return nil
}
