package hufftree

// symbolBits is the fixed width of a symbol id in the bit-packed header
// format.  It caps the supported alphabet, end-of-file marker included, at
// 512 distinct values.
const symbolBits = 9

// write9 writes the 9-bit representation of a symbol to w, least significant
// bit first.
func write9(w BitWriter, symbol Symbol) error {
	for i := 0; i < symbolBits; i++ {
		if err := w.WriteBool(symbol&1 == 1); err != nil {
			return err
		}
		symbol >>= 1
	}
	return nil
}

// read9 reconstructs a symbol previously written by write9.
func read9(r BitReader) (Symbol, error) {
	var symbol Symbol
	for i := uint(0); i < symbolBits; i++ {
		bit, err := r.ReadBool()
		if err != nil {
			return InvalidSymbol, err
		}
		if bit {
			symbol |= 1 << i
		}
	}
	return symbol, nil
}
