package hufftree

// Symbol represents a symbol in an arbitrary alphabet.  Negative symbols are
// not valid.
type Symbol int32

// MaxHeaderSymbol is the maximum symbol value representable by the
// bit-packed header format, which stores symbols in fixed 9-bit fields.
const MaxHeaderSymbol = Symbol(1<<symbolBits - 1)

// InvalidSymbol marks a node that carries no symbol: every internal node,
// and any intermediate node created while parsing a text header whose path
// has not (yet) terminated on it.
const InvalidSymbol = Symbol(-1)
