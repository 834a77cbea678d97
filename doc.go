// Package hufftree implements static Huffman prefix-code trees: greedy
// construction from symbol frequencies, two header formats for transmitting
// a tree (a line-oriented text format and a compact bit-packed format), code
// table extraction, and streaming decode of Huffman-coded bit streams.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package hufftree
