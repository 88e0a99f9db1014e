package huffman

import (
	"errors"
)

// ErrEmptyInput is returned when a tree is requested for an input with no
// symbols.
var ErrEmptyInput = errors.New("cannot build Huffman tree from empty input")

// ErrSymbolNotInTable is returned when asked to encode a symbol that has no
// code.  It indicates that the input does not match the tree.
var ErrSymbolNotInTable = errors.New("symbol not in Huffman code table")

// ErrAmbiguousSingleSymbol is returned when the tree holds only one distinct
// symbol.  Its code has zero length, so the encoding carries no information
// about how many symbols were present.
var ErrAmbiguousSingleSymbol = errors.New("Huffman tree with a single symbol has a zero-length code")

// ErrInvalidBit is returned when an encoded stream contains a character
// other than '0' or '1'.
var ErrInvalidBit = errors.New("invalid bit in encoded stream")
