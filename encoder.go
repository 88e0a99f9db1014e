package huffman

import (
	"fmt"
	"strings"
)

// Encode counts the symbols of input, builds a Tree from those counts, and
// encodes input with it.
//
// Encode returns ErrEmptyInput if input is empty, and
// ErrAmbiguousSingleSymbol if input contains only one distinct symbol.  In
// the latter case the Tree is still returned, so that callers which record
// the symbol count elsewhere can use it.
//
func Encode[S comparable](input []S) (*Tree[S], string, error) {
	tree, err := Build(Count(input))
	if err != nil {
		return nil, "", err
	}
	bits, err := tree.Encode(input)
	return tree, bits, err
}

// EncodeString is Encode for the runes of a string.
func EncodeString(text string) (*Tree[rune], string, error) {
	return Encode([]rune(text))
}

// Encode encodes input by concatenating the Code of each symbol in order.
//
// Encode returns ErrSymbolNotInTable if some symbol of input has no Code in
// this tree, and ErrAmbiguousSingleSymbol if this tree holds only one symbol.
//
func (t *Tree[S]) Encode(input []S) (string, error) {
	if t.IsSingleSymbol() {
		return "", ErrAmbiguousSingleSymbol
	}

	var sb strings.Builder
	sb.Grow(len(input) * t.codes.MaxSize())
	for index, symbol := range input {
		hc, found := t.codes.Lookup(symbol)
		if !found {
			return "", fmt.Errorf("%w: symbol %s at index %d", ErrSymbolNotInTable, formatSymbol(symbol), index)
		}
		sb.WriteString(string(hc))
	}
	return sb.String(), nil
}
