package huffman

import (
	"fmt"

	"github.com/chronos-tachyon/assert"
)

// Decode is the inverse of Encode: it decodes bits using tree.
func Decode[S comparable](tree *Tree[S], bits string) ([]S, error) {
	return tree.Decode(bits)
}

// DecodeString is Decode for trees built by EncodeString.
func DecodeString(tree *Tree[rune], bits string) (string, error) {
	runes, err := tree.Decode(bits)
	if err != nil {
		return "", err
	}
	return string(runes), nil
}

// Decode walks the tree from the root, taking the left branch for each '0'
// and the right branch for each '1'.  Each time a leaf is reached, its symbol
// is emitted and the walk restarts at the root.
//
// If bits ends partway through a code, the incomplete code is discarded
// without error.
//
// Decode returns ErrInvalidBit if bits contains any character other than '0'
// or '1', and ErrAmbiguousSingleSymbol if this tree holds only one symbol.
//
func (t *Tree[S]) Decode(bits string) ([]S, error) {
	root, ok := t.root.(*Internal[S])
	if !ok {
		return nil, ErrAmbiguousSingleSymbol
	}

	// Every code is at least MinSize() bits long.
	out := make([]S, 0, len(bits)/t.codes.MinSize())

	cursor := root
	for index := 0; index < len(bits); index++ {
		var next Node[S]
		switch bits[index] {
		case '0':
			next = cursor.left
		case '1':
			next = cursor.right
		default:
			return nil, fmt.Errorf("%w: %q at offset %d", ErrInvalidBit, bits[index], index)
		}

		switch x := next.(type) {
		case *Leaf[S]:
			out = append(out, x.symbol)
			cursor = root
		case *Internal[S]:
			cursor = x
		default:
			assert.Assertf(false, "unexpected Huffman node type %T", next)
		}
	}
	return out, nil
}
