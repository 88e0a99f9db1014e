package huffman

import (
	"github.com/chronos-tachyon/assert"
)

// Node is a node in a Huffman tree.  It is either a *Leaf or an *Internal;
// no other implementations exist.
type Node[S comparable] interface {
	// Weight is the number of input symbols covered by this subtree.
	Weight() uint64

	isNode()
}

// Leaf is a Node that holds one symbol and its number of occurrences.
type Leaf[S comparable] struct {
	symbol S
	count  uint64
}

// NewLeaf constructs a Leaf.  The count must be non-zero.
func NewLeaf[S comparable](symbol S, count uint64) *Leaf[S] {
	assert.Assertf(count != 0, "leaf for symbol %s has a count of 0", formatSymbol(symbol))
	return &Leaf[S]{symbol: symbol, count: count}
}

// Symbol returns the symbol held by this leaf.
func (leaf *Leaf[S]) Symbol() S {
	return leaf.symbol
}

// Count returns the number of times the symbol occurred in the input.
func (leaf *Leaf[S]) Count() uint64 {
	return leaf.count
}

// Weight returns the same value as Count.
func (leaf *Leaf[S]) Weight() uint64 {
	return leaf.count
}

func (*Leaf[S]) isNode() {}

// Internal is a Node with exactly two children and no symbol.
type Internal[S comparable] struct {
	weight uint64
	left   Node[S]
	right  Node[S]
}

// NewInternal constructs an Internal node whose weight is the sum of the
// weights of its children.  Both children must be non-nil.
func NewInternal[S comparable](left, right Node[S]) *Internal[S] {
	assert.Assertf(left != nil, "internal node has a nil left child")
	assert.Assertf(right != nil, "internal node has a nil right child")
	return &Internal[S]{
		weight: left.Weight() + right.Weight(),
		left:   left,
		right:  right,
	}
}

// Left returns the child reached by a "0" bit.
func (node *Internal[S]) Left() Node[S] {
	return node.left
}

// Right returns the child reached by a "1" bit.
func (node *Internal[S]) Right() Node[S] {
	return node.right
}

// Weight returns the sum of the weights of both children.
func (node *Internal[S]) Weight() uint64 {
	return node.weight
}

func (*Internal[S]) isNode() {}

var (
	_ Node[rune] = (*Leaf[rune])(nil)
	_ Node[rune] = (*Internal[rune])(nil)
)
