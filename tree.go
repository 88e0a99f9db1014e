package huffman

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Tree is a Huffman tree together with the CodeTable derived from it.  A Tree
// is never modified after construction and may be shared freely.
type Tree[S comparable] struct {
	root  Node[S]
	codes *CodeTable[S]
}

// NewTree wraps an existing tree root and derives its CodeTable.
func NewTree[S comparable](root Node[S]) (*Tree[S], error) {
	if root == nil {
		return nil, ErrEmptyInput
	}
	return &Tree[S]{root: root, codes: NewCodeTable[S](root)}, nil
}

// Build constructs a Tree from a list of leaves, such as the output of Count.
func Build[S comparable](leaves []*Leaf[S]) (*Tree[S], error) {
	root, err := BuildTree(AsNodes(leaves))
	if err != nil {
		return nil, err
	}
	return NewTree[S](root)
}

// Root returns the root node of this tree.
func (t *Tree[S]) Root() Node[S] {
	return t.root
}

// Codes returns the CodeTable derived from this tree.
func (t *Tree[S]) Codes() *CodeTable[S] {
	return t.codes
}

// Weight returns the total number of symbol occurrences covered by this tree.
func (t *Tree[S]) Weight() uint64 {
	return t.root.Weight()
}

// IsSingleSymbol returns true iff the root of this tree is a leaf.
func (t *Tree[S]) IsSingleSymbol() bool {
	_, isLeaf := t.root.(*Leaf[S])
	return isLeaf
}

// Leaves returns the leaves of this tree from left to right.
func (t *Tree[S]) Leaves() []*Leaf[S] {
	out := make([]*Leaf[S], 0, t.codes.Len())
	t.walk(func(node Node[S], _ int) {
		if leaf, ok := node.(*Leaf[S]); ok {
			out = append(out, leaf)
		}
	})
	return out
}

// Dump writes a programmer-readable debugging dump of the tree to the given
// writer, one node per line, indented by depth.
func (t *Tree[S]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	t.walk(func(node Node[S], depth int) {
		buf.WriteString(strings.Repeat("\t", depth+1))
		switch x := node.(type) {
		case *Leaf[S]:
			fmt.Fprintf(&buf, "Leaf(%s, %d)\n", formatSymbol(x.symbol), x.count)
		case *Internal[S]:
			fmt.Fprintf(&buf, "Internal(%d)\n", x.weight)
		}
	})
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// walk visits every node in pre-order, left before right.
func (t *Tree[S]) walk(fn func(node Node[S], depth int)) {
	type stackItem struct {
		node  Node[S]
		depth int
	}

	stack := make([]stackItem, 0, 2*log2int(t.codes.Len()))
	stack = append(stack, stackItem{t.root, 0})
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		fn(top.node, top.depth)
		if x, ok := top.node.(*Internal[S]); ok {
			stack = append(stack, stackItem{x.right, top.depth + 1})
			stack = append(stack, stackItem{x.left, top.depth + 1})
		}
	}
}
