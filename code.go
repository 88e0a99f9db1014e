package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Code represents a sequence of bits, written as a string of '0' and '1'
// characters.  The first character is the first bit.
type Code string

// Len returns the number of bits in this Code.
func (hc Code) Len() int {
	return len(hc)
}

// IsPrefixOf returns true iff this Code is a prefix of other.  Every Code is a
// prefix of itself.
func (hc Code) IsPrefixOf(other Code) bool {
	return strings.HasPrefix(string(other), string(hc))
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(string(hc))
}

var _ fmt.Stringer = Code("")

// CodeTable maps each symbol of a Huffman tree to its Code.  It is immutable
// once constructed.
type CodeTable[S comparable] struct {
	codes   map[S]Code
	order   []symbolAndCode[S]
	minSize int
	maxSize int
}

// NewCodeTable walks the tree rooted at root and assigns each leaf the path
// taken to reach it, with "0" for each left branch and "1" for each right
// branch.  If root is itself a leaf, its symbol is assigned the empty Code.
func NewCodeTable[S comparable](root Node[S]) *CodeTable[S] {
	assert.Assertf(root != nil, "cannot derive Huffman codes from a nil tree")

	t := &CodeTable[S]{codes: make(map[S]Code)}
	path := make([]byte, 0, 2*log2int(int(root.Weight())))

	// Left branches are visited before right branches, so t.order comes
	// out sorted by code.
	var walk func(node Node[S])
	walk = func(node Node[S]) {
		switch x := node.(type) {
		case *Leaf[S]:
			_, dupe := t.codes[x.symbol]
			assert.Assertf(!dupe, "symbol %s appears in more than one leaf", formatSymbol(x.symbol))
			hc := Code(path)
			t.codes[x.symbol] = hc
			t.order = append(t.order, symbolAndCode[S]{x.symbol, hc})

		case *Internal[S]:
			path = append(path, '0')
			walk(x.left)
			path[len(path)-1] = '1'
			walk(x.right)
			path = path[:len(path)-1]

		default:
			assert.Assertf(false, "unexpected Huffman node type %T", node)
		}
	}
	walk(root)

	for i, item := range t.order {
		size := item.code.Len()
		if i == 0 || t.minSize > size {
			t.minSize = size
		}
		if i == 0 || t.maxSize < size {
			t.maxSize = size
		}
	}
	return t
}

// Lookup returns the Code for the given symbol.  The second return value is
// false if the symbol has no Code.
func (t *CodeTable[S]) Lookup(symbol S) (Code, bool) {
	hc, found := t.codes[symbol]
	return hc, found
}

// Len returns the number of symbols in this table.
func (t *CodeTable[S]) Len() int {
	return len(t.order)
}

// MinSize is the bit length of the shortest Code.
func (t *CodeTable[S]) MinSize() int {
	return t.minSize
}

// MaxSize is the bit length of the longest Code.
func (t *CodeTable[S]) MaxSize() int {
	return t.maxSize
}

// Symbols returns the symbols in this table, ordered by Code as in a
// left-to-right walk of the tree.
func (t *CodeTable[S]) Symbols() []S {
	out := make([]S, len(t.order))
	for i, item := range t.order {
		out[i] = item.symbol
	}
	return out
}

// ForEach calls fn for each symbol and its Code, ordered as in Symbols.
func (t *CodeTable[S]) ForEach(fn func(symbol S, hc Code)) {
	for _, item := range t.order {
		fn(item.symbol, item.code)
	}
}

// Dump writes a programmer-readable debugging dump of the CodeTable to the
// given writer.  Entries are sorted by (code length, code).
func (t *CodeTable[S]) Dump(w io.Writer) (int64, error) {
	sorted := make(byCode[S], len(t.order))
	copy(sorted, t.order)
	sorted.Sort()

	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", t.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", t.maxSize)
	for _, item := range sorted {
		fmt.Fprintf(&buf, "\tLookup(%s) = %s\n", formatSymbol(item.symbol), item.code)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type symbolAndCode + type byCode {{{

type symbolAndCode[S comparable] struct {
	symbol S
	code   Code
}

type byCode[S comparable] []symbolAndCode[S]

func (list byCode[S]) Sort() {
	sort.Stable(list)
}

func (list byCode[S]) Len() int {
	return len(list)
}

func (list byCode[S]) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode[S]) Less(i, j int) bool {
	a, b := list[i].code, list[j].code
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}

var _ sort.Interface = byCode[rune](nil)

// }}}
