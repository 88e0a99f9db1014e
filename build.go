package huffman

import (
	"container/heap"
)

// BuildTree constructs a Huffman tree from a collection of nodes, usually the
// leaves returned by Count, and returns its root.
//
// The two lightest nodes are repeatedly removed and replaced by a new Internal
// node whose right child is the first node removed and whose left child is the
// second.  When weights are equal, the node that entered the collection most
// recently is removed first; merged nodes enter the collection after every
// node that was already present.  The result is fully determined by the order
// and weights of the input.
//
// A single node is returned unchanged.  An empty collection returns
// ErrEmptyInput.
//
func BuildTree[S comparable](nodes []Node[S]) (Node[S], error) {
	switch len(nodes) {
	case 0:
		return nil, ErrEmptyInput
	case 1:
		return nodes[0], nil
	}

	// Step 1: build a minheap, tagging each node with its arrival order.

	h := nodeHeap[S]{list: make([]nodeAndSeq[S], 0, len(nodes))}
	for _, node := range nodes {
		h.list = append(h.list, nodeAndSeq[S]{node, h.nextSeq})
		h.nextSeq++
	}
	h.Init()

	// Step 2: pop the two lightest nodes, merge them, and push the merged
	// node back until a single root remains.

	for h.Len() > 1 {
		first := heap.Pop(&h).(nodeAndSeq[S])
		second := heap.Pop(&h).(nodeAndSeq[S])
		merged := NewInternal[S](second.node, first.node)
		heap.Push(&h, nodeAndSeq[S]{merged, h.nextSeq})
		h.nextSeq++
	}

	root := heap.Pop(&h).(nodeAndSeq[S])
	return root.node, nil
}

// AsNodes is a convenience function that converts leaves into the []Node
// accepted by BuildTree.
func AsNodes[S comparable](leaves []*Leaf[S]) []Node[S] {
	out := make([]Node[S], len(leaves))
	for i, leaf := range leaves {
		out[i] = leaf
	}
	return out
}

// type nodeAndSeq + type nodeHeap {{{

type nodeAndSeq[S comparable] struct {
	node Node[S]
	seq  uint64
}

type nodeHeap[S comparable] struct {
	list    []nodeAndSeq[S]
	nextSeq uint64
}

func (h *nodeHeap[S]) Init() {
	heap.Init(h)
}

func (h *nodeHeap[S]) Len() int {
	return len(h.list)
}

func (h *nodeHeap[S]) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap[S]) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	aw, bw := a.node.Weight(), b.node.Weight()
	if aw != bw {
		return aw < bw
	}
	return a.seq > b.seq
}

func (h *nodeHeap[S]) Push(x interface{}) {
	h.list = append(h.list, x.(nodeAndSeq[S]))
}

func (h *nodeHeap[S]) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = nodeAndSeq[S]{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap[rune])(nil)

// }}}
