package huffman

import (
	"golang.org/x/sync/errgroup"
)

// Count returns one Leaf per distinct symbol in input, in order of first
// appearance, each holding the number of times that symbol occurs.  An empty
// input yields an empty list.
func Count[S comparable](input []S) []*Leaf[S] {
	var c counter[S]
	for _, symbol := range input {
		c.add(symbol, 1)
	}
	return c.leaves
}

// CountString is Count for the runes of a string.
func CountString(text string) []*Leaf[rune] {
	var c counter[rune]
	for _, ch := range text {
		c.add(ch, 1)
	}
	return c.leaves
}

// CountSharded produces the same result as Count, but splits input into at
// most numShards contiguous shards which are counted concurrently.  Shard
// results are merged in shard order, so order of first appearance is
// preserved.
func CountSharded[S comparable](input []S, numShards int) []*Leaf[S] {
	if numShards > len(input) {
		numShards = len(input)
	}
	if numShards <= 1 {
		return Count(input)
	}

	shardLen := (len(input) + numShards - 1) / numShards
	shards := make([][]*Leaf[S], numShards)

	var g errgroup.Group
	for i := 0; i < numShards; i++ {
		i := i
		lo := i * shardLen
		hi := lo + shardLen
		if lo > len(input) {
			lo = len(input)
		}
		if hi > len(input) {
			hi = len(input)
		}
		g.Go(func() error {
			shards[i] = Count(input[lo:hi])
			return nil
		})
	}
	_ = g.Wait()

	var c counter[S]
	for _, shard := range shards {
		for _, leaf := range shard {
			c.add(leaf.symbol, leaf.count)
		}
	}
	return c.leaves
}

type counter[S comparable] struct {
	index  map[S]int
	leaves []*Leaf[S]
}

func (c *counter[S]) add(symbol S, n uint64) {
	if c.index == nil {
		c.index = make(map[S]int)
	}
	if i, found := c.index[symbol]; found {
		c.leaves[i].count += n
		return
	}
	c.index[symbol] = len(c.leaves)
	c.leaves = append(c.leaves, NewLeaf(symbol, n))
}
