package huffman

import (
	mathbits "math/bits"
)

// log2int returns the number of bits needed to represent x, treating 0 as 1.
// A tree with n leaves is at least log2int(n) levels deep.
func log2int(x int) int {
	if x <= 0 {
		x = 1
	}
	return mathbits.Len(uint(x))
}
