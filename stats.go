package huffman

// BitsPerBaselineSymbol is the width of each symbol in the fixed-width
// encoding that Stats compares against.
const BitsPerBaselineSymbol = 8

// Stats compares the length of an encoded stream against a fixed-width
// encoding of the same symbols.
type Stats struct {
	Symbols      int
	EncodedBits  int
	BaselineBits int
}

// Measure computes Stats for numSymbols input symbols encoded as bits.
func Measure(numSymbols int, bits string) Stats {
	return Stats{
		Symbols:      numSymbols,
		EncodedBits:  len(bits),
		BaselineBits: numSymbols * BitsPerBaselineSymbol,
	}
}

// Ratio returns EncodedBits as a percentage of BaselineBits.
func (s Stats) Ratio() float64 {
	if s.BaselineBits == 0 {
		return 0
	}
	return 100 * float64(s.EncodedBits) / float64(s.BaselineBits)
}

// Saved returns the percentage of BaselineBits saved by the encoding.
func (s Stats) Saved() float64 {
	if s.BaselineBits == 0 {
		return 0
	}
	return 100 - s.Ratio()
}
