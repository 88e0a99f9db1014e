package huffman

import (
	"fmt"
	"strconv"
)

// formatSymbol renders a symbol for debugging dumps.  Runes and strings are
// quoted; everything else uses its default format.
func formatSymbol(symbol interface{}) string {
	switch x := symbol.(type) {
	case rune:
		return strconv.QuoteRune(x)
	case byte:
		return strconv.QuoteRune(rune(x))
	case string:
		return strconv.Quote(x)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprintf("%v", x)
	}
}
