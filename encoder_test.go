package huffman

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeString(t *testing.T) {
	type testRow struct {
		input  string
		expect string
	}

	testData := [...]testRow{
		{input: "ab", expect: "01"},
		{input: "aaaaaab", expect: "0000001"},
		{input: "abracadabra", expect: "10100010010100111010001"},
		{input: "Hello World!", expect: "1011000010111100100101100110100000001"},
	}
	for _, row := range testData {
		t.Run(row.input, func(t *testing.T) {
			tree, bits, err := EncodeString(row.input)
			require.NoError(t, err)
			require.NotNil(t, tree)
			require.Equal(t, row.expect, bits)
		})
	}
}

func TestEncodeString_Empty(t *testing.T) {
	tree, bits, err := EncodeString("")
	require.ErrorIs(t, err, ErrEmptyInput)
	require.Nil(t, tree)
	require.Empty(t, bits)
}

func TestEncodeString_SingleSymbol(t *testing.T) {
	tree, bits, err := EncodeString("aaaa")
	require.ErrorIs(t, err, ErrAmbiguousSingleSymbol)
	require.Empty(t, bits)
	require.NotNil(t, tree)
	require.True(t, tree.IsSingleSymbol())
	require.Equal(t, uint64(4), tree.Weight())
}

func TestTree_Encode_SymbolNotInTable(t *testing.T) {
	tree, _, err := EncodeString("abc")
	require.NoError(t, err)

	bits, err := tree.Encode([]rune("abz"))
	require.ErrorIs(t, err, ErrSymbolNotInTable)
	require.Contains(t, err.Error(), "'z'")
	require.Contains(t, err.Error(), "index 2")
	require.Empty(t, bits)
}

func TestTree_Encode_OtherInput(t *testing.T) {
	// A tree may encode any input drawn from its own alphabet.
	tree, _, err := EncodeString("abracadabra")
	require.NoError(t, err)

	bits, err := tree.Encode([]rune("cab"))
	require.NoError(t, err)
	require.Equal(t, "0010"+"1"+"01", bits)
}

func TestEncode_CompressionBound(t *testing.T) {
	for _, input := range []string{"aaaaaab", "Hello World!", strings.Repeat("a", 90) + "bcdefghij"} {
		_, bits, err := EncodeString(input)
		require.NoError(t, err)

		stats := Measure(len([]rune(input)), bits)
		require.Less(t, stats.EncodedBits, stats.BaselineBits, "input %q", input)
	}
}

func TestEncode_Generic(t *testing.T) {
	input := []int{7, 7, 7, 3, 3, 9}
	tree, bits, err := Encode(input)
	require.NoError(t, err)

	output, err := Decode(tree, bits)
	require.NoError(t, err)
	require.Equal(t, input, output)
}
