package huffman

import (
	"strings"
	"testing"

	"github.com/dchest/uniuri"
	"github.com/stretchr/testify/require"
)

func TestCode_String(t *testing.T) {
	type testRow struct {
		code   Code
		expect string
	}

	testData := [...]testRow{
		{code: "", expect: `""`},
		{code: "0", expect: `"0"`},
		{code: "1011", expect: `"1011"`},
	}
	for _, row := range testData {
		actual := row.code.String()
		if actual != row.expect {
			t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", row.expect, actual)
		}
	}
}

func TestCode_IsPrefixOf(t *testing.T) {
	require.True(t, Code("").IsPrefixOf("101"))
	require.True(t, Code("10").IsPrefixOf("101"))
	require.True(t, Code("101").IsPrefixOf("101"))
	require.False(t, Code("11").IsPrefixOf("101"))
	require.False(t, Code("1010").IsPrefixOf("101"))
}

func TestCodeTable_Dump(t *testing.T) {
	tree, err := Build(CountString("Hello World!"))
	require.NoError(t, err)

	expectDump := strings.Join([]string{
		"CodeTable{\n",
		"\tMinSize() = 2\n",
		"\tMaxSize() = 4\n",
		"\tLookup('l') = \"01\"\n",
		"\tLookup('o') = \"11\"\n",
		"\tLookup('H') = \"101\"\n",
		"\tLookup('d') = \"0000\"\n",
		"\tLookup('!') = \"0001\"\n",
		"\tLookup('W') = \"0010\"\n",
		"\tLookup('r') = \"0011\"\n",
		"\tLookup('e') = \"1000\"\n",
		"\tLookup(' ') = \"1001\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = tree.Codes().Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestCodeTable_Symbols(t *testing.T) {
	tree, err := Build(CountString("Hello World!"))
	require.NoError(t, err)

	table := tree.Codes()
	require.Equal(t, 9, table.Len())
	require.Equal(t, []rune("d!Wrle Ho"), table.Symbols())

	var codes []Code
	table.ForEach(func(_ rune, hc Code) {
		codes = append(codes, hc)
	})
	require.Len(t, codes, 9)
	for i := 1; i < len(codes); i++ {
		require.Less(t, string(codes[i-1]), string(codes[i]))
	}
}

func TestCodeTable_SingleLeaf(t *testing.T) {
	table := NewCodeTable[rune](NewLeaf('a', 4))
	hc, found := table.Lookup('a')
	require.True(t, found)
	require.Equal(t, Code(""), hc)
	require.Equal(t, 0, table.MinSize())
	require.Equal(t, 0, table.MaxSize())

	_, found = table.Lookup('b')
	require.False(t, found)
}

func TestCodeTable_PrefixFree(t *testing.T) {
	inputs := []string{
		"Hello World!",
		"a man a plan a canal panama",
		uniuri.NewLenChars(2000, []byte("aaaaaaaabbbbccde")),
		uniuri.NewLen(1000),
	}
	for _, input := range inputs {
		tree, err := Build(CountString(input))
		require.NoError(t, err)

		table := tree.Codes()
		symbols := table.Symbols()
		for i, a := range symbols {
			ca, _ := table.Lookup(a)
			require.NotZero(t, ca.Len())
			for _, b := range symbols[i+1:] {
				cb, _ := table.Lookup(b)
				require.False(t, ca.IsPrefixOf(cb), "%s is a prefix of %s", ca, cb)
				require.False(t, cb.IsPrefixOf(ca), "%s is a prefix of %s", cb, ca)
			}
		}
	}
}
