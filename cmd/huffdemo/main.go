// Command huffdemo Huffman-codes a string and reports how the encoding
// compares to a fixed 8-bit encoding.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/chronos-tachyon/huffman/v2"
)

var (
	flagText   = flag.String("text", "Hello World!", "text to encode")
	flagDump   = flag.Bool("dump", false, "dump the tree and code table")
	flagJSON   = flag.Bool("json", false, "print the code table as JSON")
	flagShards = flag.Int("shards", 1, "number of shards to count symbols with")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("huffdemo: ")
	flag.Parse()

	opts := options{
		text:   *flagText,
		dump:   *flagDump,
		json:   *flagJSON,
		shards: *flagShards,
	}
	if err := run(os.Stdout, opts); err != nil {
		log.Fatal(err)
	}
}

type options struct {
	text   string
	dump   bool
	json   bool
	shards int
}

func run(w io.Writer, opts options) error {
	runes := []rune(opts.text)
	tree, err := huffman.Build(huffman.CountSharded(runes, opts.shards))
	if err != nil {
		return err
	}

	bits, err := tree.Encode(runes)
	if errors.Is(err, huffman.ErrAmbiguousSingleSymbol) {
		log.Printf("%v; the input is %d copies of one symbol", err, len(runes))
		return nil
	}
	if err != nil {
		return err
	}

	if opts.dump {
		if _, err := tree.Dump(w); err != nil {
			return err
		}
		if _, err := tree.Codes().Dump(w); err != nil {
			return err
		}
	}

	if opts.json {
		raw, err := marshalCodes(tree.Codes())
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\n", raw)
	}

	decoded, err := huffman.DecodeString(tree, bits)
	if err != nil {
		return err
	}

	stats := huffman.Measure(len(runes), bits)
	fmt.Fprintf(w, "Encoded: %s %d\n", bits, stats.EncodedBits)
	fmt.Fprintf(w, "Baseline: %d\n", stats.BaselineBits)
	fmt.Fprintf(w, "Saved: %.2f%%\n", stats.Saved())
	fmt.Fprintf(w, "Decoded: %s\n", decoded)
	return nil
}

func marshalCodes(table *huffman.CodeTable[rune]) ([]byte, error) {
	out := make(map[string]string, table.Len())
	table.ForEach(func(symbol rune, hc huffman.Code) {
		out[string(symbol)] = string(hc)
	})
	return jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(out, "", strings.Repeat(" ", 2))
}
