// Package huffman implements classic (non-canonical) Huffman coding over an
// arbitrary comparable alphabet.  A tree is built from the symbol frequencies
// of an input, each leaf's path from the root becomes its code ("0" for left,
// "1" for right), and the input is encoded as a string of '0' and '1'
// characters.  The same tree decodes that string back into symbols.
//
// Strings are handled as sequences of runes by EncodeString and DecodeString.
//
// An input with exactly one distinct symbol yields a tree consisting of a
// single leaf, whose code has zero length.  Such an encoding cannot be
// decoded, so Encode and Decode report ErrAmbiguousSingleSymbol instead.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
