// Package basecustom lets you use any set of characters, tokens or bytes as
// your own numeric base and convert to and from unsigned integers.
//
// 🚀 What is base-custom?
//
//	A small, dependency-light library built around one idea: an ordered
//	alphabet of distinct symbols is a positional numeral system.
//		• Characters: "01", "ABC", "0123456789abcdef", "○●"
//		• Tokens:     "A A# B C C# D D# E F F# G G#" split on ' '
//		• Bytes:      []byte{0x00, 0x01} or any 2..255 distinct bytes
//
// ✨ Uses:
//
//   - Mathematics – number conversion between arbitrary bases
//   - Brute force sequencing – enumerate every string over an alphabet
//   - Rolling ciphers and moderate information concealment
//   - Deriving music or art from numbers
//
// Under the hood, everything is organized under two subpackages:
//
//	alphabet/   Table: deduplicated symbols, reverse index, radix, delimiter
//	converter/  Converter: Generate (uint64 → representation) and Parse (back)
//
// Quick example:
//
//	base3, _ := converter.NewChars([]rune("ABC"))
//	base3.Generate(123)  // "BBBCA"
//	base3.Parse("ABC")   // 5
//
//	go get github.com/danielpclark/base-custom
package basecustom
