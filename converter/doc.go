// Package converter turns unsigned integers into their representation in a
// custom numeral base and back.
//
// 🚀 What is a custom base?
//
//	Any ordered list of two to 255 distinct symbols is a positional numeral
//	system: the first symbol is digit 0, the second digit 1, and so on.
//	"01" is binary, "ABC" is base 3 (123 → "BBBCA"), and the twelve note
//	names "A A# B … G#" form a base-12 music alphabet.
//
// ✨ Three modes, one engine:
//   - Chars: rune symbols, string representations.
//   - Tokens: multi-character string symbols, optionally delimited.
//   - Bytes: raw byte symbols, []byte representations.
//
// ⚙️ Usage:
//
//	import "github.com/danielpclark/base-custom/converter"
//
//	bin, err := converter.NewChars([]rune("01"))
//	if err != nil {
//	  // handle alphabet.ErrTooFewSymbols / alphabet.ErrTooManySymbols
//	}
//	s := bin.Generate(340)          // "101010100"
//	v, err := bin.Parse("100110101") // 309
//
//	notes, _ := converter.NewTokens("A A# B C C# D D# E F F# G G#",
//	  converter.WithDelimiter(' '))
//	notes.Generate(314159265)        // "F F# B D# D A# D# F# "
//
// Rendering rules:
//   - Generate(0) is the zero symbol alone, never followed by a delimiter.
//   - With a delimiter, every other digit is followed by it, so the
//     representation carries a trailing delimiter and no leading one.
//   - Parse splits on the delimiter and ignores empty fragments, so doubled
//     and trailing delimiters are tolerated.
//
// Performance:
//
//   - Generate: O(d) for d output digits (d ≤ 64).
//   - Parse:    O(n) for n input units, O(1) expected per lookup.
//
// Errors:
//
//   - alphabet.ErrTooFewSymbols / ErrTooManySymbols: construction.
//   - ErrOptionViolation: an option that does not apply to the mode.
//   - ErrUnknownSymbol: Parse met a unit outside the alphabet.
//   - ErrOverflow: Parse result exceeds the target integer width.
//
// A Converter never mutates its alphabet and is safe for concurrent use.
package converter
