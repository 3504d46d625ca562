// Package alphabet builds the symbol tables behind a custom numeral base.
//
// What:
//
//   - Table[S] holds an ordered, deduplicated list of symbols. A symbol's
//     position in the list is its digit value; the number of symbols is the
//     radix of the base.
//   - Three symbol kinds share one generic implementation: characters (rune),
//     raw bytes (byte) and multi-character tokens (string).
//   - Token tables may carry a delimiter; it is recorded here and consulted
//     by the converter package when rendering and parsing.
//
// Why:
//
//   - Number conversion to and from any set of characters.
//   - Brute force sequencing, rolling ciphers, short identifiers.
//   - Deriving music or art from numbers (tokens like "C#" or "G").
//
// Construction:
//
//   - New(symbols): explicit symbol list (any kind).
//   - FromRunes(s): the runes of s.
//   - FromString(source): one-character tokens, repeats ignored.
//   - FromDelimited(source, delim): tokens split on delim, empty parts dropped.
//   - FromOrdinalRange(lo, hi): code points [lo, hi) clipped to [32, 127).
//
// Repeated symbols are not an error: the first occurrence wins and later
// ones are dropped, preserving the order of the rest.
//
// Complexity:
//
//   - Construction: O(n) time and memory for n input symbols.
//   - IndexOf / Contains: O(1) expected.
//   - Nth / At / Zero / One: O(1).
//
// Errors:
//
//   - ErrTooFewSymbols:  fewer than MinRadix distinct symbols.
//   - ErrTooManySymbols: more than MaxRadix distinct symbols.
//
// A Table is immutable once built and safe for concurrent readers.
package alphabet
