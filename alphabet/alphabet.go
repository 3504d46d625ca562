package alphabet

import (
	"strings"

	"github.com/cockroachdb/swiss"
	mapset "github.com/deckarep/golang-set/v2"
)

// New builds a Table from an explicit, ordered list of symbols.
// Repeats are dropped (first occurrence wins) before the size is validated.
// Returns ErrTooFewSymbols or ErrTooManySymbols (wrapped) on invalid sizes.
// Complexity: O(n) time and memory.
func New[S Symbol](symbols []S) (*Table[S], error) {
	return build(symbols, 0, false)
}

// FromRunes builds a character table from the runes of s.
func FromRunes(s string) (*Table[rune], error) {
	return New([]rune(s))
}

// FromString builds an undelimited token table: every character of source
// becomes a one-character token, repeated characters are ignored.
func FromString(source string) (*Table[string], error) {
	tokens := make([]string, 0, len(source))
	for _, r := range source {
		tokens = append(tokens, string(r))
	}

	return build(tokens, 0, false)
}

// FromDelimited builds a token table by splitting source on every delim.
// Empty fragments (leading, trailing or doubled delimiters) are discarded
// before deduplication. The delimiter is recorded on the table.
func FromDelimited(source string, delim rune) (*Table[string], error) {
	return build(SplitTokens(source, delim), delim, true)
}

// FromOrdinalRange builds a character table from the code points [lo, hi),
// clipped to the printable range [MinOrdinal, MaxOrdinal).
// A range that is empty after clipping fails with ErrTooFewSymbols.
func FromOrdinalRange(lo, hi rune) (*Table[rune], error) {
	lo = max(lo, MinOrdinal)
	hi = min(hi, MaxOrdinal)
	if hi <= lo {
		return nil, sizeError(0)
	}
	runes := make([]rune, 0, hi-lo)
	for r := lo; r < hi; r++ {
		runes = append(runes, r)
	}

	return New(runes)
}

// Unique returns in with later repeats removed, preserving the order of the
// first occurrences. The input slice is not modified.
// Complexity: O(n) time and memory.
func Unique[S Symbol](in []S) []S {
	seen := mapset.NewThreadUnsafeSetWithSize[S](len(in))
	out := make([]S, 0, len(in))
	for _, s := range in {
		if seen.Add(s) {
			out = append(out, s)
		}
	}

	return out
}

// SplitTokens splits source on every occurrence of delim and drops empty
// fragments, so "a::b:" and "a:b" both yield ["a" "b"].
func SplitTokens(source string, delim rune) []string {
	return strings.FieldsFunc(source, func(r rune) bool { return r == delim })
}

// build deduplicates, validates and indexes symbols.
func build[S Symbol](symbols []S, delim rune, hasDelim bool) (*Table[S], error) {
	uniq := Unique(symbols)
	if err := sizeError(len(uniq)); err != nil {
		return nil, err
	}

	index := swiss.New[S, uint8](len(uniq))
	for i, s := range uniq {
		index.Put(s, uint8(i))
	}

	return &Table[S]{
		symbols:  uniq,
		index:    index,
		radix:    uint64(len(uniq)),
		delim:    delim,
		hasDelim: hasDelim,
	}, nil
}
