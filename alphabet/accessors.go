package alphabet

import "slices"

// Radix returns the numeral base, i.e. the number of distinct symbols.
func (t *Table[S]) Radix() uint64 { return t.radix }

// Len returns the number of symbols as an int.
func (t *Table[S]) Len() int { return len(t.symbols) }

// Symbols returns a copy of the ordered symbol list.
func (t *Table[S]) Symbols() []S { return slices.Clone(t.symbols) }

// Zero returns the symbol for digit value 0.
func (t *Table[S]) Zero() S { return t.symbols[0] }

// One returns the symbol for digit value 1. Always present: radix ≥ 2.
func (t *Table[S]) One() S { return t.symbols[1] }

// Nth returns the symbol for digit value pos.
// ok is false when pos is negative or pos ≥ Radix(); Nth(0) equals Zero().
func (t *Table[S]) Nth(pos int) (s S, ok bool) {
	return t.At(pos)
}

// At returns the symbol stored at index, with a strict bound:
// ok is false exactly when index < 0 or index ≥ Len().
func (t *Table[S]) At(index int) (s S, ok bool) {
	if index < 0 || index >= len(t.symbols) {
		return s, false
	}

	return t.symbols[index], true
}

// Digit returns the symbol for a digit value produced by the converter.
// The caller guarantees d < Radix().
func (t *Table[S]) Digit(d uint8) S { return t.symbols[d] }

// IndexOf returns the digit value of s.
// Complexity: O(1) expected.
func (t *Table[S]) IndexOf(s S) (uint8, bool) {
	return t.index.Get(s)
}

// Contains reports whether s belongs to the alphabet.
func (t *Table[S]) Contains(s S) bool {
	_, ok := t.index.Get(s)
	return ok
}

// Delimiter returns the token delimiter, if one was configured.
func (t *Table[S]) Delimiter() (rune, bool) { return t.delim, t.hasDelim }

// Equal reports whether t and other describe the same base: same symbols in
// the same order, same radix and same delimiter. The reverse index is
// derived data and is not compared.
func (t *Table[S]) Equal(other *Table[S]) bool {
	if t == nil || other == nil {
		return t == other
	}

	return t.radix == other.radix &&
		t.hasDelim == other.hasDelim &&
		(!t.hasDelim || t.delim == other.delim) &&
		slices.Equal(t.symbols, other.symbols)
}
