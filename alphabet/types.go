// Package alphabet defines the Symbol constraint and the Table type.
package alphabet

import (
	"github.com/cockroachdb/swiss"
)

// Radix bounds. Digit values are stored as uint8.
const (
	MinRadix = 2
	MaxRadix = 255
)

// Printable ordinal bounds used by FromOrdinalRange: [32, 127).
const (
	MinOrdinal rune = 32
	MaxOrdinal rune = 127
)

// Symbol is one irreducible unit of an alphabet:
//
//   - rune: a single Unicode character.
//   - byte: a single raw 8-bit value.
//   - string: a token of one or more characters.
type Symbol interface {
	rune | byte | string
}

// Table is an ordered, deduplicated alphabet.
//
// Invariants (established by the constructors, never mutated afterwards):
//   - symbols has unique elements, in first-occurrence order.
//   - radix == len(symbols), MinRadix ≤ radix ≤ MaxRadix.
//   - index[symbols[i]] == i for every i.
//   - hasDelim is only ever true for tables built by FromDelimited.
type Table[S Symbol] struct {
	symbols  []S
	index    *swiss.Map[S, uint8]
	radix    uint64
	delim    rune
	hasDelim bool
}
