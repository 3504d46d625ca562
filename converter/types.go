// Package converter defines the generic Converter and its mode aliases.
package converter

import (
	"github.com/rs/zerolog"

	"github.com/danielpclark/base-custom/alphabet"
)

// maxDigits is the longest representation of a uint64: 64 binary digits.
const maxDigits = 64

// Representation is the output of Generate and the input of Parse.
type Representation interface {
	string | []byte
}

// layout splits a representation into symbols and renders digits back.
// Each mode (chars, tokens, bytes) supplies one.
type layout[S alphabet.Symbol, R Representation] interface {
	// units splits repr into the symbols to be looked up, most significant first.
	units(repr R) []S
	// render writes digits, most significant first, using t's symbols.
	render(t *alphabet.Table[S], digits []uint8) R
}

// Converter converts between uint64 values and representations in the base
// defined by its alphabet. It is immutable after construction.
type Converter[S alphabet.Symbol, R Representation] struct {
	table  *alphabet.Table[S]
	layout layout[S, R]
	log    zerolog.Logger
}

// Chars converts with single-character symbols.
type Chars = Converter[rune, string]

// Tokens converts with string symbols, optionally delimiter-separated.
type Tokens = Converter[string, string]

// Bytes converts with raw byte symbols.
type Bytes = Converter[byte, []byte]
