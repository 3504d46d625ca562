// SPDX-License-Identifier: MIT
// Package: base-custom/converter
//
// options.go — functional options for the converter constructors.
//
// Contract:
//   • Options are functional (type Option func(*converterConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Options that do not fit a mode surface as ErrOptionViolation.

package converter

import (
	"unicode/utf8"

	"github.com/rs/zerolog"
)

// Option customizes a constructor by mutating a converterConfig before the
// alphabet is built.
type Option func(*converterConfig)

// WithDelimiter sets the token delimiter. Only NewTokens accepts it.
// Panics on a rune that is not a valid Unicode scalar value.
func WithDelimiter(d rune) Option {
	if !utf8.ValidRune(d) {
		panic("converter: WithDelimiter(invalid rune)")
	}
	return func(c *converterConfig) {
		c.delim, c.hasDelim = d, true
	}
}

// WithLogger routes construction and parse diagnostics to l.
// Everything is logged at debug level.
func WithLogger(l zerolog.Logger) Option {
	return func(c *converterConfig) {
		c.logger = l
	}
}
