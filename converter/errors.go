// SPDX-License-Identifier: MIT
// Package: base-custom/converter
//
// errors.go — sentinel errors for the converter package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Context (method, symbol, position) is attached with %w.
//   • Per-call errors never invalidate the Converter.
//   • Option constructors panic on meaningless values; everything else returns errors.

package converter

import (
	"errors"
	"fmt"
)

// ErrUnknownSymbol indicates that Parse met a unit with no digit value.
// Usage: if errors.Is(err, ErrUnknownSymbol) { /* reject the input */ }.
var ErrUnknownSymbol = errors.New("converter: unknown symbol")

// ErrOverflow indicates that a parsed value does not fit the target
// unsigned integer type (uint64 for Parse, T for ParseUint).
var ErrOverflow = errors.New("converter: value overflows integer")

// ErrOptionViolation indicates an option that does not apply to the chosen
// constructor, e.g. WithDelimiter passed to NewChars or NewBytes.
var ErrOptionViolation = errors.New("converter: invalid option for mode")

// wrapf prefixes err with the constructor or method name.
func wrapf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
