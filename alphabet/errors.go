// SPDX-License-Identifier: MIT
// Package: base-custom/alphabet
//
// errors.go — sentinel errors for the alphabet package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors wrap a sentinel with the offending count using %w.
//   • Construction never returns a partially valid Table.

package alphabet

import (
	"errors"
	"fmt"
)

// ErrTooFewSymbols indicates that fewer than MinRadix distinct symbols remain
// after deduplication and empty-token filtering.
// Usage: if errors.Is(err, ErrTooFewSymbols) { /* supply two or more symbols */ }.
var ErrTooFewSymbols = errors.New("alphabet: too few symbols, provide two or more")

// ErrTooManySymbols indicates that more than MaxRadix distinct symbols remain.
// Digit values are stored as uint8, which caps the radix.
// Usage: if errors.Is(err, ErrTooManySymbols) { /* shrink the alphabet */ }.
var ErrTooManySymbols = errors.New("alphabet: too many symbols")

// sizeError wraps the sentinel matching n, or returns nil when n is a valid radix.
func sizeError(n int) error {
	switch {
	case n < MinRadix:
		return fmt.Errorf("%w: got %d distinct", ErrTooFewSymbols, n)
	case n > MaxRadix:
		return fmt.Errorf("%w: got %d distinct, maximum is %d", ErrTooManySymbols, n, MaxRadix)
	default:
		return nil
	}
}
