package converter

import (
	"fmt"
	"math/bits"

	"github.com/danielpclark/base-custom/alphabet"
)

// Parse returns the value of repr.
//
// Units are split per mode: one rune (Chars), one byte (Bytes), or one token
// (Tokens, split on the delimiter with empty fragments ignored, otherwise one
// token per character). An empty representation parses to 0.
//
// Returns ErrUnknownSymbol for a unit outside the alphabet and ErrOverflow
// when the value exceeds 2^64-1. Leading zero symbols never overflow.
// Complexity: O(n) for n units.
func (c *Converter[S, R]) Parse(repr R) (uint64, error) {
	radix := c.table.Radix()
	var value uint64
	for pos, u := range c.layout.units(repr) {
		d, ok := c.table.IndexOf(u)
		if !ok {
			c.log.Debug().Str("symbol", alphabet.Render(u)).Int("position", pos).Msg("unknown symbol")
			return 0, fmt.Errorf("%w %s at position %d", ErrUnknownSymbol, alphabet.Render(u), pos)
		}
		hi, lo := bits.Mul64(value, radix)
		sum, carry := bits.Add64(lo, uint64(d), 0)
		if hi != 0 || carry != 0 {
			return 0, fmt.Errorf("%w: uint64 exceeded at position %d", ErrOverflow, pos)
		}
		value = sum
	}

	return value, nil
}
