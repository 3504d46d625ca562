package converter

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/danielpclark/base-custom/alphabet"
)

// GenerateUint is Generate for any unsigned integer type.
func GenerateUint[T constraints.Unsigned, S alphabet.Symbol, R Representation](c *Converter[S, R], v T) R {
	return c.Generate(uint64(v))
}

// ParseUint is Parse narrowed to T. A value that does not fit T fails with
// ErrOverflow.
//
//	b, err := converter.ParseUint[uint8](hex, "ff") // 255
func ParseUint[T constraints.Unsigned, S alphabet.Symbol, R Representation](c *Converter[S, R], repr R) (T, error) {
	v, err := c.Parse(repr)
	if err != nil {
		return 0, err
	}
	if uint64(T(v)) != v {
		return 0, fmt.Errorf("%w: %d does not fit %T", ErrOverflow, v, T(0))
	}

	return T(v), nil
}

// Convert re-encodes repr from the base of src into the base of dst.
//
//	hex, _ := converter.NewChars([]rune(alphabet.HexLower))
//	bin, _ := converter.NewChars([]rune(alphabet.Binary))
//	s, _ := converter.Convert(hex, bin, "ff") // "11111111"
func Convert[S1 alphabet.Symbol, R1 Representation, S2 alphabet.Symbol, R2 Representation](
	src *Converter[S1, R1], dst *Converter[S2, R2], repr R1,
) (R2, error) {
	v, err := src.Parse(repr)
	if err != nil {
		var zero R2
		return zero, err
	}

	return dst.Generate(v), nil
}
