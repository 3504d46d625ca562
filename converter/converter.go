package converter

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/danielpclark/base-custom/alphabet"
)

// NewChars builds a character-mode converter from an ordered rune list.
// Repeated runes are ignored. WithDelimiter is rejected with ErrOptionViolation.
func NewChars(symbols []rune, opts ...Option) (*Chars, error) {
	const method = "NewChars"
	cfg := newConverterConfig(opts...)
	if cfg.hasDelim {
		return nil, cfg.reject(method, fmt.Errorf("%w: delimiter needs token mode", ErrOptionViolation))
	}
	tbl, err := alphabet.New(symbols)
	if err != nil {
		return nil, cfg.reject(method, err)
	}

	return newConverter[rune, string](tbl, charLayout{}, cfg), nil
}

// NewCharRange builds a character-mode converter over the code points
// [lo, hi), clipped to the printable range [32, 127).
func NewCharRange(lo, hi rune, opts ...Option) (*Chars, error) {
	const method = "NewCharRange"
	cfg := newConverterConfig(opts...)
	if cfg.hasDelim {
		return nil, cfg.reject(method, fmt.Errorf("%w: delimiter needs token mode", ErrOptionViolation))
	}
	tbl, err := alphabet.FromOrdinalRange(lo, hi)
	if err != nil {
		return nil, cfg.reject(method, err)
	}

	return newConverter[rune, string](tbl, charLayout{}, cfg), nil
}

// NewTokens builds a token-mode converter from source.
//
// With WithDelimiter(d), source is split on d and empty fragments are
// dropped; tokens may be any length. Without it, every character of source
// is a one-character token. Repeated tokens are ignored in both cases.
func NewTokens(source string, opts ...Option) (*Tokens, error) {
	const method = "NewTokens"
	cfg := newConverterConfig(opts...)

	var (
		tbl *alphabet.Table[string]
		err error
	)
	if cfg.hasDelim {
		tbl, err = alphabet.FromDelimited(source, cfg.delim)
	} else {
		tbl, err = alphabet.FromString(source)
	}
	if err != nil {
		return nil, cfg.reject(method, err)
	}
	lay := tokenLayout{delim: cfg.delim, hasDelim: cfg.hasDelim}

	return newConverter[string, string](tbl, lay, cfg), nil
}

// NewBytes builds a byte-mode converter from an ordered byte list.
// Repeated bytes are ignored. WithDelimiter is rejected with ErrOptionViolation.
func NewBytes(symbols []byte, opts ...Option) (*Bytes, error) {
	const method = "NewBytes"
	cfg := newConverterConfig(opts...)
	if cfg.hasDelim {
		return nil, cfg.reject(method, fmt.Errorf("%w: delimiter needs token mode", ErrOptionViolation))
	}
	tbl, err := alphabet.New(symbols)
	if err != nil {
		return nil, cfg.reject(method, err)
	}

	return newConverter[byte, []byte](tbl, byteLayout{}, cfg), nil
}

func newConverter[S alphabet.Symbol, R Representation](tbl *alphabet.Table[S], lay layout[S, R], cfg converterConfig) *Converter[S, R] {
	cfg.logger.Debug().Object("alphabet", tbl).Msg("converter ready")

	return &Converter[S, R]{
		table:  tbl,
		layout: lay,
		log:    cfg.logger,
	}
}

// Table returns the underlying alphabet.
func (c *Converter[S, R]) Table() *alphabet.Table[S] { return c.table }

// Radix returns the numeral base.
func (c *Converter[S, R]) Radix() uint64 { return c.table.Radix() }

// Zero returns the symbol for value 0.
func (c *Converter[S, R]) Zero() S { return c.table.Zero() }

// One returns the symbol for value 1.
func (c *Converter[S, R]) One() S { return c.table.One() }

// Nth returns the symbol for digit value pos; ok is false when pos is out
// of [0, Radix()).
func (c *Converter[S, R]) Nth(pos int) (S, bool) { return c.table.Nth(pos) }

// SymbolAt returns the symbol stored at index; ok is false exactly when
// index is negative or not below the number of symbols.
func (c *Converter[S, R]) SymbolAt(index int) (S, bool) { return c.table.At(index) }

// Delimiter returns the token delimiter, if any.
func (c *Converter[S, R]) Delimiter() (rune, bool) { return c.table.Delimiter() }

// Equal reports whether both converters use equal alphabets.
func (c *Converter[S, R]) Equal(other *Converter[S, R]) bool {
	if c == nil || other == nil {
		return c == other
	}

	return c.table.Equal(other.table)
}

// String renders the alphabet for diagnostics.
func (c *Converter[S, R]) String() string { return c.table.String() }

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (c *Converter[S, R]) MarshalZerologObject(e *zerolog.Event) {
	c.table.MarshalZerologObject(e)
}
