package converter

import (
	"strings"
	"unicode/utf8"

	"github.com/danielpclark/base-custom/alphabet"
)

// charLayout: one rune per digit, no delimiter.
type charLayout struct{}

func (charLayout) units(repr string) []rune { return []rune(repr) }

func (charLayout) render(t *alphabet.Table[rune], digits []uint8) string {
	var sb strings.Builder
	sb.Grow(len(digits))
	for _, d := range digits {
		sb.WriteRune(t.Digit(d))
	}

	return sb.String()
}

// byteLayout: one byte per digit, no delimiter.
type byteLayout struct{}

func (byteLayout) units(repr []byte) []byte { return repr }

func (byteLayout) render(t *alphabet.Table[byte], digits []uint8) []byte {
	out := make([]byte, len(digits))
	for i, d := range digits {
		out[i] = t.Digit(d)
	}

	return out
}

// tokenLayout: string symbols. With a delimiter each digit is followed by
// it, except a lone zero digit which is rendered bare.
type tokenLayout struct {
	delim    rune
	hasDelim bool
}

func (l tokenLayout) units(repr string) []string {
	if l.hasDelim {
		return alphabet.SplitTokens(repr, l.delim)
	}
	out := make([]string, 0, utf8.RuneCountInString(repr))
	for _, r := range repr {
		out = append(out, string(r))
	}

	return out
}

func (l tokenLayout) render(t *alphabet.Table[string], digits []uint8) string {
	bare := !l.hasDelim || (len(digits) == 1 && digits[0] == 0)
	var sb strings.Builder
	for _, d := range digits {
		sb.WriteString(t.Digit(d))
		if !bare {
			sb.WriteRune(l.delim)
		}
	}

	return sb.String()
}
