package alphabet

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// Render formats a single symbol for diagnostics and error messages:
// runes and tokens are quoted, bytes are printed as 0xHH.
func Render[S Symbol](s S) string {
	switch v := any(s).(type) {
	case rune:
		return strconv.QuoteRune(v)
	case byte:
		return fmt.Sprintf("0x%02X", v)
	case string:
		return strconv.Quote(v)
	default:
		return fmt.Sprint(v)
	}
}

// String renders the table for diagnostics: symbols, reverse index (in
// symbol order), radix and delimiter. It is not a stable wire format.
func (t *Table[S]) String() string {
	var sb strings.Builder
	sb.WriteString("Table\n\tsymbols: [")
	for i, s := range t.symbols {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(Render(s))
	}
	sb.WriteString("]\n\tindex: {")
	for i, s := range t.symbols {
		if i > 0 {
			sb.WriteString(", ")
		}
		idx, _ := t.index.Get(s)
		fmt.Fprintf(&sb, "%s: %d", Render(s), idx)
	}
	fmt.Fprintf(&sb, "}\n\tradix: %d\n\tdelimiter: %s", t.radix, t.delimiterString())

	return sb.String()
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler so a table can
// be attached to log events with Event.Object.
func (t *Table[S]) MarshalZerologObject(e *zerolog.Event) {
	rendered := make([]string, len(t.symbols))
	for i, s := range t.symbols {
		rendered[i] = Render(s)
	}
	e.Uint64("radix", t.radix).
		Strs("symbols", rendered).
		Str("delimiter", t.delimiterString())
}

func (t *Table[S]) delimiterString() string {
	if !t.hasDelim {
		return "none"
	}

	return strconv.QuoteRune(t.delim)
}
