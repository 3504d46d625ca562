package alphabet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielpclark/base-custom/alphabet"
)

//----------------------------------------------------------------------------//
// Construction limits
//----------------------------------------------------------------------------//

// TestNew_TooFewSymbols verifies that 0 or 1 distinct symbols are rejected,
// including inputs that only collapse to one symbol after deduplication.
func TestNew_TooFewSymbols(t *testing.T) {
	cases := []struct {
		name  string
		input []rune
	}{
		{"Empty", nil},
		{"Single", []rune{'0'}},
		{"RepeatsOfOne", []rune{'0', '0', '0'}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tbl, err := alphabet.New(tc.input)
			assert.Nil(t, tbl)
			assert.ErrorIs(t, err, alphabet.ErrTooFewSymbols)
		})
	}
}

// TestNew_TooManySymbols verifies the MaxRadix cap: 255 passes, 256 fails.
func TestNew_TooManySymbols(t *testing.T) {
	runes := make([]rune, 256)
	for i := range runes {
		runes[i] = rune(0x100 + i)
	}

	tbl, err := alphabet.New(runes[:255])
	require.NoError(t, err)
	assert.Equal(t, uint64(255), tbl.Radix())

	tbl, err = alphabet.New(runes)
	assert.Nil(t, tbl)
	assert.ErrorIs(t, err, alphabet.ErrTooManySymbols)

	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}
	_, err = alphabet.New(all)
	assert.ErrorIs(t, err, alphabet.ErrTooManySymbols)
}

// TestNew_TooManyCountsAfterDedup checks that the cap applies to distinct symbols.
func TestNew_TooManyCountsAfterDedup(t *testing.T) {
	runes := make([]rune, 0, 510)
	for i := 0; i < 255; i++ {
		runes = append(runes, rune(0x100+i), rune(0x100+i))
	}
	tbl, err := alphabet.New(runes)
	require.NoError(t, err)
	assert.Equal(t, 255, tbl.Len())
}

//----------------------------------------------------------------------------//
// Deduplication and index assignment
//----------------------------------------------------------------------------//

// TestUnique keeps first occurrences in order.
func TestUnique(t *testing.T) {
	assert.Equal(t, []rune("01"), alphabet.Unique([]rune("00011")))
	assert.Equal(t, []string{"b", "a", "c"}, alphabet.Unique([]string{"b", "a", "b", "c", "a"}))
	assert.Equal(t, []byte{3, 1, 2}, alphabet.Unique([]byte{3, 3, 1, 2, 1}))
	assert.Empty(t, alphabet.Unique[rune](nil))

	in := []rune("aab")
	_ = alphabet.Unique(in)
	assert.Equal(t, []rune("aab"), in, "input must not be modified")
}

// TestNew_DedupIdempotence verifies a list with repeats equals the same list without them.
func TestNew_DedupIdempotence(t *testing.T) {
	withRepeats, err := alphabet.New([]rune("0001101"))
	require.NoError(t, err)
	clean, err := alphabet.New([]rune("01"))
	require.NoError(t, err)

	assert.True(t, withRepeats.Equal(clean))
	assert.Equal(t, uint64(2), withRepeats.Radix())
}

// TestNew_IndexAssignment verifies index_of[symbols[i]] == i.
func TestNew_IndexAssignment(t *testing.T) {
	tbl, err := alphabet.FromRunes("zyxzw")
	require.NoError(t, err)

	syms := tbl.Symbols()
	assert.Equal(t, []rune("zyxw"), syms)
	for i, s := range syms {
		idx, ok := tbl.IndexOf(s)
		require.True(t, ok)
		assert.Equal(t, uint8(i), idx)
	}
	_, ok := tbl.IndexOf('q')
	assert.False(t, ok)
	assert.False(t, tbl.Contains('q'))
	assert.True(t, tbl.Contains('w'))
}

//----------------------------------------------------------------------------//
// Token construction
//----------------------------------------------------------------------------//

// TestFromDelimited splits on the delimiter and drops empty fragments.
func TestFromDelimited(t *testing.T) {
	tbl, err := alphabet.FromDelimited(".0.1.2.3.4.5.6.7.8.9..", '.')
	require.NoError(t, err)
	assert.Equal(t, uint64(10), tbl.Radix())
	assert.Equal(t, "0", tbl.Zero())

	d, ok := tbl.Delimiter()
	assert.True(t, ok)
	assert.Equal(t, '.', d)

	music, err := alphabet.FromDelimited("A A# B C C# D D# E F F# G G#", ' ')
	require.NoError(t, err)
	assert.Equal(t, uint64(12), music.Radix())
	nth, ok := music.Nth(1)
	assert.True(t, ok)
	assert.Equal(t, "A#", nth)
}

// TestFromDelimited_Errors covers sources that collapse below two tokens.
func TestFromDelimited_Errors(t *testing.T) {
	for _, src := range []string{"", ":::", "aa", "aa:aa:"} {
		_, err := alphabet.FromDelimited(src, ':')
		assert.ErrorIs(t, err, alphabet.ErrTooFewSymbols, "source %q", src)
	}
}

// TestFromString builds one-character tokens with repeats ignored.
func TestFromString(t *testing.T) {
	tbl, err := alphabet.FromString("00011")
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1"}, tbl.Symbols())
	_, ok := tbl.Delimiter()
	assert.False(t, ok)

	_, err = alphabet.FromString("0")
	assert.ErrorIs(t, err, alphabet.ErrTooFewSymbols)
}

// TestSplitTokens checks tolerance to doubled and trailing delimiters.
func TestSplitTokens(t *testing.T) {
	want := []string{"bb", "bb", "aa"}
	assert.Equal(t, want, alphabet.SplitTokens("bb::bb::aa", ':'))
	assert.Equal(t, want, alphabet.SplitTokens("bb:bb:aa:", ':'))
	assert.Equal(t, want, alphabet.SplitTokens(":bb:bb:aa", ':'))
	assert.Empty(t, alphabet.SplitTokens("", ':'))
}

//----------------------------------------------------------------------------//
// Ordinal ranges
//----------------------------------------------------------------------------//

// TestFromOrdinalRange covers in-range, clipped and empty ranges.
func TestFromOrdinalRange(t *testing.T) {
	cases := []struct {
		name   string
		lo, hi rune
		want   string
	}{
		{"Binary", 48, 50, "01"},
		{"Decimal", 48, 58, alphabet.Decimal},
		{"ClipLow", 0, 34, " !"},
		{"ClipHigh", 125, 500, "}~"},
		{"Full", 0, 1000, alphabet.Printable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tbl, err := alphabet.FromOrdinalRange(tc.lo, tc.hi)
			require.NoError(t, err)
			assert.Equal(t, []rune(tc.want), tbl.Symbols())
		})
	}

	for _, r := range [][2]rune{{0, 32}, {127, 200}, {60, 60}, {70, 50}, {48, 49}} {
		_, err := alphabet.FromOrdinalRange(r[0], r[1])
		assert.ErrorIs(t, err, alphabet.ErrTooFewSymbols, "range %v", r)
	}
}

// TestPresets verifies the well-known alphabets build without repeats.
func TestPresets(t *testing.T) {
	cases := map[string]int{
		alphabet.Binary:      2,
		alphabet.Octal:       8,
		alphabet.Decimal:     10,
		alphabet.HexLower:    16,
		alphabet.HexUpper:    16,
		alphabet.Base36:      36,
		alphabet.Base58:      58,
		alphabet.Base62:      62,
		alphabet.Crockford32: 32,
		alphabet.Printable:   95,
	}
	for src, radix := range cases {
		tbl, err := alphabet.FromRunes(src)
		require.NoError(t, err)
		assert.Equal(t, radix, tbl.Len(), "preset %q", src)
	}
}
