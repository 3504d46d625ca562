package alphabet

// Well-known alphabets, usable with FromRunes or FromString.
const (
	Binary      = "01"
	Octal       = "01234567"
	Decimal     = "0123456789"
	HexLower    = "0123456789abcdef"
	HexUpper    = "0123456789ABCDEF"
	Base36      = "0123456789abcdefghijklmnopqrstuvwxyz"
	Base58      = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz" // bitcoin
	Base62      = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Crockford32 = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"
	// Printable is every code point in [MinOrdinal, MaxOrdinal): space to tilde.
	Printable = " !\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`abcdefghijklmnopqrstuvwxyz{|}~"
)
