package converter

// Generate returns the representation of value, most significant digit first.
// Generate(0) is the zero symbol alone, with no delimiter.
// Complexity: O(d) for d ≤ 64 digits.
func (c *Converter[S, R]) Generate(value uint64) R {
	return c.layout.render(c.table, c.digits(value, 1))
}

// GenerateWidth is Generate left-padded with the zero symbol to at least
// width digits. Parse accepts the padded form and returns the same value.
func (c *Converter[S, R]) GenerateWidth(value uint64, width int) R {
	return c.layout.render(c.table, c.digits(value, width))
}

// digits expands value in the table's radix, most significant first, with
// at least max(width, 1) digits.
func (c *Converter[S, R]) digits(value uint64, width int) []uint8 {
	var buf [maxDigits]uint8
	radix := c.table.Radix()
	i := len(buf)
	for value > 0 {
		i--
		buf[i] = uint8(value % radix)
		value /= radix
	}
	n := max(len(buf)-i, 1, width)
	out := make([]uint8, n)
	copy(out[n-(len(buf)-i):], buf[i:])

	return out
}
