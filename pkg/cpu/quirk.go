package cpu

// execQuirkRead implements the non-standard opcode 0x02: it loads A with
// an entry from one of two configured byte slices, selected by c.Mode and
// indexed by A mod len(slice). The byte slices are supplied via
// SetQuirkData rather than baked in as compile-time constants, so a host
// can configure them as data instead of recompiling.
func (c *CPU) execQuirkRead() int {
	data := c.quirkRing0
	if c.Mode == Ring3 {
		data = c.quirkRing3
	}
	if len(data) == 0 {
		return 2
	}
	c.A = data[int(c.A)%len(data)]
	return 2
}
