package cpu

// AddressingMode identifies how an instruction resolves its operand.
type AddressingMode int

const (
	AddrImplied AddressingMode = iota
	AddrAccumulator
	AddrImmediate
	AddrZeroPage
	AddrZeroPageX
	AddrZeroPageY
	AddrRelative
	AddrAbsolute
	AddrAbsoluteX
	AddrAbsoluteY
	AddrIndirect
	AddrIndexedIndirect
	AddrIndirectIndexed
)

// getOperandAddress advances PC past the instruction's operand bytes and
// computes the effective address for mode, one switch case per mode
// below. The second return value reports whether an
// indexed access crossed a page boundary (meaningless for modes that
// don't index).
func (c *CPU) getOperandAddress(mode AddressingMode) (uint16, bool) {
	switch mode {
	case AddrImmediate:
		addr := c.PC
		c.PC++
		return addr, false

	case AddrZeroPage:
		addr := uint16(c.read(c.PC))
		c.PC++
		return addr, false

	case AddrZeroPageX:
		addr := uint16(c.read(c.PC)+c.X) & 0xFF
		c.PC++
		return addr, false

	case AddrZeroPageY:
		addr := uint16(c.read(c.PC)+c.Y) & 0xFF
		c.PC++
		return addr, false

	case AddrRelative:
		offset := int8(c.read(c.PC))
		c.PC++
		addr := uint16(int32(c.PC) + int32(offset))
		return addr, (c.PC & 0xFF00) != (addr & 0xFF00)

	case AddrAbsolute:
		addr := c.read16(c.PC)
		c.PC += 2
		return addr, false

	case AddrAbsoluteX:
		base := c.read16(c.PC)
		c.PC += 2
		addr := base + uint16(c.X)
		return addr, (base & 0xFF00) != (addr & 0xFF00)

	case AddrAbsoluteY:
		base := c.read16(c.PC)
		c.PC += 2
		addr := base + uint16(c.Y)
		return addr, (base & 0xFF00) != (addr & 0xFF00)

	case AddrIndirect: // JMP ($addr), with the documented page-wrap bug
		ptr := c.read16(c.PC)
		c.PC += 2
		lo := c.read(ptr)
		var hi uint8
		if ptr&0xFF == 0xFF {
			hi = c.read(ptr & 0xFF00)
		} else {
			hi = c.read(ptr + 1)
		}
		return uint16(hi)<<8 | uint16(lo), false

	case AddrIndexedIndirect: // (zp,X)
		base := c.read(c.PC)
		c.PC++
		ptr := (uint16(base) + uint16(c.X)) & 0xFF
		lo := c.read(ptr)
		hi := c.read((ptr + 1) & 0xFF)
		return uint16(hi)<<8 | uint16(lo), false

	case AddrIndirectIndexed: // (zp),Y
		base := c.read(c.PC)
		c.PC++
		lo := c.read(uint16(base))
		hi := c.read((uint16(base) + 1) & 0xFF)
		baseAddr := uint16(hi)<<8 | uint16(lo)
		addr := baseAddr + uint16(c.Y)
		return addr, (baseAddr & 0xFF00) != (addr & 0xFF00)
	}

	return 0, false
}

// getOperand resolves mode's operand value: A itself for accumulator
// mode, otherwise the byte at the effective address.
func (c *CPU) getOperand(mode AddressingMode) (uint8, bool) {
	if mode == AddrAccumulator {
		return c.A, false
	}
	addr, crossed := c.getOperandAddress(mode)
	return c.read(addr), crossed
}
