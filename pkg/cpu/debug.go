package cpu

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
)

// Disassemble decodes the instruction at addr using opcodeTable and
// returns its mnemonic alongside the number of bytes it occupies
// (1 for implied/accumulator, 2 or 3 once the operand width per
// AddressingMode is accounted for). It does not advance the CPU; reads
// go through the same bus a live fetch would use.
func (c *CPU) Disassemble(addr uint16) (mnemonic string, length int) {
	opcode := c.read(addr)
	info := opcodeTable[opcode]

	switch info.Mode {
	case AddrImplied, AddrAccumulator:
		return info.Mnemonic, 1
	case AddrImmediate, AddrZeroPage, AddrZeroPageX, AddrZeroPageY,
		AddrRelative, AddrIndexedIndirect, AddrIndirectIndexed:
		return info.Mnemonic, 2
	default: // AddrAbsolute, AddrAbsoluteX, AddrAbsoluteY, AddrIndirect
		return info.Mnemonic, 3
	}
}

// State is a point-in-time snapshot of the CPU's registers, used by
// Dump and by hosts wanting a comparable/loggable value without poking
// at unexported fields.
type State struct {
	A, X, Y, SP uint8
	PC          uint16
	P           uint8
	Cycles      int
	Mode        ExecutionMode
}

// Snapshot captures the CPU's current register file.
func (c *CPU) Snapshot() State {
	return State{A: c.A, X: c.X, Y: c.Y, SP: c.SP, PC: c.PC, P: c.P, Cycles: c.Cycles, Mode: c.Mode}
}

// Dump renders the CPU's register state and the instruction at PC for
// interactive debugging (the cmd/nesdbg single-step view), using
// go-spew rather than a hand-rolled field-by-field formatter.
func (c *CPU) Dump() string {
	mnemonic, _ := c.Disassemble(c.PC)
	return fmt.Sprintf("%s\nnext: %s\n%s", spew.Sdump(c.Snapshot()), mnemonic, flagString(c.P))
}

func flagString(p uint8) string {
	bits := []struct {
		flag uint8
		ch   byte
	}{
		{FlagNegative, 'N'}, {FlagOverflow, 'V'}, {FlagUnused, 'U'}, {FlagBreak, 'B'},
		{FlagDecimal, 'D'}, {FlagInterrupt, 'I'}, {FlagZero, 'Z'}, {FlagCarry, 'C'},
	}
	out := make([]byte, len(bits))
	for i, b := range bits {
		if p&b.flag != 0 {
			out[i] = b.ch
		} else {
			out[i] = '-'
		}
	}
	return string(out)
}
