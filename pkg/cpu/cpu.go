package cpu

import (
	"github.com/yoshiomiyamae/gones6502/pkg/bus"
	"github.com/yoshiomiyamae/gones6502/pkg/logger"
)

// ExecutionMode selects which of the two quirk byte arrays opcode 0x02
// reads from (the non-standard opcode).
type ExecutionMode int

const (
	Ring0 ExecutionMode = iota
	Ring3
)

// CPU is the 6502 register file, status flags, and clock accounting.
type CPU struct {
	A  uint8
	X  uint8
	Y  uint8
	SP uint8
	PC uint16
	P  uint8

	Bus *bus.Bus

	// Cycles is the running total of cycles this CPU has executed.
	Cycles int

	// debt is the cycle-debt counter:
	// Clock decrements it once per call and only fetches a new
	// instruction once it reaches zero.
	debt int

	NMI bool
	IRQ bool

	Mode ExecutionMode
	// quirkRing0/quirkRing3 back opcode 0x02 (quirk.go); configuration
	// inputs rather than compile-time constants.
	quirkRing0 []uint8
	quirkRing3 []uint8
}

// Status flag bit positions.
const (
	FlagCarry     = 1 << 0 // C
	FlagZero      = 1 << 1 // Z
	FlagInterrupt = 1 << 2 // I
	FlagDecimal   = 1 << 3 // D
	FlagBreak     = 1 << 4 // B
	FlagUnused    = 1 << 5 // U - architecturally always set on pushes
	FlagOverflow  = 1 << 6 // V
	FlagNegative  = 1 << 7 // N
)

// New creates a CPU wired to bus b. Reset must be called at least once
// before Clock/Step.
func New(b *bus.Bus) *CPU {
	return &CPU{Bus: b, Mode: Ring0}
}

// SetQuirkData configures the two byte arrays opcode 0x02 reads from,
// selected by Mode and indexed by A mod len(array).
func (c *CPU) SetQuirkData(ring0, ring3 []uint8) {
	c.quirkRing0 = ring0
	c.quirkRing3 = ring3
}

// Reset clears A/X/Y, sets SP=0xFD, status=U only, cycle debt=8, and
// loads PC from the RESET vector.
func (c *CPU) Reset() {
	c.A = 0
	c.X = 0
	c.Y = 0
	c.SP = 0xFD
	c.P = FlagUnused
	c.PC = c.read16(0xFFFC)
	c.Cycles = 0
	c.debt = 8
	c.NMI = false
	c.IRQ = false
}

// Clock advances the CPU by exactly one cycle: while cycle debt is
// outstanding it is only decremented; once it
// reaches zero the next instruction (or pending interrupt) is fetched and
// fully executed, and its cost minus one is banked as new debt.
func (c *CPU) Clock() {
	if c.debt > 0 {
		c.debt--
		return
	}
	cycles := c.step()
	c.Cycles += cycles
	c.debt = cycles - 1
}

// Step executes exactly one instruction (or interrupt entry) regardless
// of cycle debt and returns the cycles it cost. Provided for hosts and
// tests that want instruction-granularity stepping instead of per-cycle
// Clock(); both run the same internal step().
func (c *CPU) Step() int {
	cycles := c.step()
	c.Cycles += cycles
	return cycles
}

func (c *CPU) step() int {
	if c.NMI {
		c.NMI = false
		c.handleNMI()
		return 7
	}
	if c.IRQ && !c.getFlag(FlagInterrupt) {
		c.IRQ = false
		c.handleIRQ()
		return 7
	}

	opcode := c.read(c.PC)
	c.PC++
	return c.executeInstruction(opcode)
}

// handleNMI is unconditional: it pushes PC then status with B=0/U=1,
// sets I, and loads PC from the NMI vector.
func (c *CPU) handleNMI() {
	logger.LogCPU("NMI at PC=$%04X", c.PC)
	c.push16(c.PC)
	c.push((c.P &^ FlagBreak) | FlagUnused)
	c.setFlag(FlagInterrupt, true)
	c.PC = c.read16(0xFFFA)
}

// handleIRQ assumes the caller already checked that I is clear: it
// pushes PC then status with B=0/U=1, sets I, and loads PC from the IRQ
// vector.
func (c *CPU) handleIRQ() {
	c.push16(c.PC)
	c.push((c.P &^ FlagBreak) | FlagUnused)
	c.setFlag(FlagInterrupt, true)
	c.PC = c.read16(0xFFFE)
}

func (c *CPU) getFlag(flag uint8) bool { return c.P&flag != 0 }

func (c *CPU) setFlag(flag uint8, value bool) {
	if value {
		c.P |= flag
	} else {
		c.P &^= flag
	}
}

func (c *CPU) read(addr uint16) uint8         { return c.Bus.Read(addr) }
func (c *CPU) write(addr uint16, value uint8) { c.Bus.Write(addr, value) }

func (c *CPU) read16(addr uint16) uint16 {
	lo := uint16(c.read(addr))
	hi := uint16(c.read(addr + 1))
	return hi<<8 | lo
}

func (c *CPU) push(value uint8) {
	c.write(0x0100|uint16(c.SP), value)
	c.SP--
}

func (c *CPU) pop() uint8 {
	c.SP++
	return c.read(0x0100 | uint16(c.SP))
}

func (c *CPU) push16(value uint16) {
	c.push(uint8(value >> 8))
	c.push(uint8(value & 0xFF))
}

func (c *CPU) pop16() uint16 {
	lo := uint16(c.pop())
	hi := uint16(c.pop())
	return hi<<8 | lo
}

// TriggerNMI latches a non-maskable interrupt, observed at the next
// instruction boundary.
func (c *CPU) TriggerNMI() { c.NMI = true }

// TriggerIRQ latches a maskable interrupt request, observed at the next
// instruction boundary if the I flag is clear.
func (c *CPU) TriggerIRQ() { c.IRQ = true }

// GetFlag exposes flag state for tests and the debug adjunct.
func (c *CPU) GetFlag(flag uint8) bool { return c.getFlag(flag) }
