// Package machine wires the CPU, bus, cartridge, and the video/audio/input
// collaborators into the single orchestration point a host program drives.
package machine

import (
	"github.com/yoshiomiyamae/gones6502/pkg/audio"
	"github.com/yoshiomiyamae/gones6502/pkg/bus"
	"github.com/yoshiomiyamae/gones6502/pkg/cartridge"
	"github.com/yoshiomiyamae/gones6502/pkg/cpu"
	"github.com/yoshiomiyamae/gones6502/pkg/input"
	"github.com/yoshiomiyamae/gones6502/pkg/video"
)

// Machine owns one CPU core, its bus, and the collaborators the bus
// addresses: a cartridge, the register-level video/audio stand-ins, and
// two controller ports.
type Machine struct {
	CPU       *cpu.CPU
	Bus       *bus.Bus
	Video     *video.PPU
	Audio     *audio.APU
	Input1    *input.Controller
	Input2    *input.Controller
	Cartridge *cartridge.Cartridge

	// Cycles is the running total of CPU cycles clocked since the last
	// Reset.
	Cycles uint64
}

// New creates a machine with no cartridge loaded. LoadCartridge and Reset
// must both be called before the first Clock/RunInstruction.
func New() *Machine {
	m := &Machine{
		Bus:    bus.New(),
		Video:  video.New(),
		Audio:  audio.New(),
		Input1: input.New(),
		Input2: input.New(),
	}
	m.CPU = cpu.New(m.Bus)
	m.Bus.SetVideo(m.Video)
	m.Bus.SetAudio(m.Audio)
	m.Bus.SetControllers(m.Input1, m.Input2)
	return m
}

// LoadCartridge attaches cart to the CPU-side bus and the video
// collaborator's CHR-space window, replacing whatever cartridge was
// previously loaded.
func (m *Machine) LoadCartridge(cart *cartridge.Cartridge) {
	m.Cartridge = cart
	m.Bus.SetCartridge(cart)
	m.Video.SetCartridge(cart)
}

// SetQuirkData configures the byte arrays behind the non-standard opcode
// 0x02 (pkg/cpu/quirk.go).
func (m *Machine) SetQuirkData(ring0, ring3 []uint8) {
	m.CPU.SetQuirkData(ring0, ring3)
}

// Reset brings the CPU and video collaborator back to their power-on
// state and zeroes the cycle counter.
func (m *Machine) Reset() {
	m.CPU.Reset()
	m.Video.Reset()
	m.Cycles = 0
}

// Clock advances the machine by exactly one CPU cycle. A host driving a
// real video collaborator is expected to clock that collaborator at its
// own rate (3x for an NTSC PPU) alongside this call; this package's own
// video.PPU has no per-cycle timing of its own to drive.
func (m *Machine) Clock() {
	m.CPU.Clock()
	m.Cycles++
}

// RunInstruction runs exactly one instruction (or pending interrupt
// entry) through CPU.Step and returns the cycles it cost, for hosts and
// tests that want instruction-granularity stepping instead of per-cycle
// Clock. It ignores outstanding cycle debt and adds none, so it does not
// match calling Clock() that many times while debt is pending (e.g.
// straight after Reset).
func (m *Machine) RunInstruction() int {
	cycles := m.CPU.Step()
	m.Cycles += uint64(cycles)
	return cycles
}

// StepScanline drives the cartridge's scanline-granularity IRQ clock
// (the MMC3 counter contract) and raises a CPU IRQ if the mapper's
// counter has reached zero. A host pairing this core with a
// real PPU calls this once per scanline at the point the PPU would
// normally latch the A12 edge; this package has no such timer of its
// own to drive it automatically.
func (m *Machine) StepScanline() {
	if m.Cartridge == nil {
		return
	}
	m.Cartridge.ClockScanline()
	if m.Cartridge.IRQState() {
		m.CPU.TriggerIRQ()
		m.Cartridge.IRQClear()
	}
}

// PollVideoSignals checks the video collaborator's latched NMI request
// and forwards it to the CPU, clearing the latch. A host should call
// this once per instruction boundary (e.g. after each RunInstruction),
// since the CPU only observes interrupts between instructions.
func (m *Machine) PollVideoSignals() {
	if m.Video.NMIRequested {
		m.CPU.TriggerNMI()
		m.Video.NMIRequested = false
	}
}
