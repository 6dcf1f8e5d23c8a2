// Package bus implements the CPU-side address decoder: the single point
// every 6502 read/write passes through on its way to RAM, the video/audio
// register windows, the controller ports, or the cartridge.
package bus

import (
	"github.com/yoshiomiyamae/gones6502/pkg/logger"
)

// registerTarget is satisfied by both the video and audio collaborators:
// a flat 8-bit register file addressed by the CPU.
type registerTarget interface {
	ReadRegister(addr uint16) uint8
	WriteRegister(addr uint16, value uint8)
}

// prgTarget is satisfied by the cartridge: the mapper-routed PRG window.
type prgTarget interface {
	ReadPRG(addr uint16) uint8
	WritePRG(addr uint16, value uint8)
}

// controllerTarget is satisfied by a standard NES controller's shift
// register.
type controllerTarget interface {
	ReadSnapshot() uint8
	TakeSnapshot(value uint8)
}

// Bus routes every CPU address in the 16-bit address space per the memory
// map: 2KiB internal RAM mirrored every 2KiB, PPU registers mirrored every
// 8 bytes, APU/test ranges stubbed when no Audio collaborator is attached,
// controller ports, and cartridge PRG space from 0x4020 up.
type Bus struct {
	RAM [2048]uint8

	Video      registerTarget
	Audio      registerTarget
	Cartridge  prgTarget
	Controller1 controllerTarget
	Controller2 controllerTarget
}

// New creates an unpopulated Bus; RAM powers on zeroed.
func New() *Bus {
	return &Bus{}
}

// SetCartridge attaches the cartridge backing 0x4020-0xFFFF.
func (b *Bus) SetCartridge(cart prgTarget) { b.Cartridge = cart }

// SetVideo attaches the PPU-register collaborator backing 0x2000-0x3FFF.
func (b *Bus) SetVideo(v registerTarget) { b.Video = v }

// SetAudio attaches the APU-register collaborator backing 0x4000-0x4015
// and 0x4018-0x401F.
func (b *Bus) SetAudio(a registerTarget) { b.Audio = a }

// SetControllers attaches the two standard-controller shift registers.
func (b *Bus) SetControllers(c1, c2 controllerTarget) {
	b.Controller1 = c1
	b.Controller2 = c2
}

// Read resolves a CPU-side read per the memory map.
func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr < 0x2000:
		return b.RAM[addr&0x07FF]

	case addr < 0x4000:
		if b.Video != nil {
			return b.Video.ReadRegister(0x2000 + (addr & 0x0007))
		}
		return 0

	case addr == 0x4016:
		if b.Controller1 != nil {
			return b.Controller1.ReadSnapshot()
		}
		return 0

	case addr == 0x4017:
		if b.Controller2 != nil {
			return b.Controller2.ReadSnapshot()
		}
		return 0

	case addr < 0x4020:
		if b.Audio != nil {
			return b.Audio.ReadRegister(addr)
		}
		return 0

	default:
		if b.Cartridge != nil {
			return b.Cartridge.ReadPRG(addr)
		}
		return 0
	}
}

// Write resolves a CPU-side write per the memory map.
func (b *Bus) Write(addr uint16, value uint8) {
	switch {
	case addr < 0x2000:
		b.RAM[addr&0x07FF] = value

	case addr < 0x4000:
		if b.Video != nil {
			b.Video.WriteRegister(0x2000+(addr&0x0007), value)
		}

	case addr == 0x4014:
		b.performOAMDMA(value)

	case addr == 0x4016:
		if b.Controller1 != nil {
			b.Controller1.TakeSnapshot(value)
		}

	case addr == 0x4017:
		if b.Controller2 != nil {
			b.Controller2.TakeSnapshot(value)
		}

	case addr < 0x4020:
		if b.Audio != nil {
			b.Audio.WriteRegister(addr, value)
		}

	default:
		if b.Cartridge != nil {
			b.Cartridge.WritePRG(addr, value)
		} else {
			logger.LogBus("write to unmapped cartridge space $%04X=$%02X dropped", addr, value)
		}
	}
}

// performOAMDMA copies the 256-byte page starting at page<<8 into the
// video collaborator's OAM through its $2004 register, as the real bus
// does: 256 back-to-back reads from CPU space and writes to OAMDATA ($2004).
func (b *Bus) performOAMDMA(page uint8) {
	if b.Video == nil {
		return
	}
	base := uint16(page) << 8
	for i := 0; i < 256; i++ {
		b.Video.WriteRegister(0x2004, b.Read(base+uint16(i)))
	}
}
