// Package cartridge loads an iNES ROM image into PRG/CHR storage bound to
// a mapper, and exposes the bus-facing read/write/IRQ surface the machine
// drives the cartridge through.
package cartridge

import (
	"fmt"

	"github.com/yoshiomiyamae/gones6502/pkg/cartridge/ines"
	"github.com/yoshiomiyamae/gones6502/pkg/cartridge/mapper"
	"github.com/yoshiomiyamae/gones6502/pkg/logger"
)

const (
	defaultCHRRAMSize = 8192
	mmc3CHRRAMSize    = 32768
	defaultPRGRAMSize = 8192
	batteryPRGRAMSize = 32768
)

// Cartridge owns the PRG/CHR storage decoded from an iNES image and the
// mapper bound to it.
type Cartridge struct {
	Header ines.Header
	data   *mapper.CartridgeData
	mapper mapper.Mapper
}

// Load parses rom as an iNES image and constructs the mapper it declares.
// saveData (e.g. from a prior session's SaveData()) seeds PRG-RAM when its
// length equals the PRG-RAM size (32KiB with a battery, 8KiB otherwise);
// saveData of any other length is ignored.
func Load(rom []byte, saveData []byte) (*Cartridge, error) {
	header, err := ines.Parse(rom)
	if err != nil {
		return nil, fmt.Errorf("cartridge: parse header: %w", err)
	}
	if len(rom) < header.ExpectedImageLen() {
		return nil, fmt.Errorf("cartridge: have %d bytes, header declares %d: %w", len(rom), header.ExpectedImageLen(), ines.ErrTooShort)
	}

	offset := ines.HeaderSize
	if header.HasTrainer {
		offset += ines.TrainerSize
	}

	prgSize := int(header.PRGUnits) * ines.PRGUnit
	prgROM := make([]uint8, prgSize)
	copy(prgROM, rom[offset:offset+prgSize])
	offset += prgSize

	var chrROM, chrRAM []uint8
	chrSize := int(header.CHRUnits) * ines.CHRUnit
	if chrSize > 0 {
		chrROM = make([]uint8, chrSize)
		copy(chrROM, rom[offset:offset+chrSize])
	} else {
		ramSize := defaultCHRRAMSize
		if header.MapperID == 4 {
			ramSize = mmc3CHRRAMSize
		}
		chrRAM = make([]uint8, ramSize)
	}

	prgRAMSize := defaultPRGRAMSize
	if header.HasBattery {
		prgRAMSize = batteryPRGRAMSize
	}
	prgRAM := make([]uint8, prgRAMSize)
	if len(saveData) == prgRAMSize {
		copy(prgRAM, saveData)
	}

	data := &mapper.CartridgeData{
		PRGROM: prgROM,
		CHRROM: chrROM,
		PRGRAM: prgRAM,
		CHRRAM: chrRAM,
	}

	m, err := mapper.New(header.MapperID, data, header.Mirroring)
	if err != nil {
		return nil, fmt.Errorf("cartridge: %w", err)
	}

	logger.LogMapper("loaded mapper %d, PRG=%dKiB CHR=%dKiB battery=%v", header.MapperID, prgSize/1024, (chrSize)/1024, header.HasBattery)

	return &Cartridge{Header: header, data: data, mapper: m}, nil
}

// ReadPRG resolves a CPU-space read in 0x4020-0xFFFF against the mapper.
func (c *Cartridge) ReadPRG(addr uint16) uint8 {
	t := c.mapper.CPUMapRead(addr)
	switch t.Kind {
	case mapper.TargetPRGROM:
		return c.data.PRGROM[t.Offset%len(c.data.PRGROM)]
	case mapper.TargetPRGRAM:
		return t.Value
	default:
		return 0
	}
}

// WritePRG resolves a CPU-space write in 0x4020-0xFFFF against the mapper.
func (c *Cartridge) WritePRG(addr uint16, value uint8) {
	c.mapper.CPUMapWrite(addr, value)
}

// ReadCHR resolves a PPU-space pattern table read against the mapper.
func (c *Cartridge) ReadCHR(addr uint16) uint8 {
	off := c.mapper.PPUMapRead(addr)
	if len(c.data.CHRROM) > 0 {
		return c.data.CHRROM[off%len(c.data.CHRROM)]
	}
	return c.data.CHRRAM[off%len(c.data.CHRRAM)]
}

// WriteCHR resolves a PPU-space pattern table write against the mapper;
// when the cartridge carries CHR-ROM the write is dropped and logged.
func (c *Cartridge) WriteCHR(addr uint16, value uint8) {
	if off, ok := c.mapper.PPUMapWrite(addr); ok {
		c.data.CHRRAM[off%len(c.data.CHRRAM)] = value
	} else {
		logger.LogMapper("dropped CHR write $%02X to $%04X: cartridge has CHR-ROM", value, addr)
	}
}

// ClockScanline drives a mapper's scanline-counted IRQ, if it has one.
func (c *Cartridge) ClockScanline() {
	if s, ok := c.mapper.(mapper.ScanlineClocker); ok {
		s.ClockScanline()
	}
}

// IRQState reports whether the mapper currently holds IRQ asserted.
func (c *Cartridge) IRQState() bool { return c.mapper.IRQState() }

// IRQClear clears the mapper's IRQ latch.
func (c *Cartridge) IRQClear() { c.mapper.IRQClear() }

// Mirroring returns the mapper's current nametable mirroring mode.
func (c *Cartridge) Mirroring() ines.Mirroring { return c.mapper.Mirroring() }

// SaveData returns a copy of battery-backed PRG-RAM suitable for
// persisting between sessions; nil if the cartridge has none.
func (c *Cartridge) SaveData() []byte {
	if !c.Header.HasBattery {
		return nil
	}
	out := make([]byte, len(c.mapper.SRAM()))
	copy(out, c.mapper.SRAM())
	return out
}
