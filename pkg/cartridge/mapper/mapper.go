// Package mapper implements the cartridge bank-switching schemes (NROM,
// MMC1, UxROM, CNROM, MMC3, GxROM) behind a single Mapper contract.
package mapper

import (
	"fmt"

	"github.com/yoshiomiyamae/gones6502/pkg/cartridge/ines"
)

// TargetKind tags a CPUMapRead result.
type TargetKind int

const (
	TargetPRGROM TargetKind = iota
	TargetPRGRAM
)

// ReadTarget is the tagged result of resolving a CPU-side PRG read: either
// an offset into PRG ROM, or a byte already resolved from PRG RAM.
type ReadTarget struct {
	Kind   TargetKind
	Offset int
	Value  uint8
}

// Mapper is the bank-switching contract every cartridge mapper satisfies.
type Mapper interface {
	// CPUMapRead resolves a CPU read in 0x4020-0xFFFF.
	CPUMapRead(addr uint16) ReadTarget
	// CPUMapWrite is a mapper-local side effect; never mutates PRG ROM.
	CPUMapWrite(addr uint16, value uint8)
	// PPUMapRead resolves a PPU-side CHR address to a byte offset. May
	// have side effects (MMC3 scanline counter arming).
	PPUMapRead(addr uint16) int
	// PPUMapWrite returns the CHR-RAM offset to write, or ok=false when
	// this mapper's CHR is ROM or the address isn't writable.
	PPUMapWrite(addr uint16) (offset int, ok bool)
	// Mirroring returns the current nametable mirroring mode.
	Mirroring() ines.Mirroring
	// SRAM returns the battery-backed PRG-RAM view, or nil if none.
	SRAM() []uint8
	// IRQState reports whether the mapper's IRQ line is asserted.
	IRQState() bool
	// IRQClear clears the IRQ line.
	IRQClear()
}

// CartridgeData is the shared PRG/CHR storage handed to every mapper
// constructor. Mappers index into these slices directly; they never copy
// or reallocate them.
type CartridgeData struct {
	PRGROM []uint8
	CHRROM []uint8
	PRGRAM []uint8
	CHRRAM []uint8
}

// ErrNotImplemented is returned by New for an unrecognized mapper id.
type ErrNotImplemented struct {
	ID uint8
}

func (e *ErrNotImplemented) Error() string {
	return fmt.Sprintf("mapper %d not implemented", e.ID)
}

// New constructs the mapper selected by iNES mapper id.
func New(id uint8, data *CartridgeData, mirroring ines.Mirroring) (Mapper, error) {
	switch id {
	case 0:
		return newNROM(data, mirroring), nil
	case 1:
		return newMMC1(data, mirroring), nil
	case 2:
		return newUxROM(data, mirroring), nil
	case 3:
		return newCNROM(data, mirroring), nil
	case 4:
		return newMMC3(data, mirroring), nil
	case 66:
		return newGxROM(data, mirroring), nil
	default:
		return nil, &ErrNotImplemented{ID: id}
	}
}
