package mapper

import (
	"testing"

	"github.com/yoshiomiyamae/gones6502/pkg/cartridge/ines"
)

func TestMapper66_GxROM(t *testing.T) {
	t.Run("combined_PRG_and_CHR_select", func(t *testing.T) {
		prgROM := make([]uint8, 128*1024) // 4 banks of 32KiB
		for i := range prgROM {
			prgROM[i] = uint8(i/0x8000) + 1
		}
		chrROM := make([]uint8, 32*1024) // 4 banks of 8KiB
		for i := range chrROM {
			chrROM[i] = uint8(i/0x2000) + 0x10
		}
		data := &CartridgeData{PRGROM: prgROM, CHRROM: chrROM}
		m := newGxROM(data, ines.Horizontal)

		m.CPUMapWrite(0x8000, 0x21) // PRG bank 2, CHR bank 1
		if got := readCPU(m, data, 0x8000); got != 0x03 {
			t.Errorf("expected PRG bank 2 value $03 at $8000, got $%02X", got)
		}
		if got := readPPU(m, data, 0x0000); got != 0x11 {
			t.Errorf("expected CHR bank 1 value $11 at CHR $0000, got $%02X", got)
		}
	})

	t.Run("CHR_RAM_not_banked_without_CHR_ROM", func(t *testing.T) {
		data := &CartridgeData{PRGROM: testPRGROM32KB, CHRRAM: make([]uint8, 8*1024)}
		m := newGxROM(data, ines.Horizontal)

		writePPU(m, data, 0x1000, 0x42)
		m.CPUMapWrite(0x8000, 0x03)
		if got := readPPU(m, data, 0x1000); got != 0x42 {
			t.Errorf("expected CHR RAM unaffected by PRG/CHR select, got $%02X", got)
		}
	})

	t.Run("PRG_RAM_readback", func(t *testing.T) {
		data := &CartridgeData{PRGROM: testPRGROM32KB, CHRROM: testCHRROM8KB, PRGRAM: freshPRGRAM(8 * 1024)}
		m := newGxROM(data, ines.Horizontal)

		m.CPUMapWrite(0x6000, 0x77)
		if got := readCPU(m, data, 0x6000); got != 0x77 {
			t.Errorf("PRG RAM write/read failed: expected $77, got $%02X", got)
		}
	})

	t.Run("IRQ_unsupported", func(t *testing.T) {
		data := &CartridgeData{PRGROM: testPRGROM32KB, CHRROM: testCHRROM8KB}
		m := newGxROM(data, ines.Horizontal)
		if m.IRQState() {
			t.Errorf("GxROM should not support IRQ")
		}
	})
}
