package mapper

import (
	"testing"

	"github.com/yoshiomiyamae/gones6502/pkg/cartridge/ines"
)

func TestMapper0_NROM(t *testing.T) {
	t.Run("NROM-128_16KB_PRG_mirrors", func(t *testing.T) {
		data := &CartridgeData{PRGROM: testPRGROM16KB, CHRROM: testCHRROM8KB}
		m := newNROM(data, ines.Horizontal)

		v1 := readCPU(m, data, 0x8000)
		v2 := readCPU(m, data, 0xC000)
		if v1 != v2 {
			t.Errorf("NROM-128 mirroring failed: $8000=%02X, $C000=%02X", v1, v2)
		}
		if got := readCPU(m, data, 0x8001); got != 0x01 {
			t.Errorf("expected $01 at $8001, got $%02X", got)
		}
		if got := readPPU(m, data, 0x0001); got != 0x01 {
			t.Errorf("expected $01 at CHR $0001, got $%02X", got)
		}
	})

	t.Run("NROM-256_32KB_PRG_no_mirror", func(t *testing.T) {
		data := &CartridgeData{PRGROM: testPRGROM32KB, CHRROM: testCHRROM8KB}
		m := newNROM(data, ines.Horizontal)

		if got := readCPU(m, data, 0x8000); got != testPRGROM32KB[0x0000] {
			t.Errorf("expected $%02X at $8000, got $%02X", testPRGROM32KB[0x0000], got)
		}
		if got := readCPU(m, data, 0xC000); got != testPRGROM32KB[0x4000] {
			t.Errorf("expected $%02X at $C000, got $%02X", testPRGROM32KB[0x4000], got)
		}
		if got := readCPU(m, data, 0xFFFF); got != 0xFF {
			t.Errorf("expected $FF at $FFFF, got $%02X", got)
		}
	})

	t.Run("CHR_RAM_Support", func(t *testing.T) {
		data := &CartridgeData{PRGROM: testPRGROM16KB, CHRRAM: make([]uint8, 8*1024)}
		m := newNROM(data, ines.Horizontal)

		writePPU(m, data, 0x1000, 0xAB)
		if got := readPPU(m, data, 0x1000); got != 0xAB {
			t.Errorf("CHR RAM write/read failed: expected $AB, got $%02X", got)
		}
	})

	t.Run("PRG_RAM_Support", func(t *testing.T) {
		data := &CartridgeData{PRGROM: testPRGROM16KB, CHRROM: testCHRROM8KB, PRGRAM: freshPRGRAM(2 * 1024)}
		m := newNROM(data, ines.Horizontal)

		m.CPUMapWrite(0x6000, 0xCD)
		if got := readCPU(m, data, 0x6000); got != 0xCD {
			t.Errorf("PRG RAM write/read failed: expected $CD, got $%02X", got)
		}

		before := readCPU(m, data, 0x8000)
		m.CPUMapWrite(0x8000, 0xFF)
		after := readCPU(m, data, 0x8000)
		if before != after {
			t.Errorf("ROM should be read-only: was $%02X, now $%02X", before, after)
		}
	})

	t.Run("IRQ_Unsupported", func(t *testing.T) {
		data := &CartridgeData{PRGROM: testPRGROM16KB, CHRROM: testCHRROM8KB}
		m := newNROM(data, ines.Horizontal)

		if m.IRQState() {
			t.Errorf("NROM should not support IRQ")
		}
		m.IRQClear()
	})
}
