package mapper

import "github.com/yoshiomiyamae/gones6502/pkg/cartridge/ines"

// nrom is mapper 0: no banking, PRG fixed (mirrored if only 16KiB), CHR
// fixed.
type nrom struct {
	data      *CartridgeData
	mirroring ines.Mirroring
}

func newNROM(data *CartridgeData, mirroring ines.Mirroring) *nrom {
	return &nrom{data: data, mirroring: mirroring}
}

func (m *nrom) CPUMapRead(addr uint16) ReadTarget {
	if addr >= 0x8000 {
		off := int(addr - 0x8000)
		if len(m.data.PRGROM) == ines.PRGUnit {
			off %= ines.PRGUnit
		}
		return ReadTarget{Kind: TargetPRGROM, Offset: off}
	}
	if addr >= 0x6000 && len(m.data.PRGRAM) > 0 {
		off := int(addr-0x6000) % len(m.data.PRGRAM)
		return ReadTarget{Kind: TargetPRGRAM, Value: m.data.PRGRAM[off]}
	}
	return ReadTarget{Kind: TargetPRGRAM, Value: 0}
}

func (m *nrom) CPUMapWrite(addr uint16, value uint8) {
	if addr >= 0x6000 && addr < 0x8000 && len(m.data.PRGRAM) > 0 {
		m.data.PRGRAM[int(addr-0x6000)%len(m.data.PRGRAM)] = value
	}
	// ROM space is read-only; writes are ignored.
}

func (m *nrom) PPUMapRead(addr uint16) int {
	if len(m.data.CHRROM) > 0 {
		return int(addr) % len(m.data.CHRROM)
	}
	return int(addr) % len(m.data.CHRRAM)
}

func (m *nrom) PPUMapWrite(addr uint16) (int, bool) {
	if len(m.data.CHRRAM) == 0 {
		return 0, false
	}
	return int(addr) % len(m.data.CHRRAM), true
}

func (m *nrom) Mirroring() ines.Mirroring { return m.mirroring }
func (m *nrom) SRAM() []uint8             { return m.data.PRGRAM }
func (m *nrom) IRQState() bool            { return false }
func (m *nrom) IRQClear()                 {}
