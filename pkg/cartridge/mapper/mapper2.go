package mapper

import "github.com/yoshiomiyamae/gones6502/pkg/cartridge/ines"

// uxrom is mapper 2: a switchable 16KiB low PRG bank, fixed last bank
// high, CHR-RAM (no banking).
type uxrom struct {
	data         *CartridgeData
	mirroring    ines.Mirroring
	prgBank      uint8
	prgBankCount uint8
}

func newUxROM(data *CartridgeData, mirroring ines.Mirroring) *uxrom {
	return &uxrom{
		data:         data,
		mirroring:    mirroring,
		prgBankCount: uint8(len(data.PRGROM) / 0x4000),
	}
}

func (m *uxrom) CPUMapRead(addr uint16) ReadTarget {
	if addr >= 0x8000 {
		prgSize := len(m.data.PRGROM)
		if addr < 0xC000 {
			bank := m.prgBank % m.prgBankCount
			offset := int(bank)*0x4000 + int(addr-0x8000)
			return ReadTarget{Kind: TargetPRGROM, Offset: offset % prgSize}
		}
		lastBank := m.prgBankCount - 1
		offset := int(lastBank)*0x4000 + int(addr-0xC000)
		return ReadTarget{Kind: TargetPRGROM, Offset: offset % prgSize}
	}
	if addr >= 0x6000 && len(m.data.PRGRAM) > 0 {
		return ReadTarget{Kind: TargetPRGRAM, Value: m.data.PRGRAM[int(addr-0x6000)%len(m.data.PRGRAM)]}
	}
	return ReadTarget{Kind: TargetPRGRAM, Value: 0}
}

func (m *uxrom) CPUMapWrite(addr uint16, value uint8) {
	if addr >= 0x8000 {
		m.prgBank = value & 0x0F
		return
	}
	if addr >= 0x6000 && len(m.data.PRGRAM) > 0 {
		m.data.PRGRAM[int(addr-0x6000)%len(m.data.PRGRAM)] = value
	}
}

func (m *uxrom) PPUMapRead(addr uint16) int {
	if len(m.data.CHRROM) > 0 {
		return int(addr) % len(m.data.CHRROM)
	}
	return int(addr) % len(m.data.CHRRAM)
}

func (m *uxrom) PPUMapWrite(addr uint16) (int, bool) {
	if len(m.data.CHRRAM) == 0 {
		return 0, false
	}
	return int(addr) % len(m.data.CHRRAM), true
}

func (m *uxrom) Mirroring() ines.Mirroring { return m.mirroring }
func (m *uxrom) SRAM() []uint8             { return m.data.PRGRAM }
func (m *uxrom) IRQState() bool            { return false }
func (m *uxrom) IRQClear()                 {}
