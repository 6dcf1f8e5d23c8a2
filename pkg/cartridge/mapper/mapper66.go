package mapper

import "github.com/yoshiomiyamae/gones6502/pkg/cartridge/ines"

// gxrom is mapper 66: a single register at $8000-$FFFF selects both a
// 32KiB PRG bank (bits 4-5) and an 8KiB CHR bank (bits 0-1) together.
type gxrom struct {
	data         *CartridgeData
	mirroring    ines.Mirroring
	prgBank      uint8
	chrBank      uint8
	prgBankCount uint8
	chrBankCount uint8
}

func newGxROM(data *CartridgeData, mirroring ines.Mirroring) *gxrom {
	m := &gxrom{
		data:         data,
		mirroring:    mirroring,
		prgBankCount: uint8(len(data.PRGROM) / 0x8000),
	}
	if len(data.CHRROM) > 0 {
		m.chrBankCount = uint8(len(data.CHRROM) / 0x2000)
	}
	return m
}

func (m *gxrom) CPUMapRead(addr uint16) ReadTarget {
	if addr >= 0x8000 {
		bank := m.prgBank
		if m.prgBankCount > 0 {
			bank %= m.prgBankCount
		}
		offset := int(bank)*0x8000 + int(addr-0x8000)
		return ReadTarget{Kind: TargetPRGROM, Offset: offset % len(m.data.PRGROM)}
	}
	if addr >= 0x6000 && len(m.data.PRGRAM) > 0 {
		return ReadTarget{Kind: TargetPRGRAM, Value: m.data.PRGRAM[int(addr-0x6000)%len(m.data.PRGRAM)]}
	}
	return ReadTarget{Kind: TargetPRGRAM, Value: 0}
}

func (m *gxrom) CPUMapWrite(addr uint16, value uint8) {
	if addr >= 0x8000 {
		// Real GxROM boards may bus-conflict this write against the PRG ROM
		// byte underneath it; this emulation assumes the common no-conflict
		// submapper, same as CNROM.
		m.chrBank = value & 0x03
		m.prgBank = (value >> 4) & 0x03
		return
	}
	if addr >= 0x6000 && len(m.data.PRGRAM) > 0 {
		m.data.PRGRAM[int(addr-0x6000)%len(m.data.PRGRAM)] = value
	}
}

func (m *gxrom) PPUMapRead(addr uint16) int {
	if len(m.data.CHRROM) > 0 {
		bank := m.chrBank
		if m.chrBankCount > 0 {
			bank %= m.chrBankCount
		}
		return (int(bank)*0x2000 + int(addr)) % len(m.data.CHRROM)
	}
	return int(addr) % len(m.data.CHRRAM)
}

func (m *gxrom) PPUMapWrite(addr uint16) (int, bool) {
	if len(m.data.CHRRAM) == 0 {
		return 0, false
	}
	return int(addr) % len(m.data.CHRRAM), true
}

func (m *gxrom) Mirroring() ines.Mirroring { return m.mirroring }
func (m *gxrom) SRAM() []uint8             { return m.data.PRGRAM }
func (m *gxrom) IRQState() bool            { return false }
func (m *gxrom) IRQClear()                 {}
