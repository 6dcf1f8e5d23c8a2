package mapper

import "github.com/yoshiomiyamae/gones6502/pkg/cartridge/ines"

// cnrom is mapper 3: fixed PRG, a switchable 8KiB CHR bank selected by any
// write to 0x8000-0xFFFF.
type cnrom struct {
	data         *CartridgeData
	mirroring    ines.Mirroring
	chrBank      uint8
	chrBankCount uint8
}

func newCNROM(data *CartridgeData, mirroring ines.Mirroring) *cnrom {
	m := &cnrom{data: data, mirroring: mirroring}
	if len(data.CHRROM) > 0 {
		m.chrBankCount = uint8(len(data.CHRROM) / 0x2000)
	}
	return m
}

func (m *cnrom) CPUMapRead(addr uint16) ReadTarget {
	if addr >= 0x8000 {
		off := int(addr-0x8000) % len(m.data.PRGROM)
		return ReadTarget{Kind: TargetPRGROM, Offset: off}
	}
	if addr >= 0x6000 && len(m.data.PRGRAM) > 0 {
		return ReadTarget{Kind: TargetPRGRAM, Value: m.data.PRGRAM[int(addr-0x6000)%len(m.data.PRGRAM)]}
	}
	return ReadTarget{Kind: TargetPRGRAM, Value: 0}
}

func (m *cnrom) CPUMapWrite(addr uint16, value uint8) {
	if addr >= 0x8000 {
		// Real CNROM boards may bus-conflict the written value against the
		// PRG ROM byte at this address; this emulation assumes the common
		// no-conflict submapper.
		m.chrBank = value & 0x03
		return
	}
	if addr >= 0x6000 && len(m.data.PRGRAM) > 0 {
		m.data.PRGRAM[int(addr-0x6000)%len(m.data.PRGRAM)] = value
	}
}

func (m *cnrom) PPUMapRead(addr uint16) int {
	if len(m.data.CHRROM) > 0 {
		bank := m.chrBank
		if m.chrBankCount > 0 {
			bank %= m.chrBankCount
		}
		return (int(bank)*0x2000 + int(addr)) % len(m.data.CHRROM)
	}
	return int(addr) % len(m.data.CHRRAM)
}

func (m *cnrom) PPUMapWrite(addr uint16) (int, bool) {
	if len(m.data.CHRRAM) == 0 {
		return 0, false
	}
	return int(addr) % len(m.data.CHRRAM), true
}

func (m *cnrom) Mirroring() ines.Mirroring { return m.mirroring }
func (m *cnrom) SRAM() []uint8             { return m.data.PRGRAM }
func (m *cnrom) IRQState() bool            { return false }
func (m *cnrom) IRQClear()                 {}
