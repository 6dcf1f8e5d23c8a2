package mapper

import "github.com/yoshiomiyamae/gones6502/pkg/cartridge/ines"

// mmc1 is mapper 1: a 5-bit serial shift register loaded one bit per CPU
// write, committed to one of four internal registers on the fifth write.
type mmc1 struct {
	data *CartridgeData

	shiftRegister uint8
	shiftCount    uint8

	control  uint8 // $8000-$9FFF
	chrBank0 uint8 // $A000-$BFFF
	chrBank1 uint8 // $C000-$DFFF
	prgBank  uint8 // $E000-$FFFF

	prgMode   uint8
	chrMode   uint8
	mirroring ines.Mirroring

	prgBankCount uint8
}

func newMMC1(data *CartridgeData, mirroring ines.Mirroring) *mmc1 {
	return &mmc1{
		data:         data,
		control:      0x0C,
		prgMode:      3,
		chrMode:      0,
		mirroring:    mirroring,
		prgBankCount: uint8(len(data.PRGROM) / 0x4000),
	}
}

func (m *mmc1) prgRAMEnabled() bool { return m.prgBank&0x10 == 0 }

func (m *mmc1) CPUMapRead(addr uint16) ReadTarget {
	if addr >= 0x8000 {
		off := addr - 0x8000
		prgSize := len(m.data.PRGROM)
		switch m.prgMode {
		case 0, 1: // 32KiB mode, ignore low bit of bank
			bank := m.prgBank >> 1
			offset := int(bank)*0x8000 + int(off)
			return ReadTarget{Kind: TargetPRGROM, Offset: offset % prgSize}
		case 2: // fixed low, switchable high
			if off < 0x4000 {
				return ReadTarget{Kind: TargetPRGROM, Offset: int(off) % prgSize}
			}
			bank := m.prgBank & 0x0F
			offset := int(bank)*0x4000 + int(off-0x4000)
			return ReadTarget{Kind: TargetPRGROM, Offset: offset % prgSize}
		default: // 3: switchable low, fixed last bank high
			if off < 0x4000 {
				bank := m.prgBank & 0x0F
				offset := int(bank)*0x4000 + int(off)
				return ReadTarget{Kind: TargetPRGROM, Offset: offset % prgSize}
			}
			lastBank := int(m.prgBankCount) - 1
			if lastBank < 0 {
				lastBank = 0
			}
			offset := lastBank*0x4000 + int(off-0x4000)
			return ReadTarget{Kind: TargetPRGROM, Offset: offset % prgSize}
		}
	}
	if addr >= 0x6000 && len(m.data.PRGRAM) > 0 && m.prgRAMEnabled() {
		return ReadTarget{Kind: TargetPRGRAM, Value: m.data.PRGRAM[int(addr-0x6000)%len(m.data.PRGRAM)]}
	}
	return ReadTarget{Kind: TargetPRGRAM, Value: 0}
}

func (m *mmc1) CPUMapWrite(addr uint16, value uint8) {
	if addr >= 0x8000 {
		if value&0x80 != 0 {
			m.shiftRegister = 0
			m.shiftCount = 0
			m.control |= 0x0C
			m.prgMode = 3
			return
		}
		m.shiftRegister = (m.shiftRegister >> 1) | ((value & 1) << 4)
		m.shiftCount++
		if m.shiftCount == 5 {
			m.commit(addr, m.shiftRegister)
			m.shiftRegister = 0
			m.shiftCount = 0
		}
		return
	}
	if addr >= 0x6000 && len(m.data.PRGRAM) > 0 && m.prgRAMEnabled() {
		m.data.PRGRAM[int(addr-0x6000)%len(m.data.PRGRAM)] = value
	}
}

func (m *mmc1) commit(addr uint16, value uint8) {
	switch {
	case addr <= 0x9FFF:
		m.control = value
		m.prgMode = (value >> 2) & 3
		m.chrMode = (value >> 4) & 1
		switch value & 3 {
		case 0:
			m.mirroring = ines.OneScreenLower
		case 1:
			m.mirroring = ines.OneScreenUpper
		case 2:
			m.mirroring = ines.Vertical
		case 3:
			m.mirroring = ines.Horizontal
		}
	case addr <= 0xBFFF:
		m.chrBank0 = value
	case addr <= 0xDFFF:
		m.chrBank1 = value
	default:
		m.prgBank = value
	}
}

func (m *mmc1) PPUMapRead(addr uint16) int {
	if len(m.data.CHRROM) > 0 {
		chrSize := len(m.data.CHRROM)
		var offset int
		if m.chrMode == 0 {
			bank := m.chrBank0 >> 1
			offset = int(bank)*0x2000 + int(addr)
		} else if addr < 0x1000 {
			offset = int(m.chrBank0)*0x1000 + int(addr)
		} else {
			offset = int(m.chrBank1)*0x1000 + int(addr-0x1000)
		}
		return offset % chrSize
	}
	return int(addr) % len(m.data.CHRRAM)
}

func (m *mmc1) PPUMapWrite(addr uint16) (int, bool) {
	if len(m.data.CHRRAM) == 0 {
		return 0, false
	}
	return int(addr) % len(m.data.CHRRAM), true
}

func (m *mmc1) Mirroring() ines.Mirroring { return m.mirroring }
func (m *mmc1) SRAM() []uint8             { return m.data.PRGRAM }
func (m *mmc1) IRQState() bool            { return false }
func (m *mmc1) IRQClear()                 {}
