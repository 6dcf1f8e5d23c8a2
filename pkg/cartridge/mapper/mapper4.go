package mapper

import "github.com/yoshiomiyamae/gones6502/pkg/cartridge/ines"

// mmc3 is mapper 4: eight switchable bank registers (two 8KiB PRG windows,
// two 2KiB + four 1KiB CHR windows), a mirroring select, PRG-RAM enable,
// and a scanline-counting IRQ.
type mmc3 struct {
	data *CartridgeData

	bankRegisters [8]uint8
	bankSelect    uint8
	mirroring     ines.Mirroring
	prgRAMProtect uint8

	irqReloadValue uint8
	irqCounter     uint8
	irqEnabled     bool
	irqPending     bool
	irqReloadFlag  bool

	prgBankCount uint8
	chrBankCount uint8
}

// ScanlineClocker is implemented by mappers whose IRQ counter is driven by
// an external PPU at end-of-scanline signals.
type ScanlineClocker interface {
	ClockScanline()
}

func newMMC3(data *CartridgeData, mirroring ines.Mirroring) *mmc3 {
	m := &mmc3{
		data:          data,
		mirroring:     mirroring,
		prgRAMProtect: 0x80,
		prgBankCount:  uint8(len(data.PRGROM) / 0x2000),
	}
	switch {
	case len(data.CHRROM) > 0:
		m.chrBankCount = uint8(len(data.CHRROM) / 0x400)
	case len(data.CHRRAM) > 0:
		m.chrBankCount = uint8(len(data.CHRRAM) / 0x400)
	default:
		m.chrBankCount = 8
	}
	if m.prgBankCount >= 2 {
		m.bankRegisters[6] = m.prgBankCount - 2
		m.bankRegisters[7] = m.prgBankCount - 1
	}
	for i := 0; i < 6; i++ {
		if m.chrBankCount > 0 {
			m.bankRegisters[i] = uint8(i) % m.chrBankCount
		}
	}
	return m
}

func (m *mmc3) CPUMapRead(addr uint16) ReadTarget {
	if addr >= 0x6000 && addr < 0x8000 {
		if len(m.data.PRGRAM) > 0 && m.prgRAMProtect&0x80 != 0 {
			return ReadTarget{Kind: TargetPRGRAM, Value: m.data.PRGRAM[int(addr-0x6000)%len(m.data.PRGRAM)]}
		}
		return ReadTarget{Kind: TargetPRGRAM, Value: 0}
	}
	if addr < 0x8000 {
		return ReadTarget{Kind: TargetPRGRAM, Value: 0}
	}

	prgMode := (m.bankSelect >> 6) & 1
	var bank uint8
	switch {
	case addr <= 0x9FFF:
		if prgMode == 0 {
			bank = m.bankRegisters[6]
		} else {
			bank = m.secondToLast()
		}
	case addr <= 0xBFFF:
		bank = m.bankRegisters[7]
	case addr <= 0xDFFF:
		if prgMode == 0 {
			bank = m.secondToLast()
		} else {
			bank = m.bankRegisters[6]
		}
	default:
		bank = m.lastBank()
	}
	if m.prgBankCount > 0 {
		bank %= m.prgBankCount
	}
	offset := int(bank)*0x2000 + int(addr&0x1FFF)
	return ReadTarget{Kind: TargetPRGROM, Offset: offset % len(m.data.PRGROM)}
}

func (m *mmc3) lastBank() uint8 {
	if m.prgBankCount == 0 {
		return 0
	}
	return m.prgBankCount - 1
}

func (m *mmc3) secondToLast() uint8 {
	if m.prgBankCount < 2 {
		return 0
	}
	return m.prgBankCount - 2
}

func (m *mmc3) CPUMapWrite(addr uint16, value uint8) {
	if addr >= 0x6000 && addr < 0x8000 {
		if len(m.data.PRGRAM) > 0 && m.prgRAMProtect&0x80 != 0 && m.prgRAMProtect&0x40 == 0 {
			m.data.PRGRAM[int(addr-0x6000)%len(m.data.PRGRAM)] = value
		}
		return
	}
	if addr < 0x8000 {
		return
	}

	switch addr & 0xE001 {
	case 0x8000:
		m.bankSelect = value
	case 0x8001:
		reg := m.bankSelect & 0x07
		if reg >= 6 {
			if m.prgBankCount > 0 {
				m.bankRegisters[reg] = value % m.prgBankCount
			} else {
				m.bankRegisters[reg] = value
			}
		} else if m.chrBankCount > 0 {
			m.bankRegisters[reg] = value % m.chrBankCount
		} else {
			m.bankRegisters[reg] = value
		}
	case 0xA000:
		if value&1 != 0 {
			m.mirroring = ines.Horizontal
		} else {
			m.mirroring = ines.Vertical
		}
	case 0xA001:
		m.prgRAMProtect = value
	case 0xC000:
		m.irqReloadValue = value
	case 0xC001:
		m.irqReloadFlag = true
		m.irqCounter = 0
	case 0xE000:
		m.irqEnabled = false
		m.irqPending = false
	case 0xE001:
		m.irqEnabled = true
	}
}

func (m *mmc3) calculateCHRBank(addr uint16) uint8 {
	chrMode := (m.bankSelect >> 7) & 1
	var bank uint8
	low := addr < 0x1000
	if chrMode == 1 {
		low = !low
	}
	if low {
		if addr&0x1800 == 0x0000 || addr&0x1800 == 0x1000 {
			bank = (m.bankRegisters[0] &^ 1) + uint8((addr/0x400)%2)
		} else {
			bank = (m.bankRegisters[1] &^ 1) + uint8((addr/0x400)%2)
		}
	} else {
		regIndex := 2 + (addr/0x400)%4
		bank = m.bankRegisters[regIndex]
	}
	return bank
}

func (m *mmc3) PPUMapRead(addr uint16) int {
	bank := m.calculateCHRBank(addr)
	if m.chrBankCount > 0 {
		bank %= m.chrBankCount
	}
	offset := int(bank)*0x400 + int(addr&0x3FF)
	if len(m.data.CHRROM) > 0 {
		return offset % len(m.data.CHRROM)
	}
	return offset % len(m.data.CHRRAM)
}

func (m *mmc3) PPUMapWrite(addr uint16) (int, bool) {
	if len(m.data.CHRRAM) == 0 {
		return 0, false
	}
	bank := m.calculateCHRBank(addr)
	if m.chrBankCount > 0 {
		bank %= m.chrBankCount
	}
	return (int(bank)*0x400 + int(addr&0x3FF)) % len(m.data.CHRRAM), true
}

// ClockScanline advances the IRQ counter once per PPU scanline, the
// contract a host PPU drives externally at end-of-scanline signals.
func (m *mmc3) ClockScanline() {
	if m.irqReloadFlag || m.irqCounter == 0 {
		m.irqCounter = m.irqReloadValue
		m.irqReloadFlag = false
	} else {
		m.irqCounter--
	}
	if m.irqCounter == 0 && m.irqEnabled {
		m.irqPending = true
	}
}

func (m *mmc3) Mirroring() ines.Mirroring { return m.mirroring }
func (m *mmc3) SRAM() []uint8             { return m.data.PRGRAM }
func (m *mmc3) IRQState() bool            { return m.irqPending }
func (m *mmc3) IRQClear()                 { m.irqPending = false }
