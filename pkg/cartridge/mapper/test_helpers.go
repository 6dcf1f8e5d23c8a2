package mapper

// Test data for various mapper tests.
var (
	testPRGROM16KB = make([]uint8, 16*1024)
	testPRGROM32KB = make([]uint8, 32*1024)
	testPRGROM64KB = make([]uint8, 64*1024)
	testCHRROM8KB  = make([]uint8, 8*1024)
	testCHRROM32KB = make([]uint8, 32*1024)
)

func init() {
	for i := range testPRGROM16KB {
		testPRGROM16KB[i] = uint8(i & 0xFF)
	}
	for i := range testPRGROM32KB {
		testPRGROM32KB[i] = uint8(i & 0xFF)
	}
	for i := range testPRGROM64KB {
		testPRGROM64KB[i] = uint8(i & 0xFF)
	}
	for i := range testCHRROM8KB {
		testCHRROM8KB[i] = uint8(i & 0xFF)
	}
	for i := range testCHRROM32KB {
		testCHRROM32KB[i] = uint8(i & 0xFF)
	}

	testPRGROM16KB[0x3FFC] = 0x00
	testPRGROM16KB[0x3FFD] = 0x80
	testPRGROM32KB[0x7FFC] = 0x00
	testPRGROM32KB[0x7FFD] = 0x80
	testPRGROM64KB[0x7FFC] = 0x00
	testPRGROM64KB[0x7FFD] = 0x80
}

// freshPRGRAM returns a zeroed PRG-RAM slice so tests don't share mutable
// state across subtests.
func freshPRGRAM(size int) []uint8 {
	return make([]uint8, size)
}

// readCPU resolves a CPUMapRead result against the backing cartridge data,
// the way a bus adapter would.
func readCPU(m Mapper, data *CartridgeData, addr uint16) uint8 {
	t := m.CPUMapRead(addr)
	switch t.Kind {
	case TargetPRGROM:
		return data.PRGROM[t.Offset]
	case TargetPRGRAM:
		return t.Value
	default:
		return 0
	}
}

// readPPU resolves a PPUMapRead offset against whichever CHR store is
// present.
func readPPU(m Mapper, data *CartridgeData, addr uint16) uint8 {
	off := m.PPUMapRead(addr)
	if len(data.CHRROM) > 0 {
		return data.CHRROM[off]
	}
	return data.CHRRAM[off]
}

// writePPU resolves a PPUMapWrite offset, if any, and stores the value into
// CHR-RAM.
func writePPU(m Mapper, data *CartridgeData, addr uint16, value uint8) {
	if off, ok := m.PPUMapWrite(addr); ok {
		data.CHRRAM[off] = value
	}
}
