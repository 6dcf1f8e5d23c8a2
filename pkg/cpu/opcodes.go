package cpu

// OpcodeInfo describes one of the 256 possible opcode bytes: its mnemonic,
// the addressing mode it resolves its operand through, and its base cycle
// count before any page-cross or branch-taken penalty.
type OpcodeInfo struct {
	Mnemonic string
	Mode     AddressingMode
	Cycles   int
}

// illegal is the descriptor every undocumented opcode byte maps to.
var illegal = OpcodeInfo{"NOP", AddrImplied, 2}

// opcodeTable is a total function from opcode byte to descriptor. Every
// byte not part of the documented 6502 instruction set degrades to NOP,
// except 0x02 which this emulator repurposes for a non-standard quirk
// read (see quirk.go).
var opcodeTable = [256]OpcodeInfo{
	0x00: {"BRK", AddrImplied, 7},
	0x01: {"ORA", AddrIndexedIndirect, 6},
	0x02: {"QRK", AddrImplied, 2},
	0x03: illegal,
	0x04: illegal,
	0x05: {"ORA", AddrZeroPage, 3},
	0x06: {"ASL", AddrZeroPage, 5},
	0x07: illegal,
	0x08: {"PHP", AddrImplied, 3},
	0x09: {"ORA", AddrImmediate, 2},
	0x0A: {"ASL", AddrAccumulator, 2},
	0x0B: illegal,
	0x0C: illegal,
	0x0D: {"ORA", AddrAbsolute, 4},
	0x0E: {"ASL", AddrAbsolute, 6},
	0x0F: illegal,

	0x10: {"BPL", AddrRelative, 2},
	0x11: {"ORA", AddrIndirectIndexed, 5},
	0x12: illegal,
	0x13: illegal,
	0x14: illegal,
	0x15: {"ORA", AddrZeroPageX, 4},
	0x16: {"ASL", AddrZeroPageX, 6},
	0x17: illegal,
	0x18: {"CLC", AddrImplied, 2},
	0x19: {"ORA", AddrAbsoluteY, 4},
	0x1A: illegal,
	0x1B: illegal,
	0x1C: illegal,
	0x1D: {"ORA", AddrAbsoluteX, 4},
	0x1E: {"ASL", AddrAbsoluteX, 7},
	0x1F: illegal,

	0x20: {"JSR", AddrAbsolute, 6},
	0x21: {"AND", AddrIndexedIndirect, 6},
	0x22: illegal,
	0x23: illegal,
	0x24: {"BIT", AddrZeroPage, 3},
	0x25: {"AND", AddrZeroPage, 3},
	0x26: {"ROL", AddrZeroPage, 5},
	0x27: illegal,
	0x28: {"PLP", AddrImplied, 4},
	0x29: {"AND", AddrImmediate, 2},
	0x2A: {"ROL", AddrAccumulator, 2},
	0x2B: illegal,
	0x2C: {"BIT", AddrAbsolute, 4},
	0x2D: {"AND", AddrAbsolute, 4},
	0x2E: {"ROL", AddrAbsolute, 6},
	0x2F: illegal,

	0x30: {"BMI", AddrRelative, 2},
	0x31: {"AND", AddrIndirectIndexed, 5},
	0x32: illegal,
	0x33: illegal,
	0x34: illegal,
	0x35: {"AND", AddrZeroPageX, 4},
	0x36: {"ROL", AddrZeroPageX, 6},
	0x37: illegal,
	0x38: {"SEC", AddrImplied, 2},
	0x39: {"AND", AddrAbsoluteY, 4},
	0x3A: illegal,
	0x3B: illegal,
	0x3C: illegal,
	0x3D: {"AND", AddrAbsoluteX, 4},
	0x3E: {"ROL", AddrAbsoluteX, 7},
	0x3F: illegal,

	0x40: {"RTI", AddrImplied, 6},
	0x41: {"EOR", AddrIndexedIndirect, 6},
	0x42: illegal,
	0x43: illegal,
	0x44: illegal,
	0x45: {"EOR", AddrZeroPage, 3},
	0x46: {"LSR", AddrZeroPage, 5},
	0x47: illegal,
	0x48: {"PHA", AddrImplied, 3},
	0x49: {"EOR", AddrImmediate, 2},
	0x4A: {"LSR", AddrAccumulator, 2},
	0x4B: illegal,
	0x4C: {"JMP", AddrAbsolute, 3},
	0x4D: {"EOR", AddrAbsolute, 4},
	0x4E: {"LSR", AddrAbsolute, 6},
	0x4F: illegal,

	0x50: {"BVC", AddrRelative, 2},
	0x51: {"EOR", AddrIndirectIndexed, 5},
	0x52: illegal,
	0x53: illegal,
	0x54: illegal,
	0x55: {"EOR", AddrZeroPageX, 4},
	0x56: {"LSR", AddrZeroPageX, 6},
	0x57: illegal,
	0x58: {"CLI", AddrImplied, 2},
	0x59: {"EOR", AddrAbsoluteY, 4},
	0x5A: illegal,
	0x5B: illegal,
	0x5C: illegal,
	0x5D: {"EOR", AddrAbsoluteX, 4},
	0x5E: {"LSR", AddrAbsoluteX, 7},
	0x5F: illegal,

	0x60: {"RTS", AddrImplied, 6},
	0x61: {"ADC", AddrIndexedIndirect, 6},
	0x62: illegal,
	0x63: illegal,
	0x64: illegal,
	0x65: {"ADC", AddrZeroPage, 3},
	0x66: {"ROR", AddrZeroPage, 5},
	0x67: illegal,
	0x68: {"PLA", AddrImplied, 4},
	0x69: {"ADC", AddrImmediate, 2},
	0x6A: {"ROR", AddrAccumulator, 2},
	0x6B: illegal,
	0x6C: {"JMP", AddrIndirect, 5},
	0x6D: {"ADC", AddrAbsolute, 4},
	0x6E: {"ROR", AddrAbsolute, 6},
	0x6F: illegal,

	0x70: {"BVS", AddrRelative, 2},
	0x71: {"ADC", AddrIndirectIndexed, 5},
	0x72: illegal,
	0x73: illegal,
	0x74: illegal,
	0x75: {"ADC", AddrZeroPageX, 4},
	0x76: {"ROR", AddrZeroPageX, 6},
	0x77: illegal,
	0x78: {"SEI", AddrImplied, 2},
	0x79: {"ADC", AddrAbsoluteY, 4},
	0x7A: illegal,
	0x7B: illegal,
	0x7C: illegal,
	0x7D: {"ADC", AddrAbsoluteX, 4},
	0x7E: {"ROR", AddrAbsoluteX, 7},
	0x7F: illegal,

	0x80: illegal,
	0x81: {"STA", AddrIndexedIndirect, 6},
	0x82: illegal,
	0x83: illegal,
	0x84: {"STY", AddrZeroPage, 3},
	0x85: {"STA", AddrZeroPage, 3},
	0x86: {"STX", AddrZeroPage, 3},
	0x87: illegal,
	0x88: {"DEY", AddrImplied, 2},
	0x89: illegal,
	0x8A: {"TXA", AddrImplied, 2},
	0x8B: illegal,
	0x8C: {"STY", AddrAbsolute, 4},
	0x8D: {"STA", AddrAbsolute, 4},
	0x8E: {"STX", AddrAbsolute, 4},
	0x8F: illegal,

	0x90: {"BCC", AddrRelative, 2},
	0x91: {"STA", AddrIndirectIndexed, 6},
	0x92: illegal,
	0x93: illegal,
	0x94: {"STY", AddrZeroPageX, 4},
	0x95: {"STA", AddrZeroPageX, 4},
	0x96: {"STX", AddrZeroPageY, 4},
	0x97: illegal,
	0x98: {"TYA", AddrImplied, 2},
	0x99: {"STA", AddrAbsoluteY, 5},
	0x9A: {"TXS", AddrImplied, 2},
	0x9B: illegal,
	0x9C: illegal,
	0x9D: {"STA", AddrAbsoluteX, 5},
	0x9E: illegal,
	0x9F: illegal,

	0xA0: {"LDY", AddrImmediate, 2},
	0xA1: {"LDA", AddrIndexedIndirect, 6},
	0xA2: {"LDX", AddrImmediate, 2},
	0xA3: illegal,
	0xA4: {"LDY", AddrZeroPage, 3},
	0xA5: {"LDA", AddrZeroPage, 3},
	0xA6: {"LDX", AddrZeroPage, 3},
	0xA7: illegal,
	0xA8: {"TAY", AddrImplied, 2},
	0xA9: {"LDA", AddrImmediate, 2},
	0xAA: {"TAX", AddrImplied, 2},
	0xAB: illegal,
	0xAC: {"LDY", AddrAbsolute, 4},
	0xAD: {"LDA", AddrAbsolute, 4},
	0xAE: {"LDX", AddrAbsolute, 4},
	0xAF: illegal,

	0xB0: {"BCS", AddrRelative, 2},
	0xB1: {"LDA", AddrIndirectIndexed, 5},
	0xB2: illegal,
	0xB3: illegal,
	0xB4: {"LDY", AddrZeroPageX, 4},
	0xB5: {"LDA", AddrZeroPageX, 4},
	0xB6: {"LDX", AddrZeroPageY, 4},
	0xB7: illegal,
	0xB8: {"CLV", AddrImplied, 2},
	0xB9: {"LDA", AddrAbsoluteY, 4},
	0xBA: {"TSX", AddrImplied, 2},
	0xBB: illegal,
	0xBC: {"LDY", AddrAbsoluteX, 4},
	0xBD: {"LDA", AddrAbsoluteX, 4},
	0xBE: {"LDX", AddrAbsoluteY, 4},
	0xBF: illegal,

	0xC0: {"CPY", AddrImmediate, 2},
	0xC1: {"CMP", AddrIndexedIndirect, 6},
	0xC2: illegal,
	0xC3: illegal,
	0xC4: {"CPY", AddrZeroPage, 3},
	0xC5: {"CMP", AddrZeroPage, 3},
	0xC6: {"DEC", AddrZeroPage, 5},
	0xC7: illegal,
	0xC8: {"INY", AddrImplied, 2},
	0xC9: {"CMP", AddrImmediate, 2},
	0xCA: {"DEX", AddrImplied, 2},
	0xCB: illegal,
	0xCC: {"CPY", AddrAbsolute, 4},
	0xCD: {"CMP", AddrAbsolute, 4},
	0xCE: {"DEC", AddrAbsolute, 6},
	0xCF: illegal,

	0xD0: {"BNE", AddrRelative, 2},
	0xD1: {"CMP", AddrIndirectIndexed, 5},
	0xD2: illegal,
	0xD3: illegal,
	0xD4: illegal,
	0xD5: {"CMP", AddrZeroPageX, 4},
	0xD6: {"DEC", AddrZeroPageX, 6},
	0xD7: illegal,
	0xD8: {"CLD", AddrImplied, 2},
	0xD9: {"CMP", AddrAbsoluteY, 4},
	0xDA: illegal,
	0xDB: illegal,
	0xDC: illegal,
	0xDD: {"CMP", AddrAbsoluteX, 4},
	0xDE: {"DEC", AddrAbsoluteX, 7},
	0xDF: illegal,

	0xE0: {"CPX", AddrImmediate, 2},
	0xE1: {"SBC", AddrIndexedIndirect, 6},
	0xE2: illegal,
	0xE3: illegal,
	0xE4: {"CPX", AddrZeroPage, 3},
	0xE5: {"SBC", AddrZeroPage, 3},
	0xE6: {"INC", AddrZeroPage, 5},
	0xE7: illegal,
	0xE8: {"INX", AddrImplied, 2},
	0xE9: {"SBC", AddrImmediate, 2},
	0xEA: {"NOP", AddrImplied, 2},
	0xEB: illegal,
	0xEC: {"CPX", AddrAbsolute, 4},
	0xED: {"SBC", AddrAbsolute, 4},
	0xEE: {"INC", AddrAbsolute, 6},
	0xEF: illegal,

	0xF0: {"BEQ", AddrRelative, 2},
	0xF1: {"SBC", AddrIndirectIndexed, 5},
	0xF2: illegal,
	0xF3: illegal,
	0xF4: illegal,
	0xF5: {"SBC", AddrZeroPageX, 4},
	0xF6: {"INC", AddrZeroPageX, 6},
	0xF7: illegal,
	0xF8: {"SED", AddrImplied, 2},
	0xF9: {"SBC", AddrAbsoluteY, 4},
	0xFA: illegal,
	0xFB: illegal,
	0xFC: illegal,
	0xFD: {"SBC", AddrAbsoluteX, 4},
	0xFE: {"INC", AddrAbsoluteX, 7},
	0xFF: illegal,
}

// lookupOpcode returns the descriptor for an opcode byte. The table is a
// total function: every one of the 256 indices is populated above.
func lookupOpcode(opcode uint8) OpcodeInfo {
	return opcodeTable[opcode]
}
