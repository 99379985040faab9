package cpu65816

// Instruction describes one decoded opcode: its mnemonic (for error
// context and disassembly), the addressing mode the generic load/store
// helpers should use, a base cycle cost, and the function that performs
// the operation and returns any cycles on top of the base cost.
type Instruction struct {
	Name    string
	Mode    AddressingMode
	Cycles  uint64
	Execute func(c *CPU, mode AddressingMode) (uint64, error)
}

var instructionTable [256]Instruction

func def(opcode uint8, name string, mode AddressingMode, cycles uint64, fn func(c *CPU, mode AddressingMode) (uint64, error)) {
	instructionTable[opcode] = Instruction{Name: name, Mode: mode, Cycles: cycles, Execute: fn}
}

// Mnemonic returns the instruction name for opcode, for disassembly.
func Mnemonic(opcode uint8) string { return instructionTable[opcode].Name }

// ModeOf returns the addressing mode an opcode decodes with.
func ModeOf(opcode uint8) AddressingMode { return instructionTable[opcode].Mode }

func init() {
	def(0x00, "BRK", ModeImplied, 7, opBRK)
	def(0x01, "ORA", ModeDirectIndirectX, 6, opORA)
	def(0x02, "COP", ModeImplied, 7, opCOP)
	def(0x03, "ORA", ModeStackRelative, 4, opORA)
	def(0x04, "TSB", ModeDirect, 5, opTSB)
	def(0x05, "ORA", ModeDirect, 3, opORA)
	def(0x06, "ASL", ModeDirect, 5, opASL)
	def(0x07, "ORA", ModeDirectIndirectLong, 6, opORA)
	def(0x08, "PHP", ModeImplied, 3, opPHP)
	def(0x09, "ORA", ModeImmediateM, 2, opORA)
	def(0x0A, "ASL", ModeAccumulator, 2, opASL)
	def(0x0B, "PHD", ModeImplied, 4, opPHD)
	def(0x0C, "TSB", ModeAbsolute, 6, opTSB)
	def(0x0D, "ORA", ModeAbsolute, 4, opORA)
	def(0x0E, "ASL", ModeAbsolute, 6, opASL)
	def(0x0F, "ORA", ModeLong, 5, opORA)

	def(0x10, "BPL", ModeImplied, 2, branchIf2(func(c *CPU) bool { return !c.Status.N }))
	def(0x11, "ORA", ModeDirectIndirectY, 5, opORA)
	def(0x12, "ORA", ModeDirectIndirect, 5, opORA)
	def(0x13, "ORA", ModeStackRelativeIndirectY, 7, opORA)
	def(0x14, "TRB", ModeDirect, 5, opTRB)
	def(0x15, "ORA", ModeDirectX, 4, opORA)
	def(0x16, "ASL", ModeDirectX, 6, opASL)
	def(0x17, "ORA", ModeDirectIndirectLongY, 6, opORA)
	def(0x18, "CLC", ModeImplied, 2, opCLC)
	def(0x19, "ORA", ModeAbsoluteY, 4, opORA)
	def(0x1A, "INC", ModeAccumulator, 2, opINCA)
	def(0x1B, "TCS", ModeImplied, 2, opTCS)
	def(0x1C, "TRB", ModeAbsolute, 6, opTRB)
	def(0x1D, "ORA", ModeAbsoluteX, 4, opORA)
	def(0x1E, "ASL", ModeAbsoluteX, 7, opASL)
	def(0x1F, "ORA", ModeLongX, 5, opORA)

	def(0x20, "JSR", ModeImplied, 6, opJSR)
	def(0x21, "AND", ModeDirectIndirectX, 6, opAND)
	def(0x22, "JSL", ModeImplied, 8, opJSL)
	def(0x23, "AND", ModeStackRelative, 4, opAND)
	def(0x24, "BIT", ModeDirect, 3, opBIT)
	def(0x25, "AND", ModeDirect, 3, opAND)
	def(0x26, "ROL", ModeDirect, 5, opROL)
	def(0x27, "AND", ModeDirectIndirectLong, 6, opAND)
	def(0x28, "PLP", ModeImplied, 4, opPLP)
	def(0x29, "AND", ModeImmediateM, 2, opAND)
	def(0x2A, "ROL", ModeAccumulator, 2, opROL)
	def(0x2B, "PLD", ModeImplied, 5, opPLD)
	def(0x2C, "BIT", ModeAbsolute, 4, opBIT)
	def(0x2D, "AND", ModeAbsolute, 4, opAND)
	def(0x2E, "ROL", ModeAbsolute, 6, opROL)
	def(0x2F, "AND", ModeLong, 5, opAND)

	def(0x30, "BMI", ModeImplied, 2, branchIf2(func(c *CPU) bool { return c.Status.N }))
	def(0x31, "AND", ModeDirectIndirectY, 5, opAND)
	def(0x32, "AND", ModeDirectIndirect, 5, opAND)
	def(0x33, "AND", ModeStackRelativeIndirectY, 7, opAND)
	def(0x34, "BIT", ModeDirectX, 4, opBIT)
	def(0x35, "AND", ModeDirectX, 4, opAND)
	def(0x36, "ROL", ModeDirectX, 6, opROL)
	def(0x37, "AND", ModeDirectIndirectLongY, 6, opAND)
	def(0x38, "SEC", ModeImplied, 2, opSEC)
	def(0x39, "AND", ModeAbsoluteY, 4, opAND)
	def(0x3A, "DEC", ModeAccumulator, 2, opDECA)
	def(0x3B, "TSC", ModeImplied, 2, opTSC)
	def(0x3C, "BIT", ModeAbsoluteX, 4, opBIT)
	def(0x3D, "AND", ModeAbsoluteX, 4, opAND)
	def(0x3E, "ROL", ModeAbsoluteX, 7, opROL)
	def(0x3F, "AND", ModeLongX, 5, opAND)

	def(0x40, "RTI", ModeImplied, 6, opRTI)
	def(0x41, "EOR", ModeDirectIndirectX, 6, opEOR)
	def(0x42, "WDM", ModeImplied, 2, opWDM)
	def(0x43, "EOR", ModeStackRelative, 4, opEOR)
	def(0x44, "MVP", ModeImplied, 7, opMVP)
	def(0x45, "EOR", ModeDirect, 3, opEOR)
	def(0x46, "LSR", ModeDirect, 5, opLSR)
	def(0x47, "EOR", ModeDirectIndirectLong, 6, opEOR)
	def(0x48, "PHA", ModeImplied, 3, opPHA)
	def(0x49, "EOR", ModeImmediateM, 2, opEOR)
	def(0x4A, "LSR", ModeAccumulator, 2, opLSR)
	def(0x4B, "PHK", ModeImplied, 3, opPHK)
	def(0x4C, "JMP", ModeImplied, 3, opJMPAbs)
	def(0x4D, "EOR", ModeAbsolute, 4, opEOR)
	def(0x4E, "LSR", ModeAbsolute, 6, opLSR)
	def(0x4F, "EOR", ModeLong, 5, opEOR)

	def(0x50, "BVC", ModeImplied, 2, branchIf2(func(c *CPU) bool { return !c.Status.V }))
	def(0x51, "EOR", ModeDirectIndirectY, 5, opEOR)
	def(0x52, "EOR", ModeDirectIndirect, 5, opEOR)
	def(0x53, "EOR", ModeStackRelativeIndirectY, 7, opEOR)
	def(0x54, "MVN", ModeImplied, 7, opMVN)
	def(0x55, "EOR", ModeDirectX, 4, opEOR)
	def(0x56, "LSR", ModeDirectX, 6, opLSR)
	def(0x57, "EOR", ModeDirectIndirectLongY, 6, opEOR)
	def(0x58, "CLI", ModeImplied, 2, opCLI)
	def(0x59, "EOR", ModeAbsoluteY, 4, opEOR)
	def(0x5A, "PHY", ModeImplied, 3, opPHY)
	def(0x5B, "TCD", ModeImplied, 2, opTCD)
	def(0x5C, "JMP", ModeImplied, 4, opJMPLong)
	def(0x5D, "EOR", ModeAbsoluteX, 4, opEOR)
	def(0x5E, "LSR", ModeAbsoluteX, 7, opLSR)
	def(0x5F, "EOR", ModeLongX, 5, opEOR)

	def(0x60, "RTS", ModeImplied, 6, opRTS)
	def(0x61, "ADC", ModeDirectIndirectX, 6, opADC)
	def(0x62, "PER", ModeImplied, 6, opPER)
	def(0x63, "ADC", ModeStackRelative, 4, opADC)
	def(0x64, "STZ", ModeDirect, 3, opSTZ)
	def(0x65, "ADC", ModeDirect, 3, opADC)
	def(0x66, "ROR", ModeDirect, 5, opROR)
	def(0x67, "ADC", ModeDirectIndirectLong, 6, opADC)
	def(0x68, "PLA", ModeImplied, 4, opPLA)
	def(0x69, "ADC", ModeImmediateM, 2, opADC)
	def(0x6A, "ROR", ModeAccumulator, 2, opROR)
	def(0x6B, "RTL", ModeImplied, 6, opRTL)
	def(0x6C, "JMP", ModeImplied, 5, opJMPIndirect)
	def(0x6D, "ADC", ModeAbsolute, 4, opADC)
	def(0x6E, "ROR", ModeAbsolute, 6, opROR)
	def(0x6F, "ADC", ModeLong, 5, opADC)

	def(0x70, "BVS", ModeImplied, 2, branchIf2(func(c *CPU) bool { return c.Status.V }))
	def(0x71, "ADC", ModeDirectIndirectY, 5, opADC)
	def(0x72, "ADC", ModeDirectIndirect, 5, opADC)
	def(0x73, "ADC", ModeStackRelativeIndirectY, 7, opADC)
	def(0x74, "STZ", ModeDirectX, 4, opSTZ)
	def(0x75, "ADC", ModeDirectX, 4, opADC)
	def(0x76, "ROR", ModeDirectX, 6, opROR)
	def(0x77, "ADC", ModeDirectIndirectLongY, 6, opADC)
	def(0x78, "SEI", ModeImplied, 2, opSEI)
	def(0x79, "ADC", ModeAbsoluteY, 4, opADC)
	def(0x7A, "PLY", ModeImplied, 4, opPLY)
	def(0x7B, "TDC", ModeImplied, 2, opTDC)
	def(0x7C, "JMP", ModeImplied, 6, opJMPIndirectX)
	def(0x7D, "ADC", ModeAbsoluteX, 4, opADC)
	def(0x7E, "ROR", ModeAbsoluteX, 7, opROR)
	def(0x7F, "ADC", ModeLongX, 5, opADC)

	def(0x80, "BRA", ModeImplied, 3, opBRA)
	def(0x81, "STA", ModeDirectIndirectX, 6, opSTA)
	def(0x82, "BRL", ModeImplied, 4, opBRL)
	def(0x83, "STA", ModeStackRelative, 4, opSTA)
	def(0x84, "STY", ModeDirect, 3, opSTY)
	def(0x85, "STA", ModeDirect, 3, opSTA)
	def(0x86, "STX", ModeDirect, 3, opSTX)
	def(0x87, "STA", ModeDirectIndirectLong, 6, opSTA)
	def(0x88, "DEY", ModeImplied, 2, opDEY)
	def(0x89, "BIT", ModeImmediateM, 2, opBIT)
	def(0x8A, "TXA", ModeImplied, 2, opTXA)
	def(0x8B, "PHB", ModeImplied, 3, opPHB)
	def(0x8C, "STY", ModeAbsolute, 4, opSTY)
	def(0x8D, "STA", ModeAbsolute, 4, opSTA)
	def(0x8E, "STX", ModeAbsolute, 4, opSTX)
	def(0x8F, "STA", ModeLong, 5, opSTA)

	def(0x90, "BCC", ModeImplied, 2, branchIf2(func(c *CPU) bool { return !c.Status.C }))
	def(0x91, "STA", ModeDirectIndirectY, 6, opSTA)
	def(0x92, "STA", ModeDirectIndirect, 5, opSTA)
	def(0x93, "STA", ModeStackRelativeIndirectY, 7, opSTA)
	def(0x94, "STY", ModeDirectX, 4, opSTY)
	def(0x95, "STA", ModeDirectX, 4, opSTA)
	def(0x96, "STX", ModeDirectY, 4, opSTX)
	def(0x97, "STA", ModeDirectIndirectLongY, 6, opSTA)
	def(0x98, "TYA", ModeImplied, 2, opTYA)
	def(0x99, "STA", ModeAbsoluteY, 5, opSTA)
	def(0x9A, "TXS", ModeImplied, 2, opTXS)
	def(0x9B, "TXY", ModeImplied, 2, opTXY)
	def(0x9C, "STZ", ModeAbsolute, 4, opSTZ)
	def(0x9D, "STA", ModeAbsoluteX, 5, opSTA)
	def(0x9E, "STZ", ModeAbsoluteX, 5, opSTZ)
	def(0x9F, "STA", ModeLongX, 5, opSTA)

	def(0xA0, "LDY", ModeImmediateX, 2, opLDY)
	def(0xA1, "LDA", ModeDirectIndirectX, 6, opLDA)
	def(0xA2, "LDX", ModeImmediateX, 2, opLDX)
	def(0xA3, "LDA", ModeStackRelative, 4, opLDA)
	def(0xA4, "LDY", ModeDirect, 3, opLDY)
	def(0xA5, "LDA", ModeDirect, 3, opLDA)
	def(0xA6, "LDX", ModeDirect, 3, opLDX)
	def(0xA7, "LDA", ModeDirectIndirectLong, 6, opLDA)
	def(0xA8, "TAY", ModeImplied, 2, opTAY)
	def(0xA9, "LDA", ModeImmediateM, 2, opLDA)
	def(0xAA, "TAX", ModeImplied, 2, opTAX)
	def(0xAB, "PLB", ModeImplied, 4, opPLB)
	def(0xAC, "LDY", ModeAbsolute, 4, opLDY)
	def(0xAD, "LDA", ModeAbsolute, 4, opLDA)
	def(0xAE, "LDX", ModeAbsolute, 4, opLDX)
	def(0xAF, "LDA", ModeLong, 5, opLDA)

	def(0xB0, "BCS", ModeImplied, 2, branchIf2(func(c *CPU) bool { return c.Status.C }))
	def(0xB1, "LDA", ModeDirectIndirectY, 5, opLDA)
	def(0xB2, "LDA", ModeDirectIndirect, 5, opLDA)
	def(0xB3, "LDA", ModeStackRelativeIndirectY, 7, opLDA)
	def(0xB4, "LDY", ModeDirectX, 4, opLDY)
	def(0xB5, "LDA", ModeDirectX, 4, opLDA)
	def(0xB6, "LDX", ModeDirectY, 4, opLDX)
	def(0xB7, "LDA", ModeDirectIndirectLongY, 6, opLDA)
	def(0xB8, "CLV", ModeImplied, 2, opCLV)
	def(0xB9, "LDA", ModeAbsoluteY, 4, opLDA)
	def(0xBA, "TSX", ModeImplied, 2, opTSX)
	def(0xBB, "TYX", ModeImplied, 2, opTYX)
	def(0xBC, "LDY", ModeAbsoluteX, 4, opLDY)
	def(0xBD, "LDA", ModeAbsoluteX, 4, opLDA)
	def(0xBE, "LDX", ModeAbsoluteY, 4, opLDX)
	def(0xBF, "LDA", ModeLongX, 5, opLDA)

	def(0xC0, "CPY", ModeImmediateX, 2, opCPY)
	def(0xC1, "CMP", ModeDirectIndirectX, 6, opCMP)
	def(0xC2, "REP", ModeImplied, 3, opREP)
	def(0xC3, "CMP", ModeStackRelative, 4, opCMP)
	def(0xC4, "CPY", ModeDirect, 3, opCPY)
	def(0xC5, "CMP", ModeDirect, 3, opCMP)
	def(0xC6, "DEC", ModeDirect, 5, opDEC)
	def(0xC7, "CMP", ModeDirectIndirectLong, 6, opCMP)
	def(0xC8, "INY", ModeImplied, 2, opINY)
	def(0xC9, "CMP", ModeImmediateM, 2, opCMP)
	def(0xCA, "DEX", ModeImplied, 2, opDEX)
	def(0xCB, "WAI", ModeImplied, 3, opWAI)
	def(0xCC, "CPY", ModeAbsolute, 4, opCPY)
	def(0xCD, "CMP", ModeAbsolute, 4, opCMP)
	def(0xCE, "DEC", ModeAbsolute, 6, opDEC)
	def(0xCF, "CMP", ModeLong, 5, opCMP)

	def(0xD0, "BNE", ModeImplied, 2, branchIf2(func(c *CPU) bool { return !c.Status.Z }))
	def(0xD1, "CMP", ModeDirectIndirectY, 5, opCMP)
	def(0xD2, "CMP", ModeDirectIndirect, 5, opCMP)
	def(0xD3, "CMP", ModeStackRelativeIndirectY, 7, opCMP)
	def(0xD4, "PEI", ModeImplied, 6, opPEI)
	def(0xD5, "CMP", ModeDirectX, 4, opCMP)
	def(0xD6, "DEC", ModeDirectX, 6, opDEC)
	def(0xD7, "CMP", ModeDirectIndirectLongY, 6, opCMP)
	def(0xD8, "CLD", ModeImplied, 2, opCLD)
	def(0xD9, "CMP", ModeAbsoluteY, 4, opCMP)
	def(0xDA, "PHX", ModeImplied, 3, opPHX)
	def(0xDB, "STP", ModeImplied, 3, opSTP)
	def(0xDC, "JMP", ModeImplied, 6, opJMPIndirectLong)
	def(0xDD, "CMP", ModeAbsoluteX, 4, opCMP)
	def(0xDE, "DEC", ModeAbsoluteX, 7, opDEC)
	def(0xDF, "CMP", ModeLongX, 5, opCMP)

	def(0xE0, "CPX", ModeImmediateX, 2, opCPX)
	def(0xE1, "SBC", ModeDirectIndirectX, 6, opSBC)
	def(0xE2, "SEP", ModeImplied, 3, opSEP)
	def(0xE3, "SBC", ModeStackRelative, 4, opSBC)
	def(0xE4, "CPX", ModeDirect, 3, opCPX)
	def(0xE5, "SBC", ModeDirect, 3, opSBC)
	def(0xE6, "INC", ModeDirect, 5, opINC)
	def(0xE7, "SBC", ModeDirectIndirectLong, 6, opSBC)
	def(0xE8, "INX", ModeImplied, 2, opINX)
	def(0xE9, "SBC", ModeImmediateM, 2, opSBC)
	def(0xEA, "NOP", ModeImplied, 2, opNOP)
	def(0xEB, "XBA", ModeImplied, 3, opXBA)
	def(0xEC, "CPX", ModeAbsolute, 4, opCPX)
	def(0xED, "SBC", ModeAbsolute, 4, opSBC)
	def(0xEE, "INC", ModeAbsolute, 6, opINC)
	def(0xEF, "SBC", ModeLong, 5, opSBC)

	def(0xF0, "BEQ", ModeImplied, 2, branchIf2(func(c *CPU) bool { return c.Status.Z }))
	def(0xF1, "SBC", ModeDirectIndirectY, 5, opSBC)
	def(0xF2, "SBC", ModeDirectIndirect, 5, opSBC)
	def(0xF3, "SBC", ModeStackRelativeIndirectY, 7, opSBC)
	def(0xF4, "PEA", ModeImplied, 5, opPEA)
	def(0xF5, "SBC", ModeDirectX, 4, opSBC)
	def(0xF6, "INC", ModeDirectX, 6, opINC)
	def(0xF7, "SBC", ModeDirectIndirectLongY, 6, opSBC)
	def(0xF8, "SED", ModeImplied, 2, opSED)
	def(0xF9, "SBC", ModeAbsoluteY, 4, opSBC)
	def(0xFA, "PLX", ModeImplied, 4, opPLX)
	def(0xFB, "XCE", ModeImplied, 2, opXCE)
	def(0xFC, "JSR", ModeImplied, 8, opJSRIndirectX)
	def(0xFD, "SBC", ModeAbsoluteX, 4, opSBC)
	def(0xFE, "INC", ModeAbsoluteX, 7, opINC)
	def(0xFF, "SBC", ModeLongX, 5, opSBC)
}

// branchIf2 adapts a flag predicate into an Execute function using the
// shared conditional-branch cycle accounting in branchIf.
func branchIf2(pred func(c *CPU) bool) func(c *CPU, mode AddressingMode) (uint64, error) {
	return func(c *CPU, mode AddressingMode) (uint64, error) {
		return branchIf(pred(c))(c, mode)
	}
}
