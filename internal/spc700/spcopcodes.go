package spc700

// Instruction is one entry of the SPC700 dispatch table: its base cycle
// cost and the function that performs the operand fetch and effect.
// Execute may return extra cycles (taken branches add 2).
type Instruction struct {
	Name    string
	Cycles  uint64
	Execute func(c *CPU) uint64
}

var spcInstructionTable [256]Instruction

func def(opcode uint8, name string, cycles uint64, fn func(c *CPU) uint64) {
	spcInstructionTable[opcode] = Instruction{Name: name, Cycles: cycles, Execute: fn}
}

// Mnemonic returns the instruction name for opcode, for disassembly.
func Mnemonic(opcode uint8) string { return spcInstructionTable[opcode].Name }

func flagN(c *CPU) bool  { return c.Status.N }
func flagNotN(c *CPU) bool { return !c.Status.N }
func flagV(c *CPU) bool  { return c.Status.V }
func flagNotV(c *CPU) bool { return !c.Status.V }
func flagC(c *CPU) bool  { return c.Status.C }
func flagNotC(c *CPU) bool { return !c.Status.C }
func flagZ(c *CPU) bool  { return c.Status.Z }
func flagNotZ(c *CPU) bool { return !c.Status.Z }

func init() {
	def(0x00, "NOP", 2, opNOP)
	def(0x01, "TCALL 0", 8, mkTCALL(0))
	def(0x02, "SET1 d.0", 4, mkSET1(0))
	def(0x03, "BBS d.0,r", 5, mkBBS(0))
	def(0x04, "OR A,d", 3, mkALU(applyOR, fetchDP))
	def(0x05, "OR A,!a", 4, mkALU(applyOR, fetchAbs))
	def(0x06, "OR A,(X)", 3, mkALU(applyOR, fetchIndX))
	def(0x07, "OR A,[d+X]", 6, mkALU(applyOR, fetchIndDPXPtr))
	def(0x08, "OR A,#i", 2, mkALU(applyOR, fetchImm))
	def(0x09, "OR dd,ds", 6, mkALU2(apply2OR, true))
	def(0x0A, "OR1 C,m.b", 5, opOR1)
	def(0x0B, "ASL d", 4, mkShiftMem(aslFn, addrDPFn))
	def(0x0C, "ASL !a", 5, mkShiftMem(aslFn, addrAbsFn))
	def(0x0D, "PUSH PSW", 4, opPUSHPSW)
	def(0x0E, "TSET1 !a", 6, opTSET1)
	def(0x0F, "BRK", 8, opBRK)

	def(0x10, "BPL r", 2, mkBranch(flagNotN))
	def(0x11, "TCALL 1", 8, mkTCALL(1))
	def(0x12, "CLR1 d.0", 4, mkCLR1(0))
	def(0x13, "BBC d.0,r", 5, mkBBC(0))
	def(0x14, "OR A,d+X", 4, mkALU(applyOR, fetchDPX))
	def(0x15, "OR A,!a+X", 5, mkALU(applyOR, fetchAbsX))
	def(0x16, "OR A,!a+Y", 5, mkALU(applyOR, fetchAbsY))
	def(0x17, "OR A,[d]+Y", 6, mkALU(applyOR, fetchIndDPPtrY))
	def(0x18, "OR d,#i", 5, mkALUDPImm(apply2OR, true))
	def(0x19, "OR (X),(Y)", 5, mkALUXY(apply2OR, true))
	def(0x1A, "DECW d", 6, opDECW)
	def(0x1B, "ASL d+X", 5, mkShiftMem(aslFn, addrDPXFn))
	def(0x1C, "ASL A", 2, mkShiftA(aslFn))
	def(0x1D, "DEC X", 2, opDECX)
	def(0x1E, "CMP X,!a", 4, mkALU(applyCMPX, fetchAbs))
	def(0x1F, "JMP [!a+X]", 6, opJMPAbsXInd)

	def(0x20, "CLRP", 2, opCLRP)
	def(0x21, "TCALL 2", 8, mkTCALL(2))
	def(0x22, "SET1 d.1", 4, mkSET1(1))
	def(0x23, "BBS d.1,r", 5, mkBBS(1))
	def(0x24, "AND A,d", 3, mkALU(applyAND, fetchDP))
	def(0x25, "AND A,!a", 4, mkALU(applyAND, fetchAbs))
	def(0x26, "AND A,(X)", 3, mkALU(applyAND, fetchIndX))
	def(0x27, "AND A,[d+X]", 6, mkALU(applyAND, fetchIndDPXPtr))
	def(0x28, "AND A,#i", 2, mkALU(applyAND, fetchImm))
	def(0x29, "AND dd,ds", 6, mkALU2(apply2AND, true))
	def(0x2A, "OR1 C,/m.b", 5, opOR1Not)
	def(0x2B, "ROL d", 4, mkShiftMem(rolFn, addrDPFn))
	def(0x2C, "ROL !a", 5, mkShiftMem(rolFn, addrAbsFn))
	def(0x2D, "PUSH A", 4, opPUSHA)
	def(0x2E, "CBNE d,r", 7, opCBNE)
	def(0x2F, "BRA r", 4, opBRA)

	def(0x30, "BMI r", 2, mkBranch(flagN))
	def(0x31, "TCALL 3", 8, mkTCALL(3))
	def(0x32, "CLR1 d.1", 4, mkCLR1(1))
	def(0x33, "BBC d.1,r", 5, mkBBC(1))
	def(0x34, "AND A,d+X", 4, mkALU(applyAND, fetchDPX))
	def(0x35, "AND A,!a+X", 5, mkALU(applyAND, fetchAbsX))
	def(0x36, "AND A,!a+Y", 5, mkALU(applyAND, fetchAbsY))
	def(0x37, "AND A,[d]+Y", 6, mkALU(applyAND, fetchIndDPPtrY))
	def(0x38, "AND d,#i", 5, mkALUDPImm(apply2AND, true))
	def(0x39, "AND (X),(Y)", 5, mkALUXY(apply2AND, true))
	def(0x3A, "INCW d", 6, opINCW)
	def(0x3B, "ROL d+X", 5, mkShiftMem(rolFn, addrDPXFn))
	def(0x3C, "ROL A", 2, mkShiftA(rolFn))
	def(0x3D, "INC X", 2, opINCX)
	def(0x3E, "CMP X,d", 3, mkALU(applyCMPX, fetchDP))
	def(0x3F, "CALL !a", 8, opCALL)

	def(0x40, "SETP", 2, opSETP)
	def(0x41, "TCALL 4", 8, mkTCALL(4))
	def(0x42, "SET1 d.2", 4, mkSET1(2))
	def(0x43, "BBS d.2,r", 5, mkBBS(2))
	def(0x44, "EOR A,d", 3, mkALU(applyEOR, fetchDP))
	def(0x45, "EOR A,!a", 4, mkALU(applyEOR, fetchAbs))
	def(0x46, "EOR A,(X)", 3, mkALU(applyEOR, fetchIndX))
	def(0x47, "EOR A,[d+X]", 6, mkALU(applyEOR, fetchIndDPXPtr))
	def(0x48, "EOR A,#i", 2, mkALU(applyEOR, fetchImm))
	def(0x49, "EOR dd,ds", 6, mkALU2(apply2EOR, true))
	def(0x4A, "AND1 C,m.b", 4, opAND1)
	def(0x4B, "LSR d", 4, mkShiftMem(lsrFn, addrDPFn))
	def(0x4C, "LSR !a", 5, mkShiftMem(lsrFn, addrAbsFn))
	def(0x4D, "PUSH X", 4, opPUSHX)
	def(0x4E, "TCLR1 !a", 6, opTCLR1)
	def(0x4F, "PCALL u", 6, opPCALL)

	def(0x50, "BVC r", 2, mkBranch(flagNotV))
	def(0x51, "TCALL 5", 8, mkTCALL(5))
	def(0x52, "CLR1 d.2", 4, mkCLR1(2))
	def(0x53, "BBC d.2,r", 5, mkBBC(2))
	def(0x54, "EOR A,d+X", 4, mkALU(applyEOR, fetchDPX))
	def(0x55, "EOR A,!a+X", 5, mkALU(applyEOR, fetchAbsX))
	def(0x56, "EOR A,!a+Y", 5, mkALU(applyEOR, fetchAbsY))
	def(0x57, "EOR A,[d]+Y", 6, mkALU(applyEOR, fetchIndDPPtrY))
	def(0x58, "EOR d,#i", 5, mkALUDPImm(apply2EOR, true))
	def(0x59, "EOR (X),(Y)", 5, mkALUXY(apply2EOR, true))
	def(0x5A, "CMPW YA,d", 4, opCMPWYAD)
	def(0x5B, "LSR d+X", 5, mkShiftMem(lsrFn, addrDPXFn))
	def(0x5C, "LSR A", 2, mkShiftA(lsrFn))
	def(0x5D, "MOV X,A", 2, opMOVXA)
	def(0x5E, "CMP Y,!a", 4, mkALU(applyCMPY, fetchAbs))
	def(0x5F, "JMP !a", 3, opJMPAbs)

	def(0x60, "CLRC", 2, opCLRC)
	def(0x61, "TCALL 6", 8, mkTCALL(6))
	def(0x62, "SET1 d.3", 4, mkSET1(3))
	def(0x63, "BBS d.3,r", 5, mkBBS(3))
	def(0x64, "CMP A,d", 3, mkALU(applyCMP, fetchDP))
	def(0x65, "CMP A,!a", 4, mkALU(applyCMP, fetchAbs))
	def(0x66, "CMP A,(X)", 3, mkALU(applyCMP, fetchIndX))
	def(0x67, "CMP A,[d+X]", 6, mkALU(applyCMP, fetchIndDPXPtr))
	def(0x68, "CMP A,#i", 2, mkALU(applyCMP, fetchImm))
	def(0x69, "CMP dd,ds", 5, mkALU2(apply2CMP, false))
	def(0x6A, "AND1 C,/m.b", 4, opAND1Not)
	def(0x6B, "ROR d", 4, mkShiftMem(rorFn, addrDPFn))
	def(0x6C, "ROR !a", 5, mkShiftMem(rorFn, addrAbsFn))
	def(0x6D, "PUSH Y", 4, opPUSHY)
	def(0x6E, "DBNZ d,r", 6, opDBNZDP)
	def(0x6F, "RET", 5, opRET)

	def(0x70, "BVS r", 2, mkBranch(flagV))
	def(0x71, "TCALL 7", 8, mkTCALL(7))
	def(0x72, "CLR1 d.3", 4, mkCLR1(3))
	def(0x73, "BBC d.3,r", 5, mkBBC(3))
	def(0x74, "CMP A,d+X", 4, mkALU(applyCMP, fetchDPX))
	def(0x75, "CMP A,!a+X", 5, mkALU(applyCMP, fetchAbsX))
	def(0x76, "CMP A,!a+Y", 5, mkALU(applyCMP, fetchAbsY))
	def(0x77, "CMP A,[d]+Y", 6, mkALU(applyCMP, fetchIndDPPtrY))
	def(0x78, "CMP d,#i", 5, mkALUDPImm(apply2CMP, false))
	def(0x79, "CMP (X),(Y)", 5, mkALUXY(apply2CMP, false))
	def(0x7A, "ADDW YA,d", 5, opADDWYAD)
	def(0x7B, "ROR d+X", 5, mkShiftMem(rorFn, addrDPXFn))
	def(0x7C, "ROR A", 2, mkShiftA(rorFn))
	def(0x7D, "MOV A,X", 2, opMOVAX)
	def(0x7E, "CMP Y,d", 3, mkALU(applyCMPY, fetchDP))
	def(0x7F, "RET1", 6, opRET1)

	def(0x80, "SETC", 2, opSETC)
	def(0x81, "TCALL 8", 8, mkTCALL(8))
	def(0x82, "SET1 d.4", 4, mkSET1(4))
	def(0x83, "BBS d.4,r", 5, mkBBS(4))
	def(0x84, "ADC A,d", 3, mkALU(applyADC, fetchDP))
	def(0x85, "ADC A,!a", 4, mkALU(applyADC, fetchAbs))
	def(0x86, "ADC A,(X)", 3, mkALU(applyADC, fetchIndX))
	def(0x87, "ADC A,[d+X]", 6, mkALU(applyADC, fetchIndDPXPtr))
	def(0x88, "ADC A,#i", 2, mkALU(applyADC, fetchImm))
	def(0x89, "ADC dd,ds", 6, mkALU2(apply2ADC, true))
	def(0x8A, "EOR1 C,m.b", 4, opEOR1)
	def(0x8B, "DEC d", 4, mkIncDecMem(-1, addrDPFn))
	def(0x8C, "DEC !a", 5, mkIncDecMem(-1, addrAbsFn))
	def(0x8D, "MOV Y,#i", 2, mkLoadY(fetchImm))
	def(0x8E, "POP PSW", 4, opPOPPSW)
	def(0x8F, "MOV d,#i", 5, opMOVImmToDP)

	def(0x90, "BCC r", 2, mkBranch(flagNotC))
	def(0x91, "TCALL 9", 8, mkTCALL(9))
	def(0x92, "CLR1 d.4", 4, mkCLR1(4))
	def(0x93, "BBC d.4,r", 5, mkBBC(4))
	def(0x94, "ADC A,d+X", 4, mkALU(applyADC, fetchDPX))
	def(0x95, "ADC A,!a+X", 5, mkALU(applyADC, fetchAbsX))
	def(0x96, "ADC A,!a+Y", 5, mkALU(applyADC, fetchAbsY))
	def(0x97, "ADC A,[d]+Y", 6, mkALU(applyADC, fetchIndDPPtrY))
	def(0x98, "ADC d,#i", 5, mkALUDPImm(apply2ADC, true))
	def(0x99, "ADC (X),(Y)", 5, mkALUXY(apply2ADC, true))
	def(0x9A, "SUBW YA,d", 5, opSUBWYAD)
	def(0x9B, "DEC d+X", 5, mkIncDecMem(-1, addrDPXFn))
	def(0x9C, "DEC A", 2, opDECA)
	def(0x9D, "MOV X,SP", 2, opMOVXSP)
	def(0x9E, "DIV YA,X", 12, opDIV)
	def(0x9F, "XCN A", 5, opXCN)

	def(0xA0, "EI", 3, opEI)
	def(0xA1, "TCALL 10", 8, mkTCALL(10))
	def(0xA2, "SET1 d.5", 4, mkSET1(5))
	def(0xA3, "BBS d.5,r", 5, mkBBS(5))
	def(0xA4, "SBC A,d", 3, mkALU(applySBC, fetchDP))
	def(0xA5, "SBC A,!a", 4, mkALU(applySBC, fetchAbs))
	def(0xA6, "SBC A,(X)", 3, mkALU(applySBC, fetchIndX))
	def(0xA7, "SBC A,[d+X]", 6, mkALU(applySBC, fetchIndDPXPtr))
	def(0xA8, "SBC A,#i", 2, mkALU(applySBC, fetchImm))
	def(0xA9, "SBC dd,ds", 6, mkALU2(apply2SBC, true))
	def(0xAA, "MOV1 C,m.b", 4, opMOV1CFromMem)
	def(0xAB, "INC d", 4, mkIncDecMem(1, addrDPFn))
	def(0xAC, "INC !a", 5, mkIncDecMem(1, addrAbsFn))
	def(0xAD, "CMP Y,#i", 2, mkALU(applyCMPY, fetchImm))
	def(0xAE, "POP A", 4, opPOPA)
	def(0xAF, "MOV (X)+,A", 4, opMOVIndXInc)

	def(0xB0, "BCS r", 2, mkBranch(flagC))
	def(0xB1, "TCALL 11", 8, mkTCALL(11))
	def(0xB2, "CLR1 d.5", 4, mkCLR1(5))
	def(0xB3, "BBC d.5,r", 5, mkBBC(5))
	def(0xB4, "SBC A,d+X", 4, mkALU(applySBC, fetchDPX))
	def(0xB5, "SBC A,!a+X", 5, mkALU(applySBC, fetchAbsX))
	def(0xB6, "SBC A,!a+Y", 5, mkALU(applySBC, fetchAbsY))
	def(0xB7, "SBC A,[d]+Y", 6, mkALU(applySBC, fetchIndDPPtrY))
	def(0xB8, "SBC d,#i", 5, mkALUDPImm(apply2SBC, true))
	def(0xB9, "SBC (X),(Y)", 5, mkALUXY(apply2SBC, true))
	def(0xBA, "MOVW YA,d", 5, opMOVWYAD)
	def(0xBB, "INC d+X", 5, mkIncDecMem(1, addrDPXFn))
	def(0xBC, "INC A", 2, opINCA)
	def(0xBD, "MOV SP,X", 2, opMOVSPX)
	def(0xBE, "DAS A", 3, opDAS)
	def(0xBF, "MOV A,(X)+", 4, opMOVAIndXInc)

	def(0xC0, "DI", 3, opDI)
	def(0xC1, "TCALL 12", 8, mkTCALL(12))
	def(0xC2, "SET1 d.6", 4, mkSET1(6))
	def(0xC3, "BBS d.6,r", 5, mkBBS(6))
	def(0xC4, "MOV d,A", 4, mkStore(regA, addrDPFn))
	def(0xC5, "MOV !a,A", 5, mkStore(regA, addrAbsFn))
	def(0xC6, "MOV (X),A", 4, mkStore(regA, addrIndXFn))
	def(0xC7, "MOV [d+X],A", 7, mkStore(regA, addrIndDPXPtrFn))
	def(0xC8, "CMP X,#i", 2, mkALU(applyCMPX, fetchImm))
	def(0xC9, "MOV !a,X", 5, mkStore(regX, addrAbsFn))
	def(0xCA, "MOV1 m.b,C", 6, opMOV1MemFromC)
	def(0xCB, "MOV d,Y", 4, mkStore(regY, addrDPFn))
	def(0xCC, "MOV !a,Y", 5, mkStore(regY, addrAbsFn))
	def(0xCD, "MOV X,#i", 2, mkLoadX(fetchImm))
	def(0xCE, "POP X", 4, opPOPX)
	def(0xCF, "MUL YA", 9, opMUL)

	def(0xD0, "BNE r", 2, mkBranch(flagNotZ))
	def(0xD1, "TCALL 13", 8, mkTCALL(13))
	def(0xD2, "CLR1 d.6", 4, mkCLR1(6))
	def(0xD3, "BBC d.6,r", 5, mkBBC(6))
	def(0xD4, "MOV d+X,A", 5, mkStore(regA, addrDPXFn))
	def(0xD5, "MOV !a+X,A", 6, mkStore(regA, addrAbsXFn))
	def(0xD6, "MOV !a+Y,A", 6, mkStore(regA, addrAbsYFn))
	def(0xD7, "MOV [d]+Y,A", 7, mkStore(regA, addrIndDPPtrYFn))
	def(0xD8, "MOV d,X", 4, mkStore(regX, addrDPFn))
	def(0xD9, "MOV d+Y,X", 5, mkStore(regX, addrDPYFn))
	def(0xDA, "MOVW d,YA", 5, opMOVWDYA)
	def(0xDB, "MOV d+X,Y", 5, mkStore(regY, addrDPXFn))
	def(0xDC, "DEC Y", 2, opDECY)
	def(0xDD, "MOV A,Y", 2, opMOVAY)
	def(0xDE, "CBNE d+X,r", 6, opCBNEX)
	def(0xDF, "DAA A", 3, opDAA)

	def(0xE0, "CLRV", 2, opCLRV)
	def(0xE1, "TCALL 14", 8, mkTCALL(14))
	def(0xE2, "SET1 d.7", 4, mkSET1(7))
	def(0xE3, "BBS d.7,r", 5, mkBBS(7))
	def(0xE4, "MOV A,d", 3, mkLoadA(fetchDP))
	def(0xE5, "MOV A,!a", 4, mkLoadA(fetchAbs))
	def(0xE6, "MOV A,(X)", 3, mkLoadA(fetchIndX))
	def(0xE7, "MOV A,[d+X]", 6, mkLoadA(fetchIndDPXPtr))
	def(0xE8, "MOV A,#i", 2, mkLoadA(fetchImm))
	def(0xE9, "MOV X,!a", 4, mkLoadX(fetchAbs))
	def(0xEA, "NOT1 m.b", 5, opNOT1)
	def(0xEB, "MOV Y,d", 3, mkLoadY(fetchDP))
	def(0xEC, "MOV Y,!a", 4, mkLoadY(fetchAbs))
	def(0xED, "NOTC", 3, opNOTC)
	def(0xEE, "POP Y", 4, opPOPY)
	def(0xEF, "SLEEP", 3, opSLEEP)

	def(0xF0, "BEQ r", 2, mkBranch(flagZ))
	def(0xF1, "TCALL 15", 8, mkTCALL(15))
	def(0xF2, "CLR1 d.7", 4, mkCLR1(7))
	def(0xF3, "BBC d.7,r", 5, mkBBC(7))
	def(0xF4, "MOV A,d+X", 4, mkLoadA(fetchDPX))
	def(0xF5, "MOV A,!a+X", 5, mkLoadA(fetchAbsX))
	def(0xF6, "MOV A,!a+Y", 5, mkLoadA(fetchAbsY))
	def(0xF7, "MOV A,[d]+Y", 6, mkLoadA(fetchIndDPPtrY))
	def(0xF8, "MOV X,d", 3, mkLoadX(fetchDP))
	def(0xF9, "MOV X,d+Y", 4, mkLoadX(fetchDPY))
	def(0xFA, "MOV d,d", 5, opMOVDirDir)
	def(0xFB, "MOV Y,d+X", 4, mkLoadY(fetchDPX))
	def(0xFC, "INC Y", 2, opINCY)
	def(0xFD, "MOV Y,A", 2, opMOVYA)
	def(0xFE, "DBNZ Y,r", 4, opDBNZY)
	def(0xFF, "STOP", 2, opSTOP)
}
