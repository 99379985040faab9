package spc700

func b2u8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

func addOverflow8(a, b, result uint8) bool {
	return (a^result)&(b^result)&0x80 != 0
}

// --- operand fetch helpers: value-returning forms for ALU reads ---

func fetchImm(c *CPU) uint8        { return c.fetch8() }
func fetchDP(c *CPU) uint8         { return c.bus.Read8(c.addrDP()) }
func fetchDPX(c *CPU) uint8        { return c.bus.Read8(c.addrDPX()) }
func fetchAbs(c *CPU) uint8        { return c.bus.Read8(c.addrAbs()) }
func fetchAbsX(c *CPU) uint8       { return c.bus.Read8(c.addrAbsX()) }
func fetchAbsY(c *CPU) uint8       { return c.bus.Read8(c.addrAbsY()) }
func fetchIndX(c *CPU) uint8       { return c.bus.Read8(c.dpAddr(c.X)) }
func fetchIndDPXPtr(c *CPU) uint8  { return c.bus.Read8(c.addrIndDPXPtr()) }
func fetchIndDPPtrY(c *CPU) uint8  { return c.bus.Read8(c.addrIndDPPtrY()) }
func fetchDPY(c *CPU) uint8        { return c.bus.Read8(c.addrDPY()) }

// --- operand address helpers: address-returning forms for stores/RMW ---

func (c *CPU) addrDP() uint16 {
	dd := c.fetch8()
	return c.dpAddr(dd)
}
func (c *CPU) addrDPX() uint16 {
	dd := c.fetch8()
	return c.dpIndexed(dd, c.X)
}
func (c *CPU) addrDPY() uint16 {
	dd := c.fetch8()
	return c.dpIndexed(dd, c.Y)
}
func (c *CPU) addrAbs() uint16  { return c.fetch16() }
func (c *CPU) addrAbsX() uint16 { return c.fetch16() + uint16(c.X) }
func (c *CPU) addrAbsY() uint16 { return c.fetch16() + uint16(c.Y) }
func (c *CPU) addrIndDPXPtr() uint16 {
	dd := c.fetch8()
	return c.dpWord(dd + c.X)
}
func (c *CPU) addrIndDPPtrY() uint16 {
	dd := c.fetch8()
	return c.dpWord(dd) + uint16(c.Y)
}

// free-function wrappers so the address helpers can be passed as
// func(*CPU) uint16 values into the mk* combinators below.
func addrDPFn(c *CPU) uint16         { return c.addrDP() }
func addrDPXFn(c *CPU) uint16        { return c.addrDPX() }
func addrDPYFn(c *CPU) uint16        { return c.addrDPY() }
func addrAbsFn(c *CPU) uint16        { return c.addrAbs() }
func addrAbsXFn(c *CPU) uint16       { return c.addrAbsX() }
func addrAbsYFn(c *CPU) uint16       { return c.addrAbsY() }
func addrIndXFn(c *CPU) uint16       { return c.dpAddr(c.X) }
func addrIndYFn(c *CPU) uint16       { return c.dpAddr(c.Y) }
func addrIndDPXPtrFn(c *CPU) uint16  { return c.addrIndDPXPtr() }
func addrIndDPPtrYFn(c *CPU) uint16  { return c.addrIndDPPtrY() }

// --- binary ALU core (register-agnostic so dd,ds forms can reuse it) ---

func (c *CPU) adcValue(a, v uint8) uint8 {
	carryIn := b2u8(c.Status.C)
	sum := uint16(a) + uint16(v) + uint16(carryIn)
	result := uint8(sum)
	c.Status.H = (a&0xF)+(v&0xF)+carryIn > 0xF
	c.Status.C = sum > 0xFF
	c.Status.V = addOverflow8(a, v, result)
	c.Status.setNZ(result)
	return result
}

func (c *CPU) sbcValue(a, v uint8) uint8 { return c.adcValue(a, ^v) }

func (c *CPU) adcA(v uint8) { c.A = c.adcValue(c.A, v) }
func (c *CPU) sbcA(v uint8) { c.A = c.sbcValue(c.A, v) }

func (c *CPU) cmpGeneric(reg, v uint8) {
	c.Status.C = reg >= v
	diff := reg - v
	c.Status.setNZ(diff)
}

func applyOR(c *CPU, v uint8)  { c.A |= v; c.Status.setNZ(c.A) }
func applyAND(c *CPU, v uint8) { c.A &= v; c.Status.setNZ(c.A) }
func applyEOR(c *CPU, v uint8) { c.A ^= v; c.Status.setNZ(c.A) }
func applyADC(c *CPU, v uint8) { c.adcA(v) }
func applySBC(c *CPU, v uint8) { c.sbcA(v) }
func applyCMP(c *CPU, v uint8)  { c.cmpGeneric(c.A, v) }
func applyCMPX(c *CPU, v uint8) { c.cmpGeneric(c.X, v) }
func applyCMPY(c *CPU, v uint8) { c.cmpGeneric(c.Y, v) }

func mkALU(apply func(c *CPU, v uint8), fetch func(c *CPU) uint8) func(c *CPU) uint64 {
	return func(c *CPU) uint64 {
		apply(c, fetch(c))
		return 0
	}
}

// --- dd,ds and (X),(Y) two-operand direct-page forms ---

func apply2OR(c *CPU, dst, src uint8) uint8  { r := dst | src; c.Status.setNZ(r); return r }
func apply2AND(c *CPU, dst, src uint8) uint8 { r := dst & src; c.Status.setNZ(r); return r }
func apply2EOR(c *CPU, dst, src uint8) uint8 { r := dst ^ src; c.Status.setNZ(r); return r }
func apply2ADC(c *CPU, dst, src uint8) uint8 { return c.adcValue(dst, src) }
func apply2SBC(c *CPU, dst, src uint8) uint8 { return c.sbcValue(dst, src) }
func apply2CMP(c *CPU, dst, src uint8) uint8 { c.cmpGeneric(dst, src); return dst }

func mkALU2(apply func(c *CPU, dst, src uint8) uint8, writesBack bool) func(c *CPU) uint64 {
	return func(c *CPU) uint64 {
		srcAddrByte := c.fetch8()
		dstAddrByte := c.fetch8()
		srcAddr := c.dpAddr(srcAddrByte)
		dstAddr := c.dpAddr(dstAddrByte)
		src := c.bus.Read8(srcAddr)
		dst := c.bus.Read8(dstAddr)
		result := apply(c, dst, src)
		if writesBack {
			c.bus.Write8(dstAddr, result)
		}
		return 0
	}
}

// mkALUDPImm implements the "op d,#i" family: the immediate operand is
// encoded before the direct-page address byte.
func mkALUDPImm(apply func(c *CPU, dst, src uint8) uint8, writesBack bool) func(c *CPU) uint64 {
	return func(c *CPU) uint64 {
		imm := c.fetch8()
		dd := c.fetch8()
		addr := c.dpAddr(dd)
		dst := c.bus.Read8(addr)
		result := apply(c, dst, imm)
		if writesBack {
			c.bus.Write8(addr, result)
		}
		return 0
	}
}

func opMOVImmToDP(c *CPU) uint64 {
	imm := c.fetch8()
	dd := c.fetch8()
	c.bus.Write8(c.dpAddr(dd), imm)
	return 0
}

func mkALUXY(apply func(c *CPU, dst, src uint8) uint8, writesBack bool) func(c *CPU) uint64 {
	return func(c *CPU) uint64 {
		srcAddr := c.dpAddr(c.Y)
		dstAddr := c.dpAddr(c.X)
		src := c.bus.Read8(srcAddr)
		dst := c.bus.Read8(dstAddr)
		result := apply(c, dst, src)
		if writesBack {
			c.bus.Write8(dstAddr, result)
		}
		return 0
	}
}

// --- shifts/rotates ---

func aslFn(c *CPU, v uint8) (uint8, bool) { return v << 1, v&0x80 != 0 }
func lsrFn(c *CPU, v uint8) (uint8, bool) { return v >> 1, v&1 != 0 }
func rolFn(c *CPU, v uint8) (uint8, bool) {
	out := v&0x80 != 0
	r := v << 1
	if c.Status.C {
		r |= 1
	}
	return r, out
}
func rorFn(c *CPU, v uint8) (uint8, bool) {
	out := v&1 != 0
	r := v >> 1
	if c.Status.C {
		r |= 0x80
	}
	return r, out
}

func mkShiftA(fn func(c *CPU, v uint8) (uint8, bool)) func(c *CPU) uint64 {
	return func(c *CPU) uint64 {
		r, carry := fn(c, c.A)
		c.A = r
		c.Status.C = carry
		c.Status.setNZ(r)
		return 0
	}
}

func mkShiftMem(fn func(c *CPU, v uint8) (uint8, bool), addrFn func(c *CPU) uint16) func(c *CPU) uint64 {
	return func(c *CPU) uint64 {
		addr := addrFn(c)
		v := c.bus.Read8(addr)
		r, carry := fn(c, v)
		c.Status.C = carry
		c.Status.setNZ(r)
		c.bus.Write8(addr, r)
		return 0
	}
}

// --- inc/dec ---

func mkIncDecMem(delta int8, addrFn func(c *CPU) uint16) func(c *CPU) uint64 {
	return func(c *CPU) uint64 {
		addr := addrFn(c)
		v := uint8(int8(c.bus.Read8(addr)) + delta)
		c.Status.setNZ(v)
		c.bus.Write8(addr, v)
		return 0
	}
}

func opINCA(c *CPU) uint64 { c.A = uint8(int8(c.A) + 1); c.Status.setNZ(c.A); return 0 }
func opDECA(c *CPU) uint64 { c.A = uint8(int8(c.A) - 1); c.Status.setNZ(c.A); return 0 }
func opINCX(c *CPU) uint64 { c.X = uint8(int8(c.X) + 1); c.Status.setNZ(c.X); return 0 }
func opDECX(c *CPU) uint64 { c.X = uint8(int8(c.X) - 1); c.Status.setNZ(c.X); return 0 }
func opINCY(c *CPU) uint64 { c.Y = uint8(int8(c.Y) + 1); c.Status.setNZ(c.Y); return 0 }
func opDECY(c *CPU) uint64 { c.Y = uint8(int8(c.Y) - 1); c.Status.setNZ(c.Y); return 0 }

// --- MOV loads (affect N,Z) and stores (do not) ---

func mkLoadA(fetch func(c *CPU) uint8) func(c *CPU) uint64 {
	return func(c *CPU) uint64 { c.A = fetch(c); c.Status.setNZ(c.A); return 0 }
}
func mkLoadX(fetch func(c *CPU) uint8) func(c *CPU) uint64 {
	return func(c *CPU) uint64 { c.X = fetch(c); c.Status.setNZ(c.X); return 0 }
}
func mkLoadY(fetch func(c *CPU) uint8) func(c *CPU) uint64 {
	return func(c *CPU) uint64 { c.Y = fetch(c); c.Status.setNZ(c.Y); return 0 }
}

func mkStore(reg func(c *CPU) uint8, addrFn func(c *CPU) uint16) func(c *CPU) uint64 {
	return func(c *CPU) uint64 { c.bus.Write8(addrFn(c), reg(c)); return 0 }
}

func regA(c *CPU) uint8 { return c.A }
func regX(c *CPU) uint8 { return c.X }
func regY(c *CPU) uint8 { return c.Y }

func opMOVIndXInc(c *CPU) uint64 { // MOV (X)+,A
	c.bus.Write8(c.dpAddr(c.X), c.A)
	c.X++
	return 0
}

func opMOVAIndXInc(c *CPU) uint64 { // MOV A,(X)+
	c.A = c.bus.Read8(c.dpAddr(c.X))
	c.Status.setNZ(c.A)
	c.X++
	return 0
}

func opMOVDirDir(c *CPU) uint64 { // MOV dd,ds — direct to direct, flags unaffected
	src := c.fetch8()
	dst := c.fetch8()
	v := c.bus.Read8(c.dpAddr(src))
	c.bus.Write8(c.dpAddr(dst), v)
	return 0
}

func opMOVXA(c *CPU) uint64 { c.X = c.A; c.Status.setNZ(c.X); return 0 }
func opMOVAX(c *CPU) uint64 { c.A = c.X; c.Status.setNZ(c.A); return 0 }
func opMOVYA(c *CPU) uint64 { c.Y = c.A; c.Status.setNZ(c.Y); return 0 }
func opMOVAY(c *CPU) uint64 { c.A = c.Y; c.Status.setNZ(c.A); return 0 }
func opMOVXSP(c *CPU) uint64 { c.X = c.SP; c.Status.setNZ(c.X); return 0 }
func opMOVSPX(c *CPU) uint64 { c.SP = c.X; return 0 } // flags unaffected

// --- word operations on YA ---

func opMOVWYAD(c *CPU) uint64 {
	dd := c.fetch8()
	v := c.dpWord(dd)
	c.setYA(v)
	c.Status.N = v&0x8000 != 0
	c.Status.Z = v == 0
	return 0
}

func opMOVWDYA(c *CPU) uint64 {
	dd := c.fetch8()
	v := c.YA()
	c.bus.Write8(c.dpAddr(dd), uint8(v))
	c.bus.Write8(c.dpAddr(dd+1), uint8(v>>8))
	return 0
}

func opADDWYAD(c *CPU) uint64 {
	dd := c.fetch8()
	operand := c.dpWord(dd)
	ya := c.YA()
	sum := uint32(ya) + uint32(operand)
	result := uint16(sum)
	c.Status.H = (ya&0x0FFF)+(operand&0x0FFF) > 0x0FFF
	c.Status.C = sum > 0xFFFF
	c.Status.V = (ya^result)&(operand^result)&0x8000 != 0
	c.Status.N = result&0x8000 != 0
	c.Status.Z = result == 0
	c.setYA(result)
	return 0
}

func opSUBWYAD(c *CPU) uint64 {
	dd := c.fetch8()
	operand := c.dpWord(dd)
	ya := c.YA()
	diff := int32(ya) - int32(operand)
	result := uint16(diff)
	c.Status.H = int32(ya&0x0FFF)-int32(operand&0x0FFF) < 0
	c.Status.C = diff >= 0
	c.Status.V = (ya^operand)&(ya^result)&0x8000 != 0
	c.Status.N = result&0x8000 != 0
	c.Status.Z = result == 0
	c.setYA(result)
	return 0
}

func opCMPWYAD(c *CPU) uint64 {
	dd := c.fetch8()
	operand := c.dpWord(dd)
	ya := c.YA()
	diff := ya - operand
	c.Status.C = ya >= operand
	c.Status.N = diff&0x8000 != 0
	c.Status.Z = diff == 0
	return 0
}

func opINCW(c *CPU) uint64 { return incDecW(c, 1) }
func opDECW(c *CPU) uint64 { return incDecW(c, -1) }

func incDecW(c *CPU, delta int32) uint64 {
	dd := c.fetch8()
	v := c.dpWord(dd)
	v = uint16(int32(v) + delta)
	c.bus.Write8(c.dpAddr(dd), uint8(v))
	c.bus.Write8(c.dpAddr(dd+1), uint8(v>>8))
	c.Status.N = v&0x8000 != 0
	c.Status.Z = v == 0
	return 0
}

func opMUL(c *CPU) uint64 {
	result := uint16(c.Y) * uint16(c.A)
	c.setYA(result)
	c.Status.setNZ(c.Y)
	return 0
}

// opDIV implements the flag quirks documented for DIV YA,X verbatim:
// V set when the quotient overflows a byte, H from a low-nibble compare.
func opDIV(c *CPU) uint64 {
	ya := c.YA()
	x := c.X
	c.Status.H = (c.Y & 0x0F) >= (x & 0x0F)
	if x == 0 {
		c.Status.V = true
		c.A = 0xFF
		c.Y = uint8(ya >> 8)
	} else {
		quotient := ya / uint16(x)
		remainder := ya % uint16(x)
		c.Status.V = quotient > 0xFF
		c.A = uint8(quotient)
		c.Y = uint8(remainder)
	}
	c.Status.setNZ(c.A)
	return 0
}

func opDAA(c *CPU) uint64 {
	if c.Status.C || c.A > 0x99 {
		c.A += 0x60
		c.Status.C = true
	}
	if c.Status.H || c.A&0x0F > 0x09 {
		c.A += 0x06
	}
	c.Status.setNZ(c.A)
	return 0
}

func opDAS(c *CPU) uint64 {
	if !c.Status.C || c.A > 0x99 {
		c.A -= 0x60
		c.Status.C = false
	} else {
		c.Status.C = true
	}
	if !c.Status.H || c.A&0x0F > 0x09 {
		c.A -= 0x06
	}
	c.Status.setNZ(c.A)
	return 0
}

func opXCN(c *CPU) uint64 {
	c.A = c.A<<4 | c.A>>4
	c.Status.setNZ(c.A)
	return 0
}

// --- single-bit ops on direct-page memory ---

func mkSET1(bit uint8) func(c *CPU) uint64 {
	return func(c *CPU) uint64 {
		dd := c.fetch8()
		addr := c.dpAddr(dd)
		v := c.bus.Read8(addr) | (1 << bit)
		c.bus.Write8(addr, v)
		return 0
	}
}

func mkCLR1(bit uint8) func(c *CPU) uint64 {
	return func(c *CPU) uint64 {
		dd := c.fetch8()
		addr := c.dpAddr(dd)
		v := c.bus.Read8(addr) &^ (1 << bit)
		c.bus.Write8(addr, v)
		return 0
	}
}

func opTSET1(c *CPU) uint64 {
	addr := c.fetch16()
	v := c.bus.Read8(addr)
	diff := c.A - v
	c.Status.Z = diff == 0
	c.Status.N = diff&0x80 != 0
	c.bus.Write8(addr, v|c.A)
	return 0
}

func opTCLR1(c *CPU) uint64 {
	addr := c.fetch16()
	v := c.bus.Read8(addr)
	diff := c.A - v
	c.Status.Z = diff == 0
	c.Status.N = diff&0x80 != 0
	c.bus.Write8(addr, v&^c.A)
	return 0
}

func (c *CPU) fetchBitOperand() (addr uint16, bit uint8) {
	op := c.fetch16()
	return op & 0x1FFF, uint8(op>>13) & 0x7
}

func (c *CPU) memBit(addr uint16, bit uint8) bool {
	return c.bus.Read8(addr)&(1<<bit) != 0
}

func (c *CPU) setMemBit(addr uint16, bit uint8, val bool) {
	v := c.bus.Read8(addr)
	if val {
		v |= 1 << bit
	} else {
		v &^= 1 << bit
	}
	c.bus.Write8(addr, v)
}

func opAND1(c *CPU) uint64 {
	addr, bit := c.fetchBitOperand()
	c.Status.C = c.Status.C && c.memBit(addr, bit)
	return 0
}

func opAND1Not(c *CPU) uint64 {
	addr, bit := c.fetchBitOperand()
	c.Status.C = c.Status.C && !c.memBit(addr, bit)
	return 0
}

func opOR1(c *CPU) uint64 {
	addr, bit := c.fetchBitOperand()
	c.Status.C = c.Status.C || c.memBit(addr, bit)
	return 0
}

func opOR1Not(c *CPU) uint64 {
	addr, bit := c.fetchBitOperand()
	c.Status.C = c.Status.C || !c.memBit(addr, bit)
	return 0
}

func opEOR1(c *CPU) uint64 {
	addr, bit := c.fetchBitOperand()
	c.Status.C = c.Status.C != c.memBit(addr, bit)
	return 0
}

func opNOT1(c *CPU) uint64 {
	addr, bit := c.fetchBitOperand()
	c.setMemBit(addr, bit, !c.memBit(addr, bit))
	return 0
}

func opMOV1CFromMem(c *CPU) uint64 {
	addr, bit := c.fetchBitOperand()
	c.Status.C = c.memBit(addr, bit)
	return 0
}

func opMOV1MemFromC(c *CPU) uint64 {
	addr, bit := c.fetchBitOperand()
	c.setMemBit(addr, bit, c.Status.C)
	return 0
}

// --- branches, compare-and-branch ---

func (c *CPU) relBranch(taken bool) uint64 {
	rel := int8(c.fetch8())
	if !taken {
		return 0
	}
	c.PC = uint16(int32(c.PC) + int32(rel))
	return 2
}

func mkBranch(pred func(c *CPU) bool) func(c *CPU) uint64 {
	return func(c *CPU) uint64 { return c.relBranch(pred(c)) }
}

func opBRA(c *CPU) uint64 { return c.relBranch(true) }

func mkBBS(bit uint8) func(c *CPU) uint64 {
	return func(c *CPU) uint64 {
		dd := c.fetch8()
		v := c.bus.Read8(c.dpAddr(dd))
		return c.relBranch(v&(1<<bit) != 0)
	}
}

func mkBBC(bit uint8) func(c *CPU) uint64 {
	return func(c *CPU) uint64 {
		dd := c.fetch8()
		v := c.bus.Read8(c.dpAddr(dd))
		return c.relBranch(v&(1<<bit) == 0)
	}
}

func opCBNE(c *CPU) uint64 {
	dd := c.fetch8()
	v := c.bus.Read8(c.dpAddr(dd))
	return c.relBranch(c.A != v)
}

func opCBNEX(c *CPU) uint64 {
	dd := c.fetch8()
	v := c.bus.Read8(c.dpIndexed(dd, c.X))
	return c.relBranch(c.A != v)
}

func opDBNZDP(c *CPU) uint64 {
	dd := c.fetch8()
	addr := c.dpAddr(dd)
	v := c.bus.Read8(addr) - 1
	c.bus.Write8(addr, v)
	return c.relBranch(v != 0)
}

func opDBNZY(c *CPU) uint64 {
	c.Y--
	return c.relBranch(c.Y != 0)
}

// --- jumps, calls, returns ---

func opJMPAbs(c *CPU) uint64 {
	c.PC = c.fetch16()
	return 0
}

func opJMPAbsXInd(c *CPU) uint64 {
	base := c.fetch16()
	ptr := base + uint16(c.X)
	lo := c.bus.Read8(ptr)
	hi := c.bus.Read8(ptr + 1)
	c.PC = uint16(hi)<<8 | uint16(lo)
	return 0
}

func opCALL(c *CPU) uint64 {
	target := c.fetch16()
	c.pushWord(c.PC)
	c.PC = target
	return 0
}

func opPCALL(c *CPU) uint64 {
	u := c.fetch8()
	c.pushWord(c.PC)
	c.PC = 0xFF00 | uint16(u)
	return 0
}

func tcallVector(n uint8) uint16 { return 0xFFDE - 2*uint16(n) }

func mkTCALL(n uint8) func(c *CPU) uint64 {
	return func(c *CPU) uint64 {
		c.pushWord(c.PC)
		lo := c.bus.Read8(tcallVector(n))
		hi := c.bus.Read8(tcallVector(n) + 1)
		c.PC = uint16(hi)<<8 | uint16(lo)
		return 0
	}
}

func opRET(c *CPU) uint64 {
	c.PC = c.popWord()
	return 0
}

func opRET1(c *CPU) uint64 {
	c.Status.SetValue(c.pop())
	c.PC = c.popWord()
	return 0
}

func opBRK(c *CPU) uint64 {
	c.pushWord(c.PC)
	c.push(c.Status.Value())
	c.Status.I = true
	c.Status.B = true
	lo := c.bus.Read8(0xFFDE)
	hi := c.bus.Read8(0xFFDF)
	c.PC = uint16(hi)<<8 | uint16(lo)
	return 0
}

// --- stack, flags, misc ---

func opPUSHA(c *CPU) uint64 { c.push(c.A); return 0 }
func opPUSHX(c *CPU) uint64 { c.push(c.X); return 0 }
func opPUSHY(c *CPU) uint64 { c.push(c.Y); return 0 }
func opPUSHPSW(c *CPU) uint64 { c.push(c.Status.Value()); return 0 }

func opPOPA(c *CPU) uint64 { c.A = c.pop(); return 0 }
func opPOPX(c *CPU) uint64 { c.X = c.pop(); return 0 }
func opPOPY(c *CPU) uint64 { c.Y = c.pop(); return 0 }
func opPOPPSW(c *CPU) uint64 { c.Status.SetValue(c.pop()); return 0 }

func opCLRC(c *CPU) uint64 { c.Status.C = false; return 0 }
func opSETC(c *CPU) uint64 { c.Status.C = true; return 0 }
func opNOTC(c *CPU) uint64 { c.Status.C = !c.Status.C; return 0 }
func opCLRV(c *CPU) uint64 { c.Status.V = false; c.Status.H = false; return 0 }
func opCLRP(c *CPU) uint64 { c.Status.P = false; return 0 }
func opSETP(c *CPU) uint64 { c.Status.P = true; return 0 }
func opEI(c *CPU) uint64   { c.Status.I = true; return 0 }
func opDI(c *CPU) uint64   { c.Status.I = false; return 0 }
func opNOP(c *CPU) uint64  { return 0 }
func opSLEEP(c *CPU) uint64 { c.sleep(); return 0 }
func opSTOP(c *CPU) uint64  { c.stop(); return 0 }
