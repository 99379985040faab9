package cpu65816

import "gones65/internal/bus"

// resolveEA computes the effective address for mode against live CPU
// state, advancing the real PC past the operand bytes it consumes.
func (c *CPU) resolveEA(mode AddressingMode) (uint32, bus.WrappingMode, error) {
	ctx := c.effectCtx()
	addr, wrap, err := resolveAddress(ctx, mode)
	c.PC = ctx.PC
	return addr, wrap, err
}

func (c *CPU) directPageExtra(mode AddressingMode) uint64 {
	switch mode {
	case ModeDirect, ModeDirectX, ModeDirectY, ModeDirectIndirect,
		ModeDirectIndirectX, ModeDirectIndirectY, ModeDirectIndirectLong,
		ModeDirectIndirectLongY:
		if c.D&0xFF != 0 {
			return 1
		}
	}
	return 0
}

func pageCrossed(base, effective uint32) bool {
	return base&0xFF00 != effective&0xFF00
}

// load8/load16 read an operand by addressing mode, handling the
// immediate forms by fetching inline rather than resolving an address.
func (c *CPU) load8(mode AddressingMode) (uint8, uint64, error) {
	if mode == ModeImmediateM || mode == ModeImmediateX || mode == ModeImmediate8 {
		v, err := c.fetch8()
		return v, 0, err
	}
	addr, _, err := c.resolveEA(mode)
	if err != nil {
		return 0, 0, err
	}
	v, err := c.bus.Read8(addr)
	return v, c.directPageExtra(mode), err
}

func (c *CPU) load16(mode AddressingMode) (uint16, uint64, error) {
	if mode == ModeImmediateM || mode == ModeImmediateX {
		v, err := c.fetch16()
		return v, 1, err
	}
	addr, wrap, err := c.resolveEA(mode)
	if err != nil {
		return 0, 0, err
	}
	v, err := c.bus.Read16(addr, wrap)
	return v, 1 + c.directPageExtra(mode), err
}

func (c *CPU) store8(mode AddressingMode, v uint8) (uint64, error) {
	addr, _, err := c.resolveEA(mode)
	if err != nil {
		return 0, err
	}
	return c.directPageExtra(mode), c.bus.Write8(addr, v)
}

func (c *CPU) store16(mode AddressingMode, v uint16) (uint64, error) {
	addr, wrap, err := c.resolveEA(mode)
	if err != nil {
		return 0, err
	}
	return 1 + c.directPageExtra(mode), c.bus.Write16(addr, v, wrap)
}

func b2u16(b bool) uint16 {
	if b {
		return 1
	}
	return 0
}

func addOverflow8(a, b, result uint8) bool {
	return (a^result)&(b^result)&0x80 != 0
}

func addOverflow16(a, b, result uint16) bool {
	return (a^result)&(b^result)&0x8000 != 0
}

// byteBCDAdd implements the documented NMOS decimal-mode add algorithm:
// nibble-correct the low nibble, form an uncorrected "pre" byte used for
// the binary-view overflow flag, then apply the final >99 correction.
func byteBCDAdd(a, b uint8, carryIn bool) (result uint8, pre uint8, carryOut bool) {
	var c uint8
	if carryIn {
		c = 1
	}
	al := (a & 0x0F) + (b & 0x0F) + c
	if al > 9 {
		al = ((al + 6) & 0x0F) + 0x10
	}
	preFull := uint16(a&0xF0) + uint16(b&0xF0) + uint16(al)
	pre = uint8(preFull)
	res := preFull
	if res > 0x99 {
		carryOut = true
		res += 0x60
	}
	result = uint8(res)
	return
}

func byteBCDSub(a, b uint8, carryIn bool) (result uint8, pre uint8, carryOut bool) {
	c := 0
	if carryIn {
		c = 1
	}
	al := int(a&0x0F) - int(b&0x0F) + c - 1
	if al < 0 {
		al = ((al - 6) & 0x0F) - 0x10
	}
	preFull := int(a&0xF0) - int(b&0xF0) + al
	pre = uint8(preFull)
	res := preFull
	if res < 0 {
		res -= 0x60
	}
	carryOut = res >= 0
	result = uint8(res)
	return
}

func (c *CPU) adc8(operand uint8) {
	a := uint8(c.A)
	carryIn := c.Status.C
	var result, pre uint8
	var carryOut bool
	if c.Status.D {
		result, pre, carryOut = byteBCDAdd(a, operand, carryIn)
	} else {
		sum := uint16(a) + uint16(operand) + b2u16(carryIn)
		result = uint8(sum)
		pre = result
		carryOut = sum > 0xFF
	}
	c.Status.V = addOverflow8(a, operand, pre)
	c.Status.C = carryOut
	c.Status.SetNZ8(result)
	c.A = c.A&0xFF00 | uint16(result)
}

func (c *CPU) adc16(operand uint16) {
	a := c.A
	carryIn := c.Status.C
	var result, pre uint16
	var carryOut bool
	if c.Status.D {
		loRes, loPre, mid := byteBCDAdd(uint8(a), uint8(operand), carryIn)
		hiRes, hiPre, carryOut2 := byteBCDAdd(uint8(a>>8), uint8(operand>>8), mid)
		result = uint16(hiRes)<<8 | uint16(loRes)
		pre = uint16(hiPre)<<8 | uint16(loPre)
		carryOut = carryOut2
	} else {
		sum := uint32(a) + uint32(operand) + uint32(b2u16(carryIn))
		result = uint16(sum)
		pre = result
		carryOut = sum > 0xFFFF
	}
	c.Status.V = addOverflow16(a, operand, pre)
	c.Status.C = carryOut
	c.Status.SetNZ16(result)
	c.A = result
}

func (c *CPU) sbc8(operand uint8) {
	a := uint8(c.A)
	carryIn := c.Status.C
	var result, pre uint8
	var carryOut bool
	if c.Status.D {
		result, pre, carryOut = byteBCDSub(a, operand, carryIn)
	} else {
		diff := int(a) - int(operand) - (1 - int(b2u16(carryIn)))
		result = uint8(diff)
		pre = result
		carryOut = diff >= 0
	}
	c.Status.V = (a^operand)&(a^pre)&0x80 != 0
	c.Status.C = carryOut
	c.Status.SetNZ8(result)
	c.A = c.A&0xFF00 | uint16(result)
}

func (c *CPU) sbc16(operand uint16) {
	a := c.A
	carryIn := c.Status.C
	var result, pre uint16
	var carryOut bool
	if c.Status.D {
		loRes, loPre, mid := byteBCDSub(uint8(a), uint8(operand), carryIn)
		hiRes, hiPre, carryOut2 := byteBCDSub(uint8(a>>8), uint8(operand>>8), mid)
		result = uint16(hiRes)<<8 | uint16(loRes)
		pre = uint16(hiPre)<<8 | uint16(loPre)
		carryOut = carryOut2
	} else {
		diff := int32(a) - int32(operand) - int32(1-b2u16(carryIn))
		result = uint16(diff)
		pre = result
		carryOut = diff >= 0
	}
	c.Status.V = (a^operand)&(a^pre)&0x8000 != 0
	c.Status.C = carryOut
	c.Status.SetNZ16(result)
	c.A = result
}

func opADC(c *CPU, mode AddressingMode) (uint64, error) {
	if c.Status.M {
		v, extra, err := c.load8(mode)
		if err != nil {
			return 0, err
		}
		c.adc8(v)
		return extra, nil
	}
	v, extra, err := c.load16(mode)
	if err != nil {
		return 0, err
	}
	c.adc16(v)
	return extra, nil
}

func opSBC(c *CPU, mode AddressingMode) (uint64, error) {
	if c.Status.M {
		v, extra, err := c.load8(mode)
		if err != nil {
			return 0, err
		}
		c.sbc8(v)
		return extra, nil
	}
	v, extra, err := c.load16(mode)
	if err != nil {
		return 0, err
	}
	c.sbc16(v)
	return extra, nil
}

func cmpGeneric8(c *CPU, reg uint8, operand uint8) {
	diff := uint16(reg) - uint16(operand)
	c.Status.C = reg >= operand
	c.Status.N = diff&0x80 != 0
	c.Status.Z = reg == operand
}

func cmpGeneric16(c *CPU, reg uint16, operand uint16) {
	c.Status.C = reg >= operand
	c.Status.N = (reg-operand)&0x8000 != 0
	c.Status.Z = reg == operand
}

func opCMP(c *CPU, mode AddressingMode) (uint64, error) {
	if c.Status.M {
		v, extra, err := c.load8(mode)
		if err != nil {
			return 0, err
		}
		cmpGeneric8(c, uint8(c.A), v)
		return extra, nil
	}
	v, extra, err := c.load16(mode)
	if err != nil {
		return 0, err
	}
	cmpGeneric16(c, c.A, v)
	return extra, nil
}

func opCPX(c *CPU, mode AddressingMode) (uint64, error) {
	if c.Status.X {
		v, extra, err := c.load8(mode)
		if err != nil {
			return 0, err
		}
		cmpGeneric8(c, uint8(c.X), v)
		return extra, nil
	}
	v, extra, err := c.load16(mode)
	if err != nil {
		return 0, err
	}
	cmpGeneric16(c, c.X, v)
	return extra, nil
}

func opCPY(c *CPU, mode AddressingMode) (uint64, error) {
	if c.Status.X {
		v, extra, err := c.load8(mode)
		if err != nil {
			return 0, err
		}
		cmpGeneric8(c, uint8(c.Y), v)
		return extra, nil
	}
	v, extra, err := c.load16(mode)
	if err != nil {
		return 0, err
	}
	cmpGeneric16(c, c.Y, v)
	return extra, nil
}

func opAND(c *CPU, mode AddressingMode) (uint64, error) {
	if c.Status.M {
		v, extra, err := c.load8(mode)
		if err != nil {
			return 0, err
		}
		result := uint8(c.A) & v
		c.Status.SetNZ8(result)
		c.A = c.A&0xFF00 | uint16(result)
		return extra, nil
	}
	v, extra, err := c.load16(mode)
	if err != nil {
		return 0, err
	}
	c.A &= v
	c.Status.SetNZ16(c.A)
	return extra, nil
}

func opORA(c *CPU, mode AddressingMode) (uint64, error) {
	if c.Status.M {
		v, extra, err := c.load8(mode)
		if err != nil {
			return 0, err
		}
		result := uint8(c.A) | v
		c.Status.SetNZ8(result)
		c.A = c.A&0xFF00 | uint16(result)
		return extra, nil
	}
	v, extra, err := c.load16(mode)
	if err != nil {
		return 0, err
	}
	c.A |= v
	c.Status.SetNZ16(c.A)
	return extra, nil
}

func opEOR(c *CPU, mode AddressingMode) (uint64, error) {
	if c.Status.M {
		v, extra, err := c.load8(mode)
		if err != nil {
			return 0, err
		}
		result := uint8(c.A) ^ v
		c.Status.SetNZ8(result)
		c.A = c.A&0xFF00 | uint16(result)
		return extra, nil
	}
	v, extra, err := c.load16(mode)
	if err != nil {
		return 0, err
	}
	c.A ^= v
	c.Status.SetNZ16(c.A)
	return extra, nil
}

func opBIT(c *CPU, mode AddressingMode) (uint64, error) {
	immediate := mode == ModeImmediateM
	if c.Status.M {
		v, extra, err := c.load8(mode)
		if err != nil {
			return 0, err
		}
		c.Status.Z = uint8(c.A)&v == 0
		if !immediate {
			c.Status.N = v&0x80 != 0
			c.Status.V = v&0x40 != 0
		}
		return extra, nil
	}
	v, extra, err := c.load16(mode)
	if err != nil {
		return 0, err
	}
	c.Status.Z = c.A&v == 0
	if !immediate {
		c.Status.N = v&0x8000 != 0
		c.Status.V = v&0x4000 != 0
	}
	return extra, nil
}

func opTRB(c *CPU, mode AddressingMode) (uint64, error) {
	if c.Status.M {
		addr, _, err := c.resolveEA(mode)
		if err != nil {
			return 0, err
		}
		v, err := c.bus.Read8(addr)
		if err != nil {
			return 0, err
		}
		c.Status.Z = uint8(c.A)&v == 0
		v &^= uint8(c.A)
		return 2, c.bus.Write8(addr, v)
	}
	addr, wrap, err := c.resolveEA(mode)
	if err != nil {
		return 0, err
	}
	v, err := c.bus.Read16(addr, wrap)
	if err != nil {
		return 0, err
	}
	c.Status.Z = c.A&v == 0
	v &^= c.A
	return 2, c.bus.Write16(addr, v, wrap)
}

func opTSB(c *CPU, mode AddressingMode) (uint64, error) {
	if c.Status.M {
		addr, _, err := c.resolveEA(mode)
		if err != nil {
			return 0, err
		}
		v, err := c.bus.Read8(addr)
		if err != nil {
			return 0, err
		}
		c.Status.Z = uint8(c.A)&v == 0
		v |= uint8(c.A)
		return 2, c.bus.Write8(addr, v)
	}
	addr, wrap, err := c.resolveEA(mode)
	if err != nil {
		return 0, err
	}
	v, err := c.bus.Read16(addr, wrap)
	if err != nil {
		return 0, err
	}
	c.Status.Z = c.A&v == 0
	v |= c.A
	return 2, c.bus.Write16(addr, v, wrap)
}

// shiftRMW8/16 perform a read-modify-write shift/rotate, handling the
// accumulator addressing mode as a special case with no bus traffic.
func (c *CPU) shiftRMW8(mode AddressingMode, fn func(uint8) (uint8, bool)) (uint64, error) {
	if mode == ModeAccumulator {
		result, carry := fn(uint8(c.A))
		c.A = c.A&0xFF00 | uint16(result)
		c.Status.C = carry
		c.Status.SetNZ8(result)
		return 0, nil
	}
	addr, _, err := c.resolveEA(mode)
	if err != nil {
		return 0, err
	}
	v, err := c.bus.Read8(addr)
	if err != nil {
		return 0, err
	}
	result, carry := fn(v)
	c.Status.C = carry
	c.Status.SetNZ8(result)
	return 2, c.bus.Write8(addr, result)
}

func (c *CPU) shiftRMW16(mode AddressingMode, fn func(uint16) (uint16, bool)) (uint64, error) {
	if mode == ModeAccumulator {
		result, carry := fn(c.A)
		c.A = result
		c.Status.C = carry
		c.Status.SetNZ16(result)
		return 0, nil
	}
	addr, wrap, err := c.resolveEA(mode)
	if err != nil {
		return 0, err
	}
	v, err := c.bus.Read16(addr, wrap)
	if err != nil {
		return 0, err
	}
	result, carry := fn(v)
	c.Status.C = carry
	c.Status.SetNZ16(result)
	return 2, c.bus.Write16(addr, result, wrap)
}

func opASL(c *CPU, mode AddressingMode) (uint64, error) {
	if c.Status.M {
		return c.shiftRMW8(mode, func(v uint8) (uint8, bool) { return v << 1, v&0x80 != 0 })
	}
	return c.shiftRMW16(mode, func(v uint16) (uint16, bool) { return v << 1, v&0x8000 != 0 })
}

func opLSR(c *CPU, mode AddressingMode) (uint64, error) {
	if c.Status.M {
		return c.shiftRMW8(mode, func(v uint8) (uint8, bool) { return v >> 1, v&1 != 0 })
	}
	return c.shiftRMW16(mode, func(v uint16) (uint16, bool) { return v >> 1, v&1 != 0 })
}

func opROL(c *CPU, mode AddressingMode) (uint64, error) {
	carryIn := c.Status.C
	if c.Status.M {
		return c.shiftRMW8(mode, func(v uint8) (uint8, bool) {
			out := v&0x80 != 0
			r := v << 1
			if carryIn {
				r |= 1
			}
			return r, out
		})
	}
	return c.shiftRMW16(mode, func(v uint16) (uint16, bool) {
		out := v&0x8000 != 0
		r := v << 1
		if carryIn {
			r |= 1
		}
		return r, out
	})
}

func opROR(c *CPU, mode AddressingMode) (uint64, error) {
	carryIn := c.Status.C
	if c.Status.M {
		return c.shiftRMW8(mode, func(v uint8) (uint8, bool) {
			out := v&1 != 0
			r := v >> 1
			if carryIn {
				r |= 0x80
			}
			return r, out
		})
	}
	return c.shiftRMW16(mode, func(v uint16) (uint16, bool) {
		out := v&1 != 0
		r := v >> 1
		if carryIn {
			r |= 0x8000
		}
		return r, out
	})
}

func opLDA(c *CPU, mode AddressingMode) (uint64, error) {
	if c.Status.M {
		v, extra, err := c.load8(mode)
		if err != nil {
			return 0, err
		}
		c.Status.SetNZ8(v)
		c.A = c.A&0xFF00 | uint16(v)
		return extra, nil
	}
	v, extra, err := c.load16(mode)
	if err != nil {
		return 0, err
	}
	c.Status.SetNZ16(v)
	c.A = v
	return extra, nil
}

func opLDX(c *CPU, mode AddressingMode) (uint64, error) {
	if c.Status.X {
		v, extra, err := c.load8(mode)
		if err != nil {
			return 0, err
		}
		c.Status.SetNZ8(v)
		c.X = uint16(v)
		return extra, nil
	}
	v, extra, err := c.load16(mode)
	if err != nil {
		return 0, err
	}
	c.Status.SetNZ16(v)
	c.X = v
	return extra, nil
}

func opLDY(c *CPU, mode AddressingMode) (uint64, error) {
	if c.Status.X {
		v, extra, err := c.load8(mode)
		if err != nil {
			return 0, err
		}
		c.Status.SetNZ8(v)
		c.Y = uint16(v)
		return extra, nil
	}
	v, extra, err := c.load16(mode)
	if err != nil {
		return 0, err
	}
	c.Status.SetNZ16(v)
	c.Y = v
	return extra, nil
}

func opSTA(c *CPU, mode AddressingMode) (uint64, error) {
	if c.Status.M {
		return c.store8(mode, uint8(c.A))
	}
	return c.store16(mode, c.A)
}

func opSTX(c *CPU, mode AddressingMode) (uint64, error) {
	if c.Status.X {
		return c.store8(mode, uint8(c.X))
	}
	return c.store16(mode, c.X)
}

func opSTY(c *CPU, mode AddressingMode) (uint64, error) {
	if c.Status.X {
		return c.store8(mode, uint8(c.Y))
	}
	return c.store16(mode, c.Y)
}

func opSTZ(c *CPU, mode AddressingMode) (uint64, error) {
	if c.Status.M {
		return c.store8(mode, 0)
	}
	return c.store16(mode, 0)
}

// branchIf fetches the rel8 operand and conditionally branches,
// charging the extra cycle for a taken branch and a second one when
// the target crosses a page boundary in emulation mode.
func branchIf(cond bool) func(c *CPU, mode AddressingMode) (uint64, error) {
	return func(c *CPU, mode AddressingMode) (uint64, error) {
		op, err := c.fetch8()
		if err != nil {
			return 0, err
		}
		if !cond {
			return 0, nil
		}
		base := uint32(c.PB)<<16 | uint32(c.PC)
		target := bus.WrapAdd(base, int32(int8(op)), bus.Bank)
		extra := uint64(1)
		if c.E && pageCrossed(base, target) {
			extra++
		}
		c.PC = uint16(target)
		return extra, nil
	}
}

func opBRA(c *CPU, mode AddressingMode) (uint64, error) {
	op, err := c.fetch8()
	if err != nil {
		return 0, err
	}
	base := uint32(c.PB)<<16 | uint32(c.PC)
	c.PC = uint16(bus.WrapAdd(base, int32(int8(op)), bus.Bank))
	return 0, nil
}

func opBRL(c *CPU, mode AddressingMode) (uint64, error) {
	op, err := c.fetch16()
	if err != nil {
		return 0, err
	}
	base := uint32(c.PB)<<16 | uint32(c.PC)
	c.PC = uint16(bus.WrapAdd(base, int32(int16(op)), bus.Bank))
	return 0, nil
}

func opJMPAbs(c *CPU, mode AddressingMode) (uint64, error) {
	op, err := c.fetch16()
	if err != nil {
		return 0, err
	}
	c.PC = op
	return 0, nil
}

func opJMPLong(c *CPU, mode AddressingMode) (uint64, error) {
	op, err := c.fetch24()
	if err != nil {
		return 0, err
	}
	c.PC = uint16(op)
	c.PB = uint8(op >> 16)
	return 0, nil
}

func opJMPIndirect(c *CPU, mode AddressingMode) (uint64, error) {
	op, err := c.fetch16()
	if err != nil {
		return 0, err
	}
	ptr, err := c.bus.Read16(uint32(op), bus.Bank)
	if err != nil {
		return 0, err
	}
	c.PC = ptr
	return 0, nil
}

func opJMPIndirectX(c *CPU, mode AddressingMode) (uint64, error) {
	op, err := c.fetch16()
	if err != nil {
		return 0, err
	}
	addr := uint32(c.PB)<<16 | uint32(uint16(op+c.X))
	ptr, err := c.bus.Read16(addr, bus.Bank)
	if err != nil {
		return 0, err
	}
	c.PC = ptr
	return 0, nil
}

func opJMPIndirectLong(c *CPU, mode AddressingMode) (uint64, error) {
	op, err := c.fetch16()
	if err != nil {
		return 0, err
	}
	ptr, err := c.bus.Read24(uint32(op), bus.Bank)
	if err != nil {
		return 0, err
	}
	c.PC = uint16(ptr)
	c.PB = uint8(ptr >> 16)
	return 0, nil
}

func opJSR(c *CPU, mode AddressingMode) (uint64, error) {
	op, err := c.fetch16()
	if err != nil {
		return 0, err
	}
	if err := c.pushWord(c.PC - 1); err != nil {
		return 0, err
	}
	c.PC = op
	return 0, nil
}

func opJSRIndirectX(c *CPU, mode AddressingMode) (uint64, error) {
	op, err := c.fetch16()
	if err != nil {
		return 0, err
	}
	if err := c.pushWord(c.PC - 1); err != nil {
		return 0, err
	}
	addr := uint32(c.PB)<<16 | uint32(uint16(op+c.X))
	ptr, err := c.bus.Read16(addr, bus.Bank)
	if err != nil {
		return 0, err
	}
	c.PC = ptr
	return 0, nil
}

func opJSL(c *CPU, mode AddressingMode) (uint64, error) {
	op, err := c.fetch24()
	if err != nil {
		return 0, err
	}
	if err := c.pushByte(c.PB); err != nil {
		return 0, err
	}
	if err := c.pushWord(c.PC - 1); err != nil {
		return 0, err
	}
	c.PC = uint16(op)
	c.PB = uint8(op >> 16)
	return 0, nil
}

func opRTS(c *CPU, mode AddressingMode) (uint64, error) {
	pc, err := c.pullWord()
	if err != nil {
		return 0, err
	}
	c.PC = pc + 1
	return 0, nil
}

func opRTL(c *CPU, mode AddressingMode) (uint64, error) {
	pc, err := c.pullWord()
	if err != nil {
		return 0, err
	}
	pb, err := c.pullByte()
	if err != nil {
		return 0, err
	}
	c.PC = pc + 1
	c.PB = pb
	return 0, nil
}

func opPER(c *CPU, mode AddressingMode) (uint64, error) {
	op, err := c.fetch16()
	if err != nil {
		return 0, err
	}
	target := c.PC + op
	return 0, c.pushWord(target)
}

func opPEA(c *CPU, mode AddressingMode) (uint64, error) {
	op, err := c.fetch16()
	if err != nil {
		return 0, err
	}
	return 0, c.pushWord(op)
}

func opPEI(c *CPU, mode AddressingMode) (uint64, error) {
	op, err := c.fetch8()
	if err != nil {
		return 0, err
	}
	ctx := c.effectCtx()
	addr, wrap := ctx.directIndexedRaw(op, 0)
	v, err := c.bus.Read16(addr, wrap)
	if err != nil {
		return 0, err
	}
	return c.directPageExtra(ModeDirect), c.pushWord(v)
}

func opBRK(c *CPU, mode AddressingMode) (uint64, error) {
	if _, err := c.fetch8(); err != nil {
		return 0, err
	}
	return 0, c.signalInterrupt(vecNatBRK, vecEmuIRQ, true)
}

func opCOP(c *CPU, mode AddressingMode) (uint64, error) {
	if _, err := c.fetch8(); err != nil {
		return 0, err
	}
	return 0, c.signalInterrupt(vecNatCOP, vecEmuCOP, true)
}

func opRTI(c *CPU, mode AddressingMode) (uint64, error) {
	status, err := c.pullByte()
	if err != nil {
		return 0, err
	}
	c.Status.SetValue(status)
	c.fixEmulationInvariants()
	pc, err := c.pullWord()
	if err != nil {
		return 0, err
	}
	c.PC = pc
	if !c.E {
		pb, err := c.pullByte()
		if err != nil {
			return 0, err
		}
		c.PB = pb
	}
	return 0, nil
}

func opMVN(c *CPU, mode AddressingMode) (uint64, error) {
	return c.blockMove(1)
}

func opMVP(c *CPU, mode AddressingMode) (uint64, error) {
	return c.blockMove(-1)
}

func (c *CPU) blockMove(dir int16) (uint64, error) {
	destBank, err := c.fetch8()
	if err != nil {
		return 0, err
	}
	srcBank, err := c.fetch8()
	if err != nil {
		return 0, err
	}
	srcAddr := uint32(srcBank)<<16 | uint32(c.X)
	dstAddr := uint32(destBank)<<16 | uint32(c.Y)
	v, err := c.bus.Read8(srcAddr)
	if err != nil {
		return 0, err
	}
	if err := c.bus.Write8(dstAddr, v); err != nil {
		return 0, err
	}
	c.A--
	c.X = uint16(int32(c.X) + int32(dir))
	c.Y = uint16(int32(c.Y) + int32(dir))
	c.DB = destBank
	c.fixEmulationInvariants()
	if c.A != 0xFFFF {
		c.PC -= 3
	}
	return 0, nil
}

func opCLC(c *CPU, mode AddressingMode) (uint64, error) { c.Status.C = false; return 0, nil }
func opSEC(c *CPU, mode AddressingMode) (uint64, error) { c.Status.C = true; return 0, nil }
func opCLI(c *CPU, mode AddressingMode) (uint64, error) { c.Status.I = false; return 0, nil }
func opSEI(c *CPU, mode AddressingMode) (uint64, error) { c.Status.I = true; return 0, nil }
func opCLV(c *CPU, mode AddressingMode) (uint64, error) { c.Status.V = false; return 0, nil }
func opCLD(c *CPU, mode AddressingMode) (uint64, error) { c.Status.D = false; return 0, nil }
func opSED(c *CPU, mode AddressingMode) (uint64, error) { c.Status.D = true; return 0, nil }

func opREP(c *CPU, mode AddressingMode) (uint64, error) {
	mask, err := c.fetch8()
	if err != nil {
		return 0, err
	}
	c.Status.SetValue(c.Status.Value() &^ mask)
	c.fixEmulationInvariants()
	return 0, nil
}

func opSEP(c *CPU, mode AddressingMode) (uint64, error) {
	mask, err := c.fetch8()
	if err != nil {
		return 0, err
	}
	c.Status.SetValue(c.Status.Value() | mask)
	c.fixEmulationInvariants()
	return 0, nil
}

func opXCE(c *CPU, mode AddressingMode) (uint64, error) {
	oldE := c.E
	c.E = c.Status.C
	c.Status.C = oldE
	c.fixEmulationInvariants()
	return 0, nil
}

func opTAX(c *CPU, mode AddressingMode) (uint64, error) {
	if c.Status.X {
		v := uint8(c.A)
		c.Status.SetNZ8(v)
		c.X = uint16(v)
	} else {
		c.Status.SetNZ16(c.A)
		c.X = c.A
	}
	return 0, nil
}

func opTAY(c *CPU, mode AddressingMode) (uint64, error) {
	if c.Status.X {
		v := uint8(c.A)
		c.Status.SetNZ8(v)
		c.Y = uint16(v)
	} else {
		c.Status.SetNZ16(c.A)
		c.Y = c.A
	}
	return 0, nil
}

func opTXA(c *CPU, mode AddressingMode) (uint64, error) {
	if c.Status.M {
		v := uint8(c.X)
		c.Status.SetNZ8(v)
		c.A = c.A&0xFF00 | uint16(v)
	} else {
		c.Status.SetNZ16(c.X)
		c.A = c.X
	}
	return 0, nil
}

func opTYA(c *CPU, mode AddressingMode) (uint64, error) {
	if c.Status.M {
		v := uint8(c.Y)
		c.Status.SetNZ8(v)
		c.A = c.A&0xFF00 | uint16(v)
	} else {
		c.Status.SetNZ16(c.Y)
		c.A = c.Y
	}
	return 0, nil
}

func opTSX(c *CPU, mode AddressingMode) (uint64, error) {
	if c.Status.X {
		v := uint8(c.S)
		c.Status.SetNZ8(v)
		c.X = uint16(v)
	} else {
		c.Status.SetNZ16(c.S)
		c.X = c.S
	}
	return 0, nil
}

func opTXS(c *CPU, mode AddressingMode) (uint64, error) {
	c.S = c.X
	if c.E {
		c.S = 0x0100 | (c.S & 0x00FF)
	}
	return 0, nil
}

func opTXY(c *CPU, mode AddressingMode) (uint64, error) {
	if c.Status.X {
		v := uint8(c.X)
		c.Status.SetNZ8(v)
		c.Y = uint16(v)
	} else {
		c.Status.SetNZ16(c.X)
		c.Y = c.X
	}
	return 0, nil
}

func opTYX(c *CPU, mode AddressingMode) (uint64, error) {
	if c.Status.X {
		v := uint8(c.Y)
		c.Status.SetNZ8(v)
		c.X = uint16(v)
	} else {
		c.Status.SetNZ16(c.Y)
		c.X = c.Y
	}
	return 0, nil
}

func opTCD(c *CPU, mode AddressingMode) (uint64, error) {
	c.D = c.A
	c.Status.SetNZ16(c.D)
	return 0, nil
}

func opTDC(c *CPU, mode AddressingMode) (uint64, error) {
	c.A = c.D
	c.Status.SetNZ16(c.A)
	return 0, nil
}

func opTCS(c *CPU, mode AddressingMode) (uint64, error) {
	c.S = c.A
	if c.E {
		c.S = 0x0100 | (c.S & 0x00FF)
	}
	return 0, nil
}

func opTSC(c *CPU, mode AddressingMode) (uint64, error) {
	c.A = c.S
	c.Status.SetNZ16(c.A)
	return 0, nil
}

func opXBA(c *CPU, mode AddressingMode) (uint64, error) {
	lo := uint8(c.A)
	hi := uint8(c.A >> 8)
	c.A = uint16(lo)<<8 | uint16(hi)
	c.Status.SetNZ8(hi)
	return 0, nil
}

func opINX(c *CPU, mode AddressingMode) (uint64, error) { return c.incDecReg(&c.X, 1, c.Status.X) }
func opINY(c *CPU, mode AddressingMode) (uint64, error) { return c.incDecReg(&c.Y, 1, c.Status.X) }
func opDEX(c *CPU, mode AddressingMode) (uint64, error) { return c.incDecReg(&c.X, -1, c.Status.X) }
func opDEY(c *CPU, mode AddressingMode) (uint64, error) { return c.incDecReg(&c.Y, -1, c.Status.X) }

func (c *CPU) incDecReg(reg *uint16, delta int16, narrow bool) (uint64, error) {
	if narrow {
		v := uint8(*reg) + uint8(delta)
		c.Status.SetNZ8(v)
		*reg = uint16(v)
		return 0, nil
	}
	v := *reg + uint16(delta)
	c.Status.SetNZ16(v)
	*reg = v
	return 0, nil
}

func opINCA(c *CPU, mode AddressingMode) (uint64, error) { return c.incDecA(1) }
func opDECA(c *CPU, mode AddressingMode) (uint64, error) { return c.incDecA(-1) }

func (c *CPU) incDecA(delta int16) (uint64, error) {
	if c.Status.M {
		v := uint8(c.A) + uint8(delta)
		c.Status.SetNZ8(v)
		c.A = c.A&0xFF00 | uint16(v)
		return 0, nil
	}
	v := c.A + uint16(delta)
	c.Status.SetNZ16(v)
	c.A = v
	return 0, nil
}

func opINC(c *CPU, mode AddressingMode) (uint64, error) { return c.incDecMem(mode, 1) }
func opDEC(c *CPU, mode AddressingMode) (uint64, error) { return c.incDecMem(mode, -1) }

func (c *CPU) incDecMem(mode AddressingMode, delta int16) (uint64, error) {
	if mode == ModeAccumulator {
		return c.incDecA(delta)
	}
	if c.Status.M {
		addr, _, err := c.resolveEA(mode)
		if err != nil {
			return 0, err
		}
		v, err := c.bus.Read8(addr)
		if err != nil {
			return 0, err
		}
		v += uint8(delta)
		c.Status.SetNZ8(v)
		return 2, c.bus.Write8(addr, v)
	}
	addr, wrap, err := c.resolveEA(mode)
	if err != nil {
		return 0, err
	}
	v, err := c.bus.Read16(addr, wrap)
	if err != nil {
		return 0, err
	}
	v += uint16(delta)
	c.Status.SetNZ16(v)
	return 2, c.bus.Write16(addr, v, wrap)
}

func opPHA(c *CPU, mode AddressingMode) (uint64, error) {
	if c.Status.M {
		return 0, c.pushByte(uint8(c.A))
	}
	return 0, c.pushWord(c.A)
}

func opPLA(c *CPU, mode AddressingMode) (uint64, error) {
	if c.Status.M {
		v, err := c.pullByte()
		if err != nil {
			return 0, err
		}
		c.Status.SetNZ8(v)
		c.A = c.A&0xFF00 | uint16(v)
		return 0, nil
	}
	v, err := c.pullWord()
	if err != nil {
		return 0, err
	}
	c.Status.SetNZ16(v)
	c.A = v
	return 0, nil
}

func opPHX(c *CPU, mode AddressingMode) (uint64, error) { return c.pushIndex(c.X) }
func opPHY(c *CPU, mode AddressingMode) (uint64, error) { return c.pushIndex(c.Y) }

func (c *CPU) pushIndex(v uint16) (uint64, error) {
	if c.Status.X {
		return 0, c.pushByte(uint8(v))
	}
	return 0, c.pushWord(v)
}

func opPLX(c *CPU, mode AddressingMode) (uint64, error) { return c.pullIndex(&c.X) }
func opPLY(c *CPU, mode AddressingMode) (uint64, error) { return c.pullIndex(&c.Y) }

func (c *CPU) pullIndex(reg *uint16) (uint64, error) {
	if c.Status.X {
		v, err := c.pullByte()
		if err != nil {
			return 0, err
		}
		c.Status.SetNZ8(v)
		*reg = uint16(v)
		return 0, nil
	}
	v, err := c.pullWord()
	if err != nil {
		return 0, err
	}
	c.Status.SetNZ16(v)
	*reg = v
	return 0, nil
}

func opPHP(c *CPU, mode AddressingMode) (uint64, error) { return 0, c.pushByte(c.Status.Value()) }

func opPLP(c *CPU, mode AddressingMode) (uint64, error) {
	v, err := c.pullByte()
	if err != nil {
		return 0, err
	}
	c.Status.SetValue(v)
	c.fixEmulationInvariants()
	return 0, nil
}

func opPHB(c *CPU, mode AddressingMode) (uint64, error) { return 0, c.pushByte(c.DB) }

func opPLB(c *CPU, mode AddressingMode) (uint64, error) {
	v, err := c.pullByte()
	if err != nil {
		return 0, err
	}
	c.Status.SetNZ8(v)
	c.DB = v
	return 0, nil
}

func opPHK(c *CPU, mode AddressingMode) (uint64, error) { return 0, c.pushByte(c.PB) }

func opPHD(c *CPU, mode AddressingMode) (uint64, error) { return 0, c.pushWord(c.D) }

func opPLD(c *CPU, mode AddressingMode) (uint64, error) {
	v, err := c.pullWord()
	if err != nil {
		return 0, err
	}
	c.Status.SetNZ16(v)
	c.D = v
	return 0, nil
}

func opSTP(c *CPU, mode AddressingMode) (uint64, error) { c.stopped = true; return 0, nil }
func opWAI(c *CPU, mode AddressingMode) (uint64, error) { c.waiting = true; return 0, nil }
func opNOP(c *CPU, mode AddressingMode) (uint64, error) { return 0, nil }

func opWDM(c *CPU, mode AddressingMode) (uint64, error) {
	_, err := c.fetch8()
	return 0, err
}
