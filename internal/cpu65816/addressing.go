package cpu65816

import "gones65/internal/bus"

// AddressingMode identifies one of the 65C816's effective-address
// computations. Control-flow opcodes (JMP/JML/JSR/JSL/RTS/RTL,
// branches, BRK/COP/RTI, PEA/PEI/PER, MVN/MVP) resolve their own
// addresses inline since they don't fit the uniform
// read-value/store-value shape the rest of the table uses.
type AddressingMode uint8

const (
	ModeImplied AddressingMode = iota
	ModeAccumulator
	ModeImmediateM // operand width follows the M (accumulator) flag
	ModeImmediateX // operand width follows the X (index) flag
	ModeImmediate8 // always a single byte (REP/SEP masks, COP/BRK signature)
	ModeAbsolute
	ModeAbsoluteX
	ModeAbsoluteY
	ModeDirect
	ModeDirectX
	ModeDirectY
	ModeDirectIndirect
	ModeDirectIndirectX
	ModeDirectIndirectY
	ModeDirectIndirectLong
	ModeDirectIndirectLongY
	ModeLong
	ModeLongX
	ModeStackRelative
	ModeStackRelativeIndirectY
)

var addressingModeNames = [...]string{
	ModeImplied:                 "implied",
	ModeAccumulator:             "accumulator",
	ModeImmediateM:              "immediate-m",
	ModeImmediateX:              "immediate-x",
	ModeImmediate8:              "immediate-8",
	ModeAbsolute:                "absolute",
	ModeAbsoluteX:               "absolute,x",
	ModeAbsoluteY:               "absolute,y",
	ModeDirect:                  "direct",
	ModeDirectX:                 "direct,x",
	ModeDirectY:                 "direct,y",
	ModeDirectIndirect:          "(direct)",
	ModeDirectIndirectX:         "(direct,x)",
	ModeDirectIndirectY:         "(direct),y",
	ModeDirectIndirectLong:      "[direct]",
	ModeDirectIndirectLongY:     "[direct],y",
	ModeLong:                    "long",
	ModeLongX:                   "long,x",
	ModeStackRelative:           "stack,s",
	ModeStackRelativeIndirectY:  "(stack,s),y",
}

func (m AddressingMode) String() string {
	if int(m) < len(addressingModeNames) {
		return addressingModeNames[m]
	}
	return "unknown"
}

// addrCtx is the mutable cursor addressing computations advance. The
// live CPU step path backs it with the bus's effecting reads and the
// CPU's own PC; the disassembler backs it with peek reads and a
// throwaway copy of PC so it never touches latch state or advances
// the real program counter.
type addrCtx struct {
	PB     uint8
	PC     uint16
	D      uint16
	DB     uint8
	E      bool
	M, X   bool
	XReg   uint16
	YReg   uint16
	S      uint16
	read8  func(uint32) (uint8, error)
	read16 func(uint32, bus.WrappingMode) (uint16, error)
	read24 func(uint32, bus.WrappingMode) (uint32, error)
}

func (c *CPU) effectCtx() *addrCtx {
	return &addrCtx{
		PB: c.PB, PC: c.PC, D: c.D, DB: c.DB, E: c.E,
		M: c.Status.M, X: c.Status.X, XReg: c.X, YReg: c.Y, S: c.S,
		read8:  c.bus.Read8,
		read16: c.bus.Read16,
		read24: c.bus.Read24,
	}
}

// PeekAddress computes the effective address for mode at the given
// snapshot without mutating CPU or latch state, for the disassembler.
func PeekAddress(b Bus, pb uint8, pc uint16, d uint16, db uint8, e, m, x bool, xReg, yReg, s uint16, mode AddressingMode) (addr uint32, wrap bus.WrappingMode, nextPC uint16, err error) {
	ctx := &addrCtx{
		PB: pb, PC: pc, D: d, DB: db, E: e, M: m, X: x, XReg: xReg, YReg: yReg, S: s,
		read8:  b.ReadPeek8,
		read16: b.ReadPeek16,
		read24: b.ReadPeek24,
	}
	addr, wrap, err = resolveAddress(ctx, mode)
	return addr, wrap, ctx.PC, err
}

func (ctx *addrCtx) fetch8() (uint8, error) {
	v, err := ctx.read8(uint32(ctx.PB)<<16 | uint32(ctx.PC))
	if err != nil {
		return 0, err
	}
	ctx.PC++
	return v, nil
}

func (ctx *addrCtx) fetch16() (uint16, error) {
	lo, err := ctx.fetch8()
	if err != nil {
		return 0, err
	}
	hi, err := ctx.fetch8()
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

func (ctx *addrCtx) fetch24() (uint32, error) {
	lo, err := ctx.fetch8()
	if err != nil {
		return 0, err
	}
	mid, err := ctx.fetch8()
	if err != nil {
		return 0, err
	}
	hi, err := ctx.fetch8()
	if err != nil {
		return 0, err
	}
	return uint32(hi)<<16 | uint32(mid)<<8 | uint32(lo), nil
}

// dlZeroFastPath reports whether the 6502-compatibility direct-page
// wraparound applies: emulation mode with D's low byte equal to zero.
func (ctx *addrCtx) dlZeroFastPath() bool {
	return ctx.E && ctx.D&0xFF == 0
}

func resolveAddress(ctx *addrCtx, mode AddressingMode) (uint32, bus.WrappingMode, error) {
	switch mode {
	case ModeAbsolute:
		op16, err := ctx.fetch16()
		if err != nil {
			return 0, 0, err
		}
		return uint32(ctx.DB)<<16 | uint32(op16), bus.AddressSpace, nil

	case ModeAbsoluteX:
		op16, err := ctx.fetch16()
		if err != nil {
			return 0, 0, err
		}
		base := uint32(ctx.DB)<<16 | uint32(op16)
		return (base + uint32(ctx.XReg)) & 0xFFFFFF, bus.AddressSpace, nil

	case ModeAbsoluteY:
		op16, err := ctx.fetch16()
		if err != nil {
			return 0, 0, err
		}
		base := uint32(ctx.DB)<<16 | uint32(op16)
		return (base + uint32(ctx.YReg)) & 0xFFFFFF, bus.AddressSpace, nil

	case ModeDirect:
		op8, err := ctx.fetch8()
		if err != nil {
			return 0, 0, err
		}
		return uint32(ctx.D+uint16(op8)) & 0xFFFF, bus.Bank, nil

	case ModeDirectX:
		op8, err := ctx.fetch8()
		if err != nil {
			return 0, 0, err
		}
		addr, wrap := ctx.directIndexedRaw(op8, ctx.XReg)
		return addr, wrap, nil

	case ModeDirectY:
		op8, err := ctx.fetch8()
		if err != nil {
			return 0, 0, err
		}
		addr, wrap := ctx.directIndexedRaw(op8, ctx.YReg)
		return addr, wrap, nil

	case ModeDirectIndirect:
		op8, err := ctx.fetch8()
		if err != nil {
			return 0, 0, err
		}
		ptr, err := ctx.readDirectPointer16(op8)
		if err != nil {
			return 0, 0, err
		}
		return uint32(ctx.DB)<<16 | uint32(ptr), bus.AddressSpace, nil

	case ModeDirectIndirectX:
		op8, err := ctx.fetch8()
		if err != nil {
			return 0, 0, err
		}
		indexedAddr, _ := ctx.directIndexedRaw(op8, ctx.XReg)
		ptr, err := ctx.readPointer16At(indexedAddr)
		if err != nil {
			return 0, 0, err
		}
		return uint32(ctx.DB)<<16 | uint32(ptr), bus.AddressSpace, nil

	case ModeDirectIndirectY:
		op8, err := ctx.fetch8()
		if err != nil {
			return 0, 0, err
		}
		ptr, err := ctx.readDirectPointer16(op8)
		if err != nil {
			return 0, 0, err
		}
		base := uint32(ctx.DB)<<16 | uint32(ptr)
		return (base + uint32(ctx.YReg)) & 0xFFFFFF, bus.AddressSpace, nil

	case ModeDirectIndirectLong:
		op8, err := ctx.fetch8()
		if err != nil {
			return 0, 0, err
		}
		addr := uint32(ctx.D+uint16(op8)) & 0xFFFF
		ptr, err := ctx.read24(addr, bus.Bank)
		if err != nil {
			return 0, 0, err
		}
		return ptr & 0xFFFFFF, bus.AddressSpace, nil

	case ModeDirectIndirectLongY:
		op8, err := ctx.fetch8()
		if err != nil {
			return 0, 0, err
		}
		addr := uint32(ctx.D+uint16(op8)) & 0xFFFF
		ptr, err := ctx.read24(addr, bus.Bank)
		if err != nil {
			return 0, 0, err
		}
		return (ptr + uint32(ctx.YReg)) & 0xFFFFFF, bus.AddressSpace, nil

	case ModeLong:
		op24, err := ctx.fetch24()
		if err != nil {
			return 0, 0, err
		}
		return op24 & 0xFFFFFF, bus.AddressSpace, nil

	case ModeLongX:
		op24, err := ctx.fetch24()
		if err != nil {
			return 0, 0, err
		}
		return (op24 + uint32(ctx.XReg)) & 0xFFFFFF, bus.AddressSpace, nil

	case ModeStackRelative:
		op8, err := ctx.fetch8()
		if err != nil {
			return 0, 0, err
		}
		return uint32(ctx.S+uint16(op8)) & 0xFFFF, bus.Bank, nil

	case ModeStackRelativeIndirectY:
		op8, err := ctx.fetch8()
		if err != nil {
			return 0, 0, err
		}
		ptrAddr := uint32(ctx.S+uint16(op8)) & 0xFFFF
		ptr, err := ctx.read16(ptrAddr, bus.Bank)
		if err != nil {
			return 0, 0, err
		}
		base := uint32(ctx.DB)<<16 | uint32(ptr)
		return (base + uint32(ctx.YReg)) & 0xFFFFFF, bus.AddressSpace, nil

	default:
		return 0, 0, nil
	}
}

// directIndexedRaw applies the documented page-wrap fast path (emulation
// mode, D low byte zero) or a plain 16-bit bank-wrapped add.
func (ctx *addrCtx) directIndexedRaw(op8 uint8, index uint16) (uint32, bus.WrappingMode) {
	if ctx.dlZeroFastPath() {
		low := op8 + uint8(index)
		return uint32(ctx.D&0xFF00) | uint32(low), bus.Page
	}
	return uint32(ctx.D+uint16(op8)+index) & 0xFFFF, bus.Bank
}

// readDirectPointer16 reads the 16-bit pointer for (dir)-family modes,
// honoring the same page/bank wrap split as directIndexedRaw for the
// pointer's own location.
func (ctx *addrCtx) readDirectPointer16(op8 uint8) (uint16, error) {
	addr, wrap := ctx.directIndexedRaw(op8, 0)
	return ctx.read16(addr, wrap)
}

func (ctx *addrCtx) readPointer16At(addr uint32) (uint16, error) {
	return ctx.read16(addr, bus.Bank)
}
