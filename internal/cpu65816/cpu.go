// Package cpu65816 implements the Ricoh 5A22's main processor core: a
// 65C816 derivative with runtime-switchable emulation/native mode and
// 8-/16-bit accumulator and index register widths.
package cpu65816

import (
	"fmt"

	"gones65/internal/bus"
)

// Emulation-mode interrupt vectors.
const (
	vecEmuCOP   uint32 = 0xFFF4
	vecEmuABORT uint32 = 0xFFF8
	vecEmuNMI   uint32 = 0xFFFA
	vecEmuRESET uint32 = 0xFFFC
	vecEmuIRQ   uint32 = 0xFFFE
)

// Native-mode interrupt vectors.
const (
	vecNatCOP   uint32 = 0xFFE4
	vecNatBRK   uint32 = 0xFFE6
	vecNatABORT uint32 = 0xFFE8
	vecNatNMI   uint32 = 0xFFEA
	vecNatIRQ   uint32 = 0xFFEE
)

// DecodeError reports an opcode byte with no entry in the instruction
// table. Every one of the 256 byte values is covered, so this should
// be unreachable; it exists as a defensive, documented failure mode
// rather than a panic.
type DecodeError struct {
	Address uint32
	Opcode  uint8
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cpu65816: $%06X: no instruction for opcode $%02X", e.Address, e.Opcode)
}

// RegisterSnapshot is a read-only copy of CPU state for error contexts
// and debugger consumption.
type RegisterSnapshot struct {
	A, X, Y    uint16
	PC, S, D   uint16
	PB, DB     uint8
	Status     StatusReg
	E          bool
	Stopped    bool
	Waiting    bool
}

// CPU is the 65C816 register file and execution engine.
type CPU struct {
	A, X, Y uint16
	PC      uint16
	S       uint16
	D       uint16
	PB, DB  uint8

	Status StatusReg
	E      bool

	stopped bool
	waiting bool

	bus Bus
}

// New returns a CPU wired to the given bus, already reset.
func New(b Bus) *CPU {
	c := &CPU{bus: b}
	c.Reset()
	return c
}

// Reset reproduces the documented power-on/reset sequence: emulation
// mode, 8-bit A/X/Y, stack page forced to $01, PB/DB zeroed, PC loaded
// from the reset vector (page-wrapped read at $00FFFC).
func (c *CPU) Reset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.D = 0
	c.PB, c.DB = 0, 0
	c.E = true
	c.Status = StatusReg{M: true, X: true, I: true}
	c.S = 0x01FF
	c.stopped = false
	c.waiting = false

	pc, err := c.bus.Read16(vecEmuRESET, bus.Page)
	if err == nil {
		c.PC = pc
	}
}

// Snapshot returns the current register state for error contexts.
func (c *CPU) Snapshot() RegisterSnapshot {
	return RegisterSnapshot{
		A: c.A, X: c.X, Y: c.Y,
		PC: c.PC, S: c.S, D: c.D,
		PB: c.PB, DB: c.DB,
		Status: c.Status, E: c.E,
		Stopped: c.stopped, Waiting: c.waiting,
	}
}

// Stopped reports whether STP has halted the CPU.
func (c *CPU) Stopped() bool { return c.stopped }

// Waiting reports whether WAI is parked waiting for an interrupt.
func (c *CPU) Waiting() bool { return c.waiting }

// ClearWaiting clears the waiting flag set by WAI, releasing a parked
// CPU.
func (c *CPU) ClearWaiting() { c.waiting = false }

func (c *CPU) pcAddr() uint32 {
	return uint32(c.PB)<<16 | uint32(c.PC)
}

func (c *CPU) fetch8() (uint8, error) {
	v, err := c.bus.Read8(c.pcAddr())
	if err != nil {
		return 0, err
	}
	c.PC++
	return v, nil
}

func (c *CPU) fetch16() (uint16, error) {
	lo, err := c.fetch8()
	if err != nil {
		return 0, err
	}
	hi, err := c.fetch8()
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

func (c *CPU) fetch24() (uint32, error) {
	lo, err := c.fetch8()
	if err != nil {
		return 0, err
	}
	mid, err := c.fetch8()
	if err != nil {
		return 0, err
	}
	hi, err := c.fetch8()
	if err != nil {
		return 0, err
	}
	return uint32(hi)<<16 | uint32(mid)<<8 | uint32(lo), nil
}

// Stack push/pull. In emulation mode the stack pointer's high byte is
// pinned to $01 and low-byte arithmetic wraps within that page; in
// native mode the full 16-bit pointer wraps.
func (c *CPU) decS() {
	if c.E {
		c.S = c.S&0xFF00 | uint16(uint8(c.S)-1)
	} else {
		c.S--
	}
}

func (c *CPU) incS() {
	if c.E {
		c.S = c.S&0xFF00 | uint16(uint8(c.S)+1)
	} else {
		c.S++
	}
}

func (c *CPU) pushByte(v uint8) error {
	if err := c.bus.Write8(uint32(c.S), v); err != nil {
		return err
	}
	c.decS()
	return nil
}

func (c *CPU) pullByte() (uint8, error) {
	c.incS()
	return c.bus.Read8(uint32(c.S))
}

func (c *CPU) pushWord(v uint16) error {
	if err := c.pushByte(uint8(v >> 8)); err != nil {
		return err
	}
	return c.pushByte(uint8(v))
}

func (c *CPU) pullWord() (uint16, error) {
	lo, err := c.pullByte()
	if err != nil {
		return 0, err
	}
	hi, err := c.pullByte()
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// fixEmulationInvariants forces the documented register shape whenever
// E, M, or X become true.
func (c *CPU) fixEmulationInvariants() {
	if c.E {
		c.Status.M = true
		c.Status.X = true
		c.S = 0x0100 | (c.S & 0x00FF)
	}
	if c.Status.X {
		c.X &= 0x00FF
		c.Y &= 0x00FF
	}
}

// Step fetches, decodes, and executes one instruction, returning the
// number of cycles it cost.
func (c *CPU) Step() (uint64, error) {
	if c.stopped {
		return 3, nil
	}
	if c.waiting {
		return 3, nil
	}

	opcodeAddr := c.pcAddr()
	opcode, err := c.bus.Read8(opcodeAddr)
	if err != nil {
		return 0, err
	}
	c.PC++

	inst := instructionTable[opcode]
	if inst.Execute == nil {
		return 0, &DecodeError{Address: opcodeAddr, Opcode: opcode}
	}

	extra, err := inst.Execute(c, inst.Mode)
	if err != nil {
		return 0, fmt.Errorf("cpu65816: $%06X opcode $%02X (%s): %w", opcodeAddr, opcode, inst.Name, err)
	}
	return inst.Cycles + extra, nil
}

// signalInterrupt pushes the interrupt frame and jumps to the given
// emulation/native vector pair. setBreakFlag distinguishes BRK/COP (B flag set
// in the emulation-mode pushed status) from a hardware IRQ/NMI.
func (c *CPU) signalInterrupt(natVec, emuVec uint32, setBreakFlag bool) error {
	if !c.E {
		if err := c.pushByte(c.PB); err != nil {
			return err
		}
	}
	if err := c.pushWord(c.PC); err != nil {
		return err
	}
	status := c.Status
	if c.E {
		status.X = setBreakFlag // B occupies the X bit position (bit 4) in emulation-mode pushes
	}
	if err := c.pushByte(status.Value()); err != nil {
		return err
	}
	c.Status.I = true
	c.Status.D = false
	c.PB = 0x00

	vec := emuVec
	if !c.E {
		vec = natVec
	}
	pc, err := c.bus.Read16(uint32(vec), bus.Bank)
	if err != nil {
		return err
	}
	c.PC = pc
	return nil
}

// IRQ delivers a maskable interrupt if I is clear, clearing waiting.
func (c *CPU) IRQ() error {
	if c.Status.I {
		return nil
	}
	c.waiting = false
	return c.signalInterrupt(vecNatIRQ, vecEmuIRQ, false)
}

// NMI delivers a non-maskable interrupt unconditionally, clearing
// waiting and stopped.
func (c *CPU) NMI() error {
	c.waiting = false
	c.stopped = false
	return c.signalInterrupt(vecNatNMI, vecEmuNMI, false)
}
