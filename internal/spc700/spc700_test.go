package spc700

import (
	"testing"

	"gones65/internal/apubus"
	"gones65/internal/mailbox"
)

func newTestCPU() (*CPU, *apubus.Bus) {
	b := apubus.New(mailbox.New())
	c := New(b)
	return c, b
}

func loadProgram(b *apubus.Bus, addr uint16, bytes ...uint8) {
	for i, v := range bytes {
		b.Write8(addr+uint16(i), v)
	}
}

func TestResetEntersIPLROM(t *testing.T) {
	c, _ := newTestCPU()
	if c.PC != 0xFFC0 {
		t.Fatalf("PC = %#x, want 0xFFC0", c.PC)
	}
	if c.Mode() != Running {
		t.Fatalf("mode = %v, want Running", c.Mode())
	}
}

func TestMovLoadThenIncrement(t *testing.T) {
	c, b := newTestCPU()
	b.Write8(0x0000, 0x10) // direct page $00 -> absolute $0000 when P=0
	loadProgram(b, 0x0300, 0xE4, 0x00, 0xBC) // MOV A,$00 ; INC A
	c.PC = 0x0300

	if _, ok := c.Step(); !ok {
		t.Fatalf("MOV A,d did not execute")
	}
	if c.A != 0x10 {
		t.Fatalf("A after MOV = %#x, want 0x10", c.A)
	}
	if _, ok := c.Step(); !ok {
		t.Fatalf("INC A did not execute")
	}
	if c.A != 0x11 {
		t.Errorf("A after INC = %#x, want 0x11", c.A)
	}
	if c.Status.N {
		t.Errorf("N = true, want false")
	}
	if c.Status.Z {
		t.Errorf("Z = true, want false")
	}
}

func TestBranchTakenAddsCycles(t *testing.T) {
	c, b := newTestCPU()
	c.PC = 0x0400
	c.Status.Z = true
	b.Write8(0x0400, 0xF0) // BEQ
	b.Write8(0x0401, 0x05) // +5
	cycles, ok := c.Step()
	if !ok {
		t.Fatalf("BEQ did not execute")
	}
	if c.PC != 0x0407 {
		t.Errorf("PC = %#x, want 0x0407", c.PC)
	}
	if cycles != 4 {
		t.Errorf("cycles = %d, want 4 (2 base + 2 taken)", cycles)
	}
}

func TestPushPopRoundTrip(t *testing.T) {
	c, _ := newTestCPU()
	c.A = 0x42
	c.SP = 0xFF
	c.push(c.A)
	c.A = 0
	c.A = c.pop()
	if c.A != 0x42 {
		t.Errorf("A after round trip = %#x, want 0x42", c.A)
	}
	if c.SP != 0xFF {
		t.Errorf("SP = %#x, want 0xFF after balanced push/pop", c.SP)
	}
}

func TestDivByZeroSetsOverflow(t *testing.T) {
	c, _ := newTestCPU()
	c.Y = 0x01
	c.A = 0x00
	c.X = 0x00
	opDIV(c)
	if !c.Status.V {
		t.Errorf("V = false, want true on divide by zero")
	}
}

func TestMulSetsYAFromProduct(t *testing.T) {
	c, _ := newTestCPU()
	c.Y = 0x05
	c.A = 0x06
	opMUL(c)
	if c.YA() != 30 {
		t.Errorf("YA = %d, want 30", c.YA())
	}
}

func TestDecodeTableFullyPopulated(t *testing.T) {
	for op := 0; op < 256; op++ {
		if spcInstructionTable[op].Execute == nil {
			t.Errorf("opcode %#02x has no instruction entry", op)
		}
	}
}
