package cpu65816

import (
	"testing"

	"gones65/internal/bus"
)

// mockBus is a flat 24-bit address space with no region decoding,
// sufficient for exercising CPU semantics independent of the real
// system-area bus decode (covered separately in internal/bus).
type mockBus struct {
	mem [1 << 24]uint8
}

func newMockBus() *mockBus { return &mockBus{} }

func (m *mockBus) Read8(addr uint32) (uint8, error) { return m.mem[addr&0xFFFFFF], nil }

func (m *mockBus) Write8(addr uint32, v uint8) error {
	m.mem[addr&0xFFFFFF] = v
	return nil
}

func (m *mockBus) Read16(addr uint32, mode bus.WrappingMode) (uint16, error) {
	lo, _ := m.Read8(addr)
	hi, _ := m.Read8(bus.WrapAdd(addr, 1, mode))
	return uint16(hi)<<8 | uint16(lo), nil
}

func (m *mockBus) Write16(addr uint32, v uint16, mode bus.WrappingMode) error {
	if err := m.Write8(addr, uint8(v)); err != nil {
		return err
	}
	return m.Write8(bus.WrapAdd(addr, 1, mode), uint8(v>>8))
}

func (m *mockBus) Read24(addr uint32, mode bus.WrappingMode) (uint32, error) {
	lo, _ := m.Read16(addr, mode)
	hi, _ := m.Read8(bus.WrapAdd(addr, 2, mode))
	return uint32(hi)<<16 | uint32(lo), nil
}

func (m *mockBus) Write24(addr uint32, v uint32, mode bus.WrappingMode) error {
	if err := m.Write16(addr, uint16(v), mode); err != nil {
		return err
	}
	return m.Write8(bus.WrapAdd(addr, 2, mode), uint8(v>>16))
}

func (m *mockBus) ReadPeek8(addr uint32) (uint8, error) { return m.Read8(addr) }
func (m *mockBus) ReadPeek16(addr uint32, mode bus.WrappingMode) (uint16, error) {
	return m.Read16(addr, mode)
}
func (m *mockBus) ReadPeek24(addr uint32, mode bus.WrappingMode) (uint32, error) {
	return m.Read24(addr, mode)
}

func (m *mockBus) loadProgram(addr uint32, bytes ...uint8) {
	for i, b := range bytes {
		m.mem[(addr+uint32(i))&0xFFFFFF] = b
	}
}

func newTestCPU(resetPC uint16) (*CPU, *mockBus) {
	m := newMockBus()
	m.Write16(0x00FFFC, resetPC, bus.Page)
	c := New(m)
	return c, m
}

func TestResetEmulationInit(t *testing.T) {
	c, _ := newTestCPU(0x8000)
	if c.PC != 0x8000 || c.S != 0x01FF || c.PB != 0 || c.DB != 0 {
		t.Fatalf("reset state = PC:%#x S:%#x PB:%#x DB:%#x", c.PC, c.S, c.PB, c.DB)
	}
	if !c.E || !c.Status.M || !c.Status.X {
		t.Fatalf("expected E=M=X=true after reset, got E=%v M=%v X=%v", c.E, c.Status.M, c.Status.X)
	}
}

func TestXCEAndREPToggle(t *testing.T) {
	c, m := newTestCPU(0x8000)
	m.loadProgram(0x008000, 0x18, 0xFB, 0xC2, 0x30, 0xEA) // CLC; XCE; REP #$30; NOP
	for i := 0; i < 4; i++ {
		if _, err := c.Step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	if c.E || c.Status.M || c.Status.X {
		t.Fatalf("expected E=M=X=false, got E=%v M=%v X=%v", c.E, c.Status.M, c.Status.X)
	}
	if !c.Status.C {
		t.Fatalf("expected C=true after XCE swapped in the old E=1, got C=%v", c.Status.C)
	}
}

func TestLDAImmediate16Bit(t *testing.T) {
	c, m := newTestCPU(0x8000)
	c.Status.M = false
	m.loadProgram(0x008000, 0xA9, 0x34, 0x12) // LDA #$1234
	cycles, err := c.Step()
	if err != nil {
		t.Fatalf("step: %v", err)
	}
	if c.A != 0x1234 {
		t.Errorf("A = %#x, want 0x1234", c.A)
	}
	if c.Status.N || c.Status.Z {
		t.Errorf("N=%v Z=%v, want both false", c.Status.N, c.Status.Z)
	}
	if cycles != 3 {
		t.Errorf("cycles = %d, want 3", cycles)
	}
}

func TestBCDAdd(t *testing.T) {
	c, m := newTestCPU(0x8000)
	c.Status.D = true
	c.Status.M = true
	c.Status.C = false
	c.A = 0x45
	m.loadProgram(0x008000, 0x69, 0x38) // ADC #$38
	if _, err := c.Step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if uint8(c.A) != 0x83 {
		t.Errorf("A = %#x, want 0x83", uint8(c.A))
	}
	if c.Status.C {
		t.Errorf("C = true, want false")
	}
	if !c.Status.N {
		t.Errorf("N = false, want true")
	}
	if !c.Status.V {
		t.Errorf("V = false, want true")
	}
	if c.Status.Z {
		t.Errorf("Z = true, want false")
	}
}

func TestMVNBlockMove(t *testing.T) {
	c, m := newTestCPU(0x8000)
	// Native mode with 16-bit index registers, so X/Y hold full addresses.
	c.E = false
	c.Status.X = false
	c.A = 4
	c.X = 0x1000
	c.Y = 0x2000
	m.loadProgram(0x001000, 0x11, 0x22, 0x33, 0x44, 0x55)
	m.loadProgram(0x008000, 0x54, 0x00, 0x00) // MVN dst=$00 src=$00
	start := c.PC
	for i := 0; i < 5; i++ {
		if _, err := c.Step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if i < 4 && c.PC != start {
			t.Fatalf("step %d: PC advanced to %#x before A wrapped", i, c.PC)
		}
	}
	if c.A != 0xFFFF {
		t.Errorf("A = %#x, want 0xFFFF", c.A)
	}
	if c.X != 0x1005 || c.Y != 0x2005 {
		t.Errorf("X:Y = %#x:%#x, want 0x1005:0x2005", c.X, c.Y)
	}
	if c.PC == start {
		t.Errorf("PC did not advance past MVN after A wrapped")
	}
	want := []uint8{0x11, 0x22, 0x33, 0x44, 0x55}
	for i, w := range want {
		got, _ := m.Read8(0x002000 + uint32(i))
		if got != w {
			t.Errorf("dest[%d] = %#x, want %#x", i, got, w)
		}
	}
}

func TestPushPullRoundTripEmulation(t *testing.T) {
	c, _ := newTestCPU(0x8000)
	if err := c.pushWord(0xBEEF); err != nil {
		t.Fatalf("pushWord: %v", err)
	}
	got, err := c.pullWord()
	if err != nil {
		t.Fatalf("pullWord: %v", err)
	}
	if got != 0xBEEF {
		t.Errorf("pullWord() = %#x, want 0xBEEF", got)
	}
	if c.S != 0x01FF {
		t.Errorf("S = %#x, want 0x01FF after round trip", c.S)
	}
}

func TestJSRRTSRoundTrip(t *testing.T) {
	c, m := newTestCPU(0x8000)
	m.loadProgram(0x008000, 0x20, 0x00, 0x90) // JSR $9000
	m.loadProgram(0x009000, 0x60)             // RTS
	if _, err := c.Step(); err != nil {
		t.Fatalf("JSR step: %v", err)
	}
	if c.PC != 0x9000 {
		t.Fatalf("PC after JSR = %#x, want 0x9000", c.PC)
	}
	if _, err := c.Step(); err != nil {
		t.Fatalf("RTS step: %v", err)
	}
	if c.PC != 0x8003 {
		t.Fatalf("PC after RTS = %#x, want 0x8003", c.PC)
	}
}

func TestBRKPushesBreakFlagAtBitFour(t *testing.T) {
	c, m := newTestCPU(0x8000)
	m.Write16(0x00FFFE, 0x9000, bus.Page) // emulation-mode IRQ/BRK vector
	m.loadProgram(0x008000, 0x00, 0x00)   // BRK (signature byte skipped)
	if _, err := c.Step(); err != nil {
		t.Fatalf("BRK step: %v", err)
	}
	status, err := c.pullByte()
	if err != nil {
		t.Fatalf("pullByte: %v", err)
	}
	if status&0x10 == 0 {
		t.Errorf("BRK pushed status %#02x, want bit 4 (B) set to distinguish BRK from IRQ", status)
	}
}

func TestIRQPushesBreakFlagClear(t *testing.T) {
	c, m := newTestCPU(0x8000)
	m.Write16(0x00FFFE, 0x9000, bus.Page) // emulation-mode IRQ/BRK vector
	c.Status.I = false
	if err := c.IRQ(); err != nil {
		t.Fatalf("IRQ: %v", err)
	}
	status, err := c.pullByte()
	if err != nil {
		t.Fatalf("pullByte: %v", err)
	}
	if status&0x10 != 0 {
		t.Errorf("IRQ pushed status %#02x, want bit 4 (B) clear", status)
	}
	if status&0x20 == 0 {
		t.Errorf("IRQ pushed status %#02x, want bit 5 (M) set (forced true in emulation mode)", status)
	}
}

func TestDecodeErrorUnreachableOpcodesNone(t *testing.T) {
	for op := 0; op < 256; op++ {
		if instructionTable[op].Execute == nil {
			t.Errorf("opcode %#02x has no instruction entry", op)
		}
	}
}
