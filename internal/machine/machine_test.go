package machine

import (
	"testing"

	"gones65/internal/rom"
)

func newTestMachine(t *testing.T, program ...uint8) *Machine {
	t.Helper()
	return New(rom.NewMockCartridge(program...))
}

func TestRunConsumesRequestedCycles(t *testing.T) {
	m := newTestMachine(t, 0xEA, 0xEA, 0xEA) // NOP NOP NOP, 2 cycles each
	// clockTicks are master clock ticks: Run divides by WaitRatio (8
	// here) to get a 6-CPU-cycle budget, exactly enough for the three
	// NOPs, then scales the consumed CPU cycles back up by the same
	// ratio on return.
	consumed, hit, err := m.Run(6*DefaultWaitRatio, nil, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if hit {
		t.Fatalf("Run reported a breakpoint hit with none configured")
	}
	if consumed < 6*DefaultWaitRatio {
		t.Errorf("consumed = %d, want at least %d", consumed, 6*DefaultWaitRatio)
	}
}

func TestRunStopsAtBreakpoint(t *testing.T) {
	m := newTestMachine(t, 0xEA, 0xEA, 0xEA)
	hitAddr := uint32(0x008001)
	_, hit, err := m.Run(100*DefaultWaitRatio, func(pc uint32) bool { return pc == hitAddr }, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !hit {
		t.Fatalf("Run did not report the breakpoint hit")
	}
}

func TestStepNAdvancesProgramCounter(t *testing.T) {
	m := newTestMachine(t, 0xEA, 0xEA)
	if _, err := m.StepN(2, nil); err != nil {
		t.Fatalf("StepN: %v", err)
	}
	if got := m.pc(); got != 0x008002 {
		t.Errorf("pc = %#x, want 0x008002", got)
	}
}

func TestAPUAdvancesAlongsideMainCPU(t *testing.T) {
	m := newTestMachine(t, 0xEA, 0xEA, 0xEA, 0xEA, 0xEA, 0xEA, 0xEA, 0xEA)
	startPC := m.APU.PC
	if _, err := m.StepN(8, nil); err != nil {
		t.Fatalf("StepN: %v", err)
	}
	if m.APU.PC == startPC {
		t.Errorf("APU program counter did not advance")
	}
}
