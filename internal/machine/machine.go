// Package machine wires the two CPU cores to their buses and drives
// them in lockstep: the main 65C816 gets clockTicks/waitRatio cycles,
// and the SPC700 executes one instruction for every waitRatio
// main-CPU cycles spent.
package machine

import (
	"fmt"

	"gones65/internal/apubus"
	"gones65/internal/bus"
	"gones65/internal/cpu65816"
	"gones65/internal/disasm"
	"gones65/internal/mailbox"
	"gones65/internal/rom"
	"gones65/internal/spc700"
)

// DefaultWaitRatio is the number of master clock ticks per main-CPU
// cycle, and of main-CPU cycles per SPC700 instruction step, when no
// override is configured.
const DefaultWaitRatio = 8

// Machine owns both CPU cores, both buses, and the mailbox that
// connects them.
type Machine struct {
	CPU   *cpu65816.CPU
	APU   *spc700.CPU
	Bus   *bus.Bus
	APUBus *apubus.Bus

	WaitRatio uint64

	apuCycleDebt uint64
}

// New builds a fully wired machine around the given cartridge.
func New(cart *rom.Cartridge) *Machine {
	mbox := mailbox.New()
	mainBus := bus.New(cart, mbox)
	apuBus := apubus.New(mbox)

	return &Machine{
		CPU:       cpu65816.New(mainBus),
		APU:       spc700.New(apuBus),
		Bus:       mainBus,
		APUBus:    apuBus,
		WaitRatio: DefaultWaitRatio,
	}
}

// Reset reinitializes both cores and buses to power-on state.
func (m *Machine) Reset() {
	m.Bus.Reset()
	m.APUBus.Reset()
	m.CPU.Reset()
	m.APU.Reset()
	m.apuCycleDebt = 0
}

func (m *Machine) pc() uint32 {
	s := m.CPU.Snapshot()
	return uint32(s.PB)<<16 | uint32(s.PC)
}

// disassembleAt peeks the opcode byte at addr and formats it without
// disturbing any latch state or advancing the program counter.
func disassembleAt(b *bus.Bus, addr uint32) string {
	opcode, err := b.ReadPeek8(addr)
	if err != nil {
		return fmt.Sprintf("%06X: <%v>", addr, err)
	}
	return disasm.FormatMain(addr, opcode)
}

// stepAPU advances the SPC700 by the main-CPU cycles it just spent,
// converted through the wait-state ratio; the APU free-runs relative
// to the main CPU's instruction boundaries since no cycle-exact bus
// contention is modeled (spec.md Non-goals).
func (m *Machine) stepAPU(mainCycles uint64) {
	ratio := m.WaitRatio
	if ratio == 0 {
		ratio = DefaultWaitRatio
	}
	m.apuCycleDebt += mainCycles
	for m.apuCycleDebt >= ratio {
		m.apuCycleDebt -= ratio
		if m.APU.Mode() == spc700.Stopped {
			continue
		}
		if _, ok := m.APU.Step(); !ok {
			continue
		}
	}
}

// Run advances the machine until clockTicks master clock ticks have
// been consumed, the main CPU is permanently stopped (STP), or
// breakpoint reports true for the instruction about to execute.
// clockTicks is divided by WaitRatio to obtain the CPU-cycle budget
// actually stepped, then the consumed CPU cycles are scaled back up to
// master clock ticks on return, matching the reference SNES::run's
// clock_ticks/8 .. cpu_cycles*8 conversion. disasm, if non-nil, is
// invoked with the address and mnemonic text of every instruction the
// main CPU steps.
func (m *Machine) Run(clockTicks uint64, breakpoint func(pc uint32) bool, disasm func(pc uint32, text string)) (uint64, bool, error) {
	ratio := m.WaitRatio
	if ratio == 0 {
		ratio = DefaultWaitRatio
	}
	target := clockTicks / ratio
	var consumed uint64
	for consumed < target {
		addr := m.pc()
		if breakpoint != nil && breakpoint(addr) {
			return consumed * ratio, true, nil
		}
		if disasm != nil {
			disasm(addr, disassembleAt(m.Bus, addr))
		}
		if m.CPU.Stopped() {
			return consumed * ratio, false, nil
		}
		cycles, err := m.CPU.Step()
		if err != nil {
			return consumed * ratio, false, fmt.Errorf("machine: run halted: %w", err)
		}
		m.stepAPU(cycles)
		consumed += cycles
	}
	return consumed * ratio, false, nil
}

// StepN executes exactly n main-CPU instructions (STP/WAI each still
// count as one step, per spec.md), calling disasm before each.
func (m *Machine) StepN(n int, disasm func(pc uint32, text string)) (uint64, error) {
	var total uint64
	for i := 0; i < n; i++ {
		addr := m.pc()
		if disasm != nil {
			disasm(addr, disassembleAt(m.Bus, addr))
		}
		cycles, err := m.CPU.Step()
		if err != nil {
			return total, fmt.Errorf("machine: step %d halted: %w", i, err)
		}
		m.stepAPU(cycles)
		total += cycles
	}
	return total, nil
}
