// Package disasm maps opcode bytes to mnemonics and addressing modes
// for both cores, for use by a debugger front-end or the CLI's
// disassemble callback. It performs no bus access itself; the caller
// supplies the opcode byte (and, for operand text, reads the bytes
// that follow via the bus's peek accessors).
package disasm

import (
	"fmt"

	"gones65/internal/cpu65816"
	"gones65/internal/spc700"
)

// Disassemble65816 returns the mnemonic and addressing mode for a
// 65C816 opcode byte.
func Disassemble65816(opcode byte) (string, cpu65816.AddressingMode) {
	return cpu65816.Mnemonic(opcode), cpu65816.ModeOf(opcode)
}

// DisassembleSPC700 returns the mnemonic for an SPC700 opcode byte.
// The SPC700's operand layout is implied by the mnemonic text itself
// (unlike the 65C816, it has no shared addressing-mode enum), so only
// the name is returned.
func DisassembleSPC700(opcode byte) string {
	return spc700.Mnemonic(opcode)
}

// FormatMain renders a one-line disassembly of the 65C816 opcode at
// addr, suitable for the CLI's --disasm callback.
func FormatMain(addr uint32, opcode byte) string {
	name, mode := Disassemble65816(opcode)
	return fmt.Sprintf("%06X: %02X  %-24s mode=%s", addr, opcode, name, mode)
}

// FormatAPU renders a one-line disassembly of the SPC700 opcode.
func FormatAPU(addr uint16, opcode byte) string {
	return fmt.Sprintf("%04X: %02X  %s", addr, opcode, DisassembleSPC700(opcode))
}
