// Package apubus implements the SPC700's 16-bit address space: 64 KiB
// of RAM with a fixed 64-byte IPL ROM overlay at $FFC0-$FFFF and the
// mailbox port mirror at $00F4-$00F7 shared with the main CPU.
package apubus

import "gones65/internal/mailbox"

const ramSize = 64 * 1024

// iplROMBase is the first address of the fixed boot ROM overlay. While
// the overlay is enabled (control port $F1 bit 7), reads in this range
// see the ROM; writes always fall through to the underlying RAM.
const iplROMBase = 0xFFC0

// Port register offsets within the SMP-visible I/O page.
const (
	portTest   = 0xF0
	portControl = 0xF1
	port0      = 0xF4
	port1      = 0xF5
	port2      = 0xF6
	port3      = 0xF7
	timer0     = 0xFA
	timer1     = 0xFB
	timer2     = 0xFC
	counter0   = 0xFD
	counter1   = 0xFE
	counter2   = 0xFF
)

var iplROM = [64]uint8{
	0xCD, 0xEF, 0xBD, 0xE8, 0x00, 0xC6, 0x1D, 0xD0, 0xFC, 0x8F, 0xAA, 0xF4, 0x8F, 0xBB, 0xF5, 0x78,
	0xCC, 0xF4, 0xD0, 0xFB, 0x2F, 0x19, 0xEB, 0xF4, 0xD0, 0xFC, 0x7E, 0xF4, 0xD0, 0x0B, 0xE4, 0xF5,
	0xCB, 0xF4, 0xD7, 0x00, 0xFC, 0xD0, 0xF3, 0xAB, 0x01, 0x10, 0xEF, 0x7E, 0xF4, 0x10, 0xEB, 0xBA,
	0xF6, 0xDA, 0x00, 0xBA, 0xF4, 0xC4, 0xF4, 0xDD, 0x5D, 0xD0, 0xDB, 0x1F, 0x00, 0x00, 0xC0, 0xFF,
}

// Bus is the SPC700's memory interface: RAM, the IPL ROM overlay, and
// the APU-side half of the CPU<->APU mailbox.
type Bus struct {
	ram       [ramSize]uint8
	mbox      *mailbox.Mailbox
	control   uint8
	test      uint8
	timer     [3]uint8
	counter   [3]uint8
	romEnable bool
}

// New returns a Bus wired to the given shared mailbox, with the IPL
// ROM overlay enabled as it is on reset.
func New(mbox *mailbox.Mailbox) *Bus {
	b := &Bus{mbox: mbox}
	b.Reset()
	return b
}

// Reset clears RAM-backed registers and re-enables the IPL ROM
// overlay; the underlying RAM array itself is left untouched, matching
// the main bus's documented reset behavior for bulk memory regions.
func (b *Bus) Reset() {
	b.control = 0
	b.test = 0
	b.timer = [3]uint8{}
	b.counter = [3]uint8{}
	b.romEnable = true
}

// Read8 returns the IPL ROM byte for addresses in its overlay range
// (when enabled), the mailbox/timer registers for the I/O page, or
// plain RAM otherwise.
func (b *Bus) Read8(addr uint16) uint8 {
	if b.romEnable && addr >= iplROMBase {
		return iplROM[addr-iplROMBase]
	}
	switch addr {
	case portTest:
		return b.test
	case portControl:
		return b.control
	case port0:
		return b.mbox.ReadByAPU(0)
	case port1:
		return b.mbox.ReadByAPU(1)
	case port2:
		return b.mbox.ReadByAPU(2)
	case port3:
		return b.mbox.ReadByAPU(3)
	case timer0, timer1, timer2:
		return b.timer[addr-timer0]
	case counter0, counter1, counter2:
		return b.counter[addr-counter0]
	}
	return b.ram[addr]
}

// Write8 always lands on RAM, even within the ROM overlay range; the
// I/O page ports are intercepted first.
func (b *Bus) Write8(addr uint16, v uint8) {
	switch addr {
	case portTest:
		b.test = v
		return
	case portControl:
		b.control = v
		b.romEnable = v&0x80 != 0
		return
	case port0:
		b.mbox.WriteFromAPU(0, v)
		return
	case port1:
		b.mbox.WriteFromAPU(1, v)
		return
	case port2:
		b.mbox.WriteFromAPU(2, v)
		return
	case port3:
		b.mbox.WriteFromAPU(3, v)
		return
	case timer0, timer1, timer2:
		b.timer[addr-timer0] = v
		return
	case counter0, counter1, counter2:
		return // counters are read-only latches, writes ignored
	}
	b.ram[addr] = v
}

// Read16 reads a little-endian word with 16-bit address wraparound.
func (b *Bus) Read16(addr uint16) uint16 {
	lo := b.Read8(addr)
	hi := b.Read8(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// Write16 writes a little-endian word with 16-bit address wraparound.
func (b *Bus) Write16(addr uint16, v uint16) {
	b.Write8(addr, uint8(v))
	b.Write8(addr+1, uint8(v>>8))
}

// ReadDirectPage16 reads a word wrapping within the same page, the
// form direct-page pointer fetches require.
func (b *Bus) ReadDirectPage16(addr uint16) uint16 {
	lo := b.Read8(addr)
	hiAddr := addr&0xFF00 | uint16(uint8(addr)+1)
	hi := b.Read8(hiAddr)
	return uint16(hi)<<8 | uint16(lo)
}

// RAM returns the backing RAM slice for debugger consumption.
func (b *Bus) RAM() []uint8 { return b.ram[:] }
