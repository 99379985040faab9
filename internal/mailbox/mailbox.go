// Package mailbox implements the four shared 16-bit cells that are the
// only synchronization channel between the main CPU and the APU CPU.
// Each cell has disjoint read/write halves: the main CPU writes the
// low byte and reads the high byte, the APU CPU writes the high byte
// and reads the low byte. A single Mailbox is shared by pointer
// between the main bus and the APU bus so neither side needs to poll
// or copy the other's half.
package mailbox

// Mailbox holds the four APU I/O ports at $2140-$2147 (and their
// mirror inside the APU's own address space).
type Mailbox struct {
	ports [4]uint16
}

// New returns a Mailbox with all ports zeroed.
func New() *Mailbox {
	return &Mailbox{}
}

// Reset zeroes every port.
func (m *Mailbox) Reset() {
	*m = Mailbox{}
}

// WriteFromCPU stores the main CPU's half of port n (0-3).
func (m *Mailbox) WriteFromCPU(n int, value uint8) {
	m.ports[n] = m.ports[n]&0xFF00 | uint16(value)
}

// ReadByCPU returns the APU-written half of port n.
func (m *Mailbox) ReadByCPU(n int) uint8 {
	return uint8(m.ports[n] >> 8)
}

// WriteFromAPU stores the APU's half of port n.
func (m *Mailbox) WriteFromAPU(n int, value uint8) {
	m.ports[n] = m.ports[n]&0x00FF | uint16(value)<<8
}

// ReadByAPU returns the CPU-written half of port n.
func (m *Mailbox) ReadByAPU(n int) uint8 {
	return uint8(m.ports[n])
}
