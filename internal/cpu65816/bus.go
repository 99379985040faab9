package cpu65816

import "gones65/internal/bus"

// Bus is the memory interface the 65C816 core requires. *bus.Bus
// satisfies it in production; tests substitute a MockBus.
type Bus interface {
	Read8(addr uint32) (uint8, error)
	Write8(addr uint32, value uint8) error
	Read16(addr uint32, mode bus.WrappingMode) (uint16, error)
	Write16(addr uint32, value uint16, mode bus.WrappingMode) error
	Read24(addr uint32, mode bus.WrappingMode) (uint32, error)
	Write24(addr uint32, value uint32, mode bus.WrappingMode) error
	ReadPeek8(addr uint32) (uint8, error)
	ReadPeek16(addr uint32, mode bus.WrappingMode) (uint16, error)
	ReadPeek24(addr uint32, mode bus.WrappingMode) (uint32, error)
}
