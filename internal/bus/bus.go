// Package bus implements the 24-bit main address bus that mediates
// every access the 65C816 core makes: WRAM/VRAM/OAM/CGRAM storage, the
// cartridge ROM window, the PPU I/O / DMA / math / joypad register
// files, the three address-wrapping families, and the CPU-side half of
// the APU mailbox.
package bus

import (
	"fmt"

	"gones65/internal/dma"
	"gones65/internal/joyio"
	"gones65/internal/mailbox"
	"gones65/internal/mpydiv"
	"gones65/internal/ppuio"
	"gones65/internal/rom"
)

// WrappingMode tags how a multi-byte composite access carries across a
// boundary.
type WrappingMode uint8

const (
	// AddressSpace wraps the full 24-bit address with carry.
	AddressSpace WrappingMode = iota
	// Bank wraps the low 16 bits, preserving the bank byte.
	Bank
	// Page wraps the low 8 bits, preserving the high 16 bits.
	Page
)

func (w WrappingMode) String() string {
	switch w {
	case AddressSpace:
		return "address-space"
	case Bank:
		return "bank"
	case Page:
		return "page"
	default:
		return "unknown"
	}
}

// WrapAdd advances addr by k under the given wrapping family.
func WrapAdd(addr uint32, k int32, mode WrappingMode) uint32 {
	switch mode {
	case Bank:
		bankPart := addr & 0xFF0000
		low := uint16(addr) + uint16(int16(k))
		return bankPart | uint32(low)
	case Page:
		highPart := addr & 0xFFFF00
		low := uint8(addr) + uint8(int8(k))
		return highPart | uint32(low)
	default:
		return (addr + uint32(k)) & 0xFFFFFF
	}
}

// BusError reports a programmer/ROM-level access violation: an
// unmapped region, or a read/write against the wrong half of a
// split-window register. Every such error is fatal per the core's
// error-handling design; there is no recovery path.
type BusError struct {
	Address uint32
	Reason  string
}

func (e *BusError) Error() string {
	return fmt.Sprintf("bus: $%06X: %s", e.Address, e.Reason)
}

const (
	wramSize  = 128 * 1024
	vramSize  = 64 * 1024
	oamSize   = 544
	cgramSize = 512
)

// Bus owns every main-CPU-visible memory region and register file.
type Bus struct {
	wram  [wramSize]uint8
	vram  [vramSize]uint8
	oam   [oamSize]uint8
	cgram [cgramSize]uint8

	cart *rom.Cartridge

	mpy   *mpydiv.MpyDiv
	dma   *dma.Dma
	ppu   *ppuio.PpuIo
	joy   *joyio.JoyIo
	mbox  *mailbox.Mailbox

	// Standalone CPU control registers not owned by a sub-component.
	nmitimen uint8
	wrio     uint8
	htimeL   uint8
	htimeH   uint8
	vtimeL   uint8
	vtimeH   uint8
	memsel   uint8
	rdnmi    uint8
	timeup   uint8
	hvbjoy   uint8
	rdio     uint8

	wmAddL uint8
	wmAddM uint8
	wmAddH uint8
}

// New builds a Bus around the given cartridge and shared mailbox. cart
// may be nil for unit tests that never touch ROM-mapped addresses.
func New(cart *rom.Cartridge, mbox *mailbox.Mailbox) *Bus {
	b := &Bus{
		cart: cart,
		mpy:  mpydiv.New(),
		dma:  dma.New(),
		ppu:  ppuio.New(),
		joy:  joyio.New(),
		mbox: mbox,
	}
	return b
}

// Reset restores every sub-component and register to power-on state.
// WRAM/VRAM/OAM/CGRAM are left as-is; real hardware does not clear RAM
// on reset and tests rely on pre-seeding these regions before reset.
func (b *Bus) Reset() {
	b.mpy.Reset()
	b.dma.Reset()
	b.ppu.Reset()
	b.joy.Reset()
	b.nmitimen = 0
	b.wrio = 0
	b.htimeL, b.htimeH = 0, 0
	b.vtimeL, b.vtimeH = 0, 0
	b.memsel = 0
	b.rdnmi = 0
	b.timeup = 0
	b.hvbjoy = 0
	b.rdio = 0
	b.wmAddL, b.wmAddM, b.wmAddH = 0, 0, 0
}

// Mpy, Dma, Ppu, Joy expose the sub-component register files directly,
// for tests and for a future debugger that wants typed access rather
// than address-indexed peeking.
func (b *Bus) Mpy() *mpydiv.MpyDiv { return b.mpy }
func (b *Bus) Dma() *dma.Dma       { return b.dma }
func (b *Bus) Ppu() *ppuio.PpuIo   { return b.ppu }
func (b *Bus) Joy() *joyio.JoyIo   { return b.joy }

// WRAM, VRAM, OAM, CGRAM return read-only slices of the backing
// storage for a debugger to inspect.
func (b *Bus) WRAM() []uint8  { return b.wram[:] }
func (b *Bus) VRAM() []uint8  { return b.vram[:] }
func (b *Bus) OAM() []uint8   { return b.oam[:] }
func (b *Bus) CGRAM() []uint8 { return b.cgram[:] }

func isSystemBank(bank uint8) bool {
	return bank <= 0x3F || (bank >= 0x80 && bank <= 0xBF)
}

func isWRAMBank(bank uint8) bool {
	return bank == 0x7E || bank == 0x7F
}

// Read8 resolves a 24-bit address to a byte, routing through RAM,
// cartridge ROM, or a register file, and applying side effects such as
// latch toggles and WMADD auto-increment.
func (b *Bus) Read8(addr uint32) (uint8, error) {
	bank := uint8(addr >> 16)
	off := uint16(addr)

	if isWRAMBank(bank) {
		return b.wram[(uint32(bank-0x7E))<<16|uint32(off)], nil
	}

	if isSystemBank(bank) && off < 0x8000 {
		return b.readSystemArea(addr, off)
	}

	return b.readROM(addr, bank, off)
}

// Write8 is the write-side counterpart of Read8.
func (b *Bus) Write8(addr uint32, value uint8) error {
	bank := uint8(addr >> 16)
	off := uint16(addr)

	if isWRAMBank(bank) {
		b.wram[(uint32(bank-0x7E))<<16|uint32(off)] = value
		return nil
	}

	if isSystemBank(bank) && off < 0x8000 {
		return b.writeSystemArea(addr, off, value)
	}

	return b.writeROM(addr)
}

func (b *Bus) readROM(addr uint32, bank uint8, off uint16) (uint8, error) {
	if off < 0x8000 {
		return 0, &BusError{Address: addr, Reason: "unmapped expansion/system region"}
	}
	if b.cart == nil {
		return 0, &BusError{Address: addr, Reason: "no cartridge loaded"}
	}
	v, err := b.cart.Read(bank, off)
	if err != nil {
		return 0, &BusError{Address: addr, Reason: err.Error()}
	}
	return v, nil
}

func (b *Bus) writeROM(addr uint32) error {
	// Writes to cartridge ROM are ignored in production; tests that
	// need a writable backing store talk to the cartridge directly.
	_ = addr
	return nil
}

func (b *Bus) readSystemArea(addr uint32, off uint16) (uint8, error) {
	switch {
	case off < 0x2000:
		return b.wram[off], nil
	case off >= 0x2100 && off <= 0x213F:
		rel := uint8(off - 0x2100)
		if rel <= 0x33 {
			return 0, &BusError{Address: addr, Reason: "read from write-only PPU I/O register"}
		}
		return b.ppu.Read(rel), nil
	case off >= 0x2140 && off <= 0x2147:
		port := int(off-0x2140) & 3
		return b.mbox.ReadByCPU(port), nil
	case off == 0x2180:
		return b.readWMData(), nil
	case off == 0x2181 || off == 0x2182 || off == 0x2183:
		return 0, &BusError{Address: addr, Reason: "read from write-only WMADD register"}
	case off == 0x4016:
		return 0, nil
	case off == 0x4017:
		return 0, nil
	case off == 0x4200:
		return b.nmitimen, nil
	case off == 0x4201:
		return b.wrio, nil
	case off == 0x4210:
		return b.rdnmi, nil
	case off == 0x4211:
		return b.timeup, nil
	case off == 0x4212:
		return b.hvbjoy, nil
	case off == 0x4213:
		return b.rdio, nil
	case off == 0x4214:
		return b.mpy.DivResLow(), nil
	case off == 0x4215:
		return b.mpy.DivResHigh(), nil
	case off == 0x4216:
		return b.mpy.MpyResLow(), nil
	case off == 0x4217:
		return b.mpy.MpyResHigh(), nil
	case off == 0x4218:
		return b.joy.ReadJoy1L(), nil
	case off == 0x4219:
		return b.joy.ReadJoy1H(), nil
	case off == 0x421A:
		return b.joy.ReadJoy2L(), nil
	case off == 0x421B:
		return b.joy.ReadJoy2H(), nil
	case off == 0x421C:
		return b.joy.ReadJoy3L(), nil
	case off == 0x421D:
		return b.joy.ReadJoy3H(), nil
	case off == 0x421E:
		return b.joy.ReadJoy4L(), nil
	case off == 0x421F:
		return b.joy.ReadJoy4H(), nil
	case off >= 0x4300 && off <= 0x43FF:
		return b.dma.Read(off - 0x4300), nil
	case off >= 0x6000 && off <= 0x7FFF:
		return 0, &BusError{Address: addr, Reason: "unmapped cartridge expansion region"}
	case off >= 0x2000 && off < 0x2100:
		return 0, &BusError{Address: addr, Reason: "unmapped region"}
	case off >= 0x2148 && off < 0x2180:
		return 0, &BusError{Address: addr, Reason: "unmapped region"}
	case off >= 0x2184 && off < 0x4016:
		return 0, &BusError{Address: addr, Reason: "unmapped region"}
	case off >= 0x4018 && off < 0x4200:
		return 0, &BusError{Address: addr, Reason: "unmapped region"}
	default:
		return 0, &BusError{Address: addr, Reason: "unmapped region"}
	}
}

func (b *Bus) writeSystemArea(addr uint32, off uint16, value uint8) error {
	switch {
	case off < 0x2000:
		b.wram[off] = value
		return nil
	case off >= 0x2100 && off <= 0x213F:
		rel := uint8(off - 0x2100)
		if rel > 0x33 {
			return &BusError{Address: addr, Reason: "write to read-only PPU I/O register"}
		}
		b.ppu.Write(rel, value)
		return nil
	case off >= 0x2140 && off <= 0x2147:
		port := int(off-0x2140) & 3
		b.mbox.WriteFromCPU(port, value)
		return nil
	case off == 0x2180:
		b.writeWMData(value)
		return nil
	case off == 0x2181:
		b.wmAddL = value
		return nil
	case off == 0x2182:
		b.wmAddM = value
		return nil
	case off == 0x2183:
		b.wmAddH = value & 0x01
		return nil
	case off == 0x4016:
		b.joy.WriteStrobe(value)
		return nil
	case off == 0x4200:
		b.nmitimen = value
		return nil
	case off == 0x4201:
		b.wrio = value
		return nil
	case off == 0x4202:
		b.mpy.SetMultiplicand(value)
		return nil
	case off == 0x4203:
		b.mpy.SetMultiplierAndStartMultiply(value)
		return nil
	case off == 0x4204:
		b.mpy.SetDividendLow(value)
		return nil
	case off == 0x4205:
		b.mpy.SetDividendHigh(value)
		return nil
	case off == 0x4206:
		b.mpy.SetDivisorAndStartDivision(value)
		return nil
	case off == 0x4207:
		b.htimeL = value
		return nil
	case off == 0x4208:
		b.htimeH = value
		return nil
	case off == 0x4209:
		b.vtimeL = value
		return nil
	case off == 0x420A:
		b.vtimeH = value
		return nil
	case off == 0x420B:
		b.dma.WriteMdmaEn(value)
		return nil
	case off == 0x420C:
		b.dma.WriteHdmaEn(value)
		return nil
	case off == 0x420D:
		b.memsel = value
		return nil
	case off >= 0x4300 && off <= 0x43FF:
		b.dma.Write(off-0x4300, value)
		return nil
	case off >= 0x6000 && off <= 0x7FFF:
		return &BusError{Address: addr, Reason: "unmapped cartridge expansion region"}
	case off >= 0x4218 && off <= 0x421F:
		return &BusError{Address: addr, Reason: "write to read-only joypad register"}
	default:
		return &BusError{Address: addr, Reason: "unmapped region"}
	}
}

func (b *Bus) wmAddress() uint32 {
	return uint32(b.wmAddH&0x01)<<16 | uint32(b.wmAddM)<<8 | uint32(b.wmAddL)
}

func (b *Bus) advanceWMAddress() {
	addr := (b.wmAddress() + 1) & 0x1FFFF
	b.wmAddL = uint8(addr)
	b.wmAddM = uint8(addr >> 8)
	b.wmAddH = uint8(addr >> 16)
}

func (b *Bus) readWMData() uint8 {
	v := b.wram[b.wmAddress()]
	b.advanceWMAddress()
	return v
}

func (b *Bus) writeWMData(value uint8) {
	b.wram[b.wmAddress()] = value
	b.advanceWMAddress()
}

// Read16 and Read24 perform little-endian composite reads, advancing
// the address between bytes according to mode.
func (b *Bus) Read16(addr uint32, mode WrappingMode) (uint16, error) {
	lo, err := b.Read8(addr)
	if err != nil {
		return 0, err
	}
	hi, err := b.Read8(WrapAdd(addr, 1, mode))
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

func (b *Bus) Read24(addr uint32, mode WrappingMode) (uint32, error) {
	lo, err := b.Read8(addr)
	if err != nil {
		return 0, err
	}
	mid, err := b.Read8(WrapAdd(addr, 1, mode))
	if err != nil {
		return 0, err
	}
	hi, err := b.Read8(WrapAdd(addr, 2, mode))
	if err != nil {
		return 0, err
	}
	return uint32(hi)<<16 | uint32(mid)<<8 | uint32(lo), nil
}

func (b *Bus) Write16(addr uint32, value uint16, mode WrappingMode) error {
	if err := b.Write8(addr, uint8(value)); err != nil {
		return err
	}
	return b.Write8(WrapAdd(addr, 1, mode), uint8(value>>8))
}

func (b *Bus) Write24(addr uint32, value uint32, mode WrappingMode) error {
	if err := b.Write8(addr, uint8(value)); err != nil {
		return err
	}
	if err := b.Write8(WrapAdd(addr, 1, mode), uint8(value>>8)); err != nil {
		return err
	}
	return b.Write8(WrapAdd(addr, 2, mode), uint8(value>>16))
}

// ReadPeek8 mirrors Read8 but never mutates latch state: PPU I/O
// double-registers are peeked instead of toggled, and the WRAM data
// port is read without advancing WMADD. It exists for the disassembler
// and any other read-only observer.
func (b *Bus) ReadPeek8(addr uint32) (uint8, error) {
	bank := uint8(addr >> 16)
	off := uint16(addr)

	if isWRAMBank(bank) {
		return b.wram[(uint32(bank-0x7E))<<16|uint32(off)], nil
	}
	if isSystemBank(bank) && off < 0x8000 {
		switch {
		case off >= 0x2100 && off <= 0x213F:
			rel := uint8(off - 0x2100)
			if rel <= 0x33 {
				return 0, &BusError{Address: addr, Reason: "read from write-only PPU I/O register"}
			}
			return b.ppu.Peek(rel), nil
		case off == 0x2180:
			return b.wram[b.wmAddress()], nil
		default:
			return b.readSystemArea(addr, off)
		}
	}
	return b.readROM(addr, bank, off)
}

// ReadPeek16 and ReadPeek24 are the composite counterparts of
// ReadPeek8.
func (b *Bus) ReadPeek16(addr uint32, mode WrappingMode) (uint16, error) {
	lo, err := b.ReadPeek8(addr)
	if err != nil {
		return 0, err
	}
	hi, err := b.ReadPeek8(WrapAdd(addr, 1, mode))
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

func (b *Bus) ReadPeek24(addr uint32, mode WrappingMode) (uint32, error) {
	lo, err := b.ReadPeek8(addr)
	if err != nil {
		return 0, err
	}
	mid, err := b.ReadPeek8(WrapAdd(addr, 1, mode))
	if err != nil {
		return 0, err
	}
	hi, err := b.ReadPeek8(WrapAdd(addr, 2, mode))
	if err != nil {
		return 0, err
	}
	return uint32(hi)<<16 | uint32(mid)<<8 | uint32(lo), nil
}

// FetchOperand8 reads the single byte following the opcode at pcAddr
// (bank-wrapped).
func (b *Bus) FetchOperand8(pcAddr uint32) (uint8, error) {
	return b.Read8(WrapAdd(pcAddr, 1, Bank))
}

// FetchOperand16 reads the two bytes following the opcode at pcAddr
// (bank-wrapped).
func (b *Bus) FetchOperand16(pcAddr uint32) (uint16, error) {
	return b.Read16(WrapAdd(pcAddr, 1, Bank), Bank)
}

// FetchOperand24 reads the three bytes following the opcode at pcAddr
// (bank-wrapped).
func (b *Bus) FetchOperand24(pcAddr uint32) (uint32, error) {
	return b.Read24(WrapAdd(pcAddr, 1, Bank), Bank)
}
