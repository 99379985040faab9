package bus

import (
	"testing"

	"gones65/internal/mailbox"
	"gones65/internal/rom"
)

func newTestBus() *Bus {
	return New(nil, mailbox.New())
}

func TestROMReadsThroughMockCartridge(t *testing.T) {
	cart := rom.NewMockCartridge(0xAB, 0xCD)
	b := New(cart, mailbox.New())
	got, err := b.Read8(0x008000)
	if err != nil {
		t.Fatalf("Read8() error = %v", err)
	}
	if got != 0xAB {
		t.Errorf("Read8(bank $00, $8000) = %#x, want 0xAB", got)
	}
	got, err = b.Read8(0x008001)
	if err != nil {
		t.Fatalf("Read8() error = %v", err)
	}
	if got != 0xCD {
		t.Errorf("Read8(bank $00, $8001) = %#x, want 0xCD", got)
	}
}

func TestROMReadBelowWindowUnmapped(t *testing.T) {
	cart := rom.NewMockCartridge()
	b := New(cart, mailbox.New())
	if _, err := b.Read8(0x400000); err == nil { // bank $40 offset $0000, below the $8000 LoROM window
		t.Error("Read8() expected BusError below the LoROM window despite a loaded cartridge")
	}
}

func TestWRAMRoundTrip(t *testing.T) {
	b := newTestBus()
	addr := uint32(0x7E1234)
	if err := b.Write8(addr, 0xAB); err != nil {
		t.Fatalf("Write8() error = %v", err)
	}
	got, err := b.Read8(addr)
	if err != nil {
		t.Fatalf("Read8() error = %v", err)
	}
	if got != 0xAB {
		t.Errorf("Read8() = %#x, want 0xAB", got)
	}
}

func TestWRAMMirror(t *testing.T) {
	b := newTestBus()
	if err := b.Write8(0x000100, 0x55); err != nil {
		t.Fatalf("Write8() error = %v", err)
	}
	got, err := b.Read8(0x7E0100)
	if err != nil {
		t.Fatalf("Read8() error = %v", err)
	}
	if got != 0x55 {
		t.Errorf("mirrored WRAM Read8() = %#x, want 0x55", got)
	}
}

func TestBankWrappingAdd(t *testing.T) {
	got := WrapAdd(0x00FFFF, 1, Bank)
	if want := uint32(0x000000); got != want {
		t.Errorf("WrapAdd(Bank) = %#x, want %#x", got, want)
	}
	if got&0xFF0000 != 0x00FFFF&0xFF0000 {
		t.Errorf("bank byte not preserved: got %#x", got)
	}
}

func TestPageWrappingAdd(t *testing.T) {
	got := WrapAdd(0x0012FF, 1, Page)
	if want := uint32(0x001200); got != want {
		t.Errorf("WrapAdd(Page) = %#x, want %#x", got, want)
	}
}

func TestAddressSpaceWrappingAdd(t *testing.T) {
	got := WrapAdd(0xFFFFFF, 1, AddressSpace)
	if want := uint32(0x000000); got != want {
		t.Errorf("WrapAdd(AddressSpace) = %#x, want %#x", got, want)
	}
}

func TestMpyDivRegistersThroughBus(t *testing.T) {
	b := newTestBus()
	must := func(err error) {
		if err != nil {
			t.Fatalf("Write8() error = %v", err)
		}
	}
	must(b.Write8(0x004204, 0xAB)) // WRDIVL
	must(b.Write8(0x004205, 0xCD)) // WRDIVH
	must(b.Write8(0x004206, 0x00)) // WRDIVB, divide by zero

	readOrFatal := func(addr uint32) uint8 {
		v, err := b.Read8(addr)
		if err != nil {
			t.Fatalf("Read8(%#x) error = %v", addr, err)
		}
		return v
	}
	if got := readOrFatal(0x004214); got != 0xFF { // RDDIVL
		t.Errorf("RDDIVL = %#x, want 0xFF", got)
	}
	if got := readOrFatal(0x004215); got != 0xFF { // RDDIVH
		t.Errorf("RDDIVH = %#x, want 0xFF", got)
	}
	if got := readOrFatal(0x004216); got != 0xAB { // RDMPYL
		t.Errorf("RDMPYL = %#x, want 0xAB", got)
	}
	if got := readOrFatal(0x004217); got != 0xCD { // RDMPYH
		t.Errorf("RDMPYH = %#x, want 0xCD", got)
	}
}

func TestPpuIoLatchScenario(t *testing.T) {
	b := newTestBus()
	if err := b.Write8(0x002100+0x0D, 0x34); err != nil { // BG1HOFS low
		t.Fatalf("Write8() error = %v", err)
	}
	if err := b.Write8(0x002100+0x0D, 0x12); err != nil { // BG1HOFS high
		t.Fatalf("Write8() error = %v", err)
	}
	if got := b.Ppu().Bg1Hofs.Value(); got != 0x1234 {
		t.Errorf("Bg1Hofs = %#x, want 0x1234", got)
	}
}

func TestWriteOnlyPPURegisterRejectsRead(t *testing.T) {
	b := newTestBus()
	if _, err := b.Read8(0x002105); err == nil { // BGMODE, write-only
		t.Error("Read8() expected BusError for write-only PPU register")
	}
}

func TestReadOnlyPPURegisterRejectsWrite(t *testing.T) {
	b := newTestBus()
	if err := b.Write8(0x002134, 0x00); err == nil { // MPYL, read-only
		t.Error("Write8() expected BusError for read-only PPU register")
	}
}

func TestExpansionRegionUnmapped(t *testing.T) {
	b := newTestBus()
	if _, err := b.Read8(0x006000); err == nil {
		t.Error("Read8() expected BusError in expansion region")
	}
}

func TestAPUMailboxSplitHalves(t *testing.T) {
	mbox := mailbox.New()
	b := New(nil, mbox)
	mbox.WriteFromAPU(0, 0x7A)
	got, err := b.Read8(0x002140)
	if err != nil {
		t.Fatalf("Read8() error = %v", err)
	}
	if got != 0x7A {
		t.Errorf("Read8(APU port mirror via CPU) = %#x, want 0x7A", got)
	}
}

func TestWMDataAutoIncrement(t *testing.T) {
	b := newTestBus()
	must := func(err error) {
		if err != nil {
			t.Fatalf("error = %v", err)
		}
	}
	must(b.Write8(0x002181, 0x00)) // WMADDL
	must(b.Write8(0x002182, 0x00)) // WMADDM
	must(b.Write8(0x002183, 0x00)) // WMADDH
	must(b.Write8(0x002180, 0x11))
	must(b.Write8(0x002180, 0x22))

	got, err := b.Read8(0x7E0000)
	if err != nil {
		t.Fatalf("Read8() error = %v", err)
	}
	if got != 0x11 {
		t.Errorf("WRAM[0] = %#x, want 0x11", got)
	}
	got, err = b.Read8(0x7E0001)
	if err != nil {
		t.Fatalf("Read8() error = %v", err)
	}
	if got != 0x22 {
		t.Errorf("WRAM[1] = %#x, want 0x22", got)
	}
}
