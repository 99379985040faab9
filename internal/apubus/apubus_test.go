package apubus

import (
	"testing"

	"gones65/internal/mailbox"
)

func TestIPLROMOverlayReadsROM(t *testing.T) {
	b := New(mailbox.New())
	if got := b.Read8(0xFFC0); got != 0xCD {
		t.Errorf("Read8($FFC0) = %#x, want 0xCD", got)
	}
	if got := b.Read8(0xFFFF); got != 0xFF {
		t.Errorf("Read8($FFFF) = %#x, want 0xFF", got)
	}
}

func TestIPLROMWritesFallThroughToRAM(t *testing.T) {
	b := New(mailbox.New())
	b.Write8(0xFFC0, 0x42)
	if got := b.Read8(0xFFC0); got != 0xCD {
		t.Errorf("Read8($FFC0) after write = %#x, want 0xCD (ROM still shadows)", got)
	}
	b.control = 0 // disable overlay directly to inspect the RAM underneath
	b.romEnable = false
	if got := b.Read8(0xFFC0); got != 0x42 {
		t.Errorf("underlying RAM at $FFC0 = %#x, want 0x42", got)
	}
}

func TestMailboxPortsThroughBus(t *testing.T) {
	mbox := mailbox.New()
	b := New(mbox)
	mbox.WriteFromCPU(0, 0x99)
	if got := b.Read8(0xF4); got != 0x99 {
		t.Errorf("Read8($F4) = %#x, want 0x99", got)
	}
	b.Write8(0xF5, 0x77)
	if got := mbox.ReadByCPU(1); got != 0x77 {
		t.Errorf("mbox.ReadByCPU(1) = %#x, want 0x77", got)
	}
}

func TestRAMRoundTrip(t *testing.T) {
	b := New(mailbox.New())
	b.Write16(0x0200, 0xBEEF)
	if got := b.Read16(0x0200); got != 0xBEEF {
		t.Errorf("Read16(0x0200) = %#x, want 0xBEEF", got)
	}
}
