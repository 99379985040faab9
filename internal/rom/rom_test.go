package rom

import (
	"bytes"
	"testing"
)

// buildLoROM returns a minimal valid LoROM image with the given
// chipset/ram bytes and reset vector.
func buildLoROM(chipset, ramSize uint8, resetVector uint16) []byte {
	data := make([]byte, 0x8000)
	data[headerBase+offsetMapMode] = 0x20
	data[headerBase+offsetChipset] = chipset
	data[headerBase+offsetROMSize] = 0x08
	data[headerBase+offsetRAMSize] = ramSize
	data[0x7FFC] = byte(resetVector)
	data[0x7FFD] = byte(resetVector >> 8)
	return data
}

func TestLoadMinimumProfile(t *testing.T) {
	data := buildLoROM(0x00, 0x00, 0x8000)
	c, err := LoadFromReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("LoadFromReader() error = %v", err)
	}
	if c.Header().Mapping != LoROM {
		t.Errorf("Mapping = %v, want LoROM", c.Header().Mapping)
	}
	if err := c.RequireMinimumProfile(); err != nil {
		t.Errorf("RequireMinimumProfile() error = %v", err)
	}
}

func TestUnsupportedChipsetRejected(t *testing.T) {
	data := buildLoROM(0x01, 0x00, 0x8000)
	c, err := LoadFromReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("LoadFromReader() error = %v", err)
	}
	if err := c.RequireMinimumProfile(); err == nil {
		t.Error("RequireMinimumProfile() expected error for non-ROM-only chipset")
	}
}

func TestReadResolvesBankOffset(t *testing.T) {
	data := buildLoROM(0x00, 0x00, 0x8000)
	data[0x0000] = 0xAB // bank $00 offset $8000
	c, err := LoadFromReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("LoadFromReader() error = %v", err)
	}
	got, err := c.Read(0x00, 0x8000)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got != 0xAB {
		t.Errorf("Read(0x00, 0x8000) = %#x, want 0xAB", got)
	}
}

func TestTooSmallRejected(t *testing.T) {
	if _, err := LoadFromReader(bytes.NewReader(make([]byte, 16))); err == nil {
		t.Error("LoadFromReader() expected error for undersized image")
	}
}

func TestNewMockCartridgeLoadsProgram(t *testing.T) {
	c := NewMockCartridge(0x11, 0x22, 0x33)
	if err := c.RequireMinimumProfile(); err != nil {
		t.Errorf("RequireMinimumProfile() error = %v", err)
	}
	for i, want := range []uint8{0x11, 0x22, 0x33} {
		got, err := c.Read(0x00, 0x8000+uint16(i))
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
		if got != want {
			t.Errorf("Read(0x00, %#x) = %#x, want %#x", 0x8000+i, got, want)
		}
	}
}
