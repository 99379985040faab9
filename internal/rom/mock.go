package rom

import "bytes"

// NewMockCartridge builds a minimal valid LoROM cartridge (mapping
// LoROM, chipset $00 ROM-only, RAM size $00) with program loaded at
// bank $00 offset $8000 and the reset vector pointing there. It exists
// for other packages' tests to exercise a real rom.Cartridge without
// building a ROM file on disk, mirroring the teacher repo's
// MockCartridge fixture in test/test_utilities.go.
func NewMockCartridge(program ...uint8) *Cartridge {
	data := make([]byte, 0x8000)
	data[headerBase+offsetMapMode] = 0x20 // LoROM, slow
	data[headerBase+offsetChipset] = 0x00 // ROM only
	data[headerBase+offsetROMSize] = 0x08
	data[headerBase+offsetRAMSize] = 0x00
	data[0x7FFC] = 0x00
	data[0x7FFD] = 0x80 // reset vector $8000
	copy(data[0x0000:], program)

	cart, err := LoadFromReader(bytes.NewReader(data))
	if err != nil {
		// data above is always a well-formed minimum-profile LoROM
		// image; a failure here means the fixture itself is broken.
		panic("rom: NewMockCartridge built an invalid fixture: " + err.Error())
	}
	return cart
}
