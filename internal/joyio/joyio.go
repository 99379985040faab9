// Package joyio implements the main CPU's controller register file:
// the auto-joypad-read shift registers JOY1L/H..JOY4L/H at
// $4218-$421F and the strobe latch bit 0 of $4016. No physical input
// device is wired up here (the windowing/input layer is out of scope);
// callers may inject a button state via SetButtons for testing, and
// absent that the register file reports an all-released controller.
package joyio

// JoyIo holds the four 16-bit controller shift registers and the
// write strobe.
type JoyIo struct {
	strobe uint8
	joy1   uint16
	joy2   uint16
	joy3   uint16
	joy4   uint16
}

// New returns a JoyIo reporting no buttons pressed on every pad.
func New() *JoyIo {
	return &JoyIo{}
}

// Reset clears the strobe and every pad's reported state.
func (j *JoyIo) Reset() {
	*j = JoyIo{}
}

// SetButtons injects the 16-bit button state a test wants JOYn to
// report; n is 1-4.
func (j *JoyIo) SetButtons(n int, state uint16) {
	switch n {
	case 1:
		j.joy1 = state
	case 2:
		j.joy2 = state
	case 3:
		j.joy3 = state
	case 4:
		j.joy4 = state
	}
}

// WriteStrobe writes $4016 bit 0.
func (j *JoyIo) WriteStrobe(value uint8) {
	j.strobe = value & 0x01
}

// ReadStrobe reads back $4016 bit 0.
func (j *JoyIo) ReadStrobe() uint8 {
	return j.strobe
}

// ReadJoy1L reads $4218.
func (j *JoyIo) ReadJoy1L() uint8 { return uint8(j.joy1) }

// ReadJoy1H reads $4219.
func (j *JoyIo) ReadJoy1H() uint8 { return uint8(j.joy1 >> 8) }

// ReadJoy2L reads $421A.
func (j *JoyIo) ReadJoy2L() uint8 { return uint8(j.joy2) }

// ReadJoy2H reads $421B.
func (j *JoyIo) ReadJoy2H() uint8 { return uint8(j.joy2 >> 8) }

// ReadJoy3L reads $421C.
func (j *JoyIo) ReadJoy3L() uint8 { return uint8(j.joy3) }

// ReadJoy3H reads $421D.
func (j *JoyIo) ReadJoy3H() uint8 { return uint8(j.joy3 >> 8) }

// ReadJoy4L reads $421E.
func (j *JoyIo) ReadJoy4L() uint8 { return uint8(j.joy4) }

// ReadJoy4H reads $421F.
func (j *JoyIo) ReadJoy4H() uint8 { return uint8(j.joy4 >> 8) }
