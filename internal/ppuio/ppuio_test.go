package ppuio

import "testing"

func TestResetValues(t *testing.T) {
	p := New()
	if p.IniDisp != 0x08 {
		t.Errorf("IniDisp = %#x, want 0x08", p.IniDisp)
	}
	if p.BgMode != 0x0F {
		t.Errorf("BgMode = %#x, want 0x0F", p.BgMode)
	}
	if p.VmAin != 0x0F {
		t.Errorf("VmAin = %#x, want 0x0F", p.VmAin)
	}
	if p.MpyL != 0x01 {
		t.Errorf("MpyL = %#x, want 0x01", p.MpyL)
	}
	if got := p.M7A.Value(); got != 0x00FF {
		t.Errorf("M7A = %#x, want 0x00FF", got)
	}
	if got := p.M7B.Value(); got != 0x00FF {
		t.Errorf("M7B = %#x, want 0x00FF", got)
	}
	if got := p.OpHct.Value(); got != 0x01FF {
		t.Errorf("OpHct = %#x, want 0x01FF", got)
	}
	if got := p.OpVct.Value(); got != 0x01FF {
		t.Errorf("OpVct = %#x, want 0x01FF", got)
	}
}

func TestDoubleRegWrite(t *testing.T) {
	var r DoubleReg
	r.Write(0x34)
	r.Write(0x12)
	if got := r.Value(); got != 0x1234 {
		t.Errorf("Value() = %#x, want 0x1234", got)
	}
	// A third write restarts at the low byte, per the scenario in §8.7.
	r.Write(0xAB)
	if got := r.Value(); got != 0x12AB {
		t.Errorf("Value() after third write = %#x, want 0x12AB", got)
	}
}

func TestDoubleRegRead(t *testing.T) {
	var r DoubleReg
	r.Write(0x34)
	r.Write(0x12)
	if got := r.Read(); got != 0x34 {
		t.Errorf("first Read() = %#x, want 0x34", got)
	}
	if got := r.Read(); got != 0x12 {
		t.Errorf("second Read() = %#x, want 0x12", got)
	}
}

func TestBg1HofsLatchScenario(t *testing.T) {
	p := New()
	p.Write(BG1HOFS, 0x34)
	p.Write(BG1HOFS, 0x12)
	if got := p.Bg1Hofs.Value(); got != 0x1234 {
		t.Errorf("Bg1Hofs = %#x, want 0x1234", got)
	}
}
