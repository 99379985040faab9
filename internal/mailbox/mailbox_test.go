package mailbox

import "testing"

func TestAsymmetricHalves(t *testing.T) {
	m := New()
	m.WriteFromCPU(0, 0x42)
	m.WriteFromAPU(0, 0x99)

	if got := m.ReadByAPU(0); got != 0x42 {
		t.Errorf("ReadByAPU(0) = %#x, want 0x42", got)
	}
	if got := m.ReadByCPU(0); got != 0x99 {
		t.Errorf("ReadByCPU(0) = %#x, want 0x99", got)
	}
}

func TestPortsIndependent(t *testing.T) {
	m := New()
	m.WriteFromCPU(1, 0x11)
	m.WriteFromCPU(2, 0x22)
	if got := m.ReadByAPU(1); got != 0x11 {
		t.Errorf("port 1 = %#x, want 0x11", got)
	}
	if got := m.ReadByAPU(2); got != 0x22 {
		t.Errorf("port 2 = %#x, want 0x22", got)
	}
}
