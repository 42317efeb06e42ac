package heap

import "testing"

func TestAddressReadWriteOffset(t *testing.T) {
	base := newTestRegion(t, 4)
	a := Address(base)

	a.Write(11)
	a.Offset(1).Write(22)
	a.Offset(2).Write(33)

	if got := a.Read(); got != 11 {
		t.Errorf("word 0 = %d, want 11", got)
	}

	if got := a.Offset(1).Read(); got != 22 {
		t.Errorf("word 1 = %d, want 22", got)
	}

	if got := a.Offset(2).Read(); got != 33 {
		t.Errorf("word 2 = %d, want 33", got)
	}
}

func TestAddressOfBlockRoundTrip(t *testing.T) {
	base := newTestRegion(t, 4)
	b := NewBlockAt(base, 4, 0)

	addr := addressOfBlock(b)
	if uintptr(addr) != base+WordSize {
		t.Errorf("addressOfBlock = %#x, want %#x", uintptr(addr), base+WordSize)
	}

	back := blockOfAddress(addr)
	if back.headerAddr != b.headerAddr {
		t.Errorf("blockOfAddress did not invert addressOfBlock")
	}
}
