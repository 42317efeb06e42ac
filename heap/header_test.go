package heap

import "testing"

func TestHeaderNew(t *testing.T) {
	h := NewHeader(14, 42)

	if got := h.BlockSize(); got != 42 {
		t.Errorf("BlockSize() = %d, want 42", got)
	}

	if got := h.PredBlockSize(); got != 14 {
		t.Errorf("PredBlockSize() = %d, want 14", got)
	}
}

func TestHeaderChangeSizes(t *testing.T) {
	h := NewHeader(42, 42)

	if h.BlockSize() != 42 || h.PredBlockSize() != 42 {
		t.Fatalf("unexpected initial header %+v", h)
	}

	h.SetSize(10)

	if h.BlockSize() != 10 {
		t.Errorf("after SetSize(10), BlockSize() = %d, want 10", h.BlockSize())
	}

	if h.PredBlockSize() != 42 {
		t.Errorf("SetSize must not disturb pred_size, got %d", h.PredBlockSize())
	}

	h.IncSize(2)

	if h.BlockSize() != 12 {
		t.Errorf("after IncSize(2), BlockSize() = %d, want 12", h.BlockSize())
	}

	h.SetPredSize(5)

	if h.PredBlockSize() != 5 {
		t.Errorf("after SetPredSize(5), PredBlockSize() = %d, want 5", h.PredBlockSize())
	}

	if h.BlockSize() != 12 {
		t.Errorf("SetPredSize must not disturb own_size, got %d", h.BlockSize())
	}
}

func TestHeaderLayoutIsObservable(t *testing.T) {
	// own_size occupies the low half of the word, pred_size the high
	// half. This is the compatibility-critical bit layout clients may
	// rely on if they dump heap bytes directly.
	h := NewHeader(1, 2)

	low := Word(h) & sizeMask
	high := Word(h) >> headerShift

	if low != 2 {
		t.Errorf("low half (own_size) = %d, want 2", low)
	}

	if high != 1 {
		t.Errorf("high half (pred_size) = %d, want 1", high)
	}
}

func TestHalfWordMaxFitsHeaderHalf(t *testing.T) {
	if uint64(HalfWordMax) != uint64(sizeMask) {
		t.Errorf("HalfWordMax = %d, want %d (sizeMask)", uint64(HalfWordMax), uint64(sizeMask))
	}
}
