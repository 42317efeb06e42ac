package heap

import (
	"testing"
	"unsafe"
)

func TestWordSizeMatchesHalfWordPairing(t *testing.T) {
	if WordSize != 4 && WordSize != 8 {
		t.Fatalf("WordSize = %d, want 4 or 8", WordSize)
	}

	var w Word

	if int(unsafe.Sizeof(w)) != WordSize {
		t.Errorf("sizeof(Word) = %d, want %d", unsafe.Sizeof(w), WordSize)
	}

	var hw HalfWord

	if got := int(unsafe.Sizeof(hw)) * 2; got != WordSize {
		t.Errorf("HalfWord is %d bytes, want half of WordSize (%d)", unsafe.Sizeof(hw), WordSize)
	}
}

func TestHalfWordMaxIsFullRange(t *testing.T) {
	var hw HalfWord = HalfWordMax

	hw++

	if hw != 0 {
		t.Errorf("HalfWordMax+1 = %d, want wraparound to 0", hw)
	}
}
