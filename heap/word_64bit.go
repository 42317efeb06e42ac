//go:build !386 && !arm && !mips && !mipsle && !mips64p32 && !mips64p32le

package heap

// Word is the machine pointer-sized integer on 64-bit architectures.
type Word = uint64

// HalfWord is half of Word: the unit the header stores own_size and
// pred_size in.
type HalfWord = uint32

const (
	wordSizeBytes = 8
	halfWordMax   = HalfWord(^uint32(0))
)
