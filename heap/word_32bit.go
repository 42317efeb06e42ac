//go:build 386 || arm || mips || mipsle || mips64p32 || mips64p32le

package heap

// Word is the machine pointer-sized integer on 32-bit architectures.
type Word = uint32

// HalfWord is half of Word: the unit the header stores own_size and
// pred_size in.
type HalfWord = uint16

const (
	wordSizeBytes = 4
	halfWordMax   = HalfWord(^uint16(0))
)
