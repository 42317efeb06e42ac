package heap

// headerShift is the bit width of a HalfWord: own_size occupies the low
// headerShift bits of a Header, pred_size the high headerShift bits.
const headerShift = WordSize * 8 / 2

// sizeMask selects the low half of a Header word (own_size).
const sizeMask = Word(1)<<headerShift - 1

// Header is the one-word, in-band descriptor at the start of every block:
// own_size in the low half, pred_size in the high half. This bit
// assignment is observable (clients may dump heap bytes directly) and
// must not change independently of FormatVersion.
type Header Word

// NewHeader packs a predecessor size and an own size into a single Header
// word.
func NewHeader(predSize, ownSize HalfWord) Header {
	return Header(Word(predSize)<<headerShift | Word(ownSize))
}

// BlockSize returns own_size: the total size of the block in words,
// including the header word itself.
func (h Header) BlockSize() HalfWord {
	return HalfWord(Word(h) & sizeMask)
}

// PredBlockSize returns pred_size: the total size in words of the block
// immediately preceding this one, or 0 if this block starts the region.
func (h Header) PredBlockSize() HalfWord {
	return HalfWord(Word(h) >> headerShift)
}

// SetSize overwrites own_size, leaving pred_size untouched.
func (h *Header) SetSize(value HalfWord) {
	*h = Header(Word(*h)&^sizeMask | Word(value))
}

// IncSize adds value to own_size, leaving pred_size untouched. Overflow of
// the HalfWord range is the caller's responsibility to avoid; it is
// undefined here.
func (h *Header) IncSize(value HalfWord) {
	h.SetSize(h.BlockSize() + value)
}

// SetPredSize overwrites pred_size, leaving own_size untouched.
func (h *Header) SetPredSize(value HalfWord) {
	*h = Header(Word(*h)&sizeMask | Word(value)<<headerShift)
}
