// Package smallstring provides a compact owned string with a small-buffer
// optimization: short strings are stored inline, longer ones on the heap as a
// regular Go string.
package smallstring

// maxInlineLen is the largest string that fits in the inline buffer: 15
// bytes of payload plus one length/discriminator byte fill two words on a
// 64-bit target.
const maxInlineLen = 15

// SmallString is a small, owned string. The zero value is the empty string.
//
// Go strings are already immutable, heap-allocated, non-relocating values,
// so the "long" case simply stores a string; no unsafe is needed. The
// inline buffer and the tag bit packed into the length byte are what make
// the short case allocation-free to build and copy.
type SmallString struct {
	inline    [maxInlineLen]byte
	inlineLen uint8 // high bit set => inline string of length (inlineLen &^ 0x80)
	long      string
}

const inlineFlag = 0x80

// New builds a SmallString from s, choosing the inline or heap
// representation based on its length.
func New(s string) SmallString {
	if len(s) <= maxInlineLen {
		var ss SmallString
		copy(ss.inline[:], s)
		ss.inlineLen = inlineFlag | uint8(len(s))
		return ss
	}
	return SmallString{long: s}
}

func (s SmallString) isInline() bool {
	return s.inlineLen&inlineFlag != 0
}

// String returns the string view.
func (s SmallString) String() string {
	if s.isInline() {
		n := s.inlineLen &^ inlineFlag
		return string(s.inline[:n])
	}
	return s.long
}

// Len returns the length in bytes.
func (s SmallString) Len() int {
	if s.isInline() {
		return int(s.inlineLen &^ inlineFlag)
	}
	return len(s.long)
}

// Clone returns an independent copy. Since SmallString holds no pointers that
// this package mutates in place, a plain value copy already has clone
// semantics; the method exists to document the contract explicitly.
func (s SmallString) Clone() SmallString {
	return s
}
