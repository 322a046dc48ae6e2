package pattern

import (
	"github.com/segmentio/asm/ascii"
)

// Char is any integer type usable as a character code: bytes, UTF-16 code
// units, runes or wider codes. Negative codes are treated as their uint64
// bit pattern and therefore never take the byte-indexed path.
type Char interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// MaxPatternLen is the longest pattern a PatternVector can hold.
const MaxPatternLen = 64

// PatternVector maps each character of a pattern of at most 64 characters to
// the mask of positions where it occurs. Codes 0-255 are stored in a direct
// table, wider codes in a WordMaskMap.
//
// Build once, then share read-only. The zero value is an empty vector.
type PatternVector struct {
	m     WordMaskMap
	ascii [256]uint64
}

func NewPatternVector[C Char](pattern []C) *PatternVector {
	pv := &PatternVector{}
	InsertSlice(pv, pattern)
	return pv
}

// NewPatternVectorString builds a PatternVector for the code points of s.
func NewPatternVectorString(s string) *PatternVector {
	pv := &PatternVector{}
	pv.InsertString(s)
	return pv
}

// InsertSlice inserts every character of pattern, setting bit i for the
// character at position i.
func InsertSlice[C Char](pv *PatternVector, pattern []C) {
	if len(pattern) > MaxPatternLen {
		panic("pattern: PatternVector supports at most 64 characters")
	}
	mask := uint64(1)
	for _, c := range pattern {
		pv.insertMask(uint64(c), mask)
		mask <<= 1
	}
}

// InsertString inserts the code points of s. Positions count code points,
// not bytes.
func (pv *PatternVector) InsertString(s string) {
	if ascii.ValidString(s) {
		if len(s) > MaxPatternLen {
			panic("pattern: PatternVector supports at most 64 characters")
		}
		for i := 0; i < len(s); i++ {
			pv.ascii[s[i]] |= 1 << uint(i)
		}
		return
	}

	mask := uint64(1)
	for _, r := range s {
		if mask == 0 {
			panic("pattern: PatternVector supports at most 64 characters")
		}
		pv.insertMask(uint64(r), mask)
		mask <<= 1
	}
}

// Insert sets bit pos in the mask of key.
func (pv *PatternVector) Insert(key uint64, pos int) {
	pv.insertMask(key, bitAt(pos))
}

func (pv *PatternVector) insertMask(key uint64, mask uint64) {
	if key <= 255 {
		pv.ascii[key] |= mask
	} else {
		pv.m.InsertMask(key, mask)
	}
}

// Get returns the positions of key in the pattern as a bit mask, or 0 if key
// does not occur.
func (pv *PatternVector) Get(key uint64) uint64 {
	if key <= 255 {
		return pv.ascii[key]
	}
	return pv.m.Get(key)
}
