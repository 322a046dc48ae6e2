package pattern

import (
	"unicode/utf8"

	"github.com/segmentio/asm/ascii"
)

// BlockSize is the number of pattern positions covered by one block.
const BlockSize = 64

// BlockedPatternVector is a PatternVector for patterns of any length. The
// pattern is split into 64-character blocks; position i lives in block i/64
// at bit i%64.
//
// Codes 0-255 for all blocks share one table laid out as
// table[code*blockCount+block], so the masks of one code for consecutive
// blocks are adjacent. Wider codes go to one WordMaskMap per block.
type BlockedPatternVector struct {
	maps       []WordMaskMap
	ascii      []uint64
	blockCount int
	length     int
}

// NewBlockedPatternVector builds a BlockedPatternVector for pattern.
func NewBlockedPatternVector[C Char](pattern []C) *BlockedPatternVector {
	bv := &BlockedPatternVector{}
	InsertBlockedSlice(bv, pattern)
	return bv
}

// NewBlockedPatternVectorString builds a BlockedPatternVector for the code
// points of s.
func NewBlockedPatternVectorString(s string) *BlockedPatternVector {
	bv := &BlockedPatternVector{}
	bv.InsertString(s)
	return bv
}

// Reserve sizes bv for a pattern of length characters and clears it. Every
// block index used by Insert must come from a length passed to Reserve.
func (bv *BlockedPatternVector) Reserve(length int) {
	if length < 0 {
		panic("pattern: negative pattern length")
	}
	bv.length = length
	bv.blockCount = ceilDiv(length, BlockSize)
	bv.maps = make([]WordMaskMap, bv.blockCount)
	bv.ascii = make([]uint64, 256*bv.blockCount)
}

// InsertBlockedSlice reserves bv for pattern and inserts every character.
func InsertBlockedSlice[C Char](bv *BlockedPatternVector, pattern []C) {
	bv.Reserve(len(pattern))
	for i, c := range pattern {
		bv.insertMask(i/BlockSize, uint64(c), 1<<uint(i%BlockSize))
	}
}

// InsertString reserves bv for the code points of s and inserts them.
func (bv *BlockedPatternVector) InsertString(s string) {
	if ascii.ValidString(s) {
		bv.Reserve(len(s))
		for i := 0; i < len(s); i++ {
			bv.ascii[int(s[i])*bv.blockCount+i/BlockSize] |= 1 << uint(i%BlockSize)
		}
		return
	}

	bv.Reserve(utf8.RuneCountInString(s))
	i := 0
	for _, r := range s {
		bv.insertMask(i/BlockSize, uint64(r), 1<<uint(i%BlockSize))
		i++
	}
}

// Insert sets bit pos of block in the mask of key.
func (bv *BlockedPatternVector) Insert(block int, key uint64, pos int) {
	bv.checkBlock(block)
	bv.insertMask(block, key, bitAt(pos))
}

func (bv *BlockedPatternVector) insertMask(block int, key uint64, mask uint64) {
	if key <= 255 {
		bv.ascii[int(key)*bv.blockCount+block] |= mask
	} else {
		bv.maps[block].InsertMask(key, mask)
	}
}

// Get returns the positions of key within block as a bit mask, or 0 if key
// does not occur there.
func (bv *BlockedPatternVector) Get(block int, key uint64) uint64 {
	bv.checkBlock(block)
	if key <= 255 {
		return bv.ascii[int(key)*bv.blockCount+block]
	}
	return bv.maps[block].Get(key)
}

func (bv *BlockedPatternVector) BlockCount() int {
	return bv.blockCount
}

func (bv *BlockedPatternVector) Len() int {
	return bv.length
}

func (bv *BlockedPatternVector) checkBlock(block int) {
	if uint(block) >= uint(bv.blockCount) {
		panic("pattern: block index out of range")
	}
}

func ceilDiv(a, b int) int {
	return a/b + boolToInt(a%b != 0)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
