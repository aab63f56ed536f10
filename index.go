package hamt

import (
	"github.com/hideo55/go-popcount"
)

// sparseIndex is a logical slot [0,32) at one branch level, taken from a
// hash chunk.
type sparseIndex uint32

// compactIndex is a physical position in a branch's child array.
type compactIndex uint32

func (i sparseIndex) bit() uint32 {
	return 1 << i
}

// compact projects the sparse slot onto the physical child array by
// counting the populated slots below it.
func (i sparseIndex) compact(bitmap uint32) compactIndex {
	return compactIndex(popcount.Count(uint64(bitmap & (i.bit() - 1))))
}
