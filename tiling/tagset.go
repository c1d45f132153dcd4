package tiling

import "github.com/grailbio/base/bitset"

// bitsPerWord is the width of the words backing a tagSet. Matches the
// uintptr-word convention circular.Bitmap used for its word-packed table.
const bitsPerWord = 64

// tagSet is a flat, word-packed set of tile ids, used for the "tagged" bit
// per cell (spec section 4.4) during a single reduction-loop iteration's
// affected-tile union. Every tile a caller tags it must untag before the
// iteration ends (spec section 5).
type tagSet struct {
	words []uintptr
}

func newTagSet(n int) *tagSet {
	return &tagSet{words: make([]uintptr, (n+bitsPerWord-1)/bitsPerWord)}
}

// Tag marks tile i as tagged.
func (t *tagSet) Tag(i int) {
	t.words[i/bitsPerWord] |= uintptr(1) << uint(i%bitsPerWord)
}

// Untag clears tile i's tagged bit.
func (t *tagSet) Untag(i int) {
	t.words[i/bitsPerWord] &^= uintptr(1) << uint(i%bitsPerWord)
}

// IsTagged reports whether tile i is currently tagged.
func (t *tagSet) IsTagged(i int) bool {
	w := i / bitsPerWord
	return bitset.Test(t.words[w:w+1], i%bitsPerWord)
}
