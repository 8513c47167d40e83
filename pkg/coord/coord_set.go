package coord

import (
	"fmt"

	"github.com/hideo55/go-popcount"
)

type bitset struct {
	words []uint64
}

const (
	BITS_PER_WORD = 64

	// MAX_SET_ZOOM is the largest zoom a CoordSet accepts. Higher zooms
	// would overflow the bit index on 32bit uint machines, and the full
	// grid bitmap would not fit in memory anyway.
	MAX_SET_ZOOM = 16
)

func newBitset(zoom uint) *bitset {
	if zoom > MAX_SET_ZOOM {
		panic(fmt.Sprintf("Zoom levels > %d are not currently supported by coord.bitset", MAX_SET_ZOOM))
	}

	// the number of bits we need in the array
	num_bits := uint(1) << (2 * zoom)

	// but we can only allocate larger types, so round up to a whole number of them
	num_words := num_bits / BITS_PER_WORD
	if num_bits%BITS_PER_WORD > 0 {
		num_words += 1
	}

	// note: it _looks_ like slice elements are initialized to zero as per usual, but i don't see that explicitly documented anywhere...
	words := make([]uint64, num_words)
	return &bitset{words}
}

func (b *bitset) Get(idx uint) bool {
	word_idx := idx / BITS_PER_WORD
	word_offset := idx % BITS_PER_WORD
	w := b.words[word_idx]
	return ((w >> word_offset) & 1) == 1
}

func (b *bitset) Set(idx uint, val bool) {
	word_idx := idx / BITS_PER_WORD
	word_offset := idx % BITS_PER_WORD
	w := b.words[word_idx]

	if val {
		w = w | (uint64(1) << word_offset)
	} else {
		w = w &^ (uint64(1) << word_offset)
	}

	b.words[word_idx] = w
}

func (b *bitset) count() uint64 {
	return popcount.CountSlice(b.words)
}

// CoordSet is a set of tile coordinates, held as one bitset per zoom.
type CoordSet struct {
	zooms map[uint]*bitset
}

func NewCoordSet() *CoordSet {
	return &CoordSet{make(map[uint]*bitset)}
}

func (s *CoordSet) Get(c Coord) bool {
	b, ok := s.zooms[c.Z]

	if !ok {
		return false
	}

	idx := (c.Y << c.Z) | c.X
	return b.Get(idx)
}

func (s *CoordSet) Set(c Coord, val bool) {
	b, ok := s.zooms[c.Z]

	if !ok {
		b = newBitset(c.Z)
		s.zooms[c.Z] = b
	}

	idx := (c.Y << c.Z) | c.X
	b.Set(idx, val)
}

// Count returns the number of coordinates in the set across all zooms.
func (s *CoordSet) Count() uint64 {
	var total uint64
	for _, b := range s.zooms {
		total += b.count()
	}
	return total
}
