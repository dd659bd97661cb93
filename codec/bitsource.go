package codec

import "github.com/urcodec/noun"

// bitSource wraps an atom's bit iterator with the position tracking the
// decoder needs for its position-to-noun cache. Decoding always stops as
// soon as one top-level noun has been produced; any bits left unread
// (byte-alignment zero-padding, per spec §6) are simply never consumed.
type bitSource struct {
	it *noun.BitIter
}

func newBitSource(a noun.Atom) *bitSource {
	return &bitSource{it: a.Iter()}
}

func (s *bitSource) next() (bool, bool) {
	return s.it.Next()
}

func (s *bitSource) pos() uint64 {
	return uint64(s.it.Position())
}
