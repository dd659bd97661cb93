package codec

import "github.com/urcodec/noun"

// decodeCache maps bit positions (of a tag) to the shared noun first
// decoded there, resolving back-references to the same identity the
// encoder saw (spec §4.6, §9's tag-position-vs-payload-position note).
type decodeCache struct {
	byPos map[uint64]*noun.Noun
}

func newDecodeCache() *decodeCache {
	return &decodeCache{byPos: make(map[uint64]*noun.Noun)}
}

// Cue decodes a jammed bitstream (as an atom) into a noun. A single
// malformed bitstream fails the whole operation; no partial noun is
// returned.
func Cue(jammed noun.Atom) (*noun.Noun, error) {
	src := newBitSource(jammed)
	cache := newDecodeCache()
	return decode(src, cache)
}

func decode(src *bitSource, cache *decodeCache) (*noun.Noun, error) {
	pos := src.pos()
	bit, ok := src.next()
	if !ok {
		return nil, ErrTruncatedStream
	}
	if !bit {
		return decodeAtomNoun(src, cache, pos)
	}
	second, ok := src.next()
	if !ok {
		return nil, ErrTruncatedStream
	}
	if second {
		return decodeBackRef(src, cache)
	}
	return decodeCell(src, cache, pos)
}

func decodeAtomNoun(src *bitSource, cache *decodeCache, tagPos uint64) (*noun.Noun, error) {
	a, err := decodeAtom(src)
	if err != nil {
		return nil, err
	}
	n := noun.NewAtom(a)
	cache.byPos[tagPos] = n
	return n, nil
}

func decodeAtom(src *bitSource) (noun.Atom, error) {
	length, err := decodeLen(src)
	if err != nil {
		return noun.Atom{}, err
	}
	if length == 0 {
		return noun.Zero(), nil
	}
	b := noun.NewAtomBuilder()
	for i := uint64(0); i < length; i++ {
		bit, ok := src.next()
		if !ok {
			return noun.Atom{}, ErrTruncatedStream
		}
		_ = b.PushBit(bit)
	}
	return b.Finish().Normalize(), nil
}

func decodeCell(src *bitSource, cache *decodeCache, tagPos uint64) (*noun.Noun, error) {
	headPos := src.pos()
	head, err := decode(src, cache)
	if err != nil {
		return nil, err
	}
	cache.byPos[headPos] = head

	tailPos := src.pos()
	tail, err := decode(src, cache)
	if err != nil {
		return nil, err
	}
	cache.byPos[tailPos] = tail

	n := noun.NewPair(head, tail)
	cache.byPos[tagPos] = n
	return n, nil
}

func decodeBackRef(src *bitSource, cache *decodeCache) (*noun.Noun, error) {
	idxAtom, err := decodeAtom(src)
	if err != nil {
		return nil, err
	}
	idx, err := idxAtom.AsUint64()
	if err != nil {
		return nil, ErrInvalidBackReference
	}
	n, ok := cache.byPos[idx]
	if !ok {
		return nil, ErrDanglingBackReference
	}
	return n, nil
}
