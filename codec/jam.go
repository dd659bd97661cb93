package codec

import "github.com/urcodec/noun"

// Tag alphabet (read/written LSB-first): 0 -> atom, 10 -> cell, 11 ->
// back-reference. The first tag bit is 0 for an atom and 1 for anything
// else; the second tag bit (only present for non-atoms) is 0 for a cell
// and 1 for a back-reference.

// subtreeCache is the encoder's content-addressed "noun identity -> bit
// position of its tag" cache (spec §4.5, §9's note on hash tables keyed
// by structural hash with equality verification on collision). Buckets
// are chained on hash collision with an Equal check, exactly as a
// pointer-keyed hash table would chain on hash collision with a
// reference check.
type subtreeCache struct {
	buckets map[uint64][]cacheEntry
}

type cacheEntry struct {
	n   *noun.Noun
	pos uint64
}

func newSubtreeCache() *subtreeCache {
	return &subtreeCache{buckets: make(map[uint64][]cacheEntry)}
}

func (c *subtreeCache) lookup(n *noun.Noun) (uint64, bool) {
	for _, e := range c.buckets[n.Hash()] {
		if e.n.Equal(n) {
			return e.pos, true
		}
	}
	return 0, false
}

func (c *subtreeCache) insert(n *noun.Noun, pos uint64) {
	h := n.Hash()
	c.buckets[h] = append(c.buckets[h], cacheEntry{n: n, pos: pos})
}

// Jam encodes n into an atom whose bits are the jammed bitstream, written
// least-significant-bit-first. Noun identity for deduplication is
// structural (content-addressed): two structurally equal but
// independently constructed nouns are treated as the same cache key,
// which is what lets equal atoms (not just equal cells) be
// back-referenced.
func Jam(n *noun.Noun) noun.Atom {
	b := noun.NewAtomBuilder()
	cache := newSubtreeCache()
	encode(n, b, cache)
	return b.Finish().Normalize()
}

func encode(n *noun.Noun, b *noun.AtomBuilder, cache *subtreeCache) {
	if pos, ok := cache.lookup(n); ok {
		if n.IsAtom() {
			atom := n.AsAtom()
			idxBitLen := bitWidth(pos)
			if atom.BitLen() <= idxBitLen {
				// Inline encoding is no longer than the back-reference
				// would be; prefer it (spec §4.5 step 1, §9's size
				// policy note) and do NOT re-insert into the cache.
				encodeAtom(atom, b)
				return
			}
		}
		encodeBackRef(pos, b)
		return
	}

	cache.insert(n, uint64(b.Position()))
	if n.IsAtom() {
		encodeAtom(n.AsAtom(), b)
		return
	}
	_ = b.PushBit(true)  // not an atom
	_ = b.PushBit(false) // cell
	c := n.AsCell()
	encode(c.Head(), b, cache)
	encode(c.Tail(), b, cache)
}

func encodeAtom(a noun.Atom, b *noun.AtomBuilder) {
	_ = b.PushBit(false) // atom
	encodeLen(b, uint64(a.BitLen()))
	it := a.Iter()
	for {
		bit, ok := it.Next()
		if !ok {
			break
		}
		_ = b.PushBit(bit)
	}
}

func encodeBackRef(pos uint64, b *noun.AtomBuilder) {
	_ = b.PushBit(true) // not an atom
	_ = b.PushBit(true) // back-reference
	idx := noun.FromUint64(pos)
	encodeLen(b, uint64(idx.BitLen()))
	it := idx.Iter()
	for {
		bit, ok := it.Next()
		if !ok {
			break
		}
		_ = b.PushBit(bit)
	}
}
