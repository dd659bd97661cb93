package noun

import (
	"github.com/dolthub/maphash"
)

// Structural hash, content-addressed: H(atom) = H(bytes),
// H(cell) = H(H(head) || H(tail)). This backs Noun.Hash and the jam
// encoder's subtree cache (see codec package), per the design note in
// spec §9 recommending "a hash table keyed by structural hash with
// equality verification on collision".
//
// github.com/dolthub/maphash only hashes comparable keys, so atom bytes
// are hashed through a string-keyed Hasher (a byte slice is not itself
// comparable) and cell hashes are combined through a second Hasher keyed
// on a fixed-size comparable pair of child hashes.
var (
	bytesHasher = maphash.NewHasher[string]()
	pairHasher  = maphash.NewHasher[[2]uint64]()
)

// Hash returns n's structural hash.
func (n *Noun) Hash() uint64 {
	if !n.isCell {
		return hashAtom(n.atom)
	}
	return hashPair(n.cell.head.Hash(), n.cell.tail.Hash())
}

func hashAtom(a Atom) uint64 {
	return bytesHasher.Hash(string(a.bytes))
}

func hashPair(h1, h2 uint64) uint64 {
	return pairHasher.Hash([2]uint64{h1, h2})
}
