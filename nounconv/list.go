// Package nounconv provides the list- and map-shaped noun conversions
// named in spec §6 as the "callers' conversion surface" external to the
// jam/cue core: a list-shaped noun is [e1 e2 ... eN 0] (right-nested
// cells terminated by the atom zero); a map-shaped noun is a list of
// [k v] pairs.
package nounconv

import "github.com/urcodec/noun"

// ToList builds the list-shaped noun [e1 e2 ... eN 0] from elems.
// An empty elems yields the bare terminator atom zero.
func ToList(elems []*noun.Noun) *noun.Noun {
	tail := noun.NewAtom(noun.Zero())
	for i := len(elems) - 1; i >= 0; i-- {
		tail = noun.NewPair(elems[i], tail)
	}
	return tail
}

// FromList walks a list-shaped noun [e1 e2 ... eN 0] and returns its
// elements, or ErrNotAList if n is not terminated by the atom zero along
// its right spine.
func FromList(n *noun.Noun) ([]*noun.Noun, error) {
	var out []*noun.Noun
	cur := n
	for {
		if cur.IsAtom() {
			a := cur.AsAtom()
			if a.IsZero() {
				return out, nil
			}
			return nil, ErrNotAList
		}
		c := cur.AsCell()
		out = append(out, c.Head())
		cur = c.Tail()
	}
}
