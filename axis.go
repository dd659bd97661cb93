package noun

// Get addresses a subnoun by axis: 1 is the whole noun; for a cell, 2 is
// its head and 3 is its tail; for n >= 2, position n within a cell is
// position n/2 within head(c) if n is even, else n/2 within tail(c)
// (integer division). Addressing into an atom for any n > 1 yields
// ErrAxisMissing. Ported from original_source/src/noun/types.rs's
// recursive `get`.
func (n *Noun) Get(axis uint64) (*Noun, error) {
	if axis == 0 {
		return nil, ErrInvalidAxis
	}
	cur := n
	for axis != 1 {
		if cur.IsAtom() {
			return nil, ErrAxisMissing
		}
		c := cur.AsCell()
		if axis%2 == 0 {
			cur = c.head
		} else {
			cur = c.tail
		}
		axis /= 2
	}
	return cur, nil
}
