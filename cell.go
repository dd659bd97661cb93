package noun

// Cell is an ordered pair (head, tail), each a shared reference to a
// noun. Cells are immutable once constructed (I4); their referents may be
// shared with any number of other cells.
type Cell struct {
	head *Noun
	tail *Noun
}

// Pair constructs a cell from two shared noun references.
func Pair(head, tail *Noun) Cell {
	return Cell{head: head, tail: tail}
}

// Head returns the shared reference to the cell's head.
func (c Cell) Head() *Noun { return c.head }

// Tail returns the shared reference to the cell's tail.
func (c Cell) Tail() *Noun { return c.tail }

// CellFromNouns builds the right-associative list
// [a1 a2 ... aN] = (a1, (a2, (..., aN))) from two or more nouns, mirroring
// the original source's array_to_cell! construction macro (cell.rs). It
// panics if fewer than two nouns are supplied, matching that macro's own
// debug_assert on list length.
func CellFromNouns(ns ...*Noun) Cell {
	if len(ns) < 2 {
		panic("noun: CellFromNouns requires at least 2 nouns")
	}
	cell := Cell{head: ns[len(ns)-2], tail: ns[len(ns)-1]}
	for i := len(ns) - 3; i >= 0; i-- {
		tail := NewCell(cell)
		cell = Cell{head: ns[i], tail: tail}
	}
	return cell
}

// CellFromAtoms is CellFromNouns specialized to atom leaves, matching the
// original's cell_from_array! instantiation over [Atom; N].
func CellFromAtoms(as ...Atom) Cell {
	ns := make([]*Noun, len(as))
	for i, a := range as {
		ns[i] = NewAtom(a)
	}
	return CellFromNouns(ns...)
}

// UnpackN interprets the cell as the right-associative list
// [a1 a2 ... aN] and returns its N elements, or ErrShapeMismatch if the
// cell does not have the required right-spine depth. By convention the
// last element is whatever noun sits at the deepest tail position and
// need not itself be an atom. n must be >= 2.
func (c Cell) UnpackN(n int) ([]*Noun, error) {
	if n < 2 {
		panic("noun: UnpackN requires n >= 2")
	}
	out := make([]*Noun, 0, n)
	out = append(out, c.head)
	cur := c.tail
	for i := 1; i < n; i++ {
		if i == n-1 {
			out = append(out, cur)
			return out, nil
		}
		if cur.IsAtom() {
			return nil, ErrShapeMismatch
		}
		sub := cur.AsCell()
		out = append(out, sub.head)
		cur = sub.tail
	}
	return out, nil
}

// UnpackVec extends the right spine until a non-cell tail is encountered,
// returning the sequence of heads followed by the final non-cell noun.
func (c Cell) UnpackVec() []*Noun {
	out := []*Noun{c.head}
	cur := c.tail
	for cur.IsCell() {
		sub := cur.AsCell()
		out = append(out, sub.head)
		cur = sub.tail
	}
	out = append(out, cur)
	return out
}

// String renders the cell as "[head tail]", matching the original's
// Display impl.
func (c Cell) String() string {
	return "[" + c.head.String() + " " + c.tail.String() + "]"
}
