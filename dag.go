package noun

import "unsafe"

// CheckAcyclic walks n's head/tail graph and reports ErrCycle if any cell
// is reachable from itself through repeated head/tail traversal — i.e. if
// n is not a DAG. The codec and every operation in this package assume
// acyclicity (spec §3); this is the one place that assumption is
// actually checked, for callers who build nouns by hand instead of
// through cue.
//
// The recursion-stack membership test only ever needs insert/delete/test
// on pointer identities that are discarded again once a branch returns,
// which a plain map handles with no wasted allocation; the richer Set3
// (clone, union, equality) is put to its actual intended use as the
// teacher's per-key value-set type in nounconv.MultiMap instead.
func CheckAcyclic(n *Noun) error {
	onStack := make(map[uintptr]struct{})
	return checkAcyclic(n, onStack)
}

func checkAcyclic(n *Noun, onStack map[uintptr]struct{}) error {
	if !n.IsCell() {
		return nil
	}
	id := uintptr(unsafe.Pointer(n))
	if _, ok := onStack[id]; ok {
		return ErrCycle
	}
	onStack[id] = struct{}{}
	c := n.AsCell()
	if err := checkAcyclic(c.head, onStack); err != nil {
		return err
	}
	if err := checkAcyclic(c.tail, onStack); err != nil {
		return err
	}
	delete(onStack, id)
	return nil
}
