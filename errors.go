package noun

import "errors"

// Sentinel errors for the structural-access contract. The codec in the
// codec subpackage defines its own, codec-specific sentinels; these cover
// the noun data model itself.
var (
	// ErrAtomTooLarge is returned by AsUint8/16/32/64 when the atom's
	// byte length exceeds the destination width.
	ErrAtomTooLarge = errors.New("noun: atom too large for target width")

	// ErrNotValidText is returned by Atom.AsText when the atom's bytes
	// are not valid UTF-8.
	ErrNotValidText = errors.New("noun: atom bytes are not valid UTF-8")

	// ErrExpectedAtom is returned when an atom-only operation (TryAtom)
	// is applied to a cell.
	ErrExpectedAtom = errors.New("noun: expected atom, found cell")

	// ErrExpectedCell is returned when a cell-only operation (TryCell) is
	// applied to an atom.
	ErrExpectedCell = errors.New("noun: expected cell, found atom")

	// ErrShapeMismatch is returned by UnpackN when the right spine
	// doesn't have the requested depth.
	ErrShapeMismatch = errors.New("noun: cell does not have the requested shape")

	// ErrAxisMissing is returned by Get when the requested axis does
	// not address anything in the tree (e.g. axis > 1 into an atom).
	ErrAxisMissing = errors.New("noun: axis is not present in the tree")

	// ErrInvalidAxis is returned by Get when the axis is not a positive
	// integer.
	ErrInvalidAxis = errors.New("noun: axis must be >= 1")

	// ErrBitPushAfterFinish is returned by AtomBuilder.PushBit once the
	// builder has been finished.
	ErrBitPushAfterFinish = errors.New("noun: push_bit after finish")

	// ErrCycle is returned by CheckAcyclic when a noun graph is not a
	// DAG (a cell reachable from itself through head/tail).
	ErrCycle = errors.New("noun: noun graph contains a cycle")
)
