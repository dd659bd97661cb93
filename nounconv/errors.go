package nounconv

import "errors"

var (
	// ErrNotAList is returned by FromList when the noun's right spine is
	// not terminated by the atom zero.
	ErrNotAList = errors.New("nounconv: noun is not a 0-terminated list")

	// ErrNotAMap is returned by FromMap when an element of the list is
	// not itself a [k v] pair cell.
	ErrNotAMap = errors.New("nounconv: list element is not a [k v] pair")
)
