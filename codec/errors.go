// Package codec implements the jam/cue bitwise serialization of nouns:
// a single-pass, position-tracking bit writer with a subtree-to-position
// cache (jam), and a recursive bit reader with a position-to-noun cache
// for back-reference resolution (cue). The wire format is described by
// the tag-alphabet comment in jam.go and by encodeLen in length.go.
package codec

import "errors"

var (
	// ErrLengthOverflow is returned when a unary length prefix names a
	// length register wider than the codec supports (64 bits).
	ErrLengthOverflow = errors.New("codec: length prefix overflows 64 bits")

	// ErrDanglingBackReference is returned when a decoded back-reference
	// index does not name a position the decoder has already visited.
	ErrDanglingBackReference = errors.New("codec: back-reference does not resolve to a decoded position")

	// ErrTruncatedStream is returned when the bit reader runs out of
	// bits mid-decode.
	ErrTruncatedStream = errors.New("codec: truncated bitstream")

	// ErrInvalidBackReference is returned when a back-reference payload,
	// decoded as a length-prefixed atom, doesn't fit in a 64-bit index.
	ErrInvalidBackReference = errors.New("codec: back-reference index exceeds 64 bits")
)
