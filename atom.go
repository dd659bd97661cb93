package noun

import (
	"math/big"
	"unicode/utf8"
)

// Atom is an arbitrary-precision unsigned integer, stored as a canonical
// little-endian byte sequence: the most-significant byte is non-zero,
// except for the atom zero, whose byte sequence is empty. Two atoms are
// equal iff their canonical byte sequences are equal (I1, I2).
//
// The zero value of Atom is the atom zero.
type Atom struct {
	bytes []byte
}

// Zero is the atom whose bit length is 0.
func Zero() Atom { return Atom{} }

// FromBytes accepts a little-endian byte sequence and strips all trailing
// zero bytes to enforce the no-trailing-zero-bytes invariant (I1). The
// input is copied; the caller's slice is never aliased.
func FromBytes(b []byte) Atom {
	end := len(b)
	for end > 0 && b[end-1] == 0 {
		end--
	}
	if end == 0 {
		return Atom{}
	}
	out := make([]byte, end)
	copy(out, b[:end])
	return Atom{bytes: out}
}

// FromText adopts the UTF-8 bytes of s without normalization, then treats
// them as a byte sequence. Trailing NUL bytes, if any, are stripped per
// I1 — this is intentional, not a text-specific transform.
func FromText(s string) Atom {
	return FromBytes([]byte(s))
}

// FromUint8 encodes u little-endian and normalizes.
func FromUint8(u uint8) Atom { return FromBytes([]byte{u}) }

// FromUint16 encodes u little-endian and normalizes.
func FromUint16(u uint16) Atom {
	return FromBytes([]byte{byte(u), byte(u >> 8)})
}

// FromUint32 encodes u little-endian and normalizes.
func FromUint32(u uint32) Atom {
	return FromBytes([]byte{byte(u), byte(u >> 8), byte(u >> 16), byte(u >> 24)})
}

// FromUint64 encodes u little-endian and normalizes.
func FromUint64(u uint64) Atom {
	b := make([]byte, 8)
	for i := range b {
		b[i] = byte(u >> (8 * i))
	}
	return FromBytes(b)
}

// FromBigInt encodes an arbitrary-precision non-negative integer
// little-endian and normalizes. FromBigInt panics if v is negative, since
// atoms are unsigned by definition.
func FromBigInt(v *big.Int) Atom {
	if v.Sign() < 0 {
		panic("noun: FromBigInt: atom cannot be negative")
	}
	be := v.Bytes() // big-endian, minimal, no leading zero byte
	le := make([]byte, len(be))
	for i, b := range be {
		le[len(be)-1-i] = b
	}
	return FromBytes(le)
}

// ByteLen returns the length of the canonical byte sequence.
func (a Atom) ByteLen() int { return len(a.bytes) }

// BitLen returns the minimum number of bits required to represent a's
// value: 8*(byte_len-1) + (8 - clz(last_byte)), or 0 for the atom zero.
func (a Atom) BitLen() int {
	if len(a.bytes) == 0 {
		return 0
	}
	last := a.bytes[len(a.bytes)-1]
	clz := 0
	for bit := 7; bit >= 0; bit-- {
		if last&(1<<uint(bit)) != 0 {
			break
		}
		clz++
	}
	return 8*(len(a.bytes)-1) + (8 - clz)
}

// AsBytes exposes the canonical byte sequence. The returned slice must not
// be mutated by the caller.
func (a Atom) AsBytes() []byte { return a.bytes }

// AsUint8 succeeds with the native value iff ByteLen() <= 1.
func (a Atom) AsUint8() (uint8, error) {
	if a.ByteLen() > 1 {
		return 0, ErrAtomTooLarge
	}
	if a.ByteLen() == 0 {
		return 0, nil
	}
	return a.bytes[0], nil
}

// AsUint16 succeeds with the native value iff ByteLen() <= 2.
func (a Atom) AsUint16() (uint16, error) {
	if a.ByteLen() > 2 {
		return 0, ErrAtomTooLarge
	}
	var out uint16
	for i, b := range a.bytes {
		out |= uint16(b) << (8 * i)
	}
	return out, nil
}

// AsUint32 succeeds with the native value iff ByteLen() <= 4.
func (a Atom) AsUint32() (uint32, error) {
	if a.ByteLen() > 4 {
		return 0, ErrAtomTooLarge
	}
	var out uint32
	for i, b := range a.bytes {
		out |= uint32(b) << (8 * i)
	}
	return out, nil
}

// AsUint64 succeeds with the native value iff ByteLen() <= 8.
func (a Atom) AsUint64() (uint64, error) {
	if a.ByteLen() > 8 {
		return 0, ErrAtomTooLarge
	}
	var out uint64
	for i, b := range a.bytes {
		out |= uint64(b) << (8 * i)
	}
	return out, nil
}

// AsBigInt always succeeds: atoms are, by definition, representable as an
// arbitrary-precision unsigned integer.
func (a Atom) AsBigInt() *big.Int {
	be := make([]byte, len(a.bytes))
	for i, b := range a.bytes {
		be[len(a.bytes)-1-i] = b
	}
	return new(big.Int).SetBytes(be)
}

// AsText succeeds iff the bytes are valid UTF-8.
func (a Atom) AsText() (string, error) {
	if !utf8.Valid(a.bytes) {
		return "", ErrNotValidText
	}
	return string(a.bytes), nil
}

// Equal reports whether a and b have equal canonical byte sequences (I2).
func (a Atom) Equal(b Atom) bool {
	if len(a.bytes) != len(b.bytes) {
		return false
	}
	for i := range a.bytes {
		if a.bytes[i] != b.bytes[i] {
			return false
		}
	}
	return true
}

// IsZero reports whether a is the atom zero.
func (a Atom) IsZero() bool { return len(a.bytes) == 0 }

// String renders the atom in decimal, matching the original's Display
// impl for a noun leaf.
func (a Atom) String() string {
	return a.AsBigInt().String()
}
