package noun

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAtomNewCellShape(t *testing.T) {
	a := NewAtom(FromUint8(5))
	assert.True(t, a.IsAtom())
	assert.False(t, a.IsCell())

	c := NewPair(a, a)
	assert.True(t, c.IsCell())
	assert.False(t, c.IsAtom())
}

func TestAsAtomPanicsOnCell(t *testing.T) {
	c := NewPair(NewAtom(Zero()), NewAtom(Zero()))
	assert.Panics(t, func() { c.AsAtom() })
}

func TestAsCellPanicsOnAtom(t *testing.T) {
	a := NewAtom(Zero())
	assert.Panics(t, func() { a.AsCell() })
}

func TestTryAtomTryCell(t *testing.T) {
	a := NewAtom(FromUint8(1))
	c := NewPair(a, a)

	_, err := c.TryAtom()
	assert.ErrorIs(t, err, ErrExpectedAtom)

	_, err = a.TryCell()
	assert.ErrorIs(t, err, ErrExpectedCell)

	got, err := a.TryAtom()
	require.NoError(t, err)
	assert.True(t, got.Equal(FromUint8(1)))
}

func TestNounEqualStructural(t *testing.T) {
	n1 := NewPair(NewAtom(FromUint8(1)), NewAtom(FromUint8(2)))
	n2 := NewPair(NewAtom(FromUint8(1)), NewAtom(FromUint8(2)))
	n3 := NewPair(NewAtom(FromUint8(1)), NewAtom(FromUint8(3)))

	assert.True(t, n1.Equal(n2))
	assert.False(t, n1.Equal(n3))
}

func TestNounEqualSamePointerShortCircuit(t *testing.T) {
	n := NewAtom(FromUint8(9))
	assert.True(t, n.Equal(n))
}

func TestNounString(t *testing.T) {
	n := NewPair(NewAtom(FromUint8(1)), NewAtom(FromUint8(2)))
	assert.Equal(t, "[1 2]", n.String())
	assert.Equal(t, "0", NewAtom(Zero()).String())
}
