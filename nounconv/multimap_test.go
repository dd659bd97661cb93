package nounconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urcodec/noun"
)

func TestMultiMapPutValueDeduplicatesByStructuralHash(t *testing.T) {
	mm := NewMultiMap()
	v1 := noun.NewAtom(noun.FromUint8(7))
	v2 := noun.NewAtom(noun.FromUint8(7)) // structurally equal, different pointer
	mm.PutValue("k", v1)
	mm.PutValue("k", v2)

	values := mm.ValuesFor("k")
	assert.Len(t, values, 1)
}

func TestMultiMapPutValueDistinctValues(t *testing.T) {
	mm := NewMultiMap()
	mm.PutValue("k", noun.NewAtom(noun.FromUint8(1)))
	mm.PutValue("k", noun.NewAtom(noun.FromUint8(2)))

	assert.Len(t, mm.ValuesFor("k"), 2)
}

func TestMultiMapNumberOfKeys(t *testing.T) {
	mm := NewMultiMap()
	mm.PutValue("a", noun.NewAtom(noun.FromUint8(1)))
	mm.PutValue("b", noun.NewAtom(noun.FromUint8(2)))
	mm.PutValue("a", noun.NewAtom(noun.FromUint8(3)))

	assert.Equal(t, 2, mm.NumberOfKeys())
}

func TestMultiMapValuesForMissingKey(t *testing.T) {
	mm := NewMultiMap()
	assert.Nil(t, mm.ValuesFor("missing"))
}

func TestMultiMapToMapNounFlattensOnePairPerValue(t *testing.T) {
	mm := NewMultiMap()
	mm.PutValue("k", noun.NewAtom(noun.FromUint8(1)))
	mm.PutValue("k", noun.NewAtom(noun.FromUint8(2)))
	mm.PutValue("other", noun.NewAtom(noun.FromUint8(3)))

	n := mm.ToMapNoun()
	elems, err := FromList(n)
	require.NoError(t, err)
	assert.Len(t, elems, 3)

	count := 0
	for _, e := range elems {
		pair := e.AsCell()
		k, err := pair.Head().AsAtom().AsText()
		require.NoError(t, err)
		if k == "k" {
			count++
		}
	}
	assert.Equal(t, 2, count)
}
