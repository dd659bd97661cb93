package noun

import (
	"math/big"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromBytesStripsTrailingZeros(t *testing.T) {
	a := FromBytes([]byte{1, 2, 0, 0})
	assert.Equal(t, []byte{1, 2}, a.AsBytes())

	z := FromBytes([]byte{0, 0, 0})
	assert.True(t, z.IsZero())
	assert.Equal(t, 0, z.ByteLen())
}

func TestAtomZeroValueIsZero(t *testing.T) {
	var a Atom
	assert.True(t, a.IsZero())
	assert.Equal(t, 0, a.BitLen())
}

func TestBitLen(t *testing.T) {
	cases := []struct {
		bytes []byte
		want  int
	}{
		{nil, 0},
		{[]byte{1}, 1},
		{[]byte{0xff}, 8},
		{[]byte{0, 1}, 9},
		{[]byte{0xff, 0xff}, 16},
	}
	for _, c := range cases {
		a := FromBytes(c.bytes)
		assert.Equal(t, c.want, a.BitLen(), "bytes=%v", c.bytes)
	}
}

func TestFromTextNoNormalization(t *testing.T) {
	// "e" followed by a combining acute accent; NFC would compose it.
	a := FromText("é")
	text, err := a.AsText()
	require.NoError(t, err)
	assert.Equal(t, "é", text)
}

func TestAsTextRejectsInvalidUTF8(t *testing.T) {
	a := FromBytes([]byte{0xff, 0xfe})
	_, err := a.AsText()
	assert.ErrorIs(t, err, ErrNotValidText)
}

func TestUintRoundTrips(t *testing.T) {
	a8 := FromUint8(200)
	v8, err := a8.AsUint8()
	require.NoError(t, err)
	assert.Equal(t, uint8(200), v8)

	a16 := FromUint16(60000)
	v16, err := a16.AsUint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(60000), v16)

	a32 := FromUint32(4000000000)
	v32, err := a32.AsUint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(4000000000), v32)

	a64 := FromUint64(1 << 40)
	v64, err := a64.AsUint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(1<<40), v64)
}

func TestAsUint8TooLarge(t *testing.T) {
	a := FromUint16(1000)
	_, err := a.AsUint8()
	assert.ErrorIs(t, err, ErrAtomTooLarge)
}

func TestFromBigIntRoundTrip(t *testing.T) {
	v := new(big.Int)
	v.SetString("123456789012345678901234567890", 10)
	a := FromBigInt(v)
	assert.Equal(t, v.String(), a.AsBigInt().String())
}

func TestFromBigIntNegativePanics(t *testing.T) {
	assert.Panics(t, func() {
		FromBigInt(big.NewInt(-1))
	})
}

func TestAtomEqual(t *testing.T) {
	a := FromUint64(42)
	b := FromUint64(42)
	c := FromUint64(43)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestAtomString(t *testing.T) {
	assert.Equal(t, "0", Zero().String())
	assert.Equal(t, "255", FromUint8(255).String())
}

// P2: idempotent canonicalization — from_bytes(as_bytes(a)) == a, and
// bit_len is the minimum bit count representing the integer value.
func TestProp2IdempotentCanonicalization(t *testing.T) {
	f := func(bs []byte) bool {
		a := FromBytes(bs)
		b := FromBytes(a.AsBytes())
		if !a.Equal(b) {
			return false
		}
		want := a.AsBigInt().BitLen()
		return a.BitLen() == want
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}
