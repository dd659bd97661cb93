package codec

import "github.com/urcodec/noun"

// encodeLen writes the unary-prefixed length-prefix encoding of a
// non-negative integer L (spec §4.4): k zero bits (k = bit width of L, 0
// bits is empty i.e. just a single 1 bit for L=0), then a single 1 bit,
// then — if k > 0 — the low k-1 bits of L, least-significant-first (the
// implicit leading 1 bit is omitted).
func encodeLen(b *noun.AtomBuilder, length uint64) {
	k := bitWidth(length)
	for i := 0; i < k; i++ {
		_ = b.PushBit(false)
	}
	_ = b.PushBit(true)
	if k > 0 {
		for length != 1 {
			_ = b.PushBit(length&1 != 0)
			length >>= 1
		}
	}
}

// bitWidth returns floor(log2(L))+1 for L>0, else 0.
func bitWidth(length uint64) int {
	k := 0
	for length != 0 {
		k++
		length >>= 1
	}
	return k
}

// decodeLen inverts encodeLen: count zero bits to determine k; if k=0,
// length is 0; otherwise read k-1 bits low-first, OR in the implicit
// 1<<(k-1).
func decodeLen(it *bitSource) (uint64, error) {
	k := 0
	for {
		bit, ok := it.next()
		if !ok {
			return 0, ErrTruncatedStream
		}
		if bit {
			break
		}
		k++
		if k > 64 {
			return 0, ErrLengthOverflow
		}
	}
	if k == 0 {
		return 0, nil
	}
	if k > 64 {
		return 0, ErrLengthOverflow
	}
	length := uint64(1) << uint(k-1)
	for i := 0; i < k-1; i++ {
		bit, ok := it.next()
		if !ok {
			return 0, ErrTruncatedStream
		}
		if bit {
			length |= uint64(1) << uint(i)
		}
	}
	return length, nil
}
