package nounconv

import (
	"sort"
	"sync"

	set3 "github.com/TomTonic/Set3"
	"github.com/urcodec/noun"
)

// MultiMap accumulates zero or more values per string key before they are
// flattened into a map-shaped noun. It is adapted from the teacher's
// arrayBasedMultiMap (array_based.go): a mutex-guarded slice of key/value
// entries, linear-scanned on lookup, with the value side held in a
// Set3[uint64] of structural noun hashes rather than Set3[T] of a
// generic comparable payload — a *Noun compares by pointer identity, so
// two structurally equal values built independently would be distinct
// set members; the set therefore holds the Hash() of a value, not the
// value itself.
//
// hashes is the actual authority on membership, exactly as the teacher's
// val *set3.Set3[T] is the authority in array_based.go: PutValue clones it,
// attempts the Add, and compares the clone against the post-Add set
// (Set3.Equals) to learn whether h was already present, the same
// before/after comparison array_based.go's callers perform when they need
// to know whether an AddValue changed anything. values is then only a
// uint64->*Noun side table recording which noun a hash the set has
// already accepted stands for; it never decides membership on its own.
type MultiMap struct {
	mu   sync.Mutex
	data []multiMapEntry
}

type multiMapEntry struct {
	key    string
	hashes *set3.Set3[uint64]
	values map[uint64]*noun.Noun
}

// NewMultiMap returns an empty MultiMap.
func NewMultiMap() *MultiMap {
	return &MultiMap{data: make([]multiMapEntry, 0, 20)}
}

// PutValue associates v with key, deduplicating by v's structural hash —
// adding a structurally-equal value again is a no-op.
func (m *MultiMap) PutValue(key string, v *noun.Noun) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.data {
		if m.data[i].key == key {
			m.addTo(&m.data[i], v)
			return
		}
	}
	entry := multiMapEntry{
		key:    key,
		hashes: set3.Empty[uint64](),
		values: make(map[uint64]*noun.Noun),
	}
	m.addTo(&entry, v)
	m.data = append(m.data, entry)
}

// addTo is the only place a value enters e.values, and it does so only
// when e.hashes reports the hash as new: before is a pre-Add snapshot,
// and if the set is unchanged after Add, h was already a member, so the
// existing stored noun for it is left alone.
func (m *MultiMap) addTo(e *multiMapEntry, v *noun.Noun) {
	h := v.Hash()
	before := e.hashes.Clone()
	e.hashes.Add(h)
	if before.Equals(e.hashes) {
		return
	}
	e.values[h] = v
}

// ValuesFor returns the distinct values stored for key, or nil if key is
// absent.
func (m *MultiMap) ValuesFor(key string) []*noun.Noun {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.data {
		if m.data[i].key == key {
			out := make([]*noun.Noun, 0, len(m.data[i].values))
			for _, v := range m.data[i].values {
				out = append(out, v)
			}
			return out
		}
	}
	return nil
}

// NumberOfKeys returns the number of distinct keys stored.
func (m *MultiMap) NumberOfKeys() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data)
}

// ToMapNoun flattens the multi-map into a map-shaped noun: one [k v] pair
// per distinct value per key, keys emitted in NFC-normalized order
// (matching ToMap), values within a key emitted in ascending hash order
// for deterministic output.
func (m *MultiMap) ToMapNoun() *noun.Noun {
	m.mu.Lock()
	defer m.mu.Unlock()

	keys := make([]string, len(m.data))
	byKey := make(map[string]*multiMapEntry, len(m.data))
	for i := range m.data {
		keys[i] = m.data[i].key
		byKey[m.data[i].key] = &m.data[i]
	}
	sortByNFC(keys)

	var pairs []*noun.Noun
	for _, k := range keys {
		entry := byKey[k]
		hashes := make([]uint64, 0, len(entry.values))
		for h := range entry.values {
			hashes = append(hashes, h)
		}
		sort.Slice(hashes, func(i, j int) bool { return hashes[i] < hashes[j] })
		keyNoun := noun.NewAtom(noun.FromText(k))
		for _, h := range hashes {
			pairs = append(pairs, noun.NewPair(keyNoun, entry.values[h]))
		}
	}
	return ToList(pairs)
}
