package nounconv

import (
	"sort"

	"github.com/urcodec/noun"
	"golang.org/x/text/unicode/norm"
)

// sortByNFC sorts keys in place by ascending NFC-normalized UTF-8 bytes,
// so that two maps differing only in Unicode normalization form serialize
// identically. Shared by ToMap and MultiMap.ToMapNoun.
func sortByNFC(keys []string) {
	normalized := make(map[string]string, len(keys))
	for _, k := range keys {
		normalized[k] = norm.NFC.String(k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return normalized[keys[i]] < normalized[keys[j]]
	})
}

// ToMap builds the map-shaped noun — a list of [k v] pairs — from a Go
// map with string keys. Keys are emitted in ascending order of their
// NFC-normalized UTF-8 bytes so that two maps differing only in Unicode
// normalization form serialize identically; this mirrors the ordering
// concern the teacher's Key.FromString addressed for its own map keys
// (golang.org/x/text/unicode/norm), moved here because Atom.FromText
// itself must not normalize (spec §4.1).
func ToMap(m map[string]*noun.Noun) *noun.Noun {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sortByNFC(keys)

	pairs := make([]*noun.Noun, len(keys))
	for i, k := range keys {
		keyNoun := noun.NewAtom(noun.FromText(k))
		pairs[i] = noun.NewPair(keyNoun, m[k])
	}
	return ToList(pairs)
}

// FromMap parses a map-shaped noun into a Go map with string keys. It
// returns ErrNotAMap if an element of the list isn't a [k v] pair, or if
// a key atom isn't valid UTF-8 text.
func FromMap(n *noun.Noun) (map[string]*noun.Noun, error) {
	elems, err := FromList(n)
	if err != nil {
		return nil, err
	}
	out := make(map[string]*noun.Noun, len(elems))
	for _, e := range elems {
		if e.IsAtom() {
			return nil, ErrNotAMap
		}
		pair := e.AsCell()
		keyAtom, err := pair.Head().TryAtom()
		if err != nil {
			return nil, ErrNotAMap
		}
		k, err := keyAtom.AsText()
		if err != nil {
			return nil, ErrNotAMap
		}
		out[k] = pair.Tail()
	}
	return out, nil
}
