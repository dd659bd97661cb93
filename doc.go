// Package noun implements the Urbit noun data model — atoms and cells —
// together with the structural equality and hashing used to deduplicate
// shared subtrees. The bitwise jam/cue codec lives in the codec
// subpackage; list- and map-shaped conversions live in nounconv.
package noun
