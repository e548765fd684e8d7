// Package itree implements interaction-tree construction (C4) and
// observation annotation (C6) over a prepared gtree.Tree.
package itree

// Key canonically identifies an interaction node by the unordered pair of
// participating gene names, sorted lexicographically. A self-interaction
// has A == B.
type Key struct {
	A, B string
}

// NewKey builds the canonical key for the unordered pair {nameA, nameB}.
func NewKey(nameA, nameB string) Key {
	if nameA > nameB {
		nameA, nameB = nameB, nameA
	}
	return Key{A: nameA, B: nameB}
}

// IsSelf reports whether k identifies a self-interaction.
func (k Key) IsSelf() bool { return k.A == k.B }

// String renders k as the canonical sorted-pair string used for node keys
// throughout the external interface (spec.md §6).
func (k Key) String() string {
	if k.IsSelf() {
		return k.A
	}
	return k.A + "|" + k.B
}

// Less orders keys lexicographically, used to break ties deterministically
// during parent resolution and pivot selection (spec.md §4.3, §9).
func (k Key) Less(o Key) bool {
	if k.A != o.A {
		return k.A < o.A
	}
	return k.B < o.B
}
