package itree

import "github.com/pinfergo/pinfer/cpt"

// Interaction is a node of the iTree: a potential binary interaction
// between a pair of co-existing genes (or a gene with itself, for a
// self-interaction/homodimer).
type Interaction struct {
	Key     Key
	Species string

	// Extant is true iff both incidence genes that produced this node are
	// leaves of the GeneTree.
	Extant bool

	// HasParent is false only for the iTree root (the gene-tree root's
	// self-interaction).
	HasParent bool
	Parent    Key
	// EvolDist is the sum of original-branch-length distances from each
	// resolved ancestor back to its corresponding incidence gene.
	EvolDist float64

	// Prior is set only on the root; CPT is set on every other node, once
	// the evolutionary model (an addition beyond the core spec, see
	// evolmodel.go) has derived transition probabilities from EvolDist.
	Prior *cpt.Belief
	CPT   *cpt.CPT

	// Observation holds hard evidence attached by ObserveBoundary (C6), or
	// nil if this node is unobserved.
	Observation *cpt.Belief
}

func newInteraction(key Key, species string) *Interaction {
	return &Interaction{Key: key, Species: species}
}
