// Package gtree implements the GeneTree data model (C1), edge-length
// normalisation (C2) and birth/death labelling (C3) of the specification.
package gtree

import "strings"

// Event distinguishes the two kinds of internal gene-tree node.
type Event int

const (
	// Speciation marks a node at which a single ancestral gene lineage
	// splits because its host species speciated.
	Speciation Event = iota
	// Duplication marks a node at which a gene duplicated within a
	// single species.
	Duplication
)

// String renders the event using the NHX-derived D=Y/N convention from
// the specification's external interface (spec.md §6): duplication
// events are "D", speciation events are "S".
func (e Event) String() string {
	if e == Duplication {
		return "D"
	}
	return "S"
}

// Gene is a single node of a reconciled gene tree.
type Gene struct {
	// ID uniquely identifies the gene within its Tree.
	ID int
	// Name is the gene's display name, as carried by the NHX parser's
	// output schema.
	Name string
	// Species is the species label attached to this node.
	Species string
	// Event is the event type at this node.
	Event Event
	// BranchLength is the original, un-normalised length of the edge
	// incoming from the parent. Zero for the root.
	BranchLength float64

	// ParentID is the ID of this gene's parent, or -1 for the root.
	ParentID int
	// ChildIDs lists the IDs of this gene's children, in the order they
	// were added.
	ChildIDs []int

	// NormLength is the normalised length of the incoming edge, set by
	// Normalize. Zero until then; the root is special-cased to 1.0 so it
	// carries its own (t_birth, t_death) interval.
	NormLength float64
	// TBirth and TDeath are set by LabelBirthDeath, in (1,2] after the
	// +1.0 offset described in spec.md §4.2.
	TBirth float64
	TDeath float64
}

// IsRoot reports whether g is the tree root.
func (g *Gene) IsRoot() bool { return g.ParentID < 0 }

// IsLeaf reports whether g has no children.
func (g *Gene) IsLeaf() bool { return len(g.ChildIDs) == 0 }

// IsLost reports whether g represents a lost lineage, identified per
// spec.md §4.3/§8 by a case-insensitive "lost" substring in its name.
func (g *Gene) IsLost() bool {
	return strings.Contains(strings.ToLower(g.Name), "lost")
}
