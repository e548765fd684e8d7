package itree

import (
	"sort"

	"github.com/pinfergo/pinfer/cpt"
)

// Tree is the constructed interaction tree: a polytree of Interaction
// nodes connected by evolutionary edges (§3 of the specification). Gene
// nodes and incidence edges exist only during Build and are discarded by
// finalisation.
type Tree struct {
	nodes    map[string]*Interaction
	children map[string][]string
	rootKey  string
}

func newTree() *Tree {
	return &Tree{
		nodes:    make(map[string]*Interaction),
		children: make(map[string][]string),
	}
}

func (t *Tree) get(key Key) (*Interaction, bool) {
	n, ok := t.nodes[key.String()]
	return n, ok
}

func (t *Tree) put(n *Interaction) {
	t.nodes[n.Key.String()] = n
}

func (t *Tree) link(parent, child Key) {
	t.children[parent.String()] = append(t.children[parent.String()], child.String())
}

// Root returns the iTree root: the self-interaction of the gene-tree
// root.
func (t *Tree) Root() *Interaction { return t.nodes[t.rootKey] }

// Node returns the interaction with the given canonical key string, or
// nil if none exists.
func (t *Tree) Node(key string) *Interaction { return t.nodes[key] }

// Nodes returns every interaction node, in stable ascending-key order.
func (t *Tree) Nodes() []*Interaction {
	out := make([]*Interaction, 0, len(t.nodes))
	for _, n := range t.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key.String() < out[j].Key.String() })
	return out
}

// Len returns the number of interaction nodes.
func (t *Tree) Len() int { return len(t.nodes) }

// --- infer.PolyGraph satisfaction (structural, no import of infer) ---
//
// infer.PolyGraph is defined purely in terms of string and cpt types so
// that Tree can satisfy it without itree importing infer, the way the
// teacher's network.Network satisfies gonum's graph.Directed without
// gonum ever importing neat (neat/network/network_graph.go).

// NodeKeys returns every node's canonical key string, in ascending order.
func (t *Tree) NodeKeys() []string {
	keys := make([]string, 0, len(t.nodes))
	for k := range t.nodes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Parents returns the sorted-parent-key list for the node with the given
// key. Every non-root interaction has exactly one evolutionary parent, so
// this is always length 0 or 1.
func (t *Tree) Parents(key string) []string {
	n := t.nodes[key]
	if n == nil || !n.HasParent {
		return nil
	}
	return []string{n.Parent.String()}
}

// IsRoot reports whether key names the iTree root.
func (t *Tree) IsRoot(key string) bool { return key == t.rootKey }

// Prior returns the root's prior belief. Callers must not call this for
// non-root keys.
func (t *Tree) Prior(key string) cpt.Belief {
	n := t.nodes[key]
	if n == nil || n.Prior == nil {
		return cpt.Belief{0.5, 0.5}
	}
	return *n.Prior
}

// CPT returns the node's conditional probability table. Callers must not
// call this for the root.
func (t *Tree) CPT(key string) *cpt.CPT {
	n := t.nodes[key]
	if n == nil {
		return nil
	}
	return n.CPT
}
