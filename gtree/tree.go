package gtree

import (
	"sort"
	"strconv"

	"github.com/pinfergo/pinfer/pinfererr"
)

// Tree is a rooted, directed gene tree: every non-root Gene has exactly
// one parent, and the Gene graph contains no cycles.
type Tree struct {
	genes  map[int]*Gene
	rootID int
}

// NewTree builds a Tree from a flat slice of genes and validates the
// invariants required of every GeneTree (single root, resolvable parent
// references, no cycles, required attributes present, non-negative branch
// lengths). It does not normalise edge lengths or label birth/death times;
// call Prepare for that.
func NewTree(genes []*Gene) (*Tree, error) {
	t := &Tree{genes: make(map[int]*Gene, len(genes)), rootID: -1}
	for _, g := range genes {
		if _, exists := t.genes[g.ID]; exists {
			return nil, pinfererr.New(pinfererr.InvalidGeneTree, strconv.Itoa(g.ID), "duplicate gene ID")
		}
		t.genes[g.ID] = g
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Tree) validate() error {
	if len(t.genes) == 0 {
		return pinfererr.New(pinfererr.InvalidGeneTree, "", "gene tree has no nodes")
	}

	roots := 0
	for id, g := range t.genes {
		if g.Name == "" || g.Species == "" {
			return pinfererr.New(pinfererr.InvalidGeneTree, strconv.Itoa(id), "missing name or species attribute")
		}
		if g.BranchLength < 0 {
			return pinfererr.New(pinfererr.InvalidGeneTree, strconv.Itoa(id), "negative branch length")
		}
		if g.IsRoot() {
			roots++
			t.rootID = id
		} else if _, ok := t.genes[g.ParentID]; !ok {
			return pinfererr.New(pinfererr.InvalidGeneTree, strconv.Itoa(id), "parent ID does not resolve to a node")
		}
	}
	if roots == 0 {
		return pinfererr.New(pinfererr.InvalidGeneTree, "", "no root found (every node has a parent)")
	}
	if roots > 1 {
		return pinfererr.New(pinfererr.InvalidGeneTree, "", "multiple roots found")
	}

	// Reachability from the root must cover every node exactly once;
	// otherwise the gene graph has a cycle or a disconnected component.
	visited := make(map[int]bool, len(t.genes))
	stack := []int{t.rootID}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[id] {
			return pinfererr.New(pinfererr.InvalidGeneTree, strconv.Itoa(id), "cycle detected in gene tree")
		}
		visited[id] = true
		stack = append(stack, t.genes[id].ChildIDs...)
	}
	if len(visited) != len(t.genes) {
		return pinfererr.New(pinfererr.InvalidGeneTree, "", "gene tree is disconnected from its root")
	}
	return nil
}

// Root returns the tree's unique root gene.
func (t *Tree) Root() *Gene { return t.genes[t.rootID] }

// Gene returns the gene with the given ID, or nil if none exists.
func (t *Tree) Gene(id int) *Gene { return t.genes[id] }

// Genes returns every gene in the tree, ordered by ascending ID for
// deterministic iteration.
func (t *Tree) Genes() []*Gene {
	out := make([]*Gene, 0, len(t.genes))
	for _, g := range t.genes {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Parent returns g's parent, or nil if g is the root.
func (t *Tree) Parent(g *Gene) *Gene {
	if g.IsRoot() {
		return nil
	}
	return t.genes[g.ParentID]
}

// Children returns g's children, in insertion order.
func (t *Tree) Children(g *Gene) []*Gene {
	out := make([]*Gene, len(g.ChildIDs))
	for i, id := range g.ChildIDs {
		out[i] = t.genes[id]
	}
	return out
}

// Leaves returns every gene with no children, ordered by ascending ID.
func (t *Tree) Leaves() []*Gene {
	var out []*Gene
	for _, g := range t.Genes() {
		if g.IsLeaf() {
			out = append(out, g)
		}
	}
	return out
}

// Prepare runs edge-length normalisation (C2) followed by birth/death
// labelling (C3) on t, in place.
func (t *Tree) Prepare() error {
	if err := Normalize(t); err != nil {
		return err
	}
	return LabelBirthDeath(t)
}
