package gtree

import (
	"strconv"

	"github.com/pinfergo/pinfer/pinfererr"
)

// Normalize implements C2: it rescales every gene's incoming-edge branch
// length so that, within each species' induced subtree, every root-to-leaf
// path sums to 1.
//
// The induced subtree for species σ is the maximal set of σ-labelled genes
// connected through σ-labelled ancestors, rooted either at the overall
// gene-tree root (if it is itself labelled σ) or at the first ancestor
// whose species differs from σ (per spec.md §4.1). Walking the whole gene
// tree once from the root and, at every edge (u,c), treating c as the top
// of a fresh induced subtree whenever c.Species != u.Species reproduces
// exactly this partition without building the per-species subtrees
// explicitly.
func Normalize(t *Tree) error {
	root := t.Root()
	// The root has no incoming edge, but it is itself the root of an
	// induced subtree (its own species) and so is treated as having fully
	// consumed a unit budget before its first child event: this gives it
	// a genuine (t_birth, t_death) interval of its own, which C4 needs to
	// form the root's self-interaction.
	root.NormLength = 1.0
	memo := make(map[int]float64, len(t.genes))
	return normalizeNode(t, root, 1.0, memo)
}

// normalizeNode assigns NormLength to every edge out of node, given that
// node itself was reached with budget L remaining in its own species'
// induced subtree (L == 1.0 whenever node is itself an induced root).
func normalizeNode(t *Tree, node *Gene, budget float64, memo map[int]float64) error {
	for _, c := range t.Children(node) {
		l := budget
		if c.Species != node.Species {
			l = 1.0 // c is the top of a fresh induced subtree
		}
		m := c.BranchLength + maxDescendantDistance(t, c, memo)
		if m == 0 {
			return pinfererr.New(pinfererr.InvalidGeneTree, strconv.Itoa(c.ID),
				"zero total path length in induced subtree during normalisation")
		}
		c.NormLength = l * c.BranchLength / m
		if err := normalizeNode(t, c, l-c.NormLength, memo); err != nil {
			return err
		}
	}
	return nil
}

// maxDescendantDistance is the longest original-branch-length path from
// node down through its same-species descendants, memoised per gene ID.
func maxDescendantDistance(t *Tree, node *Gene, memo map[int]float64) float64 {
	if v, ok := memo[node.ID]; ok {
		return v
	}
	best := 0.0
	for _, c := range t.Children(node) {
		if c.Species != node.Species {
			continue
		}
		d := c.BranchLength + maxDescendantDistance(t, c, memo)
		if d > best {
			best = d
		}
	}
	memo[node.ID] = best
	return best
}
