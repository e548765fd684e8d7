package itree

import (
	"sort"
	"strings"

	"github.com/pinfergo/pinfer/gtree"
	"github.com/pinfergo/pinfer/pinfererr"
)

// Build implements C4: it constructs an iTree from a gene tree already
// prepared by gtree.Tree.Prepare (normalised edge lengths, birth/death
// labels).
func Build(gt *gtree.Tree) (*Tree, error) {
	b := &builder{
		gt:               gt,
		it:               newTree(),
		geneInteractions: make(map[int][]Key),
	}

	for _, g := range orderedGenes(gt) {
		for _, f := range fellowExtants(gt, g) {
			if err := b.addInteraction(g, f); err != nil {
				return nil, err
			}
		}
	}

	if b.it.rootKey == "" {
		return nil, pinfererr.New(pinfererr.ConstructionFailure, "", "no root interaction constructed")
	}

	pruneLost(b.it)
	return b.it, nil
}

// orderedGenes returns every gene in ascending t_birth order, breaking
// ties by ascending ID for determinism.
func orderedGenes(gt *gtree.Tree) []*gtree.Gene {
	genes := gt.Genes()
	sort.SliceStable(genes, func(i, j int) bool {
		if genes[i].TBirth != genes[j].TBirth {
			return genes[i].TBirth < genes[j].TBirth
		}
		return genes[i].ID < genes[j].ID
	})
	return genes
}

// fellowExtants returns every gene node co-existing with g: same species,
// not a lost lineage, alive (by birth/death interval) at g's own t_birth.
func fellowExtants(gt *gtree.Tree, g *gtree.Gene) []*gtree.Gene {
	if g.IsLost() {
		return nil
	}
	t := g.TBirth
	var out []*gtree.Gene
	for _, f := range gt.Genes() {
		if f.IsLost() {
			continue
		}
		if f.Species != g.Species {
			continue
		}
		if f.TBirth > t || f.TDeath <= t {
			continue
		}
		out = append(out, f)
	}
	return out
}

type builder struct {
	gt *gtree.Tree
	it *Tree
	// geneInteractions indexes, per gene ID, every interaction key that
	// gene was an incidence predecessor of. Used by parent resolution to
	// find the common interaction child of two candidate ancestors.
	geneInteractions map[int][]Key
}

func (b *builder) addInteraction(g, f *gtree.Gene) error {
	key := NewKey(g.Name, f.Name)
	if _, exists := b.it.get(key); exists {
		return nil
	}

	n := newInteraction(key, g.Species)
	n.Extant = g.IsLeaf() && f.IsLeaf()
	b.it.put(n)
	b.recordIncidence(g.ID, key)
	if f.ID != g.ID {
		b.recordIncidence(f.ID, key)
	}

	parentKey, hasParent, evolDist, err := b.resolveParent(g, f)
	if err != nil {
		return err
	}
	if !hasParent {
		if b.it.rootKey != "" && b.it.rootKey != key.String() {
			return pinfererr.New(pinfererr.ConstructionFailure, key.String(), "more than one root interaction found")
		}
		b.it.rootKey = key.String()
		return nil
	}
	n.HasParent = true
	n.Parent = parentKey
	n.EvolDist = evolDist
	b.it.link(parentKey, key)
	return nil
}

func (b *builder) recordIncidence(geneID int, key Key) {
	b.geneInteractions[geneID] = append(b.geneInteractions[geneID], key)
}

// resolveParent implements the ancestor-chain walk of spec.md §4.3.
func (b *builder) resolveParent(gA, gB *gtree.Gene) (Key, bool, float64, error) {
	var ancestorA, ancestorB *gtree.Gene
	var distA, distB float64

	if gA.TBirth > gB.TBirth {
		ancestorA = b.gt.Parent(gA)
		distA = gA.BranchLength
		ancestorB = gB
	} else {
		ancestorA = gA
		ancestorB = b.gt.Parent(gB)
		distB = gB.BranchLength
	}
	if ancestorA == nil || ancestorB == nil {
		return Key{}, false, 0, nil
	}

	for {
		if ancestorA.ID == ancestorB.ID {
			return NewKey(ancestorA.Name, ancestorA.Name), true, distA + distB, nil
		}

		common, found, err := b.commonChild(ancestorA, ancestorB)
		if err != nil {
			return Key{}, false, 0, err
		}
		if found {
			return common, true, distA + distB, nil
		}

		// Advance the younger of the two (larger t_birth); break ties by
		// advancing ancestorB, per spec.md §4.3.
		if ancestorA.TBirth > ancestorB.TBirth {
			parent := b.gt.Parent(ancestorA)
			if parent == nil {
				return Key{}, false, 0, pinfererr.New(pinfererr.ConstructionFailure, ancestorA.Name,
					"parent resolution exhausted the ancestor chain")
			}
			distA += ancestorA.BranchLength
			ancestorA = parent
		} else {
			parent := b.gt.Parent(ancestorB)
			if parent == nil {
				return Key{}, false, 0, pinfererr.New(pinfererr.ConstructionFailure, ancestorB.Name,
					"parent resolution exhausted the ancestor chain")
			}
			distB += ancestorB.BranchLength
			ancestorB = parent
		}
	}
}

// commonChild returns the single interaction key that is a child of both
// ancestorA and ancestorB, if one exists. More than one such key is an
// InvariantViolated failure: it should be impossible under the ordering
// discipline of Build.
func (b *builder) commonChild(ancestorA, ancestorB *gtree.Gene) (Key, bool, error) {
	seen := make(map[string]Key, len(b.geneInteractions[ancestorB.ID]))
	for _, k := range b.geneInteractions[ancestorB.ID] {
		seen[k.String()] = k
	}

	var matches []Key
	for _, k := range b.geneInteractions[ancestorA.ID] {
		if _, ok := seen[k.String()]; ok {
			matches = append(matches, k)
		}
	}
	switch len(matches) {
	case 0:
		return Key{}, false, nil
	case 1:
		return matches[0], true, nil
	default:
		return Key{}, false, pinfererr.New(pinfererr.InvariantViolated, matches[0].String(),
			"more than one common interaction child found during parent resolution")
	}
}

// pruneLost removes every interaction whose key expands to a gene name
// containing a lost-lineage marker, per spec.md §4.3 finalisation. A
// pruned interaction can itself be the evolutionary parent of a
// surviving node (a lost lineage is not necessarily a leaf); such
// survivors are re-parented to their nearest surviving ancestor, with
// EvolDist accumulated across the skipped, pruned nodes, so no surviving
// node is left pointing at a parent key that no longer exists.
func pruneLost(it *Tree) {
	lost := make(map[string]bool)
	for keyStr, n := range it.nodes {
		if containsLost(n.Key.A) || containsLost(n.Key.B) {
			lost[keyStr] = true
		}
	}
	if len(lost) == 0 {
		return
	}

	for keyStr, n := range it.nodes {
		if lost[keyStr] || !n.HasParent {
			continue
		}
		parentKey := n.Parent.String()
		dist := n.EvolDist
		for lost[parentKey] {
			ancestor := it.nodes[parentKey]
			if ancestor == nil || !ancestor.HasParent {
				n.HasParent = false
				parentKey = ""
				break
			}
			dist += ancestor.EvolDist
			parentKey = ancestor.Parent.String()
		}
		if parentKey != "" {
			n.Parent = it.nodes[parentKey].Key
			n.EvolDist = dist
		}
	}

	it.children = make(map[string][]string)
	for keyStr, n := range it.nodes {
		if lost[keyStr] {
			delete(it.nodes, keyStr)
			continue
		}
		if n.HasParent {
			it.link(n.Parent, n.Key)
		}
	}
}

func containsLost(name string) bool {
	return strings.Contains(strings.ToLower(name), "lost")
}
