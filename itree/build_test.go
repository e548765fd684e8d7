package itree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pinfergo/pinfer/gtree"
)

// duplicationThenSpeciationTree builds a seven-gene fixture exercising a
// duplication at the root followed by independent speciation of each
// paralog lineage:
//
//	root (anc)
//	├─ P1 (anc)
//	│  ├─ human1 (human)
//	│  └─ mouse1 (mouse)
//	└─ P2 (anc)
//	   ├─ human2 (human)
//	   └─ mouse2 (mouse)
//
// Symmetric branch lengths guarantee P1/P2 and human1/human2 (resp.
// mouse1/mouse2) coexist, so their cross-pair interactions exercise a
// multi-hop ancestor-chain walk in parent resolution.
func duplicationThenSpeciationTree(t *testing.T) *gtree.Tree {
	root := &gtree.Gene{ID: 0, Name: "root", Species: "anc", Event: gtree.Duplication, ParentID: -1, ChildIDs: []int{1, 2}}
	p1 := &gtree.Gene{ID: 1, Name: "P1", Species: "anc", Event: gtree.Speciation, BranchLength: 0.3, ParentID: 0, ChildIDs: []int{3, 4}}
	p2 := &gtree.Gene{ID: 2, Name: "P2", Species: "anc", Event: gtree.Speciation, BranchLength: 0.3, ParentID: 0, ChildIDs: []int{5, 6}}
	human1 := &gtree.Gene{ID: 3, Name: "human1", Species: "human", BranchLength: 0.5, ParentID: 1}
	mouse1 := &gtree.Gene{ID: 4, Name: "mouse1", Species: "mouse", BranchLength: 0.5, ParentID: 1}
	human2 := &gtree.Gene{ID: 5, Name: "human2", Species: "human", BranchLength: 0.5, ParentID: 2}
	mouse2 := &gtree.Gene{ID: 6, Name: "mouse2", Species: "mouse", BranchLength: 0.5, ParentID: 2}

	tr, err := gtree.NewTree([]*gtree.Gene{root, p1, p2, human1, mouse1, human2, mouse2})
	require.NoError(t, err)
	require.NoError(t, tr.Prepare())
	return tr
}

func TestBuild_DuplicationThenSpeciation(t *testing.T) {
	gt := duplicationThenSpeciationTree(t)
	it, err := Build(gt)
	require.NoError(t, err)

	assert.Equal(t, 10, it.Len())
	assert.Equal(t, "root", it.Root().Key.String())
	assert.False(t, it.Root().HasParent)

	p1p2 := it.Node("P1|P2")
	require.NotNil(t, p1p2)
	assert.Equal(t, "root", p1p2.Parent.String())
	assert.InDelta(t, 0.6, p1p2.EvolDist, 1e-9)
	assert.False(t, p1p2.Extant)

	p1self := it.Node("P1")
	require.NotNil(t, p1self)
	assert.Equal(t, "root", p1self.Parent.String())
	assert.InDelta(t, 0.6, p1self.EvolDist, 1e-9)

	human1human2 := it.Node("human1|human2")
	require.NotNil(t, human1human2)
	assert.Equal(t, "P1|P2", human1human2.Parent.String())
	assert.InDelta(t, 1.0, human1human2.EvolDist, 1e-9)
	assert.True(t, human1human2.Extant)

	mouse1mouse2 := it.Node("mouse1|mouse2")
	require.NotNil(t, mouse1mouse2)
	assert.Equal(t, "P1|P2", mouse1mouse2.Parent.String())
	assert.True(t, mouse1mouse2.Extant)

	human1self := it.Node("human1")
	require.NotNil(t, human1self)
	assert.Equal(t, "P1", human1self.Parent.String())
	assert.InDelta(t, 1.0, human1self.EvolDist, 1e-9)
	assert.True(t, human1self.Extant)

	// Every non-root node has exactly one evolutionary parent; the root
	// has none.
	for _, n := range it.Nodes() {
		if n.Key.String() == "root" {
			assert.False(t, n.HasParent)
			continue
		}
		assert.True(t, n.HasParent, "node %s should have an evolutionary parent", n.Key)
	}
}

// TestBuild_TwoSpeciesSpeciation exercises spec.md §8 scenario 5: a single
// speciation at the root produces one self-interaction per species, each
// correctly wired to the root's self-interaction as evolutionary parent.
// Fellow-extants requires matching species, so no heterospecific
// interaction is ever constructed in the first place (the strongest form
// of the species-match invariant in §3).
func TestBuild_TwoSpeciesSpeciation(t *testing.T) {
	root := &gtree.Gene{ID: 0, Name: "root", Species: "anc", Event: gtree.Speciation, ParentID: -1, ChildIDs: []int{1, 2}}
	human := &gtree.Gene{ID: 1, Name: "human", Species: "human", BranchLength: 1.0, ParentID: 0}
	mouse := &gtree.Gene{ID: 2, Name: "mouse", Species: "mouse", BranchLength: 1.0, ParentID: 0}
	gt, err := gtree.NewTree([]*gtree.Gene{root, human, mouse})
	require.NoError(t, err)
	require.NoError(t, gt.Prepare())

	it, err := Build(gt)
	require.NoError(t, err)

	assert.Equal(t, 3, it.Len())
	assert.Equal(t, "root", it.Root().Key.String())

	humanSelf := it.Node("human")
	require.NotNil(t, humanSelf)
	assert.True(t, humanSelf.Extant)
	assert.Equal(t, "root", humanSelf.Parent.String())

	mouseSelf := it.Node("mouse")
	require.NotNil(t, mouseSelf)
	assert.True(t, mouseSelf.Extant)
	assert.Equal(t, "root", mouseSelf.Parent.String())

	assert.Nil(t, it.Node("human|mouse"))
}

func TestBuild_LostLineagePruned(t *testing.T) {
	root := &gtree.Gene{ID: 0, Name: "root", Species: "anc", ParentID: -1, ChildIDs: []int{1, 2}}
	kept := &gtree.Gene{ID: 1, Name: "kept", Species: "human", BranchLength: 1.0, ParentID: 0}
	lost := &gtree.Gene{ID: 2, Name: "lost_copy", Species: "mouse", BranchLength: 1.0, ParentID: 0}
	gt, err := gtree.NewTree([]*gtree.Gene{root, kept, lost})
	require.NoError(t, err)
	require.NoError(t, gt.Prepare())

	it, err := Build(gt)
	require.NoError(t, err)

	assert.Nil(t, it.Node("lost_copy"))
	assert.NotNil(t, it.Node("kept"))
	assert.NotNil(t, it.Node("root"))
}

func TestPruneLost_RemovesMatchingKeys(t *testing.T) {
	it := newTree()
	it.put(newInteraction(NewKey("root", "root"), "anc"))
	it.put(newInteraction(NewKey("lost_gene", "lost_gene"), "anc"))
	it.rootKey = "root"

	pruneLost(it)

	assert.NotNil(t, it.Node("root"))
	assert.Nil(t, it.Node("lost_gene"))
}

// TestPruneLost_ReparentsOrphanedDescendant covers a pruned interaction
// that is itself the evolutionary parent of a surviving node: the
// survivor must be re-parented to its nearest surviving ancestor, with
// EvolDist accumulated across the pruned hop, instead of being left
// pointing at a deleted key.
func TestPruneLost_ReparentsOrphanedDescendant(t *testing.T) {
	it := newTree()

	root := newInteraction(NewKey("root", "root"), "anc")
	it.put(root)
	it.rootKey = "root"

	middle := newInteraction(NewKey("lost_gene", "lost_gene"), "anc")
	middle.HasParent = true
	middle.Parent = root.Key
	middle.EvolDist = 0.4
	it.put(middle)
	it.link(root.Key, middle.Key)

	survivor := newInteraction(NewKey("kept", "kept"), "human")
	survivor.HasParent = true
	survivor.Parent = middle.Key
	survivor.EvolDist = 0.6
	it.put(survivor)
	it.link(middle.Key, survivor.Key)

	pruneLost(it)

	require.Nil(t, it.Node("lost_gene"))
	got := it.Node("kept")
	require.NotNil(t, got)
	assert.Equal(t, "root", got.Parent.String())
	assert.InDelta(t, 1.0, got.EvolDist, 1e-9)
	assert.Equal(t, []string{"root"}, it.Parents("kept"))
}

func TestBuild_PolyGraphSatisfaction(t *testing.T) {
	gt := duplicationThenSpeciationTree(t)
	it, err := Build(gt)
	require.NoError(t, err)
	require.NoError(t, PopulateModel(it, DefaultTransitionRate))

	assert.True(t, it.IsRoot("root"))
	assert.False(t, it.IsRoot("P1"))
	assert.Empty(t, it.Parents("root"))
	assert.Equal(t, []string{"root"}, it.Parents("P1"))
	assert.NotNil(t, it.CPT("P1"))
	assert.Equal(t, 1, it.CPT("P1").NumParents())
	assert.Len(t, it.NodeKeys(), 10)
}
