package gtree

// birthDeathOffset is added uniformly to every TBirth/TDeath once the
// recursive labelling is complete, so t_death lands in (1,2] per
// spec.md §4.2 while preserving all strict orderings.
const birthDeathOffset = 1.0

// LabelBirthDeath implements C3. It must run after Normalize has set
// NormLength on every edge.
func LabelBirthDeath(t *Tree) error {
	root := t.Root()
	root.TBirth = 0
	labelNode(t, root)

	for _, g := range t.genes {
		g.TBirth += birthDeathOffset
		g.TDeath += birthDeathOffset
	}
	return nil
}

func labelNode(t *Tree, node *Gene) {
	node.TDeath = node.TBirth + node.NormLength
	for _, c := range t.Children(node) {
		c.TBirth = node.TDeath
		labelNode(t, c)
	}
}
