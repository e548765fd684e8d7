package itree

import (
	"math"

	"github.com/pinfergo/pinfer/cpt"
)

// PopulateModel is an addition beyond the core specification: spec.md
// leaves the numeric derivation of each interaction's CPT (and the root's
// prior) from its evolutionary model unstated, noting only that CPTs are
// "set by the inference layer" (spec.md §3). It assigns:
//
//   - the root's prior: [0.5, 0.5], an uninformative 50/50 existence
//     prior for the ancestral self-interaction, matching the original
//     implementation's annotate step (every run assumes a 50% chance of
//     the ancestral self-interaction existing before any evidence).
//   - every other node's CPT: a symmetric two-state continuous-time
//     Markov model over {absent, present}, embedded at the node's
//     EvolDist. Symmetric retention probability is
//     p = 0.5 + 0.5*exp(-rate*evolDist); the off-diagonal gain/loss
//     probability is 1-p. This is the standard embedding for a binary
//     trait evolving at a constant rate (the binary analogue of the
//     Jukes-Cantor model), chosen because the source material never
//     specifies an alternative and the module still needs some concrete
//     transition model to run end-to-end inference.
//
// rate controls how quickly interaction presence/absence decorrelates
// with evolutionary distance; a sensible default is exposed as
// DefaultTransitionRate.
func PopulateModel(t *Tree, rate float64) error {
	root := t.Root()
	root.Prior = &cpt.Belief{0.5, 0.5}

	for _, n := range t.Nodes() {
		if n.Key == root.Key {
			continue
		}
		table, err := transitionCPT(n.EvolDist, rate)
		if err != nil {
			return err
		}
		n.CPT = table
	}
	return nil
}

// DefaultTransitionRate is used by PopulateModel when callers have no
// better estimate of the interaction turnover rate.
const DefaultTransitionRate = 1.0

func transitionCPT(evolDist, rate float64) (*cpt.CPT, error) {
	retain := 0.5 + 0.5*math.Exp(-rate*evolDist)
	flip := 1 - retain
	// Row order follows cpt.ForEachAssignment: parent=0 (absent) then
	// parent=1 (present), each row [P(child=0), P(child=1)].
	return cpt.New(1, []float64{retain, flip, flip, retain})
}
