package itree

import (
	"github.com/pinfergo/pinfer/cpt"
	"github.com/pinfergo/pinfer/pinfererr"
)

// Absent and Present are the two hard-evidence vectors spec.md §6
// permits at the observation boundary (the open question resolved in
// SPEC_FULL.md §9: hard evidence only).
var (
	Absent  = cpt.Belief{1, 0}
	Present = cpt.Belief{0, 1}
)

// ObserveBoundary implements C6: it attaches binary evidence to
// interaction nodes named by key, validating that every vector is one of
// Absent or Present and that every key resolves to an existing node.
//
// It is the only exported entry point for attaching evidence — the
// two-vector restriction on evidence is enforced here, even though the
// engine's internal Evidence representation would accept any vector.
func ObserveBoundary(t *Tree, observations map[string]cpt.Belief) error {
	for key, vec := range observations {
		n := t.Node(key)
		if n == nil {
			return pinfererr.New(pinfererr.InvalidObservation, key, "observation keyed on unknown interaction")
		}
		if vec != Absent && vec != Present {
			return pinfererr.New(pinfererr.InvalidObservation, key, "observation vector must be [1,0] or [0,1]")
		}
		v := vec
		n.Observation = &v
	}
	return nil
}
