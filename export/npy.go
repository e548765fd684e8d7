// Package export writes posterior belief results to on-disk formats
// consumable outside Go: a 2-D .npy float64 matrix for numpy, and JSON for
// anything else. Grounded on the teacher's experiment/experiment.go .npy
// trace export (C10, an addition: the teacher dumps fitness/age/complexity
// traces the same way this package dumps belief matrices).
package export

import (
	"io"
	"sort"

	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"

	"github.com/pinfergo/pinfer/pinfererr"
)

// WriteBeliefsNPY writes beliefs as a 2-D float64 .npy array, one row per
// key in the order given. Row order is not recorded in the .npy file
// itself; callers that need to recover which row belongs to which node
// should persist keys alongside, e.g. via a sibling .keys.json file (see
// cmd/pinfer).
func WriteBeliefsNPY(w io.Writer, keys []string, beliefs [][2]float64) error {
	if len(keys) != len(beliefs) {
		return pinfererr.New(pinfererr.ConstructionFailure, "", "keys and beliefs length mismatch")
	}
	m := mat.NewDense(len(beliefs), 2, nil)
	for i, b := range beliefs {
		m.SetRow(i, b[:])
	}
	return npyio.Write(w, m)
}

// SortedBeliefKeys returns the keys of a belief map in a stable,
// deterministic order suitable for feeding WriteBeliefsNPY's row order.
func SortedBeliefKeys(beliefs map[string][2]float64) []string {
	keys := make([]string, 0, len(beliefs))
	for k := range beliefs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
