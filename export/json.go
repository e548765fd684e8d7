package export

import (
	"encoding/json"
	"io"
)

// WriteBeliefsJSON writes beliefs as {"node_key": [p0,p1], ...}, matching
// spec.md §6's posterior belief output schema exactly, the same way the
// teacher's fast_network_model_io.go encodes a model as a single JSON
// document via json.NewEncoder.
func WriteBeliefsJSON(w io.Writer, beliefs map[string][2]float64) error {
	enc := json.NewEncoder(w)
	return enc.Encode(beliefs)
}
