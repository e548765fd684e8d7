package gtree

import (
	"encoding/json"
	"io"
	"io/ioutil"
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/pinfergo/pinfer/pinfererr"
)

// geneRecord is the on-disk shape of a single gene node, shared by the
// YAML and JSON fixture loaders (C11). It stands in for the NHX parser's
// fixed output schema (spec.md §6), which is out of this module's scope.
type geneRecord struct {
	Name         string  `yaml:"name" json:"name"`
	Species      string  `yaml:"species" json:"species"`
	Event        string  `yaml:"event" json:"event"` // "D" or "S"
	BranchLength float64 `yaml:"branch_length" json:"branch_length"`
	Parent       string  `yaml:"parent" json:"parent"` // empty for the root
}

// LoadYAML reads a gene tree from a YAML document shaped as a top-level
// list of gene records, each naming its parent by Name (empty for the
// root).
func LoadYAML(r io.Reader) (*Tree, error) {
	content, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read gene tree YAML")
	}
	var records []geneRecord
	if err = yaml.Unmarshal(content, &records); err != nil {
		return nil, pinfererr.Wrap(pinfererr.InvalidGeneTree, "", err, "failed to decode gene tree YAML")
	}
	return buildFromRecords(records)
}

// LoadJSON reads a gene tree from a JSON document with the same schema as
// LoadYAML.
func LoadJSON(r io.Reader) (*Tree, error) {
	var records []geneRecord
	dec := json.NewDecoder(r)
	if err := dec.Decode(&records); err != nil {
		return nil, pinfererr.Wrap(pinfererr.InvalidGeneTree, "", err, "failed to decode gene tree JSON")
	}
	return buildFromRecords(records)
}

func buildFromRecords(records []geneRecord) (*Tree, error) {
	// Names must be stable, deterministic IDs: sort first so that a
	// given input file always produces the same gene IDs regardless of
	// map iteration or encoder ordering.
	names := make([]string, 0, len(records))
	byName := make(map[string]geneRecord, len(records))
	for _, rec := range records {
		if rec.Name == "" {
			return nil, pinfererr.New(pinfererr.InvalidGeneTree, "", "gene record missing name")
		}
		if _, dup := byName[rec.Name]; dup {
			return nil, pinfererr.New(pinfererr.InvalidGeneTree, rec.Name, "duplicate gene name")
		}
		byName[rec.Name] = rec
		names = append(names, rec.Name)
	}
	sort.Strings(names)

	ids := make(map[string]int, len(names))
	for i, name := range names {
		ids[name] = i
	}

	genes := make([]*Gene, 0, len(names))
	for _, name := range names {
		rec := byName[name]
		g := &Gene{
			ID:           ids[name],
			Name:         rec.Name,
			Species:      rec.Species,
			BranchLength: rec.BranchLength,
			ParentID:     -1,
		}
		switch rec.Event {
		case "D":
			g.Event = Duplication
		case "S", "":
			g.Event = Speciation
		default:
			return nil, pinfererr.New(pinfererr.InvalidGeneTree, rec.Name, "unrecognised event type: "+rec.Event)
		}
		if rec.Parent != "" {
			parentID, ok := ids[rec.Parent]
			if !ok {
				return nil, pinfererr.New(pinfererr.InvalidGeneTree, rec.Name, "parent name does not resolve: "+rec.Parent)
			}
			g.ParentID = parentID
		}
		genes = append(genes, g)
	}
	for _, g := range genes {
		if !g.IsRoot() {
			parent := genes[g.ParentID]
			parent.ChildIDs = append(parent.ChildIDs, g.ID)
		}
	}

	return NewTree(genes)
}
