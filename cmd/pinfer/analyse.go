package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/pinfergo/pinfer"
	"github.com/pinfergo/pinfer/cpt"
	"github.com/pinfergo/pinfer/export"
	"github.com/pinfergo/pinfer/gtree"
	"github.com/pinfergo/pinfer/infer"
	"github.com/pinfergo/pinfer/itree"
)

const analyseStages = 6

var (
	treePath        string
	observationsPath string
	rate            float64
	outPath         string
	npyOutPath      string
	format          string
)

var analyseCmd = &cobra.Command{
	Use:   "analyse",
	Short: "Reconstruct an ancestral interaction network and infer posterior beliefs",
	RunE:  runAnalyse,
}

func init() {
	analyseCmd.Flags().StringVar(&treePath, "tree", "", "gene tree file (.yaml or .json)")
	analyseCmd.Flags().StringVar(&observationsPath, "observations", "", "optional hard-evidence observations file (YAML)")
	analyseCmd.Flags().Float64Var(&rate, "rate", itree.DefaultTransitionRate, "evolutionary transition rate for the binary CTMC")
	analyseCmd.Flags().StringVar(&outPath, "out", "", "belief output path (defaults to stdout)")
	analyseCmd.Flags().StringVar(&npyOutPath, "npy-out", "", "optional .npy belief matrix output path")
	analyseCmd.Flags().StringVar(&format, "format", "json", "belief output format: json")
	_ = analyseCmd.MarkFlagRequired("tree")
}

func runAnalyse(cmd *cobra.Command, args []string) error {
	o, ok := pinfer.FromContext(cmd.Context())
	if !ok {
		o = pinfer.DefaultOptions()
	}

	gt, err := loadGeneTree(treePath)
	if err != nil {
		return err
	}

	var bar *progressbar.ProgressBar
	if o.ShowProgress && len(gt.Genes()) >= o.ProgressThreshold {
		bar = progressbar.Default(analyseStages, "analysing")
	}
	step := func() {
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	if err = gt.Prepare(); err != nil {
		return err
	}
	step()

	it, err := itree.Build(gt)
	if err != nil {
		return err
	}
	step()

	if err = itree.PopulateModel(it, rate); err != nil {
		return err
	}
	step()

	observations, err := loadObservationsFile(observationsPath)
	if err != nil {
		return err
	}
	if err = itree.ObserveBoundary(it, observations); err != nil {
		return err
	}
	step()

	engine, err := infer.NewEngine(it, o.DistanceCacheSize)
	if err != nil {
		return err
	}
	if err = engine.Initialize(); err != nil {
		return err
	}
	if len(observations) > 0 {
		if err = engine.Observe(observations); err != nil {
			return err
		}
	}
	step()

	beliefs := toBeliefMatrix(engine.Beliefs())
	if err = writeBeliefs(beliefs); err != nil {
		return err
	}
	step()

	printSuccess("inferred beliefs for %d interaction nodes\n", len(beliefs))
	return nil
}

func loadGeneTree(path string) (*gtree.Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return gtree.LoadJSON(f)
	}
	return gtree.LoadYAML(f)
}

func loadObservationsFile(path string) (map[string]cpt.Belief, error) {
	if path == "" {
		return map[string]cpt.Belief{}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return loadObservations(f)
}

func toBeliefMatrix(beliefs map[string]cpt.Belief) map[string][2]float64 {
	out := make(map[string][2]float64, len(beliefs))
	for k, b := range beliefs {
		out[k] = [2]float64{b[0], b[1]}
	}
	return out
}

func writeBeliefs(beliefs map[string][2]float64) error {
	if format != "json" {
		return errors.Errorf("unsupported format %q: only json is supported", format)
	}

	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	if err := export.WriteBeliefsJSON(out, beliefs); err != nil {
		return err
	}

	if npyOutPath != "" {
		f, err := os.Create(npyOutPath)
		if err != nil {
			return err
		}
		defer f.Close()

		keys := export.SortedBeliefKeys(beliefs)
		rows := make([][2]float64, len(keys))
		for i, k := range keys {
			rows[i] = beliefs[k]
		}
		if err = export.WriteBeliefsNPY(f, keys, rows); err != nil {
			return err
		}
	}
	return nil
}
