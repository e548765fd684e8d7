// Command pinfer infers posterior existence beliefs for an ancestral
// protein-protein interaction network from a reconciled gene tree (C9).
package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pinfergo/pinfer"
)

var (
	version = "0.1.0"

	configPath string
	logLevel   string
	noColor    bool

	opts *pinfer.Options
)

var rootCmd = &cobra.Command{
	Use:     "pinfer",
	Short:   "Infer ancestral protein interaction networks from gene trees",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := loadOptions(configPath)
		if err != nil {
			return err
		}
		if logLevel != "" {
			loaded.LogLevel = logLevel
		}
		if err = loaded.Validate(); err != nil {
			return err
		}
		if err = pinfer.InitLogger(loaded.LogLevel); err != nil {
			return err
		}
		initColor(!noColor)
		opts = loaded
		cmd.SetContext(pinfer.NewContext(cmd.Context(), opts))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "options file (.yaml or .ini)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override the configured log level (debug/info/warn/error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(analyseCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadOptions returns DefaultOptions when path is empty, otherwise reads
// it as YAML or INI by its extension, the way LoadYAMLOptions/
// LoadINIOptions were authored to be selected by a caller.
func loadOptions(path string) (*pinfer.Options, error) {
	if path == "" {
		return pinfer.DefaultOptions(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".ini") {
		return pinfer.LoadINIOptions(f)
	}
	return pinfer.LoadYAMLOptions(f)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		printError("Error: %v\n", err)
		os.Exit(exitCodeFor(err))
	}
}
