package pinfer

import "github.com/pkg/errors"

// Options is the engine-wide configuration, loaded from YAML or INI by the
// readers in options_readers.go and threaded through a context.Context by
// cmd/pinfer.
type Options struct {
	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `yaml:"log_level"`
	// ShowProgress enables the progress bar during iTree construction
	// for gene trees above ProgressThreshold nodes.
	ShowProgress bool `yaml:"show_progress"`
	// ProgressThreshold is the gene count above which the progress bar
	// is shown when ShowProgress is set.
	ProgressThreshold int `yaml:"progress_threshold"`
	// DistanceCacheSize bounds the LRU cache of undirected shortest-path
	// distance computations the inference engine memoizes during pivot
	// selection. Zero disables the cache.
	DistanceCacheSize int `yaml:"distance_cache_size"`
	// UpdateRepeats is retained for CLI-surface parity with approximate
	// inference back-ends; the exact polytree engine in this module
	// always converges in two passes and ignores it.
	UpdateRepeats int `yaml:"update_repeats"`
}

// DefaultOptions returns the Options used when no config file is supplied.
func DefaultOptions() *Options {
	return &Options{
		LogLevel:          string(LogLevelInfo),
		ShowProgress:      false,
		ProgressThreshold: 5000,
		DistanceCacheSize: 256,
		UpdateRepeats:     20,
	}
}

// Validate checks that the options hold sane values.
func (o *Options) Validate() error {
	switch LoggerLevel(o.LogLevel) {
	case LogLevelDebug, LogLevelInfo, LogLevelWarning, LogLevelError, "":
	default:
		return errors.Errorf("invalid log_level: %q", o.LogLevel)
	}
	if o.ProgressThreshold < 0 {
		return errors.New("progress_threshold must be >= 0")
	}
	if o.DistanceCacheSize < 0 {
		return errors.New("distance_cache_size must be >= 0")
	}
	if o.UpdateRepeats < 0 {
		return errors.New("update_repeats must be >= 0")
	}
	return nil
}
