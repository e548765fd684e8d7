package pinfer

import (
	"io"
	"io/ioutil"

	"github.com/pkg/errors"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

// LoadYAMLOptions loads Options encoded as YAML from r.
func LoadYAMLOptions(r io.Reader) (*Options, error) {
	content, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read YAML options")
	}

	opts := DefaultOptions()
	if err = yaml.Unmarshal(content, opts); err != nil {
		return nil, errors.Wrap(err, "failed to decode options from YAML")
	}

	if err = InitLogger(opts.LogLevel); err != nil {
		return nil, errors.Wrap(err, "failed to initialize logger")
	}
	if err = opts.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid options")
	}
	return opts, nil
}

// iniOptions mirrors Options with ini struct tags; ini.v1 and yaml.v3 tag
// conventions differ enough (ini wants no nested structs to MapTo cleanly)
// that a dedicated shadow struct keeps both readers simple.
type iniOptions struct {
	LogLevel          string `ini:"log_level"`
	ShowProgress      bool   `ini:"show_progress"`
	ProgressThreshold int    `ini:"progress_threshold"`
	DistanceCacheSize int    `ini:"distance_cache_size"`
	UpdateRepeats     int    `ini:"update_repeats"`
}

// LoadINIOptions loads Options encoded as an INI file under an "[engine]"
// section, using gopkg.in/ini.v1, mirroring the shape of the YAML reader
// above and the teacher's plain-text LoadNeatOptions reader.
func LoadINIOptions(r io.Reader) (*Options, error) {
	content, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read INI options")
	}

	def := DefaultOptions()
	shadow := iniOptions{
		LogLevel:          def.LogLevel,
		ShowProgress:      def.ShowProgress,
		ProgressThreshold: def.ProgressThreshold,
		DistanceCacheSize: def.DistanceCacheSize,
		UpdateRepeats:     def.UpdateRepeats,
	}

	cfg, err := ini.LoadSources(ini.LoadOptions{IgnoreInlineComment: true}, content)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse INI options")
	}
	if err = cfg.Section("engine").MapTo(&shadow); err != nil {
		return nil, errors.Wrap(err, "failed to map [engine] section")
	}

	opts := &Options{
		LogLevel:          shadow.LogLevel,
		ShowProgress:      shadow.ShowProgress,
		ProgressThreshold: shadow.ProgressThreshold,
		DistanceCacheSize: shadow.DistanceCacheSize,
		UpdateRepeats:     shadow.UpdateRepeats,
	}

	if err = InitLogger(opts.LogLevel); err != nil {
		return nil, errors.Wrap(err, "failed to initialize logger")
	}
	if err = opts.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid options")
	}
	return opts, nil
}
