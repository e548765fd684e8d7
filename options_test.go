package pinfer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions_Valid(t *testing.T) {
	assert.NoError(t, DefaultOptions().Validate())
}

func TestOptions_ValidateRejectsBadLogLevel(t *testing.T) {
	o := DefaultOptions()
	o.LogLevel = "bogus"
	assert.Error(t, o.Validate())
}

func TestOptions_ValidateRejectsNegatives(t *testing.T) {
	for _, mutate := range []func(*Options){
		func(o *Options) { o.ProgressThreshold = -1 },
		func(o *Options) { o.DistanceCacheSize = -1 },
		func(o *Options) { o.UpdateRepeats = -1 },
	} {
		o := DefaultOptions()
		mutate(o)
		assert.Error(t, o.Validate())
	}
}

func TestLoadYAMLOptions(t *testing.T) {
	yamlDoc := `
log_level: debug
show_progress: true
progress_threshold: 10
distance_cache_size: 64
update_repeats: 5
`
	opts, err := LoadYAMLOptions(strings.NewReader(yamlDoc))
	require.NoError(t, err)
	assert.Equal(t, "debug", opts.LogLevel)
	assert.True(t, opts.ShowProgress)
	assert.Equal(t, 10, opts.ProgressThreshold)
	assert.Equal(t, 64, opts.DistanceCacheSize)
	assert.Equal(t, 5, opts.UpdateRepeats)
}

func TestLoadYAMLOptions_InvalidLogLevel(t *testing.T) {
	_, err := LoadYAMLOptions(strings.NewReader("log_level: nope\n"))
	assert.Error(t, err)
}

func TestLoadINIOptions(t *testing.T) {
	iniDoc := `
[engine]
log_level = warn
show_progress = true
progress_threshold = 20
distance_cache_size = 128
update_repeats = 3
`
	opts, err := LoadINIOptions(strings.NewReader(iniDoc))
	require.NoError(t, err)
	assert.Equal(t, "warn", opts.LogLevel)
	assert.True(t, opts.ShowProgress)
	assert.Equal(t, 20, opts.ProgressThreshold)
	assert.Equal(t, 128, opts.DistanceCacheSize)
	assert.Equal(t, 3, opts.UpdateRepeats)
}

func TestLoadINIOptions_Defaults(t *testing.T) {
	opts, err := LoadINIOptions(strings.NewReader("[engine]\n"))
	require.NoError(t, err)
	assert.Equal(t, DefaultOptions().DistanceCacheSize, opts.DistanceCacheSize)
}
