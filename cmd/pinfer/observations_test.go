package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pinfergo/pinfer/itree"
)

func TestLoadObservations_MixedSpellings(t *testing.T) {
	doc := `
human_human: present
mouse_mouse: absent
rat_rat: true
fly_fly: false
worm_worm: 1
`
	obs, err := loadObservations(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, itree.Present, obs["human_human"])
	assert.Equal(t, itree.Absent, obs["mouse_mouse"])
	assert.Equal(t, itree.Present, obs["rat_rat"])
	assert.Equal(t, itree.Absent, obs["fly_fly"])
	assert.Equal(t, itree.Present, obs["worm_worm"])
}

func TestLoadObservations_UnparseableValue(t *testing.T) {
	_, err := loadObservations(strings.NewReader("human_human: maybe\n"))
	require.Error(t, err)
}
