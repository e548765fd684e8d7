package gtree

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlFixture = `
- name: root
  species: anc
  event: S
- name: human
  species: human
  event: S
  branch_length: 1.0
  parent: root
- name: mouse
  species: mouse
  event: S
  branch_length: 1.0
  parent: root
`

const jsonFixture = `[
  {"name": "root", "species": "anc", "event": "S"},
  {"name": "human", "species": "human", "event": "S", "branch_length": 1.0, "parent": "root"},
  {"name": "mouse", "species": "mouse", "event": "S", "branch_length": 1.0, "parent": "root"}
]`

func TestLoadYAML(t *testing.T) {
	tr, err := LoadYAML(strings.NewReader(yamlFixture))
	require.NoError(t, err)
	assert.Equal(t, "root", tr.Root().Name)
	assert.Len(t, tr.Genes(), 3)
	assert.Len(t, tr.Leaves(), 2)
}

func TestLoadJSON(t *testing.T) {
	tr, err := LoadJSON(bytes.NewBufferString(jsonFixture))
	require.NoError(t, err)
	assert.Equal(t, "root", tr.Root().Name)
	assert.Len(t, tr.Genes(), 3)
}

func TestLoadYAML_DuplicateName(t *testing.T) {
	fixture := `
- name: root
  species: anc
  event: S
- name: root
  species: human
  event: S
  branch_length: 1.0
  parent: root
`
	_, err := LoadYAML(strings.NewReader(fixture))
	require.Error(t, err)
}

func TestLoadYAML_UnresolvedParent(t *testing.T) {
	fixture := `
- name: orphan
  species: human
  event: S
  branch_length: 1.0
  parent: missing
`
	_, err := LoadYAML(strings.NewReader(fixture))
	require.Error(t, err)
}

func TestLoadYAML_UnknownEvent(t *testing.T) {
	fixture := `
- name: root
  species: anc
  event: X
`
	_, err := LoadYAML(strings.NewReader(fixture))
	require.Error(t, err)
}

func TestLoadYAML_MalformedDocument(t *testing.T) {
	_, err := LoadYAML(strings.NewReader("not: [valid"))
	require.Error(t, err)
}

func TestLoadJSON_DeterministicIDs(t *testing.T) {
	tr1, err := LoadJSON(bytes.NewBufferString(jsonFixture))
	require.NoError(t, err)
	tr2, err := LoadJSON(bytes.NewBufferString(jsonFixture))
	require.NoError(t, err)
	assert.Equal(t, tr1.Root().ID, tr2.Root().ID)
}
