package itree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewKey_Canonicalizes(t *testing.T) {
	a := NewKey("b", "a")
	b := NewKey("a", "b")
	assert.Equal(t, a, b)
	assert.Equal(t, "a|b", a.String())
}

func TestKey_IsSelf(t *testing.T) {
	assert.True(t, NewKey("g", "g").IsSelf())
	assert.False(t, NewKey("g", "h").IsSelf())
	assert.Equal(t, "g", NewKey("g", "g").String())
}

func TestKey_Less(t *testing.T) {
	assert.True(t, NewKey("a", "b").Less(NewKey("a", "c")))
	assert.True(t, NewKey("a", "z").Less(NewKey("b", "a")))
	assert.False(t, NewKey("b", "a").Less(NewKey("a", "z")))
}
