package uibridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRoundTripsCache(t *testing.T) {
	r := NewRegistry()
	c := r.Acquire("hud")
	require.NotNil(t, c)
	r.Release("hud", c)
	assert.Same(t, c, r.Acquire("hud"))
}

func TestRegistrySessionsAreIndependent(t *testing.T) {
	r := NewRegistry()
	a := r.Acquire("hud")
	b := r.Acquire("menu")
	assert.NotSame(t, a, b)
	r.Release("hud", a)
	r.Release("menu", b)
}

func TestRegistryDoubleAcquirePanics(t *testing.T) {
	r := NewRegistry()
	r.Acquire("hud")
	assert.Panics(t, func() { r.Acquire("hud") })
}
