package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopicDrainPreservesOrder(t *testing.T) {
	b := NewBus()
	topic := b.Register("hud")
	topic.Send(1)
	topic.Send(2)
	topic.Send(3)

	require.Equal(t, 3, topic.Len())
	assert.Equal(t, []any{1, 2, 3}, topic.Drain())
	assert.Zero(t, topic.Len())
	assert.Nil(t, topic.Drain())
}

func TestRegisterTwicePanics(t *testing.T) {
	b := NewBus()
	b.Register("hud")
	assert.Panics(t, func() { b.Register("hud") })
}

func TestLookup(t *testing.T) {
	b := NewBus()
	reg := b.Register("hud")

	got, ok := b.Lookup("hud")
	require.True(t, ok)
	assert.Same(t, reg, got)

	_, ok = b.Lookup("menu")
	assert.False(t, ok)
}
