package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordNode struct {
	name    string
	log     *[]string
	updates *[]string
	err     error
}

func (n *recordNode) Update(e *Engine) {
	if n.updates != nil {
		*n.updates = append(*n.updates, n.name)
	}
}

func (n *recordNode) Run(e *Engine, f *Frame) error {
	*n.log = append(*n.log, n.name)
	return n.err
}

func TestExecuteHonorsEdges(t *testing.T) {
	var log []string
	g := NewRenderGraph()
	g.AddNode("ui", &recordNode{name: "ui", log: &log})
	g.AddNode("scene", &recordNode{name: "scene", log: &log})
	g.AddNode("shadow", &recordNode{name: "shadow", log: &log})
	g.AddEdge("shadow", "scene")
	g.AddEdge("scene", "ui")

	require.NoError(t, g.Execute(nil, &Frame{W: 1, H: 1}))
	assert.Equal(t, []string{"shadow", "scene", "ui"}, log)
}

func TestExecuteUpdatesAllBeforeAnyRun(t *testing.T) {
	var log, updates []string
	g := NewRenderGraph()
	g.AddNode("a", &recordNode{name: "a", log: &log, updates: &updates})
	g.AddNode("b", &recordNode{name: "b", log: &log, updates: &updates})

	require.NoError(t, g.Execute(nil, &Frame{W: 1, H: 1}))
	assert.Len(t, updates, 2)
	assert.Len(t, log, 2)
}

func TestExecuteStopsOnNodeError(t *testing.T) {
	var log []string
	boom := errors.New("boom")
	g := NewRenderGraph()
	g.AddNode("a", &recordNode{name: "a", log: &log, err: boom})
	g.AddNode("b", &recordNode{name: "b", log: &log})
	g.AddEdge("a", "b")

	err := g.Execute(nil, &Frame{W: 1, H: 1})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"a"}, log)
}

func TestDuplicateNodePanics(t *testing.T) {
	var log []string
	g := NewRenderGraph()
	g.AddNode("a", &recordNode{name: "a", log: &log})
	assert.Panics(t, func() { g.AddNode("a", &recordNode{name: "a", log: &log}) })
}

func TestEdgeToUnknownNodePanics(t *testing.T) {
	var log []string
	g := NewRenderGraph()
	g.AddNode("a", &recordNode{name: "a", log: &log})
	assert.Panics(t, func() { g.AddEdge("a", "missing") })
}

func TestCyclePanics(t *testing.T) {
	var log []string
	g := NewRenderGraph()
	g.AddNode("a", &recordNode{name: "a", log: &log})
	g.AddNode("b", &recordNode{name: "b", log: &log})
	g.AddEdge("a", "b")
	g.AddEdge("b", "a")
	assert.Panics(t, func() { _ = g.Execute(nil, &Frame{W: 1, H: 1}) })
}
