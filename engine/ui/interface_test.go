package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clicked struct{ n int }

func buildCounter(cache *Cache, r *Renderer) *Interface {
	root := NewView().Column().Gap(4).
		Children(
			NewButton("+1").ID("inc").WidthFixed(100).HeightFixed(30).OnPress(clicked{1}),
			NewButton("-1").ID("dec").WidthFixed(100).HeightFixed(30).OnPress(clicked{-1}),
		)
	return Build(root, [2]float32{400, 300}, cache, r)
}

func TestButtonPressReleaseEmits(t *testing.T) {
	r := NewRenderer(nil, 16, AntialiasNone)
	ui := buildCounter(NewCache(), r)

	cursor := AvailableCursor(50, 15) // inside "inc"
	msgs, statuses := ui.Update([]Event{
		ButtonPressed{Button: ButtonLeft},
		ButtonReleased{Button: ButtonLeft},
	}, cursor)

	require.Len(t, msgs, 1)
	assert.Equal(t, clicked{1}, msgs[0])
	assert.Equal(t, []Status{Captured, Captured}, statuses)
}

func TestButtonReleaseOutsideEmitsNothing(t *testing.T) {
	r := NewRenderer(nil, 16, AntialiasNone)
	cache := NewCache()

	ui := buildCounter(cache, r)
	_, statuses := ui.Update([]Event{ButtonPressed{Button: ButtonLeft}}, AvailableCursor(50, 15))
	require.Equal(t, []Status{Captured}, statuses)
	cache = ui.IntoCache()

	// Next frame: the cursor moved off the button before release.
	ui = buildCounter(cache, r)
	msgs, statuses := ui.Update([]Event{
		CursorMoved{X: 300, Y: 200},
		ButtonReleased{Button: ButtonLeft},
	}, AvailableCursor(300, 200))
	assert.Empty(t, msgs)
	assert.Equal(t, []Status{Ignored, Ignored}, statuses)
}

func TestActiveStateSurvivesRebuild(t *testing.T) {
	r := NewRenderer(nil, 16, AntialiasNone)
	cache := NewCache()

	ui := buildCounter(cache, r)
	ui.Update([]Event{ButtonPressed{Button: ButtonLeft}}, AvailableCursor(50, 15))
	cache = ui.IntoCache()
	assert.True(t, cache.stateFor("inc").Active)

	ui = buildCounter(cache, r)
	msgs, _ := ui.Update([]Event{ButtonReleased{Button: ButtonLeft}}, AvailableCursor(50, 15))
	require.Len(t, msgs, 1)
	assert.Equal(t, clicked{1}, msgs[0])
	assert.False(t, ui.IntoCache().stateFor("inc").Active)
}

func TestUnavailableCursorIgnoresPress(t *testing.T) {
	r := NewRenderer(nil, 16, AntialiasNone)
	ui := buildCounter(NewCache(), r)
	msgs, statuses := ui.Update([]Event{ButtonPressed{Button: ButtonLeft}}, Cursor{})
	assert.Empty(t, msgs)
	assert.Equal(t, []Status{Ignored}, statuses)
}

func TestTouchPressAndLift(t *testing.T) {
	r := NewRenderer(nil, 16, AntialiasNone)
	ui := buildCounter(NewCache(), r)
	msgs, statuses := ui.Update([]Event{
		FingerPressed{Finger: 1, X: 50, Y: 49}, // inside "dec" (y 34..64)
		FingerLifted{Finger: 1, X: 50, Y: 49},
	}, Cursor{})
	require.Len(t, msgs, 1)
	assert.Equal(t, clicked{-1}, msgs[0])
	assert.Equal(t, []Status{Captured, Captured}, statuses)
}

func TestCheckboxToggleReportsNewState(t *testing.T) {
	r := NewRenderer(nil, 16, AntialiasNone)
	type toggled struct{ on bool }
	root := NewView().Children(
		NewCheckbox("show overlay", false).ID("cb").WidthFixed(120).HeightFixed(20).
			OnToggle(func(on bool) any { return toggled{on} }),
	)
	ui := Build(root, [2]float32{200, 100}, NewCache(), r)
	msgs, _ := ui.Update([]Event{
		ButtonPressed{Button: ButtonLeft},
		ButtonReleased{Button: ButtonLeft},
	}, AvailableCursor(10, 10))
	require.Len(t, msgs, 1)
	assert.Equal(t, toggled{true}, msgs[0])
}

func TestColumnLayoutStacksWithGap(t *testing.T) {
	r := NewRenderer(nil, 16, AntialiasNone)
	ui := buildCounter(NewCache(), r)
	kids := ui.root.Node().Children()
	require.Len(t, kids, 2)

	_, y0 := kids[0].Node().Pos()
	_, y1 := kids[1].Node().Pos()
	assert.Equal(t, float32(0), y0)
	assert.Equal(t, float32(34), y1) // 30 high + 4 gap
}

func TestUnsizedWidgetDefaultsToFit(t *testing.T) {
	r := NewRenderer(nil, 16, AntialiasNone)
	// No explicit sizing: the button shrinks to its content, which without
	// a font is just the default padding.
	ui := Build(NewButton("x").ID("b"), [2]float32{400, 300}, NewCache(), r)
	w, h := ui.root.Node().Size()
	assert.Equal(t, float32(24), w) // 12 + 12 horizontal padding
	assert.Equal(t, float32(12), h) // 6 + 6 vertical padding
}

func TestDrawRecordsPrimitives(t *testing.T) {
	r := NewRenderer(nil, 16, AntialiasNone)
	ui := buildCounter(NewCache(), r)
	ui.Draw(DarkTheme(), Style{}, Cursor{})
	// Two button fills; text collapses without a font.
	assert.Equal(t, 2, r.PrimitiveCount())
	r.Recycle()
	assert.Zero(t, r.PrimitiveCount())
}
