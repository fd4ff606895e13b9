package uibridge

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hubastard/canopy/engine/colors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsFileFillsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ui.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
theme = "light"
debug_overlay = true
`), 0o644))

	s, err := LoadSettingsFile(path)
	require.NoError(t, err)
	assert.Equal(t, "light", s.Theme)
	assert.True(t, s.DebugOverlay)
	// Unset fields take defaults.
	assert.Equal(t, float32(16), s.TextSize)
	assert.Equal(t, "default.ttf", s.Font)
	assert.Equal(t, 4096, s.MaxQuads)
}

func TestLoadSettingsFileRejectsBadTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ui.toml")
	require.NoError(t, os.WriteFile(path, []byte(`theme = [`), 0o644))
	_, err := LoadSettingsFile(path)
	assert.Error(t, err)
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#ff0000")
	require.NoError(t, err)
	assert.Equal(t, colors.Color{1, 0, 0, 1}, c)

	c, err = ParseHexColor("#fff")
	require.NoError(t, err)
	assert.Equal(t, colors.Color{1, 1, 1, 1}, c)

	c, err = ParseHexColor("#00000080")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, c[3], 0.01)

	_, err = ParseHexColor("ff0000")
	assert.Error(t, err)
	_, err = ParseHexColor("#zzzzzz")
	assert.Error(t, err)
	_, err = ParseHexColor("#ffff")
	assert.Error(t, err)
}

func TestApplySettingsSwapsTheme(t *testing.T) {
	p := New(Settings{Theme: "dark"})
	require.Equal(t, "dark", p.Theme().Name)

	p.ApplySettings(Settings{Theme: "light", Accent: "#102030", DebugOverlay: true})
	assert.Equal(t, "light", p.Theme().Name)
	assert.InDelta(t, float32(0x10)/255, p.Theme().Accent[0], 0.001)
	assert.True(t, p.props.Debug.Enabled())
}
