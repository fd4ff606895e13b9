package uibridge

import (
	"fmt"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/hubastard/canopy/engine/colors"
)

// Settings configures the bridge. Zero values fall back to defaults, so a
// partial TOML file works.
type Settings struct {
	Theme         string  `toml:"theme"`          // "dark" or "light"
	Font          string  `toml:"font"`           // file name under assets/fonts
	TextSize      float32 `toml:"text_size"`      // logical px
	ScaleOverride float64 `toml:"scale_override"` // 0 = follow the display
	Antialiasing  bool    `toml:"antialiasing"`
	DebugOverlay  bool    `toml:"debug_overlay"`
	Accent        string  `toml:"accent"`     // hex override, e.g. "#4277d6"
	TextColor     string  `toml:"text_color"` // hex, "" = theme text color
	MaxQuads      int     `toml:"max_quads"`

	// Programmatic only: embedded font blobs. DefaultFontTTF replaces the
	// Font file when set; ExtraFonts are preloaded alongside it.
	DefaultFontTTF []byte   `toml:"-"`
	ExtraFonts     [][]byte `toml:"-"`
}

func DefaultSettings() Settings {
	return Settings{
		Theme:        "dark",
		Font:         "default.ttf",
		TextSize:     16,
		Antialiasing: true,
		MaxQuads:     4096,
	}
}

func (s *Settings) applyDefaults() {
	d := DefaultSettings()
	if s.Theme == "" {
		s.Theme = d.Theme
	}
	if s.Font == "" {
		s.Font = d.Font
	}
	if s.TextSize <= 0 {
		s.TextSize = d.TextSize
	}
	if s.MaxQuads <= 0 {
		s.MaxQuads = d.MaxQuads
	}
}

// LoadSettingsFile reads a TOML settings file, filling unset fields with
// defaults.
func LoadSettingsFile(path string) (Settings, error) {
	var s Settings
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return Settings{}, fmt.Errorf("uibridge: load settings %s: %w", path, err)
	}
	s.applyDefaults()
	return s, nil
}

// ParseHexColor parses "#rgb", "#rrggbb" or "#rrggbbaa".
func ParseHexColor(s string) (colors.Color, error) {
	if len(s) == 0 || s[0] != '#' {
		return colors.Color{}, fmt.Errorf("uibridge: hex color must start with '#': %q", s)
	}
	hex := s[1:]
	var r, g, b, a uint64
	a = 0xff
	var err error
	switch len(hex) {
	case 3:
		if r, err = strconv.ParseUint(hex[0:1]+hex[0:1], 16, 8); err == nil {
			if g, err = strconv.ParseUint(hex[1:2]+hex[1:2], 16, 8); err == nil {
				b, err = strconv.ParseUint(hex[2:3]+hex[2:3], 16, 8)
			}
		}
	case 6, 8:
		if r, err = strconv.ParseUint(hex[0:2], 16, 8); err == nil {
			if g, err = strconv.ParseUint(hex[2:4], 16, 8); err == nil {
				b, err = strconv.ParseUint(hex[4:6], 16, 8)
			}
		}
		if err == nil && len(hex) == 8 {
			a, err = strconv.ParseUint(hex[6:8], 16, 8)
		}
	default:
		return colors.Color{}, fmt.Errorf("uibridge: hex color has %d digits: %q", len(hex), s)
	}
	if err != nil {
		return colors.Color{}, fmt.Errorf("uibridge: bad hex color %q: %w", s, err)
	}
	return colors.Color{
		float32(r) / 255, float32(g) / 255, float32(b) / 255, float32(a) / 255,
	}, nil
}
