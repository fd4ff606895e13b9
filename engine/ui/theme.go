package ui

import "github.com/hubastard/canopy/engine/colors"

// Theme holds the widget palette.
type Theme struct {
	Name       string
	Background colors.Color // root container fill (alpha 0 = transparent over the scene)
	Surface    colors.Color
	Text       colors.Color
	Accent     colors.Color
}

// Style is the per-frame render style, independent of the theme.
type Style struct {
	TextColor colors.Color
}

func DarkTheme() *Theme {
	return &Theme{
		Name:       "dark",
		Background: colors.Transparent,
		Surface:    colors.Black.WithAlpha(0.5),
		Text:       colors.White,
		Accent:     colors.RGB(0.26, 0.46, 0.84),
	}
}

func LightTheme() *Theme {
	return &Theme{
		Name:       "light",
		Background: colors.Transparent,
		Surface:    colors.White.WithAlpha(0.7),
		Text:       colors.Black,
		Accent:     colors.RGB(0.20, 0.55, 0.35),
	}
}

// ThemeByName resolves a configured theme name, defaulting to dark.
func ThemeByName(name string) *Theme {
	if name == "light" {
		return LightTheme()
	}
	return DarkTheme()
}
