package client

// Theme is one of the fixed board color schemes.
type Theme string

const (
	ThemeDefault Theme = "default"
	ThemePurple  Theme = "purple"
	ThemeGreen   Theme = "green"
	ThemeRed     Theme = "red"
	ThemeOrange  Theme = "orange"
	ThemePink    Theme = "pink"
)

// ThemeConfig is the render palette for one theme: face-down color,
// face-up color, and the per-pair border colors cycled for matched cards.
type ThemeConfig struct {
	BackColor     string
	FrontColor    string
	BorderPalette []string
}

var themeConfigs = map[Theme]ThemeConfig{
	ThemeDefault: {
		BackColor:  "gray-900",
		FrontColor: "gray-50",
		BorderPalette: []string{
			"gray-300", "gray-400", "gray-500", "gray-600",
			"gray-700", "gray-800", "gray-200", "gray-100",
		},
	},
	ThemePurple: {
		BackColor:  "purple-900",
		FrontColor: "purple-50",
		BorderPalette: []string{
			"purple-300", "purple-400", "purple-500", "purple-600",
			"purple-700", "purple-800", "violet-500", "fuchsia-500",
		},
	},
	ThemeGreen: {
		BackColor:  "green-900",
		FrontColor: "green-50",
		BorderPalette: []string{
			"green-300", "green-400", "green-500", "green-600",
			"green-700", "green-800", "emerald-500", "teal-500",
		},
	},
	ThemeRed: {
		BackColor:  "red-900",
		FrontColor: "red-50",
		BorderPalette: []string{
			"red-300", "red-400", "red-500", "red-600",
			"red-700", "red-800", "rose-500", "pink-500",
		},
	},
	ThemeOrange: {
		BackColor:  "orange-900",
		FrontColor: "orange-50",
		BorderPalette: []string{
			"orange-300", "orange-400", "orange-500", "orange-600",
			"orange-700", "orange-800", "amber-500", "yellow-500",
		},
	},
	ThemePink: {
		BackColor:  "pink-900",
		FrontColor: "pink-50",
		BorderPalette: []string{
			"pink-300", "pink-400", "pink-500", "pink-600",
			"pink-700", "pink-800", "rose-500", "fuchsia-500",
		},
	},
}

// Themes lists every available theme in display order.
func Themes() []Theme {
	return []Theme{ThemeDefault, ThemePurple, ThemeGreen, ThemeRed, ThemeOrange, ThemePink}
}

func (t Theme) Valid() bool {
	_, ok := themeConfigs[t]
	return ok
}

// Config returns the theme's palette, falling back to the default theme for
// unknown values.
func (t Theme) Config() ThemeConfig {
	if cfg, ok := themeConfigs[t]; ok {
		return cfg
	}
	return themeConfigs[ThemeDefault]
}
