package tui

import (
	"image/color"
	"sort"
	"strings"

	"charm.land/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// DefaultThemeName is the theme used when no theme is configured or the
// configured name is unknown.
const DefaultThemeName = "dark"

// Theme resolves the named design tokens every styled element is built from.
// The layout references tokens symbolically; only this registry knows values.
type Theme struct {
	Name       string
	Primary    color.Color
	Accent     color.Color
	Error      color.Color
	Surface    color.Color
	Background color.Color
	Text       color.Color
	Muted      color.Color
}

// Dark reports whether the theme renders on a dark background.
func (t Theme) Dark() bool {
	luminance, ok := relativeLuminance(t.Background)
	if !ok {
		return true
	}
	return luminance <= contrastLuminanceCutoff
}

// themes holds every registered theme keyed by canonical name.
var themes = map[string]Theme{
	"dark": {
		Name:       "dark",
		Primary:    lipgloss.Color("#0178d4"),
		Accent:     lipgloss.Color("#00b0ff"),
		Error:      lipgloss.Color("#ba3c5b"),
		Surface:    lipgloss.Color("#1e1e1e"),
		Background: lipgloss.Color("#121212"),
		Text:       lipgloss.Color("#e0e0e0"),
		Muted:      lipgloss.Color("#6e6e6e"),
	},
	"light": {
		Name:       "light",
		Primary:    lipgloss.Color("#0060aa"),
		Accent:     lipgloss.Color("#0178d4"),
		Error:      lipgloss.Color("#c42b1c"),
		Surface:    lipgloss.Color("#efefef"),
		Background: lipgloss.Color("#fafafa"),
		Text:       lipgloss.Color("#1c1c1c"),
		Muted:      lipgloss.Color("#767676"),
	},
	"nord": {
		Name:       "nord",
		Primary:    lipgloss.Color("#88c0d0"),
		Accent:     lipgloss.Color("#81a1c1"),
		Error:      lipgloss.Color("#bf616a"),
		Surface:    lipgloss.Color("#3b4252"),
		Background: lipgloss.Color("#2e3440"),
		Text:       lipgloss.Color("#eceff4"),
		Muted:      lipgloss.Color("#4c566a"),
	},
	"gruvbox": {
		Name:       "gruvbox",
		Primary:    lipgloss.Color("#fabd2f"),
		Accent:     lipgloss.Color("#83a598"),
		Error:      lipgloss.Color("#fb4934"),
		Surface:    lipgloss.Color("#3c3836"),
		Background: lipgloss.Color("#282828"),
		Text:       lipgloss.Color("#ebdbb2"),
		Muted:      lipgloss.Color("#928374"),
	},
	"dracula": {
		Name:       "dracula",
		Primary:    lipgloss.Color("#bd93f9"),
		Accent:     lipgloss.Color("#ff79c6"),
		Error:      lipgloss.Color("#ff5555"),
		Surface:    lipgloss.Color("#44475a"),
		Background: lipgloss.Color("#282a36"),
		Text:       lipgloss.Color("#f8f8f2"),
		Muted:      lipgloss.Color("#6272a4"),
	},
	"tokyo-night": {
		Name:       "tokyo-night",
		Primary:    lipgloss.Color("#7aa2f7"),
		Accent:     lipgloss.Color("#bb9af7"),
		Error:      lipgloss.Color("#f7768e"),
		Surface:    lipgloss.Color("#24283b"),
		Background: lipgloss.Color("#1a1b26"),
		Text:       lipgloss.Color("#c0caf5"),
		Muted:      lipgloss.Color("#565f89"),
	},
	"monokai": {
		Name:       "monokai",
		Primary:    lipgloss.Color("#a6e22e"),
		Accent:     lipgloss.Color("#66d9ef"),
		Error:      lipgloss.Color("#f92672"),
		Surface:    lipgloss.Color("#3e3d32"),
		Background: lipgloss.Color("#272822"),
		Text:       lipgloss.Color("#f8f8f2"),
		Muted:      lipgloss.Color("#75715e"),
	},
	"catppuccin-mocha": {
		Name:       "catppuccin-mocha",
		Primary:    lipgloss.Color("#cba6f7"),
		Accent:     lipgloss.Color("#89b4fa"),
		Error:      lipgloss.Color("#f38ba8"),
		Surface:    lipgloss.Color("#313244"),
		Background: lipgloss.Color("#1e1e2e"),
		Text:       lipgloss.Color("#cdd6f4"),
		Muted:      lipgloss.Color("#6c7086"),
	},
	"catppuccin-latte": {
		Name:       "catppuccin-latte",
		Primary:    lipgloss.Color("#8839ef"),
		Accent:     lipgloss.Color("#1e66f5"),
		Error:      lipgloss.Color("#d20f39"),
		Surface:    lipgloss.Color("#e6e9ef"),
		Background: lipgloss.Color("#eff1f5"),
		Text:       lipgloss.Color("#4c4f69"),
		Muted:      lipgloss.Color("#9ca0b0"),
	},
	"solarized-light": {
		Name:       "solarized-light",
		Primary:    lipgloss.Color("#268bd2"),
		Accent:     lipgloss.Color("#2aa198"),
		Error:      lipgloss.Color("#dc322f"),
		Surface:    lipgloss.Color("#eee8d5"),
		Background: lipgloss.Color("#fdf6e3"),
		Text:       lipgloss.Color("#657b83"),
		Muted:      lipgloss.Color("#93a1a1"),
	},
}

// ThemeByName resolves a theme by name. Unknown names fall back to dark.
func ThemeByName(name string) Theme {
	if theme, ok := themes[strings.TrimSpace(strings.ToLower(name))]; ok {
		return theme
	}
	return themes[DefaultThemeName]
}

// KnownTheme reports whether a theme name exists.
func KnownTheme(name string) bool {
	_, ok := themes[strings.TrimSpace(strings.ToLower(name))]
	return ok
}

// ThemeNames lists registered theme names in stable order.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// blend mixes the over color into the base color at the given strength.
func blend(base, over color.Color, strength float64) color.Color {
	if strength <= 0 {
		return base
	}
	if strength >= 1 {
		return over
	}
	b, ok := colorful.MakeColor(base)
	if !ok {
		return over
	}
	o, ok := colorful.MakeColor(over)
	if !ok {
		return base
	}
	return lipgloss.Color(b.BlendRgb(o, strength).Clamped().Hex())
}

// Backgrounds above this relative luminance take black text, below it white.
const contrastLuminanceCutoff = 0.179

// contrastText picks black or white text for the given background color.
func contrastText(background color.Color) color.Color {
	luminance, ok := relativeLuminance(background)
	if !ok {
		return lipgloss.Color("#ffffff")
	}
	if luminance > contrastLuminanceCutoff {
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color("#ffffff")
}

// relativeLuminance returns the WCAG relative luminance of a color.
func relativeLuminance(c color.Color) (float64, bool) {
	parsed, ok := colorful.MakeColor(c)
	if !ok {
		return 0, false
	}
	r, g, b := parsed.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b, true
}
