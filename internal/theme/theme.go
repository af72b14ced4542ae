// Package theme provides the fixed set of named color themes.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme is a pair of display colors: primary for emphasis, dim for
// secondary text.
type Theme struct {
	Primary lipgloss.Color
	Dim     lipgloss.Color
}

// Names lists the available themes in cycling order.
var Names = []string{"blue", "purple", "green", "red", "orange", "cyan"}

var themes = map[string]Theme{
	"blue":   {Primary: lipgloss.Color("#60A5FA"), Dim: lipgloss.Color("#93C5FD")},
	"purple": {Primary: lipgloss.Color("#C084FC"), Dim: lipgloss.Color("#E9D5FF")},
	"green":  {Primary: lipgloss.Color("#4ADE80"), Dim: lipgloss.Color("#86EFAC")},
	"red":    {Primary: lipgloss.Color("#F87171"), Dim: lipgloss.Color("#FECACA")},
	"orange": {Primary: lipgloss.Color("#FBBF24"), Dim: lipgloss.Color("#FDE047")},
	"cyan":   {Primary: lipgloss.Color("#22D3EE"), Dim: lipgloss.Color("#67E8F9")},
}

// FromName returns the theme for the given name, falling back to blue for
// unknown names.
func FromName(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes["blue"]
}

// Valid reports whether name is a known theme.
func Valid(name string) bool {
	_, ok := themes[name]
	return ok
}

// Next returns the theme name after the given one, wrapping at the end.
func Next(name string) string {
	for i, n := range Names {
		if n == name {
			return Names[(i+1)%len(Names)]
		}
	}
	return Names[0]
}

// Prev returns the theme name before the given one, wrapping at the start.
func Prev(name string) string {
	for i, n := range Names {
		if n == name {
			return Names[(i+len(Names)-1)%len(Names)]
		}
	}
	return Names[0]
}
