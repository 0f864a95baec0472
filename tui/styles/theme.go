package styles

import (
	"slices"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a Base16 scheme for the host chrome. The overlay draws with its
// own fixed palette; only the canvas background follows Base00.
type Theme struct {
	Name string

	Base00 lipgloss.Color // canvas and panel background
	Base01 lipgloss.Color // header and status bar
	Base02 lipgloss.Color // selected row
	Base03 lipgloss.Color // dim text, timeline track
	Base04 lipgloss.Color // hints
	Base05 lipgloss.Color // body text
	Base06 lipgloss.Color // values
	Base07 lipgloss.Color
	Base08 lipgloss.Color // failures
	Base09 lipgloss.Color // orange team
	Base0A lipgloss.Color // busy
	Base0B lipgloss.Color // ready
	Base0C lipgloss.Color
	Base0D lipgloss.Color // blue team, titles
	Base0E lipgloss.Color // section headings
	Base0F lipgloss.Color
}

// FallbackTheme is used when the configured slug is unknown.
const FallbackTheme = "solarized-dark"

var slugs []string

func init() {
	for slug := range Themes {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
}

// Lookup returns the theme registered under slug.
func Lookup(slug string) (Theme, bool) {
	t, ok := Themes[slug]
	return t, ok
}

// Resolve returns the theme for slug, falling back to FallbackTheme.
func Resolve(slug string) Theme {
	if t, ok := Themes[slug]; ok {
		return t
	}
	return Themes[FallbackTheme]
}

// Slugs returns the registered theme slugs in sorted order.
func Slugs() []string {
	return slices.Clone(slugs)
}

// Step moves delta places from slug through the sorted slugs, wrapping at
// either end. An unknown slug starts from the first theme.
func Step(slug string, delta int) string {
	n := len(slugs)
	i := max(slices.Index(slugs, slug), 0)
	return slugs[((i+delta)%n+n)%n]
}

// Position returns the 1-based place of slug among the themes, or 0.
func Position(slug string) int {
	return slices.Index(slugs, slug) + 1
}
