package cli

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/terra-clan/algocards/internal/config"
	"github.com/terra-clan/algocards/pkg/catalog"
)

// styles is the set of lipgloss styles bound to one output writer
type styles struct {
	r       *lipgloss.Renderer
	heading lipgloss.Style
	muted   lipgloss.Style
	free    lipgloss.Style
	premium lipgloss.Style
	correct lipgloss.Style
	code    lipgloss.Style
}

// newStyles builds styles for w. Color is detected from w unless the color
// mode forces it.
func newStyles(w io.Writer, colorMode string) *styles {
	r := lipgloss.NewRenderer(w)
	switch colorMode {
	case config.ColorAlways:
		r.SetColorProfile(termenv.TrueColor)
	case config.ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}

	return &styles{
		r:       r,
		heading: r.NewStyle().Bold(true),
		muted:   r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}),
		free:    r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#4ADE80"}),
		premium: r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FBBF24"}),
		correct: r.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#4ADE80"}),
		code: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"}).
			Padding(0, 1),
	}
}

// category returns the accent style of a category, using its light and dark
// colors.
func (s *styles) category(c *catalog.Category) lipgloss.Style {
	return s.r.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: c.Color, Dark: c.ColorDark})
}

func (s *styles) tier(c *catalog.Category) string {
	if c.IsPremium() {
		return s.premium.Render("premium")
	}
	return s.free.Render("free")
}

// writeJSON writes v as indented JSON
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// indent prefixes every non-empty line of s
func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
