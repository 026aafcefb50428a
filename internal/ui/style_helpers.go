package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// surface paints text onto one background color. Lipgloss emits a reset
// after each styled segment, so spaces between words are painted too.
// See: https://github.com/charmbracelet/lipgloss/discussions/78
type surface struct {
	bg   lipgloss.Color
	fill lipgloss.Style
}

func newSurface(color string) surface {
	bg := lipgloss.Color(color)
	return surface{bg: bg, fill: lipgloss.NewStyle().Background(bg)}
}

// text renders s with style on the surface color, word by word.
func (s surface) text(value string, style lipgloss.Style) string {
	if value == "" {
		return ""
	}
	style = style.Background(s.bg)
	words := strings.Split(value, " ")
	for i, w := range words {
		if w != "" {
			words[i] = style.Render(w)
		}
	}
	return strings.Join(words, s.fill.Render(" "))
}

// gap returns n painted spaces.
func (s surface) gap(n int) string {
	if n <= 0 {
		return ""
	}
	return s.fill.Render(strings.Repeat(" ", n))
}

func (s surface) join(parts []string, sep string) string {
	return strings.Join(parts, s.fill.Render(sep))
}

// line pads content to width on the surface color.
func (s surface) line(content string, width int) string {
	return s.fill.Width(width).Render(content)
}
