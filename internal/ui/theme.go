package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is a named color set. Every color is a hex string.
type Theme struct {
	Name string

	Background string
	Surface    string
	SurfaceAlt string
	FocusBg    string

	SelectionBg   string
	SelectionText string

	Border      string
	BorderFocus string

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string

	// Alive, Dead and unknown, keyed by API value.
	StatusColors map[string]string
}

// Styles holds the lipgloss styles derived from a Theme.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	InfoText    lipgloss.Style

	Logo     lipgloss.Style
	Selected lipgloss.Style
	Banner   lipgloss.Style

	statusColors map[string]string
	background   string
	muted        string
}

// Styles builds the style set for t.
func (t Theme) Styles() Styles {
	fg := func(color string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	}
	return Styles{
		Text:        fg(t.Text),
		MutedText:   fg(t.Muted),
		FaintText:   fg(t.Faint),
		AccentText:  fg(t.Accent),
		WarningText: fg(t.Warning),
		DangerText:  fg(t.Danger).Bold(true),
		InfoText:    fg(t.Info),

		Logo: fg(t.Success).Bold(true),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),
		Banner: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Background)).
			Background(lipgloss.Color(t.Danger)).
			Bold(true).
			Padding(0, 1),

		statusColors: t.StatusColors,
		background:   t.Background,
		muted:        t.Muted,
	}
}

func (s Styles) statusColor(status string) lipgloss.Color {
	if c := s.statusColors[status]; c != "" {
		return lipgloss.Color(c)
	}
	return lipgloss.Color(s.muted)
}

// StatusStyle returns a badge style for a life status.
func (s Styles) StatusStyle(status string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.background)).
		Background(s.statusColor(status)).
		Padding(0, 1)
}

// StatusText returns a foreground-only style for a life status.
func (s Styles) StatusText(status string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(s.statusColor(status))
}

// palette is the short form themes are declared in. Surfaces run from
// darkest to lightest.
type palette struct {
	surfaces  [4]string
	selection string
	border    string
	text      string
	muted     string
	faint     string
	accent    string
	green     string
	yellow    string
	red       string
	cyan      string
}

func (p palette) theme(name string) Theme {
	return Theme{
		Name:          name,
		Background:    p.surfaces[0],
		Surface:       p.surfaces[1],
		SurfaceAlt:    p.surfaces[2],
		FocusBg:       p.surfaces[3],
		SelectionBg:   p.selection,
		SelectionText: p.text,
		Border:        p.border,
		BorderFocus:   p.accent,
		Text:          p.text,
		Muted:         p.muted,
		Faint:         p.faint,
		Accent:        p.accent,
		Success:       p.green,
		Warning:       p.yellow,
		Danger:        p.red,
		Info:          p.cyan,
		StatusColors: map[string]string{
			"Alive":   p.green,
			"Dead":    p.red,
			"unknown": p.faint,
		},
	}
}

var themeOrder = []string{"Nightfox", "Kanagawa", "Slate", "Portal"}

var themes = map[string]Theme{
	// https://github.com/EdenEast/nightfox.nvim
	"Nightfox": palette{
		surfaces:  [4]string{"#131a24", "#192330", "#212e3f", "#29394f"},
		selection: "#2b3b51",
		border:    "#39506d",
		text:      "#cdcecf",
		muted:     "#738091",
		faint:     "#71839b",
		accent:    "#719cd6",
		green:     "#81b29a",
		yellow:    "#dbc074",
		red:       "#c94f6d",
		cyan:      "#63cdcf",
	}.theme("Nightfox"),
	// https://github.com/rebelot/kanagawa.nvim
	"Kanagawa": palette{
		surfaces:  [4]string{"#16161D", "#1F1F28", "#2A2A37", "#363646"},
		selection: "#2D4F67",
		border:    "#54546D",
		text:      "#DCD7BA",
		muted:     "#C8C093",
		faint:     "#727169",
		accent:    "#7E9CD8",
		green:     "#98BB6C",
		yellow:    "#E6C384",
		red:       "#E46876",
		cyan:      "#7FB4CA",
	}.theme("Kanagawa"),
	// Tailwind slate and sky.
	"Slate": palette{
		surfaces:  [4]string{"#020617", "#0f172a", "#1e293b", "#283548"},
		selection: "#0284c7",
		border:    "#334155",
		text:      "#f1f5f9",
		muted:     "#94a3b8",
		faint:     "#64748b",
		accent:    "#38bdf8",
		green:     "#22c55e",
		yellow:    "#f59e0b",
		red:       "#ef4444",
		cyan:      "#06b6d4",
	}.theme("Slate"),
	// Portal green on lab-coat grey.
	"Portal": palette{
		surfaces:  [4]string{"#0b0f0c", "#121a14", "#1a261d", "#233327"},
		selection: "#2f5d3a",
		border:    "#35503b",
		text:      "#e4efe6",
		muted:     "#97ab9c",
		faint:     "#68806e",
		accent:    "#97ce4c",
		green:     "#97ce4c",
		yellow:    "#f0e14a",
		red:       "#e4572e",
		cyan:      "#44d7e8",
	}.theme("Portal"),
}

// GetTheme returns the named theme, or Nightfox when name is unknown.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes[themeOrder[0]]
}

// NextTheme returns the theme after current in cycle order.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns the available themes in cycle order.
func ThemeNames() []string {
	return themeOrder
}
