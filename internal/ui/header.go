package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the logo, load status and result counts.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := newSurface(m.theme.Surface)

	parts := []string{bg.text("portal", styles.Logo)}

	switch {
	case m.snapshot.Loading || m.details.loading:
		parts = append(parts, bg.text(m.spinner.View()+" carregando", styles.InfoText))
	case m.snapshot.IsOffline():
		parts = append(parts, bg.text("OFFLINE", styles.DangerText),
			bg.text(fmt.Sprintf("%d falhas seguidas", m.snapshot.ConsecutiveFailures), styles.MutedText))
	case m.snapshot.LastError != nil:
		parts = append(parts, bg.text("erro", styles.WarningText))
	}

	if info := m.snapshot.Info; info.Count > 0 {
		parts = append(parts, bg.text(fmt.Sprintf("%d %s", info.Count, plural(info.Count, "personagem", "personagens")), styles.Text))
	}
	if m.query.Status != "" {
		parts = append(parts, bg.text("Status: "+statusFilterLabel(m.query.Status), styles.AccentText))
	}
	if m.query.Name != "" {
		parts = append(parts, bg.text(fmt.Sprintf("Busca: %q", m.query.Name), styles.AccentText))
	}

	left := bg.join(parts, " · ")
	right := bg.text(m.theme.Name, styles.FaintText)
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	line := bg.gap(1) + left + bg.gap(gap) + right + bg.gap(1)
	return bg.line(line, m.width)
}

// renderCommandBar lists the keys relevant to the active view.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()
	bg := newSurface(m.theme.Background)

	var hints [][2]string
	switch m.currentView {
	case ViewDetails:
		hints = [][2]string{{"esc", "voltar"}, {"j/k", "rolar"}, {"L", "log"}, {"?", "ajuda"}, {"q", "sair"}}
	case ViewLogs:
		filter := "só avisos"
		if m.logs.warningsOnly {
			filter = "tudo"
		}
		hints = [][2]string{{"esc", "voltar"}, {"j/k", "rolar"}, {"w", filter}, {"?", "ajuda"}, {"q", "sair"}}
	default:
		if m.search.Focused() {
			hints = [][2]string{{"enter", "buscar"}, {"esc", "cancelar"}}
			break
		}
		hints = [][2]string{
			{"/", "buscar"}, {"f", "status"}, {"c", "limpar"}, {"←/→", "página"},
			{"enter", "detalhes"}, {"s", "ordenar"}, {"L", "log"}, {"?", "ajuda"}, {"q", "sair"},
		}
	}

	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Warning)).Bold(true)
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, bg.text(h[0], keyStyle)+bg.gap(1)+bg.text(h[1], styles.MutedText))
	}
	return bg.line(bg.gap(1)+strings.Join(parts, bg.gap(2)), m.width)
}
