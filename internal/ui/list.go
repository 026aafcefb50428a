package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/portal/internal/characters"
	"github.com/five82/portal/internal/format"
	"github.com/five82/portal/internal/rickmorty"
)

const (
	errorBanner      = "Erro ao buscar personagens. Tente novamente."
	emptyTitle       = "Nenhum personagem encontrado"
	clearFiltersHint = "Pressione c para limpar os filtros."
)

// visibleCharacters returns the current page in display order.
func (m Model) visibleCharacters() []rickmorty.Character {
	if m.sortByName {
		return characters.SortByName(m.snapshot.Characters)
	}
	return m.snapshot.Characters
}

// selectedCharacter returns the highlighted row, if any.
func (m Model) selectedCharacter() (rickmorty.Character, bool) {
	rows := m.visibleCharacters()
	if m.selectedRow < 0 || m.selectedRow >= len(rows) {
		return rickmorty.Character{}, false
	}
	return rows[m.selectedRow], true
}

// renderList renders the search line, the result box and the pager.
func (m Model) renderList() string {
	styles := m.theme.Styles()
	height := m.contentHeight()

	var b strings.Builder
	b.WriteString(" " + m.search.View())
	b.WriteString("\n")

	boxHeight := height - 1
	showPager := m.snapshot.Info.Pages > 1
	if showPager {
		boxHeight--
	}

	var body string
	switch {
	case m.snapshot.LastError != nil:
		body = m.renderErrorState()
	case m.snapshot.Empty():
		body = m.renderEmptyState()
	case len(m.snapshot.Characters) == 0:
		body = styles.MutedText.Render(m.spinner.View() + " Carregando personagens...")
	default:
		body = m.renderRows(m.width-2, boxHeight-2)
	}
	b.WriteString(m.renderTitledBox(m.listTitle(), body, m.width, boxHeight, !m.search.Focused()))

	if showPager {
		b.WriteString("\n")
		b.WriteString(m.renderPager())
	}
	return b.String()
}

func (m Model) listTitle() string {
	title := "Personagens"
	if m.query.Status != "" {
		title += " · " + statusFilterLabel(m.query.Status)
	}
	if m.sortByName {
		title += " · A-Z"
	}
	return title
}

// renderRows renders the character table, keeping the selection in view.
func (m Model) renderRows(width, height int) string {
	rows := m.visibleCharacters()
	if height <= 0 {
		return ""
	}
	styles := m.theme.Styles()

	nameW := max(width/3, 12)
	statusW := 14
	speciesW := 20
	originW := max(width-nameW-statusW-speciesW-6, 8)

	header := styles.FaintText.Render(
		"  " + column("Nome", nameW) + " " + column("Status", statusW) + " " +
			column("Espécie", speciesW) + " " + column("Origem", originW))
	lines := []string{header}

	start := 0
	visible := height - 1
	if m.selectedRow >= visible {
		start = m.selectedRow - visible + 1
	}
	end := min(start+visible, len(rows))

	for i := start; i < end; i++ {
		c := rows[i]
		marker := "  "
		if i == m.selectedRow {
			marker = "▸ "
		}
		status := styles.StatusText(string(c.Status)).Render(column(format.Status(string(c.Status)), statusW))
		line := marker + column(c.Name, nameW) + " " + status + " " +
			column(format.Species(c.Species), speciesW) + " " + column(c.Origin.Name, originW)
		if i == m.selectedRow {
			line = styles.Selected.Render(padRight(line, width))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderErrorState() string {
	styles := m.theme.Styles()
	lines := []string{
		styles.Banner.Render(errorBanner),
		"",
		styles.MutedText.Render(truncate(m.snapshot.LastError.Error(), max(m.width-6, 20))),
		"",
		styles.Text.Render("Pressione r para tentar de novo."),
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderEmptyState() string {
	styles := m.theme.Styles()
	var desc string
	switch {
	case m.query.Name != "" && m.query.Status != "":
		desc = fmt.Sprintf("Nenhum personagem %s corresponde a %q.", strings.ToLower(statusFilterLabel(m.query.Status)), m.query.Name)
	case m.query.Name != "":
		desc = fmt.Sprintf("Nenhum resultado para %q.", m.query.Name)
	case m.query.Status != "":
		desc = fmt.Sprintf("Nenhum personagem com status %s.", strings.ToLower(statusFilterLabel(m.query.Status)))
	default:
		desc = "A API não retornou personagens."
	}

	lines := []string{
		styles.WarningText.Bold(true).Render(emptyTitle),
		"",
		styles.Text.Render(desc),
	}
	if m.query.Name != "" || m.query.Status != "" {
		lines = append(lines, styles.MutedText.Render(clearFiltersHint))
	}
	return strings.Join(lines, "\n")
}

// renderPager renders "‹ 2/42 ›" with the paginator and the page stats.
func (m Model) renderPager() string {
	styles := m.theme.Styles()
	stats := characters.ComputeStats(m.snapshot.Characters)

	prev, next := "‹", "›"
	if !m.snapshot.Info.HasPrev() {
		prev = " "
	}
	if !m.snapshot.Info.HasNext() {
		next = " "
	}
	pager := styles.AccentText.Render(prev + " " + m.pager.View() + " " + next)
	summary := styles.MutedText.Render(statsLine(stats))
	gap := max(m.width-lipgloss.Width(pager)-lipgloss.Width(summary)-2, 1)
	return " " + pager + strings.Repeat(" ", gap) + summary
}

// statsLine summarises the characters on the current page.
func statsLine(s characters.Stats) string {
	return fmt.Sprintf("%d vivos · %d mortos · %d desconhecidos · %d %s",
		s.Alive, s.Dead, s.Unknown, len(s.Species), plural(len(s.Species), "espécie", "espécies"))
}

// renderTitledBox renders content in a box with the title embedded in the
// top border: ┌─── Title ───┐
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	borderColorStr, bgColorStr := m.theme.Border, m.theme.SurfaceAlt
	if focused {
		borderColorStr, bgColorStr = m.theme.BorderFocus, m.theme.FocusBg
	}
	bg := newSurface(bgColorStr)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColorStr))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := max(width-2, 0)
	titleLen := lipgloss.Width(title)
	leftPad := max((innerWidth-titleLen-2)/2, 0)
	rightPad := max(innerWidth-titleLen-2-leftPad, 0)

	topBorder := bg.text("┌", borderStyle) +
		bg.text(strings.Repeat("─", leftPad), borderStyle) +
		bg.text(" "+title+" ", titleStyle) +
		bg.text(strings.Repeat("─", rightPad), borderStyle) +
		bg.text("┐", borderStyle)

	bottomBorder := bg.text("└", borderStyle) +
		bg.text(strings.Repeat("─", innerWidth), borderStyle) +
		bg.text("┘", borderStyle)

	contentStyle := lipgloss.NewStyle().Width(innerWidth).MaxWidth(innerWidth).Background(lipgloss.Color(bgColorStr))

	contentLines := strings.Split(content, "\n")
	boxHeight := max(height-2, 0)
	padded := make([]string, 0, boxHeight)
	for i := range boxHeight {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		padded = append(padded,
			bg.text("│", borderStyle)+contentStyle.Render(line)+bg.text("│", borderStyle))
	}

	return topBorder + "\n" + strings.Join(padded, "\n") + "\n" + bottomBorder
}
