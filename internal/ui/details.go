package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/portal/internal/browse"
	"github.com/five82/portal/internal/characters"
	"github.com/five82/portal/internal/format"
	"github.com/five82/portal/internal/rickmorty"
)

// detailState holds the character shown in the details view.
type detailState struct {
	id      int
	loading bool
	err     error
	data    *browse.Details
}

type detailsMsg struct {
	id      int
	details browse.Details
	err     error
}

func (m *Model) initDetailViewport() {
	m.detailViewport = viewport.New(max(m.width-4, 10), max(m.contentHeight()-2, 1))
}

func (m *Model) resizeViewports() {
	m.detailViewport.Width = max(m.width-4, 10)
	m.detailViewport.Height = max(m.contentHeight()-2, 1)
	m.logViewport.Width = max(m.width-4, 10)
	m.logViewport.Height = max(m.contentHeight()-2, 1)
	m.refreshDetailContent()
	m.refreshLogContent()
}

// openDetails switches the details view to id and starts loading it.
func (m *Model) openDetails(id int) tea.Cmd {
	m.details = detailState{id: id, loading: true}
	m.refreshDetailContent()
	m.detailViewport.GotoTop()

	if m.client == nil {
		return nil
	}
	client, ctx := m.client, m.ctx
	load := func() tea.Msg {
		d, err := browse.LoadDetails(ctx, client, id)
		return detailsMsg{id: id, details: d, err: err}
	}
	return tea.Batch(load, m.spinner.Tick)
}

func (m *Model) handleDetails(msg detailsMsg) {
	if msg.id != m.details.id {
		return
	}
	m.details.loading = false
	if msg.err != nil {
		m.log.Error("load details failed", "id", msg.id, "error", msg.err)
		m.details.err = msg.err
		m.details.data = nil
	} else {
		d := msg.details
		m.details.err = nil
		m.details.data = &d
	}
	m.refreshDetailContent()
}

func (m Model) handleDetailsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.detailViewport, cmd = m.detailViewport.Update(msg)
	return m, cmd
}

func (m *Model) refreshDetailContent() {
	m.detailViewport.SetContent(m.detailContent())
}

func (m Model) renderDetails() string {
	title := "Detalhes"
	if d := m.details.data; d != nil {
		title = d.Character.Name
	}
	return m.renderTitledBox(title, m.detailViewport.View(), m.width, m.contentHeight(), true)
}

// detailContent builds the scrollable body of the details view.
func (m Model) detailContent() string {
	styles := m.theme.Styles()

	switch {
	case m.details.loading:
		return styles.MutedText.Render(m.spinner.View() + " Carregando detalhes...")
	case m.details.err != nil:
		msg := "Erro ao carregar personagem. Tente novamente."
		if rickmorty.IsNotFound(m.details.err) {
			msg = "Personagem não encontrado."
		}
		return styles.Banner.Render(msg) + "\n\n" + styles.MutedText.Render(m.details.err.Error())
	case m.details.data == nil:
		return ""
	}

	d := m.details.data
	c := d.Character
	label := func(s string) string { return styles.FaintText.Render(padRight(s, 14)) }

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render(c.Name))
	b.WriteString("  ")
	b.WriteString(styles.StatusStyle(string(c.Status)).Render(format.Status(string(c.Status))))
	b.WriteString("\n\n")

	rows := [][2]string{
		{"Espécie", format.Species(c.Species)},
		{"Tipo", orDash(c.Type)},
		{"Gênero", format.Gender(string(c.Gender))},
		{"Origem", locationLabel(c.Origin, d.Origin)},
		{"Localização", locationLabel(c.Location, d.Location)},
		{"Criado em", format.DateLong(c.Created)},
	}
	for _, r := range rows {
		b.WriteString(label(r[0]))
		b.WriteString(styles.Text.Render(r[1]))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.AccentText.Bold(true).Render(fmt.Sprintf("Episódios (%d)", len(d.Episodes))))
	b.WriteString("\n")
	for _, e := range d.Episodes {
		b.WriteString(styles.WarningText.Render(padRight(e.Code, 8)))
		b.WriteString(styles.Text.Render(format.Truncate(e.Name, 40)))
		b.WriteString(styles.MutedText.Render("  " + format.EpisodeLabel(e.Code)))
		if e.AirDate != "" {
			b.WriteString(styles.FaintText.Render(" · " + e.AirDate))
		}
		b.WriteString("\n")
	}

	if len(m.snapshot.Characters) > 0 {
		stats := characters.ComputeStats(m.snapshot.Characters)
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render(fmt.Sprintf("Página atual: %d %s · %s",
			stats.Total, plural(stats.Total, "personagem", "personagens"), statsLine(stats))))
		b.WriteString("\n")
	}
	return b.String()
}

// locationLabel prefers the fetched record, which carries the dimension.
func locationLabel(ref rickmorty.Ref, loc *rickmorty.Location) string {
	if loc == nil {
		if ref.Name == "unknown" {
			return "Desconhecido"
		}
		return orDash(ref.Name)
	}
	parts := []string{loc.Name}
	if loc.Type != "" {
		parts = append(parts, loc.Type)
	}
	if loc.Dimension != "" && loc.Dimension != "unknown" {
		parts = append(parts, loc.Dimension)
	}
	return strings.Join(parts, " · ")
}
