package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/portal/internal/logtail"
)

const logTailLines = 400

// logState holds the application log view.
type logState struct {
	lines        []string
	err          error
	warningsOnly bool
	follow       bool
}

type logsMsg struct {
	lines []string
	err   error
}

func (m *Model) initLogViewport() {
	m.logViewport = viewport.New(max(m.width-4, 10), max(m.contentHeight()-2, 1))
	m.logs.follow = true
}

func (m Model) fetchLogsCmd() tea.Cmd {
	if m.logPath == "" {
		return nil
	}
	path := m.logPath
	return func() tea.Msg {
		lines, err := logtail.Read(path, logTailLines)
		return logsMsg{lines: lines, err: err}
	}
}

func (m *Model) handleLogs(msg logsMsg) {
	m.logs.lines = msg.lines
	m.logs.err = msg.err
	m.refreshLogContent()
}

func (m *Model) refreshLogContent() {
	m.logViewport.SetContent(m.logContent())
	if m.logs.follow {
		m.logViewport.GotoBottom()
	}
}

func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ToggleWarnings) {
		m.logs.warningsOnly = !m.logs.warningsOnly
		m.refreshLogContent()
		return m, nil
	}
	if key.Matches(msg, m.keys.Bottom) {
		m.logs.follow = true
		m.logViewport.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.logViewport, cmd = m.logViewport.Update(msg)
	m.logs.follow = m.logViewport.AtBottom()
	return m, cmd
}

func (m Model) renderLogs() string {
	title := "Log da aplicação"
	if m.logs.warningsOnly {
		title += " · avisos"
	}
	return m.renderTitledBox(title, m.logViewport.View(), m.width, m.contentHeight(), true)
}

func (m Model) logContent() string {
	styles := m.theme.Styles()
	if m.logs.err != nil {
		return styles.DangerText.Render(m.logs.err.Error())
	}

	lines := m.logs.lines
	if m.logs.warningsOnly {
		lines = logtail.Filter(lines, logtail.SeverityWarn)
	}
	if len(lines) == 0 {
		return styles.MutedText.Render("Nenhuma entrada no log.")
	}

	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = m.levelStyle(logtail.LevelOf(line)).Render(line)
	}
	return strings.Join(out, "\n")
}

func (m Model) levelStyle(sev logtail.Severity) lipgloss.Style {
	styles := m.theme.Styles()
	switch sev {
	case logtail.SeverityError:
		return styles.DangerText
	case logtail.SeverityWarn:
		return styles.WarningText
	case logtail.SeverityDebug:
		return styles.FaintText
	case logtail.SeverityInfo:
		return styles.Text
	default:
		return styles.MutedText
	}
}
