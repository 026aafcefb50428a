package ui

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/five82/portal/internal/browse"
	"github.com/five82/portal/internal/prefs"
	"github.com/five82/portal/internal/rickmorty"
	"github.com/five82/portal/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewList View = iota
	ViewDetails
	ViewLogs
)

const (
	defaultTick    = time.Second
	searchDebounce = 300 * time.Millisecond
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Client    rickmorty.Fetcher
	Loader    *browse.Loader
	Logger    *log.Logger
	LogPath   string
	Tick      time.Duration
	ThemeName string
	Status    rickmorty.Status // initial status filter
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	client    rickmorty.Fetcher
	loader    *browse.Loader
	log       *log.Logger
	logPath   string
	prefsPath string
	tick      time.Duration
	keys      keyMap

	// UI state
	theme       Theme
	currentView View
	width       int
	height      int
	ready       bool
	showHelp    bool

	// Listing state
	query       state.Query
	snapshot    state.Snapshot
	selectedRow int
	sortByName  bool
	search      textinput.Model
	searchSeq   int
	spinner     spinner.Model
	pager       paginator.Model

	// Details state
	detailViewport viewport.Model
	details        detailState

	// Log state
	logViewport viewport.Model
	logs        logState
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	tick := opts.Tick
	if tick <= 0 {
		tick = defaultTick
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.Default().Theme
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	search := textinput.New()
	search.Prompt = "Buscar: "
	search.Placeholder = "nome do personagem"
	search.CharLimit = 64

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	pager := paginator.New()
	pager.Type = paginator.Arabic
	pager.PerPage = 1

	return Model{
		ctx:         ctx,
		client:      opts.Client,
		loader:      opts.Loader,
		log:         logger.WithPrefix("ui"),
		logPath:     opts.LogPath,
		prefsPath:   opts.PrefsPath,
		tick:        tick,
		keys:        DefaultKeyMap(),
		theme:       GetTheme(themeName),
		currentView: ViewList,
		query:       state.Query{Status: opts.Status, Page: 1},
		search:      search,
		spinner:     spin,
		pager:       pager,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tickCmd(m.tick),
		m.loadCmd(m.query),
		m.spinner.Tick,
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.initDetailViewport()
			m.initLogViewport()
		}
		m.ready = true
		m.resizeViewports()
		m.search.Width = max(m.width-len(m.search.Prompt)-4, 10)
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.applySnapshot(state.Snapshot(msg))
		return m, nil

	case loadedMsg:
		m.applySnapshot(state.Snapshot(msg))
		return m, nil

	case searchDebounceMsg:
		if msg.seq != m.searchSeq {
			return m, nil
		}
		return m.applySearch()

	case spinner.TickMsg:
		if !m.snapshot.Loading && !m.details.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case detailsMsg:
		m.handleDetails(msg)
		return m, nil

	case logsMsg:
		m.handleLogs(msg)
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Carregando..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.search.Focused() {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		m.refreshDetailContent()
		m.refreshLogContent()
		return m, nil

	case key.Matches(msg, m.keys.ViewLogs):
		m.currentView = ViewLogs
		cmd := m.fetchLogsCmd()
		return m, cmd

	case key.Matches(msg, m.keys.Escape):
		m.currentView = ViewList
		return m, nil
	}

	switch m.currentView {
	case ViewList:
		return m.handleListKey(msg)
	case ViewDetails:
		return m.handleDetailsKey(msg)
	case ViewLogs:
		return m.handleLogsKey(msg)
	}
	return m, nil
}

// handleSearchKey routes keys to the search box while it has focus.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEnter:
		m.search.Blur()
		m.searchSeq++
		return m.applySearch()
	case tea.KeyEsc:
		m.search.Blur()
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() == before {
		return m, cmd
	}
	m.searchSeq++
	return m, tea.Batch(cmd, debounceCmd(m.searchSeq))
}

// applySearch reloads from page 1 when the typed query differs from the
// active one.
func (m Model) applySearch() (tea.Model, tea.Cmd) {
	name := strings.TrimSpace(m.search.Value())
	if name == m.query.Name {
		return m, nil
	}
	m.query.Name = name
	return m.reload(1)
}

// handleListKey processes keyboard input for the character list.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := len(m.visibleCharacters())

	switch {
	case key.Matches(msg, m.keys.Search):
		cmd := m.search.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.CycleStatus):
		m.query.Status = nextStatus(m.query.Status)
		m.savePrefs()
		return m.reload(1)

	case key.Matches(msg, m.keys.ClearFilters):
		if m.query.Name == "" && m.query.Status == "" {
			return m, nil
		}
		m.query.Name = ""
		m.query.Status = ""
		m.search.SetValue("")
		m.savePrefs()
		return m.reload(1)

	case key.Matches(msg, m.keys.Reload):
		return m.reload(m.query.Page)

	case key.Matches(msg, m.keys.ToggleSort):
		m.sortByName = !m.sortByName
		m.selectedRow = 0
		return m, nil

	case key.Matches(msg, m.keys.PrevPage):
		if m.query.Page > 1 && !m.snapshot.Loading {
			return m.reload(m.query.Page - 1)
		}
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		if m.query.Page < m.snapshot.Info.Pages && !m.snapshot.Loading {
			return m.reload(m.query.Page + 1)
		}
		return m, nil

	case key.Matches(msg, m.keys.Open):
		if c, ok := m.selectedCharacter(); ok {
			m.currentView = ViewDetails
			cmd := m.openDetails(c.ID)
			return m, cmd
		}
		return m, nil
	}

	if rows == 0 {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Down):
		if m.selectedRow < rows-1 {
			m.selectedRow++
		}
	case key.Matches(msg, m.keys.Up):
		if m.selectedRow > 0 {
			m.selectedRow--
		}
	case key.Matches(msg, m.keys.Top):
		m.selectedRow = 0
	case key.Matches(msg, m.keys.Bottom):
		m.selectedRow = rows - 1
	}
	return m, nil
}

// reload starts loading page of the current query.
func (m Model) reload(page int) (tea.Model, tea.Cmd) {
	m.query.Page = max(page, 1)
	m.selectedRow = 0
	m.snapshot.Loading = true
	return m, tea.Batch(m.loadCmd(m.query), m.spinner.Tick)
}

// handleTick processes the refresh tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{tickCmd(m.tick)}
	if m.loader != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.loader.Store()))
	}
	if m.currentView == ViewLogs {
		cmds = append(cmds, m.fetchLogsCmd())
	}
	return m, tea.Batch(cmds...)
}

// applySnapshot adopts a store snapshot unless it belongs to a query the
// user has already moved away from.
func (m *Model) applySnapshot(snap state.Snapshot) {
	if snap.Query != m.query {
		return
	}
	m.snapshot = snap
	if rows := len(m.visibleCharacters()); m.selectedRow >= rows {
		m.selectedRow = max(rows-1, 0)
	}
	if snap.Info.Pages > 0 {
		m.pager.SetTotalPages(snap.Info.Pages)
		m.pager.Page = m.query.Page - 1
	}
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, Status: string(m.query.Status)}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.log.Warn("save prefs failed", "error", err)
	}
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	return b.String()
}

// renderContent renders the active view below the header.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewDetails:
		return m.renderDetails()
	case ViewLogs:
		return m.renderLogs()
	default:
		return m.renderList()
	}
}

// contentHeight is the space left under the two header lines.
func (m Model) contentHeight() int {
	return max(m.height-2, 3)
}

// Run starts the Bubble Tea program and blocks until it exits or the
// context is cancelled.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	p := tea.NewProgram(New(opts), tea.WithContext(ctx))
	_, err := p.Run()
	if ctx.Err() != nil {
		return nil
	}
	return err
}
