// Package tui provides a Bubble Tea terminal user interface for browsing
// the lyrics catalog.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	bprogress "github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/lyricsheet/internal/catalog"
	"github.com/handiism/lyricsheet/internal/config"
	"github.com/handiism/lyricsheet/internal/export"
	"github.com/handiism/lyricsheet/internal/http"
	"github.com/handiism/lyricsheet/internal/model"
	"github.com/handiism/lyricsheet/internal/progress"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8B500"))

	chipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1D3557")).
			Background(lipgloss.Color("#A8DADC")).
			Padding(0, 1)
)

// State represents the current UI state.
type State int

const (
	StateLoading State = iota
	StateList
	StateDetail
	StateError
)

const (
	maxLogs         = 6
	defaultListRows = 15
)

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state    State
	search   textinput.Model
	spinner  spinner.Model
	progress bprogress.Model
	settings *config.Settings
	logs     []progress.Event
	err      error

	ctx    context.Context
	cancel context.CancelFunc

	store    *catalog.Store
	exporter *export.Manager
	events   chan progress.Event

	catalog    *model.Catalog
	songs      []model.Song
	categories []string
	category   int // index into categories, -1 for all
	cursor     int
	offset     int
	selected   *model.Song
	scroll     int

	refreshing bool
	exporting  bool
	verbose    bool

	width  int
	height int
}

// NewModel creates a new TUI model that loads the catalog described by
// settings.
func NewModel(settings *config.Settings) Model {
	events := make(chan progress.Event, 64)
	report := func(e progress.Event) {
		select {
		case events <- e:
		default:
		}
	}

	client := http.NewClient(settings.ToClientOptions()...)
	mapper := catalog.NewMapper(settings.ToMapperConfig())
	assembler := catalog.NewAssembler(client, settings.ToSource(), mapper, report)
	exporter := export.NewManager(settings.ToExportConfig(), client, report)

	return newModel(settings, catalog.NewStore(assembler), exporter, events)
}

func newModel(settings *config.Settings, store *catalog.Store, exporter *export.Manager, events chan progress.Event) Model {
	ti := textinput.New()
	ti.Placeholder = "search title or artist"
	ti.CharLimit = 100
	ti.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := bprogress.New(bprogress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:      StateLoading,
		search:     ti,
		spinner:    sp,
		progress:   prog,
		settings:   settings,
		ctx:        ctx,
		cancel:     cancel,
		store:      store,
		exporter:   exporter,
		events:     events,
		catalog:    store.Snapshot(),
		category:   -1,
		refreshing: true,
	}
}

// Init starts the first refresh.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.refresh(), m.waitForEvent())
}

// Message types
type (
	// ProgressMsg carries a progress event from the pipeline or exporter.
	ProgressMsg struct {
		Event progress.Event
	}

	// RefreshDoneMsg is sent when a catalog refresh returns.
	RefreshDoneMsg struct {
		Catalog *model.Catalog
		Err     error
	}

	// ExportDoneMsg is sent when an artwork export finishes.
	ExportDoneMsg struct {
		Err error
	}

	// TickMsg is for periodic export progress updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = min(max(msg.Width-20, 20), 80)
		return m, nil

	case tea.KeyMsg:
		if m.search.Focused() {
			return m.updateSearch(msg)
		}
		return m.updateKeys(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ProgressMsg:
		if msg.Event.Level != progress.LevelVerbose || m.verbose {
			m.logs = append(m.logs, msg.Event)
			if len(m.logs) > maxLogs {
				m.logs = m.logs[len(m.logs)-maxLogs:]
			}
		}
		cmds = append(cmds, m.waitForEvent())

	case RefreshDoneMsg:
		m.refreshing = false
		if msg.Err != nil {
			m.err = msg.Err
			if !m.store.Loaded() {
				m.state = StateError
				return m, nil
			}
		} else {
			m.err = nil
		}
		m.catalog = msg.Catalog
		m.categories = m.catalog.Categories()
		if m.category >= len(m.categories) {
			m.category = -1
		}
		m.applyFilter()
		if m.state == StateLoading || m.state == StateError {
			m.state = StateList
		}

	case ExportDoneMsg:
		m.exporting = false
		if msg.Err != nil {
			m.logs = append(m.logs, progress.Event{Message: fmt.Sprintf("Export failed: %v", msg.Err), Level: progress.LevelError})
		}

	case TickMsg:
		if m.exporting {
			exported, failed, total := m.exporter.GetProgress()
			var percent float64
			if total > 0 {
				percent = float64(exported+failed) / float64(total)
			}
			cmds = append(cmds, m.progress.SetPercent(percent), m.tickProgress())
		}

	case bprogress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(bprogress.Model)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.cancel()
		return m, tea.Quit
	case "enter", "esc":
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.cancel()
		return m, tea.Quit

	case "q":
		if m.state == StateDetail {
			m.state = StateList
			return m, nil
		}
		m.cancel()
		return m, tea.Quit

	case "esc":
		switch {
		case m.state == StateDetail:
			m.state = StateList
		case m.search.Value() != "":
			m.search.SetValue("")
			m.applyFilter()
		default:
			m.cancel()
			return m, tea.Quit
		}

	case "up", "k":
		if m.state == StateDetail {
			m.scroll = max(m.scroll-1, 0)
		} else if m.cursor > 0 {
			m.cursor--
			m.clampOffset()
		}

	case "down", "j":
		if m.state == StateDetail {
			if m.selected != nil && m.scroll < len(m.selected.Lyrics)-1 {
				m.scroll++
			}
		} else if m.cursor < len(m.songs)-1 {
			m.cursor++
			m.clampOffset()
		}

	case "enter":
		if m.state == StateList && len(m.songs) > 0 {
			song := m.songs[m.cursor]
			m.selected = &song
			m.scroll = 0
			m.state = StateDetail
		}

	case "/":
		if m.state == StateList {
			m.search.Focus()
			return m, textinput.Blink
		}

	case "c":
		if m.state == StateList && len(m.categories) > 0 {
			m.category++
			if m.category >= len(m.categories) {
				m.category = -1
			}
			m.applyFilter()
		}

	case "r":
		if !m.refreshing && m.state != StateDetail {
			m.refreshing = true
			return m, tea.Batch(m.refresh(), m.spinner.Tick)
		}

	case "e":
		if m.state == StateList && !m.exporting && !m.catalog.IsEmpty() {
			m.exporting = true
			return m, tea.Batch(m.export(), m.tickProgress())
		}

	case "v":
		m.verbose = !m.verbose
	}

	return m, nil
}

// applyFilter recomputes the visible songs from the search query and the
// selected category.
func (m *Model) applyFilter() {
	songs := m.catalog.Search(m.search.Value())
	if m.category >= 0 {
		category := m.categories[m.category]
		var filtered []model.Song
		for i := range songs {
			if songs[i].HasTag(category) {
				filtered = append(filtered, songs[i])
			}
		}
		songs = filtered
	}
	m.songs = songs

	if m.cursor >= len(m.songs) {
		m.cursor = max(len(m.songs)-1, 0)
	}
	m.clampOffset()
}

func (m *Model) clampOffset() {
	rows := m.listRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
}

func (m Model) listRows() int {
	if m.height > 0 {
		return max(m.height-16, 5)
	}
	return defaultListRows
}

func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// waitForEvent delivers the next progress event as a message.
func (m Model) waitForEvent() tea.Cmd {
	events := m.events
	return func() tea.Msg {
		if events == nil {
			return nil
		}
		return ProgressMsg{Event: <-events}
	}
}

func (m Model) refresh() tea.Cmd {
	ctx, store := m.ctx, m.store
	return func() tea.Msg {
		cat, err := store.Refresh(ctx)
		return RefreshDoneMsg{Catalog: cat, Err: err}
	}
}

func (m Model) export() tea.Cmd {
	ctx, exporter, cat := m.ctx, m.exporter, m.catalog
	return func() tea.Msg {
		return ExportDoneMsg{Err: exporter.Export(ctx, cat)}
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("♪ Lyricsheet"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Lyrics catalog from a published sheet"))
	b.WriteString("\n\n")

	switch m.state {
	case StateLoading:
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(subtitleStyle.Render("Fetching catalog..."))
		b.WriteString("\n")
	case StateList:
		b.WriteString(m.viewList())
	case StateDetail:
		b.WriteString(m.viewDetail())
	case StateError:
		b.WriteString(m.viewError())
	}

	b.WriteString("\n")
	b.WriteString(m.renderLogs())

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewList() string {
	var b strings.Builder

	status := fmt.Sprintf("%d of %d songs • %d artists", len(m.songs), len(m.catalog.Songs), len(m.catalog.Artists))
	if m.refreshing {
		status = m.spinner.View() + " refreshing • " + status
	}
	b.WriteString(infoStyle.Render(status))
	b.WriteString("\n")

	if m.search.Focused() || m.search.Value() != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}
	if m.category >= 0 {
		b.WriteString(chipStyle.Render(m.categories[m.category]))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(m.songs) == 0 {
		b.WriteString(dimStyle.Render("  No songs match."))
		b.WriteString("\n")
	}

	end := min(m.offset+m.listRows(), len(m.songs))
	for i := m.offset; i < end; i++ {
		song := m.songs[i]
		line := fmt.Sprintf("%s  %s - %s", song.ReleaseYear, song.DisplayArtist(), song.Title)
		if song.TranslatedTitle != "" {
			line += dimStyle.Render(" (" + song.TranslatedTitle + ")")
		}
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("› " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if m.exporting {
		b.WriteString("\n")
		b.WriteString(m.progress.View())
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewDetail() string {
	song := m.selected
	if song == nil {
		return ""
	}

	var header strings.Builder
	header.WriteString(selectedStyle.Render(song.Title))
	if song.TranslatedTitle != "" {
		header.WriteString(dimStyle.Render(" · " + song.TranslatedTitle))
	}
	header.WriteString("\n")
	header.WriteString(subtitleStyle.Render(song.DisplayArtist()))
	header.WriteString(fmt.Sprintf("\n%s • %s • %s", song.Album, song.ReleaseYear, strings.Join(song.Tags, ", ")))
	if song.HasVideo() {
		header.WriteString("\n" + dimStyle.Render("youtu.be/"+song.YoutubeID))
	}

	var b strings.Builder
	b.WriteString(boxStyle.Render(header.String()))
	b.WriteString("\n\n")

	if len(song.Lyrics) == 0 {
		b.WriteString(dimStyle.Render("No lyrics."))
		b.WriteString("\n")
	}

	rows := max(m.listRows()/3, 2)
	end := min(m.scroll+rows, len(song.Lyrics))
	for _, line := range song.Lyrics[m.scroll:end] {
		b.WriteString(line.Original)
		b.WriteString("\n")
		if line.HasRomanization() {
			b.WriteString(infoStyle.Render(line.Romanization))
			b.WriteString("\n")
		}
		if line.HasTranslation() {
			b.WriteString(dimStyle.Render(line.Translation))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if song.AIInterpretation != "" && end == len(song.Lyrics) {
		b.WriteString(warningStyle.Render("Interpretation"))
		b.WriteString("\n")
		b.WriteString(song.AIInterpretation)
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("✗ Could not load the catalog:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case progress.LevelError:
			style = errorStyle
			prefix = "✗"
		case progress.LevelWarning:
			style = warningStyle
			prefix = "!"
		case progress.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case progress.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateLoading:
		return "q: quit"
	case StateList:
		if m.search.Focused() {
			return "enter/esc: done searching"
		}
		return "↑/↓: move • enter: lyrics • /: search • c: category • r: refresh • e: export artwork • v: verbose • q: quit"
	case StateDetail:
		return "↑/↓: scroll • esc/q: back"
	case StateError:
		return "r: retry • q: quit"
	}
	return ""
}

// Run starts the TUI application.
func Run(settings *config.Settings) error {
	p := tea.NewProgram(NewModel(settings), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
