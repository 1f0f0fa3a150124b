package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/sejarah/internal/content"
	"github.com/sadopc/sejarah/internal/export"
	"github.com/sadopc/sejarah/internal/prefs"
	"github.com/sadopc/sejarah/internal/search"
	"github.com/sadopc/sejarah/internal/session"
	"github.com/sadopc/sejarah/internal/storage"
	"golang.org/x/exp/slog"
)

// Deps are the services the program runs on.
type Deps struct {
	Store    *content.Store
	KV       storage.Adapter
	Gate     *session.Gate
	Searcher *search.Searcher
	Theme    *Theme
	Log      *slog.Logger
}

// App is the root Bubble Tea model.
type App struct {
	store *content.Store
	kv    storage.Adapter
	theme *Theme
	log   *slog.Logger

	width  int
	height int

	activeView    viewState
	showHelp      bool
	exportPicking bool
	exportCursor  int

	snap    content.Snapshot
	general prefs.General

	home       homeModel
	timeline   timelineModel
	categories categoriesModel
	search     searchModel
	settings   settingsModel
	admin      adminModel
	detail     detailModel

	help        help.Model
	status      string
	statusError bool
}

func NewApp(d Deps) App {
	if d.Theme == nil {
		d.Theme = NewTheme()
	}
	if d.Gate == nil {
		d.Gate = session.New()
	}
	if d.Searcher == nil {
		d.Searcher = search.NewSearcher(search.DefaultDelay, search.DefaultMinQuery)
	}
	if d.Log == nil {
		d.Log = slog.Default()
	}

	h := help.New()
	h.ShowAll = false

	return App{
		store:      d.Store,
		kv:         d.KV,
		theme:      d.Theme,
		log:        d.Log,
		activeView: viewHome,
		general:    prefs.DefaultGeneral(),
		home:       newHomeModel(d.Theme),
		timeline:   newTimelineModel(d.Theme),
		categories: newCategoriesModel(d.Theme),
		search:     newSearchModel(d.Theme, d.Searcher),
		settings:   newSettingsModel(d.KV, d.Theme),
		admin:      newAdminModel(d.Store, d.KV, d.Gate, d.Theme),
		help:       h,
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(
		refreshCmd(a.store),
		a.settings.load(),
		loadGeneral(a.kv),
	)
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.home.setSize(a.width, contentHeight)
		a.timeline.setSize(a.width, contentHeight)
		a.categories.setSize(a.width, contentHeight)
		a.search.setSize(a.width, contentHeight)
		a.settings.setSize(a.width, contentHeight)
		a.admin.setSize(a.width, contentHeight)
		a.detail.width = a.width
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		if a.exportPicking {
			return a.updateExportPicker(msg)
		}

		if a.detail.open {
			switch {
			case key.Matches(msg, keys.Back), key.Matches(msg, keys.Enter):
				a.detail.open = false
			case key.Matches(msg, keys.Quit):
				return a, tea.Quit
			}
			return a, nil
		}

		// If a child view is capturing input (e.g. form), delegate first.
		if a.isFormActive() {
			return a.updateActiveView(msg)
		}

		switch {
		case key.Matches(msg, keys.Export):
			a.exportPicking = true
			a.exportCursor = 0
			return a, nil
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Tab1):
			return a.switchTo(viewHome)
		case key.Matches(msg, keys.Tab2):
			return a.switchTo(viewTimeline)
		case key.Matches(msg, keys.Tab3):
			return a.switchTo(viewCategories)
		case key.Matches(msg, keys.Tab4):
			return a.switchTo(viewSearch)
		case key.Matches(msg, keys.Tab5):
			return a.switchTo(viewSettings)
		case key.Matches(msg, keys.Tab6):
			return a.switchTo(viewAdmin)
		case key.Matches(msg, keys.Tab):
			return a.switchTo((a.activeView + 1) % viewState(len(viewNames)))
		}

	case snapshotMsg:
		// Subscriber sends race each other; never step back to an older state.
		if msg.snap.Version < a.snap.Version {
			return a, nil
		}
		a.snap = msg.snap
		var cmds []tea.Cmd
		var cmd tea.Cmd
		a.home, cmd = a.home.update(msg)
		cmds = append(cmds, cmd)
		a.timeline, cmd = a.timeline.update(msg)
		cmds = append(cmds, cmd)
		a.categories, cmd = a.categories.update(msg)
		cmds = append(cmds, cmd)
		a.admin, cmd = a.admin.update(msg)
		cmds = append(cmds, cmd)
		return a, tea.Batch(cmds...)

	case generalSettingsMsg:
		a.general = msg.general
		var cmds []tea.Cmd
		var cmd tea.Cmd
		a.home, cmd = a.home.update(msg)
		cmds = append(cmds, cmd)
		a.search, cmd = a.search.update(msg)
		cmds = append(cmds, cmd)
		a.settings, cmd = a.settings.update(msg)
		cmds = append(cmds, cmd)
		a.admin, cmd = a.admin.update(msg)
		cmds = append(cmds, cmd)
		return a, tea.Batch(cmds...)

	case readerSettingsMsg:
		var cmd tea.Cmd
		a.settings, cmd = a.settings.update(msg)
		return a, cmd

	case searchResultMsg:
		var cmd tea.Cmd
		a.search, cmd = a.search.update(msg)
		return a, cmd

	case openDetailMsg:
		a.detail.event = msg.event
		a.detail.open = true
		return a, nil

	case switchViewMsg:
		return a.switchTo(msg.view)

	case statusMsg:
		a.status = msg.text
		a.statusError = msg.isError
		if msg.isError {
			a.log.Warn("status", "message", msg.text)
		}
		return a, nil

	case exportDoneMsg:
		a.status = "Diekspor ke " + msg.path
		a.statusError = false
		a.exportPicking = false
		a.log.Info("exported events", "path", msg.path)
		return a, nil
	}

	return a.updateActiveView(msg)
}

func (a App) switchTo(v viewState) (tea.Model, tea.Cmd) {
	a.activeView = v
	var cmd tea.Cmd
	switch v {
	case viewAdmin:
		a.admin, cmd = a.admin.enter()
	case viewSearch:
		a.search, cmd = a.search.focus()
	}
	return a, cmd
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case viewHome:
		a.home, cmd = a.home.update(msg)
	case viewTimeline:
		a.timeline, cmd = a.timeline.update(msg)
	case viewCategories:
		a.categories, cmd = a.categories.update(msg)
	case viewSearch:
		a.search, cmd = a.search.update(msg)
	case viewSettings:
		a.settings, cmd = a.settings.update(msg)
	case viewAdmin:
		a.admin, cmd = a.admin.update(msg)
	}
	return a, cmd
}

func (a App) isFormActive() bool {
	switch a.activeView {
	case viewTimeline:
		return a.timeline.capturing()
	case viewSearch:
		return a.search.capturing()
	case viewSettings:
		return a.settings.formActive
	case viewAdmin:
		return a.admin.formActive()
	}
	return false
}

func (a App) View() string {
	if a.width == 0 {
		return "Memuat..."
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	var body string
	switch a.activeView {
	case viewHome:
		body = a.home.view()
	case viewTimeline:
		body = a.timeline.view()
	case viewCategories:
		body = a.categories.view()
	case viewSearch:
		body = a.search.view()
	case viewSettings:
		body = a.settings.view()
	case viewAdmin:
		body = a.admin.view()
	}

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := a.height - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	if a.detail.open {
		body = a.detail.view()
	}
	if a.exportPicking {
		body = a.renderExportPicker()
	}

	body = a.theme.Frame().
		Width(a.width).
		Height(contentHeight).
		Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (a App) renderHeader() string {
	var tabs []string
	for i, name := range viewNames {
		if viewState(i) == a.activeView {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}

	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := heroStyle.Render(a.general.SiteTitle)
	gap := a.width - lipgloss.Width(title) - lipgloss.Width(tabRow) - 4
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, spacer, tabRow),
	)
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		style := successStyle
		if a.statusError {
			style = errorStyle
		}
		status = style.Render(" " + a.status)
	}

	left := footerStyle.Render(helpView)

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(status) - 2
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, status)
}

var exportFormats = []string{"CSV", "JSON"}

func (a App) renderExportPicker() string {
	rows := []string{titleStyle.Render("Format Ekspor"), ""}
	for i, f := range exportFormats {
		cursor := "  "
		style := normalItemStyle
		if i == a.exportCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+f))
	}
	rows = append(rows, "", mutedStyle.Render("  enter: ekspor  esc: batal"))

	return activePanelStyle.Width(a.width - 4).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) updateExportPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if a.exportCursor > 0 {
			a.exportCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.exportCursor < len(exportFormats)-1 {
			a.exportCursor++
		}
	case key.Matches(msg, keys.Enter):
		a.exportPicking = false
		return a, a.doExport(a.exportCursor)
	case key.Matches(msg, keys.Back):
		a.exportPicking = false
	}
	return a, nil
}

// doExport writes the events the timeline shows to the home directory.
func (a App) doExport(format int) tea.Cmd {
	events := displayEvents(a.snap)
	return func() tea.Msg {
		home, err := os.UserHomeDir()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Export error: %v", err), isError: true}
		}
		return exportTo(events, home, format, time.Now())
	}
}

func exportTo(events []content.Event, dir string, format int, now time.Time) tea.Msg {
	dateStr := now.Format("2006-01-02")
	if format == 0 {
		path := filepath.Join(dir, fmt.Sprintf("sejarah-export-%s.csv", dateStr))
		if err := export.ToCSV(events, path); err != nil {
			return statusMsg{text: fmt.Sprintf("CSV error: %v", err), isError: true}
		}
		return exportDoneMsg{path: path}
	}
	path := filepath.Join(dir, fmt.Sprintf("sejarah-export-%s.json", dateStr))
	if err := export.ToJSON(events, path); err != nil {
		return statusMsg{text: fmt.Sprintf("JSON error: %v", err), isError: true}
	}
	return exportDoneMsg{path: path}
}
