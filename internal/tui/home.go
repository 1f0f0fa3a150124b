package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/sejarah/internal/content"
	"github.com/sadopc/sejarah/internal/prefs"
)

type homeModel struct {
	theme  *Theme
	width  int
	height int

	snap    content.Snapshot
	general prefs.General
	cursor  int
}

func newHomeModel(t *Theme) homeModel {
	return homeModel{theme: t, general: prefs.DefaultGeneral()}
}

func (h *homeModel) setSize(w, ht int) {
	h.width = w
	h.height = ht
}

func (h homeModel) update(msg tea.Msg) (homeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotMsg:
		h.snap = msg.snap
		h.cursor = clampCursor(h.cursor, len(h.featured()))
	case generalSettingsMsg:
		h.general = msg.general
	case tea.KeyMsg:
		featured := h.featured()
		switch {
		case key.Matches(msg, keys.Up):
			if h.cursor > 0 {
				h.cursor--
			}
		case key.Matches(msg, keys.Down):
			if h.cursor < len(featured)-1 {
				h.cursor++
			}
		case key.Matches(msg, keys.Enter):
			if len(featured) > 0 {
				ev := featured[h.cursor]
				return h, func() tea.Msg { return openDetailMsg{event: ev} }
			}
		}
	}
	return h, nil
}

// featured is the first three timeline events.
func (h homeModel) featured() []content.Event {
	events := displayEvents(h.snap)
	if len(events) > 3 {
		events = events[:3]
	}
	return events
}

func (h homeModel) view() string {
	w := h.width - 4

	var rows []string
	if h.general.MaintenanceMode {
		rows = append(rows, warningStyle.Render("⚠ Situs sedang dalam mode pemeliharaan"), "")
	}

	rows = append(rows,
		heroStyle.Render(h.general.SiteTitle),
		subtitleStyle.Render(h.general.SiteDescription),
		"",
		titleStyle.Render(h.general.WelcomeMessage),
		"",
	)

	events := displayEvents(h.snap)
	categories := displayCategories(h.snap)
	mode := "terang"
	if h.theme.Dark() {
		mode = "gelap"
	}
	stats := fmt.Sprintf("%s peristiwa   %s kategori   tema %s",
		highlightStyle.Render(fmt.Sprint(len(events))),
		highlightStyle.Render(fmt.Sprint(len(categories))),
		highlightStyle.Render(mode),
	)
	rows = append(rows, stats, "")

	rows = append(rows, titleStyle.Render("Peristiwa Pilihan"))
	for i, ev := range h.featured() {
		cursor := "  "
		style := normalItemStyle
		if i == h.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		line := style.Render(cursor+ev.Title) + "  " + eraStyle.Render(ev.Era()) + mutedStyle.Render("  "+ev.Location)
		rows = append(rows, line)
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  ↑/↓: pilih  enter: detail  2: timeline"))
	if h.general.FooterText != "" {
		rows = append(rows, "", mutedStyle.Render(strings.TrimSpace(h.general.FooterText)))
	}

	return h.theme.Panel().Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
