package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/sejarah/internal/content"
)

const cardWidth = 30

// timelineCategories are the filter choices; index 0 shows everything.
var timelineCategories = []string{"all", "Biografi", "Wahyu", "Hijrah", "Penaklukan", "Pemerintahan"}

type timelineModel struct {
	theme  *Theme
	width  int
	height int

	all      []content.Event
	events   []content.Event // all, filtered
	cursor   int
	offset   int // index of the leftmost visible card
	query    textinput.Model
	category int
}

func newTimelineModel(t *Theme) timelineModel {
	ti := textinput.New()
	ti.Placeholder = "Cari peristiwa dalam timeline..."
	ti.Prompt = "/ "
	ti.CharLimit = 60
	m := timelineModel{theme: t, all: builtinEvents, query: ti}
	m.applyFilter()
	return m
}

func (m *timelineModel) setSize(w, h int) {
	m.width = w
	m.height = h
	m.query.Width = max(w-40, 20)
	m.scrollToCursor()
}

// capturing reports whether keystrokes belong to the filter input.
func (m timelineModel) capturing() bool {
	return m.query.Focused()
}

func (m timelineModel) categoryLabel() string {
	if m.category == 0 {
		return "Semua Kategori"
	}
	return timelineCategories[m.category]
}

// filterEvents keeps events in category (unless "all") whose title or
// subtitle contains query, ignoring case.
func filterEvents(events []content.Event, query, category string) []content.Event {
	q := strings.ToLower(query)
	out := make([]content.Event, 0, len(events))
	for _, ev := range events {
		if category != "all" && ev.Category != category {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(ev.Title), q) &&
			!strings.Contains(strings.ToLower(ev.Subtitle), q) {
			continue
		}
		out = append(out, ev)
	}
	return out
}

func (m *timelineModel) applyFilter() {
	m.events = filterEvents(m.all, m.query.Value(), timelineCategories[m.category])
	m.cursor = clampCursor(m.cursor, len(m.events))
	m.scrollToCursor()
}

func (m *timelineModel) resetFilter() {
	m.query.SetValue("")
	m.query.Blur()
	m.category = 0
	m.cursor = 0
	m.offset = 0
	m.applyFilter()
}

// visibleCards is how many cards fit side by side.
func (m timelineModel) visibleCards() int {
	n := (m.width - 6) / (cardWidth + 3)
	if n < 1 {
		n = 1
	}
	return n
}

func (m *timelineModel) scrollToCursor() {
	n := m.visibleCards()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+n {
		m.offset = m.cursor - n + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m timelineModel) update(msg tea.Msg) (timelineModel, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotMsg:
		m.all = displayEvents(msg.snap)
		m.applyFilter()
		return m, nil

	case tea.KeyMsg:
		if m.query.Focused() {
			switch {
			case key.Matches(msg, keys.Back), key.Matches(msg, keys.Enter):
				m.query.Blur()
				return m, nil
			}
			before := m.query.Value()
			var cmd tea.Cmd
			m.query, cmd = m.query.Update(msg)
			if m.query.Value() != before {
				m.cursor = 0
				m.offset = 0
				m.applyFilter()
			}
			return m, cmd
		}

		switch {
		case key.Matches(msg, keys.Focus):
			cmd := m.query.Focus()
			return m, cmd
		case key.Matches(msg, keys.Filter):
			m.category = (m.category + 1) % len(timelineCategories)
			m.cursor = 0
			m.offset = 0
			m.applyFilter()
		case key.Matches(msg, keys.Reset):
			m.resetFilter()
		case key.Matches(msg, keys.Left):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Right):
			if m.cursor < len(m.events)-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.Enter):
			if len(m.events) > 0 {
				ev := m.events[m.cursor]
				return m, func() tea.Msg { return openDetailMsg{event: ev} }
			}
		}
		m.scrollToCursor()

	default:
		// cursor blink
		if m.query.Focused() {
			var cmd tea.Cmd
			m.query, cmd = m.query.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m timelineModel) view() string {
	w := m.width - 4
	title := titleStyle.Render("Timeline Sejarah Islam")
	filters := lipgloss.JoinHorizontal(lipgloss.Center,
		m.query.View(), "   ", highlightStyle.Render("Kategori: "+m.categoryLabel()),
	)
	count := mutedStyle.Render(fmt.Sprintf("Menampilkan %d dari %d peristiwa", len(m.events), len(m.all)))

	nav := mutedStyle.Render("  ←/→: geser  enter: detail  /: cari  c: kategori  r: reset filter")
	if m.query.Focused() {
		nav = mutedStyle.Render("  esc/enter: selesai mengetik")
	}

	if len(m.events) == 0 {
		return m.theme.Panel().Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
			title, filters, count, "",
			warningStyle.Render("Tidak ada peristiwa ditemukan"),
			mutedStyle.Render("Coba ubah kata kunci pencarian atau filter kategori"),
			"", nav,
		))
	}

	end := m.offset + m.visibleCards()
	if end > len(m.events) {
		end = len(m.events)
	}

	var cards []string
	for i := m.offset; i < end; i++ {
		cards = append(cards, renderEventCard(m.events[i], i == m.cursor), " ")
	}

	left, right := " ", " "
	if m.offset > 0 {
		left = highlightStyle.Render("‹")
	}
	if end < len(m.events) {
		right = highlightStyle.Render("›")
	}

	strip := lipgloss.JoinHorizontal(lipgloss.Center,
		left, " ", lipgloss.JoinHorizontal(lipgloss.Top, cards...), right,
	)
	position := mutedStyle.Render(fmt.Sprintf("%d / %d", m.cursor+1, len(m.events)))

	return m.theme.Panel().Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left, title, filters, count, position, "", strip, "", nav),
	)
}

func renderEventCard(ev content.Event, selected bool) string {
	style := cardStyle
	if selected {
		style = selectedCardStyle
	}
	inner := cardWidth - 4
	body := lipgloss.JoinVertical(lipgloss.Left,
		eraStyle.Render(ev.Era()),
		titleStyle.Render(truncate(ev.Title, inner)),
		subtitleStyle.Render(truncate(ev.Subtitle, inner)),
		"",
		mutedStyle.Render(truncate(ev.Category+" · "+ev.Location, inner)),
	)
	return style.Render(body)
}
