package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/sejarah/internal/content"
	"github.com/sadopc/sejarah/internal/search"
)

type searchModel struct {
	theme    *Theme
	searcher *search.Searcher
	seq      *search.Sequencer
	width    int
	height   int

	input   textinput.Model
	results []search.Result
	query   string // query the results belong to
	loading bool
	cursor  int
	enabled bool
	cancel  context.CancelFunc
}

func newSearchModel(t *Theme, s *search.Searcher) searchModel {
	ti := textinput.New()
	ti.Placeholder = "Cari peristiwa, tokoh, atau tempat..."
	ti.Prompt = "🔍 "
	ti.CharLimit = 80
	return searchModel{
		theme:    t,
		searcher: s,
		seq:      &search.Sequencer{},
		input:    ti,
		enabled:  true,
	}
}

func (s *searchModel) setSize(w, h int) {
	s.width = w
	s.height = h
	s.input.Width = w - 12
}

// capturing reports whether keystrokes belong to the text input.
func (s searchModel) capturing() bool {
	return s.enabled && s.input.Focused()
}

func (s searchModel) focus() (searchModel, tea.Cmd) {
	if !s.enabled {
		return s, nil
	}
	cmd := s.input.Focus()
	return s, cmd
}

// schedule starts a search for q tagged with a fresh ticket. Any earlier
// in-flight search is cancelled; its result would be dropped anyway.
func (s searchModel) schedule(q string) (searchModel, tea.Cmd) {
	if s.cancel != nil {
		s.cancel()
	}
	ticket := s.seq.Next()
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.loading = true
	searcher := s.searcher
	return s, func() tea.Msg {
		res, err := searcher.Search(ctx, q)
		return searchResultMsg{ticket: ticket, query: q, results: res, err: err}
	}
}

func (s searchModel) update(msg tea.Msg) (searchModel, tea.Cmd) {
	switch msg := msg.(type) {
	case generalSettingsMsg:
		s.enabled = msg.general.EnableSearch
		if !s.enabled {
			s.input.Blur()
		}
		return s, nil

	case searchResultMsg:
		if !s.seq.Accept(msg.ticket) {
			return s, nil
		}
		s.loading = false
		if msg.err != nil {
			return s, func() tea.Msg {
				return statusMsg{text: fmt.Sprintf("Search error: %v", msg.err), isError: true}
			}
		}
		s.results = msg.results
		s.query = msg.query
		s.cursor = clampCursor(s.cursor, len(s.results))
		return s, nil

	case tea.KeyMsg:
		if !s.enabled {
			return s, nil
		}
		if s.input.Focused() {
			switch {
			case key.Matches(msg, keys.Back), key.Matches(msg, keys.Enter), msg.Type == tea.KeyDown:
				s.input.Blur()
				return s, nil
			}
			before := s.input.Value()
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			if s.input.Value() != before {
				var searchCmd tea.Cmd
				s, searchCmd = s.schedule(s.input.Value())
				return s, tea.Batch(cmd, searchCmd)
			}
			return s, cmd
		}

		switch {
		case key.Matches(msg, keys.Focus):
			return s.focus()
		case key.Matches(msg, keys.Up):
			if s.cursor > 0 {
				s.cursor--
			} else {
				return s.focus()
			}
		case key.Matches(msg, keys.Down):
			if s.cursor < len(s.results)-1 {
				s.cursor++
			}
		case key.Matches(msg, keys.Enter):
			if len(s.results) > 0 {
				ev := resultEvent(s.results[s.cursor])
				return s, func() tea.Msg { return openDetailMsg{event: ev} }
			}
		}

	default:
		// cursor blink
		if s.input.Focused() {
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return s, cmd
		}
	}
	return s, nil
}

// resultEvent adapts a search hit for the detail view.
func resultEvent(r search.Result) content.Event {
	return content.Event{
		ID:          r.ID,
		Year:        r.Year,
		HijriYear:   r.HijriYear,
		Title:       r.Title,
		Category:    r.Type,
		Location:    r.Location,
		Description: r.Description,
	}
}

var resultTypeLabels = map[string]string{
	"event":  "Peristiwa",
	"person": "Tokoh",
	"place":  "Tempat",
}

func (s searchModel) view() string {
	w := s.width - 4
	title := titleStyle.Render("Pencarian")

	if !s.enabled {
		return s.theme.Panel().Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
			title, "", mutedStyle.Render("Pencarian dinonaktifkan oleh admin."),
		))
	}

	rows := []string{title, "", s.input.View(), ""}

	q := s.input.Value()
	switch {
	case s.loading:
		rows = append(rows, mutedStyle.Render("Mencari..."))
	case len([]rune(q)) < s.searcher.MinQuery:
		rows = append(rows, mutedStyle.Render(fmt.Sprintf("Ketik minimal %d huruf untuk mencari.", s.searcher.MinQuery)))
	case len(s.results) == 0:
		rows = append(rows, mutedStyle.Render(fmt.Sprintf("Tidak ada hasil untuk %q.", s.query)))
	default:
		rows = append(rows, mutedStyle.Render(fmt.Sprintf("%d hasil untuk %q", len(s.results), s.query)), "")
		for i, r := range s.results {
			cursor := "  "
			style := normalItemStyle
			if i == s.cursor && !s.input.Focused() {
				cursor = "> "
				style = selectedItemStyle
			}
			label := resultTypeLabels[r.Type]
			line := style.Render(cursor+r.Title) + "  " +
				highlightStyle.Render(label) + "  " +
				eraStyle.Render(r.Year+" M / "+r.HijriYear+" H")
			rows = append(rows, line)
			rows = append(rows, mutedStyle.Render("    "+truncate(r.Description, w-10)))
		}
	}

	rows = append(rows, "")
	if s.input.Focused() {
		rows = append(rows, mutedStyle.Render("  esc/enter: selesai mengetik"))
	} else {
		rows = append(rows, mutedStyle.Render("  /: ketik  ↑/↓: pilih  enter: detail"))
	}

	return s.theme.Panel().Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
