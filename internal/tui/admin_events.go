package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/sejarah/internal/content"
)

type eventsAdmin struct {
	store *content.Store

	events []content.Event
	cursor int

	formActive bool
	form       *huh.Form
	editingID  string // empty while adding

	// Form field pointers (survive value copies)
	fields *content.EventFields
}

func newEventsAdmin(s *content.Store) eventsAdmin {
	return eventsAdmin{store: s, fields: &content.EventFields{}}
}

func (e eventsAdmin) update(msg tea.Msg) (eventsAdmin, tea.Cmd) {
	// Snapshots land even while the editor is open.
	if snap, ok := msg.(snapshotMsg); ok {
		e.events = snap.snap.Events
		e.cursor = clampCursor(e.cursor, len(e.events))
		return e, nil
	}
	if e.formActive && e.form != nil {
		return e.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if e.cursor > 0 {
				e.cursor--
			}
		case key.Matches(msg, keys.Down):
			if e.cursor < len(e.events)-1 {
				e.cursor++
			}
		case key.Matches(msg, keys.New):
			return e.showForm(nil)
		case key.Matches(msg, keys.Edit), key.Matches(msg, keys.Enter):
			if len(e.events) > 0 {
				ev := e.events[e.cursor]
				return e.showForm(&ev)
			}
		case key.Matches(msg, keys.Delete):
			if len(e.events) > 0 {
				ev := e.events[e.cursor]
				if err := e.store.DeleteEvent(ev.ID); err != nil {
					return e, tea.Batch(statusCmd(storeErrText("Hapus peristiwa", err), true), refreshCmd(e.store))
				}
				return e, tea.Batch(statusCmd("Peristiwa dihapus: "+ev.Title, false), refreshCmd(e.store))
			}
		}
	}
	return e, nil
}

// showForm opens the add form, or the edit form prefilled from ev.
func (e eventsAdmin) showForm(ev *content.Event) (eventsAdmin, tea.Cmd) {
	*e.fields = content.EventFields{}
	e.editingID = ""
	if ev != nil {
		*e.fields = ev.Fields()
		e.editingID = ev.ID
	}

	f := e.fields
	e.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Tahun Masehi").Placeholder("622").Value(&f.Year).Validate(fieldRule("Tahun", "required")),
			huh.NewInput().Title("Tahun Hijriah").Placeholder("1").Value(&f.HijriYear).Validate(fieldRule("Tahun Hijriah", "required")),
			huh.NewInput().Title("Judul").Value(&f.Title).Validate(fieldRule("Judul", "required")),
			huh.NewInput().Title("Subjudul").Value(&f.Subtitle).Validate(fieldRule("Subjudul", "required")),
		).Title("Peristiwa"),
		huh.NewGroup(
			huh.NewInput().Title("Kategori").Value(&f.Category).Validate(fieldRule("Kategori", "required")),
			huh.NewInput().Title("Lokasi").Value(&f.Location).Validate(fieldRule("Lokasi", "required")),
			huh.NewInput().Title("URL Gambar").Placeholder("https://...").Value(&f.BackgroundImage).Validate(fieldRule("Gambar", "required,url")),
			huh.NewText().Title("Deskripsi").Value(&f.Description).Validate(fieldRule("Deskripsi", "required")),
		).Title("Detail"),
	).WithShowHelp(true).WithShowErrors(true)

	e.formActive = true
	return e, e.form.Init()
}

func (e eventsAdmin) updateForm(msg tea.Msg) (eventsAdmin, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			e.formActive = false
			e.form = nil
			return e, nil
		}
	}

	form, cmd := e.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		e.form = f
	}

	if e.form.State == huh.StateCompleted {
		e.formActive = false
		return e, e.submit()
	}

	return e, cmd
}

func (e eventsAdmin) submit() tea.Cmd {
	fields := *e.fields
	if err := validate.Struct(fields); err != nil {
		return statusCmd(validationText(err), true)
	}

	if e.editingID == "" {
		ev, err := e.store.AddEvent(fields)
		if err != nil {
			return tea.Batch(statusCmd(storeErrText("Tambah peristiwa", err), true), refreshCmd(e.store))
		}
		return tea.Batch(statusCmd("Peristiwa ditambahkan: "+ev.Title, false), refreshCmd(e.store))
	}

	if err := e.store.UpdateEvent(e.editingID, content.FullEventUpdate(fields)); err != nil {
		return tea.Batch(statusCmd(storeErrText("Perbarui peristiwa", err), true), refreshCmd(e.store))
	}
	return tea.Batch(statusCmd("Peristiwa diperbarui: "+fields.Title, false), refreshCmd(e.store))
}

func (e eventsAdmin) view(w int) string {
	if e.formActive && e.form != nil {
		title := titleStyle.Render("Tambah Peristiwa")
		if e.editingID != "" {
			title = titleStyle.Render("Edit Peristiwa")
		}
		return lipgloss.JoinVertical(lipgloss.Left, title, "", e.form.View())
	}

	title := titleStyle.Render(fmt.Sprintf("Kelola Peristiwa (%d)", len(e.events)))
	if len(e.events) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			mutedStyle.Render("Belum ada peristiwa. Tekan n untuk menambah."),
		)
	}

	var rows []string
	rows = append(rows, title, "")
	rows = append(rows, mutedStyle.Render(fmt.Sprintf("  %-16s %-28s %-16s %s", "Tahun", "Judul", "Kategori", "Lokasi")))

	titleWidth := 28
	for i, ev := range e.events {
		cursor := "  "
		style := normalItemStyle
		if i == e.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		row := style.Render(fmt.Sprintf("%s%-16s %-*s %-16s %s",
			cursor, truncate(ev.Era(), 16), titleWidth, truncate(ev.Title, titleWidth),
			truncate(ev.Category, 16), truncate(ev.Location, max(w-70, 8))))
		rows = append(rows, row)
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  n: baru  e: edit  d: hapus"))

	return strings.Join(rows, "\n")
}
