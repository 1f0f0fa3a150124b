package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/sejarah/internal/content"
)

type categoriesAdmin struct {
	store *content.Store

	categories []content.Category
	cursor     int

	formActive bool
	form       *huh.Form
	editingID  string

	fields *content.CategoryFields
	count  *string // EventCount as typed
}

func newCategoriesAdmin(s *content.Store) categoriesAdmin {
	count := ""
	return categoriesAdmin{store: s, fields: &content.CategoryFields{}, count: &count}
}

func (c categoriesAdmin) update(msg tea.Msg) (categoriesAdmin, tea.Cmd) {
	if snap, ok := msg.(snapshotMsg); ok {
		c.categories = snap.snap.Categories
		c.cursor = clampCursor(c.cursor, len(c.categories))
		return c, nil
	}
	if c.formActive && c.form != nil {
		return c.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if c.cursor > 0 {
				c.cursor--
			}
		case key.Matches(msg, keys.Down):
			if c.cursor < len(c.categories)-1 {
				c.cursor++
			}
		case key.Matches(msg, keys.New):
			return c.showForm(nil)
		case key.Matches(msg, keys.Edit), key.Matches(msg, keys.Enter):
			if len(c.categories) > 0 {
				cat := c.categories[c.cursor]
				return c.showForm(&cat)
			}
		case key.Matches(msg, keys.Delete):
			if len(c.categories) > 0 {
				cat := c.categories[c.cursor]
				if err := c.store.DeleteCategory(cat.ID); err != nil {
					return c, tea.Batch(statusCmd(storeErrText("Hapus kategori", err), true), refreshCmd(c.store))
				}
				return c, tea.Batch(statusCmd("Kategori dihapus: "+cat.Name, false), refreshCmd(c.store))
			}
		}
	}
	return c, nil
}

func (c categoriesAdmin) showForm(cat *content.Category) (categoriesAdmin, tea.Cmd) {
	*c.fields = content.CategoryFields{Color: content.CategoryColors[0]}
	*c.count = "0"
	c.editingID = ""
	if cat != nil {
		*c.fields = cat.Fields()
		*c.count = strconv.Itoa(cat.EventCount)
		c.editingID = cat.ID
	}

	colorOptions := make([]huh.Option[string], len(content.CategoryColors))
	for i, token := range content.CategoryColors {
		dot := lipgloss.NewStyle().Foreground(gradientColor(token)).Render("●")
		colorOptions[i] = huh.NewOption(fmt.Sprintf("%s %s", dot, token), token)
	}

	f := c.fields
	c.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Nama").Value(&f.Name).Validate(fieldRule("Nama", "required")),
			huh.NewText().Title("Deskripsi").Value(&f.Description).Validate(fieldRule("Deskripsi", "required")),
			huh.NewInput().Title("URL Gambar").Placeholder("https://...").Value(&f.Image).Validate(fieldRule("Gambar", "required,url")),
			huh.NewInput().Title("Jumlah peristiwa").Value(c.count).Validate(fieldRule("Jumlah", "required,numeric")),
			huh.NewSelect[string]().Title("Warna").Options(colorOptions...).Value(&f.Color),
		).Title("Kategori"),
	).WithShowHelp(true).WithShowErrors(true)

	c.formActive = true
	return c, c.form.Init()
}

func (c categoriesAdmin) updateForm(msg tea.Msg) (categoriesAdmin, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			c.formActive = false
			c.form = nil
			return c, nil
		}
	}

	form, cmd := c.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		c.form = f
	}

	if c.form.State == huh.StateCompleted {
		c.formActive = false
		return c, c.submit()
	}

	return c, cmd
}

func (c categoriesAdmin) submit() tea.Cmd {
	fields := *c.fields
	n, err := strconv.Atoi(strings.TrimSpace(*c.count))
	if err != nil {
		return statusCmd("Jumlah peristiwa harus berupa angka", true)
	}
	fields.EventCount = n
	if err := validate.Struct(fields); err != nil {
		return statusCmd(validationText(err), true)
	}

	if c.editingID == "" {
		cat, err := c.store.AddCategory(fields)
		if err != nil {
			return tea.Batch(statusCmd(storeErrText("Tambah kategori", err), true), refreshCmd(c.store))
		}
		return tea.Batch(statusCmd("Kategori ditambahkan: "+cat.Name, false), refreshCmd(c.store))
	}

	if err := c.store.UpdateCategory(c.editingID, content.FullCategoryUpdate(fields)); err != nil {
		return tea.Batch(statusCmd(storeErrText("Perbarui kategori", err), true), refreshCmd(c.store))
	}
	return tea.Batch(statusCmd("Kategori diperbarui: "+fields.Name, false), refreshCmd(c.store))
}

func (c categoriesAdmin) view(w int) string {
	if c.formActive && c.form != nil {
		title := titleStyle.Render("Tambah Kategori")
		if c.editingID != "" {
			title = titleStyle.Render("Edit Kategori")
		}
		return lipgloss.JoinVertical(lipgloss.Left, title, "", c.form.View())
	}

	title := titleStyle.Render(fmt.Sprintf("Kelola Kategori (%d)", len(c.categories)))
	if len(c.categories) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			mutedStyle.Render("Belum ada kategori. Tekan n untuk menambah."),
		)
	}

	var rows []string
	rows = append(rows, title, "")
	rows = append(rows, mutedStyle.Render(fmt.Sprintf("  %-3s %-24s %8s  %s", "", "Nama", "Jumlah", "Deskripsi")))

	for i, cat := range c.categories {
		dot := lipgloss.NewStyle().Foreground(gradientColor(cat.Color)).Render("●")
		cursor := "  "
		style := normalItemStyle
		if i == c.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		row := style.Render(fmt.Sprintf("%s%s %-24s %8d  %s",
			cursor, dot, truncate(cat.Name, 24), cat.EventCount, truncate(cat.Description, max(w-44, 10))))
		rows = append(rows, row)
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  n: baru  e: edit  d: hapus"))

	return strings.Join(rows, "\n")
}
