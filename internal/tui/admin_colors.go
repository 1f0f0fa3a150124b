package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/sejarah/internal/color"
	"github.com/sadopc/sejarah/internal/content"
)

type colorsAdmin struct {
	store *content.Store
	theme *Theme

	colors content.Colors

	formActive bool
	form       *huh.Form
	light      *string
	dark       *string
}

func newColorsAdmin(s *content.Store, t *Theme) colorsAdmin {
	light, dark := "", ""
	return colorsAdmin{
		store:  s,
		theme:  t,
		colors: content.Colors{Light: content.DefaultLightBg, Dark: content.DefaultDarkBg},
		light:  &light,
		dark:   &dark,
	}
}

func validateHex(v string) error {
	if err := color.Validate(v); err != nil {
		return errors.New("gunakan format #rrggbb")
	}
	return nil
}

func (c colorsAdmin) update(msg tea.Msg) (colorsAdmin, tea.Cmd) {
	if snap, ok := msg.(snapshotMsg); ok {
		c.colors = snap.snap.Colors
		return c, nil
	}
	if c.formActive && c.form != nil {
		return c.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Edit), key.Matches(msg, keys.Enter):
			return c.showForm()
		case key.Matches(msg, keys.Apply):
			if err := c.store.ApplyColorChanges(); err != nil {
				return c, statusCmd(fmt.Sprintf("Gagal menerapkan warna: %v", err), true)
			}
			return c, statusCmd("Warna latar diterapkan", false)
		case key.Matches(msg, keys.Reset):
			if err := c.store.ResetColors(); err != nil {
				return c, tea.Batch(statusCmd(storeErrText("Reset warna", err), true), refreshCmd(c.store))
			}
			return c, tea.Batch(statusCmd("Warna dikembalikan ke default", false), refreshCmd(c.store))
		}
	}
	return c, nil
}

func (c colorsAdmin) showForm() (colorsAdmin, tea.Cmd) {
	*c.light = c.colors.Light
	*c.dark = c.colors.Dark

	c.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Latar mode terang").Value(c.light).Validate(validateHex),
			huh.NewInput().Title("Latar mode gelap").Value(c.dark).Validate(validateHex),
		).Title("Warna Latar"),
	).WithShowHelp(true).WithShowErrors(true)

	c.formActive = true
	return c, c.form.Init()
}

func (c colorsAdmin) updateForm(msg tea.Msg) (colorsAdmin, tea.Cmd) {
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

// submit stores both colours. They take effect on screen only after apply.
func (c colorsAdmin) submit() tea.Cmd {
	var errs []error
	if *c.light != c.colors.Light {
		errs = append(errs, c.store.SetLightColor(*c.light))
	}
	if *c.dark != c.colors.Dark {
		errs = append(errs, c.store.SetDarkColor(*c.dark))
	}
	if err := errors.Join(errs...); err != nil {
		return tea.Batch(statusCmd(storeErrText("Simpan warna", err), true), refreshCmd(c.store))
	}
	return tea.Batch(statusCmd("Warna disimpan. Tekan a untuk menerapkan", false), refreshCmd(c.store))
}

func (c colorsAdmin) view(w int) string {
	if c.formActive && c.form != nil {
		return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render("Ubah Warna"), "", c.form.View())
	}

	label := lipgloss.NewStyle().Width(20)
	row := func(name, hex, variable string) string {
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("        ")
		hsl, _ := color.HexToHSL(hex)
		applied, _ := c.theme.Property(variable)
		line := fmt.Sprintf("  %s %s  %s  %s", label.Render(name), swatch, highlightStyle.Render(hex), mutedStyle.Render(hsl))
		if applied != hsl {
			line += warningStyle.Render("  (belum diterapkan)")
		}
		return line
	}

	rows := []string{
		titleStyle.Render("Pengaturan Warna"),
		"",
		row("Latar mode terang", c.colors.Light, content.VarBackground),
		row("Latar mode gelap", c.colors.Dark, content.VarDarkBackground),
		"",
		mutedStyle.Render("  e: ubah  a: terapkan  r: reset ke default"),
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
