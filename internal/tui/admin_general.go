package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-playground/validator/v10"
	"github.com/sadopc/sejarah/internal/prefs"
	"github.com/sadopc/sejarah/internal/storage"
)

type generalAdmin struct {
	kv storage.Adapter

	general prefs.General

	formActive bool
	form       *huh.Form
	draft      *prefs.General
}

func newGeneralAdmin(kv storage.Adapter) generalAdmin {
	return generalAdmin{kv: kv, general: prefs.DefaultGeneral(), draft: &prefs.General{}}
}

// loadGeneral reads the stored settings. A corrupt payload is reported and
// the defaults are used.
func loadGeneral(kv storage.Adapter) tea.Cmd {
	return func() tea.Msg {
		g, err := prefs.LoadGeneral(kv)
		if err != nil {
			return tea.BatchMsg{
				func() tea.Msg { return generalSettingsMsg{general: g} },
				statusCmd(fmt.Sprintf("Pengaturan umum rusak, memakai default: %v", err), true),
			}
		}
		return generalSettingsMsg{general: g}
	}
}

func (g generalAdmin) update(msg tea.Msg) (generalAdmin, tea.Cmd) {
	if gm, ok := msg.(generalSettingsMsg); ok {
		g.general = gm.general
		return g, nil
	}
	if g.formActive && g.form != nil {
		return g.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Edit), key.Matches(msg, keys.Enter):
			return g.showForm()
		case key.Matches(msg, keys.Reset):
			kv := g.kv
			return g, func() tea.Msg {
				def, err := prefs.ResetGeneral(kv)
				if err != nil {
					return statusMsg{text: storeErrText("Reset pengaturan", err), isError: true}
				}
				return tea.BatchMsg{
					func() tea.Msg { return generalSettingsMsg{general: def} },
					statusCmd("Pengaturan dikembalikan ke default", false),
				}
			}
		}
	}
	return g, nil
}

func (g generalAdmin) showForm() (generalAdmin, tea.Cmd) {
	*g.draft = g.general
	d := g.draft

	g.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Judul situs").Value(&d.SiteTitle).Validate(fieldRule("Judul situs", "required")),
			huh.NewText().Title("Deskripsi situs").Value(&d.SiteDescription),
			huh.NewInput().Title("Pesan sambutan").Value(&d.WelcomeMessage),
			huh.NewInput().Title("Teks footer").Value(&d.FooterText),
			huh.NewInput().Title("E-mail admin").Value(&d.AdminEmail).Validate(fieldRule("E-mail admin", "required,email")),
		).Title("Informasi Situs"),
		huh.NewGroup(
			huh.NewConfirm().Title("Aktifkan notifikasi").Value(&d.EnableNotifications),
			huh.NewConfirm().Title("Aktifkan pencarian").Value(&d.EnableSearch),
			huh.NewConfirm().Title("Izinkan mode gelap").Value(&d.EnableDarkMode),
			huh.NewConfirm().Title("Mode pemeliharaan").Value(&d.MaintenanceMode),
		).Title("Fitur"),
	).WithShowHelp(true).WithShowErrors(true)

	g.formActive = true
	return g, g.form.Init()
}

func (g generalAdmin) updateForm(msg tea.Msg) (generalAdmin, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			g.formActive = false
			g.form = nil
			return g, nil
		}
	}

	form, cmd := g.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		g.form = f
	}

	if g.form.State == huh.StateCompleted {
		g.formActive = false
		return g, g.save(*g.draft)
	}

	return g, cmd
}

func (g generalAdmin) save(next prefs.General) tea.Cmd {
	kv := g.kv
	return func() tea.Msg {
		if err := prefs.SaveGeneral(kv, next); err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) {
				return statusMsg{text: validationText(err), isError: true}
			}
			return statusMsg{text: storeErrText("Simpan pengaturan", err), isError: true}
		}
		return tea.BatchMsg{
			func() tea.Msg { return generalSettingsMsg{general: next} },
			statusCmd("Pengaturan umum disimpan", false),
		}
	}
}

func onOff(b bool) string {
	if b {
		return successStyle.Render("aktif")
	}
	return mutedStyle.Render("nonaktif")
}

func (g generalAdmin) view(w int) string {
	if g.formActive && g.form != nil {
		return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render("Ubah Pengaturan Umum"), "", g.form.View())
	}

	label := lipgloss.NewStyle().Width(22)
	value := lipgloss.NewStyle().Width(max(w-30, 20))
	s := g.general
	line := func(name, v string) string {
		return fmt.Sprintf("  %s %s", label.Render(name), value.Render(v))
	}

	rows := []string{
		titleStyle.Render("Pengaturan Umum Website"),
		"",
		line("Judul situs", highlightStyle.Render(s.SiteTitle)),
		line("Deskripsi", s.SiteDescription),
		line("Pesan sambutan", s.WelcomeMessage),
		line("Teks footer", s.FooterText),
		line("E-mail admin", s.AdminEmail),
		"",
		line("Notifikasi", onOff(s.EnableNotifications)),
		line("Pencarian", onOff(s.EnableSearch)),
		line("Mode gelap", onOff(s.EnableDarkMode)),
		line("Pemeliharaan", onOff(s.MaintenanceMode)),
		"",
		mutedStyle.Render("  e: ubah  r: reset ke default"),
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
