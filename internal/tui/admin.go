package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/sejarah/internal/content"
	"github.com/sadopc/sejarah/internal/session"
	"github.com/sadopc/sejarah/internal/storage"
)

type adminSection int

const (
	sectionEvents adminSection = iota
	sectionCategories
	sectionColors
	sectionGeneral
)

var sectionNames = []string{"Peristiwa", "Kategori", "Warna", "Umum"}

type adminModel struct {
	gate   *session.Gate
	theme  *Theme
	width  int
	height int

	section adminSection

	loginForm *huh.Form
	password  *string

	events     eventsAdmin
	categories categoriesAdmin
	colors     colorsAdmin
	general    generalAdmin
}

func newAdminModel(s *content.Store, kv storage.Adapter, g *session.Gate, t *Theme) adminModel {
	pw := ""
	return adminModel{
		gate:       g,
		theme:      t,
		password:   &pw,
		events:     newEventsAdmin(s),
		categories: newCategoriesAdmin(s),
		colors:     newColorsAdmin(s, t),
		general:    newGeneralAdmin(kv),
	}
}

func (a *adminModel) setSize(w, h int) {
	a.width = w
	a.height = h
}

// formActive reports whether the admin view is capturing keystrokes: the
// login prompt or any open editor.
func (a adminModel) formActive() bool {
	if !a.gate.Authenticated() {
		return true
	}
	switch a.section {
	case sectionEvents:
		return a.events.formActive
	case sectionCategories:
		return a.categories.formActive
	case sectionColors:
		return a.colors.formActive
	case sectionGeneral:
		return a.general.formActive
	}
	return false
}

// enter prepares the view when its tab is selected.
func (a adminModel) enter() (adminModel, tea.Cmd) {
	if a.gate.Authenticated() {
		return a, nil
	}
	return a.showLogin()
}

func (a adminModel) showLogin() (adminModel, tea.Cmd) {
	*a.password = ""
	a.loginForm = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Password").
				Description("Masukkan password admin").
				EchoMode(huh.EchoModePassword).
				Value(a.password),
		).Title("Login Admin"),
	).WithShowHelp(true)
	return a, a.loginForm.Init()
}

func (a adminModel) update(msg tea.Msg) (adminModel, tea.Cmd) {
	// Data messages reach every section, even behind the login prompt.
	switch msg.(type) {
	case snapshotMsg:
		var c1, c2, c3 tea.Cmd
		a.events, c1 = a.events.update(msg)
		a.categories, c2 = a.categories.update(msg)
		a.colors, c3 = a.colors.update(msg)
		return a, tea.Batch(c1, c2, c3)
	case generalSettingsMsg:
		var cmd tea.Cmd
		a.general, cmd = a.general.update(msg)
		return a, cmd
	}

	if !a.gate.Authenticated() {
		return a.updateLogin(msg)
	}

	if km, ok := msg.(tea.KeyMsg); ok && !a.formActive() {
		switch {
		case key.Matches(km, keys.Logout):
			a.gate.Logout()
			a.section = sectionEvents
			var cmd tea.Cmd
			a, cmd = a.showLogin()
			return a, tea.Batch(cmd, statusCmd("Logout berhasil", false))
		case key.Matches(km, keys.SubTab), key.Matches(km, keys.Right):
			a.section = (a.section + 1) % adminSection(len(sectionNames))
			return a, nil
		case key.Matches(km, keys.Left):
			a.section = (a.section + adminSection(len(sectionNames)) - 1) % adminSection(len(sectionNames))
			return a, nil
		}
	}

	var cmd tea.Cmd
	switch a.section {
	case sectionEvents:
		a.events, cmd = a.events.update(msg)
	case sectionCategories:
		a.categories, cmd = a.categories.update(msg)
	case sectionColors:
		a.colors, cmd = a.colors.update(msg)
	case sectionGeneral:
		a.general, cmd = a.general.update(msg)
	}
	return a, cmd
}

func (a adminModel) updateLogin(msg tea.Msg) (adminModel, tea.Cmd) {
	if a.loginForm == nil {
		return a.showLogin()
	}
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "esc" {
		a.loginForm = nil
		return a, func() tea.Msg { return switchViewMsg{view: viewHome} }
	}

	form, cmd := a.loginForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.loginForm = f
	}

	if a.loginForm.State == huh.StateCompleted {
		ok := a.gate.Submit(*a.password)
		*a.password = ""
		if !ok {
			a, cmd = a.showLogin()
			return a, tea.Batch(cmd, statusCmd("Password salah", true))
		}
		a.loginForm = nil
		return a, statusCmd("Login berhasil", false)
	}
	return a, cmd
}

func (a adminModel) view() string {
	w := a.width - 4

	if !a.gate.Authenticated() {
		body := mutedStyle.Render("Memuat...")
		if a.loginForm != nil {
			body = a.loginForm.View()
		}
		return activePanelStyle.Width(min(w, 60)).Render(lipgloss.JoinVertical(lipgloss.Left,
			heroStyle.Render("Panel Admin"),
			"",
			body,
			"",
			mutedStyle.Render("  esc: kembali ke beranda"),
		))
	}

	var tabs []string
	for i, name := range sectionNames {
		if adminSection(i) == a.section {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}
	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	var body string
	switch a.section {
	case sectionEvents:
		body = a.events.view(w)
	case sectionCategories:
		body = a.categories.view(w)
	case sectionColors:
		body = a.colors.view(w)
	case sectionGeneral:
		body = a.general.view(w)
	}

	hint := mutedStyle.Render("  ←/→: bagian  L: logout")
	return a.theme.Panel().Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left, heroStyle.Render("Panel Admin"), tabRow, "", body, "", hint),
	)
}
