package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/sejarah/internal/prefs"
	"github.com/sadopc/sejarah/internal/storage"
)

var textSizeLabels = map[string]string{
	prefs.TextSmall:  "Kecil",
	prefs.TextMedium: "Sedang",
	prefs.TextLarge:  "Besar",
}

type settingsModel struct {
	kv     storage.Adapter
	theme  *Theme
	width  int
	height int

	reader     prefs.Reader
	allowDark  bool
	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	themeValue    *string
	textSizeValue *string
}

func newSettingsModel(kv storage.Adapter, t *Theme) settingsModel {
	th, ts := "", ""
	return settingsModel{
		kv:            kv,
		theme:         t,
		reader:        prefs.DefaultReader(),
		allowDark:     true,
		themeValue:    &th,
		textSizeValue: &ts,
	}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

func (s settingsModel) load() tea.Cmd {
	kv := s.kv
	return func() tea.Msg {
		return readerSettingsMsg{reader: prefs.LoadReader(kv)}
	}
}

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case readerSettingsMsg:
		s.reader = msg.reader
		if !s.allowDark {
			s.reader.Theme = prefs.ThemeLight
		}
		s.theme.ApplyReader(s.reader)
		return s, nil

	case generalSettingsMsg:
		s.allowDark = msg.general.EnableDarkMode
		if !s.allowDark && s.reader.Theme == prefs.ThemeDark {
			s.reader.Theme = prefs.ThemeLight
			s.theme.ApplyReader(s.reader)
		}
		return s, nil
	}

	if s.formActive && s.form != nil {
		return s.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Toggle):
			if !s.allowDark {
				return s, func() tea.Msg {
					return statusMsg{text: "Mode gelap dinonaktifkan oleh admin", isError: true}
				}
			}
			return s, s.save(s.reader.Toggled())
		case key.Matches(msg, keys.Enter), key.Matches(msg, keys.Edit):
			return s.showForm()
		}
	}
	return s, nil
}

func (s settingsModel) showForm() (settingsModel, tea.Cmd) {
	*s.themeValue = s.reader.Theme
	*s.textSizeValue = s.reader.TextSize

	themeOptions := []huh.Option[string]{huh.NewOption("Terang", prefs.ThemeLight)}
	if s.allowDark {
		themeOptions = append(themeOptions, huh.NewOption("Gelap", prefs.ThemeDark))
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().Title("Tema").Options(themeOptions...).Value(s.themeValue),
			huh.NewSelect[string]().Title("Ukuran teks").
				Options(
					huh.NewOption(textSizeLabels[prefs.TextSmall], prefs.TextSmall),
					huh.NewOption(textSizeLabels[prefs.TextMedium], prefs.TextMedium),
					huh.NewOption(textSizeLabels[prefs.TextLarge], prefs.TextLarge),
				).Value(s.textSizeValue),
		).Title("Tampilan"),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	return s, s.form.Init()
}

func (s settingsModel) updateForm(msg tea.Msg) (settingsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			s.formActive = false
			s.form = nil
			return s, nil
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.formActive = false
		return s, s.save(prefs.Reader{Theme: *s.themeValue, TextSize: *s.textSizeValue})
	}

	return s, cmd
}

// save persists r and reloads it, so the view only shows what was stored.
func (s settingsModel) save(r prefs.Reader) tea.Cmd {
	kv := s.kv
	return func() tea.Msg {
		if err := prefs.SaveReader(kv, r); err != nil {
			return statusMsg{text: fmt.Sprintf("Gagal menyimpan: %v", err), isError: true}
		}
		return readerSettingsMsg{reader: prefs.LoadReader(kv)}
	}
}

func (s settingsModel) view() string {
	w := s.width - 4

	if s.formActive && s.form != nil {
		title := titleStyle.Render("Pengaturan")
		return s.theme.Panel().Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", s.form.View()),
		)
	}

	mode := "Terang"
	if s.reader.Theme == prefs.ThemeDark {
		mode = "Gelap"
	}
	label := lipgloss.NewStyle().Width(16)
	swatch := lipgloss.NewStyle().Background(s.theme.Background()).Render("      ")

	rows := []string{
		titleStyle.Render("Pengaturan"),
		subtitleStyle.Render("Kustomisasi pengalaman belajar sejarah Islam sesuai preferensi Anda"),
		"",
		fmt.Sprintf("  %s %s", label.Render("Tema"), highlightStyle.Render(mode)),
		fmt.Sprintf("  %s %s", label.Render("Ukuran teks"), highlightStyle.Render(textSizeLabels[s.reader.TextSize])),
		fmt.Sprintf("  %s %s", label.Render("Latar"), swatch),
		"",
		mutedStyle.Render("  t: ganti tema  enter: ubah pengaturan"),
	}

	return s.theme.Panel().Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
