package tui

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/sadopc/sejarah/internal/color"
	"github.com/sadopc/sejarah/internal/content"
	"github.com/sadopc/sejarah/internal/prefs"
)

// Theme is the terminal side of the colour pair. The content store writes
// HSL triplets into it through SetProperty; the views read back lipgloss
// colours. It also carries the reader's light/dark mode and text size.
type Theme struct {
	mu       sync.RWMutex
	vars     map[string]string
	dark     bool
	textSize string
}

var _ content.Presenter = (*Theme)(nil)

func NewTheme() *Theme {
	t := &Theme{vars: make(map[string]string), textSize: prefs.TextMedium}
	t.vars[content.VarBackground] = hslOf(content.DefaultLightBg)
	t.vars[content.VarDarkBackground] = hslOf(content.DefaultDarkBg)
	return t
}

func (t *Theme) SetProperty(name, value string) {
	t.mu.Lock()
	t.vars[name] = value
	t.mu.Unlock()
}

func (t *Theme) Property(name string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.vars[name]
	return v, ok
}

// ApplyReader switches mode and text size from the reader settings.
func (t *Theme) ApplyReader(r prefs.Reader) {
	t.mu.Lock()
	t.dark = r.Theme == prefs.ThemeDark
	t.textSize = r.TextSize
	t.mu.Unlock()
}

func (t *Theme) Dark() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.dark
}

// Background is the hex form of whichever variable the current mode uses.
func (t *Theme) Background() lipgloss.Color {
	name := content.VarBackground
	if t.Dark() {
		name = content.VarDarkBackground
	}
	v, _ := t.Property(name)
	hex, err := hslToHex(v)
	if err != nil {
		if t.Dark() {
			return lipgloss.Color(content.DefaultDarkBg)
		}
		return lipgloss.Color(content.DefaultLightBg)
	}
	return lipgloss.Color(hex)
}

// Foreground picks a readable text colour for Background.
func (t *Theme) Foreground() lipgloss.Color {
	bg, err := colorful.Hex(string(t.Background()))
	if err != nil {
		return colorFg
	}
	_, _, l := bg.Hsl()
	if l > 0.5 {
		return lipgloss.Color("#2B2118")
	}
	return colorFg
}

// Frame wraps the content area in the themed background.
func (t *Theme) Frame() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(t.Background()).
		Foreground(t.Foreground())
}

// Panel is panelStyle with padding scaled by text size.
func (t *Theme) Panel() lipgloss.Style {
	t.mu.RLock()
	size := t.textSize
	t.mu.RUnlock()
	switch size {
	case prefs.TextSmall:
		return panelStyle.Padding(0, 1)
	case prefs.TextLarge:
		return panelStyle.Padding(2, 4)
	}
	return panelStyle
}

// hslToHex parses "H S% L%" as produced by color.HSL.String.
func hslToHex(v string) (string, error) {
	var h, s, l float64
	if _, err := fmt.Sscanf(v, "%g %g%% %g%%", &h, &s, &l); err != nil {
		return "", fmt.Errorf("parse hsl %q: %w", v, err)
	}
	return colorful.Hsl(h, s/100, l/100).Clamped().Hex(), nil
}

func hslOf(hex string) string {
	v, _ := color.HexToHSL(hex)
	return v
}
