package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	colorPrimary   = lipgloss.Color("#0F766E")
	colorGold      = lipgloss.Color("#D4A017")
	colorAccent    = lipgloss.Color("#C2410C")
	colorMuted     = lipgloss.Color("#7C6F64")
	colorSuccess   = lipgloss.Color("#2ECC71")
	colorWarning   = lipgloss.Color("#F39C12")
	colorError     = lipgloss.Color("#E74C3C")
	colorFg        = lipgloss.Color("#E8DCC8")
	colorSubtle    = lipgloss.Color("#4A3F35")
	colorHighlight = lipgloss.Color("#14B8A6")
)

// Styles
var (
	// Tabs
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorGold).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(colorGold).
			Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Padding(0, 2)

	// Panels
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(1, 2)

	activePanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorGold).
				Padding(1, 2)

	// Cards
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(0, 1).
			Width(30)

	selectedCardStyle = cardStyle.
				BorderForeground(colorGold)

	heroStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorGold)

	// Text
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorFg)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	eraStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorHighlight)

	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	warningStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	highlightStyle = lipgloss.NewStyle().
			Foreground(colorHighlight)

	// Header/footer
	headerStyle = lipgloss.NewStyle().
			Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	// List items
	selectedItemStyle = lipgloss.NewStyle().
				Foreground(colorGold).
				Bold(true)

	normalItemStyle = lipgloss.NewStyle().
			Foreground(colorFg)
)

// gradientShades maps the leading "from-" token of a category gradient to a
// terminal colour.
var gradientShades = map[string]lipgloss.Color{
	"emerald": lipgloss.Color("#10B981"),
	"blue":    lipgloss.Color("#3B82F6"),
	"purple":  lipgloss.Color("#A855F7"),
	"orange":  lipgloss.Color("#F97316"),
	"red":     lipgloss.Color("#EF4444"),
	"green":   lipgloss.Color("#22C55E"),
	"primary": colorPrimary,
	"accent":  colorAccent,
	"earth":   lipgloss.Color("#B45309"),
}

func gradientColor(token string) lipgloss.Color {
	first, _, _ := strings.Cut(token, " ")
	first = strings.TrimPrefix(first, "from-")
	name, _, _ := strings.Cut(first, "-")
	if c, ok := gradientShades[name]; ok {
		return c
	}
	return colorPrimary
}
