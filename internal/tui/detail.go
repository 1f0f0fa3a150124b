package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/sejarah/internal/content"
)

type detailModel struct {
	width int
	event content.Event
	open  bool
}

func (d detailModel) view() string {
	w := d.width - 4
	ev := d.event
	label := lipgloss.NewStyle().Width(12).Foreground(colorMuted)
	inner := w - 8
	if inner < 20 {
		inner = 20
	}

	field := func(name, value string) string {
		if value == "" {
			return ""
		}
		return label.Render(name) + lipgloss.NewStyle().Width(inner-12).Render(value)
	}

	story, hasStory := builtinStories[ev.ID]
	era := ev.Era()
	if hasStory && story.hijriMonth != "" {
		era = fmt.Sprintf("%s H - %s  ·  %s M", ev.HijriYear, story.hijriMonth, ev.Year)
	}

	rows := []string{
		eraStyle.Render(era),
		heroStyle.Render(ev.Title),
	}
	if ev.Subtitle != "" {
		rows = append(rows, subtitleStyle.Render(ev.Subtitle))
	}
	rows = append(rows, "")
	for _, f := range []string{
		field("Kategori", ev.Category),
		field("Lokasi", ev.Location),
		field("Gambar", ev.BackgroundImage),
	} {
		if f != "" {
			rows = append(rows, f)
		}
	}
	rows = append(rows, "",
		lipgloss.NewStyle().Width(inner).Render(ev.Description),
	)
	if hasStory {
		rows = append(rows, renderStory(ev, story, inner)...)
	}
	rows = append(rows,
		"",
		titleStyle.Render("Bagikan ke WhatsApp"),
		highlightStyle.Render(shareURL(ev)),
		"",
		mutedStyle.Render("  esc: kembali"),
	)

	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// osmURL points at the event's coordinates on OpenStreetMap.
func osmURL(lat, lon float64) string {
	return fmt.Sprintf("https://www.openstreetmap.org/?mlat=%.4f&mlon=%.4f#map=10/%.4f/%.4f", lat, lon, lat, lon)
}

func renderStory(ev content.Event, st eventStory, width int) []string {
	text := lipgloss.NewStyle().Width(width)
	var rows []string

	rows = append(rows, "", titleStyle.Render("Informasi Tempat"),
		fmt.Sprintf("  Lokasi  %s", ev.Location),
	)
	if st.duration != "" {
		rows = append(rows, fmt.Sprintf("  Durasi  %s", st.duration))
	}
	if st.lat != 0 || st.lon != 0 {
		rows = append(rows,
			mutedStyle.Render(fmt.Sprintf("  %.4f, %.4f", st.lat, st.lon)),
			highlightStyle.Render("  "+osmURL(st.lat, st.lon)),
		)
	}

	if len(st.participants) > 0 {
		rows = append(rows, "", titleStyle.Render("Pihak Terlibat"))
		name := lipgloss.NewStyle().Width(18).Bold(true)
		role := lipgloss.NewStyle().Width(26).Foreground(colorMuted)
		for _, p := range st.participants {
			rows = append(rows, "  "+name.Render(p.name)+role.Render(p.role)+highlightStyle.Render(p.count))
		}
	}

	if len(st.keyPoints) > 0 || st.impact != "" {
		rows = append(rows, "", titleStyle.Render("Deskripsi Peristiwa"))
		if len(st.keyPoints) > 0 {
			rows = append(rows, subtitleStyle.Render("Poin-Poin Utama:"))
			for i, kp := range st.keyPoints {
				rows = append(rows, text.Render(fmt.Sprintf("  %d. %s", i+1, kp)))
			}
		}
		if st.impact != "" {
			rows = append(rows, "", subtitleStyle.Render("Dampak dan Signifikansi:"), text.Render(st.impact))
		}
	}

	if len(st.references) > 0 {
		rows = append(rows, "", titleStyle.Render("Referensi"))
		for i, r := range st.references {
			rows = append(rows, mutedStyle.Render(fmt.Sprintf("  [%d] %s", i+1, r)))
		}
	}
	return rows
}
