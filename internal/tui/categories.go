package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/sejarah/internal/content"
)

const categoryColumns = 3

type categoriesModel struct {
	theme  *Theme
	width  int
	height int

	categories []content.Category
	cursor     int

	chart barchart.Model
}

func newCategoriesModel(t *Theme) categoriesModel {
	c := categoriesModel{
		theme:      t,
		categories: builtinCategories,
		chart:      barchart.New(60, 10),
	}
	c.buildChart()
	return c
}

func (c *categoriesModel) setSize(w, h int) {
	c.width = w
	c.height = h
	c.buildChart()
}

func (c categoriesModel) update(msg tea.Msg) (categoriesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotMsg:
		c.categories = displayCategories(msg.snap)
		c.cursor = clampCursor(c.cursor, len(c.categories))
		c.buildChart()
		return c, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Left):
			if c.cursor > 0 {
				c.cursor--
			}
		case key.Matches(msg, keys.Right):
			if c.cursor < len(c.categories)-1 {
				c.cursor++
			}
		case key.Matches(msg, keys.Up):
			if c.cursor-categoryColumns >= 0 {
				c.cursor -= categoryColumns
			}
		case key.Matches(msg, keys.Down):
			if c.cursor+categoryColumns < len(c.categories) {
				c.cursor += categoryColumns
			}
		}
	}
	return c, nil
}

// buildChart draws one bar per category sized by its event count.
func (c *categoriesModel) buildChart() {
	chartWidth := c.width - 8
	if chartWidth < 40 {
		chartWidth = 40
	}
	chartHeight := 10
	if c.height > 40 {
		chartHeight = 14
	}

	c.chart = barchart.New(chartWidth, chartHeight)

	var bars []barchart.BarData
	for _, cat := range c.categories {
		style := lipgloss.NewStyle().Foreground(gradientColor(cat.Color))
		bars = append(bars, barchart.BarData{
			Label: truncate(cat.Name, 8),
			Values: []barchart.BarValue{{
				Name:  cat.Name,
				Value: float64(cat.EventCount),
				Style: style,
			}},
		})
	}
	if len(bars) == 0 {
		return
	}

	c.chart.PushAll(bars)
	c.chart.Draw()
}

func (c categoriesModel) view() string {
	w := c.width - 4
	title := titleStyle.Render("Kategori Sejarah")

	if len(c.categories) == 0 {
		return c.theme.Panel().Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
			title, "", mutedStyle.Render("Belum ada kategori."),
		))
	}

	var gridRows []string
	for start := 0; start < len(c.categories); start += categoryColumns {
		end := start + categoryColumns
		if end > len(c.categories) {
			end = len(c.categories)
		}
		var cards []string
		for i := start; i < end; i++ {
			cards = append(cards, renderCategoryCard(c.categories[i], i == c.cursor), " ")
		}
		gridRows = append(gridRows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	total := 0
	for _, cat := range c.categories {
		total += cat.EventCount
	}
	summary := mutedStyle.Render(fmt.Sprintf("%d kategori · %d peristiwa", len(c.categories), total))
	nav := mutedStyle.Render("  ←/→/↑/↓: pilih")

	return c.theme.Panel().Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title, summary, "", strings.Join(gridRows, "\n"), "", c.chart.View(), "", nav,
		),
	)
}

func renderCategoryCard(cat content.Category, selected bool) string {
	style := cardStyle
	if selected {
		style = selectedCardStyle
	}
	inner := cardWidth - 4
	swatch := lipgloss.NewStyle().Foreground(gradientColor(cat.Color)).Render("■")
	body := lipgloss.JoinVertical(lipgloss.Left,
		swatch+" "+titleStyle.Render(truncate(cat.Name, inner-2)),
		subtitleStyle.Render(truncate(cat.Description, inner)),
		highlightStyle.Render(fmt.Sprintf("%d peristiwa", cat.EventCount)),
	)
	return style.Render(body)
}
