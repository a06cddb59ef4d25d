package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Swatch renders a solid block of the given hex color with an optional
// label in a contrasting color. Unparseable hex values render as a
// hatched block so a broken palette entry stays visible.
func Swatch(hex string, width, height int, label string) string {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	c, err := colorful.Hex(hex)
	if err != nil {
		row := strings.Repeat("╱", width)
		rows := make([]string, height)
		for i := range rows {
			rows[i] = row
		}
		return lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render(strings.Join(rows, "\n"))
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(lipgloss.Color(ContrastColor(c).Hex())).
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(label)
}

// ContrastColor returns black or white, whichever reads better on c.
func ContrastColor(c colorful.Color) colorful.Color {
	l, _, _ := c.Lab()
	if l > 0.6 {
		return colorful.Color{R: 0, G: 0, B: 0}
	}
	return colorful.Color{R: 1, G: 1, B: 1}
}

// centerText centers text within given width, measuring display cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// centerBlock centers every line of a multi-line block.
func centerBlock(block string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}
