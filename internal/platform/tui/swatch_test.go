package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContrastColor(t *testing.T) {
	tests := []struct {
		hex  string
		want string
	}{
		{"#FFFFFF", "#000000"},
		{"#FFFF00", "#000000"},
		{"#F6C6E5", "#000000"},
		{"#0000FF", "#ffffff"},
		{"#800080", "#ffffff"},
		{"#000000", "#ffffff"},
	}
	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			c, err := colorful.Hex(tt.hex)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ContrastColor(c).Hex())
		})
	}
}

func TestSwatchSize(t *testing.T) {
	s := Swatch("#00FF00", 12, 3, "")
	assert.Equal(t, 12, lipgloss.Width(s))
	assert.Equal(t, 3, lipgloss.Height(s))

	bad := Swatch("green", 4, 2, "")
	assert.Contains(t, bad, "╱╱╱╱")
	assert.Equal(t, 2, lipgloss.Height(bad))
}

func TestCenterText(t *testing.T) {
	assert.Equal(t, "   abcd", centerText("abcd", 10))
	assert.Equal(t, "abcd", centerText("abcd", 3))
	assert.Equal(t, "  桜色", centerText("桜色", 8))
}
