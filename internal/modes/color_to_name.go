package modes

import (
	"github.com/vovakirdan/colorquiz/internal/registry"
	"github.com/vovakirdan/colorquiz/internal/taxonomy"
)

func init() {
	registry.Register(ColorToName, func(registry.Settings) registry.Mode {
		return colorToName{}
	})
}

// colorToName shows a swatch and asks for its name.
type colorToName struct {
	fullPalette
}

func (colorToName) ID() string             { return ColorToName }
func (colorToName) Title() string          { return "Color → Name" }
func (colorToName) Question() string       { return "What is the name of this color?" }
func (colorToName) Prompt() taxonomy.Field { return taxonomy.FieldHex }
func (colorToName) Answer() taxonomy.Field { return taxonomy.FieldName }
func (colorToName) ExcludeSimilar() bool   { return true }
