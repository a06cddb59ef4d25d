package modes

import (
	"github.com/vovakirdan/colorquiz/internal/registry"
	"github.com/vovakirdan/colorquiz/internal/taxonomy"
)

func init() {
	registry.Register(NameToPCCS, func(registry.Settings) registry.Mode {
		return nameToPCCS{}
	})
}

// nameToPCCS shows a color name and asks for its PCCS symbol.
type nameToPCCS struct {
	fullPalette
}

func (nameToPCCS) ID() string             { return NameToPCCS }
func (nameToPCCS) Title() string          { return "Name → PCCS" }
func (nameToPCCS) Question() string       { return "Which PCCS symbol matches this color name?" }
func (nameToPCCS) Prompt() taxonomy.Field { return taxonomy.FieldName }
func (nameToPCCS) Answer() taxonomy.Field { return taxonomy.FieldPCCS }
func (nameToPCCS) ExcludeSimilar() bool   { return true }
