// Package modes registers the built-in quiz modes.
// Import it for side effects:
//
//	import _ "github.com/vovakirdan/colorquiz/internal/modes"
package modes

import (
	"github.com/vovakirdan/colorquiz/internal/taxonomy"
)

// Mode IDs.
const (
	ColorToName       = "color-to-name"
	DescriptionToName = "description-to-name"
	NameToPCCS        = "name-to-pccs"
)

// IDs returns the built-in mode IDs in menu order.
func IDs() []string {
	return []string{ColorToName, DescriptionToName, NameToPCCS}
}

// fullPalette asks about every entry and draws distractors from all of them.
type fullPalette struct{}

func (fullPalette) Sequence(entries []taxonomy.Entry) []taxonomy.Entry {
	return entries
}

func (fullPalette) Pool(candidates []taxonomy.Entry, _ taxonomy.Entry) []taxonomy.Entry {
	return candidates
}
