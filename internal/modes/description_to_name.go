package modes

import (
	"github.com/vovakirdan/colorquiz/internal/registry"
	"github.com/vovakirdan/colorquiz/internal/taxonomy"
)

func init() {
	registry.Register(DescriptionToName, func(s registry.Settings) registry.Mode {
		origin := s.DescriptionOrigin
		if origin == "" {
			origin = taxonomy.OriginNative
		}
		return descriptionToName{origin: origin}
	})
}

// descriptionToName shows a name's origin story and asks for the name.
// Distractors come only from entries of the same origin, so no similarity
// filter is applied.
type descriptionToName struct {
	origin taxonomy.Origin
}

func (descriptionToName) ID() string             { return DescriptionToName }
func (descriptionToName) Title() string          { return "Description → Name" }
func (descriptionToName) Question() string       { return "Which color does this description refer to?" }
func (descriptionToName) Prompt() taxonomy.Field { return taxonomy.FieldDescription }
func (descriptionToName) Answer() taxonomy.Field { return taxonomy.FieldName }
func (descriptionToName) ExcludeSimilar() bool   { return false }

// Sequence keeps entries of the configured origin; OriginAny keeps all.
func (m descriptionToName) Sequence(entries []taxonomy.Entry) []taxonomy.Entry {
	return byOrigin(entries, m.origin)
}

func (descriptionToName) Pool(candidates []taxonomy.Entry, correct taxonomy.Entry) []taxonomy.Entry {
	return byOrigin(candidates, correct.Origin)
}

func byOrigin(entries []taxonomy.Entry, origin taxonomy.Origin) []taxonomy.Entry {
	out := make([]taxonomy.Entry, 0, len(entries))
	for _, e := range entries {
		if origin.Matches(e.Origin) {
			out = append(out, e)
		}
	}
	return out
}
