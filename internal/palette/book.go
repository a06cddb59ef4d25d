package palette

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/colorquiz/internal/taxonomy"
)

// File is the on-disk palette layout. Grade 1 is derived, never stored.
type File struct {
	Grade2 []taxonomy.Entry `yaml:"grade2"`
	Grade3 []taxonomy.Entry `yaml:"grade3"`
}

// Book holds the palette of every grade.
type Book struct {
	tiers map[Grade][]taxonomy.Entry
}

// NewBook builds a book from the two narrow tiers.
// Grade 1 becomes grade 2 followed by grade 3; duplicate names are kept.
func NewBook(grade2, grade3 []taxonomy.Entry) *Book {
	g2 := normalize(grade2)
	g3 := normalize(grade3)
	return &Book{
		tiers: map[Grade][]taxonomy.Entry{
			Grade1: slices.Concat(g2, g3),
			Grade2: g2,
			Grade3: g3,
		},
	}
}

// FromFile builds a book from a decoded palette file.
func FromFile(f File) *Book {
	return NewBook(f.Grade2, f.Grade3)
}

// normalize copies entries and fills a missing origin with native.
func normalize(entries []taxonomy.Entry) []taxonomy.Entry {
	out := slices.Clone(entries)
	for i := range out {
		if out[i].Origin == "" {
			out[i].Origin = taxonomy.OriginNative
		}
	}
	return out
}

// Entries returns a copy of the grade's palette.
func (b *Book) Entries(g Grade) ([]taxonomy.Entry, error) {
	if !g.Valid() {
		return nil, fmt.Errorf("%w %q", ErrUnknownGrade, string(g))
	}
	return slices.Clone(b.tiers[g]), nil
}

// Len returns the number of entries in a grade, 0 for unknown grades.
func (b *Book) Len(g Grade) int {
	return len(b.tiers[g])
}

// File returns the narrow tiers in on-disk layout.
func (b *Book) File() File {
	return File{
		Grade2: slices.Clone(b.tiers[Grade2]),
		Grade3: slices.Clone(b.tiers[Grade3]),
	}
}
