// Package palette holds the graded reference palettes the quiz draws from
// and loads them from YAML files or a catalog.
package palette

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownGrade is returned for grade selectors outside the three tiers.
var ErrUnknownGrade = errors.New("palette: unknown grade")

// Grade is a difficulty tier. Grade1 is the broadest palette.
type Grade string

const (
	Grade1 Grade = "1"
	Grade2 Grade = "2"
	Grade3 Grade = "3"
)

// Grades lists all tiers, broadest first.
func Grades() []Grade {
	return []Grade{Grade1, Grade2, Grade3}
}

// ParseGrade accepts "1", "1級" or "grade1" (and the same for 2 and 3).
func ParseGrade(s string) (Grade, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.TrimPrefix(s, "grade")
	s = strings.TrimSuffix(s, "級")
	if g := Grade(s); g.Valid() {
		return g, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownGrade, s)
}

// Valid reports whether g is one of the three tiers.
func (g Grade) Valid() bool {
	switch g {
	case Grade1, Grade2, Grade3:
		return true
	}
	return false
}

// Label returns the Japanese tier name, e.g. "1級".
func (g Grade) Label() string {
	return string(g) + "級"
}

// Title returns a human-readable tier name for menus.
func (g Grade) Title() string {
	return fmt.Sprintf("Grade %s (%s)", string(g), g.Label())
}
