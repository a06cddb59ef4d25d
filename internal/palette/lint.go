package palette

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/colorquiz/internal/taxonomy"
)

// Severity of a lint finding.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Finding is a single lint result.
type Finding struct {
	Grade    Grade
	Index    int
	Name     string
	Severity Severity
	Message  string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: grade %s #%d %q: %s", f.Severity, f.Grade, f.Index, f.Name, f.Message)
}

// Lint checks grades 2 and 3 of a book. Grade 1 is derived and may hold
// the same name twice.
//
// Errors: empty name, duplicate name within a grade, hex that does not
// parse, origin other than native or foreign.
// Warnings: PCCS that does not parse (the entry is then never filtered as
// similar), missing Munsell or description.
func Lint(b *Book) []Finding {
	var out []Finding
	for _, g := range []Grade{Grade2, Grade3} {
		entries, _ := b.Entries(g)
		seen := make(map[string]int, len(entries))
		for i, e := range entries {
			add := func(sev Severity, format string, args ...any) {
				out = append(out, Finding{
					Grade:    g,
					Index:    i,
					Name:     e.Name,
					Severity: sev,
					Message:  fmt.Sprintf(format, args...),
				})
			}

			name := strings.TrimSpace(e.Name)
			if name == "" {
				add(SeverityError, "empty name")
			} else if first, dup := seen[name]; dup {
				add(SeverityError, "duplicate name (first at #%d)", first)
			} else {
				seen[name] = i
			}

			if _, err := colorful.Hex(e.Hex); err != nil {
				add(SeverityError, "invalid hex %q", e.Hex)
			}
			if _, err := taxonomy.ParseEntryOrigin(string(e.Origin)); err != nil {
				add(SeverityError, "invalid origin %q", e.Origin)
			}
			if taxonomy.ParsePCCS(e.PCCS).IsZero() {
				add(SeverityWarning, "unparsed PCCS %q", e.PCCS)
			}
			if e.Munsell == "" {
				add(SeverityWarning, "missing munsell")
			}
			if e.Description == "" {
				add(SeverityWarning, "missing description")
			}
		}
	}
	return out
}

// HasErrors reports whether any finding is an error.
func HasErrors(findings []Finding) bool {
	for _, f := range findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}
