// Package taxonomy defines the reference color entries used by the quiz and
// the PCCS notation parser that splits a PCCS code into tone and hue.
// It has no external dependencies so that matching and sampling stay pure.
package taxonomy

import (
	"fmt"
	"regexp"
)

// Origin classifies where a color name comes from.
type Origin string

const (
	OriginNative  Origin = "native"  // Traditional Japanese names (和名)
	OriginForeign Origin = "foreign" // Loan names (洋名)
	OriginAny     Origin = "any"     // Matches every origin; used by filters only
)

// ParseOrigin validates an origin filter. The empty string maps to OriginAny.
func ParseOrigin(s string) (Origin, error) {
	switch Origin(s) {
	case OriginNative, OriginForeign, OriginAny:
		return Origin(s), nil
	case "":
		return OriginAny, nil
	}
	return "", fmt.Errorf("taxonomy: unknown origin %q", s)
}

// ParseEntryOrigin validates the origin tag of an entry. Only native and
// foreign name an entry; any is a filter value. The empty string maps to
// OriginNative.
func ParseEntryOrigin(s string) (Origin, error) {
	switch Origin(s) {
	case OriginNative, OriginForeign:
		return Origin(s), nil
	case "":
		return OriginNative, nil
	case OriginAny:
		return "", fmt.Errorf("taxonomy: origin %q is a filter, not an entry tag", s)
	}
	return "", fmt.Errorf("taxonomy: unknown origin %q", s)
}

// Matches reports whether an entry origin passes this filter.
func (o Origin) Matches(other Origin) bool {
	return o == OriginAny || o == "" || o == other
}

// Entry is one color of a reference palette.
type Entry struct {
	Name        string `yaml:"name"`
	Hex         string `yaml:"hex"`
	PCCS        string `yaml:"pccs"`
	Munsell     string `yaml:"munsell"`
	Description string `yaml:"description"`
	Origin      Origin `yaml:"origin"`
}

// Field addresses one displayable attribute of an Entry.
type Field int

const (
	FieldName Field = iota
	FieldPCCS
	FieldHex
	FieldMunsell
	FieldDescription
)

// String returns the field name used in logs and config.
func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldPCCS:
		return "pccs"
	case FieldHex:
		return "hex"
	case FieldMunsell:
		return "munsell"
	case FieldDescription:
		return "description"
	default:
		return "unknown"
	}
}

// Value returns the value of the given field.
// Descriptions are returned in display form.
func (e Entry) Value(f Field) string {
	switch f {
	case FieldName:
		return e.Name
	case FieldPCCS:
		return e.PCCS
	case FieldHex:
		return e.Hex
	case FieldMunsell:
		return e.Munsell
	case FieldDescription:
		return e.DisplayDescription()
	default:
		return ""
	}
}

// Notation parses the entry's PCCS code.
func (e Entry) Notation() PCCS {
	return ParsePCCS(e.PCCS)
}

// DisplayDescription returns the description with line-break markup
// replaced by plain newlines.
func (e Entry) DisplayDescription() string {
	return NormalizeDescription(e.Description)
}

// Display returns a copy of the entry ready for rendering.
func (e Entry) Display() Entry {
	e.Description = e.DisplayDescription()
	return e
}

var breakTag = regexp.MustCompile(`\s*<br\s*/?>\s*`)

// NormalizeDescription turns <br>, <br/> and <br /> (and the whitespace
// around them) into a single newline.
func NormalizeDescription(s string) string {
	return breakTag.ReplaceAllString(s, "\n")
}
