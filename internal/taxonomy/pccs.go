package taxonomy

import "regexp"

// PCCS is a parsed PCCS symbol. Both fields are empty when the code could
// not be parsed; the empty value never matches anything.
type PCCS struct {
	Tone string // e.g. "v", "lt", "Gy"
	Hue  string // 0-24 hue wheel position, kept as text
}

// pccsPattern: tone letters, hue digits, optional "+" modifier.
var pccsPattern = regexp.MustCompile(`^([A-Za-z]+)(\d+)(\+)?$`)

// ParsePCCS splits a code such as "lt24+" into tone "lt" and hue "24".
// The trailing "+" is discarded. Codes that do not match yield PCCS{}.
func ParsePCCS(code string) PCCS {
	m := pccsPattern.FindStringSubmatch(code)
	if m == nil {
		return PCCS{}
	}
	return PCCS{Tone: m[1], Hue: m[2]}
}

// IsZero reports whether this is the unparsed sentinel.
func (p PCCS) IsZero() bool {
	return p.Tone == "" && p.Hue == ""
}

// String renders the notation without modifier.
func (p PCCS) String() string {
	return p.Tone + p.Hue
}
