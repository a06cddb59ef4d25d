// Package similarity decides whether two PCCS notations are perceptually
// too close to be offered side by side as quiz choices.
package similarity

import (
	"slices"
	"strconv"

	"github.com/vovakirdan/colorquiz/internal/taxonomy"
)

const (
	hueSteps    = 24 // PCCS hue wheel size
	hueMaxSteps = 2  // Circular distance still considered "near"
)

// toneNeighbors lists, per tone, the tones considered adjacent.
// The table is not symmetric ("dkg" lists "d" but "d" does not list "dkg",
// "mGy" has no row at all); lookups check both directions.
var toneNeighbors = map[string][]string{
	"v":   {"b", "dp"},
	"b":   {"v", "lt", "sf"},
	"lt":  {"b", "p", "sf", "ltg"},
	"p":   {"lt", "sf", "ltg"},
	"sf":  {"p", "lt", "ltg", "d", "g", "b"},
	"ltg": {"p", "sf", "g", "d", "lt"},
	"d":   {"sf", "g", "dk", "dp"},
	"dp":  {"v", "d", "dk"},
	"dk":  {"d", "dp", "dkg", "g"},
	"dkg": {"dk", "g", "d", "Gy", "Bk"},
	"g":   {"ltg", "sf", "d", "dk", "dkg", "Gy"},
	"Gy":  {"g", "dkg", "Bk", "mGy"},
	"Bk":  {"dkg", "Gy"},
}

// IsSimilarHue reports whether two hue tokens are within two steps of each
// other on the 24-step wheel, wrapping between 24 and 1.
// Tokens that are not integers are never similar.
func IsSimilarHue(a, b string) bool {
	h1, err := strconv.Atoi(a)
	if err != nil {
		return false
	}
	h2, err := strconv.Atoi(b)
	if err != nil {
		return false
	}
	return HueDistance(h1, h2) <= hueMaxSteps
}

// HueDistance returns the shortest distance between two hue positions
// around the wheel, in the range [0, 12].
func HueDistance(h1, h2 int) int {
	d := ((h1-h2)%hueSteps + hueSteps) % hueSteps
	return min(d, hueSteps-d)
}

// IsSimilarTone reports whether two tones are identical or adjacent.
// Adjacency holds if either tone lists the other. Unknown tones are only
// similar to themselves.
func IsSimilarTone(a, b string) bool {
	if a == b {
		return true
	}
	return slices.Contains(toneNeighbors[a], b) || slices.Contains(toneNeighbors[b], a)
}

// IsSimilar applies the joint rule: both hue and tone must be similar.
// The unparsed sentinel is never similar to anything.
func IsSimilar(a, b taxonomy.PCCS) bool {
	if a.IsZero() || b.IsZero() {
		return false
	}
	return IsSimilarHue(a.Hue, b.Hue) && IsSimilarTone(a.Tone, b.Tone)
}

