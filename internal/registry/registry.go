// Package registry provides a global registry for quiz modes.
// Modes register themselves in init() functions, allowing the quiz engine
// and the platform to discover them without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/colorquiz/internal/taxonomy"
)

// ErrUnknownMode is returned by Create for IDs nobody registered.
var ErrUnknownMode = errors.New("registry: unknown mode")

// Mode describes one way of quizzing a palette.
// Modes hold no session state; the quiz engine owns progress and score.
type Mode interface {
	// ID returns a unique identifier (e.g. "color-to-name").
	// Used for CLI flags and config.
	ID() string

	// Title returns a human-readable name for menus.
	Title() string

	// Question returns the sentence shown above every question.
	Question() string

	// Prompt is the field shown as the given.
	Prompt() taxonomy.Field

	// Answer is the field the choices are drawn from.
	Answer() taxonomy.Field

	// ExcludeSimilar reports whether perceptually similar entries are
	// removed from the distractor pool.
	ExcludeSimilar() bool

	// Sequence returns the entries a session asks about, in palette order.
	Sequence(entries []taxonomy.Entry) []taxonomy.Entry

	// Pool returns the distractor candidates for one question.
	Pool(candidates []taxonomy.Entry, correct taxonomy.Entry) []taxonomy.Entry
}

// Settings carries per-session knobs into a mode factory.
type Settings struct {
	DescriptionOrigin taxonomy.Origin
}

// ModeInfo contains metadata about a registered mode.
type ModeInfo struct {
	ID    string
	Title string
}

// Factory creates a mode configured with the given settings.
type Factory func(Settings) Mode

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a mode factory to the registry.
// Panics if a mode with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", id))
	}

	factories[id] = f
	titles[id] = f(Settings{}).Title()
}

// List returns all registered modes, sorted by ID.
func List() []ModeInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ModeInfo, 0, len(factories))
	for id := range factories {
		result = append(result, ModeInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a mode by its ID.
func Create(id string, s Settings) (Mode, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownMode, id)
	}

	return f(s), nil
}

// Exists checks if a mode with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
