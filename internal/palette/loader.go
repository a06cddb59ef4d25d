package palette

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/colorquiz/internal/taxonomy"
)

//go:embed defaults/palettes.yaml
var defaultPalettesYAML []byte

// ErrNoEntries is returned when a palette source has no entries at all.
var ErrNoEntries = errors.New("palette: no entries")

// Source provides raw per-grade entries, e.g. a SQLite catalog.
type Source interface {
	Entries(grade Grade) ([]taxonomy.Entry, error)
}

// Default returns the compiled-in palettes.
func Default() *Book {
	b, err := Parse(defaultPalettesYAML)
	if err != nil {
		panic(fmt.Sprintf("palette: embedded defaults: %v", err))
	}
	return b
}

// DefaultYAML returns the embedded palette file.
func DefaultYAML() []byte {
	return defaultPalettesYAML
}

// Parse decodes a palette YAML document.
func Parse(data []byte) (*Book, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("palette: parse: %w", err)
	}
	if len(f.Grade2) == 0 && len(f.Grade3) == 0 {
		return nil, ErrNoEntries
	}
	if err := checkOrigins(f.Grade2, f.Grade3); err != nil {
		return nil, err
	}
	return FromFile(f), nil
}

// checkOrigins rejects entries tagged with a filter value or an unknown
// origin.
func checkOrigins(tiers ...[]taxonomy.Entry) error {
	for _, list := range tiers {
		for _, e := range list {
			if _, err := taxonomy.ParseEntryOrigin(string(e.Origin)); err != nil {
				return fmt.Errorf("palette: %s: %w", e.Name, err)
			}
		}
	}
	return nil
}

// Load loads the palettes.
// Search order: customPath -> ~/.colorquiz/palettes.yaml -> ./configs/palettes.yaml -> embedded default
func Load(customPath string) (*Book, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("palette: failed to read %s: %w", customPath, err)
		}
		b, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("palette: %s: %w", customPath, err)
		}
		return b, nil
	}

	if home, err := os.UserHomeDir(); err == nil {
		if b, err := loadIfPresent(filepath.Join(home, ".colorquiz", "palettes.yaml")); err == nil {
			return b, nil
		}
	}

	if b, err := loadIfPresent(filepath.Join("configs", "palettes.yaml")); err == nil {
		return b, nil
	}

	return Default(), nil
}

func loadIfPresent(path string) (*Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// LoadFrom builds a book from a source holding grades 2 and 3.
func LoadFrom(src Source) (*Book, error) {
	g2, err := src.Entries(Grade2)
	if err != nil {
		return nil, fmt.Errorf("palette: grade 2: %w", err)
	}
	g3, err := src.Entries(Grade3)
	if err != nil {
		return nil, fmt.Errorf("palette: grade 3: %w", err)
	}
	if len(g2) == 0 && len(g3) == 0 {
		return nil, ErrNoEntries
	}
	if err := checkOrigins(g2, g3); err != nil {
		return nil, err
	}
	return NewBook(g2, g3), nil
}

// Marshal encodes a book in the on-disk layout.
func Marshal(b *Book) ([]byte, error) {
	data, err := yaml.Marshal(b.File())
	if err != nil {
		return nil, fmt.Errorf("palette: marshal: %w", err)
	}
	return data, nil
}
