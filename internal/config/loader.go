package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/colorquiz/internal/palette"
	"github.com/vovakirdan/colorquiz/internal/registry"
	"github.com/vovakirdan/colorquiz/internal/taxonomy"
)

// Load loads the application configuration.
// Search order: customPath -> ~/.colorquiz/config.yaml -> ./configs/colorquiz.yaml -> embedded default
//
// Files are decoded over Default, so a file only needs the keys it changes.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if path := userConfigPath("config.yaml"); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "colorquiz.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), nil
	}
	return cfg, nil
}

// Parse decodes a YAML document over the defaults and validates it.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".colorquiz", filename)
}

// Validate checks every enumerated setting.
func (c Config) Validate() error {
	var errs []error
	if c.Quiz.SampleSize < 0 {
		errs = append(errs, fmt.Errorf("config: quiz.sample_size must not be negative, got %d", c.Quiz.SampleSize))
	}
	if _, err := palette.ParseGrade(c.Quiz.DefaultGrade); err != nil {
		errs = append(errs, fmt.Errorf("config: quiz.default_grade: %w", err))
	}
	if !registry.Exists(c.Quiz.DefaultMode) {
		errs = append(errs, fmt.Errorf("config: quiz.default_mode: %w %q", registry.ErrUnknownMode, c.Quiz.DefaultMode))
	}
	if _, err := taxonomy.ParseOrigin(c.Quiz.DescriptionOrigin); err != nil {
		errs = append(errs, fmt.Errorf("config: quiz.description_origin: %w", err))
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("config: log.level: %w", err))
	}
	if c.Server.IdleTimeout < 0 {
		errs = append(errs, fmt.Errorf("config: server.idle_timeout must not be negative"))
	}
	return errors.Join(errs...)
}

// Grade returns the parsed default grade, Grade1 if invalid.
func (c Config) Grade() palette.Grade {
	g, err := palette.ParseGrade(c.Quiz.DefaultGrade)
	if err != nil {
		return palette.Grade1
	}
	return g
}

// Origin returns the parsed description origin. An empty setting is native.
func (c Config) Origin() taxonomy.Origin {
	if c.Quiz.DescriptionOrigin == "" {
		return taxonomy.OriginNative
	}
	o, err := taxonomy.ParseOrigin(c.Quiz.DescriptionOrigin)
	if err != nil {
		return taxonomy.OriginNative
	}
	return o
}

// Level returns the parsed log level, info if invalid.
func (c Config) Level() log.Level {
	l, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return l
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
