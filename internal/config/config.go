// Package config provides YAML-based application configuration for
// colorquiz: quiz defaults, palette and catalog locations, the SSH server
// and logging.
package config

import "time"

// Config is the full application configuration.
type Config struct {
	Quiz    QuizConfig    `yaml:"quiz"`
	Palette PaletteConfig `yaml:"palette"`
	Catalog CatalogConfig `yaml:"catalog"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
}

// QuizConfig holds session defaults.
type QuizConfig struct {
	SampleSize        int    `yaml:"sample_size"`
	DefaultGrade      string `yaml:"default_grade"`
	DefaultMode       string `yaml:"default_mode"`
	DescriptionOrigin string `yaml:"description_origin"`
}

// PaletteConfig locates a custom palette file.
type PaletteConfig struct {
	Path string `yaml:"path"`
}

// CatalogConfig locates the SQLite palette catalog.
type CatalogConfig struct {
	Path string `yaml:"path"`
}

// ServerConfig configures the SSH server.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key_path"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // receives debug logs while the TUI runs
}
