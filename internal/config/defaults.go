package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/colorquiz.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Quiz: QuizConfig{
			SampleSize:        11,
			DefaultGrade:      "1",
			DefaultMode:       "color-to-name",
			DescriptionOrigin: "native",
		},
		Server: ServerConfig{
			Address:     ":23235",
			HostKeyPath: "~/.colorquiz/ssh_host_ed25519",
			IdleTimeout: 30 * time.Minute,
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.colorquiz/debug.log",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
