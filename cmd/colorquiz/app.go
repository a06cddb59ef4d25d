package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/colorquiz/internal/config"
	"github.com/vovakirdan/colorquiz/internal/core"
	"github.com/vovakirdan/colorquiz/internal/palette"
	"github.com/vovakirdan/colorquiz/internal/quiz"
	"github.com/vovakirdan/colorquiz/internal/storage"
)

// app bundles what every command needs.
type app struct {
	cfg    config.Config
	logger *log.Logger
	book   *palette.Book
}

// loadApp reads the config, builds the logger and loads the palettes.
func loadApp() (*app, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "colorquiz",
		Level:           cfg.Level(),
	})

	book, err := loadBook(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &app{cfg: cfg, logger: logger, book: book}, nil
}

// loadBook prefers the catalog when one is configured and holds entries,
// then falls back to palette files.
func loadBook(cfg config.Config, logger *log.Logger) (*palette.Book, error) {
	if path := catalogPath(cfg); path != "" {
		cat, err := storage.Open(path)
		if err != nil {
			return nil, err
		}
		defer cat.Close()

		book, err := palette.LoadFrom(cat)
		switch {
		case err == nil:
			logger.Debug("palettes loaded from catalog", "path", path)
			return book, nil
		case errors.Is(err, palette.ErrNoEntries):
			logger.Warn("catalog is empty, using palette files", "path", path)
		default:
			return nil, err
		}
	}

	path := flagPalettePath
	if path == "" {
		path = cfg.Palette.Path
	}
	path, err := config.ExpandPath(path)
	if err != nil {
		return nil, err
	}
	return palette.Load(path)
}

// catalogPath returns the catalog location from flags or config.
func catalogPath(cfg config.Config) string {
	if flagCatalogPath != "" {
		return flagCatalogPath
	}
	return cfg.Catalog.Path
}

// quizOptions maps the config onto engine options.
func (a *app) quizOptions() quiz.Options {
	return quiz.Options{
		SampleSize:        a.cfg.Quiz.SampleSize,
		DescriptionOrigin: a.cfg.Origin(),
		Logger:            a.logger,
	}
}

// runtimeConfig sizes the session to the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	return cfg
}

// mustLoadApp exits on error the way every command does.
func mustLoadApp() *app {
	a, err := loadApp()
	if err != nil {
		fail(err)
	}
	return a
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
