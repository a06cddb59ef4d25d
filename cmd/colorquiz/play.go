package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/colorquiz/internal/config"
	"github.com/vovakirdan/colorquiz/internal/palette"
	"github.com/vovakirdan/colorquiz/internal/platform/tui"
	"github.com/vovakirdan/colorquiz/internal/registry"
)

var (
	flagGrade string
	flagMode  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a quiz",
	Long: `Start a quiz. Without flags a menu lets you pick the grade and mode;
with --grade or --mode the quiz starts immediately.

Controls:
  Arrows/hjkl  - Move between choices
  Enter/Space  - Answer, then continue
  P            - Browse the palette (restarts the quiz on return)
  Esc/B        - Back to the menu
  R            - Play again (on the result screen)
  Q/Ctrl+C     - Quit

Modes:
  color-to-name        - Name the color of a swatch
  description-to-name  - Name the color from the story of its name
  name-to-pccs         - Pick the PCCS symbol of a color name

Examples:
  colorquiz play
  colorquiz play --grade 3
  colorquiz play --grade 1級 --mode description-to-name
  colorquiz play --mode name-to-pccs --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagGrade, "grade", "", "Grade: 1, 2 or 3 (also 1級 or grade1)")
	playCmd.Flags().StringVar(&flagMode, "mode", "", "Quiz mode ID (see 'colorquiz list')")
}

func runPlay(cmd *cobra.Command, args []string) {
	a := mustLoadApp()

	grade := a.cfg.Grade()
	if flagGrade != "" {
		g, err := palette.ParseGrade(flagGrade)
		if err != nil {
			fail(err)
		}
		grade = g
	}

	mode := a.cfg.Quiz.DefaultMode
	if flagMode != "" {
		if !registry.Exists(flagMode) {
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", flagMode)
			fmt.Fprintln(os.Stderr, "Run 'colorquiz list' to see available modes.")
			os.Exit(1)
		}
		mode = flagMode
	}

	logPath, err := config.ExpandPath(a.cfg.Log.File)
	if err != nil {
		fail(err)
	}
	closeLog, err := tui.DetachLogger(a.logger, logPath)
	if err != nil {
		fail(err)
	}
	defer closeLog()

	err = tui.RunSession(tui.SessionOptions{
		Book:    a.book,
		Runtime: runtimeConfig(),
		Quiz:    a.quizOptions(),
		Grade:   grade,
		Mode:    mode,
		Direct:  flagGrade != "" || flagMode != "",
	})
	if err != nil {
		fail(err)
	}
}
