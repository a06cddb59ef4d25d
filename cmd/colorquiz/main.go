// colorquiz is a terminal quiz on color names, PCCS symbols and the
// stories behind traditional color names.
//
// Usage:
//
//	colorquiz list               - List quiz modes and grades
//	colorquiz play               - Pick a grade and mode, then play
//	colorquiz serve              - Start SSH server for remote play
//	colorquiz palette            - Browse the graded palettes
//	colorquiz check              - Lint the palettes
//	colorquiz catalog import     - Import palettes into the SQLite catalog
//	colorquiz catalog list       - Show what the catalog holds
//	colorquiz catalog clear      - Delete stored palettes
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.colorquiz/config.yaml)
//	--seed <value>      - RNG seed for reproducible quizzes
//	--palette <path>    - Custom palette YAML
//	--catalog <path>    - SQLite palette catalog
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import modes to register them
	_ "github.com/vovakirdan/colorquiz/internal/modes"
)

var (
	// Global flags
	flagConfig      string
	flagSeed        int64
	flagPalettePath string
	flagCatalogPath string
	flagLogLevel    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "colorquiz",
	Short: "Color Quiz - Learn color names and PCCS symbols in your terminal",
	Long: `Color Quiz drills color names, PCCS tone/hue symbols and the
origins of traditional Japanese color names across three grades.

Available commands:
  list     - Show quiz modes and grades
  play     - Play a quiz
  serve    - Start SSH server for remote play
  palette  - Browse the palettes
  check    - Lint the palettes
  catalog  - Manage the SQLite palette catalog

Examples:
  colorquiz list
  colorquiz play
  colorquiz play --grade 3 --mode name-to-pccs
  colorquiz serve --ssh :2222
  colorquiz catalog import ./my-palettes.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagPalettePath, "palette", "", "Path to custom palette YAML")
	rootCmd.PersistentFlags().StringVar(&flagCatalogPath, "catalog", "", "Path to SQLite palette catalog")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(paletteCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(catalogCmd)
}
