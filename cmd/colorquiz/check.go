package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/colorquiz/internal/palette"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Lint the palettes",
	Long: `Loads the configuration and palettes the same way 'play' does and
reports problems.

Errors (exit status 1):
  - empty or duplicate names within a grade
  - hex values that do not parse

Warnings:
  - PCCS symbols that do not parse (never filtered as similar)
  - missing Munsell values or descriptions

Examples:
  colorquiz check
  colorquiz check --palette ./my-palettes.yaml`,
	Args: cobra.NoArgs,
	Run:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) {
	a := mustLoadApp()

	findings := palette.Lint(a.book)
	for _, f := range findings {
		fmt.Println(f)
	}

	for _, g := range palette.Grades() {
		fmt.Printf("%s: %d colors\n", g.Label(), a.book.Len(g))
	}

	if palette.HasErrors(findings) {
		fmt.Fprintln(os.Stderr, "Error: palette check failed")
		os.Exit(1)
	}
	fmt.Println("OK")
}
