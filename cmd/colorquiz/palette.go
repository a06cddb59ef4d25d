package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/colorquiz/internal/palette"
	"github.com/vovakirdan/colorquiz/internal/platform/tui"
)

var (
	flagPaletteGrade string
	flagPlain        bool
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Browse the graded palettes",
	Long: `Opens an interactive browser over the palettes of every grade, with
a swatch and the description of the highlighted color.

With --plain, or when stdout is not a terminal, prints the palette as a
table instead.

Examples:
  colorquiz palette
  colorquiz palette --grade 2
  colorquiz palette --grade 3 --plain`,
	Args: cobra.NoArgs,
	Run:  runPalette,
}

func init() {
	paletteCmd.Flags().StringVar(&flagPaletteGrade, "grade", "1", "Grade to show first")
	paletteCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain table instead of the browser")
}

func runPalette(cmd *cobra.Command, args []string) {
	a := mustLoadApp()

	grade, err := palette.ParseGrade(flagPaletteGrade)
	if err != nil {
		fail(err)
	}

	if flagPlain || !term.IsTerminal(int(os.Stdout.Fd())) {
		if err := printPalette(a.book, grade); err != nil {
			fail(err)
		}
		return
	}

	rt := runtimeConfig()
	if err := tui.RunPalette(a.book, grade, rt.ScreenW, rt.ScreenH); err != nil {
		fail(err)
	}
}

// printPalette writes one grade as an aligned table.
func printPalette(book *palette.Book, grade palette.Grade) error {
	entries, err := book.Entries(grade)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %d colors\n\n", grade.Title(), len(entries))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tNAME\tPCCS\tMUNSELL\tHEX\tORIGIN")
	for i, e := range entries {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", i+1, e.Name, e.PCCS, e.Munsell, e.Hex, e.Origin)
	}
	return w.Flush()
}
