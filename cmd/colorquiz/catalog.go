package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/colorquiz/internal/config"
	"github.com/vovakirdan/colorquiz/internal/palette"
	"github.com/vovakirdan/colorquiz/internal/storage"
)

// defaultCatalogPath is used when neither --catalog nor catalog.path is set.
const defaultCatalogPath = "~/.colorquiz/catalog.db"

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the SQLite palette catalog",
	Long: `The catalog is a SQLite database holding the reference palettes of
grades 2 and 3. When catalog.path (or --catalog) points at a catalog with
entries, quizzes read their palettes from it.

Examples:
  colorquiz catalog import                      # Import the built-in palettes
  colorquiz catalog import ./my-palettes.yaml
  colorquiz catalog list --catalog ./catalog.db`,
}

var catalogImportCmd = &cobra.Command{
	Use:   "import [palette.yaml]",
	Short: "Import palettes into the catalog",
	Long: `Replaces grades 2 and 3 of the catalog with the given palette file.
Without an argument the palettes are resolved like 'play' resolves them
(--palette, palette.path, ~/.colorquiz/palettes.yaml, ./configs/palettes.yaml,
built-in).`,
	Args: cobra.MaximumNArgs(1),
	Run:  runCatalogImport,
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the grades stored in the catalog",
	Args:  cobra.NoArgs,
	Run:   runCatalogList,
}

var catalogClearCmd = &cobra.Command{
	Use:   "clear [grade...]",
	Short: "Delete stored palettes",
	Long: `Deletes the stored palettes of the given grades (2 and/or 3), or of
both when no grade is given. Quizzes then fall back to the palette files.

Examples:
  colorquiz catalog clear
  colorquiz catalog clear 3級`,
	Args: cobra.MaximumNArgs(2),
	Run:  runCatalogClear,
}

func init() {
	catalogCmd.AddCommand(catalogImportCmd)
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogClearCmd)
}

// openCatalog opens the configured catalog, or the default location.
func openCatalog(cfg config.Config) (*storage.Catalog, string, error) {
	path := catalogPath(cfg)
	if path == "" {
		path = defaultCatalogPath
	}
	cat, err := storage.Open(path)
	return cat, path, err
}

func runCatalogImport(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail(err)
	}

	source := flagPalettePath
	if source == "" {
		source = cfg.Palette.Path
	}
	if len(args) == 1 {
		source = args[0]
	}
	source, err = config.ExpandPath(source)
	if err != nil {
		fail(err)
	}

	book, err := palette.Load(source)
	if err != nil {
		fail(err)
	}
	if findings := palette.Lint(book); palette.HasErrors(findings) {
		for _, f := range findings {
			fmt.Fprintln(os.Stderr, f)
		}
		fail(fmt.Errorf("refusing to import a palette with errors"))
	}

	cat, path, err := openCatalog(cfg)
	if err != nil {
		fail(err)
	}
	defer cat.Close()

	if err := cat.Import(book); err != nil {
		fail(err)
	}

	fmt.Printf("Imported %d + %d colors into %s\n", book.Len(palette.Grade2), book.Len(palette.Grade3), path)
}

func runCatalogList(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail(err)
	}

	cat, path, err := openCatalog(cfg)
	if err != nil {
		fail(err)
	}
	defer cat.Close()

	grades, err := cat.Grades()
	if err != nil {
		fail(err)
	}

	fmt.Printf("Catalog %s\n\n", path)
	if len(grades) == 0 {
		fmt.Println("No palettes imported yet.")
		fmt.Println("Run 'colorquiz catalog import' to import the built-in palettes.")
		return
	}
	for _, g := range grades {
		fmt.Printf("  %-5s  %3d colors  imported %s\n", g.Grade.Label(), g.Count, g.ImportedAt.Format("2006-01-02 15:04"))
	}
}

func runCatalogClear(cmd *cobra.Command, args []string) {
	grades := []palette.Grade{palette.Grade2, palette.Grade3}
	if len(args) > 0 {
		grades = grades[:0]
		for _, arg := range args {
			g, err := palette.ParseGrade(arg)
			if err != nil {
				fail(err)
			}
			grades = append(grades, g)
		}
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail(err)
	}

	cat, path, err := openCatalog(cfg)
	if err != nil {
		fail(err)
	}
	defer cat.Close()

	for _, g := range grades {
		if err := cat.ClearGrade(g); err != nil {
			fail(err)
		}
		fmt.Printf("Cleared %s from %s\n", g.Label(), path)
	}
}
