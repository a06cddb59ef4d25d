package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/colorquiz/internal/palette"
	"github.com/vovakirdan/colorquiz/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List quiz modes and grades",
	Long:  `Shows the registered quiz modes and the number of colors in each grade.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	a := mustLoadApp()
	modes := registry.List()

	if len(modes) == 0 {
		fmt.Println("No quiz modes available.")
		return
	}

	fmt.Println("Quiz modes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, m := range modes {
		if len(m.ID) > maxIDLen {
			maxIDLen = len(m.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, m := range modes {
		fmt.Printf("  %-*s  %s\n", maxIDLen, m.ID, m.Title)
	}

	fmt.Println()
	fmt.Println("Grades:")
	fmt.Println()
	for _, g := range palette.Grades() {
		fmt.Printf("  %-5s  %d colors\n", g.Label(), a.book.Len(g))
	}

	fmt.Println()
	fmt.Println("Run 'colorquiz play --grade <grade> --mode <id>' to start a quiz.")
}
