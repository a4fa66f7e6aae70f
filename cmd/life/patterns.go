package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcadelab/tui-life/internal/life"
)

var flagPreview bool

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List stampable patterns",
	Long:  `Shows all patterns that can be stamped onto the grid.`,
	Run:   runPatterns,
}

func init() {
	patternsCmd.Flags().BoolVar(&flagPreview, "preview", false, "Render each pattern's cells")
}

func runPatterns(cmd *cobra.Command, args []string) {
	patterns := life.Patterns()

	fmt.Println("Available patterns:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, p := range patterns {
		if len(p.Name) > maxNameLen {
			maxNameLen = len(p.Name)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-7s  %s\n", maxNameLen, "Name", "Size", "Cells")
	fmt.Printf("  %-*s  %-7s  %s\n", maxNameLen, "----", "----", "-----")

	for _, p := range patterns {
		fmt.Printf("  %-*s  %-7s  %d\n", maxNameLen, p.Name,
			fmt.Sprintf("%dx%d", p.Cols, p.Rows), len(p.Offsets))
	}

	if flagPreview {
		for _, p := range patterns {
			fmt.Println()
			fmt.Printf("%s:\n", p.Name)
			fmt.Print(p.Preview())
		}
	}

	fmt.Println()
	fmt.Println("Stamp a pattern in 'life run' with G (glider), P (pulsar), or S (spaceship).")
}
