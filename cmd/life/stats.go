package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcadelab/tui-life/internal/platform/tui"
	"github.com/arcadelab/tui-life/internal/storage"
)

var flagInteractive bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show run history",
	Long: `Display recent simulation runs and overall totals.

Examples:
  life stats
  life stats --interactive`,
	Run: runStats,
}

func init() {
	statsCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse run history in a scrollable table")
}

func runStats(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunStatsBoard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	stats, err := store.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Run History")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'life run' to record your first simulation!")
		return
	}

	// Print header
	fmt.Printf("  %-10s  %-12s  %-10s  %-10s  %s\n", "Grid", "Generations", "Peak Pop", "Duration", "Date")
	fmt.Printf("  %-10s  %-12s  %-10s  %-10s  %s\n", "----", "-----------", "--------", "--------", "----")

	for _, r := range runs {
		fmt.Printf("  %-10s  %-12d  %-10d  %-10s  %s\n",
			fmt.Sprintf("%dx%d", r.Width, r.Height),
			r.Generations,
			r.PeakPopulation,
			fmt.Sprintf("%ds", r.Duration),
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Printf("Totals: %d runs, %d generations, longest run %d, highest peak %d\n",
		stats.RunsCount, stats.TotalGenerations, stats.LongestRun, stats.HighestPeak)
}
