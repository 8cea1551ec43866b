package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vperelygin/moonlander/internal/platform/tui"
	"github.com/vperelygin/moonlander/internal/storage"
)

var flagInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the flight log",
	Long: `Display the top landings and overall flight statistics.

Examples:
  moonlander scores
  moonlander scores --interactive`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "Browse the flight log in a TUI")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening flight log: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error showing flight log: %v\n", err)
			os.Exit(1)
		}
		return
	}

	flights, err := store.TopFlights(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving flights: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Top Landings - Moonlander")
	fmt.Println()

	if len(flights) == 0 {
		fmt.Println("No landings recorded yet.")
		fmt.Println()
		fmt.Println("Run 'moonlander play' to attempt the first one!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-7s  %s\n", "Rank", "Score", "Fuel", "Ticks", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-7s  %s\n", "----", "-----", "----", "-----", "----")

	for i, f := range flights {
		dateStr := f.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-6d  %-7d  %s\n", i+1, f.Score, f.FuelLeft, f.Duration, dateStr)
	}

	stats, err := store.Stats()
	if err == nil {
		fmt.Println()
		fmt.Printf("Flights: %d  Landings: %d  Best: %d\n", stats.Flights, stats.Landings, stats.HighScore)
	}
}
