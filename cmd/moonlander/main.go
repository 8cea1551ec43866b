// moonlander is a terminal lunar lander: guide the module down onto the
// landing pad before gravity or the mountains win.
//
// Usage:
//
//	moonlander play           - Fly a mission
//	moonlander scores         - Show the flight log
//	moonlander serve          - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for a reproducible terrain and drift
//	--db <path>     - Set database path (default: ~/.moonlander/flights.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "moonlander",
	Short: "Moonlander - land on the pad, not the mountains",
	Long: `Moonlander is a terminal remake of the classic vector-arcade lander.
A fresh mountain range is generated for every flight; one flat stretch is
the landing pad. Touch down on it upright and slow, with fuel to spare.

Available commands:
  play     - Fly a mission
  scores   - View the flight log
  serve    - Start SSH server for remote play

Examples:
  moonlander play
  moonlander play --preset commander
  moonlander scores --interactive
  moonlander serve --ssh :2222

Running moonlander with no command starts a flight.`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.moonlander/flights.db", "Path to flight log database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
