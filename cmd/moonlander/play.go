package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vperelygin/moonlander/internal/core"
	"github.com/vperelygin/moonlander/internal/games/lander"
	"github.com/vperelygin/moonlander/internal/platform/tui"
	"github.com/vperelygin/moonlander/internal/storage"
)

var (
	flagConfig string
	flagPreset string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Fly a mission",
	Long: `Start a flight. A new terrain is generated every mission.

Controls:
  Left/Right, H/L  - Rotate
  Space/Up/W       - Thrust (burns fuel)
  P/Esc            - Pause
  R                - New flight (after touchdown or crash)
  Q/Ctrl+C         - Quit

Mission presets:
  cadet      - Generous fuel and forgiving touchdown limits
  pilot      - The standard mission (default)
  commander  - Tight fuel, strict touchdown limits

Examples:
  moonlander play
  moonlander play --preset cadet
  moonlander play --seed 42
  moonlander play --config ./my-lander.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom simulation config YAML")
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Mission preset: cadet, pilot, commander")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size for the runtime config
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Apply simulation settings before game creation
	lander.SetConfigPath(flagConfig)
	lander.SetPreset(flagPreset)
	game := lander.New()

	// Open flight log storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open flight log: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
