package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vperelygin/moonlander/internal/config"
	"github.com/vperelygin/moonlander/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagSSHDBPath   string
	flagIdleTimeout int
	flagServePreset string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the moonlander SSH server",
	Long: `Start an SSH server that lets users connect and fly missions.

Each SSH connection gets its own flight; everyone shares one flight log.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.moonlander/host_key

Examples:
  moonlander serve                           # Listen on :23234 with auto-generated key
  moonlander serve --ssh :2222               # Listen on port 2222
  moonlander serve --host-key ./my_host_key  # Use specific host key
  moonlander serve --preset commander        # Hard mode for everyone

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagSSHDBPath, "db", "~/.moonlander/flights.db", "Path to flight log database")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServePreset, "preset", "", "Mission preset for all sessions: cadet, pilot, commander")
}

func runServe(_ *cobra.Command, _ []string) {
	lcfg := config.DefaultLanderConfig()
	config.ApplyPreset(&lcfg, config.Preset(flagServePreset))

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagSSHDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Lander:      lcfg,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
