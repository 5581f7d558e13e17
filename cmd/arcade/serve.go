package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/grid-arcade/internal/config"
	"github.com/vovakirdan/grid-arcade/internal/platform/tui"
)

var (
	flagServerConfig string
	flagSSHAddr      string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the arcade SSH server",
	Long: `Start an SSH server that allows users to connect and play games.

Each SSH connection gets its own session with a game picker menu.
Scores are stored per-server in SQLite. With a Redis address configured,
every player's best score also goes to a shared leaderboard keyed by their
SSH user name.

Settings come from an optional YAML file (--config) and are overridden by
environment variables:

` + config.ServerUsage() + `
Examples:
  arcade serve
  arcade serve --config ./server.yaml
  ARCADE_REDIS_ADDR=localhost:6379 arcade serve
  arcade serve --ssh :2222

Users can connect with:
  ssh localhost -p 2222`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagServerConfig, "config", "", "Path to server config YAML")
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port), overrides config")
}

func runServe(cmd *cobra.Command, _ []string) {
	cfg, err := config.LoadServer(flagServerConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagSSHAddr != "" {
		cfg.Address = flagSSHAddr
	}
	// The global --db flag wins when given explicitly
	if cmd.Flags().Changed("db") || cfg.DBPath == "" {
		cfg.DBPath = flagDBPath
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting arcade SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
