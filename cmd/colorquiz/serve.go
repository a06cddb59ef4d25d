package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/colorquiz/internal/config"
	"github.com/vovakirdan/colorquiz/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the quiz SSH server",
	Long: `Start an SSH server that allows users to connect and take quizzes.

Each SSH connection gets its own independent quiz session with the grade
and mode menu. Nothing is shared or stored between connections.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise uses server.host_key_path from the config, generating the
    key on first start

Examples:
  colorquiz serve                           # Listen on :23235
  colorquiz serve --ssh :2222               # Listen on port 2222
  colorquiz serve --host-key ./my_host_key  # Use specific host key
  colorquiz serve --idle-timeout 10m

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port), overrides server.address")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file, overrides server.host_key_path")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting, overrides server.idle_timeout")
}

func runServe(cmd *cobra.Command, _ []string) {
	a := mustLoadApp()

	cfg := tui.SSHServerConfig{
		Address:     a.cfg.Server.Address,
		HostKeyPath: a.cfg.Server.HostKeyPath,
		IdleTimeout: a.cfg.Server.IdleTimeout,
		Book:        a.book,
		Quiz:        a.quizOptions(),
		Grade:       a.cfg.Grade(),
		Mode:        a.cfg.Quiz.DefaultMode,
		Logger:      a.logger,
	}
	if cmd.Flags().Changed("ssh") {
		cfg.Address = flagSSHAddr
	}
	if cmd.Flags().Changed("host-key") {
		cfg.HostKeyPath = flagHostKey
	}
	if cmd.Flags().Changed("idle-timeout") {
		cfg.IdleTimeout = flagIdleTimeout
	}

	hostKey, err := config.ExpandPath(cfg.HostKeyPath)
	if err != nil {
		fail(err)
	}
	cfg.HostKeyPath = hostKey

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting colorquiz SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
