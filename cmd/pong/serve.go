package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pong/internal/platform/tui"
	"github.com/vovakirdan/pong/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the pong SSH server",
	Long: `Start an SSH server where every connection gets its own match.

Both players share the connecting terminal, exactly like a local game.
Finished matches are kept in memory until the server stops.

Host key handling:
  - --host-key or server.host_key_path names the key file
  - the key is generated on first start if it does not exist

Examples:
  pong serve                       # Listen on server.address (:23234)
  pong serve --ssh :2222           # Listen on port 2222
  pong serve --host-key ./host_key # Use a specific host key

Players connect with:
  ssh -t localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port), overrides server.address")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file, overrides server.host_key_path")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Disconnect idle sessions after this long, overrides server.idle_timeout")
}

func runServe(_ *cobra.Command, _ []string) {
	settings, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagSSHAddr != "" {
		settings.Server.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		settings.Server.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		settings.Server.IdleTimeout = flagIdleTimeout
	}

	logger, logCloser, err := newLogger(settings, os.Stderr, "pong-ssh")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open match ledger", "error", err)
		store = nil
	}

	server, err := tui.NewSSHServer(settings, store, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting pong SSH server on %s\n", server.Addr())
	fmt.Printf("Connect with: ssh -t localhost -p %s\n", port(server.Addr()))
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := server.ListenAndServe(ctx)

	if store != nil {
		if tally, err := store.Tally(""); err == nil {
			logger.Info("server stopped", "matches", tally.Matches, "leftWins", tally.LeftWins, "rightWins", tally.RightWins)
		}
		store.Close()
	}

	if serveErr != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", serveErr)
		os.Exit(1)
	}
}

// port returns the port part of a listen address, or the address itself.
func port(addr string) string {
	if _, p, err := net.SplitHostPort(addr); err == nil {
		return p
	}
	return addr
}
