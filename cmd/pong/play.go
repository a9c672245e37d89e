package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pong/internal/core"
	"github.com/vovakirdan/pong/internal/platform/tui"
	"github.com/vovakirdan/pong/internal/registry"
	"github.com/vovakirdan/pong/internal/storage"
)

var (
	flagFrontend string
	flagSession  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a match",
	Long: `Start a two-player match on this machine.

Controls (default bindings):
  W / S        - Left paddle up / down
  Up / Down    - Right paddle up / down
  Tab          - Show finished matches (terminal only)
  Q / Esc      - Quit (terminal), Esc or close the window (window)

Frontends:
  tui     - Play inside this terminal (default)
  window  - Open a 700x400 desktop window

Examples:
  pong play
  pong play --frontend window
  pong play --config ./my-pong.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVarP(&flagFrontend, "frontend", "f", tui.ID, "Frontend to play in (see 'pong list')")
	playCmd.Flags().StringVar(&flagSession, "session", "local", "Label recorded with finished matches")
}

func runPlay(_ *cobra.Command, _ []string) {
	if !registry.Exists(flagFrontend) {
		fmt.Fprintf(os.Stderr, "Error: unknown frontend %q\n", flagFrontend)
		fmt.Fprintln(os.Stderr, "Run 'pong list' to see available frontends.")
		os.Exit(1)
	}

	settings, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The terminal frontend owns the screen, so logs go nowhere by default
	var fallback io.Writer = os.Stderr
	if flagFrontend == tui.ID {
		fallback = io.Discard
	}
	logger, logCloser, err := newLogger(settings, fallback, "pong")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()
	logger.Debug("settings loaded", "source", settings.Source)

	frontend, err := registry.Create(flagFrontend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The ledger lives for this process only
	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open match ledger", "error", err)
		store = nil
	}

	runtime := core.DefaultConfig()
	runtime.Session = flagSession

	opts := registry.Options{
		Settings: settings,
		Logger:   logger,
		Runtime:  runtime,
	}
	if store != nil {
		opts.Results = store
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runErr := frontend.Run(ctx, opts)

	if store != nil {
		printSummary(store)
		store.Close()
	}

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// printSummary prints the matches finished during this run.
func printSummary(store *storage.Store) {
	tally, err := store.Tally("")
	if err != nil || tally.Matches == 0 {
		return
	}
	records, err := store.RecentMatches(tally.Matches)
	if err != nil {
		return
	}

	fmt.Println(tui.RenderLedger(records, len(records)+4))
	fmt.Printf("\nMatches: %d  Left wins: %d  Right wins: %d\n", tally.Matches, tally.LeftWins, tally.RightWins)
}
