// pong is a two-player Pong game for the terminal, a desktop window or
// remote players over SSH.
//
// Usage:
//
//	pong play                  - Play in the terminal
//	pong play -f window        - Play in a desktop window
//	pong serve                 - Host matches over SSH
//	pong list                  - List available frontends
//	pong config                - Print the default settings file
//
// Global flags:
//
//	--config <path>     - Settings file (default: ~/.pong/pong.yaml, ./configs/pong.yaml)
//	--log-level <level> - Override log.level
//	--log-file <path>   - Override log.file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pong/internal/config"

	// Import frontends to register them
	_ "github.com/vovakirdan/pong/internal/platform/tui"
	_ "github.com/vovakirdan/pong/internal/platform/window"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Two-player Pong for the terminal, a window or SSH",
	Long: `Two players share one keyboard: W/S move the left paddle and the
arrow keys move the right one. First to 10 points wins the match.

Available commands:
  play     - Play a match locally
  serve    - Start an SSH server, one match per connection
  list     - Show available frontends
  config   - Print the default settings file

Examples:
  pong play
  pong play --frontend window
  pong serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to settings YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadSettings reads the settings file and applies the global flag
// overrides.
func loadSettings() (config.Settings, error) {
	settings, err := config.Load(flagConfig)
	if err != nil {
		return settings, err
	}
	if flagLogLevel != "" {
		settings.Log.Level = flagLogLevel
	}
	if flagLogFile != "" {
		settings.Log.File = flagLogFile
	}
	if _, err := settings.Log.ParsedLevel(); err != nil {
		return settings, err
	}
	return settings, nil
}

// newLogger creates the process logger. Logs go to log.file when set,
// otherwise to fallback. The returned closer releases the log file.
func newLogger(settings config.Settings, fallback io.Writer, prefix string) (*log.Logger, io.Closer, error) {
	level, err := settings.Log.ParsedLevel()
	if err != nil {
		return nil, nil, err
	}

	w := fallback
	var closer io.Closer = nopCloser{}
	if settings.Log.File != "" {
		f, err := os.OpenFile(settings.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
