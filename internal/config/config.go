// Package config loads the YAML settings for controls, frontends, the SSH
// server and logging.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// Settings is the root of pong.yaml.
type Settings struct {
	Terminal TerminalSettings `yaml:"terminal"`
	Window   WindowSettings   `yaml:"window"`
	Server   ServerSettings   `yaml:"server"`
	Log      LogSettings      `yaml:"log"`

	// Source is the file the settings were read from, or "embedded".
	Source string `yaml:"-"`
}

// KeyBindings maps logical controls to frontend key names.
type KeyBindings struct {
	LeftUp    []string `yaml:"left_up"`
	LeftDown  []string `yaml:"left_down"`
	RightUp   []string `yaml:"right_up"`
	RightDown []string `yaml:"right_down"`
	Quit      []string `yaml:"quit"`
}

// TerminalSettings configures the terminal frontend and SSH sessions.
type TerminalSettings struct {
	KeyHold time.Duration `yaml:"key_hold"`
	Keys    KeyBindings   `yaml:"keys"`
}

// WindowSettings configures the desktop window frontend.
type WindowSettings struct {
	Title    string      `yaml:"title"`
	Scale    float64     `yaml:"scale"`
	Gamepads bool        `yaml:"gamepads"`
	Keys     KeyBindings `yaml:"keys"`
}

// ServerSettings configures `pong serve`.
type ServerSettings struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key_path"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// LogSettings configures the charmbracelet logger.
type LogSettings struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// ParsedLevel returns the configured level, defaulting to info.
func (l LogSettings) ParsedLevel() (log.Level, error) {
	if l.Level == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(l.Level)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("config: log level %q: %w", l.Level, err)
	}
	return lvl, nil
}

// Validate reports every problem found in s.
func (s Settings) Validate() error {
	var errs []error

	if s.Terminal.KeyHold <= 0 {
		errs = append(errs, fmt.Errorf("terminal.key_hold must be positive, got %s", s.Terminal.KeyHold))
	}
	errs = append(errs, s.Terminal.Keys.validate("terminal.keys")...)

	if s.Window.Scale <= 0 {
		errs = append(errs, fmt.Errorf("window.scale must be positive, got %g", s.Window.Scale))
	}
	errs = append(errs, s.Window.Keys.validate("window.keys")...)

	if s.Server.Address == "" {
		errs = append(errs, errors.New("server.address is empty"))
	}
	if s.Server.IdleTimeout < 0 {
		errs = append(errs, fmt.Errorf("server.idle_timeout must not be negative, got %s", s.Server.IdleTimeout))
	}

	if _, err := s.Log.ParsedLevel(); err != nil {
		errs = append(errs, err)
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid settings: %w", err)
	}
	return nil
}

func (k KeyBindings) validate(prefix string) []error {
	var errs []error
	check := func(name string, keys []string) {
		if len(keys) == 0 {
			errs = append(errs, fmt.Errorf("%s.%s has no keys", prefix, name))
		}
	}
	check("left_up", k.LeftUp)
	check("left_down", k.LeftDown)
	check("right_up", k.RightUp)
	check("right_down", k.RightDown)
	check("quit", k.Quit)
	return errs
}
