package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/pong.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default settings file.
func DefaultYAML() []byte {
	return defaultYAML
}

// Default returns the built-in settings. It matches defaults/pong.yaml and
// is used when the embedded file cannot be parsed.
func Default() Settings {
	return Settings{
		Terminal: TerminalSettings{
			KeyHold: 500 * time.Millisecond,
			Keys: KeyBindings{
				LeftUp:    []string{"w", "W"},
				LeftDown:  []string{"s", "S"},
				RightUp:   []string{"up"},
				RightDown: []string{"down"},
				Quit:      []string{"q", "esc", "ctrl+c"},
			},
		},
		Window: WindowSettings{
			Title:    "Pong",
			Scale:    1,
			Gamepads: true,
			Keys: KeyBindings{
				LeftUp:    []string{"W"},
				LeftDown:  []string{"S"},
				RightUp:   []string{"ArrowUp"},
				RightDown: []string{"ArrowDown"},
				Quit:      []string{"Escape"},
			},
		},
		Server: ServerSettings{
			Address:     ":23234",
			HostKeyPath: ".ssh/pong_ed25519",
			IdleTimeout: 10 * time.Minute,
		},
		Log: LogSettings{
			Level: "info",
		},
		Source: "embedded",
	}
}
