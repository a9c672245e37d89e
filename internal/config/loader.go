package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "pong.yaml"

// Load reads settings, layering the chosen file over the embedded defaults
// so a file only needs the keys it changes.
// Search order: customPath -> ~/.pong/pong.yaml -> ./configs/pong.yaml -> embedded default
func Load(customPath string) (Settings, error) {
	cfg := embedded()

	// Custom path must exist and parse
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := overlay(&cfg, data); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		cfg.Source = customPath
		return cfg, cfg.Validate()
	}

	candidates := []string{filepath.Join("configs", fileName)}
	if p := userConfigPath(); p != "" {
		candidates = append([]string{p}, candidates...)
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		next := cfg
		if err := overlay(&next, data); err != nil {
			// Broken optional files are skipped, like missing ones
			continue
		}
		next.Source = path
		return next, next.Validate()
	}

	return cfg, cfg.Validate()
}

// embedded parses the embedded defaults, falling back to Default.
func embedded() Settings {
	cfg := Default()
	if err := overlay(&cfg, defaultYAML); err != nil {
		return Default()
	}
	cfg.Source = "embedded"
	return cfg
}

// overlay decodes data on top of cfg. Lists in data replace lists in cfg.
func overlay(cfg *Settings, data []byte) error {
	next := *cfg
	next.Terminal.Keys = KeyBindings{}
	next.Window.Keys = KeyBindings{}
	if err := yaml.Unmarshal(data, &next); err != nil {
		return err
	}
	next.Terminal.Keys = mergeKeys(cfg.Terminal.Keys, next.Terminal.Keys)
	next.Window.Keys = mergeKeys(cfg.Window.Keys, next.Window.Keys)
	*cfg = next
	return nil
}

func mergeKeys(base, override KeyBindings) KeyBindings {
	pick := func(b, o []string) []string {
		if len(o) > 0 {
			return o
		}
		return b
	}
	return KeyBindings{
		LeftUp:    pick(base.LeftUp, override.LeftUp),
		LeftDown:  pick(base.LeftDown, override.LeftDown),
		RightUp:   pick(base.RightUp, override.RightUp),
		RightDown: pick(base.RightDown, override.RightDown),
		Quit:      pick(base.Quit, override.Quit),
	}
}

// userConfigPath returns ~/.pong/pong.yaml, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pong", fileName)
}
