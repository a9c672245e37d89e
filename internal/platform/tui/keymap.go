package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pong/internal/config"
	"github.com/vovakirdan/pong/internal/core"
)

// KeyMap holds the terminal key bindings. It doubles as the help footer's
// key source.
type KeyMap struct {
	LeftUp    key.Binding
	LeftDown  key.Binding
	RightUp   key.Binding
	RightDown key.Binding
	Ledger    key.Binding
	Quit      key.Binding
}

// NewKeyMap builds bindings from the configured key names.
func NewKeyMap(kb config.KeyBindings) KeyMap {
	return KeyMap{
		LeftUp:    binding(kb.LeftUp, "left up"),
		LeftDown:  binding(kb.LeftDown, "left down"),
		RightUp:   binding(kb.RightUp, "right up"),
		RightDown: binding(kb.RightDown, "right down"),
		Ledger: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "matches"),
		),
		Quit: binding(kb.Quit, "quit"),
	}
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(helpKeys(keys), desc),
	)
}

// helpKeys joins key names for display, skipping shifted duplicates.
func helpKeys(keys []string) string {
	seen := make(map[string]bool, len(keys))
	var names []string
	for _, k := range keys {
		lower := strings.ToLower(k)
		if seen[lower] {
			continue
		}
		seen[lower] = true
		names = append(names, k)
	}
	return strings.Join(names, "/")
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.LeftUp, k.LeftDown, k.RightUp, k.RightDown, k.Ledger, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.LeftUp, k.LeftDown},
		{k.RightUp, k.RightDown},
		{k.Ledger, k.Quit},
	}
}

// PaddleKey translates a key message to a paddle control.
// Returns core.KeyNone if the message is not bound to a paddle.
func (k KeyMap) PaddleKey(msg tea.KeyMsg) core.Key {
	switch {
	case key.Matches(msg, k.LeftUp):
		return core.KeyLeftUp
	case key.Matches(msg, k.LeftDown):
		return core.KeyLeftDown
	case key.Matches(msg, k.RightUp):
		return core.KeyRightUp
	case key.Matches(msg, k.RightDown):
		return core.KeyRightDown
	}
	return core.KeyNone
}
