package tui

import (
	"sync"
	"time"

	"github.com/vovakirdan/pong/internal/core"
)

// Keyboard is the terminal InputSource. Terminals deliver key presses and
// auto-repeats but never releases, so a key counts as held until hold has
// passed since its last press.
type Keyboard struct {
	mu      sync.Mutex
	pressed map[core.Key]time.Time
	quit    bool
	hold    time.Duration
	now     func() time.Time
}

// NewKeyboard creates a keyboard with the given hold window.
func NewKeyboard(hold time.Duration) *Keyboard {
	return &Keyboard{
		pressed: make(map[core.Key]time.Time),
		hold:    hold,
		now:     time.Now,
	}
}

// Press records a press or auto-repeat of k.
func (kb *Keyboard) Press(k core.Key) {
	if k == core.KeyNone {
		return
	}
	kb.mu.Lock()
	defer kb.mu.Unlock()
	kb.pressed[k] = kb.now()
}

// RequestQuit makes the next PollEvents report quit.
func (kb *Keyboard) RequestQuit() {
	kb.mu.Lock()
	defer kb.mu.Unlock()
	kb.quit = true
}

// PollEvents implements core.InputSource.
func (kb *Keyboard) PollEvents() core.Events {
	kb.mu.Lock()
	defer kb.mu.Unlock()
	return core.Events{Quit: kb.quit}
}

// KeyState implements core.InputSource.
func (kb *Keyboard) KeyState() core.KeyState {
	kb.mu.Lock()
	defer kb.mu.Unlock()

	now := kb.now()
	state := core.NewKeyState()
	for k, at := range kb.pressed {
		if now.Sub(at) < kb.hold {
			state.Set(k)
		} else {
			delete(kb.pressed, k)
		}
	}
	return state
}
