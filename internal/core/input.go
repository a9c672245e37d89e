package core

// Key is a logical key, abstracted from the physical keys a frontend reads.
// Both players share one keyboard, so each paddle has its own pair.
type Key int

const (
	KeyNone      Key = iota
	KeyLeftUp        // W - left paddle up
	KeyLeftDown      // S - left paddle down
	KeyRightUp       // Up arrow - right paddle up
	KeyRightDown     // Down arrow - right paddle down
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyLeftUp:
		return "LeftUp"
	case KeyLeftDown:
		return "LeftDown"
	case KeyRightUp:
		return "RightUp"
	case KeyRightDown:
		return "RightDown"
	default:
		return "Unknown"
	}
}

// KeyState is the set of logical keys held during one frame.
type KeyState struct {
	held map[Key]bool
}

// NewKeyState creates a key state with the given keys held.
func NewKeyState(keys ...Key) KeyState {
	s := KeyState{held: make(map[Key]bool, len(keys))}
	for _, k := range keys {
		s.held[k] = true
	}
	return s
}

// Set marks a key as held.
func (s *KeyState) Set(k Key) {
	if s.held == nil {
		s.held = make(map[Key]bool)
	}
	s.held[k] = true
}

// Held returns true if the key is held this frame.
func (s KeyState) Held(k Key) bool {
	return s.held[k]
}

// Clone creates a copy of this key state.
func (s KeyState) Clone() KeyState {
	clone := NewKeyState()
	for k, v := range s.held {
		clone.held[k] = v
	}
	return clone
}

// Events is the result of polling the environment once per frame.
type Events struct {
	Quit bool // The environment asked the game to stop
}
