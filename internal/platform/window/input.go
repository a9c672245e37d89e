package window

import (
	"fmt"
	"sort"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/pong/internal/config"
	"github.com/vovakirdan/pong/internal/core"
)

// analogDeadzone is the stick deflection below which a stick counts as
// centred.
const analogDeadzone = 0.25

// Bindings maps logical keys to Ebitengine keys.
type Bindings struct {
	Paddles map[core.Key][]ebiten.Key
	Quit    []ebiten.Key
}

// ResolveBindings parses configured key names such as "W" or "ArrowUp".
func ResolveBindings(kb config.KeyBindings) (Bindings, error) {
	b := Bindings{Paddles: make(map[core.Key][]ebiten.Key, 4)}

	groups := []struct {
		key   core.Key
		names []string
	}{
		{core.KeyLeftUp, kb.LeftUp},
		{core.KeyLeftDown, kb.LeftDown},
		{core.KeyRightUp, kb.RightUp},
		{core.KeyRightDown, kb.RightDown},
	}
	for _, g := range groups {
		keys, err := parseKeys(g.names)
		if err != nil {
			return b, err
		}
		b.Paddles[g.key] = keys
	}

	quit, err := parseKeys(kb.Quit)
	if err != nil {
		return b, err
	}
	b.Quit = quit
	return b, nil
}

func parseKeys(names []string) ([]ebiten.Key, error) {
	keys := make([]ebiten.Key, 0, len(names))
	for _, name := range names {
		var k ebiten.Key
		if err := k.UnmarshalText([]byte(name)); err != nil {
			return nil, fmt.Errorf("window: key %q: %w", name, err)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// Input is the window InputSource. The Ebitengine goroutine samples
// devices into it every tick and the game loop reads the latest sample.
type Input struct {
	mu   sync.Mutex
	keys core.KeyState
	quit bool
}

// NewInput creates an input source with nothing held.
func NewInput() *Input {
	return &Input{keys: core.NewKeyState()}
}

// Store replaces the held keys.
func (in *Input) Store(keys core.KeyState) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.keys = keys
}

// RequestQuit makes the next PollEvents report quit.
func (in *Input) RequestQuit() {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.quit = true
}

// PollEvents implements core.InputSource.
func (in *Input) PollEvents() core.Events {
	in.mu.Lock()
	defer in.mu.Unlock()
	return core.Events{Quit: in.quit}
}

// KeyState implements core.InputSource.
func (in *Input) KeyState() core.KeyState {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.keys.Clone()
}

// sampler reads Ebitengine's keyboard and gamepads. Only call it from
// Update.
type sampler struct {
	bindings Bindings
	gamepads bool
	ids      []ebiten.GamepadID
}

// sample returns the held paddle keys and whether a quit key is down.
func (s *sampler) sample() (core.KeyState, bool) {
	state := core.NewKeyState()
	for k, keys := range s.bindings.Paddles {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				state.Set(k)
				break
			}
		}
	}

	quit := false
	for _, key := range s.bindings.Quit {
		if ebiten.IsKeyPressed(key) {
			quit = true
		}
	}

	if s.gamepads {
		s.sampleGamepads(&state)
	}
	return state, quit
}

// sampleGamepads gives the first gamepad the left paddle and the second
// the right paddle.
func (s *sampler) sampleGamepads(state *core.KeyState) {
	s.ids = ebiten.AppendGamepadIDs(s.ids[:0])
	sort.Slice(s.ids, func(i, j int) bool { return s.ids[i] < s.ids[j] })

	sides := [][2]core.Key{
		{core.KeyLeftUp, core.KeyLeftDown},
		{core.KeyRightUp, core.KeyRightDown},
	}
	for i, id := range s.ids {
		if i >= len(sides) {
			break
		}
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		up, down := sides[i][0], sides[i][1]
		vertical := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)

		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftTop) || vertical < -analogDeadzone {
			state.Set(up)
		}
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftBottom) || vertical > analogDeadzone {
			state.Set(down)
		}
	}
}
