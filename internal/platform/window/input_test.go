package window

import (
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/pong/internal/config"
	"github.com/vovakirdan/pong/internal/core"
)

func TestResolveDefaultBindings(t *testing.T) {
	b, err := ResolveBindings(config.Default().Window.Keys)
	if err != nil {
		t.Fatalf("ResolveBindings: %v", err)
	}

	tests := []struct {
		key  core.Key
		want ebiten.Key
	}{
		{core.KeyLeftUp, ebiten.KeyW},
		{core.KeyLeftDown, ebiten.KeyS},
		{core.KeyRightUp, ebiten.KeyArrowUp},
		{core.KeyRightDown, ebiten.KeyArrowDown},
	}
	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			keys := b.Paddles[tt.key]
			if len(keys) != 1 || keys[0] != tt.want {
				t.Errorf("keys = %v, want [%v]", keys, tt.want)
			}
		})
	}
	if len(b.Quit) != 1 || b.Quit[0] != ebiten.KeyEscape {
		t.Errorf("quit = %v", b.Quit)
	}
}

func TestResolveBindingsUnknownKey(t *testing.T) {
	kb := config.Default().Window.Keys
	kb.RightUp = []string{"NotAKey"}

	_, err := ResolveBindings(kb)
	if err == nil || !strings.Contains(err.Error(), "NotAKey") {
		t.Errorf("error = %v, want unknown key", err)
	}
}

func TestInputStoreAndQuit(t *testing.T) {
	in := NewInput()
	if idle := in.KeyState(); idle.Held(core.KeyLeftUp) || idle.Held(core.KeyRightDown) || in.PollEvents().Quit {
		t.Fatal("new input not idle")
	}

	held := core.NewKeyState(core.KeyLeftUp, core.KeyRightDown)
	in.Store(held)
	got := in.KeyState()
	if !got.Held(core.KeyLeftUp) || !got.Held(core.KeyRightDown) || got.Held(core.KeyLeftDown) {
		t.Errorf("KeyState = %+v", got)
	}

	// Readers get a copy
	got.Set(core.KeyLeftDown)
	if in.KeyState().Held(core.KeyLeftDown) {
		t.Error("KeyState shares its map")
	}

	in.RequestQuit()
	if !in.PollEvents().Quit {
		t.Error("quit not reported")
	}
}

func TestTextOrigin(t *testing.T) {
	f, err := loadFace()
	if err != nil {
		t.Fatalf("loadFace: %v", err)
	}

	x, y := textOrigin(f, "Left Player Won!", 350, 200, true, true)
	if x >= 350 || x < 0 {
		t.Errorf("centred x = %d, want left of 350", x)
	}
	if y <= 200-fontSize || y >= 200+fontSize {
		t.Errorf("baseline y = %d, want near 200", y)
	}

	lx, ly := textOrigin(f, "7", 10, 20, false, false)
	if lx != 10 || ly <= 20 {
		t.Errorf("top-left origin = %d,%d", lx, ly)
	}
}
