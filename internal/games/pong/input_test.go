package pong

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/pong/internal/core"
)

func TestMovePaddlesBounds(t *testing.T) {
	tests := []struct {
		name  string
		keys  []core.Key
		leftY float64
		wantY float64
	}{
		{"up in open field", []core.Key{core.KeyLeftUp}, 150, 142},
		{"down in open field", []core.Key{core.KeyLeftDown}, 150, 158},
		{"up lands exactly on top", []core.Key{core.KeyLeftUp}, 8, 0},
		{"up blocked near top", []core.Key{core.KeyLeftUp}, 4, 4},
		{"down lands exactly on bottom", []core.Key{core.KeyLeftDown}, 292, 300},
		{"down blocked near bottom", []core.Key{core.KeyLeftDown}, 296, 296},
		{"both held cancel out", []core.Key{core.KeyLeftUp, core.KeyLeftDown}, 150, 150},
		{"both held at top moves down", []core.Key{core.KeyLeftUp, core.KeyLeftDown}, 0, 8},
		{"both held at bottom cancel out", []core.Key{core.KeyLeftUp, core.KeyLeftDown}, 300, 300},
		{"nothing held", nil, 150, 150},
		{"other paddle's keys", []core.Key{core.KeyRightUp}, 150, 150},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			left, right := newTestPaddles()
			left.Y = tc.leftY

			MovePaddles(core.NewKeyState(tc.keys...), left, right, Height)

			if left.Y != tc.wantY {
				t.Errorf("left Y = %f, expected %f", left.Y, tc.wantY)
			}
		})
	}
}

func TestMovePaddlesIndependent(t *testing.T) {
	left, right := newTestPaddles()

	MovePaddles(core.NewKeyState(core.KeyLeftUp, core.KeyRightDown), left, right, Height)

	if left.Y != 142 {
		t.Errorf("left Y = %f, expected 142", left.Y)
	}
	if right.Y != 158 {
		t.Errorf("right Y = %f, expected 158", right.Y)
	}
}

func TestMovePaddlesStaysInPlayfield(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	keys := []core.Key{core.KeyLeftUp, core.KeyLeftDown, core.KeyRightUp, core.KeyRightDown}
	left, right := newTestPaddles()

	for frame := 0; frame < 5000; frame++ {
		var held []core.Key
		for _, k := range keys {
			if rng.Intn(2) == 0 {
				held = append(held, k)
			}
		}

		MovePaddles(core.NewKeyState(held...), left, right, Height)

		for _, p := range []*Paddle{left, right} {
			if p.Y < 0 || p.Y > Height-PaddleHeight {
				t.Fatalf("frame %d: paddle Y = %f outside [0, %d]", frame, p.Y, Height-PaddleHeight)
			}
		}
	}
}
