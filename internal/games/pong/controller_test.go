package pong

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/pong/internal/core"
)

func TestNewLayout(t *testing.T) {
	rc := New()

	if rc.Left().X != 10 || rc.Left().Y != 150 {
		t.Errorf("left paddle at (%f, %f), expected (10, 150)", rc.Left().X, rc.Left().Y)
	}
	if rc.Right().X != 670 || rc.Right().Y != 150 {
		t.Errorf("right paddle at (%f, %f), expected (670, 150)", rc.Right().X, rc.Right().Y)
	}
	if rc.Ball().X != 350 || rc.Ball().Y != 200 {
		t.Errorf("ball at (%f, %f), expected (350, 200)", rc.Ball().X, rc.Ball().Y)
	}
	if rc.State() != StatePlaying {
		t.Errorf("State() = %v, expected Playing", rc.State())
	}
}

func TestStepRightScores(t *testing.T) {
	rc := New()
	snap := rc.Snapshot()
	snap.BallX, snap.BallY = 0, 50 // clear of the left paddle
	snap.BallXVel = -5
	rc.Restore(snap)

	result := rc.Step(core.NewKeyState())

	if result.Scored != SideRight {
		t.Errorf("Scored = %v, expected Right", result.Scored)
	}
	if rc.Score() != (Score{Left: 0, Right: 1}) {
		t.Errorf("Score() = %+v, expected 0-1", rc.Score())
	}
	b := rc.Ball()
	if b.X != 350 || b.Y != 200 {
		t.Errorf("ball at (%f, %f), expected (350, 200)", b.X, b.Y)
	}
	if b.XVel != 5 || b.YVel != 0 {
		t.Errorf("ball velocity (%f, %f), expected (5, 0)", b.XVel, b.YVel)
	}
}

func TestStepLeftScores(t *testing.T) {
	rc := New()
	snap := rc.Snapshot()
	snap.BallX, snap.BallY = 700, 50
	snap.BallXVel = 5
	rc.Restore(snap)

	result := rc.Step(core.NewKeyState())

	if result.Scored != SideLeft {
		t.Errorf("Scored = %v, expected Left", result.Scored)
	}
	if rc.Score() != (Score{Left: 1, Right: 0}) {
		t.Errorf("Score() = %+v, expected 1-0", rc.Score())
	}
	if rc.Ball().XVel != -5 {
		t.Errorf("serve XVel = %f, expected -5", rc.Ball().XVel)
	}
}

func TestStepBallOnEdgeDoesNotScore(t *testing.T) {
	rc := New()
	snap := rc.Snapshot()
	snap.BallX, snap.BallY = 5, 50
	snap.BallXVel = -5
	rc.Restore(snap)

	result := rc.Step(core.NewKeyState())

	// Center is exactly 0: not yet out
	if result.Scored != SideNone {
		t.Errorf("Scored = %v, expected None", result.Scored)
	}
	if rc.Ball().X != 0 {
		t.Errorf("ball X = %f, expected 0", rc.Ball().X)
	}
}

func TestStepOrderPaddleBeforeCollision(t *testing.T) {
	rc := New()
	snap := rc.Snapshot()
	// One frame from the left paddle face, just below its bottom edge
	snap.BallX, snap.BallY = 42, 255
	snap.BallXVel = -5
	rc.Restore(snap)

	// Moving the paddle down first brings the ball into its span
	result := rc.Step(core.NewKeyState(core.KeyLeftDown))

	if !result.Contact.Has(ContactLeftPaddle) {
		t.Fatalf("expected left paddle contact, got %v", result.Contact)
	}
	if rc.Ball().XVel != 5 {
		t.Errorf("XVel = %f, expected 5", rc.Ball().XVel)
	}
}

func TestMatchWonAndReset(t *testing.T) {
	rc := New()
	snap := rc.Snapshot()
	snap.Score = Score{Left: 9, Right: 4}
	snap.BallX, snap.BallY = 700, 50
	snap.BallXVel = 5
	rc.Restore(snap)
	rc.Left().Y = 0
	rc.Right().Y = 300

	result := rc.Step(core.NewKeyState())

	if result.State != StateMatchWon || rc.State() != StateMatchWon {
		t.Fatalf("State = %v, expected MatchWon", rc.State())
	}
	if rc.Winner() != SideLeft {
		t.Errorf("Winner() = %v, expected Left", rc.Winner())
	}
	if rc.Banner() != "Left Player Won!" {
		t.Errorf("Banner() = %q", rc.Banner())
	}

	// Frozen until reset
	frame := rc.Frame()
	ballX := rc.Ball().X
	rc.Step(core.NewKeyState(core.KeyLeftDown))
	if rc.Frame() != frame || rc.Ball().X != ballX || rc.Left().Y != 0 {
		t.Error("Step should not advance a won match")
	}

	rc.ResetMatch()

	if rc.State() != StatePlaying || rc.Winner() != SideNone {
		t.Errorf("after reset State=%v Winner=%v", rc.State(), rc.Winner())
	}
	if rc.Score() != (Score{}) {
		t.Errorf("after reset Score() = %+v, expected 0-0", rc.Score())
	}
	if rc.Left().Y != 150 || rc.Right().Y != 150 {
		t.Errorf("paddles not reset: left %f right %f", rc.Left().Y, rc.Right().Y)
	}
	b := rc.Ball()
	if b.X != 350 || b.Y != 200 || b.YVel != 0 {
		t.Errorf("ball not reset: (%f, %f) yVel %f", b.X, b.Y, b.YVel)
	}
	// Point reset served left (-5); the match reset flips it again
	if b.XVel != 5 {
		t.Errorf("ball XVel = %f, expected 5", b.XVel)
	}
	if rc.Frame() != 0 {
		t.Errorf("Frame() = %d, expected 0", rc.Frame())
	}
}

func TestRightWinsBanner(t *testing.T) {
	rc := New()
	snap := rc.Snapshot()
	snap.Score = Score{Left: 3, Right: 9}
	snap.BallX, snap.BallY = 0, 50
	snap.BallXVel = -5
	rc.Restore(snap)

	rc.Step(core.NewKeyState())

	if rc.Winner() != SideRight || rc.Banner() != "Right Player Won!" {
		t.Errorf("Winner=%v Banner=%q", rc.Winner(), rc.Banner())
	}
}

func TestSimulationInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	keys := []core.Key{core.KeyLeftUp, core.KeyLeftDown, core.KeyRightUp, core.KeyRightDown}
	rc := New()
	points := 0

	for frame := 0; frame < 20000; frame++ {
		var held []core.Key
		for _, k := range keys {
			if rng.Intn(3) == 0 {
				held = append(held, k)
			}
		}

		result := rc.Step(core.NewKeyState(held...))
		if result.Scored != SideNone {
			points++
		}
		if rc.State() == StateMatchWon {
			rc.ResetMatch()
		}

		if math.Abs(rc.Ball().XVel) != BallMaxVel {
			t.Fatalf("frame %d: |XVel| = %f", frame, math.Abs(rc.Ball().XVel))
		}
		for _, p := range []*Paddle{rc.Left(), rc.Right()} {
			if p.Y < 0 || p.Y > Height-PaddleHeight {
				t.Fatalf("frame %d: paddle Y = %f out of bounds", frame, p.Y)
			}
		}
		s := rc.Score()
		if s.Left < 0 || s.Right < 0 || s.Left >= WinningScore || s.Right >= WinningScore {
			t.Fatalf("frame %d: score %+v out of range", frame, s)
		}
	}

	if points == 0 {
		t.Error("expected at least one point in 20000 random frames")
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		rng := rand.New(rand.NewSource(99))
		rc := New()
		for i := 0; i < 3000; i++ {
			var ks core.KeyState
			if rng.Intn(2) == 0 {
				ks.Set(core.KeyLeftUp)
			}
			if rng.Intn(2) == 0 {
				ks.Set(core.KeyRightDown)
			}
			rc.Step(ks)
			if rc.State() == StateMatchWon {
				rc.ResetMatch()
			}
		}
		return rc.Snapshot()
	}

	if a, b := run(), run(); a != b {
		t.Errorf("same inputs gave different states:\n%+v\n%+v", a, b)
	}
}
