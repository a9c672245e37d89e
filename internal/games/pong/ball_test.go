package pong

import "testing"

func TestNewBallServesRightAtMaxSpeed(t *testing.T) {
	b := NewBall(350, 200, BallRadius)
	if b.XVel != BallMaxVel {
		t.Errorf("initial XVel = %f, expected %d", b.XVel, BallMaxVel)
	}
	if b.YVel != 0 {
		t.Errorf("initial YVel = %f, expected 0", b.YVel)
	}
}

func TestBallMove(t *testing.T) {
	b := NewBall(350, 200, BallRadius)
	b.YVel = -3

	b.Move()
	if b.X != 355 || b.Y != 197 {
		t.Errorf("Move() position = (%f, %f), expected (355, 197)", b.X, b.Y)
	}
}

func TestBallReset(t *testing.T) {
	tests := []struct {
		name  string
		xVel  float64
		yVel  float64
		wantX float64
	}{
		{"moving right", 5, 2.5, -5},
		{"moving left", -5, -4, 5},
		{"no vertical speed", 5, 0, -5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBall(350, 200, BallRadius)
			b.X, b.Y = -12, 33
			b.XVel, b.YVel = tc.xVel, tc.yVel

			b.Reset()

			if b.X != 350 || b.Y != 200 {
				t.Errorf("Reset position = (%f, %f), expected (350, 200)", b.X, b.Y)
			}
			if b.YVel != 0 {
				t.Errorf("Reset YVel = %f, expected 0", b.YVel)
			}
			if b.XVel != tc.wantX {
				t.Errorf("Reset XVel = %f, expected %f", b.XVel, tc.wantX)
			}
		})
	}
}
