package pong

// Snapshot is a plain copy of the match state, safe to hand to other
// goroutines and log lines.
type Snapshot struct {
	Frame    int
	BallX    float64
	BallY    float64
	BallXVel float64
	BallYVel float64
	LeftY    float64
	RightY   float64
	Score    Score
	State    State
	Winner   Side
}

// Snapshot returns the current match state.
func (rc *RoundController) Snapshot() Snapshot {
	return Snapshot{
		Frame:    rc.frame,
		BallX:    rc.ball.X,
		BallY:    rc.ball.Y,
		BallXVel: rc.ball.XVel,
		BallYVel: rc.ball.YVel,
		LeftY:    rc.left.Y,
		RightY:   rc.right.Y,
		Score:    rc.score,
		State:    rc.state,
		Winner:   rc.winner,
	}
}

// Restore overwrites the match state from a snapshot. Original positions
// used by the resets are kept.
func (rc *RoundController) Restore(snap Snapshot) {
	rc.frame = snap.Frame
	rc.ball.X = snap.BallX
	rc.ball.Y = snap.BallY
	rc.ball.XVel = snap.BallXVel
	rc.ball.YVel = snap.BallYVel
	rc.left.Y = snap.LeftY
	rc.right.Y = snap.RightY
	rc.score = snap.Score
	rc.state = snap.State
	rc.winner = snap.Winner
}
