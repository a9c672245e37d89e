package pong

import "github.com/vovakirdan/pong/internal/core"

// State is the match state.
type State int

const (
	StatePlaying  State = iota
	StateMatchWon       // A side reached WinningScore; waiting for ResetMatch
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StateMatchWon:
		return "MatchWon"
	default:
		return "Unknown"
	}
}

// Side identifies a player.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	default:
		return "None"
	}
}

// Score holds both players' points.
type Score struct {
	Left  int
	Right int
}

// StepResult describes what happened during one frame.
type StepResult struct {
	Contact Contact
	Scored  Side // Side that won a point this frame, or SideNone
	State   State
}

// RoundController owns the paddles, the ball and the score for one match and
// advances them frame by frame.
type RoundController struct {
	left  *Paddle
	right *Paddle
	ball  *Ball

	score  Score
	state  State
	winner Side
	frame  int

	width  float64
	height float64
}

// New creates a controller with both paddles centered vertically and the
// ball in the middle of the playfield.
func New() *RoundController {
	paddleY := float64(Height/2 - PaddleHeight/2)
	return &RoundController{
		left:   NewPaddle(PaddleOffset, paddleY, PaddleWidth, PaddleHeight),
		right:  NewPaddle(Width-PaddleOffset-PaddleWidth, paddleY, PaddleWidth, PaddleHeight),
		ball:   NewBall(Width/2, Height/2, BallRadius),
		width:  Width,
		height: Height,
	}
}

// Step advances the match by one frame. It does nothing once the match is
// won until ResetMatch is called.
func (rc *RoundController) Step(keys core.KeyState) StepResult {
	if rc.state == StateMatchWon {
		return StepResult{State: rc.state}
	}
	rc.frame++

	MovePaddles(keys, rc.left, rc.right, rc.height)
	rc.ball.Move()
	result := StepResult{
		Contact: Resolve(rc.ball, rc.left, rc.right, rc.height),
	}

	// Scoring uses the ball center, not its edge
	if rc.ball.X < 0 {
		rc.score.Right++
		rc.ball.Reset()
		result.Scored = SideRight
	} else if rc.ball.X > rc.width {
		rc.score.Left++
		rc.ball.Reset()
		result.Scored = SideLeft
	}

	if rc.score.Left >= WinningScore {
		rc.state = StateMatchWon
		rc.winner = SideLeft
	} else if rc.score.Right >= WinningScore {
		rc.state = StateMatchWon
		rc.winner = SideRight
	}

	result.State = rc.state
	return result
}

// ResetMatch starts a new match: ball and paddles return to their original
// positions and the score goes back to 0-0.
func (rc *RoundController) ResetMatch() {
	rc.ball.Reset()
	rc.left.Reset()
	rc.right.Reset()
	rc.score = Score{}
	rc.state = StatePlaying
	rc.winner = SideNone
	rc.frame = 0
}

// State returns the current match state.
func (rc *RoundController) State() State {
	return rc.state
}

// Score returns the current score.
func (rc *RoundController) Score() Score {
	return rc.score
}

// Winner returns the side that won the match, or SideNone while playing.
func (rc *RoundController) Winner() Side {
	return rc.winner
}

// Frame returns the number of frames simulated in the current match.
func (rc *RoundController) Frame() int {
	return rc.frame
}

// Ball returns the ball.
func (rc *RoundController) Ball() *Ball {
	return rc.ball
}

// Left returns the left paddle.
func (rc *RoundController) Left() *Paddle {
	return rc.left
}

// Right returns the right paddle.
func (rc *RoundController) Right() *Paddle {
	return rc.right
}

// Banner returns the win message for the finished match.
func (rc *RoundController) Banner() string {
	switch rc.winner {
	case SideLeft:
		return "Left Player Won!"
	case SideRight:
		return "Right Player Won!"
	default:
		return ""
	}
}
