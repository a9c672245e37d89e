// Package pong implements the two-player Pong simulation: paddles, ball,
// collision resolution, input mapping and the round/match controller.
// Rendering and input polling live in the frontends.
package pong

import "time"

// Playfield and rule constants.
const (
	Width  = 700
	Height = 400

	PaddleWidth  = 20
	PaddleHeight = 100
	PaddleOffset = 10 // Distance from the side wall
	PaddleVel    = 8

	BallRadius = 7
	BallMaxVel = 5

	FPS          = 60
	WinningScore = 10
	WinDelay     = 5 * time.Second
)
