// Package tui provides the Bubble Tea frontend and the Wish SSH server.
// The game loop runs on its own goroutine and hands finished frames to the
// Bubble Tea program through a mailbox.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pong/internal/engine"
	"github.com/vovakirdan/pong/internal/games/pong"
)

// frameMsg carries one rendered playfield.
type frameMsg string

// loopDoneMsg is sent when the game loop returns.
type loopDoneMsg struct {
	err error
}

// waitForFrame returns a command that waits for the next presented frame.
func waitForFrame(frames <-chan string) tea.Cmd {
	return func() tea.Msg {
		frame, ok := <-frames
		if !ok {
			return nil
		}
		return frameMsg(frame)
	}
}

// runLoop returns a command that runs the game loop to completion and
// closes the renderer's mailbox afterwards.
func runLoop(ctx context.Context, loop *engine.Loop, match *pong.RoundController, r *ScreenRenderer) tea.Cmd {
	return func() tea.Msg {
		err := loop.Run(ctx, match)
		r.Close()
		return loopDoneMsg{err: err}
	}
}
