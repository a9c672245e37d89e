// Package engine runs the fixed-rate game loop that drives a pong match
// through injected collaborators: a Renderer, an InputSource and a Clock.
package engine

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pong/internal/core"
	"github.com/vovakirdan/pong/internal/games/pong"
)

// Loop drives one RoundController frame by frame.
type Loop struct {
	renderer core.Renderer
	input    core.InputSource
	clock    core.Clock
	logger   *log.Logger
	now      func() time.Time

	// Results receives every finished match. Optional.
	Results ResultSaver
	// Session and Frontend label the saved results.
	Session  string
	Frontend string
}

// NewLoop creates a loop over the given collaborators. A nil logger
// discards output.
func NewLoop(r core.Renderer, in core.InputSource, clk core.Clock, logger *log.Logger) *Loop {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loop{
		renderer: r,
		input:    in,
		clock:    clk,
		logger:   logger,
		now:      time.Now,
	}
}

// Run simulates and renders frames until the input source reports quit
// (returns nil) or ctx is done (returns ctx.Err()).
func (l *Loop) Run(ctx context.Context, rc *pong.RoundController) error {
	var elapsed time.Duration

	l.logger.Info("match started", "session", l.Session)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		elapsed += l.clock.Tick(pong.FPS)

		if l.input.PollEvents().Quit {
			l.logger.Info("quit requested", "session", l.Session, "frame", rc.Frame())
			return nil
		}

		result := rc.Step(l.input.KeyState())
		l.logStep(rc, result)

		rc.Draw(l.renderer)

		if result.State != pong.StateMatchWon {
			l.renderer.Present()
			continue
		}

		rc.DrawBanner(l.renderer)
		l.renderer.Present()
		l.finishMatch(rc, elapsed)

		if err := l.clock.Delay(ctx, pong.WinDelay); err != nil {
			return err
		}
		rc.ResetMatch()
		elapsed = 0
		l.logger.Info("match started", "session", l.Session)
	}
}

// logStep reports contacts at debug level and points at info level.
func (l *Loop) logStep(rc *pong.RoundController, result pong.StepResult) {
	if result.Contact.Has(pong.ContactLeftPaddle) || result.Contact.Has(pong.ContactRightPaddle) {
		b := rc.Ball()
		l.logger.Debug("paddle hit", "frame", rc.Frame(), "y", b.Y, "yVel", b.YVel)
	}
	if result.Contact.Has(pong.ContactWall) {
		l.logger.Debug("wall bounce", "frame", rc.Frame())
	}
	if result.Scored != pong.SideNone {
		score := rc.Score()
		l.logger.Info("point",
			"side", result.Scored,
			"left", score.Left,
			"right", score.Right,
		)
	}
}

// finishMatch logs the winner and hands the result to the saver.
func (l *Loop) finishMatch(rc *pong.RoundController, elapsed time.Duration) {
	score := rc.Score()
	l.logger.Info("match won",
		"winner", rc.Winner(),
		"left", score.Left,
		"right", score.Right,
		"frames", rc.Frame(),
	)

	if l.Results == nil {
		return
	}
	err := l.Results.SaveMatchResult(MatchResult{
		Session:    l.Session,
		Frontend:   l.Frontend,
		Winner:     rc.Winner(),
		Score:      score,
		Frames:     rc.Frame(),
		Duration:   elapsed,
		FinishedAt: l.now(),
	})
	if err != nil {
		// Best-effort, the next match starts regardless
		l.logger.Warn("could not save match result", "error", err)
	}
}
