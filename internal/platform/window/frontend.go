package window

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/pong/internal/engine"
	"github.com/vovakirdan/pong/internal/games/pong"
	"github.com/vovakirdan/pong/internal/registry"
)

// ID is the registry ID of the window frontend.
const ID = "window"

func init() {
	registry.Register(ID, func() registry.Frontend { return Frontend{} })
}

// Frontend plays pong in a desktop window.
type Frontend struct{}

// ID implements registry.Frontend.
func (Frontend) ID() string { return ID }

// Title implements registry.Frontend.
func (Frontend) Title() string { return "Desktop window (Ebitengine)" }

// Run implements registry.Frontend. It must be called from the main
// goroutine.
func (Frontend) Run(ctx context.Context, opts registry.Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	ws := opts.Settings.Window

	bindings, err := ResolveBindings(ws.Keys)
	if err != nil {
		return err
	}
	face, err := loadFace()
	if err != nil {
		// Scores and banner are skipped, the match still plays
		logger.Warn("could not load font", "error", err)
	}

	list := NewDisplayList()
	input := NewInput()

	loop := engine.NewLoop(list, input, engine.NewSystemClock(), logger)
	loop.Results = opts.Results
	loop.Session = opts.Runtime.Session
	loop.Frontend = ID

	loopCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan struct{})
	var loopErr error
	go func() {
		defer close(done)
		loopErr = loop.Run(loopCtx, pong.New())
	}()

	scale := ws.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowTitle(ws.Title)
	ebiten.SetWindowSize(int(pong.Width*scale), int(pong.Height*scale))
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(pong.FPS)

	game := &Game{
		list:    list,
		input:   input,
		sampler: sampler{bindings: bindings, gamepads: ws.Gamepads},
		face:    face,
		done:    done,
		stop:    cancel,
	}

	runErr := ebiten.RunGame(game)

	// The window may close before the loop noticed
	cancel()
	<-done

	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		return runErr
	}
	if errors.Is(loopErr, context.Canceled) && ctx.Err() == nil {
		return nil
	}
	return loopErr
}
