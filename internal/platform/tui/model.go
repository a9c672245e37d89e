package tui

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pong/internal/engine"
	"github.com/vovakirdan/pong/internal/games/pong"
	"github.com/vovakirdan/pong/internal/registry"
)

// footerHeight is the number of rows reserved for the help line.
const footerHeight = 1

const ledgerLimit = 50

// Model is the Bubble Tea model hosting one pong match loop.
type Model struct {
	keys     KeyMap
	help     help.Model
	keyboard *Keyboard
	renderer *ScreenRenderer
	loop     *engine.Loop
	match    *pong.RoundController
	ledger   LedgerReader
	logger   *log.Logger

	ctx    context.Context
	cancel context.CancelFunc

	frame      string
	width      int
	height     int
	showLedger bool
	quitting   bool
	err        error
}

// NewModel creates a model whose loop runs until quit or ctx is done.
// frontend labels the match results it saves.
func NewModel(ctx context.Context, opts registry.Options, frontend string) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	w := max(opts.Runtime.ScreenW, 1)
	h := max(opts.Runtime.ScreenH, footerHeight+1)

	keyboard := NewKeyboard(opts.Settings.Terminal.KeyHold)
	renderer := NewScreenRenderer(w, h-footerHeight)

	loop := engine.NewLoop(renderer, keyboard, engine.NewSystemClock(), logger)
	loop.Results = opts.Results
	loop.Session = opts.Runtime.Session
	loop.Frontend = frontend

	var ledger LedgerReader
	if lr, ok := opts.Results.(LedgerReader); ok {
		ledger = lr
	}

	hm := help.New()
	hm.Width = w

	loopCtx, cancel := context.WithCancel(ctx)

	return Model{
		keys:     NewKeyMap(opts.Settings.Terminal.Keys),
		help:     hm,
		keyboard: keyboard,
		renderer: renderer,
		loop:     loop,
		match:    pong.New(),
		ledger:   ledger,
		logger:   logger,
		ctx:      loopCtx,
		cancel:   cancel,
		width:    w,
		height:   h,
	}
}

// Init starts the game loop and the frame pump.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		runLoop(m.ctx, m.loop, m.match, m.renderer),
		waitForFrame(m.renderer.Frames()),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.renderer.Resize(msg.Width, msg.Height-footerHeight)
		return m, nil

	case frameMsg:
		m.frame = string(msg)
		return m, waitForFrame(m.renderer.Frames())

	case loopDoneMsg:
		m.cancel()
		if msg.err != nil && !errors.Is(msg.err, context.Canceled) {
			m.err = msg.err
			m.logger.Error("game loop stopped", "error", msg.err)
		}
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		// The loop may be inside the win delay, cancel wakes it
		m.keyboard.RequestQuit()
		m.cancel()
		return m, nil
	case key.Matches(msg, m.keys.Ledger):
		m.showLedger = !m.showLedger
		return m, nil
	}

	m.keyboard.Press(m.keys.PaddleKey(msg))
	return m, nil
}

// View renders the latest frame with the help footer, or the ledger.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	if m.showLedger {
		body = m.ledgerView()
	} else {
		body = m.frame
	}

	// Keep the footer on the last row
	lines := strings.Count(body, "\n") + 1
	if pad := m.height - footerHeight - lines; pad > 0 {
		body += strings.Repeat("\n", pad)
	}
	return body + "\n" + m.help.View(m.keys)
}

func (m Model) ledgerView() string {
	if m.ledger == nil {
		return RenderLedger(nil, m.height-footerHeight)
	}
	records, err := m.ledger.RecentMatches(ledgerLimit)
	if err != nil {
		m.logger.Warn("could not read match ledger", "error", err)
	}
	return RenderLedger(records, m.height-footerHeight)
}

// Err returns the error that stopped the loop, if any.
func (m Model) Err() error {
	return m.err
}
