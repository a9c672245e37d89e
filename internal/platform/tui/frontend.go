package tui

import (
	"context"
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/vovakirdan/pong/internal/registry"
)

// ID is the registry ID of the terminal frontend.
const ID = "tui"

func init() {
	registry.Register(ID, func() registry.Frontend { return Frontend{} })
}

// Frontend plays pong in the local terminal.
type Frontend struct{}

// ID implements registry.Frontend.
func (Frontend) ID() string { return ID }

// Title implements registry.Frontend.
func (Frontend) Title() string { return "Terminal (Bubble Tea)" }

// Run implements registry.Frontend.
func (Frontend) Run(ctx context.Context, opts registry.Options) error {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		opts.Runtime.ScreenW = w
		opts.Runtime.ScreenH = h
	}

	model := NewModel(ctx, opts, ID)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	if m, ok := final.(Model); ok {
		return m.Err()
	}
	return nil
}
