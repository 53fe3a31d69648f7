package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// RenderFunc resolves the template once and returns the display text.
type RenderFunc func(ctx context.Context) (string, error)

// AppModel holds the watch-mode state.
type AppModel struct {
	// Data
	Output   string
	Err      error
	Loading  bool
	LastRun  time.Time
	Elapsed  time.Duration
	RunCount int

	// Config
	Render   RenderFunc
	Interval time.Duration
	Ctx      context.Context

	// UI State
	Paused     bool
	ShowHelp   bool
	WindowSize tea.WindowSizeMsg

	// Components
	OutputViewport viewport.Model
}

// InitialModel returns the initial state. render is called once at start
// and again every interval until the program exits.
func InitialModel(ctx context.Context, render RenderFunc, interval time.Duration) AppModel {
	return AppModel{
		Render:         render,
		Interval:       interval,
		Ctx:            ctx,
		Loading:        true,
		OutputViewport: viewport.New(80, 20),
	}
}
