package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MsgRendered carries a completed resolution.
type MsgRendered struct {
	Output  string
	Elapsed time.Duration
	At      time.Time
}

// MsgError indicates a resolution failed.
type MsgError struct {
	Err error
	At  time.Time
}

// MsgTick fires every refresh interval.
type MsgTick time.Time

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		m.OutputViewport.Width = msg.Width - 2
		m.OutputViewport.Height = msg.Height - 4 // minus title/footer
		if m.OutputViewport.Height < 1 {
			m.OutputViewport.Height = 1
		}
		return m, nil

	case MsgRendered:
		m.Loading = false
		m.Err = nil
		m.Output = msg.Output
		m.Elapsed = msg.Elapsed
		m.LastRun = msg.At
		m.RunCount++
		m.OutputViewport.SetContent(m.Output)
		return m, nil

	case MsgError:
		// Keep the last good output on screen
		m.Loading = false
		m.Err = msg.Err
		m.LastRun = msg.At
		m.RunCount++
		return m, nil

	case MsgTick:
		next := m.tickCmd()
		if m.Paused || m.Loading {
			return m, next
		}
		m.Loading = true
		return m, tea.Batch(m.renderCmd(), next)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			if m.ShowHelp {
				m.ShowHelp = false
				return m, nil
			}
			return m, tea.Quit
		case "?":
			m.ShowHelp = !m.ShowHelp
			return m, nil
		case "p", " ":
			m.Paused = !m.Paused
			return m, nil
		case "r":
			if m.Loading {
				return m, nil
			}
			m.Loading = true
			return m, m.renderCmd()
		}
	}

	m.OutputViewport, cmd = m.OutputViewport.Update(msg)
	return m, cmd
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.renderCmd(), m.tickCmd())
}

func (m AppModel) renderCmd() tea.Cmd {
	render, ctx := m.Render, m.Ctx
	return func() tea.Msg {
		start := time.Now()
		out, err := render(ctx)
		if err != nil {
			return MsgError{Err: err, At: time.Now()}
		}
		return MsgRendered{Output: out, Elapsed: time.Since(start), At: time.Now()}
	}
}

func (m AppModel) tickCmd() tea.Cmd {
	return tea.Tick(m.Interval, func(t time.Time) tea.Msg {
		return MsgTick(t)
	})
}
