package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"justfetch/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	adviceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")) // Orange

	pausedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
)

func (m AppModel) View() string {
	if m.ShowHelp {
		return m.renderHelpDialog()
	}
	if m.RunCount == 0 {
		return "\n  Resolving template... please wait.\n"
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("JustFetch " + model.Version))
	sb.WriteString(" ")
	sb.WriteString(m.status())
	sb.WriteString("\n")
	sb.WriteString(m.OutputViewport.View())
	sb.WriteString("\n")
	if m.Err != nil {
		sb.WriteString(adviceStyle.Render("Error: " + m.Err.Error()))
		sb.WriteString("\n")
	}
	sb.WriteString(dimStyle.Render("r refresh • p pause • ↑/↓ scroll • ? help • q quit"))
	return sb.String()
}

func (m AppModel) status() string {
	if m.Paused {
		return pausedStyle.Render("paused")
	}
	parts := []string{fmt.Sprintf("every %s", m.Interval)}
	if !m.LastRun.IsZero() {
		parts = append(parts, "updated "+humanize.Time(m.LastRun))
	}
	if m.Elapsed > 0 {
		parts = append(parts, "took "+m.Elapsed.Round(time.Millisecond).String())
	}
	if m.Loading {
		parts = append(parts, "refreshing…")
	}
	return dimStyle.Render(strings.Join(parts, " • "))
}

func (m AppModel) renderHelpDialog() string {
	w, h := m.WindowSize.Width, m.WindowSize.Height
	if w < 20 || h < 10 {
		return "Window too small"
	}

	helpWidth := w * 60 / 100
	if helpWidth < 40 {
		helpWidth = 40
	}
	if helpWidth > w-4 {
		helpWidth = w - 4
	}

	content := strings.Join([]string{
		titleStyle.Render("Watch Mode"),
		"",
		"The template is resolved again every " + m.Interval.String() + ".",
		"",
		"  r        refresh now",
		"  p/space  pause or resume refreshing",
		"  ↑/↓      scroll the output",
		"  ?/esc    close this help",
		"  q        quit",
	}, "\n")

	dialog := lipgloss.NewStyle().
		Width(helpWidth).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Padding(0, 1).
		Render(content)

	return lipgloss.Place(w, h,
		lipgloss.Center, lipgloss.Center,
		dialog,
	)
}
