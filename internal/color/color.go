// Package color renders text in 24-bit foreground colors for terminal output.
package color

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Mode selects when color escape sequences are emitted.
type Mode string

const (
	ModeAuto   Mode = "auto"
	ModeAlways Mode = "always"
	ModeNever  Mode = "never"
)

// ParseMode validates a mode name from configuration.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeAuto, ModeAlways, ModeNever:
		return m, nil
	}
	return "", fmt.Errorf("unknown color mode %q (want auto, always or never)", s)
}

// Colorizer renders text with an RGB foreground color.
type Colorizer struct {
	renderer *lipgloss.Renderer
}

// New returns a Colorizer for output written to w. In auto mode color is
// used only when w is a terminal and noColor is false.
func New(mode Mode, w io.Writer, noColor bool) *Colorizer {
	profile := termenv.Ascii
	switch mode {
	case ModeAlways:
		profile = termenv.TrueColor
	case ModeAuto:
		if !noColor && isTerminal(w) {
			profile = termenv.TrueColor
		}
	}
	return WithProfile(profile)
}

// WithProfile returns a Colorizer that always renders with profile.
func WithProfile(profile termenv.Profile) *Colorizer {
	renderer := lipgloss.NewRenderer(io.Discard)
	renderer.SetColorProfile(profile)
	return &Colorizer{renderer: renderer}
}

// TrueColor returns a Colorizer that always emits 24-bit escape sequences.
func TrueColor() *Colorizer {
	return WithProfile(termenv.TrueColor)
}

// Plain returns a Colorizer that returns text unstyled.
func Plain() *Colorizer {
	return WithProfile(termenv.Ascii)
}

// Colorize renders text with the foreground color r, g, b.
func (c *Colorizer) Colorize(text string, r, g, b uint8) string {
	return c.renderer.NewStyle().
		Foreground(lipgloss.Color(Hex(r, g, b))).
		TabWidth(lipgloss.NoTabConversion).
		Render(text)
}

// Hex formats an RGB triple as #rrggbb.
func Hex(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
