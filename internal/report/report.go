// Package report describes a template for the --report and --json modes
// and the web API.
package report

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize/english"

	"justfetch/internal/color"
	"justfetch/internal/model"
)

// Report is the inspection of one template, optionally with the facts it
// would be filled with.
type Report struct {
	Version    string           `json:"version"`
	Template   string           `json:"template"`
	Default    bool             `json:"default_template"`
	Inspection model.Inspection `json:"inspection"`
	Facts      *model.Facts     `json:"facts,omitempty"`
}

// New assembles a Report. facts may be nil when collection failed or was
// not requested.
func New(templatePath string, isDefault bool, in model.Inspection, facts *model.Facts) Report {
	return Report{
		Version:    model.Version,
		Template:   templatePath,
		Default:    isDefault,
		Inspection: in,
		Facts:      facts,
	}
}

// Generate renders r as plain text. Verbose adds the full color markup of
// every span.
func Generate(r Report, verbose bool) string {
	var sb strings.Builder
	in := r.Inspection

	sb.WriteString("JustFetch Template Report\n")
	sb.WriteString("=========================\n")
	fmt.Fprintf(&sb, "Version:  %s\n", r.Version)
	if r.Default {
		fmt.Fprintf(&sb, "Template: %s (not found, built-in default used)\n", r.Template)
	} else {
		fmt.Fprintf(&sb, "Template: %s\n", r.Template)
	}

	fmt.Fprintf(&sb, "\nCommands: %s, %s\n",
		english.Plural(len(in.Directives), "directive", ""),
		english.Plural(len(in.Commands), "distinct command", ""))
	for _, d := range in.Directives {
		icon := model.IconOK
		if d.Cached {
			icon = model.IconCached
		}
		fmt.Fprintf(&sb, "  %s line %-4d %s\n", icon, d.Line, d.Command)
	}

	fmt.Fprintf(&sb, "\nPlaceholders: %s\n", english.Plural(len(in.Tags)+len(in.UnknownTags), "tag", ""))
	width := 0
	for _, tag := range append(append([]string{}, in.Tags...), in.UnknownTags...) {
		if len(tag) > width {
			width = len(tag)
		}
	}
	for _, tag := range in.Tags {
		value := "(not collected)"
		if r.Facts != nil {
			value, _ = r.Facts.Value(tag)
		}
		fmt.Fprintf(&sb, "  %s [%s]%s = %s\n", model.IconOK, tag, pad(tag, width), value)
	}
	for _, tag := range in.UnknownTags {
		fmt.Fprintf(&sb, "  %s [%s]%s   unknown, left as written\n", model.IconUnknown, tag, pad(tag, width))
	}

	fmt.Fprintf(&sb, "\nColors: %s\n", english.Plural(len(in.ColorSpans), "span", ""))
	for _, c := range in.ColorSpans {
		fmt.Fprintf(&sb, "  %s line %-4d %s %q\n", model.IconColor, c.Line, color.Hex(c.R, c.G, c.B), c.Text)
		if verbose {
			fmt.Fprintf(&sb, "           %s\n", c.Span)
		}
	}

	if verbose {
		sb.WriteString("\nLegend:\n")
		fmt.Fprintf(&sb, "  %s  command output reused from an earlier line\n", model.IconCached)
		fmt.Fprintf(&sb, "  %s  bracketed name that is not a fact tag\n", model.IconUnknown)
		fmt.Fprintf(&sb, "  %s  color markup span\n", model.IconColor)
	}

	return sb.String()
}

func pad(tag string, width int) string {
	return strings.Repeat(" ", width-len(tag))
}
