package engine

import (
	"regexp"
	"strings"

	"justfetch/internal/model"
)

var bracketName = regexp.MustCompile(`\[([A-Za-z0-9_]+)\]`)

// Inspect reports the markup in template without running commands or
// collecting facts. Grammar errors are returned as Resolve would return
// them.
func (r *Resolver) Inspect(template string) (model.Inspection, error) {
	var result model.Inspection

	if strings.Contains(template, r.marker) {
		if err := r.checkSentinel(template); err != nil {
			return result, err
		}
		directives, err := r.parseDirectives(strings.Split(template, "\n"))
		if err != nil {
			return result, err
		}
		seen := make(map[string]bool)
		for _, d := range directives {
			result.Directives = append(result.Directives, model.Directive{
				Line:    d.line,
				Command: d.command,
				Cached:  seen[d.command],
			})
			seen[d.command] = true
		}
		result.Commands = distinctCommands(directives)
	}

	seenTags := make(map[string]bool)
	for _, m := range bracketName.FindAllStringSubmatch(template, -1) {
		name := m[1]
		if seenTags[name] {
			continue
		}
		seenTags[name] = true
		if model.IsTag(name) {
			result.Tags = append(result.Tags, name)
		} else {
			result.UnknownTags = append(result.UnknownTags, name)
		}
	}

	if strings.Contains(template, colorOpener) {
		directives, err := parseColorDirectives(template)
		if err != nil {
			return result, err
		}
		for _, d := range directives {
			result.ColorSpans = append(result.ColorSpans, model.ColorSpan{
				Line: lineOf(template, d.start),
				Span: template[d.start:d.end],
				Text: d.text,
				R:    d.r,
				G:    d.g,
				B:    d.b,
			})
		}
	}

	return result, nil
}
