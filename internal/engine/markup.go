package engine

import (
	"regexp"
	"strconv"
	"strings"

	"justfetch/internal/errors"
)

// colorOpener starts every color markup span.
const colorOpener = `rgb["`

// colorMarkup matches rgb["text", r, g, b]. The text capture is lazy so the
// first `",` ends it; channels are one to three digits.
var colorMarkup = regexp.MustCompile(`rgb\["(.*?)",\s*(\d{1,3}),\s*(\d{1,3}),\s*(\d{1,3})\]`)

// colorDirective is one parsed markup span, text[start:end] in the template.
type colorDirective struct {
	start, end int
	text       string
	r, g, b    uint8
}

// substituteColors replaces each color markup span with its colorized text.
func (r *Resolver) substituteColors(template string) (string, error) {
	if !strings.Contains(template, colorOpener) {
		r.logger.Debug().Msg("No color markup, skipping")
		return template, nil
	}

	directives, err := parseColorDirectives(template)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	last := 0
	for _, d := range directives {
		sb.WriteString(template[last:d.start])
		sb.WriteString(r.colorizer.Colorize(d.text, d.r, d.g, d.b))
		last = d.end
	}
	sb.WriteString(template[last:])
	return sb.String(), nil
}

// parseColorDirectives returns the markup spans of template in order. Every
// opener must belong to a span; one that does not is malformed markup.
func parseColorDirectives(template string) ([]colorDirective, error) {
	matches := colorMarkup.FindAllStringSubmatchIndex(template, -1)
	directives := make([]colorDirective, 0, len(matches))
	for _, m := range matches {
		var rgb [3]uint8
		for i := range rgb {
			raw := template[m[4+2*i]:m[5+2*i]]
			v, err := strconv.ParseUint(raw, 10, 8)
			if err != nil {
				return nil, errors.Newf(errors.ErrColorChannel,
					"color channel %s in %s is outside 0-255", raw, template[m[0]:m[1]]).
					WithDetail("line", lineOf(template, m[0]))
			}
			rgb[i] = uint8(v)
		}
		directives = append(directives, colorDirective{
			start: m[0],
			end:   m[1],
			text:  template[m[2]:m[3]],
			r:     rgb[0],
			g:     rgb[1],
			b:     rgb[2],
		})
	}

	next := 0
	for offset := 0; ; {
		i := strings.Index(template[offset:], colorOpener)
		if i < 0 {
			break
		}
		pos := offset + i
		for next < len(directives) && directives[next].end <= pos {
			next++
		}
		if next == len(directives) || pos < directives[next].start {
			return nil, errors.Newf(errors.ErrMalformedMarkup,
				`color markup on line %d does not match rgb["text", r, g, b]`, lineOf(template, pos)).
				WithDetail("line", lineOf(template, pos))
		}
		offset = pos + len(colorOpener)
	}

	return directives, nil
}
