package engine

import (
	"context"
	"strings"

	"justfetch/internal/errors"
	"justfetch/internal/model"
)

// substitutePlaceholders replaces every known [tag] with its fact value.
// Unknown bracketed text is left as is.
func (r *Resolver) substitutePlaceholders(ctx context.Context, template string, provider FactProvider) (string, error) {
	// Fact collection reads /proc and calls uname; skip it when no tag can
	// be present.
	if !strings.ContainsAny(template, "[]") {
		r.logger.Debug().Msg("No brackets, skipping fact collection")
		return template, nil
	}

	facts, err := provider.Facts(ctx)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrFactsUnavailable, "collecting system facts")
	}

	for _, tag := range model.Tags {
		placeholder := "[" + tag + "]"
		if !strings.Contains(template, placeholder) {
			continue
		}
		value, _ := facts.Value(tag)
		template = strings.ReplaceAll(template, placeholder, value)
	}
	return template, nil
}
