package engine

import (
	"context"
	"time"
)

// Resolve runs the command, placeholder and color stages over template, in
// that order. The first failing stage aborts the call and no partial output
// is returned.
func (r *Resolver) Resolve(ctx context.Context, template string, facts FactProvider, executor CommandExecutor) (string, error) {
	start := time.Now()
	out := template

	var err error
	if r.skipCommands {
		r.logger.Debug().Msg("Raw mode, leaving command directives in place")
	} else if out, err = r.substituteCommands(ctx, out, executor); err != nil {
		return "", err
	}

	if out, err = r.substitutePlaceholders(ctx, out, facts); err != nil {
		return "", err
	}

	if out, err = r.substituteColors(out); err != nil {
		return "", err
	}

	r.logger.Debug().Dur("duration", time.Since(start)).Int("bytes", len(out)).Msg("Template resolved")
	return out, nil
}

// Resolve resolves template with the default marker, sentinel and a
// truecolor colorizer.
func Resolve(ctx context.Context, template string, facts FactProvider, executor CommandExecutor) (string, error) {
	return New(Options{}).Resolve(ctx, template, facts, executor)
}
