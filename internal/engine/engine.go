// Package engine resolves justfetch templates into display text.
//
// A template passes through three stages in a fixed order. Lines carrying
// the command marker ("$cmd=uname -r") are run in one batched shell call and
// replaced by their output; bracketed fact tags ("[kernel]") are replaced by
// host values; color markup (rgb["text", r, g, b]) is rendered as ANSI
// text. A stage is skipped when its markup is absent, so templates without
// commands never spawn a shell and templates without brackets never collect
// facts.
//
// Commands run first so their output may itself contain tags or color
// markup. Color runs last so rendered escape sequences are never rescanned.
//
// A Resolver keeps no state between calls; concurrent Resolve calls are
// independent as long as the collaborators are safe for concurrent use.
package engine

import (
	"context"

	"github.com/rs/zerolog"

	"justfetch/internal/color"
	"justfetch/internal/logging"
	"justfetch/internal/model"
)

const (
	// DefaultMarker introduces a command directive.
	DefaultMarker = "$cmd="

	// DefaultSentinel separates command outputs in a batched call. A
	// template containing it cannot run commands.
	DefaultSentinel = " %split%"
)

// FactProvider supplies every fact at once, or fails as a whole.
type FactProvider interface {
	Facts(ctx context.Context) (model.Facts, error)
}

// CommandExecutor runs a shell command and returns its standard output
// with one trailing newline removed.
type CommandExecutor interface {
	Execute(ctx context.Context, command string) (string, error)
}

// Colorizer renders text with an RGB foreground color.
type Colorizer interface {
	Colorize(text string, r, g, b uint8) string
}

// FactProviderFunc adapts a function to FactProvider.
type FactProviderFunc func(ctx context.Context) (model.Facts, error)

// Facts calls f.
func (f FactProviderFunc) Facts(ctx context.Context) (model.Facts, error) {
	return f(ctx)
}

// CommandExecutorFunc adapts a function to CommandExecutor.
type CommandExecutorFunc func(ctx context.Context, command string) (string, error)

// Execute calls f.
func (f CommandExecutorFunc) Execute(ctx context.Context, command string) (string, error) {
	return f(ctx, command)
}

// Options configures a Resolver. Zero values select the defaults.
type Options struct {
	Marker    string
	Sentinel  string
	Colorizer Colorizer

	// SkipCommands leaves command directives in the output untouched.
	SkipCommands bool

	Logger *zerolog.Logger
}

// Resolver turns templates into display text.
type Resolver struct {
	marker       string
	sentinel     string
	colorizer    Colorizer
	skipCommands bool
	logger       zerolog.Logger
}

// New creates a Resolver from opts.
func New(opts Options) *Resolver {
	r := &Resolver{
		marker:       opts.Marker,
		sentinel:     opts.Sentinel,
		colorizer:    opts.Colorizer,
		skipCommands: opts.SkipCommands,
	}
	if r.marker == "" {
		r.marker = DefaultMarker
	}
	if r.sentinel == "" {
		r.sentinel = DefaultSentinel
	}
	if r.colorizer == nil {
		r.colorizer = color.TrueColor()
	}
	if opts.Logger != nil {
		r.logger = *opts.Logger
	} else {
		r.logger = logging.GetLogger("engine")
	}
	return r
}
