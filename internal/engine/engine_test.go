package engine

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"justfetch/internal/model"
)

// recordingExecutor records every command and answers with fn.
type recordingExecutor struct {
	mu    sync.Mutex
	calls []string
	fn    func(command string) (string, error)
}

func (e *recordingExecutor) Execute(_ context.Context, command string) (string, error) {
	e.mu.Lock()
	e.calls = append(e.calls, command)
	e.mu.Unlock()
	if e.fn == nil {
		return "", nil
	}
	return e.fn(command)
}

// countingProvider returns fixed facts and counts calls.
type countingProvider struct {
	facts model.Facts
	err   error
	calls int
}

func (p *countingProvider) Facts(context.Context) (model.Facts, error) {
	p.calls++
	return p.facts, p.err
}

// failingExecutor and failingProvider fail the test when used.
func failingExecutor(t *testing.T) CommandExecutor {
	return CommandExecutorFunc(func(_ context.Context, command string) (string, error) {
		t.Fatalf("executor called with %q", command)
		return "", nil
	})
}

func failingProvider(t *testing.T) FactProvider {
	return FactProviderFunc(func(context.Context) (model.Facts, error) {
		t.Fatal("fact provider called")
		return model.Facts{}, nil
	})
}

// tagColorizer renders colors as readable tags.
type tagColorizer struct{}

func (tagColorizer) Colorize(text string, r, g, b uint8) string {
	return fmt.Sprintf("<%d,%d,%d>%s</>", r, g, b, text)
}

// joiningExecutor answers a batch with outputs joined by the default sentinel.
func joiningExecutor(outputs ...string) *recordingExecutor {
	return &recordingExecutor{fn: func(string) (string, error) {
		return strings.Join(outputs, DefaultSentinel), nil
	}}
}

func newTestResolver(opts Options) *Resolver {
	nop := zerolog.Nop()
	opts.Logger = &nop
	if opts.Colorizer == nil {
		opts.Colorizer = tagColorizer{}
	}
	return New(opts)
}
