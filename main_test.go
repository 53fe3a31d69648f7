package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"justfetch/internal/config"
	"justfetch/internal/engine"
	"justfetch/internal/errors"
	"justfetch/internal/model"
)

func testApp(t *testing.T, template string, opts options) *app {
	t.Helper()
	cfg := &config.Config{
		Env:      &config.Env{Shell: "/bin/sh"},
		Settings: config.DefaultSettings(),
		Template: config.Template{Text: template, Path: "/tmp/config"},
	}
	if opts.color == "" {
		opts.color = "never"
	}
	a, err := newApp(cfg, opts, zerolog.Nop())
	require.NoError(t, err)
	a.facts = engine.FactProviderFunc(func(context.Context) (model.Facts, error) {
		return model.Facts{Kernel: "6.1.0", Username: "alice"}, nil
	})
	return a
}

func TestFormatElapsed(t *testing.T) {
	assert.Equal(t, "[JustFetch]: Took 12.345ms, 12.35ms in total", formatElapsed(12345678*time.Nanosecond))
	assert.Equal(t, "[JustFetch]: Took 1500.000ms, 1.5s in total", formatElapsed(1500*time.Millisecond))
}

func TestReleasesURL(t *testing.T) {
	assert.Equal(t, "https://github.com/vars1ty/JustFetch/releases", releasesURL())
}

func TestWithNewline(t *testing.T) {
	assert.Equal(t, "", withNewline(""))
	assert.Equal(t, "a\n", withNewline("a"))
	assert.Equal(t, "a\n", withNewline("a\n"))
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	err := errors.New(errors.ErrEmptyCommand, "empty command after marker").WithDetail("line", 2)
	printError(&buf, err, "first\n$cmd=\nthird\n")

	assert.Equal(t, "[JustFetch]: [EMPTY_COMMAND] empty command after marker\n"+
		"     1 | first\n"+
		">    2 | $cmd=\n"+
		"     3 | third\n", buf.String())

	buf.Reset()
	printError(&buf, errors.New(errors.ErrConfigLoad, "no home"), "first\n")
	assert.Equal(t, "[JustFetch]: [CONFIG_LOAD] no home\n", buf.String())
}

func TestRunOnce(t *testing.T) {
	var buf bytes.Buffer
	a := testApp(t, `$cmd=echo hi`+"\n"+`rgb["Hello", 255, 0, 0] [username]`, options{})

	require.NoError(t, a.runOnce(context.Background(), &buf, false))
	assert.Equal(t, "hi\nHello alice\n", buf.String())

	buf.Reset()
	require.NoError(t, a.runOnce(context.Background(), &buf, true))
	assert.Contains(t, buf.String(), "[JustFetch]: Took ")
}

func TestRunOnceRaw(t *testing.T) {
	var buf bytes.Buffer
	a := testApp(t, "$cmd=echo hi", options{raw: true})

	require.NoError(t, a.runOnce(context.Background(), &buf, false))
	assert.Equal(t, "$cmd=echo hi\n", buf.String())
}

func TestNewAppRejectsBadColor(t *testing.T) {
	cfg := &config.Config{Env: &config.Env{}, Settings: config.DefaultSettings()}
	_, err := newApp(cfg, options{color: "rainbow"}, zerolog.Nop())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestRunReportToFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.txt")
	a := testApp(t, "$cmd=uname\n$cmd=uname\n[nosuchtag]\n", options{})

	require.NoError(t, a.runReport(context.Background(), out, false))
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Commands: 2 directives, 1 distinct command")
	assert.Contains(t, string(data), "[nosuchtag]")
}

func TestRunWatchRejectsBadInterval(t *testing.T) {
	a := testApp(t, "x", options{})
	err := a.runWatch(context.Background(), "soon")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestPrintHelpPlain(t *testing.T) {
	var buf bytes.Buffer
	printHelp(&buf, false)
	assert.Equal(t, helpMD, buf.String())
	assert.Contains(t, helpMD, "$cmd=")
}
