package shell

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"justfetch/internal/errors"
	"justfetch/internal/logging"
)

// DefaultShell is the interpreter used when Executor.Shell is empty.
const DefaultShell = "sh"

// pipeGrace bounds how long Execute waits for stdout to close once the shell
// has exited or ctx is done, e.g. when a command leaves a background child
// holding the pipe.
const pipeGrace = time.Second

// Executor runs commands with `<shell> -c` and returns their standard output.
// The zero value is ready to use.
//
// No timeout is applied: a command that never exits blocks Execute until ctx
// is cancelled.
type Executor struct {
	Shell  string
	Logger *zerolog.Logger
}

// Execute runs command and returns its standard output with exactly one
// trailing newline removed. An empty command returns "" without spawning a
// process. Output that is not valid UTF-8 is an error.
func (e *Executor) Execute(ctx context.Context, command string) (string, error) {
	if command == "" {
		return "", nil
	}

	logger := e.logger()
	cmd := exec.CommandContext(ctx, e.shell(), "-c", command)
	cmd.WaitDelay = pipeGrace

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.Debug().Str("shell", e.shell()).Str("command", command).Msg("Executing command")
	if err := cmd.Run(); err != nil {
		return "", errors.Wrapf(err, errors.ErrCommandFailed, "%s -c failed", e.shell()).
			WithDetail("command", command).
			WithDetail("stderr", strings.TrimSpace(stderr.String()))
	}
	if stderr.Len() > 0 {
		logger.Debug().Str("stderr", stderr.String()).Msg("Command wrote to stderr")
	}

	out := stdout.Bytes()
	if !utf8.Valid(out) {
		return "", errors.New(errors.ErrInvalidOutput, "command output is not valid UTF-8").
			WithDetail("command", command)
	}
	return strings.TrimSuffix(string(out), "\n"), nil
}

func (e *Executor) shell() string {
	if e.Shell == "" {
		return DefaultShell
	}
	return e.Shell
}

func (e *Executor) logger() zerolog.Logger {
	if e.Logger != nil {
		return *e.Logger
	}
	return logging.GetLogger("shell")
}
