package engine

import (
	"context"
	"strings"

	"justfetch/internal/errors"
)

// directive is one template line carrying the command marker.
type directive struct {
	line    int // 1-based
	command string
}

// substituteCommands runs every command directive in one batched shell call
// and replaces each directive with its command's output. Lines without the
// marker are returned byte for byte.
func (r *Resolver) substituteCommands(ctx context.Context, template string, executor CommandExecutor) (string, error) {
	if !strings.Contains(template, r.marker) {
		r.logger.Debug().Msg("No command directives, skipping shell")
		return template, nil
	}

	if err := r.checkSentinel(template); err != nil {
		return "", err
	}

	lines := strings.Split(template, "\n")
	directives, err := r.parseDirectives(lines)
	if err != nil {
		return "", err
	}

	outputs, err := r.runBatch(ctx, distinctCommands(directives), executor)
	if err != nil {
		return "", err
	}

	for _, d := range directives {
		i := d.line - 1
		lines[i] = strings.Replace(lines[i], r.marker+d.command, outputs[d.command], 1)
	}
	return strings.Join(lines, "\n"), nil
}

// checkSentinel fails when template contains the batch separator, which
// would corrupt the split of the batched output.
func (r *Resolver) checkSentinel(template string) error {
	idx := strings.Index(template, r.sentinel)
	if idx < 0 {
		return nil
	}
	return errors.Newf(errors.ErrSentinelCollision,
		"template contains the reserved string %q", r.sentinel).
		WithDetail("line", lineOf(template, idx))
}

// parseDirectives extracts the command following the first marker on each
// marker-bearing line.
func (r *Resolver) parseDirectives(lines []string) ([]directive, error) {
	var directives []directive
	for i, line := range lines {
		idx := strings.Index(line, r.marker)
		if idx < 0 {
			continue
		}

		command := strings.TrimSuffix(line[idx+len(r.marker):], "\r")
		if command == "" {
			return nil, errors.Newf(errors.ErrEmptyCommand,
				"command on line %d is empty, please specify one", i+1).
				WithDetail("line", i+1)
		}
		directives = append(directives, directive{line: i + 1, command: command})
	}
	return directives, nil
}

// distinctCommands returns each command once, in first-occurrence order.
func distinctCommands(directives []directive) []string {
	seen := make(map[string]bool, len(directives))
	commands := make([]string, 0, len(directives))
	for _, d := range directives {
		if seen[d.command] {
			continue
		}
		seen[d.command] = true
		commands = append(commands, d.command)
	}
	return commands
}

// batchCommand joins commands into one shell invocation whose output is the
// command outputs separated by sentinel.
func batchCommand(commands []string, sentinel string) string {
	var sb strings.Builder
	sb.WriteString(`printf '%s\n' "`)
	for i, command := range commands {
		if i > 0 {
			sb.WriteString(sentinel)
		}
		sb.WriteString("$(")
		sb.WriteString(command)
		sb.WriteString(")")
	}
	sb.WriteString(`"`)
	return sb.String()
}

// runBatch executes commands with a single executor call and maps each
// command to its output.
func (r *Resolver) runBatch(ctx context.Context, commands []string, executor CommandExecutor) (map[string]string, error) {
	batch := batchCommand(commands, r.sentinel)
	r.logger.Debug().Int("commands", len(commands)).Str("batch", batch).Msg("Running command batch")

	output, err := executor.Execute(ctx, batch)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCommandFailed, "running template commands")
	}

	segments := strings.Split(output, r.sentinel)
	if len(segments) != len(commands) {
		return nil, errors.Newf(errors.ErrBatchMismatch,
			"batched shell call returned %d outputs for %d commands", len(segments), len(commands)).
			WithDetail("commands", commands)
	}

	outputs := make(map[string]string, len(commands))
	for i, command := range commands {
		outputs[command] = segments[i]
	}
	return outputs, nil
}

// lineOf returns the 1-based line holding byte offset in text.
func lineOf(text string, offset int) int {
	return strings.Count(text[:offset], "\n") + 1
}
