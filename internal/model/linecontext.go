package model

import (
	"fmt"
	"strings"
)

// LineContext represents a template line with surrounding context
type LineContext struct {
	Before1    string // Line before the target
	Target     string // The actual target line
	After1     string // Line after the target
	LineNumber int    // Line number of the target
	HasBefore1 bool   // Whether there's a line before
	HasAfter1  bool   // Whether there's a line after
	ErrorMsg   string // Set when the line number is out of range
}

// LineContextAt returns the given 1-based line of text with its neighbours.
func LineContextAt(text string, lineNumber int) LineContext {
	result := LineContext{
		LineNumber: lineNumber,
	}

	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	if lineNumber < 1 || lineNumber > len(lines) {
		result.ErrorMsg = fmt.Sprintf("Line %d out of range (template has %d lines)", lineNumber, len(lines))
		return result
	}

	result.Target = lines[lineNumber-1]
	if lineNumber > 1 {
		result.Before1 = lines[lineNumber-2]
		result.HasBefore1 = true
	}
	if lineNumber < len(lines) {
		result.After1 = lines[lineNumber]
		result.HasAfter1 = true
	}

	return result
}

// String renders the context as numbered lines with the target marked.
func (c LineContext) String() string {
	if c.ErrorMsg != "" {
		return c.ErrorMsg
	}

	var sb strings.Builder
	if c.HasBefore1 {
		fmt.Fprintf(&sb, "  %4d | %s\n", c.LineNumber-1, c.Before1)
	}
	fmt.Fprintf(&sb, "> %4d | %s\n", c.LineNumber, c.Target)
	if c.HasAfter1 {
		fmt.Fprintf(&sb, "  %4d | %s\n", c.LineNumber+1, c.After1)
	}
	return sb.String()
}
