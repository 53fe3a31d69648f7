package shell

import (
	"path"
	"strings"
)

// DetectShell returns the short name of the shell at shellPath: "zsh" for
// /usr/bin/zsh, and "bash" for a login shell reported as "-bash". It returns
// "" when shellPath is empty.
func DetectShell(shellPath string) string {
	shellPath = strings.TrimRight(strings.TrimSpace(shellPath), "/")
	if shellPath == "" {
		return ""
	}
	return strings.TrimPrefix(path.Base(shellPath), "-")
}
