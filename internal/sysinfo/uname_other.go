//go:build !unix

package sysinfo

import "fmt"

func uname() (string, string, error) {
	return "", "", fmt.Errorf("uname is not supported on this platform")
}
