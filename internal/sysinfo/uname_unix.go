//go:build unix

package sysinfo

import "golang.org/x/sys/unix"

// uname returns the node name and kernel release from uname(2).
func uname() (string, string, error) {
	var utsname unix.Utsname
	if err := unix.Uname(&utsname); err != nil {
		return "", "", err
	}
	return unix.ByteSliceToString(utsname.Nodename[:]), unix.ByteSliceToString(utsname.Release[:]), nil
}
