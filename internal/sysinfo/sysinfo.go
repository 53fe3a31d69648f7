// Package sysinfo collects the host facts that justfetch templates refer to
// by tag: distribution details from os-release, memory from /proc/meminfo,
// uptime from /proc/uptime, host and kernel from uname(2), the current user
// and the login shell.
//
// Every fact is required. Provider.Facts either returns all twelve values or
// an error naming the first one it could not obtain.
package sysinfo

import (
	"context"
	"os/user"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"

	"justfetch/internal/errors"
	"justfetch/internal/logging"
	"justfetch/internal/model"
	"justfetch/internal/shell"
)

// Provider reads facts from the live system. Roots are configurable so tests
// can point at synthetic trees.
type Provider struct {
	ProcRoot string // Defaults to /proc
	EtcRoot  string // Defaults to /etc
	Shell    string // Login shell path, usually $SHELL

	uname       func() (host, kernel string, err error)
	currentUser func() (string, error)
}

// New returns a Provider for the running host with the given login shell.
func New(shellPath string) *Provider {
	return &Provider{
		ProcRoot: "/proc",
		EtcRoot:  "/etc",
		Shell:    shellPath,
	}
}

// Facts collects every fact.
func (p *Provider) Facts(ctx context.Context) (model.Facts, error) {
	defer logging.LogDuration(time.Now(), "collect facts")

	var facts model.Facts
	if err := ctx.Err(); err != nil {
		return facts, err
	}

	release, err := readKeyValues(filepath.Join(p.etcRoot(), "os-release"))
	if err != nil {
		return facts, errors.Wrap(err, errors.ErrFactsUnavailable, "reading os-release")
	}
	for _, field := range []struct {
		key string
		dst *string
	}{
		{"NAME", &facts.Distro},
		{"ID", &facts.DistroID},
		{"BUILD_ID", &facts.DistroBuildID},
	} {
		value, ok := release[field.key]
		if !ok {
			return facts, errors.Newf(errors.ErrFactMissing, "os-release has no %s key", field.key).
				WithDetail("key", field.key)
		}
		*field.dst = value
	}

	if facts.Host, facts.Kernel, err = p.unameFunc()(); err != nil {
		return facts, errors.Wrap(err, errors.ErrFactsUnavailable, "calling uname")
	}

	if facts.Username, err = p.userFunc()(); err != nil {
		return facts, errors.Wrap(err, errors.ErrFactsUnavailable, "looking up current user")
	}

	if facts.Shell = shell.DetectShell(p.Shell); facts.Shell == "" {
		return facts, errors.New(errors.ErrFactMissing, "login shell is not set (SHELL is empty)")
	}

	uptime, err := readUptime(filepath.Join(p.procRoot(), "uptime"))
	if err != nil {
		return facts, errors.Wrap(err, errors.ErrFactsUnavailable, "reading uptime")
	}
	facts.Uptime = FormatUptime(uptime)

	mem, err := readMemInfo(filepath.Join(p.procRoot(), "meminfo"))
	if err != nil {
		return facts, errors.Wrap(err, errors.ErrFactsUnavailable, "reading meminfo")
	}
	facts.TotalMem = humanize.IBytes(mem.Total)
	facts.CachedMem = humanize.IBytes(mem.Cached)
	facts.AvailableMem = humanize.IBytes(mem.Available)
	facts.UsedMem = humanize.IBytes(mem.Used())

	return facts, nil
}

func (p *Provider) procRoot() string {
	if p.ProcRoot == "" {
		return "/proc"
	}
	return p.ProcRoot
}

func (p *Provider) etcRoot() string {
	if p.EtcRoot == "" {
		return "/etc"
	}
	return p.EtcRoot
}

func (p *Provider) unameFunc() func() (string, string, error) {
	if p.uname != nil {
		return p.uname
	}
	return uname
}

func (p *Provider) userFunc() func() (string, error) {
	if p.currentUser != nil {
		return p.currentUser
	}
	return func() (string, error) {
		u, err := user.Current()
		if err != nil {
			return "", err
		}
		return u.Username, nil
	}
}
