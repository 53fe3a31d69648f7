package sysinfo

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// readKeyValues parses an os-release style file of KEY=value lines.
// Comments and blank lines are skipped and surrounding quotes removed.
func readKeyValues(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	out := map[string]string{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		out[strings.TrimSpace(key)] = trimQuotes(value)
	}
	return out, scanner.Err()
}

func trimQuotes(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

// readUptime returns the first field of /proc/uptime.
func readUptime(path string) (time.Duration, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	fields := strings.Fields(string(b))
	if len(fields) == 0 {
		return 0, fmt.Errorf("%s is empty", path)
	}
	seconds, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", path, err)
	}
	return time.Duration(seconds * float64(time.Second)), nil
}

// FormatUptime renders d as "1d 2h 3m". Leading zero units are dropped;
// minutes are always shown.
func FormatUptime(d time.Duration) string {
	minutes := int64(d / time.Minute)
	days, minutes := minutes/(24*60), minutes%(24*60)
	hours, minutes := minutes/60, minutes%60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}

// memInfo holds /proc/meminfo values in bytes.
type memInfo struct {
	Total     uint64
	Cached    uint64
	Available uint64
}

// Used is the memory not available to new allocations.
func (m memInfo) Used() uint64 {
	if m.Available > m.Total {
		return 0
	}
	return m.Total - m.Available
}

// readMemInfo parses MemTotal, Cached and MemAvailable from /proc/meminfo.
func readMemInfo(path string) (memInfo, error) {
	var info memInfo

	file, err := os.Open(path)
	if err != nil {
		return info, err
	}
	defer file.Close()

	fields := map[string]*uint64{
		"MemTotal":     &info.Total,
		"Cached":       &info.Cached,
		"MemAvailable": &info.Available,
	}
	found := 0

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		// Format: "MemTotal:       16318412 kB"
		key, rest, ok := strings.Cut(scanner.Text(), ":")
		if !ok {
			continue
		}
		dst, wanted := fields[key]
		if !wanted {
			continue
		}
		parts := strings.Fields(rest)
		if len(parts) == 0 {
			return info, fmt.Errorf("%s: %s has no value", path, key)
		}
		kb, err := strconv.ParseUint(parts[0], 10, 64)
		if err != nil {
			return info, fmt.Errorf("%s: parsing %s: %w", path, key, err)
		}
		*dst = kb * 1024
		found++
	}
	if err := scanner.Err(); err != nil {
		return info, err
	}
	if found != len(fields) {
		return info, fmt.Errorf("%s is missing one of MemTotal, Cached, MemAvailable", path)
	}
	return info, nil
}
