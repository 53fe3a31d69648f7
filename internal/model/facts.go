package model

// Version is the justfetch release string.
var Version = "0.4.0"

// Facts holds one value per placeholder tag for the current host.
type Facts struct {
	Host          string `json:"host"`           // Network node name
	Kernel        string `json:"kernel"`         // Kernel release, e.g. 6.1.0-18-amd64
	Username      string `json:"username"`       // Login name of the current user
	Distro        string `json:"distro"`         // os-release NAME
	DistroID      string `json:"distro_id"`      // os-release ID
	DistroBuildID string `json:"distro_build_id"` // os-release BUILD_ID
	Shell         string `json:"shell"`          // Basename of the login shell
	Uptime        string `json:"uptime"`         // Formatted as "1d 2h 3m"
	TotalMem      string `json:"total_mem"`
	CachedMem     string `json:"cached_mem"`
	AvailableMem  string `json:"available_mem"`
	UsedMem       string `json:"used_mem"`
}

// Tags lists every placeholder name, in the order they are substituted.
var Tags = []string{
	"host",
	"kernel",
	"username",
	"distro",
	"distro_id",
	"distro_build_id",
	"shell",
	"uptime",
	"total_mem",
	"cached_mem",
	"available_mem",
	"used_mem",
}

// Value returns the fact for tag. The boolean is false for names that are
// not in Tags.
func (f Facts) Value(tag string) (string, bool) {
	switch tag {
	case "host":
		return f.Host, true
	case "kernel":
		return f.Kernel, true
	case "username":
		return f.Username, true
	case "distro":
		return f.Distro, true
	case "distro_id":
		return f.DistroID, true
	case "distro_build_id":
		return f.DistroBuildID, true
	case "shell":
		return f.Shell, true
	case "uptime":
		return f.Uptime, true
	case "total_mem":
		return f.TotalMem, true
	case "cached_mem":
		return f.CachedMem, true
	case "available_mem":
		return f.AvailableMem, true
	case "used_mem":
		return f.UsedMem, true
	}
	return "", false
}

// IsTag reports whether name is a recognised placeholder.
func IsTag(name string) bool {
	_, ok := Facts{}.Value(name)
	return ok
}
