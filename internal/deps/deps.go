package deps

import (
	"fmt"
	"os/exec"
	"strings"
)

// Requirement defines an external command burrow shells out to.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// ForPlatform lists the commands used on goos. Windows uses only Win32 APIs
// and the always-present explorer.exe, so it needs nothing from PATH.
func ForPlatform(goos string) []Requirement {
	switch goos {
	case "linux":
		return []Requirement{
			{Name: "lsblk", Command: "lsblk", Description: "Lists mounted block devices"},
			{Name: "xdg-open", Command: "xdg-open", Description: "Opens nested folders in the file browser", Optional: true},
		}
	case "darwin":
		return []Requirement{
			{Name: "mount", Command: "mount", Description: "Lists mounted volumes"},
			{Name: "open", Command: "open", Description: "Opens nested folders in Finder", Optional: true},
		}
	default:
		return nil
	}
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		path, err := exec.LookPath(cmd)
		if err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		if path != cmd {
			status.Detail = path
		}
		results = append(results, status)
	}
	return results
}

// MissingRequired returns the names of unavailable non-optional dependencies.
func MissingRequired(statuses []Status) []string {
	var missing []string
	for _, s := range statuses {
		if !s.Available && !s.Optional {
			missing = append(missing, s.Name)
		}
	}
	return missing
}
