package preflight

import (
	"fmt"
	"runtime"
	"strings"

	"burrow/internal/config"
	"burrow/internal/deps"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	// Optional failures are reported but never block a run.
	Optional bool
	Detail   string
}

// RunAll executes the checks that apply before waiting for a drive.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}
	results := []Result{CheckDirectoryAccess("State directory", cfg.Paths.StateDir)}
	return append(results, CheckSystemDeps(runtime.GOOS)...)
}

// CheckSystemDeps reports the external commands needed on goos.
func CheckSystemDeps(goos string) []Result {
	statuses := deps.CheckBinaries(deps.ForPlatform(goos))
	results := make([]Result, 0, len(statuses))
	for _, status := range statuses {
		result := Result{Name: status.Name, Passed: status.Available, Optional: status.Optional}
		switch {
		case status.Available:
			result.Detail = "available"
		case status.Detail != "":
			result.Detail = status.Detail
		default:
			result.Detail = "unavailable"
		}
		if status.Description != "" {
			result.Detail = fmt.Sprintf("%s (%s)", result.Detail, status.Description)
		}
		results = append(results, result)
	}
	return results
}

// FirstBlocking returns the first failed non-optional result.
func FirstBlocking(results []Result) (Result, bool) {
	for _, r := range results {
		if !r.Passed && !r.Optional {
			return r, true
		}
	}
	return Result{}, false
}

// Summary joins failed check details into one line.
func Summary(results []Result) string {
	var parts []string
	for _, r := range results {
		if r.Passed {
			continue
		}
		parts = append(parts, r.Name+": "+r.Detail)
	}
	return strings.Join(parts, "; ")
}
