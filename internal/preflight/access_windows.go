//go:build windows

package preflight

import (
	"os"
	"path/filepath"
)

// checkAccess probes writability by creating and removing a scratch file;
// Windows has no access(2) equivalent that honours ACLs.
func checkAccess(path string) error {
	f, err := os.CreateTemp(path, ".burrow-probe-*")
	if err != nil {
		return err
	}
	name := f.Name()
	_ = f.Close()
	return os.Remove(filepath.Clean(name))
}
