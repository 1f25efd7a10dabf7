package drive

import (
	"context"
	"path/filepath"
	"sort"
	"strings"
)

// Mount describes one mounted volume as reported by the platform.
type Mount struct {
	Path   string `json:"path"`
	Device string `json:"device"`
	Label  string `json:"label"`
	// Removable is the platform's own removable/hotplug flag.
	Removable bool `json:"removable"`
}

// Lister reports the currently mounted volumes in the order the OS returns them.
type Lister interface {
	List(ctx context.Context) ([]Mount, error)
}

// ListerFunc adapts a function to the Lister interface.
type ListerFunc func(ctx context.Context) ([]Mount, error)

// List calls f.
func (f ListerFunc) List(ctx context.Context) ([]Mount, error) {
	return f(ctx)
}

// Event is the single newly detected removable mount.
type Event struct {
	Mount
}

// Classifier decides which mounts count as removable.
type Classifier struct {
	// Roots are path prefixes whose mounts are treated as removable even when
	// the platform flag is unset. Ignored when Windows is true.
	Roots   []string
	Windows bool
}

// Removable reports whether m qualifies as removable media.
func (c Classifier) Removable(m Mount) bool {
	if m.Removable {
		return true
	}
	if c.Windows {
		return false
	}
	for _, root := range c.Roots {
		if underRoot(m.Path, root) {
			return true
		}
	}
	return false
}

func underRoot(path, root string) bool {
	path = strings.TrimSpace(path)
	root = strings.TrimSpace(root)
	if path == "" || root == "" {
		return false
	}
	path = filepath.Clean(path)
	root = filepath.Clean(root)
	if path == root {
		return true
	}
	if !strings.HasSuffix(root, string(filepath.Separator)) {
		root += string(filepath.Separator)
	}
	return strings.HasPrefix(path, root)
}

// Snapshot is the set of qualifying mounts observed at one polling tick.
type Snapshot struct {
	order []Mount
	index map[string]struct{}
}

// NewSnapshot keeps the mounts the classifier accepts, preserving their order.
// Duplicate paths collapse to the first occurrence.
func NewSnapshot(mounts []Mount, classifier Classifier) Snapshot {
	snap := Snapshot{index: make(map[string]struct{}, len(mounts))}
	for _, m := range mounts {
		if strings.TrimSpace(m.Path) == "" || !classifier.Removable(m) {
			continue
		}
		if _, seen := snap.index[m.Path]; seen {
			continue
		}
		snap.index[m.Path] = struct{}{}
		snap.order = append(snap.order, m)
	}
	return snap
}

// Len returns the number of mounts in the snapshot.
func (s Snapshot) Len() int {
	return len(s.order)
}

// Contains reports whether the snapshot has a mount at path.
func (s Snapshot) Contains(path string) bool {
	_, ok := s.index[path]
	return ok
}

// Mounts returns the mounts in OS-report order.
func (s Snapshot) Mounts() []Mount {
	return append([]Mount(nil), s.order...)
}

// Added returns the mounts in s that are absent from previous, sorted by path
// so simultaneous arrivals resolve deterministically.
func (s Snapshot) Added(previous Snapshot) []Mount {
	var added []Mount
	for _, m := range s.order {
		if !previous.Contains(m.Path) {
			added = append(added, m)
		}
	}
	sort.SliceStable(added, func(i, j int) bool {
		return added[i].Path < added[j].Path
	})
	return added
}
