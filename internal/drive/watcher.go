package drive

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"burrow/internal/logging"
)

// RootWatcher wakes the monitor when an entry appears or disappears directly
// under a removable root, or one level below it (udisks mounts at
// /run/media/<user>/<label>). It works wherever fsnotify does, which makes it
// the only early wake-up source on macOS.
type RootWatcher struct {
	roots  []string
	logger *slog.Logger
	wake   chan struct{}

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// NewRootWatcher returns a watcher for roots that has not started yet.
func NewRootWatcher(roots []string, logger *slog.Logger) *RootWatcher {
	return &RootWatcher{
		roots:  append([]string(nil), roots...),
		logger: logging.NewComponentLogger(logger, "root-watcher"),
		wake:   make(chan struct{}, 1),
	}
}

// C returns the channel that receives a value after each relevant change.
func (w *RootWatcher) C() <-chan struct{} {
	if w == nil {
		return nil
	}
	return w.wake
}

// Start begins watching. Roots that do not exist are skipped; when none can
// be watched the watcher stays idle and Start returns nil.
func (w *RootWatcher) Start(ctx context.Context) error {
	if w == nil {
		return nil
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.watcher != nil {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	watched := 0
	for _, root := range w.roots {
		for _, dir := range watchTargets(root) {
			if err := watcher.Add(dir); err != nil {
				w.logger.Debug("cannot watch directory", logging.String("dir", dir), logging.Error(err))
				continue
			}
			watched++
		}
	}
	if watched == 0 {
		_ = watcher.Close()
		w.logger.Debug("no removable roots to watch")
		return nil
	}

	w.watcher = watcher
	w.done = make(chan struct{})
	go w.loop(ctx, watcher, w.done)
	w.logger.Debug("watching removable roots", logging.Int("directories", watched))
	return nil
}

// Stop closes the underlying watcher. Safe to call more than once.
func (w *RootWatcher) Stop() {
	if w == nil {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.watcher == nil {
		return
	}
	close(w.done)
	_ = w.watcher.Close()
	w.watcher = nil
}

func (w *RootWatcher) loop(ctx context.Context, watcher *fsnotify.Watcher, done <-chan struct{}) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-done:
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) {
				continue
			}
			if event.Has(fsnotify.Create) {
				// A new per-user directory under /run/media must be watched too.
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = watcher.Add(event.Name)
				}
			}
			w.logger.Debug("removable root changed",
				logging.String("path", event.Name),
				logging.String("op", event.Op.String()),
			)
			select {
			case w.wake <- struct{}{}:
			default:
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logging.WarnWithContext(w.logger, "root watcher error",
				"root_watcher_error",
				logging.Error(err),
				logging.String(logging.FieldImpact, "drive detection falls back to the poll interval"),
			)
		}
	}
}

// watchTargets returns root plus its immediate subdirectories.
func watchTargets(root string) []string {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil
	}
	targets := []string{root}
	entries, err := os.ReadDir(root)
	if err != nil {
		return targets
	}
	for _, entry := range entries {
		if entry.IsDir() {
			targets = append(targets, filepath.Join(root, entry.Name()))
		}
	}
	return targets
}

// MergeWake fans several wake channels into one. Nil channels are ignored and
// the forwarding goroutines exit when ctx is done.
func MergeWake(ctx context.Context, sources ...<-chan struct{}) <-chan struct{} {
	var live []<-chan struct{}
	for _, src := range sources {
		if src != nil {
			live = append(live, src)
		}
	}
	switch len(live) {
	case 0:
		return nil
	case 1:
		return live[0]
	}
	out := make(chan struct{}, 1)
	for _, src := range live {
		go func(src <-chan struct{}) {
			for {
				select {
				case <-ctx.Done():
					return
				case <-src:
					select {
					case out <- struct{}{}:
					default:
					}
				}
			}
		}(src)
	}
	return out
}
