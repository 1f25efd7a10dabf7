package drive

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"
)

func TestWatchTargets(t *testing.T) {
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, "user"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "note"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got := watchTargets(root)
	want := []string{root, filepath.Join(root, "user")}
	if !slices.Equal(got, want) {
		t.Fatalf("watchTargets = %v, want %v", got, want)
	}
	if watchTargets(filepath.Join(root, "missing")) != nil {
		t.Fatal("missing root should yield no targets")
	}
}

func TestRootWatcherWakesOnNewMountDir(t *testing.T) {
	root := t.TempDir()
	w := NewRootWatcher([]string{root}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	if err := os.Mkdir(filepath.Join(root, "STICK"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	select {
	case <-w.C():
	case <-time.After(5 * time.Second):
		t.Fatal("expected wake after mount directory creation")
	}
}

func TestRootWatcherWithoutRootsIsIdle(t *testing.T) {
	w := NewRootWatcher([]string{filepath.Join(t.TempDir(), "absent")}, nil)
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	w.Stop()
	w.Stop()

	var nilWatcher *RootWatcher
	nilWatcher.Stop()
	if nilWatcher.C() != nil {
		t.Fatal("nil watcher should have nil channel")
	}
}

func TestMergeWake(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if MergeWake(ctx) != nil || MergeWake(ctx, nil, nil) != nil {
		t.Fatal("expected nil channel without sources")
	}

	single := make(chan struct{}, 1)
	if MergeWake(ctx, nil, single) != (<-chan struct{})(single) {
		t.Fatal("single source should be returned as-is")
	}

	a := make(chan struct{}, 1)
	b := make(chan struct{}, 1)
	merged := MergeWake(ctx, a, b)
	b <- struct{}{}
	select {
	case <-merged:
	case <-time.After(5 * time.Second):
		t.Fatal("expected merged wake from second source")
	}
}
