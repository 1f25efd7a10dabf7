package preflight

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"burrow/internal/config"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if !strings.Contains(result.Detail, "does not exist") {
		t.Fatalf("unexpected detail: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckSystemDepsMissingLsblk(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	results := CheckSystemDeps("linux")
	if len(results) != 2 {
		t.Fatalf("expected 2 linux checks, got %d", len(results))
	}
	blocking, ok := FirstBlocking(results)
	if !ok || blocking.Name != "lsblk" {
		t.Fatalf("expected lsblk to block, got %#v (ok=%v)", blocking, ok)
	}
	if !results[1].Optional {
		t.Fatal("xdg-open should be optional")
	}
	if !strings.Contains(Summary(results), "xdg-open") {
		t.Fatalf("summary should mention optional failures: %s", Summary(results))
	}
}

func TestRunAllChecksStateDir(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.StateDir = t.TempDir()
	results := RunAll(&cfg)
	if len(results) == 0 || results[0].Name != "State directory" || !results[0].Passed {
		t.Fatalf("unexpected state dir result: %#v", results)
	}
	if runtime.GOOS == "windows" && len(results) != 1 {
		t.Fatalf("windows should only check the state dir, got %#v", results)
	}
	if RunAll(nil) != nil {
		t.Fatal("expected nil results for nil config")
	}
}
