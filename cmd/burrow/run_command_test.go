package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRunCommandWithRoot(t *testing.T) {
	env := setupCLITestEnv(t)
	root := filepath.Join(env.baseDir, "drive")
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("mkdir root: %v", err)
	}
	for _, name := range []string{"a.txt", "b.txt"} {
		if err := os.WriteFile(filepath.Join(root, name), []byte(name), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	out, _, err := runCLI(t, []string{"run", "--root", root, "--max-depth", "2"}, env.configPath)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	requireContains(t, out, "Max Depth Reached after 2 levels")
	requireContains(t, out, "4 moved")

	for _, name := range []string{"a.txt", "b.txt"} {
		if _, err := os.Stat(filepath.Join(root, "1", "2", name)); err != nil {
			t.Fatalf("expected %s two levels down: %v", name, err)
		}
	}
}

func TestRunCommandRejectsMissingRoot(t *testing.T) {
	env := setupCLITestEnv(t)
	_, _, err := runCLI(t, []string{"run", "--root", filepath.Join(env.baseDir, "absent")}, env.configPath)
	if err == nil {
		t.Fatal("expected error for missing root")
	}
}

func TestRunCommandRejectsNegativeDepth(t *testing.T) {
	env := setupCLITestEnv(t)
	_, _, err := runCLI(t, []string{"run", "--root", env.baseDir, "--max-depth", "-1"}, env.configPath)
	if err == nil {
		t.Fatal("expected error for negative depth")
	}
}

func TestRootCommandRejectsArgs(t *testing.T) {
	env := setupCLITestEnv(t)
	if _, _, err := runCLI(t, []string{"unexpected"}, env.configPath); err == nil {
		t.Fatal("expected error for positional argument")
	}
}
