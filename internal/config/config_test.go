package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"

	"burrow/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("BURROW_STATE_DIR", "")
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantState := filepath.Join(tempHome, ".local", "share", "burrow")
	if cfg.Paths.StateDir != wantState {
		t.Fatalf("unexpected state dir: got %q want %q", cfg.Paths.StateDir, wantState)
	}
	if cfg.Nest.MaxDepth != 260 {
		t.Fatalf("expected default max depth 260, got %d", cfg.Nest.MaxDepth)
	}
	if cfg.PollInterval() != time.Second {
		t.Fatalf("expected 1s poll interval, got %s", cfg.PollInterval())
	}
	if !cfg.Explorer.Enabled {
		t.Fatal("expected explorer enabled by default")
	}
	if cfg.ExplorerPause() != time.Second {
		t.Fatalf("expected 1s explorer pause, got %s", cfg.ExplorerPause())
	}
	if !cfg.LongPath.Enabled {
		t.Fatal("expected long path support enabled by default")
	}
	if cfg.LogPath() != filepath.Join(wantState, "burrow.log") {
		t.Fatalf("unexpected log path: %q", cfg.LogPath())
	}
	if cfg.LockPath() != filepath.Join(wantState, "burrow.lock") {
		t.Fatalf("unexpected lock path: %q", cfg.LockPath())
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	info, err := os.Stat(cfg.Paths.StateDir)
	if err != nil {
		t.Fatalf("expected state dir to exist: %v", err)
	}
	if !info.IsDir() {
		t.Fatalf("expected %q to be directory", cfg.Paths.StateDir)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "burrow.toml")

	type payload struct {
		Paths struct {
			StateDir string `toml:"state_dir"`
		} `toml:"paths"`
		Drive struct {
			PollInterval   int      `toml:"poll_interval"`
			RemovableRoots []string `toml:"removable_roots"`
		} `toml:"drive"`
		Nest struct {
			MaxDepth int `toml:"max_depth"`
		} `toml:"nest"`
		Logging struct {
			Format string `toml:"format"`
			Level  string `toml:"level"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Paths.StateDir = filepath.Join(tempDir, "state")
	custom.Drive.PollInterval = 3
	custom.Drive.RemovableRoots = []string{" /mnt/usb/ ", "/mnt/usb", ""}
	custom.Nest.MaxDepth = 12
	custom.Logging.Format = " JSON "
	custom.Logging.Level = "Debug"
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}
	t.Setenv("BURROW_STATE_DIR", "")

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Paths.StateDir != filepath.Join(tempDir, "state") {
		t.Fatalf("unexpected state dir %q", cfg.Paths.StateDir)
	}
	if cfg.PollInterval() != 3*time.Second {
		t.Fatalf("expected 3s poll interval, got %s", cfg.PollInterval())
	}
	if len(cfg.Drive.RemovableRoots) != 1 || cfg.Drive.RemovableRoots[0] != "/mnt/usb" {
		t.Fatalf("expected deduplicated removable roots, got %v", cfg.Drive.RemovableRoots)
	}
	if cfg.Nest.MaxDepth != 12 {
		t.Fatalf("expected max depth 12, got %d", cfg.Nest.MaxDepth)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("expected normalized logging settings, got %q/%q", cfg.Logging.Format, cfg.Logging.Level)
	}
}

func TestStateDirEnvOverride(t *testing.T) {
	stateDir := filepath.Join(t.TempDir(), "env-state")
	t.Setenv("BURROW_STATE_DIR", stateDir)

	cfg, _, _, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Paths.StateDir != stateDir {
		t.Fatalf("expected state dir from env, got %q", cfg.Paths.StateDir)
	}
}

func TestValidateRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{"zero poll interval", func(c *config.Config) { c.Drive.PollInterval = 0 }, "drive.poll_interval"},
		{"zero max depth", func(c *config.Config) { c.Nest.MaxDepth = 0 }, "nest.max_depth"},
		{"negative pause", func(c *config.Config) { c.Explorer.Pause = -1 }, "explorer.pause"},
		{"bad format", func(c *config.Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"bad level", func(c *config.Config) { c.Logging.Level = "trace" }, "logging.level"},
		{"empty state dir", func(c *config.Config) { c.Paths.StateDir = "" }, "paths.state_dir"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Paths.StateDir = t.TempDir()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error mentioning %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "burrow.toml")
	if err := os.WriteFile(configPath, []byte("[nest\nmax_depth = "), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(configPath); err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestCreateSampleProducesLoadableConfig(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(target); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}
	t.Setenv("BURROW_STATE_DIR", t.TempDir())

	cfg, _, exists, err := config.Load(target)
	if err != nil {
		t.Fatalf("Load sample returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to exist")
	}
	if cfg.Nest.MaxDepth != 260 {
		t.Fatalf("expected sample max depth 260, got %d", cfg.Nest.MaxDepth)
	}
}
