package config

import "runtime"

const (
	defaultStateDir     = "~/.local/share/burrow"
	defaultPollInterval = 1
	defaultMaxDepth     = 260
	defaultExplorerWait = 1
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			StateDir: defaultStateDir,
		},
		Drive: Drive{
			PollInterval:   defaultPollInterval,
			RemovableRoots: defaultRemovableRoots(runtime.GOOS),
			Udev:           true,
			WatchRoots:     true,
		},
		Nest: Nest{
			MaxDepth: defaultMaxDepth,
		},
		Explorer: Explorer{
			Enabled: true,
			Pause:   defaultExplorerWait,
		},
		LongPath: LongPath{
			Enabled: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

func defaultRemovableRoots(goos string) []string {
	switch goos {
	case "windows":
		return nil
	case "darwin":
		return []string{"/Volumes"}
	default:
		return []string{"/media", "/run/media"}
	}
}
