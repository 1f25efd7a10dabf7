// Package explorer opens directories in the desktop file browser.
package explorer

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"

	"burrow/internal/logging"
)

type starter interface {
	Start(ctx context.Context, name string, args ...string) error
}

type execStarter struct{}

// Start launches the command and reaps it in the background; file browsers
// often exit non-zero or keep running after the window appears.
func (execStarter) Start(_ context.Context, name string, args ...string) error {
	cmd := exec.Command(name, args...) //nolint:gosec
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

// Opener shows directories in the platform file browser.
type Opener struct {
	goos     string
	lookPath func(string) (string, error)
	starter  starter
	logger   *slog.Logger
}

// New returns an opener for the running platform.
func New(logger *slog.Logger) *Opener {
	return &Opener{
		goos:     runtime.GOOS,
		lookPath: exec.LookPath,
		starter:  execStarter{},
		logger:   logging.NewComponentLogger(logger, "explorer"),
	}
}

// Open launches the file browser on path without waiting for it.
func (o *Opener) Open(ctx context.Context, path string) error {
	name, args, err := o.command(path)
	if err != nil {
		return err
	}
	o.logger.Info("opening directory", logging.String("path", path))
	if err := o.starter.Start(ctx, name, args...); err != nil {
		return fmt.Errorf("start %s: %w", name, err)
	}
	return nil
}

func (o *Opener) command(path string) (string, []string, error) {
	switch o.goos {
	case "windows":
		return "explorer.exe", []string{path}, nil
	case "darwin":
		return "open", []string{path}, nil
	default:
		if _, err := o.lookPath("xdg-open"); err == nil {
			return "xdg-open", []string{path}, nil
		}
		if _, err := o.lookPath("open"); err == nil {
			return "open", []string{path}, nil
		}
		return "", nil, fmt.Errorf("no file browser launcher found on %s", o.goos)
	}
}
