package drive

import (
	"context"
	"os/exec"
	"time"
)

const listTimeout = 10 * time.Second

type commandRunner interface {
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

type execCommandRunner struct{}

func (execCommandRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec
	return cmd.Output()
}

// NewLister returns the mount lister for the running platform.
func NewLister() Lister {
	return newPlatformLister(execCommandRunner{})
}

func runWithTimeout(ctx context.Context, runner commandRunner, name string, args ...string) ([]byte, error) {
	listCtx, cancel := context.WithTimeout(ctx, listTimeout)
	defer cancel()
	return runner.Output(listCtx, name, args...)
}
