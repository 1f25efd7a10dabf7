//go:build darwin

package drive

import (
	"context"
	"fmt"
)

type mountTableLister struct {
	runner commandRunner
}

func newPlatformLister(runner commandRunner) Lister {
	return mountTableLister{runner: runner}
}

func (l mountTableLister) List(ctx context.Context) ([]Mount, error) {
	output, err := runWithTimeout(ctx, l.runner, "mount")
	if err != nil {
		return nil, fmt.Errorf("run mount: %w", err)
	}
	return parseMountTable(string(output)), nil
}
