//go:build linux

package drive

import (
	"context"
	"fmt"
)

type lsblkLister struct {
	runner commandRunner
}

func newPlatformLister(runner commandRunner) Lister {
	return lsblkLister{runner: runner}
}

func (l lsblkLister) List(ctx context.Context) ([]Mount, error) {
	output, err := runWithTimeout(ctx, l.runner, "lsblk", lsblkArgs...)
	if err != nil {
		return nil, fmt.Errorf("run lsblk: %w", err)
	}
	return parseLSBLK(output)
}
