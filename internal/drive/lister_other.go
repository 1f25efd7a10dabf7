//go:build !linux && !darwin && !windows

package drive

import (
	"context"
	"fmt"
	"runtime"
)

type unsupportedLister struct{}

func newPlatformLister(commandRunner) Lister {
	return unsupportedLister{}
}

func (unsupportedLister) List(context.Context) ([]Mount, error) {
	return nil, fmt.Errorf("mount listing not supported on %s", runtime.GOOS)
}
