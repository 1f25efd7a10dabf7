//go:build windows

package drive

import (
	"context"
	"fmt"

	"golang.org/x/sys/windows"
)

type logicalDriveLister struct{}

func newPlatformLister(commandRunner) Lister {
	return logicalDriveLister{}
}

// List walks the logical drive bitmask. Drives that are not ready, such as an
// empty card reader slot, are skipped.
func (logicalDriveLister) List(ctx context.Context) ([]Mount, error) {
	mask, err := windows.GetLogicalDrives()
	if err != nil {
		return nil, fmt.Errorf("get logical drives: %w", err)
	}
	var mounts []Mount
	for i := 0; i < 26; i++ {
		if mask&(1<<uint(i)) == 0 {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		root := string(rune('A'+i)) + `:\`
		rootPtr, err := windows.UTF16PtrFromString(root)
		if err != nil {
			continue
		}
		driveType := windows.GetDriveType(rootPtr)
		if driveType == windows.DRIVE_NO_ROOT_DIR || driveType == windows.DRIVE_UNKNOWN {
			continue
		}
		label, ok := volumeLabel(rootPtr)
		if !ok {
			continue
		}
		mounts = append(mounts, Mount{
			Path:      root,
			Device:    root[:2],
			Label:     label,
			Removable: driveType == windows.DRIVE_REMOVABLE,
		})
	}
	return mounts, nil
}

func volumeLabel(root *uint16) (string, bool) {
	var name [windows.MAX_PATH + 1]uint16
	var serial, maxComponent, flags uint32
	if err := windows.GetVolumeInformation(root, &name[0], uint32(len(name)), &serial, &maxComponent, &flags, nil, 0); err != nil {
		return "", false
	}
	return windows.UTF16ToString(name[:]), true
}
