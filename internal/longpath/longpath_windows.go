//go:build windows

package longpath

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

const (
	fileSystemKey = `SYSTEM\CurrentControlSet\Control\FileSystem`
	valueName     = "LongPathsEnabled"
)

var errAccessDenied = windows.ERROR_ACCESS_DENIED

type dwordKey interface {
	GetIntegerValue(name string) (uint64, uint32, error)
	SetDWordValue(name string, value uint32) error
	Close() error
}

var openKey = func() (dwordKey, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, fileSystemKey, registry.QUERY_VALUE|registry.SET_VALUE)
	if err != nil {
		return nil, err
	}
	return k, nil
}

func enable() (Status, error) {
	key, err := openKey()
	if err != nil {
		return Failed, fmt.Errorf("open HKLM\\%s: %w", fileSystemKey, err)
	}
	defer func() { _ = key.Close() }()

	current, _, err := key.GetIntegerValue(valueName)
	if err == nil && current == 1 {
		return AlreadyEnabled, nil
	}
	if err != nil && !errors.Is(err, registry.ErrNotExist) {
		return Failed, fmt.Errorf("read %s: %w", valueName, err)
	}
	if err := key.SetDWordValue(valueName, 1); err != nil {
		return Failed, fmt.Errorf("set %s: %w", valueName, err)
	}
	return Enabled, nil
}
