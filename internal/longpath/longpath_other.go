//go:build !windows

package longpath

import "errors"

var errAccessDenied = errors.New("access denied")

func enable() (Status, error) {
	return Unsupported, nil
}
