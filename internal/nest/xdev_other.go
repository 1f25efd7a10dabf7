//go:build !unix && !windows

package nest

func isCrossDevice(error) bool { return false }
