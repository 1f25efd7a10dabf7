//go:build !unix && !windows

package preflight

func checkAccess(string) error { return nil }
