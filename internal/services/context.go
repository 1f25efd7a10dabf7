package services

import "context"

type contextKey string

const (
	runIDKey contextKey = "run_id"
	levelKey contextKey = "level"
	mountKey contextKey = "mount"
)

// WithRunID annotates context with the run correlation identifier.
func WithRunID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromContext extracts the run correlation identifier if present.
func RunIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(runIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithLevel annotates context with the nesting level being processed.
func WithLevel(ctx context.Context, level int) context.Context {
	return context.WithValue(ctx, levelKey, level)
}

// LevelFromContext extracts the nesting level if present.
func LevelFromContext(ctx context.Context) (int, bool) {
	v := ctx.Value(levelKey)
	if v == nil {
		return 0, false
	}
	switch val := v.(type) {
	case int:
		return val, true
	case int64:
		return int(val), true
	default:
		return 0, false
	}
}

// WithMount annotates context with the mount point being organized.
func WithMount(ctx context.Context, mount string) context.Context {
	if mount == "" {
		return ctx
	}
	return context.WithValue(ctx, mountKey, mount)
}

// MountFromContext returns the mount point if present.
func MountFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(mountKey)
	if str, ok := v.(string); ok && str != "" {
		return str, true
	}
	return "", false
}
