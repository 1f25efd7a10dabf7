package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrTransient marks a failure confined to a single item; processing continues.
	ErrTransient = errors.New("transient failure")
	// ErrLevelFatal marks a failure that ends the nesting loop.
	ErrLevelFatal = errors.New("level fatal")
	// ErrEnvironment marks a best-effort environment adjustment that did not apply.
	ErrEnvironment = errors.New("environment adjustment failed")
	// ErrConfiguration marks unusable settings or inputs.
	ErrConfiguration = errors.New("configuration error")
	// ErrInterrupted marks work stopped by a process interrupt.
	ErrInterrupted = errors.New("interrupted")
)

// Wrap builds an error message that includes component context while tagging it with
// the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrTransient
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Outcome classifies an error returned from a run into the labels printed by the CLI.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "completed"
	case errors.Is(err, ErrInterrupted):
		return "interrupted"
	default:
		return "error"
	}
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
