//go:build !linux

package drive

import (
	"context"
	"log/slog"
)

// UdevWaker is inert outside Linux; C never fires.
type UdevWaker struct{}

// NewUdevWaker returns an inert waker.
func NewUdevWaker(*slog.Logger) *UdevWaker {
	return &UdevWaker{}
}

// C returns nil, which blocks forever in a select.
func (w *UdevWaker) C() <-chan struct{} { return nil }

// Start is a no-op.
func (w *UdevWaker) Start(context.Context) error { return nil }

// Stop is a no-op.
func (w *UdevWaker) Stop() {}

// Running always reports false.
func (w *UdevWaker) Running() bool { return false }
