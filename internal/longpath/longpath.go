// Package longpath turns on the Windows long path setting so nested folders
// can grow past the classic 260 character limit. Other platforms have no such
// switch and report Unsupported.
package longpath

import (
	"context"
	"errors"
	"log/slog"

	"burrow/internal/logging"
	"burrow/internal/services"
)

// Status describes what Enable did.
type Status string

const (
	Enabled        Status = "enabled"
	AlreadyEnabled Status = "already_enabled"
	Unsupported    Status = "unsupported"
	Failed         Status = "failed"
)

// Enable sets the system-wide long path flag. Failures are logged and
// returned wrapped in services.ErrEnvironment; callers are expected to carry on.
func Enable(ctx context.Context, logger *slog.Logger) (Status, error) {
	logger = logging.WithContext(ctx, logging.NewComponentLogger(logger, "longpath"))

	status, err := enable()
	switch {
	case err != nil:
		hint := "re-run from an elevated prompt to allow deeper nesting"
		if errors.Is(err, errAccessDenied) {
			hint = "administrator rights are required to change this setting"
		}
		logging.WarnWithContext(logger, "could not enable long path support",
			"longpath_enable_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, hint),
			logging.String(logging.FieldImpact, "nesting may stop at a shallower depth"),
		)
		return Failed, services.Wrap(services.ErrEnvironment, "longpath", "enable", "", err)
	case status == Enabled:
		logger.Info("long path support enabled; a restart may be required",
			logging.String(logging.FieldEventType, "longpath_enabled"),
		)
	case status == AlreadyEnabled:
		logger.Debug("long path support already enabled")
	default:
		logger.Debug("long path support not applicable on this platform")
	}
	return status, nil
}
