package drive

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"burrow/internal/logging"
	"burrow/internal/services"
)

const defaultPollInterval = time.Second

// Options configures a Monitor.
type Options struct {
	PollInterval   time.Duration
	RemovableRoots []string
	// Wake triggers an immediate poll when it receives a value.
	Wake <-chan struct{}
}

// Monitor polls a Lister and reports the first newly attached removable mount.
type Monitor struct {
	lister     Lister
	classifier Classifier
	interval   time.Duration
	wake       <-chan struct{}
	logger     *slog.Logger
}

// NewMonitor builds a monitor around lister.
func NewMonitor(lister Lister, opts Options, logger *slog.Logger) *Monitor {
	interval := opts.PollInterval
	if interval <= 0 {
		interval = defaultPollInterval
	}
	return &Monitor{
		lister: lister,
		classifier: Classifier{
			Roots:   append([]string(nil), opts.RemovableRoots...),
			Windows: runtime.GOOS == "windows",
		},
		interval: interval,
		wake:     opts.Wake,
		logger:   logging.NewComponentLogger(logger, "drive-monitor"),
	}
}

// DetectNew blocks until a removable mount appears that was absent on the
// previous tick and returns it. The first successful listing only sets the
// baseline. It returns early only when ctx is cancelled.
func (m *Monitor) DetectNew(ctx context.Context) (Event, error) {
	logger := logging.WithContext(ctx, m.logger)

	var previous Snapshot
	haveBaseline := false

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		current, err := m.snapshot(ctx)
		switch {
		case err != nil:
			if ctx.Err() != nil {
				return Event{}, services.Wrap(services.ErrInterrupted, "drive", "detect", "", ctx.Err())
			}
			logging.WarnWithContext(logger, "mount listing failed; will retry",
				"mount_list_failed",
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "verify lsblk/mount are installed and readable"),
				logging.String(logging.FieldImpact, "drive detection delayed until the next tick"),
			)
		case !haveBaseline:
			previous = current
			haveBaseline = true
			logger.Info("waiting for removable drive",
				logging.String(logging.FieldEventType, "drive_wait_started"),
				logging.Int("attached", current.Len()),
				logging.Duration("poll_interval", m.interval),
			)
		default:
			if added := current.Added(previous); len(added) > 0 {
				event := Event{Mount: added[0]}
				logger.Info("removable drive detected",
					logging.String(logging.FieldEventType, "drive_detected"),
					logging.String("path", event.Path),
					logging.String("device", event.Device),
					logging.String("label", event.Label),
					logging.Int("new_mounts", len(added)),
				)
				return event, nil
			}
			previous = current
		}

		select {
		case <-ctx.Done():
			return Event{}, services.Wrap(services.ErrInterrupted, "drive", "detect", "", ctx.Err())
		case <-ticker.C:
		case <-m.wake:
			logger.Debug("poll triggered by device event")
		}
	}
}

func (m *Monitor) snapshot(ctx context.Context) (Snapshot, error) {
	mounts, err := m.lister.List(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	return NewSnapshot(mounts, m.classifier), nil
}
