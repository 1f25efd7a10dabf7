package run

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"burrow/internal/config"
	"burrow/internal/drive"
	"burrow/internal/explorer"
	"burrow/internal/logging"
	"burrow/internal/longpath"
	"burrow/internal/nest"
	"burrow/internal/preflight"
	"burrow/internal/services"
)

// Options adjusts a single run without touching the config file.
type Options struct {
	// Root skips drive detection and organizes this directory instead.
	Root     string
	MaxDepth int
	LogLevel string
}

// Summary describes what a run did.
type Summary struct {
	RunID    string
	Root     string
	Detected *drive.Event
	LongPath longpath.Status
	Result   nest.Result
	Started  time.Time
	Finished time.Time
}

// Execute performs one run. Interrupts arrive through SIGINT/SIGTERM and
// surface as services.ErrInterrupted with a partial Summary.
func Execute(cmdCtx context.Context, cfg *config.Config, opts Options) (Summary, error) {
	if cfg == nil {
		return Summary{}, services.Wrap(services.ErrConfiguration, "run", "execute", "config is required", nil)
	}
	signalCtx, cancel := signal.NotifyContext(cmdCtx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	r := &runner{
		cfg:       cfg,
		opts:      opts,
		lister:    drive.NewLister(),
		longPath:  longpath.Enable,
		preflight: preflight.RunAll,
	}
	return r.execute(signalCtx)
}

type runner struct {
	cfg    *config.Config
	opts   Options
	logger *slog.Logger

	lister    drive.Lister
	opener    nest.Opener
	longPath  func(context.Context, *slog.Logger) (longpath.Status, error)
	preflight func(*config.Config) []preflight.Result
	wake      <-chan struct{}
}

func (r *runner) execute(ctx context.Context) (Summary, error) {
	summary := Summary{RunID: uuid.NewString(), Started: time.Now()}
	ctx = services.WithRunID(ctx, summary.RunID)

	cfg := *r.cfg
	if level := strings.TrimSpace(r.opts.LogLevel); level != "" {
		cfg.Logging.Level = level
	}
	if r.opts.MaxDepth > 0 {
		cfg.Nest.MaxDepth = r.opts.MaxDepth
	}

	if err := cfg.EnsureDirectories(); err != nil {
		return summary, services.Wrap(services.ErrConfiguration, "run", "ensure directories", "", err)
	}
	logger, err := logging.NewFromConfig(&cfg, summary.RunID)
	if err != nil {
		return summary, fmt.Errorf("init logger: %w", err)
	}
	r.logger = logging.NewComponentLogger(logger, "run")
	if r.opener == nil && cfg.Explorer.Enabled {
		r.opener = explorer.New(logger)
	}

	lock := flock.New(cfg.LockPath())
	ok, err := lock.TryLock()
	if err != nil {
		return summary, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return summary, services.Wrap(services.ErrConfiguration, "run", "acquire lock",
			"another burrow run is active (lock "+cfg.LockPath()+")", nil)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			r.logger.Warn("failed to release instance lock", logging.Error(err))
		}
	}()

	if err := r.checkReadiness(ctx, &cfg); err != nil {
		return summary, err
	}

	if cfg.LongPath.Enabled && r.longPath != nil {
		status, _ := r.longPath(ctx, logger)
		summary.LongPath = status
	}

	root := strings.TrimSpace(r.opts.Root)
	if root == "" {
		event, err := r.waitForDrive(ctx, &cfg, logger)
		if err != nil {
			summary.Finished = time.Now()
			return summary, err
		}
		summary.Detected = &event
		root = event.Path
	} else if expanded, err := config.ExpandPath(root); err == nil {
		root = expanded
	}
	summary.Root = root

	if check := preflight.CheckDirectoryAccess("Organize root", root); !check.Passed {
		summary.Finished = time.Now()
		return summary, services.Wrap(services.ErrConfiguration, "run", "check root", check.Detail, nil)
	}

	organizer := nest.New(nest.Options{
		MaxDepth: cfg.Nest.MaxDepth,
		Opener:   r.opener,
		Pause:    cfg.ExplorerPause(),
	}, logger)
	result, err := organizer.Organize(ctx, root)
	summary.Result = result
	summary.Finished = time.Now()
	return summary, err
}

func (r *runner) checkReadiness(ctx context.Context, cfg *config.Config) error {
	logger := logging.WithContext(ctx, r.logger)
	var results []preflight.Result
	if r.preflight != nil {
		results = r.preflight(cfg)
	}
	for _, res := range results {
		if res.Passed {
			logger.Debug("preflight check passed",
				logging.String("check", res.Name),
				logging.String("detail", res.Detail),
			)
			continue
		}
		logging.WarnWithContext(logger, "preflight check failed",
			"preflight_failed",
			logging.String("check", res.Name),
			logging.String("detail", res.Detail),
			logging.Bool("optional", res.Optional),
			logging.String(logging.FieldImpact, impactFor(res)),
		)
	}
	// Mount listing commands only matter when waiting for a drive.
	blocking, found := preflight.FirstBlocking(results)
	if found && (r.opts.Root == "" || blocking.Name == "State directory") {
		return services.Wrap(services.ErrConfiguration, "run", "preflight", blocking.Name+": "+blocking.Detail, nil)
	}
	return nil
}

func impactFor(res preflight.Result) string {
	if res.Optional {
		return "feature degraded; run continues"
	}
	return "run cannot continue"
}

func (r *runner) waitForDrive(ctx context.Context, cfg *config.Config, logger *slog.Logger) (drive.Event, error) {
	wake := r.wake
	if wake == nil {
		var sources []<-chan struct{}
		if cfg.Drive.Udev {
			waker := drive.NewUdevWaker(logger)
			if err := waker.Start(ctx); err == nil {
				defer waker.Stop()
				sources = append(sources, waker.C())
			}
		}
		if cfg.Drive.WatchRoots && len(cfg.Drive.RemovableRoots) > 0 {
			watcher := drive.NewRootWatcher(cfg.Drive.RemovableRoots, logger)
			if err := watcher.Start(ctx); err != nil {
				r.logger.Debug("root watcher unavailable", logging.Error(err))
			} else {
				defer watcher.Stop()
				sources = append(sources, watcher.C())
			}
		}
		wake = drive.MergeWake(ctx, sources...)
	}
	monitor := drive.NewMonitor(r.lister, drive.Options{
		PollInterval:   cfg.PollInterval(),
		RemovableRoots: cfg.Drive.RemovableRoots,
		Wake:           wake,
	}, logger)
	return monitor.DetectNew(ctx)
}
