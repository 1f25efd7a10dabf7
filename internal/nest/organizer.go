package nest

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"burrow/internal/logging"
	"burrow/internal/services"
)

// DefaultMaxDepth matches the classic 260-character MAX_PATH ceiling.
const DefaultMaxDepth = 260

// Opener shows a directory to the user. Failures are never fatal.
type Opener interface {
	Open(ctx context.Context, path string) error
}

// Options configures an Organizer.
type Options struct {
	MaxDepth int
	// Opener is called for the root and after each level. Nil disables it.
	Opener Opener
	// Pause follows every Opener call.
	Pause time.Duration
}

// Organizer nests a directory tree level by level.
type Organizer struct {
	maxDepth int
	opener   Opener
	pause    time.Duration
	logger   *slog.Logger

	rename func(oldpath, newpath string) error
	mkdir  func(path string) error
}

// New builds an organizer.
func New(opts Options, logger *slog.Logger) *Organizer {
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Organizer{
		maxDepth: maxDepth,
		opener:   opts.Opener,
		pause:    opts.Pause,
		logger:   logging.NewComponentLogger(logger, "organizer"),
		rename:   os.Rename,
		mkdir:    func(path string) error { return os.Mkdir(path, 0o755) },
	}
}

// Organize nests the contents of root until the depth limit or the first
// directory creation failure. Only an invalid root or cancellation of ctx
// produce an error; every other outcome is described by the Result.
func (o *Organizer) Organize(ctx context.Context, root string) (Result, error) {
	result := Result{Root: root, FinalDir: root}

	info, err := os.Stat(root)
	if err != nil {
		return result, services.Wrap(services.ErrConfiguration, "organizer", "stat root", root, err)
	}
	if !info.IsDir() {
		return result, services.Wrap(services.ErrConfiguration, "organizer", "stat root", root+" is not a directory", nil)
	}

	ctx = services.WithMount(ctx, root)
	logger := logging.WithContext(ctx, o.logger)
	logger.Info("starting organization",
		logging.String(logging.FieldEventType, "organize_started"),
		logging.Int("max_depth", o.maxDepth),
	)

	o.show(ctx, root)

	current := root
	for level := 1; ; level++ {
		if ctx.Err() != nil {
			return o.interrupted(ctx, result)
		}
		if level > o.maxDepth {
			result.Reason = ReasonMaxDepth
			break
		}

		levelCtx := services.WithLevel(ctx, level)
		child, stop, err := o.runLevel(levelCtx, current, level, &result)
		if err != nil {
			return o.interrupted(ctx, result)
		}
		if stop {
			break
		}
		result.Levels = level
		result.FinalDir = child
		current = child
		o.show(levelCtx, child)
	}

	o.logFinished(logger, result)
	return result, nil
}

// runLevel performs one level. It returns stop when the loop must end with
// result.Reason already set, and a non-nil error only on cancellation.
func (o *Organizer) runLevel(ctx context.Context, dir string, level int, result *Result) (string, bool, error) {
	logger := logging.WithContext(ctx, o.logger)
	name := strconv.Itoa(level)
	child := filepath.Join(dir, name)

	entries, err := listEntries(dir, name)
	if err != nil {
		logging.WarnWithContext(logger, "cannot list directory; stopping",
			"level_list_failed",
			logging.Error(err),
			logging.String("dir", dir),
			logging.String(logging.FieldErrorHint, "check the drive is still attached and readable"),
			logging.String(logging.FieldImpact, "nesting stopped before this level"),
		)
		result.Reason = ReasonListError
		result.Err = services.Wrap(services.ErrLevelFatal, "organizer", "list", dir, err)
		return "", true, nil
	}

	if err := o.ensureDir(child); err != nil {
		logger.Info("cannot create next level; nesting complete",
			logging.String(logging.FieldEventType, "level_create_failed"),
			logging.String("dir", child),
			logging.Error(err),
		)
		result.Reason = ReasonCreationError
		result.Err = services.Wrap(services.ErrLevelFatal, "organizer", "mkdir", child, err)
		return "", true, nil
	}

	logger.Debug("processing level",
		logging.String("dir", dir),
		logging.Int("entries", len(entries)),
	)

	moved := 0
	for _, entry := range entries {
		if ctx.Err() != nil {
			return "", true, ctx.Err()
		}
		switch o.moveEntry(logger, dir, child, entry) {
		case moveDone:
			moved++
			result.Moved++
		case moveCollision:
			result.Skipped++
			result.SkippedPaths = append(result.SkippedPaths, filepath.Join(dir, entry))
		case moveFailed:
			result.Failed++
			result.FailedPaths = append(result.FailedPaths, filepath.Join(dir, entry))
		}
	}

	logger.Info("level complete",
		logging.String(logging.FieldEventType, "level_complete"),
		logging.String("dir", child),
		logging.Int("moved", moved),
		logging.Int("listed", len(entries)),
	)
	return child, false, nil
}

type moveOutcome int

const (
	moveDone moveOutcome = iota
	moveCollision
	moveFailed
)

func (o *Organizer) moveEntry(logger *slog.Logger, dir, child, name string) moveOutcome {
	src := filepath.Join(dir, name)
	dst := filepath.Join(child, name)

	if _, err := os.Lstat(dst); err == nil {
		logging.WarnWithContext(logger, "destination exists; skipping item",
			"item_collision",
			logging.String("source", src),
			logging.String("destination", dst),
			logging.String(logging.FieldErrorHint, "remove or rename the existing destination and re-run"),
			logging.String(logging.FieldImpact, "item left at its current level"),
		)
		return moveCollision
	} else if !errors.Is(err, fs.ErrNotExist) {
		logging.WarnWithContext(logger, "cannot inspect destination; skipping item",
			"item_move_failed",
			logging.Error(err),
			logging.String("source", src),
			logging.String("destination", dst),
			logging.String(logging.FieldImpact, "item left at its current level"),
		)
		return moveFailed
	}

	if err := o.rename(src, dst); err != nil {
		hint := "check the item is not open in another program and is writable"
		if isCrossDevice(err) {
			hint = "item lives on a different volume; cross-volume moves are not performed"
		}
		logging.WarnWithContext(logger, "move failed; skipping item",
			"item_move_failed",
			logging.Error(err),
			logging.String("source", src),
			logging.String("destination", dst),
			logging.String(logging.FieldErrorHint, hint),
			logging.String(logging.FieldImpact, "item left at its current level"),
		)
		return moveFailed
	}
	return moveDone
}

// ensureDir creates path, reusing an existing directory untouched.
func (o *Organizer) ensureDir(path string) error {
	err := o.mkdir(path)
	if err == nil {
		return nil
	}
	if errors.Is(err, fs.ErrExist) {
		info, statErr := os.Stat(path)
		if statErr == nil && info.IsDir() {
			return nil
		}
		if statErr == nil {
			return fmt.Errorf("%s exists and is not a directory: %w", path, err)
		}
	}
	return err
}

// listEntries returns the names in dir in enumeration order, minus exclude.
func listEntries(dir, exclude string) ([]string, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	entries, err := f.ReadDir(-1)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Name() == exclude {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

func (o *Organizer) show(ctx context.Context, path string) {
	if o.opener == nil {
		return
	}
	if err := o.opener.Open(ctx, path); err != nil {
		logging.WithContext(ctx, o.logger).Debug("open in file browser failed",
			logging.String("path", path),
			logging.Error(err),
		)
	}
	if o.pause <= 0 {
		return
	}
	timer := time.NewTimer(o.pause)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

func (o *Organizer) interrupted(ctx context.Context, result Result) (Result, error) {
	result.Reason = ReasonInterrupted
	o.logFinished(logging.WithContext(ctx, o.logger), result)
	return result, services.Wrap(services.ErrInterrupted, "organizer", "organize", "", ctx.Err())
}

func (o *Organizer) logFinished(logger *slog.Logger, result Result) {
	attrs := []logging.Attr{
		logging.String(logging.FieldEventType, "organize_finished"),
		logging.String("reason", string(result.Reason)),
		logging.Int("levels", result.Levels),
		logging.Int("moved", result.Moved),
		logging.Int("skipped", result.Skipped),
		logging.Int("failed", result.Failed),
		logging.String("final_dir", result.FinalDir),
	}
	if result.Err != nil {
		attrs = append(attrs, logging.Error(result.Err))
	}
	logger.Info("organization finished", logging.Args(attrs...)...)
}
