//go:build linux

package drive

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/pilebones/go-udev/netlink"

	"burrow/internal/logging"
)

// UdevWaker listens for udev block-device events and signals the monitor to
// poll immediately. Polling still works when the netlink socket is unavailable.
type UdevWaker struct {
	logger *slog.Logger
	wake   chan struct{}

	mu      sync.Mutex
	conn    *netlink.UEventConn
	quit    chan struct{}
	running bool
}

// NewUdevWaker returns a waker that has not started listening yet.
func NewUdevWaker(logger *slog.Logger) *UdevWaker {
	return &UdevWaker{
		logger: logging.NewComponentLogger(logger, "udev-waker"),
		wake:   make(chan struct{}, 1),
	}
}

// C returns the channel that receives a value after each matching device event.
func (w *UdevWaker) C() <-chan struct{} {
	if w == nil {
		return nil
	}
	return w.wake
}

// Start connects to the kernel udev netlink group. Connection failures are
// logged and reported as nil.
func (w *UdevWaker) Start(ctx context.Context) error {
	if w == nil {
		return nil
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return nil
	}

	conn := new(netlink.UEventConn)
	if err := conn.Connect(netlink.UdevEvent); err != nil {
		logging.WarnWithContext(w.logger, "failed to connect to netlink socket; falling back to polling only",
			"netlink_connect_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "ensure the process may open NETLINK_KOBJECT_UEVENT sockets"),
			logging.String(logging.FieldImpact, "drive detection waits for the next poll tick"),
		)
		return nil
	}

	w.conn = conn
	w.quit = make(chan struct{})
	w.running = true

	quit := w.quit
	go w.loop(ctx, conn, quit)

	w.logger.Debug("udev waker started",
		logging.String(logging.FieldEventType, "udev_waker_started"),
	)
	return nil
}

// Stop closes the netlink socket. Safe to call more than once.
func (w *UdevWaker) Stop() {
	if w == nil {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return
	}
	if w.quit != nil {
		close(w.quit)
		w.quit = nil
	}
	if w.conn != nil {
		_ = w.conn.Close()
		w.conn = nil
	}
	w.running = false
}

// Running reports whether the netlink socket is open.
func (w *UdevWaker) Running() bool {
	if w == nil {
		return false
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

func (w *UdevWaker) loop(ctx context.Context, conn *netlink.UEventConn, quit <-chan struct{}) {
	queue := make(chan netlink.UEvent)
	errs := make(chan error)
	monitorQuit := conn.Monitor(queue, errs, buildMatcher())

	for {
		select {
		case <-ctx.Done():
			close(monitorQuit)
			return
		case <-quit:
			close(monitorQuit)
			return
		case uevent := <-queue:
			w.handleEvent(uevent)
		case err := <-errs:
			logging.WarnWithContext(w.logger, "netlink monitor error",
				"netlink_monitor_error",
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "check kernel netlink subsystem"),
				logging.String(logging.FieldImpact, "drive detection may fall back to polling"),
			)
		}
	}
}

// buildMatcher matches SUBSYSTEM=block with ACTION=add|change|remove.
func buildMatcher() netlink.Matcher {
	action := "add|change|remove"
	rules := &netlink.RuleDefinitions{}
	rules.AddRule(netlink.RuleDefinition{
		Action: &action,
		Env: map[string]string{
			"SUBSYSTEM": "block",
		},
	})
	return rules
}

func (w *UdevWaker) handleEvent(uevent netlink.UEvent) {
	devtype := strings.TrimSpace(uevent.Env["DEVTYPE"])
	if devtype != "" && devtype != "disk" && devtype != "partition" {
		return
	}
	w.logger.Debug("block device event",
		logging.String("action", string(uevent.Action)),
		logging.String("device", uevent.Env["DEVNAME"]),
	)
	select {
	case w.wake <- struct{}{}:
	default:
	}
}
