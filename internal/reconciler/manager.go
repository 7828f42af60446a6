package reconciler

import (
	"context"
	"fmt"
	"strings"

	systemd "github.com/coreos/go-systemd/v22/dbus"
	"golang.org/x/sys/unix"
)

// ServiceManager abstracts the live service/init manager the reconciler
// talks to. The production implementation speaks systemd's D-Bus API; tests
// substitute a fake.
type ServiceManager interface {
	// IsActive reports whether the named service is currently active.
	IsActive(ctx context.Context, name string) (bool, error)

	// CanReload reports whether the manager supports a native reload verb
	// for the named service.
	CanReload(ctx context.Context, name string) (bool, error)

	// Reload asks the manager to perform its native reload.
	Reload(ctx context.Context, name string) error

	// Start starts the named service.
	Start(ctx context.Context, name string) error

	// Stop stops the named service.
	Stop(ctx context.Context, name string) error

	// MainPID returns the main process id of the named service.
	MainPID(ctx context.Context, name string) (int, error)

	// Kill delivers a signal to the given process id.
	Kill(pid int, signal string) error
}

// systemdManager implements ServiceManager over the systemd D-Bus API.
type systemdManager struct {
	conn *systemd.Conn
}

// NewSystemdManager connects to the system bus and returns a ServiceManager
// backed by systemd. The caller owns the connection for the lifetime of the
// reconciler.
func NewSystemdManager(ctx context.Context) (ServiceManager, error) {
	conn, err := systemd.NewWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("connecting to systemd: %w", err)
	}
	return &systemdManager{conn: conn}, nil
}

// unitName maps a bare service name to its systemd unit name.
func unitName(name string) string {
	if strings.Contains(name, ".") {
		return name
	}
	return name + ".service"
}

func (m *systemdManager) IsActive(ctx context.Context, name string) (bool, error) {
	prop, err := m.conn.GetUnitPropertyContext(ctx, unitName(name), "ActiveState")
	if err != nil {
		return false, fmt.Errorf("querying ActiveState of %s: %w", name, err)
	}
	return prop.Value.Value() == "active", nil
}

func (m *systemdManager) CanReload(ctx context.Context, name string) (bool, error) {
	prop, err := m.conn.GetUnitPropertyContext(ctx, unitName(name), "CanReload")
	if err != nil {
		return false, fmt.Errorf("querying CanReload of %s: %w", name, err)
	}
	canReload, ok := prop.Value.Value().(bool)
	return ok && canReload, nil
}

// jobDone waits for a queued systemd job to finish and maps its result
// string to an error.
func jobDone(ctx context.Context, name string, ch <-chan string) error {
	select {
	case result := <-ch:
		if result != "done" {
			return fmt.Errorf("systemd job for %s finished with result %q", name, result)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *systemdManager) Reload(ctx context.Context, name string) error {
	ch := make(chan string, 1)
	if _, err := m.conn.ReloadUnitContext(ctx, unitName(name), "replace", ch); err != nil {
		return fmt.Errorf("reloading %s: %w", name, err)
	}
	return jobDone(ctx, name, ch)
}

func (m *systemdManager) Start(ctx context.Context, name string) error {
	ch := make(chan string, 1)
	if _, err := m.conn.StartUnitContext(ctx, unitName(name), "replace", ch); err != nil {
		return fmt.Errorf("starting %s: %w", name, err)
	}
	return jobDone(ctx, name, ch)
}

func (m *systemdManager) Stop(ctx context.Context, name string) error {
	ch := make(chan string, 1)
	if _, err := m.conn.StopUnitContext(ctx, unitName(name), "replace", ch); err != nil {
		return fmt.Errorf("stopping %s: %w", name, err)
	}
	return jobDone(ctx, name, ch)
}

func (m *systemdManager) MainPID(ctx context.Context, name string) (int, error) {
	prop, err := m.conn.GetServicePropertyContext(ctx, unitName(name), "MainPID")
	if err != nil {
		return 0, fmt.Errorf("querying MainPID of %s: %w", name, err)
	}
	pid, ok := prop.Value.Value().(uint32)
	if !ok || pid == 0 {
		return 0, fmt.Errorf("service %s has no main process", name)
	}
	return int(pid), nil
}

func (m *systemdManager) Kill(pid int, signal string) error {
	sig, err := lookupSignal(signal)
	if err != nil {
		return err
	}
	if err := unix.Kill(pid, sig); err != nil {
		return fmt.Errorf("delivering %s to pid %d: %w", signal, pid, err)
	}
	return nil
}

// lookupSignal maps the signal names used by reload strategies to their
// POSIX numbers.
func lookupSignal(name string) (unix.Signal, error) {
	switch strings.TrimPrefix(strings.ToUpper(name), "SIG") {
	case "HUP":
		return unix.SIGHUP, nil
	case "USR1":
		return unix.SIGUSR1, nil
	case "USR2":
		return unix.SIGUSR2, nil
	case "TERM":
		return unix.SIGTERM, nil
	case "INT":
		return unix.SIGINT, nil
	default:
		return 0, fmt.Errorf("unknown signal %q", name)
	}
}
