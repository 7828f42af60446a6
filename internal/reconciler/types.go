package reconciler

import (
	"context"
	"fmt"
	"time"
)

// ReloadMethod names the mechanism a reload attempt used.
type ReloadMethod string

const (
	MethodSignal        ReloadMethod = "signal"
	MethodCommand       ReloadMethod = "command"
	MethodManagerReload ReloadMethod = "manager-reload"
	MethodRestart       ReloadMethod = "restart"
	MethodCustom        ReloadMethod = "custom"
)

// ReloadStrategy is the sealed interface over the mechanisms for applying a
// configuration change to a running service. A strategy is immutable once
// chosen for an attempt.
type ReloadStrategy interface {
	// Method returns the method this strategy dispatches as.
	Method() ReloadMethod

	sealedStrategy()
}

// SignalStrategy delivers a named POSIX signal (e.g. "HUP") to the service's
// main process.
type SignalStrategy struct {
	Signal string
}

func (SignalStrategy) Method() ReloadMethod { return MethodSignal }
func (SignalStrategy) sealedStrategy()      {}

// CommandStrategy runs an external command; a zero exit status means the
// reload succeeded.
type CommandStrategy struct {
	Argv []string
}

func (CommandStrategy) Method() ReloadMethod { return MethodCommand }
func (CommandStrategy) sealedStrategy()      {}

// ManagerReloadStrategy asks the service manager to perform its native
// reload verb for the unit.
type ManagerReloadStrategy struct{}

func (ManagerReloadStrategy) Method() ReloadMethod { return MethodManagerReload }
func (ManagerReloadStrategy) sealedStrategy()      {}

// RestartStrategy stops the service, waits GracePeriod, and starts it again.
// This is the only strategy with a guaranteed availability gap, bounded by
// GracePeriod.
type RestartStrategy struct {
	GracePeriod time.Duration
}

func (RestartStrategy) Method() ReloadMethod { return MethodRestart }
func (RestartStrategy) sealedStrategy()      {}

// CustomStrategy delegates to caller-supplied logic; the handler's error is
// passed through unchanged.
type CustomStrategy struct {
	Handler func(ctx context.Context, name string) error
}

func (CustomStrategy) Method() ReloadMethod { return MethodCustom }
func (CustomStrategy) sealedStrategy()      {}

// UnsupportedStrategy marks a service for which no reload mechanism exists.
type UnsupportedStrategy struct {
	Reason string
}

func (UnsupportedStrategy) Method() ReloadMethod { return "" }
func (UnsupportedStrategy) sealedStrategy()      {}

// ReloadResult is the sealed interface over the terminal outcomes of one
// reload attempt. NotRunning and Unsupported are expected, non-exceptional
// outcomes; callers must branch on the concrete type rather than treat them
// as errors.
type ReloadResult interface {
	fmt.Stringer

	sealedResult()
}

// Success reports a completed reload and the method that achieved it.
type Success struct {
	Method ReloadMethod
}

func (Success) sealedResult()    {}
func (s Success) String() string { return fmt.Sprintf("success (%s)", s.Method) }

// Failed reports a reload attempt that ran and did not succeed. TimedOut is
// set when the attempt was aborted by the per-attempt timeout.
type Failed struct {
	Cause    error
	TimedOut bool
}

func (Failed) sealedResult() {}
func (f Failed) String() string {
	if f.TimedOut {
		return fmt.Sprintf("failed: timed out: %v", f.Cause)
	}
	return fmt.Sprintf("failed: %v", f.Cause)
}

// NotRunning reports that the service was not active; no strategy executed.
type NotRunning struct{}

func (NotRunning) sealedResult()  {}
func (NotRunning) String() string { return "not running" }

// Unsupported reports that no reload mechanism is available for the service.
type Unsupported struct {
	Reason string
}

func (Unsupported) sealedResult()    {}
func (u Unsupported) String() string { return "unsupported: " + u.Reason }

// ServiceReloadState is the per-service record of reload attempts. It is
// owned exclusively by the Reconciler and mutated only by reload attempts
// for that service name.
type ServiceReloadState struct {
	Name         string
	LastAttempt  time.Time
	LastSuccess  time.Time
	AttemptCount int
	LastError    error
}
