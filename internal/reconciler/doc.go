// Package reconciler brings running services in line with configuration
// changes without a full reboot.
//
// The reconciler is independent of the compilation pipeline: it consumes a
// service name and a graceful/ungraceful instruction from a caller that
// already knows a change occurred, not the configuration tree itself.
//
// # Strategy resolution
//
// For each attempt the least-disruptive available mechanism is chosen:
//
//  1. a strategy explicitly registered for the service name,
//  2. the service manager's native reload verb, when the unit supports it,
//  3. a reload sub-command of the service's own executable found on the
//     search path (reload, force-reload, graceful),
//  4. a stop/start restart with a short grace period, as the last resort.
//
// # State machine
//
// Each invocation moves Idle → StrategyResolution → Executing → one of the
// terminal outcomes Succeeded, Failed, NotRunning or Unsupported. An
// inactive service short-circuits before any strategy executes. Every
// outcome is recorded into the per-service ServiceReloadState.
//
// # Concurrency
//
// Reload attempts for different names may run concurrently; attempts for
// the same name are serialized by a per-service lock so that two callers
// cannot race on process signaling or on the shared state record. The
// attempt timeout is the only cancellation mechanism; commands spawned by
// this layer are killed with their process group on expiry, while custom
// handlers are abandoned cooperatively.
//
// The reconciler never retries. Retry policy, if any, belongs to the
// caller.
package reconciler
