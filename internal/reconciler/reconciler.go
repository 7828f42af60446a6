package reconciler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	cmap "github.com/orcaman/concurrent-map/v2"
	"golang.org/x/sync/errgroup"

	"sysforge/pkg/logging"
)

const (
	// DefaultTimeout bounds a reload attempt when the caller passes none.
	DefaultTimeout = 30 * time.Second

	// DefaultGracePeriod is the stop-to-start wait used by the restart
	// fallback strategy.
	DefaultGracePeriod = 2 * time.Second

	// defaultSettleInterval is the pause after signal delivery before the
	// service's liveness is re-checked.
	defaultSettleInterval = 500 * time.Millisecond
)

// Reconciler applies configuration changes to running services by selecting
// and executing the least-disruptive reload strategy per service.
//
// Many reload attempts for different service names may be in flight
// concurrently; attempts for the same name are serialized through a
// per-service lock. Per-service state survives for the lifetime of the
// reconciler, never across processes.
type Reconciler struct {
	manager ServiceManager

	// mu guards strategies. The registry is seeded at construction and
	// updated by RegisterStrategy.
	mu         sync.RWMutex
	strategies map[string]ReloadStrategy

	states cmap.ConcurrentMap[string, *ServiceReloadState]
	locks  cmap.ConcurrentMap[string, *sync.Mutex]

	settleInterval time.Duration
}

// defaultStrategies seeds the registry with the built-in per-service
// strategies. The table lives here, not at module level, so every
// reconciler owns its own registry.
func defaultStrategies() map[string]ReloadStrategy {
	return map[string]ReloadStrategy{
		"nginx":            SignalStrategy{Signal: "HUP"},
		"sshd":             SignalStrategy{Signal: "HUP"},
		"haproxy":          SignalStrategy{Signal: "USR2"},
		"postgresql":       SignalStrategy{Signal: "HUP"},
		"apache2":          CommandStrategy{Argv: []string{"apachectl", "graceful"}},
		"NetworkManager":   ManagerReloadStrategy{},
		"systemd-networkd": ManagerReloadStrategy{},
		"dbus":             UnsupportedStrategy{Reason: "no safe reload mechanism"},
	}
}

// New creates a Reconciler over the given service manager, with the default
// strategy registry seeded.
func New(manager ServiceManager) *Reconciler {
	return &Reconciler{
		manager:        manager,
		strategies:     defaultStrategies(),
		states:         cmap.New[*ServiceReloadState](),
		locks:          cmap.New[*sync.Mutex](),
		settleInterval: defaultSettleInterval,
	}
}

// RegisterStrategy overrides the reload strategy for a service name. The
// override applies to all subsequent attempts.
func (r *Reconciler) RegisterStrategy(name string, strategy ReloadStrategy) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.strategies[name] = strategy
}

// State returns a copy of the per-service reload state, or false if no
// reload was ever attempted for the name.
func (r *Reconciler) State(name string) (ServiceReloadState, bool) {
	lock := r.serviceLock(name)
	lock.Lock()
	defer lock.Unlock()

	state, ok := r.states.Get(name)
	if !ok {
		return ServiceReloadState{}, false
	}
	return *state, true
}

// Reload applies a configuration change to the named running service.
//
// The strategy is resolved in decreasing order of preference (registered
// override, manager-native reload, reload sub-command on the search path,
// restart with grace period); an inactive service short-circuits to
// NotRunning without executing any strategy. The whole attempt is bounded by
// timeout; cancellation is cooperative, but commands spawned by this layer
// are killed with their process group on expiry.
//
// Passing graceful=false skips strategy resolution and forces the restart
// path.
func (r *Reconciler) Reload(ctx context.Context, name string, graceful bool, timeout time.Duration) ReloadResult {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	lock := r.serviceLock(name)
	lock.Lock()
	defer lock.Unlock()

	state := r.serviceState(name)

	var strategy ReloadStrategy
	if graceful {
		strategy = r.resolveStrategy(ctx, name)
	} else {
		strategy = RestartStrategy{GracePeriod: DefaultGracePeriod}
	}

	active, err := r.manager.IsActive(ctx, name)
	if err != nil {
		state.LastAttempt = time.Now()
		state.AttemptCount++
		state.LastError = err
		return r.classifyFailure(ctx, err)
	}
	if !active {
		// Only the attempt timestamp is recorded; no strategy executes.
		state.LastAttempt = time.Now()
		logging.Debug("Reconciler", "Service %s is not running, skipping reload", name)
		return NotRunning{}
	}

	if unsupported, ok := strategy.(UnsupportedStrategy); ok {
		state.LastAttempt = time.Now()
		return Unsupported{Reason: unsupported.Reason}
	}

	state.LastAttempt = time.Now()
	state.AttemptCount++
	logging.Info("Reconciler", "Reloading %s via %s", name, strategy.Method())

	if err := r.dispatch(ctx, name, strategy); err != nil {
		state.LastError = err
		logging.Error("Reconciler", err, "Reload of %s failed", name)
		return r.classifyFailure(ctx, err)
	}

	state.LastSuccess = time.Now()
	state.LastError = nil
	return Success{Method: strategy.Method()}
}

// ReloadMany reloads a batch of services, bounding each attempt by timeout.
// Graceful and timeout apply uniformly to every name. With parallel set, all
// names are dispatched concurrently and results joined with no cross-service
// ordering guarantee. Sequential batches run in static priority order
// (infrastructure before application); a failure on one name does not stop
// the remaining queue.
func (r *Reconciler) ReloadMany(ctx context.Context, names []string, parallel, graceful bool, timeout time.Duration) map[string]ReloadResult {
	results := make(map[string]ReloadResult, len(names))

	if parallel {
		var mu sync.Mutex
		g := new(errgroup.Group)
		for _, name := range names {
			g.Go(func() error {
				result := r.Reload(ctx, name, graceful, timeout)
				mu.Lock()
				results[name] = result
				mu.Unlock()
				return nil
			})
		}
		_ = g.Wait()
		return results
	}

	for _, name := range sortByPriority(names) {
		results[name] = r.Reload(ctx, name, graceful, timeout)
	}
	return results
}

// dispatch executes the chosen strategy. A nil return means the reload
// succeeded under that strategy's own success criterion.
func (r *Reconciler) dispatch(ctx context.Context, name string, strategy ReloadStrategy) error {
	switch s := strategy.(type) {
	case SignalStrategy:
		return r.dispatchSignal(ctx, name, s)
	case CommandStrategy:
		return runCommand(ctx, s.Argv)
	case ManagerReloadStrategy:
		return r.manager.Reload(ctx, name)
	case RestartStrategy:
		return r.dispatchRestart(ctx, name, s)
	case CustomStrategy:
		return r.dispatchCustom(ctx, name, s)
	case UnsupportedStrategy:
		// Handled by the caller before dispatch.
		return fmt.Errorf("unsupported strategy dispatched for %s", name)
	default:
		return fmt.Errorf("unknown strategy %T for %s", strategy, name)
	}
}

// dispatchSignal delivers the signal to the service's main process, waits
// the settle interval and re-checks liveness; success iff still active.
func (r *Reconciler) dispatchSignal(ctx context.Context, name string, s SignalStrategy) error {
	pid, err := r.manager.MainPID(ctx, name)
	if err != nil {
		return err
	}
	if err := r.manager.Kill(pid, s.Signal); err != nil {
		return err
	}

	select {
	case <-time.After(r.settleInterval):
	case <-ctx.Done():
		return ctx.Err()
	}

	active, err := r.manager.IsActive(ctx, name)
	if err != nil {
		return err
	}
	if !active {
		return fmt.Errorf("service %s did not survive signal %s", name, s.Signal)
	}
	return nil
}

// dispatchRestart stops the service, waits the grace period and starts it
// again. This is the only path with a guaranteed availability gap.
func (r *Reconciler) dispatchRestart(ctx context.Context, name string, s RestartStrategy) error {
	if err := r.manager.Stop(ctx, name); err != nil {
		return err
	}

	select {
	case <-time.After(s.GracePeriod):
	case <-ctx.Done():
		return ctx.Err()
	}

	if err := r.manager.Start(ctx, name); err != nil {
		return err
	}

	active, err := r.manager.IsActive(ctx, name)
	if err != nil {
		return err
	}
	if !active {
		return fmt.Errorf("service %s not active after restart", name)
	}
	return nil
}

// dispatchCustom runs the caller-supplied handler, bounding it by the
// attempt context. A handler that never returns is abandoned at the
// deadline; its goroutine is cooperatively leaked, not killed.
func (r *Reconciler) dispatchCustom(ctx context.Context, name string, s CustomStrategy) error {
	if s.Handler == nil {
		return fmt.Errorf("custom strategy for %s has no handler", name)
	}

	done := make(chan error, 1)
	go func() {
		done <- s.Handler(ctx, name)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// classifyFailure wraps a dispatch error as a Failed result, marking it
// timeout-classified when the attempt deadline was the cause.
func (r *Reconciler) classifyFailure(ctx context.Context, err error) Failed {
	timedOut := errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded)
	return Failed{Cause: err, TimedOut: timedOut}
}

// serviceLock returns the mutex serializing reload attempts for one name,
// creating it on first use.
func (r *Reconciler) serviceLock(name string) *sync.Mutex {
	if lock, ok := r.locks.Get(name); ok {
		return lock
	}
	r.locks.SetIfAbsent(name, &sync.Mutex{})
	lock, _ := r.locks.Get(name)
	return lock
}

// serviceState returns the mutable per-service record, creating it lazily on
// first reload attempt. Callers must hold the service lock.
func (r *Reconciler) serviceState(name string) *ServiceReloadState {
	if state, ok := r.states.Get(name); ok {
		return state
	}
	r.states.SetIfAbsent(name, &ServiceReloadState{Name: name})
	state, _ := r.states.Get(name)
	return state
}
