package reconciler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeManager implements ServiceManager for tests and records the order of
// calls it receives.
type fakeManager struct {
	mu sync.Mutex

	active    map[string]bool
	canReload map[string]bool
	pids      map[string]int

	activeErr error

	// dieOnKill marks every service inactive once a signal is delivered,
	// simulating a process that does not survive the signal.
	dieOnKill bool

	calls   []string
	kills   []string
	reloads []string
	stops   []string
	starts  []string
}

func newFakeManager() *fakeManager {
	return &fakeManager{
		active:    make(map[string]bool),
		canReload: make(map[string]bool),
		pids:      make(map[string]int),
	}
}

func (m *fakeManager) record(call string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, call)
}

func (m *fakeManager) IsActive(ctx context.Context, name string) (bool, error) {
	m.record("IsActive:" + name)
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.activeErr != nil {
		return false, m.activeErr
	}
	return m.active[name], nil
}

func (m *fakeManager) CanReload(ctx context.Context, name string) (bool, error) {
	m.record("CanReload:" + name)
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.canReload[name], nil
}

func (m *fakeManager) Reload(ctx context.Context, name string) error {
	m.record("Reload:" + name)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reloads = append(m.reloads, name)
	return nil
}

func (m *fakeManager) Start(ctx context.Context, name string) error {
	m.record("Start:" + name)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.starts = append(m.starts, name)
	m.active[name] = true
	return nil
}

func (m *fakeManager) Stop(ctx context.Context, name string) error {
	m.record("Stop:" + name)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stops = append(m.stops, name)
	m.active[name] = false
	return nil
}

func (m *fakeManager) MainPID(ctx context.Context, name string) (int, error) {
	m.record("MainPID:" + name)
	m.mu.Lock()
	defer m.mu.Unlock()
	pid, ok := m.pids[name]
	if !ok {
		return 0, fmt.Errorf("service %s has no main process", name)
	}
	return pid, nil
}

func (m *fakeManager) Kill(pid int, signal string) error {
	m.record(fmt.Sprintf("Kill:%d:%s", pid, signal))
	m.mu.Lock()
	defer m.mu.Unlock()
	m.kills = append(m.kills, fmt.Sprintf("%d:%s", pid, signal))
	if m.dieOnKill {
		for name := range m.active {
			m.active[name] = false
		}
	}
	return nil
}

func newTestReconciler(manager ServiceManager) *Reconciler {
	r := New(manager)
	r.settleInterval = time.Millisecond
	return r
}

func TestReloadNotRunning(t *testing.T) {
	manager := newFakeManager()
	manager.active["webapp"] = false
	r := newTestReconciler(manager)

	result := r.Reload(context.Background(), "webapp", true, time.Second)

	_, ok := result.(NotRunning)
	require.True(t, ok, "expected NotRunning, got %T", result)

	state, ok := r.State("webapp")
	require.True(t, ok)
	assert.Equal(t, 0, state.AttemptCount, "attempt counter must not change")
	assert.False(t, state.LastAttempt.IsZero(), "attempt timestamp must be recorded")
	assert.True(t, state.LastSuccess.IsZero())
}

func TestReloadSignalSuccess(t *testing.T) {
	manager := newFakeManager()
	manager.active["webapp"] = true
	manager.pids["webapp"] = 4321
	r := newTestReconciler(manager)
	r.RegisterStrategy("webapp", SignalStrategy{Signal: "HUP"})

	result := r.Reload(context.Background(), "webapp", true, time.Second)

	success, ok := result.(Success)
	require.True(t, ok, "expected Success, got %v", result)
	assert.Equal(t, MethodSignal, success.Method)
	assert.Equal(t, []string{"4321:HUP"}, manager.kills)

	state, ok := r.State("webapp")
	require.True(t, ok)
	assert.Equal(t, 1, state.AttemptCount)
	assert.False(t, state.LastSuccess.IsZero())
	assert.NoError(t, state.LastError)
}

func TestReloadSignalServiceDies(t *testing.T) {
	manager := newFakeManager()
	manager.active["webapp"] = true
	manager.pids["webapp"] = 4321
	manager.dieOnKill = true
	r := newTestReconciler(manager)
	r.RegisterStrategy("webapp", SignalStrategy{Signal: "HUP"})

	result := r.Reload(context.Background(), "webapp", true, time.Second)

	failed, ok := result.(Failed)
	require.True(t, ok, "expected Failed, got %v", result)
	assert.False(t, failed.TimedOut)

	state, _ := r.State("webapp")
	assert.Error(t, state.LastError)
}

func TestReloadManagerNative(t *testing.T) {
	manager := newFakeManager()
	manager.active["webapp"] = true
	manager.canReload["webapp"] = true
	r := newTestReconciler(manager)

	result := r.Reload(context.Background(), "webapp", true, time.Second)

	success, ok := result.(Success)
	require.True(t, ok, "expected Success, got %v", result)
	assert.Equal(t, MethodManagerReload, success.Method)
	assert.Equal(t, []string{"webapp"}, manager.reloads)
}

func TestReloadRestartStrategy(t *testing.T) {
	manager := newFakeManager()
	manager.active["webapp"] = true
	manager.canReload["webapp"] = true
	r := newTestReconciler(manager)
	r.RegisterStrategy("webapp", RestartStrategy{GracePeriod: time.Millisecond})

	result := r.Reload(context.Background(), "webapp", true, time.Second)

	success, ok := result.(Success)
	require.True(t, ok, "expected Success, got %v", result)
	assert.Equal(t, MethodRestart, success.Method)
	assert.Equal(t, []string{"webapp"}, manager.stops)
	assert.Equal(t, []string{"webapp"}, manager.starts)
}

func TestReloadUnsupported(t *testing.T) {
	manager := newFakeManager()
	manager.active["dbus"] = true
	r := newTestReconciler(manager)

	result := r.Reload(context.Background(), "dbus", true, time.Second)

	unsupported, ok := result.(Unsupported)
	require.True(t, ok, "expected Unsupported, got %v", result)
	assert.NotEmpty(t, unsupported.Reason)

	state, _ := r.State("dbus")
	assert.Equal(t, 0, state.AttemptCount)
}

func TestReloadCustomTimeout(t *testing.T) {
	manager := newFakeManager()
	manager.active["webapp"] = true
	r := newTestReconciler(manager)
	r.RegisterStrategy("webapp", CustomStrategy{
		Handler: func(ctx context.Context, name string) error {
			<-make(chan struct{}) // never returns
			return nil
		},
	})

	timeout := 50 * time.Millisecond
	start := time.Now()
	result := r.Reload(context.Background(), "webapp", true, timeout)
	elapsed := time.Since(start)

	failed, ok := result.(Failed)
	require.True(t, ok, "expected Failed, got %v", result)
	assert.True(t, failed.TimedOut, "failure must be timeout-classified")
	assert.True(t, errors.Is(failed.Cause, context.DeadlineExceeded))
	assert.GreaterOrEqual(t, elapsed, timeout, "must not fail before the deadline")
}

func TestReloadCustomPassthrough(t *testing.T) {
	manager := newFakeManager()
	manager.active["webapp"] = true
	r := newTestReconciler(manager)

	handlerErr := errors.New("handler says no")
	r.RegisterStrategy("webapp", CustomStrategy{
		Handler: func(ctx context.Context, name string) error {
			return handlerErr
		},
	})

	result := r.Reload(context.Background(), "webapp", true, time.Second)

	failed, ok := result.(Failed)
	require.True(t, ok)
	assert.True(t, errors.Is(failed.Cause, handlerErr))
}

func TestReloadManySequentialPriorityOrder(t *testing.T) {
	manager := newFakeManager()
	// Both inactive: each reload returns NotRunning fast, and the IsActive
	// call order shows the dispatch order.
	r := newTestReconciler(manager)

	results := r.ReloadMany(context.Background(), []string{"apache2", "NetworkManager"}, false, true, 0)

	require.Len(t, results, 2)
	var order []string
	for _, call := range manager.calls {
		if len(call) > 9 && call[:9] == "IsActive:" {
			order = append(order, call[9:])
		}
	}
	require.Equal(t, []string{"NetworkManager", "apache2"}, order,
		"infrastructure services dispatch before application services")
}

func TestReloadManyParallel(t *testing.T) {
	manager := newFakeManager()
	manager.active["a"] = true
	manager.active["b"] = true
	r := newTestReconciler(manager)
	for _, name := range []string{"a", "b"} {
		r.RegisterStrategy(name, CustomStrategy{
			Handler: func(ctx context.Context, name string) error { return nil },
		})
	}

	results := r.ReloadMany(context.Background(), []string{"a", "b"}, true, true, 0)

	require.Len(t, results, 2)
	for name, result := range results {
		_, ok := result.(Success)
		assert.True(t, ok, "service %s: expected Success, got %v", name, result)
	}
}

func TestReloadManyBestEffort(t *testing.T) {
	manager := newFakeManager()
	manager.active["bad"] = true
	manager.active["good"] = true
	r := newTestReconciler(manager)
	r.RegisterStrategy("bad", CustomStrategy{
		Handler: func(ctx context.Context, name string) error { return errors.New("boom") },
	})
	r.RegisterStrategy("good", CustomStrategy{
		Handler: func(ctx context.Context, name string) error { return nil },
	})

	results := r.ReloadMany(context.Background(), []string{"bad", "good"}, false, true, 0)

	_, failed := results["bad"].(Failed)
	_, succeeded := results["good"].(Success)
	assert.True(t, failed, "bad should fail")
	assert.True(t, succeeded, "a failure must not stop the remaining queue")
}

func TestSameServiceReloadsSerialized(t *testing.T) {
	manager := newFakeManager()
	manager.active["webapp"] = true
	r := newTestReconciler(manager)

	var mu sync.Mutex
	inFlight, maxInFlight := 0, 0
	r.RegisterStrategy("webapp", CustomStrategy{
		Handler: func(ctx context.Context, name string) error {
			mu.Lock()
			inFlight++
			if inFlight > maxInFlight {
				maxInFlight = inFlight
			}
			mu.Unlock()

			time.Sleep(5 * time.Millisecond)

			mu.Lock()
			inFlight--
			mu.Unlock()
			return nil
		},
	})

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Reload(context.Background(), "webapp", true, time.Second)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxInFlight, "attempts for the same service must not overlap")

	state, _ := r.State("webapp")
	assert.Equal(t, 4, state.AttemptCount)
}

func TestStateUnknownService(t *testing.T) {
	r := newTestReconciler(newFakeManager())
	_, ok := r.State("never-touched")
	assert.False(t, ok)
}

func TestSortByPriority(t *testing.T) {
	names := []string{"webapp", "apache2", "NetworkManager", "sshd", "dbus"}
	sorted := sortByPriority(names)
	assert.Equal(t, []string{"dbus", "NetworkManager", "sshd", "webapp", "apache2"}, sorted)
}
