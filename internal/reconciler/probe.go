package reconciler

import (
	"context"
	"os/exec"

	"sysforge/pkg/logging"
)

// reloadSubcommands are the sub-command patterns probed for when a service's
// executable is found on the search path, in preference order.
var reloadSubcommands = []string{"reload", "force-reload", "graceful"}

// subcommandOverrides pins the sub-command for tools whose reload verb is
// known not to be the first pattern.
var subcommandOverrides = map[string]string{
	"apache2": "graceful",
	"httpd":   "graceful",
}

// resolveStrategy picks the reload strategy for a service, in decreasing
// order of preference: an explicitly registered strategy, the manager's
// native reload, a reload sub-command of the service's own executable, and
// finally a restart with the default grace period.
func (r *Reconciler) resolveStrategy(ctx context.Context, name string) ReloadStrategy {
	r.mu.RLock()
	registered, ok := r.strategies[name]
	r.mu.RUnlock()
	if ok {
		return registered
	}

	if canReload, err := r.manager.CanReload(ctx, name); err == nil && canReload {
		logging.Debug("Reconciler", "Service %s supports native manager reload", name)
		return ManagerReloadStrategy{}
	}

	if path, err := exec.LookPath(name); err == nil {
		sub := reloadSubcommands[0]
		if override, ok := subcommandOverrides[name]; ok {
			sub = override
		}
		logging.Debug("Reconciler", "Service %s reloads via %s %s", name, path, sub)
		return CommandStrategy{Argv: []string{path, sub}}
	}

	logging.Debug("Reconciler", "No reload mechanism found for %s, falling back to restart", name)
	return RestartStrategy{GracePeriod: DefaultGracePeriod}
}
