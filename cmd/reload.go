package cmd

import (
	"fmt"
	"time"

	"sysforge/internal/reconciler"

	"github.com/briandowns/spinner"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// newReloadCmd creates the Cobra command that drives the runtime reconciler
// against the live service manager.
func newReloadCmd() *cobra.Command {
	var parallel bool
	var ungraceful bool
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "reload <service>...",
		Short: "Apply configuration changes to running services",
		Long: `Reloads one or more running services using the least-disruptive
available mechanism: a registered strategy, the service manager's native
reload, a reload sub-command of the service's executable, or as a last
resort a restart with a short grace period.

With --parallel all services are dispatched concurrently. Without it
they run sequentially in static priority order, infrastructure services
first; a failure on one service does not stop the rest.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReload(cmd, args, parallel, !ungraceful, timeout)
		},
	}

	cmd.Flags().BoolVar(&parallel, "parallel", false, "reload all services concurrently")
	cmd.Flags().BoolVar(&ungraceful, "ungraceful", false, "force stop/start instead of a graceful reload")
	cmd.Flags().DurationVar(&timeout, "timeout", reconciler.DefaultTimeout, "per-service reload timeout")

	return cmd
}

func runReload(cmd *cobra.Command, names []string, parallel, graceful bool, timeout time.Duration) error {
	manager, err := reconciler.NewSystemdManager(cmd.Context())
	if err != nil {
		return err
	}
	r := reconciler.New(manager)

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = fmt.Sprintf(" reloading %d service(s)...", len(names))
	s.Start()

	var results map[string]reconciler.ReloadResult
	if len(names) == 1 && !parallel {
		results = map[string]reconciler.ReloadResult{
			names[0]: r.Reload(cmd.Context(), names[0], graceful, timeout),
		}
	} else {
		results = r.ReloadMany(cmd.Context(), names, parallel, graceful, timeout)
	}
	s.Stop()

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.AppendHeader(table.Row{"Service", "Result", "Attempts"})

	failures := 0
	for _, name := range names {
		result := results[name]
		attempts := 0
		if state, ok := r.State(name); ok {
			attempts = state.AttemptCount
		}
		t.AppendRow(table.Row{name, result.String(), attempts})
		if _, failed := result.(reconciler.Failed); failed {
			failures++
		}
	}
	t.Render()

	if failures > 0 {
		return fmt.Errorf("%d of %d reloads failed", failures, len(names))
	}
	return nil
}
