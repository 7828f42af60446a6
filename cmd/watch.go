package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"sysforge/pkg/logging"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// watchDebounceInterval is how long to wait for further writes before
// recompiling; editors typically produce bursts of events per save.
const watchDebounceInterval = 500 * time.Millisecond

// newWatchCmd creates the Cobra command that watches a configuration file
// and recompiles it on every change.
func newWatchCmd() *cobra.Command {
	var outputDir string
	var strict bool

	cmd := &cobra.Command{
		Use:   "watch <config-file>",
		Short: "Recompile a machine configuration whenever it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, args[0], outputDir, strict)
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory (default from settings, else ./out)")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail instead of generating artifacts when validation reports errors")

	return cmd
}

func runWatch(cmd *cobra.Command, configPath, outputDir string, strict bool) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors replace files on save,
	// which would silently drop a file-level watch.
	dir := filepath.Dir(configPath)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	target, err := filepath.Abs(configPath)
	if err != nil {
		return err
	}

	// Initial compilation; in watch mode failures are reported, not fatal.
	if err := runCompile(cmd, configPath, outputDir, strict); err != nil {
		logging.Error("Watcher", err, "Initial compilation failed")
	}

	logging.Info("Watcher", "Watching %s for changes", configPath)

	// The debounce timer fires into the select loop below, so recompiles
	// run on this goroutine and two rapid saves can never interleave
	// writes into the output directory.
	debounce := time.NewTimer(watchDebounceInterval)
	if !debounce.Stop() {
		<-debounce.C
	}
	defer debounce.Stop()

	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || abs != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !debounce.Stop() {
				select {
				case <-debounce.C:
				default:
				}
			}
			debounce.Reset(watchDebounceInterval)
		case <-debounce.C:
			logging.Info("Watcher", "Configuration changed, recompiling")
			if err := runCompile(cmd, configPath, outputDir, strict); err != nil {
				logging.Error("Watcher", err, "Compilation failed")
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logging.Error("Watcher", err, "Watcher error")
		}
	}
}
