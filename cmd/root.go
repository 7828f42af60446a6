package cmd

import (
	"errors"
	"os"

	"sysforge/pkg/logging"

	"github.com/spf13/cobra"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (command failed, invalid arguments).
	ExitCodeError = 1
	// ExitCodeValidationFailed indicates the configuration failed validation
	// under --strict.
	ExitCodeValidationFailed = 2
)

var logLevel string

// rootCmd represents the base command for the sysforge application.
var rootCmd = &cobra.Command{
	Use:   "sysforge",
	Short: "Compile declarative machine state into provisioning artifacts",
	Long: `sysforge compiles a declarative description of a machine's desired
state (packages, services, users, boot, security, network, storage,
containers) into provisioning artifacts: install scripts, unit
descriptions and config files. It can also reconcile a running system's
services against configuration changes without a reboot.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors
	// that are handled by the application.
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(logging.ParseLevel(logLevel), os.Stderr)
	},
}

// SetVersion sets the version for the root command. This is called from the
// main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "sysforge version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		var validationErr *validationFailedError
		if errors.As(err, &validationErr) {
			os.Exit(ExitCodeValidationFailed)
		}
		os.Exit(ExitCodeError)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newCompileCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newReloadCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}
