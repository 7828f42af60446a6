package cmd

import (
	"fmt"

	"sysforge/internal/config"
	"sysforge/internal/generate"
	"sysforge/internal/validate"
	"sysforge/pkg/logging"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// validationFailedError signals that compilation was aborted because the
// configuration failed validation under --strict.
type validationFailedError struct {
	count int
}

func (e *validationFailedError) Error() string {
	return fmt.Sprintf("configuration has %d validation errors", e.count)
}

// newCompileCmd creates the Cobra command that runs the full cold path:
// load, validate, generate, write.
func newCompileCmd() *cobra.Command {
	var outputDir string
	var strict bool

	cmd := &cobra.Command{
		Use:   "compile <config-file>",
		Short: "Compile a machine configuration into provisioning artifacts",
		Long: `Loads a machine configuration (JSON or YAML), validates it, lowers it
into provisioning artifacts and writes them to the output directory.

Validation errors are always printed in full. By default they do not
block artifact generation; pass --strict to abort on any validation
error instead of shipping artifacts for a configuration known to be
invalid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(cmd, args[0], outputDir, strict)
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory (default from settings, else ./out)")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail instead of generating artifacts when validation reports errors")

	return cmd
}

func runCompile(cmd *cobra.Command, configPath, outputDir string, strict bool) error {
	runID := uuid.NewString()[:8]
	logging.Info("Compiler", "Compilation run %s starting", runID)

	if outputDir == "" {
		settings, err := config.LoadSettings(config.GetDefaultSettingsPathOrPanic())
		if err != nil {
			return err
		}
		outputDir = settings.OutputDir
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	errs := validate.Validate(cfg)
	for _, validationErr := range errs {
		fmt.Fprintf(cmd.ErrOrStderr(), "validation: %s\n", validationErr.Error())
	}
	if len(errs) > 0 {
		logging.Warn("Compiler", "Configuration has %d validation errors", len(errs))
		if strict {
			return &validationFailedError{count: len(errs)}
		}
	}

	artifacts, err := generate.Generate(cfg)
	if err != nil {
		return err
	}
	if err := generate.WriteArtifacts(outputDir, cfg, artifacts); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Compiled %d artifacts to %s\n", len(artifacts)+1, outputDir)
	logging.Info("Compiler", "Compilation run %s finished", runID)
	return nil
}
