package cmd

import (
	"fmt"

	"sysforge/internal/config"
	"sysforge/internal/validate"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// newValidateCmd creates the Cobra command that runs validation only and
// renders the result as a table.
func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a machine configuration without generating artifacts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(args[0])
			if err != nil {
				return err
			}

			errs := validate.Validate(cfg)
			if len(errs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Configuration is valid.")
				return nil
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"#", "Field", "Error"})
			for i, validationErr := range errs {
				t.AppendRow(table.Row{i + 1, validationErr.Field(), validationErr.Error()})
			}
			t.Render()

			return &validationFailedError{count: len(errs)}
		},
	}
}
