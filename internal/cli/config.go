package cli

import (
	"github.com/spf13/cobra"
)

// newConfigCmd creates the parent config command.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect textsign configuration",
		Long: `Commands for inspecting the layered textsign configuration.

Values are resolved from, highest precedence first:
  - TEXTSIGN_* environment variables
  - project config (.textsign/config.yaml)
  - global config (~/.textsign/config.yaml)
  - built-in defaults`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	AddConfigShowCommand(cmd)

	return cmd
}

// AddConfigCommand adds the config command tree to the root command.
func AddConfigCommand(parent *cobra.Command) {
	parent.AddCommand(newConfigCmd())
}
