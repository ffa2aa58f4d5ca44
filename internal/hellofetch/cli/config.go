package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mistakeknot/hellofetch/internal/hellofetch/config"
)

func configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print a default config.toml",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), config.DefaultConfigToml)
			return nil
		},
	}
}
