package commands

import (
	"github.com/spf13/cobra"

	"github.com/ec2fab/ec2fab/cmd/ec2fab/handlers"
)

// Configs returns the configs command for listing the launch configs.
//
// Optional flags:
//   - --config: path to the settings file
func Configs() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "configs",
		Short: "List the launch configs in the settings file",
		Long: `Configs lists the named launch configs an instance can be launched
from, with their descriptions.

Examples:
  ec2fab configs`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Configs(configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to settings file (default: ec2fab.yaml)")

	return cmd
}
