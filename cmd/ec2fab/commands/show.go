package commands

import (
	"github.com/spf13/cobra"

	"github.com/ec2fab/ec2fab/cmd/ec2fab/handlers"
)

// Show returns the show command for printing instance details.
//
// Optional flags:
//   - --config: path to the settings file
//   - --by-name: treat REF as a Name tag value instead of an instance id
//   - --full: include region, private IP and launch time
func Show() *cobra.Command {
	var (
		configPath string
		byName     bool
		full       bool
	)

	cmd := &cobra.Command{
		Use:   "show REF...",
		Short: "Show instance details",
		Long: `Show prints the attributes of each referenced instance. A REF is an
instance id, or a Name tag value with --by-name, optionally prefixed
with "region:" to reach outside the default region.

Examples:
  # By instance id
  ec2fab show i-0abc123

  # By Name tag, with every attribute
  ec2fab show web1 --by-name --full

  # Several at once
  ec2fab show i-0abc123 eu-west-1:i-0def456`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.Show(cmd.Context(), handlers.ShowOptions{
				ConfigPath: configPath,
				Refs:       args,
				ByName:     byName,
				Full:       full,
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to settings file (default: ec2fab.yaml)")
	cmd.Flags().BoolVar(&byName, "by-name", false, "Treat REF as a Name tag value")
	cmd.Flags().BoolVar(&full, "full", false, "Include region, private IP and launch time")

	return cmd
}
