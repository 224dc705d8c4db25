package commands

import (
	"github.com/spf13/cobra"

	"github.com/ec2fab/ec2fab/cmd/ec2fab/handlers"
)

// List returns the list command for enumerating instances in a region.
//
// Optional flags:
//   - --config: path to the settings file
//   - --region: region to list instead of the default region
//   - --tag: KEY=VALUE tag filter, repeatable
func List() *cobra.Command {
	var (
		configPath string
		region     string
		tagArgs    []string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List instances in a region",
		Long: `List prints one line per instance with its Name tag, state and public
DNS name. With --tag only instances carrying all given tags are listed,
and zero matches is an error.

Examples:
  # All instances in the default region
  ec2fab list

  # All instances in another region
  ec2fab list --region eu-west-1

  # Only the staging webservers
  ec2fab list --tag Env=staging --tag Role=web`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.List(cmd.Context(), handlers.ListOptions{
				ConfigPath: configPath,
				Region:     region,
				Tags:       tagArgs,
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to settings file (default: ec2fab.yaml)")
	cmd.Flags().StringVar(&region, "region", "", "Region to list (default: from settings)")
	cmd.Flags().StringArrayVar(&tagArgs, "tag", nil, "Only list instances with this KEY=VALUE tag (repeatable)")

	return cmd
}
