package commands

import (
	"github.com/spf13/cobra"

	"github.com/ec2fab/ec2fab/cmd/ec2fab/handlers"
)

// Tag returns the tag command for adding tags to an existing instance.
//
// Optional flags:
//   - --config: path to the settings file
//   - --by-name: treat REF as a Name tag value instead of an instance id
func Tag() *cobra.Command {
	var (
		configPath string
		byName     bool
	)

	cmd := &cobra.Command{
		Use:   "tag REF KEY=VALUE...",
		Short: "Add or overwrite tags on an instance",
		Long: `Tag creates or overwrites tags on an existing instance. Setting the
Name tag renames the instance as the other commands see it.

Examples:
  # Mark an instance
  ec2fab tag i-0abc123 Env=staging Owner=deploy

  # Rename an instance
  ec2fab tag --by-name web1 Name=web2`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.Tag(cmd.Context(), handlers.TagOptions{
				ConfigPath: configPath,
				Ref:        args[0],
				ByName:     byName,
				Tags:       args[1:],
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to settings file (default: ec2fab.yaml)")
	cmd.Flags().BoolVar(&byName, "by-name", false, "Treat REF as a Name tag value")

	return cmd
}
