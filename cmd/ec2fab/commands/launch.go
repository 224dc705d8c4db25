package commands

import (
	"github.com/spf13/cobra"

	"github.com/ec2fab/ec2fab/cmd/ec2fab/handlers"
)

// Launch returns the launch command for starting instances from a named
// launch config.
//
// Optional flags:
//   - --config: path to the settings file
//   - --name: value for the Name tag
//   - --count: number of instances to launch
//   - --tag: extra KEY=VALUE tag, repeatable
//   - --wait: block until the instances report running
//   - --yes: skip the confirmation prompt
func Launch() *cobra.Command {
	var (
		configPath string
		name       string
		count      int
		tagArgs    []string
		waitFlag   bool
		yes        bool
	)

	cmd := &cobra.Command{
		Use:   "launch [CONFIG]",
		Short: "Launch instances from a named launch config",
		Long: `Launch one or more EC2 instances from a launch config defined in the
settings file. Without a CONFIG argument the available configs are
listed and one is read interactively.

The full batch is shown before anything starts and nothing launches
without confirmation. With --wait the command then polls every instance
until it reports running and prints its public DNS name.

Examples:
  # Launch one instance from the "webserver" config
  ec2fab launch webserver --name web1

  # Launch three numbered workers and wait for them
  ec2fab launch worker --name worker --count 3 --wait

  # Script-friendly: no prompt, extra tags
  ec2fab launch worker --yes --tag Env=staging --tag Owner=ci`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := handlers.LaunchOptions{
				ConfigPath: configPath,
				Name:       name,
				Count:      count,
				Tags:       tagArgs,
				Wait:       waitFlag,
				Yes:        yes,
			}
			if len(args) == 1 {
				opts.ConfigName = args[0]
			}
			return handlers.Launch(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to settings file (default: ec2fab.yaml)")
	cmd.Flags().StringVarP(&name, "name", "n", "", "Value for the Name tag")
	cmd.Flags().IntVar(&count, "count", 1, "Number of instances to launch")
	cmd.Flags().StringArrayVar(&tagArgs, "tag", nil, "Extra instance tag as KEY=VALUE (repeatable)")
	cmd.Flags().BoolVar(&waitFlag, "wait", false, "Wait until the instances report running")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
