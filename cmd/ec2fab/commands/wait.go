package commands

import (
	"github.com/spf13/cobra"

	"github.com/ec2fab/ec2fab/cmd/ec2fab/handlers"
)

// Wait returns the wait command for polling instances until they reach a
// target state.
//
// Optional flags:
//   - --config: path to the settings file
//   - --state: target instance state
//   - --ramp: poll intervals overriding the settings file
//   - --repeat: steady-phase repeat count overriding the settings file
func Wait() *cobra.Command {
	var (
		configPath string
		state      string
		ramp       string
		repeat     int
	)

	cmd := &cobra.Command{
		Use:   "wait REF...",
		Short: "Wait until instances reach a state",
		Long: `Wait polls each referenced instance until it reports the target state or
the wait budget is spent. A REF is an instance id, optionally prefixed
with "region:" to reach outside the default region.

The poll schedule starts with the ramp intervals and then repeats the
last one. The stock schedule checks after 15s and then every 5s, giving
up after 3m40s.

Examples:
  # Wait until an instance is running
  ec2fab wait i-0abc123

  # Wait for shutdown in another region
  ec2fab wait eu-west-1:i-0abc123 --state stopped

  # Poll faster and give up sooner
  ec2fab wait i-0abc123 --ramp 5s,2s --repeat 10`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.Wait(cmd.Context(), handlers.WaitOptions{
				ConfigPath: configPath,
				Refs:       args,
				State:      state,
				Ramp:       ramp,
				Repeat:     repeat,
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to settings file (default: ec2fab.yaml)")
	cmd.Flags().StringVar(&state, "state", "running", "Target instance state")
	cmd.Flags().StringVar(&ramp, "ramp", "", "Poll intervals like 15s,5s (default: from settings)")
	cmd.Flags().IntVar(&repeat, "repeat", -1, "Times to repeat the last interval (default: from settings)")

	return cmd
}
