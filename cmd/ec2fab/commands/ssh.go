package commands

import (
	"github.com/spf13/cobra"

	"github.com/ec2fab/ec2fab/cmd/ec2fab/handlers"
)

// SSH returns the ssh command for reaching an instance over SSH.
//
// Optional flags:
//   - --config: path to the settings file
//   - --by-name: treat REF as a Name tag value instead of an instance id
//
// Flags must come before REF; everything after REF is passed to the remote
// shell verbatim.
func SSH() *cobra.Command {
	var (
		configPath string
		byName     bool
	)

	cmd := &cobra.Command{
		Use:   "ssh REF [COMMAND...]",
		Short: "Print the ssh invocation for an instance, or run a command on it",
		Long: `Without a COMMAND, ssh resolves the instance's public DNS name, login
user and key file and prints the matching ssh invocation. Wrap it in
$( ) to open a shell:

  $(ec2fab ssh web1 --by-name)

With a COMMAND the tool connects itself and runs the command, printing
the combined output. Everything after REF belongs to the remote command,
so put ec2fab's own flags before it.

Examples:
  # Print the ssh line for an instance
  ec2fab ssh i-0abc123

  # Run a command on it
  ec2fab ssh --by-name web1 uptime

  # Remote flags pass through untouched
  ec2fab ssh --by-name web1 ls -la /var/log`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.SSH(cmd.Context(), handlers.SSHOptions{
				ConfigPath: configPath,
				Ref:        args[0],
				ByName:     byName,
				Command:    args[1:],
			})
		},
	}

	// Everything after REF belongs to the remote command.
	cmd.Flags().SetInterspersed(false)

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to settings file (default: ec2fab.yaml)")
	cmd.Flags().BoolVar(&byName, "by-name", false, "Treat REF as a Name tag value")

	return cmd
}
