// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing,
// flag binding, and validation. Command execution is delegated to handler
// functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the ec2fab CLI.
//
// The root command serves as the entry point and parent for all subcommands.
// It provides basic CLI metadata and organizes the command hierarchy.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ec2fab",
		Short: "Launch, locate and reach EC2 instances for deployment automation",
	}

	// Launch commands
	cmd.AddCommand(Launch())
	cmd.AddCommand(Wait())

	// Lookup commands
	cmd.AddCommand(List())
	cmd.AddCommand(Show())
	cmd.AddCommand(Tag())

	// Access commands
	cmd.AddCommand(SSH())
	cmd.AddCommand(Rsync())

	// Setup/utility commands
	cmd.AddCommand(Init())
	cmd.AddCommand(Configs())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
