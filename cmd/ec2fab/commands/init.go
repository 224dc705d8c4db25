package commands

import (
	"github.com/spf13/cobra"

	"github.com/ec2fab/ec2fab/cmd/ec2fab/handlers"
)

// Init returns the command for interactively creating a settings file.
//
// Flags:
//
//	--output, -o: Path to output file (default "ec2fab.yaml")
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create a settings file",
		Long: `Interactively create an ec2fab settings file.

This command walks you through the account-wide defaults and a first
launch config. It will ask about:

  - Default region and SSH login user
  - Where your .pem key files live
  - A first launch config (AMI, key pair, instance type)

The generated file can be extended by hand with more launch configs,
tags and a custom wait schedule.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "ec2fab.yaml", "Output file path")

	return cmd
}
