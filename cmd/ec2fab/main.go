// Package main is the entry point for the ec2fab CLI.
//
// ec2fab is a command-line tool for launching, locating and reaching
// Amazon EC2 instances from deployment scripts. Named launch configs in
// a single settings file make instance launches repeatable, and the ssh
// and rsync commands reach the launched instances without hunting for
// hostnames or key files.
//
// Commands: init, launch, wait, list, show, ssh, rsync, tag, configs.
//
// For detailed usage information, run:
//
//	ec2fab --help
package main

import (
	"fmt"
	"os"

	"github.com/ec2fab/ec2fab/cmd/ec2fab/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
