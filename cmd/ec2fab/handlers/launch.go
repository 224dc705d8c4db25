// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command definitions
// in the commands package. Handlers are framework-agnostic and can be tested
// independently of the CLI framework.
package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/ec2fab/ec2fab/internal/instance"
	"github.com/ec2fab/ec2fab/internal/launch"
	"github.com/ec2fab/ec2fab/internal/ui/prompt"
	"github.com/ec2fab/ec2fab/internal/wait"
)

// LaunchOptions contains options for the launch command.
type LaunchOptions struct {
	ConfigPath string
	ConfigName string
	Name       string
	Count      int
	Tags       []string
	Wait       bool
	Yes        bool
}

// Launch handles the launch command.
//
// It resolves the named launch config into one request per instance, shows
// the batch for confirmation and launches the instances in order. With the
// wait option it then polls each instance until it reports running and prints
// a summary line with the fresh public DNS name.
//
// When no config name is given the available configs are listed and one is
// read interactively. A failure part-way through the batch leaves the earlier
// instances running; the error says how far the batch got.
func Launch(ctx context.Context, opts LaunchOptions) error {
	settings, err := loadSettings(opts.ConfigPath)
	if err != nil {
		return err
	}

	p := prompt.New(stdin, os.Stdout)

	configName := opts.ConfigName
	if configName == "" {
		configName, err = launch.Solicit(settings, p)
		if err != nil {
			return err
		}
	}

	extraTags, err := parseTagArgs(opts.Tags)
	if err != nil {
		return err
	}

	requests, err := launch.NewRequests(settings, configName, opts.Name, extraTags, opts.Count)
	if err != nil {
		return err
	}

	if !opts.Yes {
		ok, err := launch.ConfirmMany(requests, p)
		if err != nil {
			return err
		}
		if !ok {
			return launch.ErrAborted
		}
	}

	manager := newInstanceManager(settings)

	launched, err := launch.RunMany(ctx, manager, requests, os.Stdout)
	if err != nil {
		if len(launched) > 0 {
			fmt.Printf("%d of %d instances were launched before the failure.\n", len(launched), len(requests))
		}
		return err
	}

	if !opts.Wait {
		return nil
	}

	plan, err := settings.Wait.Plan()
	if err != nil {
		return err
	}

	waiter := wait.NewWaiter(manager, wait.WithOutput(os.Stdout))
	ready, waitErr := launch.WaitForRunningMany(ctx, waiter, launched, plan)

	if len(ready) > 0 {
		fmt.Println()
		for _, inst := range ready {
			fmt.Println(instance.Summary(inst))
		}
	}
	return waitErr
}
