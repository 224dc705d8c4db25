package handlers

import (
	"context"
	"fmt"

	"github.com/ec2fab/ec2fab/internal/instance"
)

// ShowOptions contains options for the show command.
type ShowOptions struct {
	ConfigPath string
	Refs       []string
	ByName     bool
	Full       bool
}

// Show handles the show command.
//
// It prints the attribute block for each referenced instance. A lookup
// failure stops the command at the reference that failed.
func Show(ctx context.Context, opts ShowOptions) error {
	settings, err := loadSettings(opts.ConfigPath)
	if err != nil {
		return err
	}

	manager := newInstanceManager(settings)

	for _, raw := range opts.Refs {
		inst, err := resolveInstance(ctx, manager, settings, raw, opts.ByName)
		if err != nil {
			return err
		}
		fmt.Print(instance.Describe(inst, opts.Full))
	}
	return nil
}
