package handlers

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ec2fab/ec2fab/internal/config"
	"github.com/ec2fab/ec2fab/internal/instance"
	"github.com/ec2fab/ec2fab/internal/wait"
)

// WaitOptions contains options for the wait command.
type WaitOptions struct {
	ConfigPath string
	Refs       []string
	State      string
	Ramp       string
	Repeat     int
}

// Wait handles the wait command.
//
// It polls each referenced instance until it reports the target state or the
// wait plan is exhausted. Instances are visited in argument order; a timeout
// on one does not skip the rest. A negative Repeat means the settings file
// decides the repeat count.
func Wait(ctx context.Context, opts WaitOptions) error {
	settings, err := loadSettings(opts.ConfigPath)
	if err != nil {
		return err
	}

	target, err := instance.ParseState(opts.State)
	if err != nil {
		return err
	}

	plan, err := buildPlan(settings, opts.Ramp, opts.Repeat)
	if err != nil {
		return err
	}

	manager := newInstanceManager(settings)
	waiter := wait.NewWaiter(manager, wait.WithOutput(os.Stdout))

	var errs []error
	for _, raw := range opts.Refs {
		ref := instance.ParseRef(raw, settings.DefaultRegion)
		if _, err := waiter.Wait(ctx, ref, target, plan); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// buildPlan resolves the wait plan, letting the flags override the settings
// file. A negative repeat keeps the configured count.
func buildPlan(settings *config.Settings, rampFlag string, repeatFlag int) (*wait.Plan, error) {
	ramp := settings.Wait.RampDurations()
	if rampFlag != "" {
		parsed, err := wait.ParseRamp(rampFlag)
		if err != nil {
			return nil, fmt.Errorf("invalid ramp: %w", err)
		}
		ramp = parsed
	}

	repeat := settings.Wait.RepeatCount()
	if repeatFlag >= 0 {
		repeat = repeatFlag
	}

	return wait.NewPlan(ramp, repeat)
}
