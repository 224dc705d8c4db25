package launch

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ec2fab/ec2fab/internal/config"
	"github.com/ec2fab/ec2fab/internal/instance"
	"github.com/ec2fab/ec2fab/internal/platform/ec2"
	"github.com/ec2fab/ec2fab/internal/ui/prompt"
	"github.com/ec2fab/ec2fab/internal/wait"
)

// ErrEmptyRegistry signals a launch attempt with no launch configs defined.
var ErrEmptyRegistry = errors.New("no launch configs defined in the configuration")

// ErrAborted signals that the operator declined the confirmation prompt.
var ErrAborted = errors.New("launch aborted by operator")

// Solicit enumerates the launch-config registry and reads the operator's
// choice. The answer is not validated here; resolution happens in
// NewRequest.
func Solicit(settings *config.Settings, p *prompt.Prompter) (string, error) {
	if len(settings.LaunchConfigs) == 0 {
		return "", ErrEmptyRegistry
	}
	p.Say(ConfigTable(settings))
	return p.Ask("Type the name of one of the configs above and press ENTER:")
}

// ConfirmMany shows the full batch and reads the operator's decision. Only a
// line of "y" or "Y" proceeds; anything else leaves the whole batch
// unlaunched.
func ConfirmMany(requests []*Request, p *prompt.Prompter) (bool, error) {
	p.Say(Summary(requests))
	return p.Confirm(fmt.Sprintf("Launch %d instance(s)?", len(requests)))
}

// RunMany launches every request in order. A failure stops the batch and
// returns the instances launched so far along with the error; nothing is
// rolled back.
func RunMany(ctx context.Context, backend ec2.LaunchBackend, requests []*Request, out io.Writer) ([]*instance.Instance, error) {
	launched := make([]*instance.Instance, 0, len(requests))
	for i, request := range requests {
		inst, err := backend.RunInstance(ctx, request.Region, request.Spec())
		if err != nil {
			return launched, fmt.Errorf("launching request %d of %d (%s): %w", i+1, len(requests), request.ConfigName, err)
		}
		fmt.Fprintf(out, "Launched %s in %s.\n", inst.PrettyName(), request.Region)
		launched = append(launched, inst)
	}
	return launched, nil
}

// StateWaiter blocks until an instance reaches the running state.
// Implemented by wait.Waiter.
type StateWaiter interface {
	WaitForRunning(ctx context.Context, ref instance.Ref, plan *wait.Plan) (*instance.Instance, error)
}

// WaitForRunningMany waits for every instance in launch order and returns
// fresh snapshots of those that reached the running state. A timeout or
// failure on one instance does not skip the rest; the collected errors are
// joined once every instance has been visited.
func WaitForRunningMany(ctx context.Context, waiter StateWaiter, instances []*instance.Instance, plan *wait.Plan) ([]*instance.Instance, error) {
	ready := make([]*instance.Instance, 0, len(instances))
	var errs []error
	for _, inst := range instances {
		fresh, err := waiter.WaitForRunning(ctx, inst.Ref(), plan)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		ready = append(ready, fresh)
	}
	return ready, errors.Join(errs...)
}
