package wait

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ec2fab/ec2fab/internal/instance"
)

// Directory looks up the current snapshot of an instance. Implemented by
// platform/ec2.
type Directory interface {
	GetByID(ctx context.Context, ref instance.Ref) (*instance.Instance, error)
}

// Waiter polls a directory until an instance reaches a target state or its
// plan is exhausted.
type Waiter struct {
	directory Directory
	out       io.Writer
	sleep     func(ctx context.Context, d time.Duration) error
}

// Option configures a Waiter.
type Option func(*Waiter)

// WithOutput directs the waiter's progress reporting to w.
func WithOutput(w io.Writer) Option {
	return func(wt *Waiter) {
		wt.out = w
	}
}

// NewWaiter returns a waiter reading instance snapshots from directory.
// Progress is reported to stdout unless WithOutput overrides it.
func NewWaiter(directory Directory, opts ...Option) *Waiter {
	w := &Waiter{
		directory: directory,
		out:       os.Stdout,
		sleep:     sleepContext,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// TimeoutError reports that an instance did not reach the target state
// within the plan's wait budget.
type TimeoutError struct {
	Ref     instance.Ref
	Target  instance.State
	MaxWait time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("instance %s did not reach state %q within %s", e.Ref, e.Target, e.MaxWait)
}

// Wait polls until the instance named by ref reports the target state.
//
// The instance is re-fetched from the directory before every sleep, so a
// state that already matches costs no wait. A lookup failure aborts the wait
// immediately; only a state mismatch keeps polling. When every attempt is
// spent a *TimeoutError carrying the reported budget is returned. A nil plan
// selects DefaultPlan.
func (w *Waiter) Wait(ctx context.Context, ref instance.Ref, target instance.State, plan *Plan) (*instance.Instance, error) {
	if plan == nil {
		plan = DefaultPlan()
	}
	attempts := plan.Attempts()
	fmt.Fprintf(w.out, "Waiting for %s to reach state %q. Will wait up to %s.\n", ref, target, plan.Total())

	for i, interval := range plan.intervals {
		inst, err := w.directory.GetByID(ctx, ref)
		if err != nil {
			return nil, fmt.Errorf("looking up %s: %w", ref, err)
		}
		if inst.State == target {
			fmt.Fprintln(w.out, ".. OK")
			return inst, nil
		}
		if i == attempts-1 {
			fmt.Fprintf(w.out, ".. current state %q (attempt %d of %d)\n", inst.State, i+1, attempts)
			break
		}
		fmt.Fprintf(w.out, ".. current state %q (attempt %d of %d), retrying in %s\n", inst.State, i+1, attempts, interval)
		if err := w.sleep(ctx, interval); err != nil {
			return nil, err
		}
	}

	return nil, &TimeoutError{Ref: ref, Target: target, MaxWait: plan.Total()}
}

// WaitForRunning waits for the instance to reach the running state.
func (w *Waiter) WaitForRunning(ctx context.Context, ref instance.Ref, plan *Plan) (*instance.Instance, error) {
	return w.Wait(ctx, ref, instance.StateRunning, plan)
}

// WaitForStopped waits for the instance to reach the stopped state.
func (w *Waiter) WaitForStopped(ctx context.Context, ref instance.Ref, plan *Plan) (*instance.Instance, error) {
	return w.Wait(ctx, ref, instance.StateStopped, plan)
}

// sleepContext sleeps for d unless the context is cancelled first.
func sleepContext(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
