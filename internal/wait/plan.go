// Package wait implements the bounded polling loop used to observe EC2
// instance state transitions.
//
// A Plan fixes the whole budget up front: a ramp of initial intervals
// followed by a steady repetition of the last ramp interval. The waiter
// checks the instance before every sleep, so a transition that has already
// happened costs no wait at all, and the total budget is known and reported
// before the first check.
package wait

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultRepeat is the stock steady repeat count.
const DefaultRepeat = 40

// DefaultRamp returns a fresh copy of the stock ramp intervals. The ramp
// starts with one long interval to cover the common boot delay, then polls
// more frequently.
func DefaultRamp() []time.Duration {
	return []time.Duration{15 * time.Second, 5 * time.Second}
}

// ErrEmptyRamp rejects plans built without at least one ramp interval.
var ErrEmptyRamp = errors.New("ramp must contain at least one interval")

// Plan is the ordered sequence of intervals a waiter sleeps between checks.
// The number of intervals is also the number of checks the waiter makes.
type Plan struct {
	intervals []time.Duration
}

// NewPlan builds a plan from the ramp intervals followed by repeat extra
// occurrences of the last ramp interval. The ramp must not be empty and no
// interval or repeat count may be negative.
func NewPlan(ramp []time.Duration, repeat int) (*Plan, error) {
	if len(ramp) == 0 {
		return nil, ErrEmptyRamp
	}
	if repeat < 0 {
		return nil, fmt.Errorf("steady repeat count cannot be negative, got %d", repeat)
	}
	for i, interval := range ramp {
		if interval < 0 {
			return nil, fmt.Errorf("ramp interval %d cannot be negative, got %s", i, interval)
		}
	}
	return &Plan{intervals: buildIntervals(ramp, repeat)}, nil
}

// DefaultPlan returns the stock plan: 15s then 5s, with the 5s interval
// repeated 40 more times (220s total).
func DefaultPlan() *Plan {
	return &Plan{intervals: buildIntervals(DefaultRamp(), DefaultRepeat)}
}

func buildIntervals(ramp []time.Duration, repeat int) []time.Duration {
	intervals := make([]time.Duration, 0, len(ramp)+repeat)
	intervals = append(intervals, ramp...)
	last := ramp[len(ramp)-1]
	for i := 0; i < repeat; i++ {
		intervals = append(intervals, last)
	}
	return intervals
}

// Attempts returns the number of state checks the plan allows.
func (p *Plan) Attempts() int {
	return len(p.intervals)
}

// Total returns the wait budget: the sum of every interval. This is the
// figure reported to the operator before polling starts.
func (p *Plan) Total() time.Duration {
	var total time.Duration
	for _, interval := range p.intervals {
		total += interval
	}
	return total
}

// Intervals returns a copy of the interval sequence.
func (p *Plan) Intervals() []time.Duration {
	out := make([]time.Duration, len(p.intervals))
	copy(out, p.intervals)
	return out
}

// ParseRamp parses a comma-separated interval list such as "15s,5s". Bare
// integers are taken as seconds.
func ParseRamp(s string) ([]time.Duration, error) {
	parts := strings.Split(s, ",")
	ramp := make([]time.Duration, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if secs, err := strconv.Atoi(part); err == nil {
			ramp = append(ramp, time.Duration(secs)*time.Second)
			continue
		}
		d, err := time.ParseDuration(part)
		if err != nil {
			return nil, fmt.Errorf("invalid ramp interval %q: %w", part, err)
		}
		ramp = append(ramp, d)
	}
	if len(ramp) == 0 {
		return nil, ErrEmptyRamp
	}
	return ramp, nil
}
