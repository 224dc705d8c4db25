// Package instance defines the instance records the rest of the tool operates
// on. A Ref names an instance within a region; an Instance is a point-in-time
// snapshot of the attributes the EC2 API reported for it.
package instance

import (
	"fmt"
	"time"

	"github.com/ec2fab/ec2fab/internal/util/tags"
)

// State is the lifecycle state of an EC2 instance as reported by the API.
type State string

// Instance lifecycle states.
const (
	StatePending      State = "pending"
	StateRunning      State = "running"
	StateShuttingDown State = "shutting-down"
	StateTerminated   State = "terminated"
	StateStopping     State = "stopping"
	StateStopped      State = "stopped"
)

// ParseState returns the State named by s.
func ParseState(s string) (State, error) {
	switch State(s) {
	case StatePending, StateRunning, StateShuttingDown, StateTerminated, StateStopping, StateStopped:
		return State(s), nil
	}
	return "", fmt.Errorf("unknown instance state %q", s)
}

// Instance is a point-in-time snapshot of an EC2 instance. Snapshots are
// re-fetched from the API for every observation and never updated in place.
type Instance struct {
	ID               string
	Region           string
	State            State
	InstanceType     string
	KeyName          string
	PublicDNSName    string
	PrivateDNSName   string
	PublicIP         string
	PrivateIP        string
	AvailabilityZone string
	LaunchTime       time.Time
	Tags             map[string]string
}

// Ref returns the reference naming this instance.
func (i *Instance) Ref() Ref {
	return Ref{Region: i.Region, ID: i.ID}
}

// Name returns the instance's Name tag, or "" when it has none.
func (i *Instance) Name() string {
	return i.Tags[tags.KeyName]
}

// PrettyName returns "name (id)" when the instance has a Name tag and just
// the id otherwise.
func (i *Instance) PrettyName() string {
	if name := i.Name(); name != "" {
		return fmt.Sprintf("%s (%s)", name, i.ID)
	}
	return i.ID
}
