package testing

import (
	"context"
	"time"

	"github.com/ec2fab/ec2fab/internal/instance"
	"github.com/ec2fab/ec2fab/internal/platform/ec2"
)

// DirectoryFixture provides pre-configured mock clients for common lookup
// and polling scenarios.
type DirectoryFixture struct {
	mock *ec2.MockClient
}

// NewDirectoryFixture creates a new directory fixture.
func NewDirectoryFixture() *DirectoryFixture {
	return &DirectoryFixture{
		mock: &ec2.MockClient{},
	}
}

// Mock returns the underlying MockClient for custom configuration.
func (f *DirectoryFixture) Mock() *ec2.MockClient {
	return f.mock
}

// AlwaysInState configures lookups to report every instance pinned in state.
// Returns the same mock for chaining.
func (f *DirectoryFixture) AlwaysInState(state instance.State) *ec2.MockClient {
	f.mock.GetByIDFunc = func(_ context.Context, ref instance.Ref) (*instance.Instance, error) {
		return InstanceInState(ref.ID, ref.Region, state), nil
	}
	f.mock.GetByNameFunc = func(_ context.Context, ref instance.Ref) (*instance.Instance, error) {
		inst := InstanceInState("i-mock", ref.Region, state)
		inst.Tags = map[string]string{"Name": ref.ID}
		return inst, nil
	}
	return f.mock
}

// RunningAfter configures lookups to report pending until the instance has
// been observed polls times, then running. A polls of 1 reports running on
// the first lookup.
func (f *DirectoryFixture) RunningAfter(polls int) *ec2.MockClient {
	observed := 0
	f.mock.GetByIDFunc = func(_ context.Context, ref instance.Ref) (*instance.Instance, error) {
		observed++
		if observed < polls {
			return InstanceInState(ref.ID, ref.Region, instance.StatePending), nil
		}
		return InstanceInState(ref.ID, ref.Region, instance.StateRunning), nil
	}
	return f.mock
}

// WithLookupError configures every lookup to fail with err.
func (f *DirectoryFixture) WithLookupError(err error) *ec2.MockClient {
	f.mock.GetByIDFunc = func(context.Context, instance.Ref) (*instance.Instance, error) {
		return nil, err
	}
	f.mock.GetByNameFunc = func(context.Context, instance.Ref) (*instance.Instance, error) {
		return nil, err
	}
	return f.mock
}

// InstanceInState returns an instance record in the given state.
func InstanceInState(id, region string, state instance.State) *instance.Instance {
	return &instance.Instance{
		ID:           id,
		Region:       region,
		State:        state,
		InstanceType: "t3.micro",
		KeyName:      "deploy",
		LaunchTime:   time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

// RunningInstance returns a running instance record with its addresses
// populated, ready for SSH-path tests.
func RunningInstance(id string) *instance.Instance {
	inst := InstanceInState(id, "us-east-1", instance.StateRunning)
	inst.PublicDNSName = "ec2-1-2-3-4.compute-1.amazonaws.com"
	inst.PublicIP = "1.2.3.4"
	inst.PrivateDNSName = "ip-10-0-0-4.ec2.internal"
	inst.PrivateIP = "10.0.0.4"
	inst.AvailabilityZone = "us-east-1a"
	return inst
}
