package ec2

import (
	"context"

	"github.com/ec2fab/ec2fab/internal/instance"
)

// MockClient is a mock implementation of InstanceManager for testing. Unset
// function fields fall back to benign defaults.
type MockClient struct {
	GetByIDFunc             func(ctx context.Context, ref instance.Ref) (*instance.Instance, error)
	GetByNameFunc           func(ctx context.Context, ref instance.Ref) (*instance.Instance, error)
	GetByTagsFunc           func(ctx context.Context, region string, tags map[string]string) ([]*instance.Instance, error)
	GetExactlyOneByTagsFunc func(ctx context.Context, region string, tags map[string]string) (*instance.Instance, error)
	ListFunc                func(ctx context.Context, region string) ([]*instance.Instance, error)
	RunInstanceFunc         func(ctx context.Context, region string, spec RunSpec) (*instance.Instance, error)
	AddTagsFunc             func(ctx context.Context, region, instanceID string, tags map[string]string) error
}

func (m *MockClient) GetByID(ctx context.Context, ref instance.Ref) (*instance.Instance, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ref)
	}
	return &instance.Instance{ID: ref.ID, Region: ref.Region, State: instance.StateRunning}, nil
}

func (m *MockClient) GetByName(ctx context.Context, ref instance.Ref) (*instance.Instance, error) {
	if m.GetByNameFunc != nil {
		return m.GetByNameFunc(ctx, ref)
	}
	return &instance.Instance{ID: "i-mock", Region: ref.Region, State: instance.StateRunning}, nil
}

func (m *MockClient) GetByTags(ctx context.Context, region string, tags map[string]string) ([]*instance.Instance, error) {
	if m.GetByTagsFunc != nil {
		return m.GetByTagsFunc(ctx, region, tags)
	}
	return []*instance.Instance{{ID: "i-mock", Region: region, State: instance.StateRunning}}, nil
}

func (m *MockClient) GetExactlyOneByTags(ctx context.Context, region string, tags map[string]string) (*instance.Instance, error) {
	if m.GetExactlyOneByTagsFunc != nil {
		return m.GetExactlyOneByTagsFunc(ctx, region, tags)
	}
	return &instance.Instance{ID: "i-mock", Region: region, State: instance.StateRunning}, nil
}

func (m *MockClient) List(ctx context.Context, region string) ([]*instance.Instance, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, region)
	}
	return nil, nil
}

func (m *MockClient) RunInstance(ctx context.Context, region string, spec RunSpec) (*instance.Instance, error) {
	if m.RunInstanceFunc != nil {
		return m.RunInstanceFunc(ctx, region, spec)
	}
	return &instance.Instance{ID: "i-mock", Region: region, State: instance.StatePending, Tags: spec.Tags}, nil
}

func (m *MockClient) AddTags(ctx context.Context, region, instanceID string, tags map[string]string) error {
	if m.AddTagsFunc != nil {
		return m.AddTagsFunc(ctx, region, instanceID, tags)
	}
	return nil
}
