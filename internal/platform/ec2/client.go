// Package ec2 wraps the AWS EC2 API behind the small interfaces the rest of
// the tool consumes: a directory for locating existing instances and a
// backend for launching and tagging new ones.
package ec2

import (
	"context"

	"github.com/ec2fab/ec2fab/internal/instance"
)

// RunSpec holds all parameters for launching a single instance.
type RunSpec struct {
	AMI              string
	InstanceType     string
	KeyName          string
	SecurityGroups   []string
	AvailabilityZone string
	Tags             map[string]string
}

// InstanceDirectory defines lookups over existing instances. Every call
// queries the API; results are never cached.
type InstanceDirectory interface {
	// GetByID returns the instance with the ref's id.
	GetByID(ctx context.Context, ref instance.Ref) (*instance.Instance, error)

	// GetByName returns the single instance whose Name tag equals the
	// ref's ID field. Zero matches yield a *NotFoundError, more than one
	// an *AmbiguousError.
	GetByName(ctx context.Context, ref instance.Ref) (*instance.Instance, error)

	// GetByTags returns every instance matching all given tags. An empty
	// result is a *NotFoundError, never an empty slice.
	GetByTags(ctx context.Context, region string, tags map[string]string) ([]*instance.Instance, error)

	// GetExactlyOneByTags returns the single instance matching all given
	// tags.
	GetExactlyOneByTags(ctx context.Context, region string, tags map[string]string) (*instance.Instance, error)

	// List returns all instances in the region. The result may be empty.
	List(ctx context.Context, region string) ([]*instance.Instance, error)
}

// LaunchBackend defines instance creation and tagging.
type LaunchBackend interface {
	// RunInstance launches one instance in the region and returns its
	// initial snapshot.
	RunInstance(ctx context.Context, region string, spec RunSpec) (*instance.Instance, error)

	// AddTags creates or overwrites tags on an existing instance.
	AddTags(ctx context.Context, region, instanceID string, tags map[string]string) error
}

// InstanceManager combines directory lookups with launch operations.
type InstanceManager interface {
	InstanceDirectory
	LaunchBackend
}
