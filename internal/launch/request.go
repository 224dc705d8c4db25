// Package launch resolves named launch configurations into concrete requests
// and drives batches of them through the confirm, launch and wait phases.
//
// Batches are strictly ordered. Launches happen one at a time and the wait
// phase visits instances in launch order, so progress reporting never
// interleaves. Nothing here rolls back: a failure part-way leaves the earlier
// instances running and surfaces the error.
package launch

import (
	"fmt"

	"github.com/ec2fab/ec2fab/internal/config"
	"github.com/ec2fab/ec2fab/internal/platform/ec2"
	"github.com/ec2fab/ec2fab/internal/util/naming"
	"github.com/ec2fab/ec2fab/internal/util/tags"
)

// Request is one fully resolved instance launch: a named config flattened
// against the settings plus the merged tag set.
type Request struct {
	ConfigName       string
	Region           string
	AMI              string
	InstanceType     string
	KeyName          string
	SecurityGroups   []string
	AvailabilityZone string
	Tags             map[string]string
}

// NewRequest resolves configName against the settings. Tags are merged in
// order: the config's defaults, then the Name tag, then extras, with later
// entries winning key-by-key. The availability zone suffix is joined with the
// region, so zone "b" in us-east-1 places the instance in us-east-1b.
func NewRequest(settings *config.Settings, configName, name string, extraTags map[string]string) (*Request, error) {
	lc, err := settings.LaunchConfig(configName)
	if err != nil {
		return nil, err
	}

	region := lc.Region
	if region == "" {
		region = settings.DefaultRegion
	}

	zone := ""
	if lc.AvailabilityZone != "" {
		zone = region + lc.AvailabilityZone
	}

	return &Request{
		ConfigName:       configName,
		Region:           region,
		AMI:              lc.AMI,
		InstanceType:     lc.InstanceType,
		KeyName:          lc.KeyName,
		SecurityGroups:   append([]string(nil), lc.SecurityGroups...),
		AvailabilityZone: zone,
		Tags: tags.NewBuilder().
			Merge(lc.Tags).
			WithNameIfSet(name).
			Merge(extraTags).
			Build(),
	}, nil
}

// NewRequests builds count requests from one config. With count above one
// the Name tag is numbered name-1 through name-N.
func NewRequests(settings *config.Settings, configName, name string, extraTags map[string]string, count int) ([]*Request, error) {
	if count < 1 {
		return nil, fmt.Errorf("instance count must be at least 1, got %d", count)
	}

	requests := make([]*Request, 0, count)
	for i := 1; i <= count; i++ {
		request, err := NewRequest(settings, configName, naming.Instance(name, i, count), extraTags)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}
	return requests, nil
}

// Spec returns the platform launch parameters for this request.
func (r *Request) Spec() ec2.RunSpec {
	return ec2.RunSpec{
		AMI:              r.AMI,
		InstanceType:     r.InstanceType,
		KeyName:          r.KeyName,
		SecurityGroups:   r.SecurityGroups,
		AvailabilityZone: r.AvailabilityZone,
		Tags:             r.Tags,
	}
}
