package ec2

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/ec2fab/ec2fab/internal/instance"
)

// RunInstance launches a single instance described by spec. Tags are applied
// through the launch call itself, so the instance is never visible untagged.
func (c *RealClient) RunInstance(ctx context.Context, region string, spec RunSpec) (*instance.Instance, error) {
	api, err := c.api(ctx, region)
	if err != nil {
		return nil, err
	}

	input := &ec2.RunInstancesInput{
		ImageId:      aws.String(spec.AMI),
		InstanceType: types.InstanceType(spec.InstanceType),
		MinCount:     aws.Int32(1),
		MaxCount:     aws.Int32(1),
	}
	if spec.KeyName != "" {
		input.KeyName = aws.String(spec.KeyName)
	}
	if len(spec.SecurityGroups) > 0 {
		input.SecurityGroups = spec.SecurityGroups
	}
	if spec.AvailabilityZone != "" {
		input.Placement = &types.Placement{AvailabilityZone: aws.String(spec.AvailabilityZone)}
	}
	if len(spec.Tags) > 0 {
		input.TagSpecifications = []types.TagSpecification{{
			ResourceType: types.ResourceTypeInstance,
			Tags:         toTags(spec.Tags),
		}}
	}

	out, err := api.RunInstances(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("launching instance from image %s in region %q: %w", spec.AMI, region, err)
	}
	if len(out.Instances) == 0 {
		return nil, fmt.Errorf("launch of image %s in region %q returned no instances", spec.AMI, region)
	}
	return fromInstance(region, out.Instances[0]), nil
}

// AddTags creates or overwrites tags on an instance.
func (c *RealClient) AddTags(ctx context.Context, region, instanceID string, tagMap map[string]string) error {
	if len(tagMap) == 0 {
		return nil
	}

	api, err := c.api(ctx, region)
	if err != nil {
		return err
	}

	if _, err := api.CreateTags(ctx, &ec2.CreateTagsInput{
		Resources: []string{instanceID},
		Tags:      toTags(tagMap),
	}); err != nil {
		return fmt.Errorf("tagging instance %s in region %q: %w", instanceID, region, err)
	}
	return nil
}
