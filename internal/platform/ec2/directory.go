package ec2

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/ec2fab/ec2fab/internal/instance"
	"github.com/ec2fab/ec2fab/internal/util/tags"
)

// GetByID returns the current snapshot of the instance with the ref's id.
func (c *RealClient) GetByID(ctx context.Context, ref instance.Ref) (*instance.Instance, error) {
	api, err := c.api(ctx, ref.Region)
	if err != nil {
		return nil, err
	}

	out, err := api.DescribeInstances(ctx, &ec2.DescribeInstancesInput{
		InstanceIds: []string{ref.ID},
	})
	if err != nil {
		if isAPIErrorCode(err, codeInstanceNotFound, codeInstanceMalformed) {
			return nil, &NotFoundError{Query: "id " + ref.String()}
		}
		return nil, fmt.Errorf("describing instance %s: %w", ref, err)
	}

	instances := collectInstances(ref.Region, out)
	if len(instances) == 0 {
		return nil, &NotFoundError{Query: "id " + ref.String()}
	}
	return instances[0], nil
}

// GetByName returns the instance whose Name tag is the ref's ID field.
// Exactly one instance must match.
func (c *RealClient) GetByName(ctx context.Context, ref instance.Ref) (*instance.Instance, error) {
	query := fmt.Sprintf("Name tag %q in region %q", ref.ID, ref.Region)
	filters := []types.Filter{{
		Name:   aws.String("tag:" + tags.KeyName),
		Values: []string{ref.ID},
	}}

	instances, err := c.getByFilters(ctx, ref.Region, filters, query)
	if err != nil {
		return nil, err
	}
	if len(instances) > 1 {
		return nil, &AmbiguousError{Query: query, Count: len(instances)}
	}
	return instances[0], nil
}

// GetByTags returns every instance carrying all of the given tags.
func (c *RealClient) GetByTags(ctx context.Context, region string, tagFilter map[string]string) ([]*instance.Instance, error) {
	return c.getByFilters(ctx, region, tagFilters(tagFilter), tagQuery(region, tagFilter))
}

// GetExactlyOneByTags returns the single instance carrying all of the given
// tags.
func (c *RealClient) GetExactlyOneByTags(ctx context.Context, region string, tagFilter map[string]string) (*instance.Instance, error) {
	instances, err := c.GetByTags(ctx, region, tagFilter)
	if err != nil {
		return nil, err
	}
	if len(instances) > 1 {
		return nil, &AmbiguousError{Query: tagQuery(region, tagFilter), Count: len(instances)}
	}
	return instances[0], nil
}

// List returns every instance in the region. Unlike the filtered lookups an
// empty result is not an error.
func (c *RealClient) List(ctx context.Context, region string) ([]*instance.Instance, error) {
	api, err := c.api(ctx, region)
	if err != nil {
		return nil, err
	}

	instances, err := describeAll(ctx, api, region, &ec2.DescribeInstancesInput{})
	if err != nil {
		return nil, fmt.Errorf("listing instances in region %q: %w", region, err)
	}
	return instances, nil
}

// getByFilters runs a filtered describe call, converting an empty result
// into a *NotFoundError for the given query description.
func (c *RealClient) getByFilters(ctx context.Context, region string, filters []types.Filter, query string) ([]*instance.Instance, error) {
	api, err := c.api(ctx, region)
	if err != nil {
		return nil, err
	}

	instances, err := describeAll(ctx, api, region, &ec2.DescribeInstancesInput{Filters: filters})
	if err != nil {
		return nil, fmt.Errorf("describing instances by %s: %w", query, err)
	}
	if len(instances) == 0 {
		return nil, &NotFoundError{Query: query}
	}
	return instances, nil
}

// describeAll walks every page of a describe call.
func describeAll(ctx context.Context, api APIClient, region string, input *ec2.DescribeInstancesInput) ([]*instance.Instance, error) {
	var instances []*instance.Instance
	paginator := ec2.NewDescribeInstancesPaginator(api, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		instances = append(instances, collectInstances(region, page)...)
	}
	return instances, nil
}

// tagFilters builds describe filters from a tag map, in sorted key order.
func tagFilters(tagFilter map[string]string) []types.Filter {
	keys := sortedKeys(tagFilter)
	filters := make([]types.Filter, 0, len(keys))
	for _, k := range keys {
		filters = append(filters, types.Filter{
			Name:   aws.String("tag:" + k),
			Values: []string{tagFilter[k]},
		})
	}
	return filters
}

// tagQuery describes a tag lookup for error messages.
func tagQuery(region string, tagFilter map[string]string) string {
	pairs := make([]string, 0, len(tagFilter))
	for _, k := range sortedKeys(tagFilter) {
		pairs = append(pairs, k+"="+tagFilter[k])
	}
	return fmt.Sprintf("tags [%s] in region %q", strings.Join(pairs, ","), region)
}
