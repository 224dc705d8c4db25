package ec2

import (
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/ec2fab/ec2fab/internal/instance"
)

// fromInstance converts an SDK instance into a snapshot record.
func fromInstance(region string, in types.Instance) *instance.Instance {
	tagMap := make(map[string]string, len(in.Tags))
	for _, tag := range in.Tags {
		tagMap[aws.ToString(tag.Key)] = aws.ToString(tag.Value)
	}

	state := instance.State("")
	if in.State != nil {
		state = instance.State(in.State.Name)
	}

	zone := ""
	if in.Placement != nil {
		zone = aws.ToString(in.Placement.AvailabilityZone)
	}

	return &instance.Instance{
		ID:               aws.ToString(in.InstanceId),
		Region:           region,
		State:            state,
		InstanceType:     string(in.InstanceType),
		KeyName:          aws.ToString(in.KeyName),
		PublicDNSName:    aws.ToString(in.PublicDnsName),
		PrivateDNSName:   aws.ToString(in.PrivateDnsName),
		PublicIP:         aws.ToString(in.PublicIpAddress),
		PrivateIP:        aws.ToString(in.PrivateIpAddress),
		AvailabilityZone: zone,
		LaunchTime:       aws.ToTime(in.LaunchTime),
		Tags:             tagMap,
	}
}

// collectInstances flattens the reservations of a describe call.
func collectInstances(region string, out *ec2.DescribeInstancesOutput) []*instance.Instance {
	var instances []*instance.Instance
	for _, reservation := range out.Reservations {
		for _, in := range reservation.Instances {
			instances = append(instances, fromInstance(region, in))
		}
	}
	return instances
}

// toTags converts a tag map into SDK tag structs, sorted by key for stable
// request building.
func toTags(tags map[string]string) []types.Tag {
	if len(tags) == 0 {
		return nil
	}
	keys := sortedKeys(tags)
	out := make([]types.Tag, 0, len(keys))
	for _, k := range keys {
		out = append(out, types.Tag{Key: aws.String(k), Value: aws.String(tags[k])})
	}
	return out
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
