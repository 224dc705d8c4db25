package handlers

import (
	"context"
	"fmt"

	"github.com/ec2fab/ec2fab/internal/instance"
)

// ListOptions contains options for the list command.
type ListOptions struct {
	ConfigPath string
	Region     string
	Tags       []string
}

// List handles the list command.
//
// Without tag filters it prints one summary line per instance in the region,
// or a note when the region is empty. With tag filters only matching
// instances are listed and zero matches is reported as an error.
func List(ctx context.Context, opts ListOptions) error {
	settings, err := loadSettings(opts.ConfigPath)
	if err != nil {
		return err
	}

	region := opts.Region
	if region == "" {
		region = settings.DefaultRegion
	}

	manager := newInstanceManager(settings)

	if len(opts.Tags) > 0 {
		tagFilter, err := parseTagArgs(opts.Tags)
		if err != nil {
			return err
		}
		instances, err := manager.GetByTags(ctx, region, tagFilter)
		if err != nil {
			return err
		}
		printSummaries(instances)
		return nil
	}

	instances, err := manager.List(ctx, region)
	if err != nil {
		return err
	}
	if len(instances) == 0 {
		fmt.Printf("No instances in region %s.\n", region)
		return nil
	}
	printSummaries(instances)
	return nil
}

func printSummaries(instances []*instance.Instance) {
	for _, inst := range instances {
		fmt.Println(instance.Summary(inst))
	}
}
