package handlers

import (
	"context"
	"errors"
	"fmt"
)

// TagOptions contains options for the tag command.
type TagOptions struct {
	ConfigPath string
	Ref        string
	ByName     bool
	Tags       []string
}

// Tag handles the tag command.
//
// It creates or overwrites tags on an existing instance. Tagging by Name and
// then re-tagging the Name tag effectively renames the instance.
func Tag(ctx context.Context, opts TagOptions) error {
	tagMap, err := parseTagArgs(opts.Tags)
	if err != nil {
		return err
	}
	if len(tagMap) == 0 {
		return errors.New("no tags given, expected KEY=VALUE arguments")
	}

	settings, err := loadSettings(opts.ConfigPath)
	if err != nil {
		return err
	}

	manager := newInstanceManager(settings)
	inst, err := resolveInstance(ctx, manager, settings, opts.Ref, opts.ByName)
	if err != nil {
		return err
	}

	if err := manager.AddTags(ctx, inst.Region, inst.ID, tagMap); err != nil {
		return err
	}

	fmt.Printf("Tagged %s with %d tag(s).\n", inst.PrettyName(), len(tagMap))
	return nil
}
