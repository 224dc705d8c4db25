package handlers

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ec2fab/ec2fab/internal/config"
	"github.com/ec2fab/ec2fab/internal/instance"
	"github.com/ec2fab/ec2fab/internal/platform/ec2"
)

// Factory function variables shared across handlers - can be replaced in tests.
var (
	// loadSettings locates and loads the settings file.
	loadSettings = config.Load

	// newInstanceManager creates the EC2 client, pinning the static
	// credentials from the settings file when they are set.
	newInstanceManager = func(settings *config.Settings) ec2.InstanceManager {
		if settings.AWS.IsZero() {
			return ec2.NewRealClient()
		}
		return ec2.NewRealClient(ec2.WithStaticCredentials(settings.AWS.AccessKeyID, settings.AWS.SecretAccessKey))
	}

	// stdin feeds the interactive prompts.
	stdin io.Reader = os.Stdin
)

// resolveInstance looks up one instance from a command-line reference. The
// reference names an instance id, or a Name tag value when byName is set,
// optionally prefixed with "region:".
func resolveInstance(ctx context.Context, directory ec2.InstanceDirectory, settings *config.Settings, raw string, byName bool) (*instance.Instance, error) {
	if byName {
		return directory.GetByName(ctx, instance.ParseNameRef(raw, settings.DefaultRegion))
	}
	return directory.GetByID(ctx, instance.ParseRef(raw, settings.DefaultRegion))
}

// parseTagArgs turns KEY=VALUE arguments into a tag map. A nil map is
// returned when no arguments are given.
func parseTagArgs(args []string) (map[string]string, error) {
	if len(args) == 0 {
		return nil, nil
	}
	tags := make(map[string]string, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid tag %q, expected KEY=VALUE", arg)
		}
		tags[key] = value
	}
	return tags, nil
}
