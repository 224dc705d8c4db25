package testing

import (
	"maps"

	"github.com/ec2fab/ec2fab/internal/config"
)

// SettingsBuilder provides a fluent interface for constructing test settings.
// Each method returns a new builder (immutable) for chaining.
type SettingsBuilder struct {
	settings config.Settings
}

// NewSettingsBuilder creates a new SettingsBuilder with sensible defaults.
func NewSettingsBuilder() *SettingsBuilder {
	return &SettingsBuilder{
		settings: config.Settings{
			DefaultRegion: "us-east-1",
			SSHUser:       "ec2-user",
			KeyPairDirs:   []string{"~/.ssh"},
		},
	}
}

// WithRegion sets the default region.
func (b *SettingsBuilder) WithRegion(region string) *SettingsBuilder {
	newBuilder := b.clone()
	newBuilder.settings.DefaultRegion = region
	return newBuilder
}

// WithSSHUser sets the default SSH login user.
func (b *SettingsBuilder) WithSSHUser(user string) *SettingsBuilder {
	newBuilder := b.clone()
	newBuilder.settings.SSHUser = user
	return newBuilder
}

// WithExtraSSHArgs sets the extra arguments passed to ssh and rsync.
func (b *SettingsBuilder) WithExtraSSHArgs(args string) *SettingsBuilder {
	newBuilder := b.clone()
	newBuilder.settings.ExtraSSHArgs = args
	return newBuilder
}

// WithKeyPairDirs sets the key pair search path.
func (b *SettingsBuilder) WithKeyPairDirs(dirs ...string) *SettingsBuilder {
	newBuilder := b.clone()
	newBuilder.settings.KeyPairDirs = dirs
	return newBuilder
}

// WithCredentials sets explicit AWS credentials.
func (b *SettingsBuilder) WithCredentials(accessKeyID, secretAccessKey string) *SettingsBuilder {
	newBuilder := b.clone()
	newBuilder.settings.AWS = config.Credentials{
		AccessKeyID:     accessKeyID,
		SecretAccessKey: secretAccessKey,
	}
	return newBuilder
}

// WithLaunchConfig adds a named launch configuration.
func (b *SettingsBuilder) WithLaunchConfig(name string, lc config.LaunchConfig) *SettingsBuilder {
	newBuilder := b.clone()
	if newBuilder.settings.LaunchConfigs == nil {
		newBuilder.settings.LaunchConfigs = make(map[string]config.LaunchConfig)
	}
	newBuilder.settings.LaunchConfigs[name] = lc
	return newBuilder
}

// WithWait sets the polling schedule.
func (b *SettingsBuilder) WithWait(wait config.WaitSettings) *SettingsBuilder {
	newBuilder := b.clone()
	newBuilder.settings.Wait = wait
	return newBuilder
}

// Build returns the constructed settings.
func (b *SettingsBuilder) Build() *config.Settings {
	settings := b.settings // copy
	return &settings
}

// clone creates a deep copy of the builder for immutability.
func (b *SettingsBuilder) clone() *SettingsBuilder {
	newSettings := b.settings
	// Deep copy slices and nested maps
	if len(b.settings.KeyPairDirs) > 0 {
		newSettings.KeyPairDirs = make([]string, len(b.settings.KeyPairDirs))
		copy(newSettings.KeyPairDirs, b.settings.KeyPairDirs)
	}
	if b.settings.LaunchConfigs != nil {
		newSettings.LaunchConfigs = make(map[string]config.LaunchConfig, len(b.settings.LaunchConfigs))
		for name, lc := range b.settings.LaunchConfigs {
			newSettings.LaunchConfigs[name] = cloneLaunchConfig(lc)
		}
	}
	if len(b.settings.Wait.Ramp) > 0 {
		newSettings.Wait.Ramp = make([]config.Duration, len(b.settings.Wait.Ramp))
		copy(newSettings.Wait.Ramp, b.settings.Wait.Ramp)
	}
	return &SettingsBuilder{settings: newSettings}
}

// cloneLaunchConfig creates a deep copy of a LaunchConfig.
func cloneLaunchConfig(lc config.LaunchConfig) config.LaunchConfig {
	cloned := lc
	cloned.SecurityGroups = cloneStringSlice(lc.SecurityGroups)
	cloned.Tags = cloneStringMap(lc.Tags)
	return cloned
}

// cloneStringMap creates a deep copy of a string map.
func cloneStringMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	cloned := make(map[string]string, len(m))
	maps.Copy(cloned, m)
	return cloned
}

// cloneStringSlice creates a copy of a string slice.
func cloneStringSlice(s []string) []string {
	if s == nil {
		return nil
	}
	cloned := make([]string, len(s))
	copy(cloned, s)
	return cloned
}

// MinimalSettings returns a minimal valid settings fixture for simple tests.
func MinimalSettings() *config.Settings {
	return NewSettingsBuilder().
		WithLaunchConfig("webserver", config.LaunchConfig{
			AMI:          "ami-123",
			KeyName:      "deploy",
			InstanceType: "t3.micro",
		}).
		Build()
}
