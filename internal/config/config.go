// Package config loads and validates the ec2fab settings file.
//
// Settings cover the default region, SSH access defaults, the search path
// for key pair files and the named launch configurations an operator can
// start instances from. The file is plain YAML; see FindConfigFile for the
// lookup order.
package config

import (
	"fmt"
	"sort"
	"time"

	"github.com/ec2fab/ec2fab/internal/wait"
)

// Defaults applied when the settings file leaves a field unset.
const (
	defaultRegion  = "us-east-1"
	defaultSSHUser = "ec2-user"
)

func defaultKeyPairDirs() []string {
	return []string{"~/.ssh"}
}

// Settings is the full contents of an ec2fab.yaml file.
type Settings struct {
	DefaultRegion string                  `yaml:"default_region"`
	SSHUser       string                  `yaml:"ssh_user"`
	ExtraSSHArgs  string                  `yaml:"extra_ssh_args,omitempty"`
	KeyPairDirs   []string                `yaml:"keypair_dirs"`
	AWS           Credentials             `yaml:"aws,omitempty"`
	LaunchConfigs map[string]LaunchConfig `yaml:"launch_configs"`
	Wait          WaitSettings            `yaml:"wait,omitempty"`
}

// Credentials optionally pins the AWS key pair used for API calls. When
// empty, the SDK's default credential chain applies.
type Credentials struct {
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
}

// IsZero implements yaml's zero check so empty credentials are omitted.
func (c Credentials) IsZero() bool {
	return c == Credentials{}
}

// LaunchConfig describes one named way to launch an instance.
type LaunchConfig struct {
	Description      string            `yaml:"description,omitempty"`
	Region           string            `yaml:"region,omitempty"`
	AMI              string            `yaml:"ami"`
	KeyName          string            `yaml:"key_name"`
	InstanceType     string            `yaml:"instance_type"`
	SecurityGroups   []string          `yaml:"security_groups,omitempty"`
	AvailabilityZone string            `yaml:"availability_zone,omitempty"`
	Tags             map[string]string `yaml:"tags,omitempty"`
}

// WaitSettings carries the default polling plan. Zero values fall back to
// the stock ramp and repeat count.
type WaitSettings struct {
	Ramp   []Duration `yaml:"ramp"`
	Repeat *int       `yaml:"repeat"`
}

// IsZero implements yaml's zero check so an unset wait section is omitted.
func (w WaitSettings) IsZero() bool {
	return w.Ramp == nil && w.Repeat == nil
}

// RampDurations returns the configured ramp as plain durations, or the stock
// ramp when none is configured.
func (w WaitSettings) RampDurations() []time.Duration {
	if len(w.Ramp) == 0 {
		return wait.DefaultRamp()
	}
	ramp := make([]time.Duration, len(w.Ramp))
	for i, d := range w.Ramp {
		ramp[i] = time.Duration(d)
	}
	return ramp
}

// RepeatCount returns the configured steady repeat count, or the stock count
// when none is configured.
func (w WaitSettings) RepeatCount() int {
	if w.Repeat != nil {
		return *w.Repeat
	}
	return wait.DefaultRepeat
}

// Plan builds the wait plan these settings describe.
func (w WaitSettings) Plan() (*wait.Plan, error) {
	return wait.NewPlan(w.RampDurations(), w.RepeatCount())
}

// applyDefaults fills unset fields with their stock values.
func (s *Settings) applyDefaults() {
	if s.DefaultRegion == "" {
		s.DefaultRegion = defaultRegion
	}
	if s.SSHUser == "" {
		s.SSHUser = defaultSSHUser
	}
	if s.KeyPairDirs == nil {
		s.KeyPairDirs = defaultKeyPairDirs()
	}
}

// LaunchConfig returns the named launch config.
func (s *Settings) LaunchConfig(name string) (LaunchConfig, error) {
	lc, ok := s.LaunchConfigs[name]
	if !ok {
		return LaunchConfig{}, &ValidationError{
			Field:   "launch_configs",
			Message: fmt.Sprintf("no launch config named %q", name),
		}
	}
	return lc, nil
}

// LaunchConfigNames returns the configured launch config names, sorted.
func (s *Settings) LaunchConfigNames() []string {
	names := make([]string, 0, len(s.LaunchConfigs))
	for name := range s.LaunchConfigs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
