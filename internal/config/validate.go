package config

import (
	"errors"
	"fmt"
)

// ValidationError reports a settings file that cannot be used.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Message)
}

// Validate checks the settings for completeness. It runs after defaults are
// applied and before any network call.
func (s *Settings) Validate() error {
	if s.DefaultRegion == "" {
		return &ValidationError{Field: "default_region", Message: "cannot be empty"}
	}

	if s.Wait.Ramp != nil && len(s.Wait.Ramp) == 0 {
		return &ValidationError{Field: "wait.ramp", Message: "must contain at least one interval"}
	}
	for i, d := range s.Wait.Ramp {
		if d < 0 {
			return &ValidationError{Field: "wait.ramp", Message: fmt.Sprintf("interval %d cannot be negative", i)}
		}
	}
	if s.Wait.Repeat != nil && *s.Wait.Repeat < 0 {
		return &ValidationError{Field: "wait.repeat", Message: "cannot be negative"}
	}

	for _, name := range s.LaunchConfigNames() {
		if err := s.LaunchConfigs[name].validate(); err != nil {
			return &ValidationError{Field: "launch_configs." + name, Message: err.Error()}
		}
	}

	if (s.AWS.AccessKeyID == "") != (s.AWS.SecretAccessKey == "") {
		return &ValidationError{Field: "aws", Message: "access_key_id and secret_access_key must be set together"}
	}

	return nil
}

func (lc LaunchConfig) validate() error {
	if lc.AMI == "" {
		return errors.New("ami is required")
	}
	if lc.KeyName == "" {
		return errors.New("key_name is required")
	}
	if lc.InstanceType == "" {
		return errors.New("instance_type is required")
	}
	return nil
}
