// Package testing provides test utilities, builders, and fixtures for unit tests.
//
// This package centralizes common testing patterns to avoid duplication across test files:
//   - SettingsBuilder: Fluent builder for creating test settings
//   - DirectoryFixture: Pre-configured mock directories for lookup and polling scenarios
//
// Usage:
//
//	settings := internaltesting.NewSettingsBuilder().
//	    WithRegion("us-west-2").
//	    WithLaunchConfig("webserver", config.LaunchConfig{AMI: "ami-123"}).
//	    Build()
//
//	fixture := internaltesting.NewDirectoryFixture()
//	directory := fixture.RunningAfter(3)
package testing
