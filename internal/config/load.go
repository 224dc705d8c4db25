package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the settings file looked for in the working directory.
const DefaultFileName = "ec2fab.yaml"

// EnvConfigPath names the environment variable overriding the settings file
// location.
const EnvConfigPath = "EC2FAB_CONFIG"

// homeFileName is the fallback settings file in the home directory.
const homeFileName = ".ec2fab.yaml"

// Load locates and loads the settings file. An empty explicit path triggers
// the FindConfigFile search order.
func Load(explicit string) (*Settings, error) {
	path, err := FindConfigFile(explicit)
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads, defaults and validates the settings at path.
func LoadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- the operator chooses the config path
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	settings.applyDefaults()

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	if err := settings.expandKeyPairDirs(); err != nil {
		return nil, err
	}

	return &settings, nil
}

// FindConfigFile resolves the settings path: an explicit path wins, then the
// EC2FAB_CONFIG environment variable, then ec2fab.yaml in the working
// directory, then .ec2fab.yaml in the home directory.
func FindConfigFile(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if env := os.Getenv(EnvConfigPath); env != "" {
		return env, nil
	}
	if _, err := os.Stat(DefaultFileName); err == nil {
		return DefaultFileName, nil
	}
	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, homeFileName)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no %s found in the working directory or home; run 'ec2fab init' to create one", DefaultFileName)
}

// Save writes the settings to path as YAML. The file may hold credentials,
// so it is not group or world readable.
func Save(s *Settings, path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// expandKeyPairDirs resolves "~" prefixes against the current user's home.
func (s *Settings) expandKeyPairDirs() error {
	for i, dir := range s.KeyPairDirs {
		if dir != "~" && !strings.HasPrefix(dir, "~/") {
			continue
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("expanding key pair dir %q: %w", dir, err)
		}
		s.KeyPairDirs[i] = filepath.Join(home, strings.TrimPrefix(dir, "~"))
	}
	return nil
}
