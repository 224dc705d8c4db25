package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ec2fab/ec2fab/internal/util/ptr"
)

const sampleYAML = `
default_region: eu-west-1
ssh_user: admin
extra_ssh_args: -o StrictHostKeyChecking=no
keypair_dirs:
  - /etc/keys
launch_configs:
  webserver:
    description: Web frontend
    region: us-west-2
    ami: ami-123
    key_name: deploy
    instance_type: t3.micro
    security_groups:
      - web
    availability_zone: b
    tags:
      Env: prod
wait:
  ramp: [15s, 5s]
  repeat: 2
`

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ec2fab.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

// chdir stands in for testing.T.Chdir, which requires Go 1.24+.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Setenv("PWD", dir)
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Errorf("failed to restore working directory: %v", err)
		}
	})
}

func TestLoadFile(t *testing.T) {
	settings, err := LoadFile(writeConfig(t, sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "eu-west-1", settings.DefaultRegion)
	assert.Equal(t, "admin", settings.SSHUser)
	assert.Equal(t, "-o StrictHostKeyChecking=no", settings.ExtraSSHArgs)
	assert.Equal(t, []string{"/etc/keys"}, settings.KeyPairDirs)

	lc, err := settings.LaunchConfig("webserver")
	require.NoError(t, err)
	assert.Equal(t, "Web frontend", lc.Description)
	assert.Equal(t, "us-west-2", lc.Region)
	assert.Equal(t, "ami-123", lc.AMI)
	assert.Equal(t, "deploy", lc.KeyName)
	assert.Equal(t, "t3.micro", lc.InstanceType)
	assert.Equal(t, []string{"web"}, lc.SecurityGroups)
	assert.Equal(t, "b", lc.AvailabilityZone)
	assert.Equal(t, map[string]string{"Env": "prod"}, lc.Tags)

	assert.Equal(t, []time.Duration{15 * time.Second, 5 * time.Second}, settings.Wait.RampDurations())
	assert.Equal(t, 2, settings.Wait.RepeatCount())

	plan, err := settings.Wait.Plan()
	require.NoError(t, err)
	assert.Equal(t, 4, plan.Attempts())
	assert.Equal(t, 30*time.Second, plan.Total())
}

func TestLoadFile_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	settings, err := LoadFile(writeConfig(t, "launch_configs: {}\n"))
	require.NoError(t, err)

	assert.Equal(t, "us-east-1", settings.DefaultRegion)
	assert.Equal(t, "ec2-user", settings.SSHUser)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(home, ".ssh")}, settings.KeyPairDirs)

	plan, err := settings.Wait.Plan()
	require.NoError(t, err)
	assert.Equal(t, 42, plan.Attempts())
	assert.Equal(t, 220*time.Second, plan.Total())
}

func TestLoadFile_TildeExpansion(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	settings, err := LoadFile(writeConfig(t, "keypair_dirs: [\"~/keys\", \"/abs\"]\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(home, "keys"), "/abs"}, settings.KeyPairDirs)
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadFile_InvalidYAML(t *testing.T) {
	_, err := LoadFile(writeConfig(t, "launch_configs: ["))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadFile_ValidationFailure(t *testing.T) {
	contents := `
launch_configs:
  broken:
    key_name: deploy
    instance_type: t3.micro
`
	_, err := LoadFile(writeConfig(t, contents))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "launch_configs.broken")
	assert.Contains(t, err.Error(), "ami is required")
}

func TestFindConfigFile_Explicit(t *testing.T) {
	path, err := FindConfigFile("/some/path.yaml")
	require.NoError(t, err)
	assert.Equal(t, "/some/path.yaml", path)
}

func TestFindConfigFile_Environment(t *testing.T) {
	t.Setenv(EnvConfigPath, "/env/path.yaml")

	path, err := FindConfigFile("")
	require.NoError(t, err)
	assert.Equal(t, "/env/path.yaml", path)
}

func TestFindConfigFile_WorkingDirectory(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	chdir(t, dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFileName), []byte("{}\n"), 0o600))

	path, err := FindConfigFile("")
	require.NoError(t, err)
	assert.Equal(t, DefaultFileName, path)
}

func TestFindConfigFile_Home(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	home := t.TempDir()
	t.Setenv("HOME", home)
	chdir(t, t.TempDir())

	homePath := filepath.Join(home, homeFileName)
	require.NoError(t, os.WriteFile(homePath, []byte("{}\n"), 0o600))

	path, err := FindConfigFile("")
	require.NoError(t, err)
	assert.Equal(t, homePath, path)
}

func TestFindConfigFile_NotFound(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	_, err := FindConfigFile("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ec2fab init")
}

func TestSave_RoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	settings := &Settings{
		DefaultRegion: "eu-west-1",
		SSHUser:       "admin",
		KeyPairDirs:   []string{"/etc/keys"},
		AWS:           Credentials{AccessKeyID: "AKIA_TEST", SecretAccessKey: "secret"},
		LaunchConfigs: map[string]LaunchConfig{
			"webserver": {AMI: "ami-123", KeyName: "deploy", InstanceType: "t3.micro"},
		},
		Wait: WaitSettings{Ramp: []Duration{Duration(10 * time.Second)}, Repeat: ptr.Int(2)},
	}

	path := filepath.Join(t.TempDir(), "ec2fab.yaml")
	require.NoError(t, Save(settings, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, settings.DefaultRegion, loaded.DefaultRegion)
	assert.Equal(t, settings.AWS, loaded.AWS)
	assert.Equal(t, []time.Duration{10 * time.Second}, loaded.Wait.RampDurations())
	assert.Equal(t, 2, loaded.Wait.RepeatCount())
}

func TestSave_OmitsEmptySections(t *testing.T) {
	settings := &Settings{
		DefaultRegion: "us-east-1",
		SSHUser:       "ec2-user",
		KeyPairDirs:   []string{"~/.ssh"},
		LaunchConfigs: map[string]LaunchConfig{},
	}

	path := filepath.Join(t.TempDir(), "ec2fab.yaml")
	require.NoError(t, Save(settings, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "aws:")
	assert.NotContains(t, string(data), "wait:")
	assert.NotContains(t, string(data), "extra_ssh_args:")
}
