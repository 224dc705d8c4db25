package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// WizardResult holds the operator's choices from the init wizard.
type WizardResult struct {
	DefaultRegion string
	SSHUser       string
	KeyPairDir    string

	ConfigName    string
	Description   string
	AMI           string
	KeyName       string
	InstanceType  string
	SecurityGroup string
}

// RunWizard walks the operator through a minimal first settings file: the
// account-wide defaults plus one launch config.
func RunWizard(ctx context.Context) (*WizardResult, error) {
	result := &WizardResult{
		DefaultRegion: defaultRegion,
		SSHUser:       defaultSSHUser,
		KeyPairDir:    "~/.ssh",
		ConfigName:    "default",
		InstanceType:  "t3.micro",
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Default region").
				Description("Used when a command or launch config names none").
				Placeholder("us-east-1").
				Value(&result.DefaultRegion).
				Validate(validateNotEmpty("region")),
			huh.NewInput().
				Title("SSH user").
				Description("Login user for instances without an ec2fab-ssh-user tag").
				Value(&result.SSHUser),
			huh.NewInput().
				Title("Key pair directory").
				Description("Searched for <key_name>.pem files").
				Value(&result.KeyPairDir),
		).Title("Defaults"),
		huh.NewGroup(
			huh.NewInput().
				Title("Launch config name").
				Description("The name used with 'ec2fab launch <name>'").
				Value(&result.ConfigName).
				Validate(validateNotEmpty("name")),
			huh.NewInput().
				Title("Description").
				Placeholder("General purpose server").
				Value(&result.Description),
			huh.NewInput().
				Title("AMI").
				Placeholder("ami-0123456789abcdef0").
				Value(&result.AMI).
				Validate(validateNotEmpty("ami")),
			huh.NewInput().
				Title("Key pair name").
				Description("The EC2 key pair to launch with").
				Value(&result.KeyName).
				Validate(validateNotEmpty("key name")),
			huh.NewInput().
				Title("Instance type").
				Value(&result.InstanceType).
				Validate(validateNotEmpty("instance type")),
			huh.NewInput().
				Title("Security group").
				Description("Optional; leave empty for the account default").
				Value(&result.SecurityGroup),
		).Title("First launch config"),
	)

	if err := form.RunWithContext(ctx); err != nil {
		return nil, fmt.Errorf("wizard failed: %w", err)
	}

	return result, nil
}

// ToSettings expands the wizard's answers into a full settings file.
func (r *WizardResult) ToSettings() *Settings {
	lc := LaunchConfig{
		Description:  r.Description,
		Region:       r.DefaultRegion,
		AMI:          r.AMI,
		KeyName:      r.KeyName,
		InstanceType: r.InstanceType,
	}
	if r.SecurityGroup != "" {
		lc.SecurityGroups = []string{r.SecurityGroup}
	}

	s := &Settings{
		DefaultRegion: r.DefaultRegion,
		SSHUser:       r.SSHUser,
		KeyPairDirs:   []string{r.KeyPairDir},
		LaunchConfigs: map[string]LaunchConfig{r.ConfigName: lc},
	}
	s.applyDefaults()
	return s
}

func validateNotEmpty(what string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s cannot be empty", what)
		}
		return nil
	}
}
