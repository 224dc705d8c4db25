package handlers

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ec2fab/ec2fab/internal/config"
	"github.com/ec2fab/ec2fab/internal/instance"
	"github.com/ec2fab/ec2fab/internal/platform/sshexec"
)

// remoteExecutor interface for testing - matches sshexec.Client.
type remoteExecutor interface {
	Execute(ctx context.Context, command string) (string, error)
}

// Factory function variables for ssh - can be replaced in tests.
var (
	// newRemoteExecutor builds the SSH client used to run remote commands.
	newRemoteExecutor = func(cfg *sshexec.Config) (remoteExecutor, error) {
		return sshexec.NewClient(cfg)
	}

	// readKeyFile reads the private key from disk.
	readKeyFile = os.ReadFile
)

// SSHOptions contains options for the ssh command.
type SSHOptions struct {
	ConfigPath string
	Ref        string
	ByName     bool
	Command    []string
}

// SSH handles the ssh command.
//
// Without a remote command it prints the ssh invocation for the instance, so
// a shell can be opened with $(ec2fab ssh REF). With a remote command it
// connects and runs it, printing the combined output. The output is printed
// even when the remote command fails.
func SSH(ctx context.Context, opts SSHOptions) error {
	settings, err := loadSettings(opts.ConfigPath)
	if err != nil {
		return err
	}

	manager := newInstanceManager(settings)
	inst, err := resolveInstance(ctx, manager, settings, opts.Ref, opts.ByName)
	if err != nil {
		return err
	}

	uri, keyFile, err := connectionDetails(inst, settings)
	if err != nil {
		return err
	}

	if len(opts.Command) == 0 {
		if settings.ExtraSSHArgs != "" {
			fmt.Printf("ssh -i %s %s %s\n", keyFile, settings.ExtraSSHArgs, uri)
		} else {
			fmt.Printf("ssh -i %s %s\n", keyFile, uri)
		}
		return nil
	}

	key, err := readKeyFile(keyFile)
	if err != nil {
		return fmt.Errorf("reading key file %s: %w", keyFile, err)
	}

	client, err := newRemoteExecutor(&sshexec.Config{
		Host:       inst.PublicDNSName,
		User:       inst.SSHUser(settings.SSHUser),
		PrivateKey: key,
	})
	if err != nil {
		return err
	}

	output, err := client.Execute(ctx, strings.Join(opts.Command, " "))
	if output != "" {
		fmt.Print(output)
	}
	return err
}

// connectionDetails returns the user@host target and the private key file
// for an instance. The instance needs a public DNS name and an associated
// key pair whose .pem file is present in one of the keypair dirs.
func connectionDetails(inst *instance.Instance, settings *config.Settings) (uri, keyFile string, err error) {
	if inst.PublicDNSName == "" {
		return "", "", fmt.Errorf("instance %s has no public DNS name; is it running?", inst.PrettyName())
	}
	if inst.KeyName == "" {
		return "", "", fmt.Errorf("instance %s has no key pair associated", inst.PrettyName())
	}
	keyFile, err = instance.FindKeyFile(settings.KeyPairDirs, inst.KeyName)
	if err != nil {
		return "", "", err
	}
	return inst.SSHURI(settings.SSHUser), keyFile, nil
}
