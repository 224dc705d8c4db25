package handlers

import (
	"context"
	"os"
	"strings"

	"github.com/ec2fab/ec2fab/internal/platform/sshexec"
	"github.com/ec2fab/ec2fab/internal/util/prerequisites"
)

// Factory function variables for rsync - can be replaced in tests.
var (
	// runRsync invokes the rsync binary.
	runRsync = sshexec.Rsync

	// checkRsyncPrereqs verifies the local tools rsync shells out to.
	checkRsyncPrereqs = prerequisites.CheckForRsync
)

// RsyncOptions contains options for the rsync command.
type RsyncOptions struct {
	ConfigPath  string
	Ref         string
	ByName      bool
	LocalDir    string
	RemoteDir   string
	SyncContent bool
	RsyncArgs   string
}

// Rsync handles the rsync command.
//
// It uploads a local directory to the instance over ssh. By default the
// directory itself lands inside RemoteDir; with SyncContent only its
// contents do. The rsync output streams through unchanged.
func Rsync(ctx context.Context, opts RsyncOptions) error {
	if err := checkRsyncPrereqs().Error(); err != nil {
		return err
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

	uri, keyFile, err := connectionDetails(inst, settings)
	if err != nil {
		return err
	}

	spec := sshexec.RsyncSpec{
		SSHURI:       uri,
		KeyFile:      keyFile,
		ExtraSSHArgs: settings.ExtraSSHArgs,
		LocalDir:     opts.LocalDir,
		RemoteDir:    opts.RemoteDir,
		SyncContent:  opts.SyncContent,
	}
	if opts.RsyncArgs != "" {
		spec.Args = strings.Fields(opts.RsyncArgs)
	}

	return runRsync(ctx, spec, os.Stdout, os.Stderr)
}
