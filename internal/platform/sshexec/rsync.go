package sshexec

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// RsyncSpec describes one local-to-remote rsync invocation.
type RsyncSpec struct {
	// SSHURI is the user@host target.
	SSHURI string

	// KeyFile is the private key passed to ssh via -i.
	KeyFile string

	// ExtraSSHArgs is appended verbatim to the ssh command inside -e.
	ExtraSSHArgs string

	// Args are the rsync options; nil means "-av".
	Args []string

	// LocalDir is the upload source.
	LocalDir string

	// RemoteDir is the destination path on the host.
	RemoteDir string

	// SyncContent uploads the directory's contents instead of the
	// directory itself, by forcing a trailing slash on the source.
	SyncContent bool
}

// Argv returns the full rsync argument vector for the spec, excluding the
// program name. The source follows rsync's trailing-slash semantics: with
// SyncContent a slash is forced so the directory's contents land in
// RemoteDir, without it the slash is stripped so the directory itself does.
func (s RsyncSpec) Argv() []string {
	args := s.Args
	if args == nil {
		args = []string{"-av"}
	}

	remoteShell := "ssh -i " + s.KeyFile
	if s.ExtraSSHArgs != "" {
		remoteShell += " " + s.ExtraSSHArgs
	}

	local := s.LocalDir
	if s.SyncContent {
		if !strings.HasSuffix(local, "/") {
			local += "/"
		}
	} else {
		local = strings.TrimRight(local, "/")
	}

	argv := make([]string, 0, len(args)+4)
	argv = append(argv, args...)
	argv = append(argv, "-e", remoteShell)
	argv = append(argv, local, s.SSHURI+":"+s.RemoteDir)
	return argv
}

// Rsync uploads LocalDir to the instance, streaming rsync's output to the
// given writers.
func Rsync(ctx context.Context, spec RsyncSpec, stdout, stderr io.Writer) error {
	cmd := exec.CommandContext(ctx, "rsync", spec.Argv()...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("rsync to %s:%s failed: %w", spec.SSHURI, spec.RemoteDir, err)
	}
	return nil
}
