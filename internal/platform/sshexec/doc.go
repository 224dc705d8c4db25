// Package sshexec reaches launched instances over SSH and rsync.
//
// The SSH client authenticates with the instance's key pair file and retries
// the initial dial, since a freshly running instance can accept connections
// slightly after its state flips. Rsync runs as a local subprocess with the
// same key wired through its remote shell option.
package sshexec
