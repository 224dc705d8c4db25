package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSSH(t *testing.T) {
	cmd := SSH()

	require.NotNil(t, cmd)
	assert.Equal(t, "ssh REF [COMMAND...]", cmd.Use)
	assert.NotNil(t, cmd.RunE, "SSH command should have RunE function")
}

func TestSSH_ByNameFlag(t *testing.T) {
	cmd := SSH()

	flag := cmd.Flags().Lookup("by-name")
	require.NotNil(t, flag, "by-name flag should exist")
	assert.Equal(t, "false", flag.DefValue)
}

func TestSSH_RequiresRef(t *testing.T) {
	cmd := SSH()

	require.NotNil(t, cmd.Args)
	assert.Error(t, cmd.Args(cmd, []string{}))
	assert.NoError(t, cmd.Args(cmd, []string{"i-0abc123"}))
	assert.NoError(t, cmd.Args(cmd, []string{"i-0abc123", "uptime"}))
}

func TestSSH_RemoteFlagsNotParsed(t *testing.T) {
	// Flags after the first positional arg belong to the remote command.
	cmd := SSH()

	err := cmd.ParseFlags([]string{"web1", "ls", "-la", "/var/log"})
	require.NoError(t, err)
	assert.Equal(t, []string{"web1", "ls", "-la", "/var/log"}, cmd.Flags().Args())
}
