package instance

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ec2fab/ec2fab/internal/util/naming"
	"github.com/ec2fab/ec2fab/internal/util/tags"
)

// SSHUser returns the login user for the instance: the value of its
// ec2fab-ssh-user tag when present, the supplied default otherwise.
func (i *Instance) SSHUser(defaultUser string) string {
	if user := i.Tags[tags.KeySSHUser]; user != "" {
		return user
	}
	return defaultUser
}

// SSHURI returns "user@host" for the instance's public DNS name.
func (i *Instance) SSHURI(defaultUser string) string {
	return i.SSHUser(defaultUser) + "@" + i.PublicDNSName
}

// KeyNotFoundError reports that no private key file for a key pair name
// could be found in any of the searched directories.
type KeyNotFoundError struct {
	KeyName string
	Dirs    []string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("no key file %s found in: %s", naming.KeyFile(e.KeyName), strings.Join(e.Dirs, ", "))
}

// FindKeyFile searches dirs in order for "<keyName>.pem" and returns the
// first path that exists. Directories are taken as given; expand user paths
// before calling.
func FindKeyFile(dirs []string, keyName string) (string, error) {
	if keyName == "" {
		return "", &KeyNotFoundError{KeyName: keyName, Dirs: dirs}
	}
	for _, dir := range dirs {
		path := filepath.Join(dir, naming.KeyFile(keyName))
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", &KeyNotFoundError{KeyName: keyName, Dirs: dirs}
}
