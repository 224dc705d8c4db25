package naming

import "fmt"

// Naming functions for launched resources.
// Derived names are built in one place so the launch, lookup and SSH
// key paths agree on them.

// Instance returns the Name tag for the instance at index (1-based) in a
// batch of count. Single-instance batches keep the base name unnumbered.
func Instance(base string, index, count int) string {
	if base == "" || count <= 1 {
		return base
	}
	return fmt.Sprintf("%s-%d", base, index)
}

// KeyFile returns the file name a key pair's private key is stored under.
func KeyFile(keyName string) string {
	return keyName + ".pem"
}
