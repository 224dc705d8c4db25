// Package tags provides a builder for composing EC2 resource tag sets.
//
// Tag sets are assembled from a launch configuration's defaults plus
// per-invocation extras, and extras win key-by-key. Build returns a copy so a
// finished set is never shared with the builder.
package tags

// Well-known tag keys.
const (
	// KeyName is the standard EC2 display-name tag.
	KeyName = "Name"

	// KeySSHUser overrides the SSH login user for an instance.
	KeySSHUser = "ec2fab-ssh-user"
)

// Builder accumulates tags for a resource.
type Builder struct {
	tags map[string]string
}

// NewBuilder returns an empty tag builder.
func NewBuilder() *Builder {
	return &Builder{tags: make(map[string]string)}
}

// WithName sets the Name tag.
func (b *Builder) WithName(name string) *Builder {
	b.tags[KeyName] = name
	return b
}

// WithNameIfSet sets the Name tag only if name is non-empty.
func (b *Builder) WithNameIfSet(name string) *Builder {
	if name != "" {
		b.tags[KeyName] = name
	}
	return b
}

// Merge adds all tags from the provided map, overwriting existing keys.
func (b *Builder) Merge(extra map[string]string) *Builder {
	for k, v := range extra {
		b.tags[k] = v
	}
	return b
}

// Build returns a copy of the accumulated tags.
// Returns a copy to prevent external mutations.
func (b *Builder) Build() map[string]string {
	result := make(map[string]string, len(b.tags))
	for k, v := range b.tags {
		result[k] = v
	}
	return result
}
