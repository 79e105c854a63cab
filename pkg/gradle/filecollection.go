package gradle

import (
	"errors"
	"fmt"
)

// ErrUnresolvable indicates a dependency configuration whose file contents
// cannot be materialized (e.g. a dependency is missing from every repository).
var ErrUnresolvable = errors.New("configuration cannot be resolved")

// FileCollection is a read-only set of file paths reported by the host build.
type FileCollection interface {
	// Files returns the paths in this collection. For lazily resolved
	// collections this may be empty when resolution fails.
	Files() []string
}

// FileList is an eagerly materialized file collection.
type FileList []string

// Files returns the paths in this list.
func (f FileList) Files() []string {
	return f
}

// Configuration is a lazily resolvable dependency configuration. Its file
// contents are only trustworthy after a successful Resolve call.
type Configuration struct {
	Name string

	files        []string
	unresolvable bool
}

// NewConfiguration creates a resolvable configuration with the given contents.
func NewConfiguration(name string, files []string) *Configuration {
	return &Configuration{
		Name:  name,
		files: files,
	}
}

// NewUnresolvableConfiguration creates a configuration whose resolution fails.
func NewUnresolvableConfiguration(name string) *Configuration {
	return &Configuration{
		Name:         name,
		unresolvable: true,
	}
}

// Files returns the resolved contents, or nil when the configuration cannot
// be resolved.
func (c *Configuration) Files() []string {
	files, err := c.Resolve()
	if err != nil {
		return nil
	}
	return files
}

// Resolve materializes the configuration into concrete file paths.
func (c *Configuration) Resolve() ([]string, error) {
	if c.unresolvable {
		return nil, fmt.Errorf("configuration %s: %w", c.Name, ErrUnresolvable)
	}
	return c.files, nil
}

// Union merges two configurations without resolving either of them. The
// merged configuration resolves only if both inputs resolve. Union is
// nil-safe on both sides.
func (c *Configuration) Union(other *Configuration) *Configuration {
	if c == nil {
		return other
	}
	if other == nil {
		return c
	}

	merged := make([]string, 0, len(c.files)+len(other.files))
	merged = append(merged, c.files...)
	merged = append(merged, other.files...)

	return &Configuration{
		Name:         c.Name + "+" + other.Name,
		files:        merged,
		unresolvable: c.unresolvable || other.unresolvable,
	}
}
