// Package project loads the .modelforge.yaml project file and resolves
// the containers code is generated into.
package project

import (
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/dosanma1/modelforge/internal/driver"
	"github.com/dosanma1/modelforge/internal/errors"
	"github.com/dosanma1/modelforge/pkg/xos"
)

const (
	// ConfigFileName is the project file looked up from the working directory upwards.
	ConfigFileName = ".modelforge.yaml"

	// ConfigVersion is the current project file version.
	ConfigVersion = "1"
)

// containerNamePattern matches container names usable in shortcut notation.
var containerNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Config represents the .modelforge.yaml configuration file.
type Config struct {
	Version string `mapstructure:"version" yaml:"version" json:"version"`

	// Containers are the units generated code lands in.
	Containers []Container `mapstructure:"containers" yaml:"containers" json:"containers"`

	// SkeletonDirs are extra template override directories, searched after
	// the container and project overrides.
	SkeletonDirs []string `mapstructure:"skeletonDirs" yaml:"skeletonDirs,omitempty" json:"skeletonDirs,omitempty"`

	// KnownTypes are fully-qualified classes accepted as field types in
	// addition to those found in container sources.
	KnownTypes []string `mapstructure:"knownTypes" yaml:"knownTypes,omitempty" json:"knownTypes,omitempty"`

	Defaults Defaults `mapstructure:"defaults" yaml:"defaults" json:"defaults"`
}

// Container maps a name used in shortcut notation to a namespace and a source root.
type Container struct {
	Name      string `mapstructure:"name" yaml:"name" json:"name"`
	Namespace string `mapstructure:"namespace" yaml:"namespace" json:"namespace"`

	// Path is relative to the project root unless absolute.
	Path string `mapstructure:"path" yaml:"path" json:"path"`
}

// Defaults hold the generation defaults used when flags are not given.
type Defaults struct {
	Driver string `mapstructure:"driver" yaml:"driver" json:"driver"`
	Format string `mapstructure:"format" yaml:"format" json:"format"`
}

// NewDefaultConfig creates a config with sensible defaults.
func NewDefaultConfig() *Config {
	cfg := &Config{Containers: []Container{}}
	cfg.applyDefaults()
	return cfg
}

// Validate checks semantic rules the schema cannot express.
func (c *Config) Validate() error {
	names := make(map[string]bool)
	for _, ct := range c.Containers {
		if !containerNamePattern.MatchString(ct.Name) {
			return errors.NewValidationError(fmt.Sprintf("invalid container name %q", ct.Name), "containers", "use letters, digits and underscores")
		}
		if names[ct.Name] {
			return errors.NewValidationError(fmt.Sprintf("duplicate container name %q", ct.Name), "containers", "")
		}
		names[ct.Name] = true

		if ct.Namespace == "" {
			return errors.NewValidationError(fmt.Sprintf("container %s: namespace is required", ct.Name), "containers", "")
		}
		if ct.Path == "" {
			return errors.NewValidationError(fmt.Sprintf("container %s: path is required", ct.Name), "containers", "")
		}
	}

	if _, err := driver.Parse(c.Defaults.Driver); err != nil {
		return fmt.Errorf("defaults.driver: %w", err)
	}
	if _, err := driver.ParseFormat(c.Defaults.Format); err != nil {
		return fmt.Errorf("defaults.format: %w", err)
	}

	return nil
}

// applyDefaults sets default values for missing fields.
func (c *Config) applyDefaults() {
	if c.Version == "" {
		c.Version = ConfigVersion
	}
	if c.Defaults.Driver == "" {
		c.Defaults.Driver = driver.ORM.ID()
	}
	if c.Defaults.Format == "" {
		c.Defaults.Format = string(driver.XML)
	}
}

// Container finds a container by name.
func (c *Config) Container(name string) (*Container, error) {
	for i := range c.Containers {
		if c.Containers[i].Name == name {
			return &c.Containers[i], nil
		}
	}
	return nil, errors.NewNotFoundError(
		fmt.Sprintf("container %q does not exist", name),
		"",
		"register it under containers in "+ConfigFileName,
	)
}

// AddContainer adds a new container to the configuration.
func (c *Config) AddContainer(ct Container) error {
	for _, existing := range c.Containers {
		if existing.Name == ct.Name {
			return errors.NewValidationError(fmt.Sprintf("container already exists: %s", ct.Name), "", "")
		}
	}

	c.Containers = append(c.Containers, ct)
	return nil
}

// Save writes the config to a file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := xos.WriteFile(path, data, xos.FilePerm); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
