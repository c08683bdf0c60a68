// Package manifest handles vela.toml project configuration.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Manifest represents a vela.toml project configuration.
type Manifest struct {
	Project Project `toml:"project"`
	Inspect Inspect `toml:"inspect"`

	// Dir is the directory containing the vela.toml file (set at load time).
	Dir string `toml:"-"`
}

// Project contains project metadata.
type Project struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

// Inspect configures the table inspector defaults.
type Inspect struct {
	// Classes filters the table dump to the named built-in classes.
	// Empty means all classes.
	Classes []string `toml:"classes"`

	// Opcodes switches the dump grouping from class to opcode.
	Opcodes bool `toml:"opcodes"`
}

// Load parses a vela.toml file from the given directory.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, "vela.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}
	m.Dir = dir

	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}
	return &m, nil
}

// Validate checks required fields.
func (m *Manifest) Validate() error {
	if m.Project.Name == "" {
		return fmt.Errorf("project.name is required")
	}
	return nil
}
