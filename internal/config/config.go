// Package config loads and validates the comparison configuration: which
// stub files to compare, the target-class set, and the class hierarchy used
// for inheritance resolution. The hierarchy is domain knowledge the tool is
// given, never derived from the parsed files.
package config

import "github.com/OutSquareCapital/sigdiff/internal/signature"

// Config is the complete sigdiff configuration. It can be loaded from
// .sigdiff/config.yml with SIGDIFF_* environment variable overrides.
type Config struct {
	Left  SideConfig `yaml:"left" mapstructure:"left"`
	Right SideConfig `yaml:"right" mapstructure:"right"`

	// Classes is the ordered set of classes eligible for comparison,
	// each with its ancestor list already in override order:
	// earlier-listed ancestors win over later-listed ones. Members of
	// classes outside this list are ignored entirely, and the list
	// order drives resolution and therefore output order.
	Classes []ClassSpec `yaml:"classes" mapstructure:"classes"`

	// IgnoreMembers holds extra member-name glob patterns excluded on
	// top of the fixed underscore/dunder filter.
	IgnoreMembers []string `yaml:"ignore_members" mapstructure:"ignore_members"`

	// Output is the NDJSON report destination.
	Output string `yaml:"output" mapstructure:"output"`
}

// SideConfig identifies one side of the comparison.
type SideConfig struct {
	Label string `yaml:"label" mapstructure:"label"` // name used in reports
	Stub  string `yaml:"stub" mapstructure:"stub"`   // path to the .pyi stub file
}

// ClassSpec is one target class and its ordered ancestors.
type ClassSpec struct {
	Name      string   `yaml:"name" mapstructure:"name"`
	Ancestors []string `yaml:"ancestors,omitempty" mapstructure:"ancestors"`
}

// ClassNames returns the ordered target-class names.
func (c *Config) ClassNames() []string {
	names := make([]string, len(c.Classes))
	for i, spec := range c.Classes {
		names[i] = spec.Name
	}
	return names
}

// HierarchyMap returns the class hierarchy in the resolver's shape.
func (c *Config) HierarchyMap() signature.Hierarchy {
	hierarchy := make(signature.Hierarchy, len(c.Classes))
	for _, spec := range c.Classes {
		hierarchy[spec.Name] = spec.Ancestors
	}
	return hierarchy
}

// Default returns the configuration for the pathlib family comparison the
// tool was built around.
func Default() *Config {
	return &Config{
		Left: SideConfig{
			Label: "pathlib",
			Stub:  "reference/__init__.pyi",
		},
		Right: SideConfig{
			Label: "pyopath",
			Stub:  "pyopath.pyi",
		},
		Classes: []ClassSpec{
			{Name: "PurePath"},
			{Name: "PurePosixPath", Ancestors: []string{"PurePath"}},
			{Name: "PureWindowsPath", Ancestors: []string{"PurePath"}},
			{Name: "Path", Ancestors: []string{"PurePath"}},
			{Name: "PosixPath", Ancestors: []string{"Path", "PurePosixPath", "PurePath"}},
			{Name: "WindowsPath", Ancestors: []string{"Path", "PureWindowsPath", "PurePath"}},
		},
		IgnoreMembers: []string{},
		Output:        "signature_differences.ndjson",
	}
}
