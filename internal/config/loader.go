package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Loader provides configuration loading capabilities.
type Loader interface {
	// Load loads configuration from file and environment variables.
	// Priority: defaults → config file → environment variables (env wins)
	Load() (*Config, error)
}

type loader struct {
	rootDir string
}

// NewLoader creates a new configuration loader for the given root directory.
func NewLoader(rootDir string) Loader {
	return &loader{
		rootDir: rootDir,
	}
}

// Load loads configuration with the following priority (highest to lowest):
// 1. Environment variables (SIGDIFF_*)
// 2. Config file (.sigdiff/config.yml or .sigdiff/config.yaml)
// 3. Default values
func (l *loader) Load() (*Config, error) {
	v := viper.New()

	configDir := filepath.Join(l.rootDir, ".sigdiff")
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)

	v.SetEnvPrefix("SIGDIFF")
	v.AutomaticEnv()
	// Replace . with _ in env var names (e.g., SIGDIFF_LEFT_STUB)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("left.label")
	v.BindEnv("left.stub")
	v.BindEnv("right.label")
	v.BindEnv("right.stub")
	v.BindEnv("output")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// Config file not found is acceptable - defaults + env vars apply
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setDefaults configures viper with default values.
func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("left.label", defaults.Left.Label)
	v.SetDefault("left.stub", defaults.Left.Stub)
	v.SetDefault("right.label", defaults.Right.Label)
	v.SetDefault("right.stub", defaults.Right.Stub)
	v.SetDefault("classes", classDefaults(defaults.Classes))
	v.SetDefault("ignore_members", defaults.IgnoreMembers)
	v.SetDefault("output", defaults.Output)
}

// classDefaults renders class specs as plain maps so viper merges them
// cleanly with file-provided values.
func classDefaults(classes []ClassSpec) []map[string]any {
	out := make([]map[string]any, len(classes))
	for i, spec := range classes {
		out[i] = map[string]any{
			"name":      spec.Name,
			"ancestors": spec.Ancestors,
		}
	}
	return out
}

// LoadConfig is a convenience function that creates a loader and loads
// config from the current working directory.
func LoadConfig() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return NewLoader(wd).Load()
}

// LoadConfigFromDir loads configuration from a specific directory.
func LoadConfigFromDir(rootDir string) (*Config, error) {
	return NewLoader(rootDir).Load()
}
