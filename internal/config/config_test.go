package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for Config System:
// - Default() returns the pathlib family configuration
// - ClassNames() and HierarchyMap() project the class specs
// - Load() uses defaults when no config file exists
// - Load() merges .sigdiff/config.yml over defaults
// - Environment variables override the config file
// - Load() rejects malformed YAML
// - Validate() rejects empty labels and stub paths
// - Validate() rejects empty and duplicated class lists
// - Validate() rejects hierarchy cycles and self-ancestors
// - Validate() rejects ignore patterns that do not compile

func TestDefault_ReturnsPathlibFamily(t *testing.T) {
	t.Parallel()

	cfg := Default()

	require.NotNil(t, cfg)
	assert.Equal(t, "pathlib", cfg.Left.Label)
	assert.Equal(t, "pyopath", cfg.Right.Label)
	assert.Len(t, cfg.Classes, 6)
	assert.Equal(t, "signature_differences.ndjson", cfg.Output)

	assert.Equal(t, []string{
		"PurePath", "PurePosixPath", "PureWindowsPath",
		"Path", "PosixPath", "WindowsPath",
	}, cfg.ClassNames())

	hierarchy := cfg.HierarchyMap()
	assert.Empty(t, hierarchy["PurePath"])
	assert.Equal(t, []string{"Path", "PurePosixPath", "PurePath"}, hierarchy["PosixPath"])

	require.NoError(t, Validate(cfg))
}

func TestLoad_DefaultsWhenNoConfigFile(t *testing.T) {
	t.Parallel()

	cfg, err := LoadConfigFromDir(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, Default().Left, cfg.Left)
	assert.Equal(t, Default().ClassNames(), cfg.ClassNames())
}

func TestLoad_FromConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfigFile(t, dir, `
left:
  label: stdlib
  stub: stubs/reference.pyi
right:
  label: mylib
  stub: stubs/mylib.pyi
classes:
  - name: Base
  - name: Derived
    ancestors: [Base]
output: out/differences.ndjson
`)

	cfg, err := LoadConfigFromDir(dir)
	require.NoError(t, err)

	assert.Equal(t, "stdlib", cfg.Left.Label)
	assert.Equal(t, "stubs/mylib.pyi", cfg.Right.Stub)
	assert.Equal(t, []string{"Base", "Derived"}, cfg.ClassNames())
	assert.Equal(t, []string{"Base"}, cfg.HierarchyMap()["Derived"])
	assert.Equal(t, "out/differences.ndjson", cfg.Output)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, `
left:
  label: stdlib
  stub: from_file.pyi
`)

	t.Setenv("SIGDIFF_LEFT_STUB", "from_env.pyi")

	cfg, err := LoadConfigFromDir(dir)
	require.NoError(t, err)
	assert.Equal(t, "from_env.pyi", cfg.Left.Stub)
	assert.Equal(t, "stdlib", cfg.Left.Label)
}

func TestLoad_MalformedYAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfigFile(t, dir, "left: [unclosed")

	_, err := LoadConfigFromDir(dir)
	require.Error(t, err)
}

func TestLoad_InvalidConfigRejected(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfigFile(t, dir, `
classes: []
`)

	_, err := LoadConfigFromDir(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoClasses)
}

func TestValidate_EmptySides(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Left.Label = ""
	cfg.Right.Stub = "  "

	err := Validate(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyLabel)
	assert.ErrorIs(t, err, ErrEmptyStub)
}

func TestValidate_DuplicateClass(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Classes = append(cfg.Classes, ClassSpec{Name: "PurePath"})

	assert.ErrorIs(t, Validate(cfg), ErrDuplicateClass)
}

func TestValidate_HierarchyCycle(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Classes = []ClassSpec{
		{Name: "A", Ancestors: []string{"B"}},
		{Name: "B", Ancestors: []string{"A"}},
	}

	assert.ErrorIs(t, Validate(cfg), ErrHierarchyCycle)
}

func TestValidate_SelfAncestor(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Classes = []ClassSpec{{Name: "A", Ancestors: []string{"A"}}}

	assert.ErrorIs(t, Validate(cfg), ErrSelfAncestor)
}

func TestValidate_InvalidIgnoreGlob(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.IgnoreMembers = []string{"[unclosed"}

	assert.ErrorIs(t, Validate(cfg), ErrInvalidGlob)
}

func TestCompileIgnoreGlobs(t *testing.T) {
	t.Parallel()

	globs, err := CompileIgnoreGlobs([]string{"with_*", "as_uri"})
	require.NoError(t, err)
	require.Len(t, globs, 2)
	assert.True(t, globs[0].Match("with_name"))
	assert.False(t, globs[0].Match("relative_to"))
	assert.True(t, globs[1].Match("as_uri"))
}

func writeConfigFile(t *testing.T, dir, content string) {
	t.Helper()

	configDir := filepath.Join(dir, ".sigdiff")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yml"), []byte(content), 0o644))
}
