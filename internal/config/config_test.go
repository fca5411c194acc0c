package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenFileAbsent(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(DefaultPath, false)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_ExplicitMissingFileFails(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := Load("nope.yaml", true)
	assert.Error(t, err)
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	p := filepath.Join(dir, "trapmap.yaml")
	require.NoError(t, os.WriteFile(p, []byte("edges:\n  input_dir: data\n  format: json\nconvert:\n  axis_order: xxyy\n"), 0o644))

	cfg, err := Load(p, true)
	require.NoError(t, err)
	assert.Equal(t, "data", cfg.Edges.InputDir)
	assert.Equal(t, "json", cfg.Edges.Format)
	assert.Equal(t, "*.txt", cfg.Edges.Pattern)
	assert.Equal(t, "xxyy", cfg.Convert.AxisOrder)
	assert.Equal(t, "mapOut.txt", cfg.Convert.Output)
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	p := filepath.Join(dir, "trapmap.yaml")
	require.NoError(t, os.WriteFile(p, []byte("convert:\n  output: fromyaml.txt\n"), 0o644))
	t.Setenv("TRAPMAP_CONVERT_OUTPUT", "fromenv.txt")

	cfg, err := Load(p, true)
	require.NoError(t, err)
	assert.Equal(t, "fromenv.txt", cfg.Convert.Output)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("TRAPMAP_INPUT_DIR=dotenv_inputs\n"), 0o644))
	// registers a restore of the original state, then clears it so .env applies
	t.Setenv("TRAPMAP_INPUT_DIR", "")
	require.NoError(t, os.Unsetenv("TRAPMAP_INPUT_DIR"))

	cfg, err := Load("", false)
	require.NoError(t, err)
	assert.Equal(t, "dotenv_inputs", cfg.Edges.InputDir)
}

func TestLoad_BadYAML(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	p := filepath.Join(dir, "trapmap.yaml")
	require.NoError(t, os.WriteFile(p, []byte("edges: [unclosed\n"), 0o644))

	_, err := Load(p, true)
	assert.Error(t, err)
}
