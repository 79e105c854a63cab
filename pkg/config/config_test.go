package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfiguration_Defaults(t *testing.T) {
	cfg, err := LoadConfiguration(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, DefaultDumpFile, cfg.Platforms.DumpFile)
	assert.Equal(t, DefaultOutput, cfg.Platforms.Output)
}

func TestLoadConfiguration_LeafOverridesParent(t *testing.T) {
	tempDir := t.TempDir()
	childDir := filepath.Join(tempDir, "module")
	require.NoError(t, os.MkdirAll(childDir, 0755))

	parentConfig := `{"platforms": {"dumpFile": "parent.json", "output": "json"}}`
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, ConfigFileName), []byte(parentConfig), 0644))

	childConfig := `{"platforms": {"dumpFile": "child.json"}}`
	require.NoError(t, os.WriteFile(filepath.Join(childDir, ConfigFileName), []byte(childConfig), 0644))

	cfg, err := LoadConfiguration(childDir)
	require.NoError(t, err)

	assert.Equal(t, "child.json", cfg.Platforms.DumpFile)
	// the unset child field falls back to the parent, not the default
	assert.Equal(t, "json", cfg.Platforms.Output)
}

func TestLoadConfiguration_InvalidJSON(t *testing.T) {
	tempDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, ConfigFileName), []byte("{nope"), 0644))

	_, err := LoadConfiguration(tempDir)
	assert.Error(t, err)
}
