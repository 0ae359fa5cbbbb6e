package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeConfig(t, `{"job": "job.json", "port": 8080, "verbose": true}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "job.json", cfg.Job)
	assert.Equal(t, 8080, cfg.Port)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_MalformedJSON(t *testing.T) {
	path := writeConfig(t, `{"job": `)

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestValidate_PortRange(t *testing.T) {
	cfg := &Config{Port: 70000}
	assert.Error(t, cfg.Validate())

	cfg.Port = 8080
	assert.NoError(t, cfg.Validate())
}

func TestValidate_MissingReferencedFiles(t *testing.T) {
	cfg := &Config{Job: filepath.Join(t.TempDir(), "absent.json")}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "job file not found")

	cfg = &Config{Taxonomy: filepath.Join(t.TempDir(), "absent.json")}
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "taxonomy file not found")
}

func TestValidate_ExistingFiles(t *testing.T) {
	jobPath := writeConfig(t, `{"description": "x"}`)
	cfg := &Config{Job: jobPath}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Job: "explicit.json"}
	defaults := Config{Job: "default.json", Resume: "resume.txt", Port: 8080, Verbose: true}

	merged := cfg.MergeWithDefaults(defaults)
	assert.Equal(t, "explicit.json", merged.Job)
	assert.Equal(t, "resume.txt", merged.Resume)
	assert.Equal(t, 8080, merged.Port)
	assert.True(t, merged.Verbose)
}
