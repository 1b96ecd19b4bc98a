package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_Defaults(t *testing.T) {
	s, err := LoadSettings("")
	require.NoError(t, err)
	assert.Equal(t, DefaultServerAddr, s.Server.Addr)
	assert.Equal(t, DefaultLogLevel, s.Log.Level)
	assert.False(t, s.Log.Development)
	assert.Equal(t, DefaultOutputFormat, s.Output.Format)
	assert.Equal(t, DefaultOutputDir, s.Output.Dir)
}

func TestLoadSettings_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projeval.yaml")
	content := "server:\n  addr: \":9090\"\nlog:\n  level: debug\n  development: true\noutput:\n  format: json\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	t.Setenv("PROJEVAL_OUTPUT_DIR", "/tmp/reports")

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", s.Server.Addr)
	assert.Equal(t, "debug", s.Log.Level)
	assert.True(t, s.Log.Development)
	assert.Equal(t, "json", s.Output.Format)
	assert.Equal(t, "/tmp/reports", s.Output.Dir)
}

func TestLoadSettings_EnvOverridesFile(t *testing.T) {
	t.Setenv("PROJEVAL_SERVER_ADDR", ":7000")
	s, err := LoadSettings("")
	require.NoError(t, err)
	assert.Equal(t, ":7000", s.Server.Addr)
}

func TestLoadSettings_InvalidLevel(t *testing.T) {
	t.Setenv("PROJEVAL_LOG_LEVEL", "verbose")
	_, err := LoadSettings("")
	assert.ErrorContains(t, err, "log.level")
}

func TestLoadSettings_MissingFile(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
