package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	dataDir := t.TempDir()

	cfg, err := Load("", dataDir)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "rev-001", cfg.ReviewerID)
	assert.Equal(t, dataDir, cfg.DataDir)
	assert.True(t, cfg.FixturesEnabled())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestLoad_FromFile(t *testing.T) {
	dataDir := t.TempDir()
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  addr: "127.0.0.1:9090"
  shutdown_timeout: 5s
reviewer_id: rev-042
fixtures:
  enabled: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path, dataDir)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "rev-042", cfg.ReviewerID)
	assert.False(t, cfg.FixturesEnabled())

	// DataDir comes from the caller, never from the file.
	assert.Equal(t, dataDir, cfg.DataDir)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [broken"), 0o644))

	_, err := Load(path, t.TempDir())
	assert.Error(t, err)
}

func TestTrialsDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DataDir = "/data"
	assert.Equal(t, filepath.Join("/data", "trials"), cfg.TrialsDir())
}
