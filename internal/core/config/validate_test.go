package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	valid := func() Config {
		cfg := DefaultConfig()
		cfg.DataDir = t.TempDir()
		return cfg
	}

	t.Run("default config is valid", func(t *testing.T) {
		cfg := valid()
		assert.NoError(t, cfg.Validate())
	})

	t.Run("empty addr", func(t *testing.T) {
		cfg := valid()
		cfg.Server.Addr = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("addr without port", func(t *testing.T) {
		cfg := valid()
		cfg.Server.Addr = "localhost"
		assert.Error(t, cfg.Validate())
	})

	t.Run("port-only addr is fine", func(t *testing.T) {
		cfg := valid()
		cfg.Server.Addr = ":0"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("empty reviewer id", func(t *testing.T) {
		cfg := valid()
		cfg.ReviewerID = "  "
		assert.Error(t, cfg.Validate())
	})

	t.Run("data dir may not exist yet", func(t *testing.T) {
		cfg := valid()
		cfg.DataDir = filepath.Join(t.TempDir(), "not-created-yet")
		assert.NoError(t, cfg.Validate())
	})

	t.Run("data dir is a file", func(t *testing.T) {
		cfg := valid()
		f := filepath.Join(t.TempDir(), "afile")
		require.NoError(t, os.WriteFile(f, []byte("x"), 0o644))
		cfg.DataDir = f
		assert.Error(t, cfg.Validate())
	})
}

func TestWarnings(t *testing.T) {
	t.Run("missing trials dir warns", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.DataDir = t.TempDir()

		warnings := cfg.Warnings()
		require.Len(t, warnings, 1)
		assert.Equal(t, "Data", warnings[0].Category)
	})

	t.Run("healthy setup has no warnings", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.DataDir = t.TempDir()
		require.NoError(t, os.MkdirAll(cfg.TrialsDir(), 0o755))

		assert.Empty(t, cfg.Warnings())
	})

	t.Run("non-positive shutdown timeout warns", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.DataDir = t.TempDir()
		require.NoError(t, os.MkdirAll(cfg.TrialsDir(), 0o755))
		cfg.Server.ShutdownTimeout = 0 * time.Second

		warnings := cfg.Warnings()
		require.Len(t, warnings, 1)
		assert.Equal(t, "Server", warnings[0].Category)
	})
}
