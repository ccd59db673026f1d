package doctor

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummary(t *testing.T) {
	results := []Result{
		{Name: "a", Items: []CheckItem{
			{Status: StatusPass},
			{Status: StatusWarn},
		}},
		{Name: "b", Items: []CheckItem{
			{Status: StatusFail},
			{Status: StatusPass},
		}},
	}

	passed, warned, failed := Summary(results)
	assert.Equal(t, 2, passed)
	assert.Equal(t, 1, warned)
	assert.Equal(t, 1, failed)
}

func TestDataDirCheck(t *testing.T) {
	ctx := context.Background()

	t.Run("healthy layout", func(t *testing.T) {
		dataDir := t.TempDir()
		trialsDir := filepath.Join(dataDir, "trials")
		require.NoError(t, os.MkdirAll(trialsDir, 0o755))

		result := NewDataDirCheck(dataDir, trialsDir).Run(ctx)
		require.Len(t, result.Items, 2)
		assert.Equal(t, StatusPass, result.Items[0].Status)
		assert.Equal(t, StatusPass, result.Items[1].Status)
	})

	t.Run("missing trials dir is a warning", func(t *testing.T) {
		dataDir := t.TempDir()

		result := NewDataDirCheck(dataDir, filepath.Join(dataDir, "trials")).Run(ctx)
		assert.Equal(t, StatusPass, result.Items[0].Status)
		assert.Equal(t, StatusWarn, result.Items[1].Status)
	})

	t.Run("missing data dir is a failure", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "gone")

		result := NewDataDirCheck(missing, filepath.Join(missing, "trials")).Run(ctx)
		assert.Equal(t, StatusFail, result.Items[0].Status)
	})

	t.Run("data dir is a file", func(t *testing.T) {
		f := filepath.Join(t.TempDir(), "afile")
		require.NoError(t, os.WriteFile(f, []byte("x"), 0o644))

		result := NewDataDirCheck(f, filepath.Join(f, "trials")).Run(ctx)
		assert.Equal(t, StatusFail, result.Items[0].Status)
	})
}
