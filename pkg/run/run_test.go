package run

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	t.Run("format", func(t *testing.T) {
		id := NewID()
		assert.Len(t, id, IDLength)
		assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{12}$`), id)
	})

	t.Run("distinct across generations", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 1000; i++ {
			id := NewID()
			require.False(t, seen[id], "duplicate run ID %s after %d generations", id, i)
			seen[id] = true
		}
	})
}

func TestLayout(t *testing.T) {
	t.Run("defaults to working directory", func(t *testing.T) {
		layout, err := NewLayout("")
		require.NoError(t, err)

		wd, _ := os.Getwd()
		assert.Equal(t, wd, layout.Root())
	})

	t.Run("paths are stable and deterministic", func(t *testing.T) {
		layout, err := NewLayout(t.TempDir())
		require.NoError(t, err)

		id := "a1b2c3d4e5f6"
		assert.Equal(t, layout.HARPath(id), layout.HARPath(id))
		assert.Equal(t, filepath.Join(layout.Root(), "har", id, "recording.har"), layout.HARPath(id))
		assert.Equal(t, filepath.Join(layout.Root(), "har", id, "metadata.json"), layout.MetadataPath(id))
		assert.Equal(t, filepath.Join(layout.Root(), "scripts", id, "api_client.py"), layout.ScriptPath(id))
		assert.Equal(t, filepath.Join(layout.Root(), "scripts", id, "README.md"), layout.ReadmePath(id))
	})

	t.Run("directory creation is idempotent", func(t *testing.T) {
		layout, err := NewLayout(t.TempDir())
		require.NoError(t, err)

		first, err := layout.CaptureDir("abc123")
		require.NoError(t, err)
		second, err := layout.CaptureDir("abc123")
		require.NoError(t, err)
		assert.Equal(t, first, second)

		info, err := os.Stat(first)
		require.NoError(t, err)
		assert.True(t, info.IsDir())

		scripts, err := layout.ScriptsDir("abc123")
		require.NoError(t, err)
		assert.DirExists(t, scripts)
	})
}

func TestMetadata(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "metadata.json")
		m := Metadata{
			RunID:     "a1b2c3d4e5f6",
			Prompt:    "capture login flow",
			StartTime: "2024-01-01T10:00:00Z",
			EndTime:   "2024-01-01T10:05:00Z",
			HARFile:   "/tmp/har/a1b2c3d4e5f6/recording.har",
		}
		require.NoError(t, m.Save(path))

		loaded, err := LoadMetadata(path)
		require.NoError(t, err)
		assert.Equal(t, m, loaded)
	})

	t.Run("file contains all five fields", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "metadata.json")
		require.NoError(t, Metadata{RunID: "x"}.Save(path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		var raw map[string]any
		require.NoError(t, json.Unmarshal(data, &raw))
		for _, field := range []string{"run_id", "prompt", "start_time", "end_time", "har_file"} {
			assert.Contains(t, raw, field)
		}
	})

	t.Run("load missing file fails", func(t *testing.T) {
		_, err := LoadMetadata(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})
}
