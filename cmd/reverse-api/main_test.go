package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codehornets/reverse-api-engineer/pkg/run"
)

func TestValidateModel(t *testing.T) {
	for _, model := range []string{"", "sonnet", "opus", "haiku"} {
		assert.NoError(t, validateModel(model), model)
	}
	assert.Error(t, validateModel("gpt-4"))
}

func TestRecoverPrompt(t *testing.T) {
	layout, err := run.NewLayout(t.TempDir())
	require.NoError(t, err)

	t.Run("missing metadata falls back", func(t *testing.T) {
		assert.Equal(t, fallbackPrompt, recoverPrompt(layout, "a1b2c3d4e5f6"))
	})

	t.Run("recovers the original capture intent", func(t *testing.T) {
		_, err := layout.CaptureDir("a1b2c3d4e5f6")
		require.NoError(t, err)
		meta := run.Metadata{RunID: "a1b2c3d4e5f6", Prompt: "capture login flow"}
		require.NoError(t, meta.Save(layout.MetadataPath("a1b2c3d4e5f6")))

		assert.Equal(t, "capture login flow", recoverPrompt(layout, "a1b2c3d4e5f6"))
	})

	t.Run("empty prompt in metadata falls back", func(t *testing.T) {
		_, err := layout.CaptureDir("ffffffffffff")
		require.NoError(t, err)
		require.NoError(t, run.Metadata{RunID: "ffffffffffff"}.Save(layout.MetadataPath("ffffffffffff")))

		assert.Equal(t, fallbackPrompt, recoverPrompt(layout, "ffffffffffff"))
	})
}

func TestRootCommandWiring(t *testing.T) {
	root := newRootCmd()

	assert.Equal(t, "reverse-api", root.Use)
	for _, flag := range []string{"prompt", "url", "reverse-engineer", "model", "instructions"} {
		assert.NotNil(t, root.Flags().Lookup(flag), flag)
	}
	assert.NotNil(t, root.PersistentFlags().Lookup("debug"))

	sub, _, err := root.Find([]string{"engineer"})
	require.NoError(t, err)
	assert.Equal(t, "engineer <run-id>", sub.Use)
	assert.NotNil(t, sub.Flags().Lookup("model"))
	assert.NotNil(t, sub.Flags().Lookup("instructions"))
}
