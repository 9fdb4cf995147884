package prompt

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeText(t *testing.T, m model, text string) model {
	t.Helper()
	for _, r := range text {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(model)
	}
	return m
}

func press(t *testing.T, m model, key tea.KeyType) model {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: key})
	return next.(model)
}

func pressKey(t *testing.T, m model, key string) model {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
	return next.(model)
}

func TestPromptFlow(t *testing.T) {
	t.Run("full flow collects all answers", func(t *testing.T) {
		m := newModel(Options{})
		m = typeText(t, m, "capture login flow")
		m = press(t, m, tea.KeyEnter) // prompt answered

		m = typeText(t, m, "https://example.com")
		m = press(t, m, tea.KeyEnter) // URL answered

		m = pressKey(t, m, "y") // confirm analysis

		require.Equal(t, stageModel, m.stage)
		m = pressKey(t, m, "j") // move to opus
		m = press(t, m, tea.KeyEnter)

		assert.Equal(t, stageDone, m.stage)
		assert.Equal(t, "capture login flow", m.answers.Prompt)
		assert.Equal(t, "https://example.com", m.answers.URL)
		assert.True(t, m.answers.ReverseEngineer)
		assert.Equal(t, "opus", m.answers.Model)
	})

	t.Run("empty prompt does not advance", func(t *testing.T) {
		m := newModel(Options{})
		m = press(t, m, tea.KeyEnter)
		assert.Equal(t, stagePrompt, m.stage)
	})

	t.Run("declining analysis skips the model question", func(t *testing.T) {
		m := newModel(Options{})
		m = typeText(t, m, "capture search API")
		m = press(t, m, tea.KeyEnter)
		m = press(t, m, tea.KeyEnter) // skip URL
		m = pressKey(t, m, "n")

		assert.Equal(t, stageDone, m.stage)
		assert.False(t, m.answers.ReverseEngineer)
		assert.Empty(t, m.answers.Model)
	})

	t.Run("enter on confirm defaults to yes", func(t *testing.T) {
		m := newModel(Options{})
		m = typeText(t, m, "capture checkout")
		m = press(t, m, tea.KeyEnter)
		m = press(t, m, tea.KeyEnter) // skip URL
		m = press(t, m, tea.KeyEnter) // default confirm

		assert.True(t, m.answers.ReverseEngineer)
		assert.Equal(t, stageModel, m.stage)
	})

	t.Run("pre-filled options skip their questions", func(t *testing.T) {
		m := newModel(Options{URL: "https://example.com", ReverseEngineer: true, Model: "haiku"})
		m = typeText(t, m, "capture login flow")
		m = press(t, m, tea.KeyEnter)

		assert.Equal(t, stageDone, m.stage)
		assert.Equal(t, "https://example.com", m.answers.URL)
		assert.True(t, m.answers.ReverseEngineer)
		assert.Equal(t, "haiku", m.answers.Model)
	})

	t.Run("escape aborts", func(t *testing.T) {
		m := newModel(Options{})
		m = press(t, m, tea.KeyEsc)
		assert.True(t, m.aborted)
	})
}
