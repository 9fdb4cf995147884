// Package prompt implements the interactive question flow used when the
// capture command is run without a capture description.
package prompt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrAborted is returned when the operator cancels the flow.
var ErrAborted = errors.New("prompt aborted")

// Models the operator can pick from, in display order.
var modelChoices = []string{"sonnet", "opus", "haiku"}

// Answers holds the values collected from the flow.
type Answers struct {
	Prompt          string
	URL             string
	ReverseEngineer bool
	Model           string
}

// Options pre-fills answers supplied via flags; pre-filled questions are
// skipped.
type Options struct {
	URL             string
	Model           string
	ReverseEngineer bool
}

type stage int

const (
	stagePrompt stage = iota
	stageURL
	stageConfirm
	stageModel
	stageDone
)

var (
	questionStyle = lipgloss.NewStyle().Bold(true)
	hintStyle     = lipgloss.NewStyle().Faint(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#4DD0E1"))
)

type model struct {
	opts    Options
	stage   stage
	input   textinput.Model
	choice  int
	answers Answers
	aborted bool
}

func newModel(opts Options) model {
	input := textinput.New()
	input.Placeholder = "e.g., 'login flow for example.com'"
	input.Focus()
	input.CharLimit = 0
	input.Width = 60

	return model{
		opts:    opts,
		stage:   stagePrompt,
		input:   input,
		answers: Answers{URL: opts.URL, ReverseEngineer: opts.ReverseEngineer, Model: opts.Model},
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch keyMsg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.aborted = true
		return m, tea.Quit
	case tea.KeyEnter:
		if m.stage == stageConfirm {
			// Enter keeps the default: analyze after capture.
			m.answers.ReverseEngineer = true
		}
		return m.advance()
	}

	switch m.stage {
	case stageConfirm:
		switch keyMsg.String() {
		case "y", "Y":
			m.answers.ReverseEngineer = true
			return m.advance()
		case "n", "N":
			m.answers.ReverseEngineer = false
			return m.advance()
		}
		return m, nil
	case stageModel:
		switch keyMsg.String() {
		case "up", "k":
			if m.choice > 0 {
				m.choice--
			}
		case "down", "j":
			if m.choice < len(modelChoices)-1 {
				m.choice++
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// advance records the current answer and moves to the next unanswered
// question.
func (m model) advance() (tea.Model, tea.Cmd) {
	switch m.stage {
	case stagePrompt:
		value := strings.TrimSpace(m.input.Value())
		if value == "" {
			return m, nil
		}
		m.answers.Prompt = value
	case stageURL:
		m.answers.URL = strings.TrimSpace(m.input.Value())
	case stageModel:
		m.answers.Model = modelChoices[m.choice]
	}

	m.stage = m.nextStage(m.stage + 1)
	if m.stage == stageDone {
		return m, tea.Quit
	}

	if m.stage == stageURL {
		m.input.Reset()
		m.input.Placeholder = "press Enter to skip"
	}
	return m, nil
}

// nextStage skips questions whose answers were supplied up front.
func (m model) nextStage(s stage) stage {
	for ; s < stageDone; s++ {
		switch s {
		case stageURL:
			if m.opts.URL == "" {
				return s
			}
		case stageConfirm:
			if !m.opts.ReverseEngineer {
				return s
			}
		case stageModel:
			if m.answers.ReverseEngineer && m.opts.Model == "" {
				return s
			}
		default:
			return s
		}
	}
	return stageDone
}

func (m model) View() string {
	if m.stage == stageDone || m.aborted {
		return ""
	}

	var b strings.Builder
	b.WriteString(questionStyle.Render("🔍 Reverse API") + "\n\n")

	switch m.stage {
	case stagePrompt:
		b.WriteString(questionStyle.Render("What APIs do you want to capture?") + "\n")
		b.WriteString(m.input.View() + "\n")
	case stageURL:
		b.WriteString(questionStyle.Render("Starting URL:") + " " + hintStyle.Render("(press Enter to skip)") + "\n")
		b.WriteString(m.input.View() + "\n")
	case stageConfirm:
		b.WriteString(questionStyle.Render("Run reverse engineering (Claude) immediately after capture?") + "\n")
		b.WriteString(hintStyle.Render("y/n, Enter for yes") + "\n")
	case stageModel:
		b.WriteString(questionStyle.Render("Select Claude model:") + "\n")
		for i, choice := range modelChoices {
			marker := "  "
			line := choice
			if i == m.choice {
				marker = cursorStyle.Render("> ")
				line = cursorStyle.Render(choice)
			}
			b.WriteString(fmt.Sprintf("%s%s\n", marker, line))
		}
	}

	b.WriteString("\n" + hintStyle.Render("esc to cancel"))
	return b.String()
}

// Run executes the interactive flow and returns the collected answers.
func Run(opts Options) (Answers, error) {
	program := tea.NewProgram(newModel(opts))
	final, err := program.Run()
	if err != nil {
		return Answers{}, fmt.Errorf("interactive prompt: %w", err)
	}

	m := final.(model)
	if m.aborted || m.answers.Prompt == "" {
		return Answers{}, ErrAborted
	}
	return m.answers, nil
}
