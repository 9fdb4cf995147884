// Package engineer drives an agent runtime over a captured archive and
// reports structured progress while the agent synthesizes a client script.
package engineer

import (
	"context"

	"go.uber.org/zap"

	"github.com/codehornets/reverse-api-engineer/pkg/run"
)

// AllowedTools is the fixed capability allow-list granted to the agent.
var AllowedTools = []string{"Read", "Write", "Bash", "Glob", "Grep", "WebSearch", "WebFetch"}

// PermissionMode auto-accepts file edits so the agent can write the script
// without interactive approval.
const PermissionMode = "acceptEdits"

// Presenter receives progress notifications from the orchestration.
// Implementations are purely observational and must never block or fail
// the analysis.
type Presenter interface {
	Header(runID, prompt, model string)
	StartAnalysis()
	ToolStart(name string, input map[string]any)
	ToolResult(name string, isError bool)
	Thinking(text string)
	Success(scriptPath string)
	Error(message string)
	Hint(message string)
}

// Params configures one analysis invocation.
type Params struct {
	RunID        string
	HARPath      string
	Prompt       string
	Model        string
	Instructions string
	Layout       run.Layout
	Runtime      Runtime
	Presenter    Presenter
	Logger       *zap.Logger
}

// Engineer runs a single analysis over a prior capture. It has no durable
// state; every invocation is independent.
type Engineer struct {
	p   Params
	log *zap.Logger
}

// New creates an Engineer. Logger may be nil.
func New(p Params) *Engineer {
	log := p.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Engineer{p: p, log: log}
}

// Analyze drives the agent runtime to completion. It returns the generated
// script path and true on success, or "" and false when the runtime is
// unavailable, the agent reports failure, or the stream ends without a
// result. Exactly one terminal outcome is produced per invocation.
func (e *Engineer) Analyze(ctx context.Context) (string, bool) {
	e.p.Presenter.Header(e.p.RunID, e.p.Prompt, e.p.Model)
	e.p.Presenter.StartAnalysis()

	scriptsDir, err := e.p.Layout.ScriptsDir(e.p.RunID)
	if err != nil {
		e.p.Presenter.Error(err.Error())
		return "", false
	}

	task := Task{
		Prompt:         buildPrompt(e.p.HARPath, e.p.Prompt, scriptsDir, e.p.Instructions),
		WorkingDir:     e.p.Layout.Root(),
		Model:          e.p.Model,
		AllowedTools:   AllowedTools,
		PermissionMode: PermissionMode,
	}

	events, err := e.p.Runtime.Run(ctx, task)
	if err != nil {
		// The runtime itself is unreachable or misconfigured, as opposed to
		// an analysis failure it reports in-stream.
		e.log.Debug("agent runtime unavailable", zap.Error(err))
		e.p.Presenter.Error(err.Error())
		e.p.Presenter.Hint("Make sure the Claude Code CLI is installed: npm install -g @anthropic-ai/claude-code")
		return "", false
	}

	for event := range events {
		switch event.Kind {
		case EventToolStart:
			e.p.Presenter.ToolStart(event.Tool, event.Input)
		case EventToolResult:
			e.p.Presenter.ToolResult(event.Tool, event.IsError)
		case EventAssistantText:
			e.p.Presenter.Thinking(event.Text)
		case EventResult:
			if event.IsError {
				message := event.Message
				if message == "" {
					message = "unknown error"
				}
				e.p.Presenter.Error(message)
				return "", false
			}
			scriptPath := e.p.Layout.ScriptPath(e.p.RunID)
			e.p.Presenter.Success(scriptPath)
			return scriptPath, true
		}
	}

	e.p.Presenter.Error("agent runtime ended without a result")
	return "", false
}
