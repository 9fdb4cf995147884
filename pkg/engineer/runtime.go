package engineer

import "context"

// Task describes one agent invocation.
type Task struct {
	// Prompt is the full natural-language task description.
	Prompt string

	// WorkingDir is the directory the agent operates in.
	WorkingDir string

	// Model selects the model tier. Empty uses the runtime default.
	Model string

	// AllowedTools is the capability allow-list for the run.
	AllowedTools []string

	// PermissionMode controls how the runtime handles edit permissions.
	PermissionMode string
}

// Runtime executes a Task and streams progress events until a terminal
// result event, after which the channel is closed. A non-nil error from Run
// means the runtime itself is unreachable or misconfigured; no events were
// produced.
type Runtime interface {
	Run(ctx context.Context, task Task) (<-chan Event, error)
}
