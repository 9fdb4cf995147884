package engineer

// EventKind discriminates the closed set of progress events an agent
// runtime emits.
type EventKind string

const (
	// EventToolStart fires when the agent begins a tool invocation.
	EventToolStart EventKind = "tool_start"

	// EventToolResult fires when a tool invocation completes.
	EventToolResult EventKind = "tool_result"

	// EventAssistantText carries free-text commentary from the agent.
	EventAssistantText EventKind = "assistant_text"

	// EventResult is the terminal event of a run. Exactly one is emitted.
	EventResult EventKind = "result"
)

// Event is one progress event from the agent runtime, decoded once at the
// runtime boundary before it reaches the presenter.
type Event struct {
	Kind EventKind

	// Tool and Input are set for tool_start; Tool also for tool_result.
	Tool  string
	Input map[string]any

	// IsError is set for tool_result and result events.
	IsError bool

	// Text carries assistant commentary.
	Text string

	// Message carries the terminal result text or error description.
	Message string
}
