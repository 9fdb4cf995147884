// Package ui renders capture and analysis progress to the terminal. It is
// purely observational: nothing here affects control flow, and no method
// blocks or returns an error.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

const (
	// minThinkingLength suppresses short assistant status fragments.
	minThinkingLength = 20

	// maxThinkingLength clips assistant commentary to one readable line.
	maxThinkingLength = 100

	maxPathLength    = 60
	maxCommandLength = 60
	maxQueryLength   = 50
)

// Console is the terminal presenter. It holds only a running tool tally for
// the final summary.
type Console struct {
	out       io.Writer
	plain     bool
	toolCount int
	toolsUsed []string
}

// ConsoleOption configures a Console.
type ConsoleOption func(*Console)

// WithWriter redirects output, mainly for tests.
func WithWriter(w io.Writer) ConsoleOption {
	return func(c *Console) { c.out = w }
}

// WithColor forces styling on or off regardless of TTY detection.
func WithColor(enabled bool) ConsoleOption {
	return func(c *Console) { c.plain = !enabled }
}

// NewConsole creates a presenter writing to stdout. Styling is disabled
// when stdout is not a terminal.
func NewConsole(opts ...ConsoleOption) *Console {
	c := &Console{
		out:   os.Stdout,
		plain: !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Console) render(style lipgloss.Style, s string) string {
	if c.plain {
		return s
	}
	return style.Render(s)
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// SessionBanner announces a capture session before the browser opens.
func (c *Console) SessionBanner(runID, harPath, prompt string) {
	c.printf("\n%s\n\n", c.render(headerStyle, "Starting browser session..."))
	c.printf("Run ID: %s\n", c.render(runIDStyle, runID))
	c.printf("HAR will be saved to: %s\n", c.render(pathStyle, harPath))
	c.printf("\nPrompt: %s\n", c.render(taskStyle, prompt))
	c.printf("\n%s\n", c.render(dimStyle, strings.Repeat("=", 50)))
	c.printf("Browse the web and interact with APIs you want to capture.\n")
	c.printf("Close the browser window or press Ctrl+C when done.\n")
	c.printf("%s\n\n", c.render(dimStyle, strings.Repeat("=", 50)))
}

// Interrupted acknowledges an operator interrupt before teardown runs.
func (c *Console) Interrupted() {
	c.printf("\n\nClosing browser and saving HAR file...\n")
}

// Saved reports the finalized artifacts after a session closes.
func (c *Console) Saved(harPath, metadataPath string) {
	c.printf("\n%s HAR file saved to: %s\n", c.render(successStyle, "✓"), c.render(pathStyle, harPath))
	c.printf("%s Metadata saved to: %s\n", c.render(successStyle, "✓"), c.render(pathStyle, metadataPath))
}

// Header displays the analysis session header.
func (c *Console) Header(runID, prompt, model string) {
	lines := []string{
		fmt.Sprintf("%s  %s", c.render(dimStyle, "Run ID"), c.render(runIDStyle, runID)),
	}
	if model != "" {
		lines = append(lines, fmt.Sprintf("%s   %s", c.render(dimStyle, "Model"), c.render(modelStyle, model)))
	}
	lines = append(lines, fmt.Sprintf("%s    %s", c.render(dimStyle, "Task"), c.render(taskStyle, prompt)))

	body := fmt.Sprintf("%s\n%s", c.render(headerStyle, "Reverse API Analysis"), strings.Join(lines, "\n"))
	if c.plain {
		c.printf("\n%s\n", body)
		return
	}
	c.printf("\n%s\n", headerBoxStyle.Render(body))
}

// StartAnalysis marks the beginning of the agent run.
func (c *Console) StartAnalysis() {
	c.printf("\n%s\n\n", c.render(dimStyle, "── Claude is analyzing "+strings.Repeat("─", 26)))
}

// ToolStart prints a one-line record of a tool invocation.
func (c *Console) ToolStart(name string, input map[string]any) {
	c.toolCount++
	c.toolsUsed = append(c.toolsUsed, name)

	color, ok := toolColors[name]
	if !ok {
		color = brightWhite
	}
	bullet := c.render(lipgloss.NewStyle().Foreground(color), "●")
	label := c.render(lipgloss.NewStyle().Foreground(color).Bold(true), fmt.Sprintf("%-12s", name))
	c.printf("  %s %s %s\n", bullet, label, c.render(dimStyle, summarizeInput(name, input)))
}

// ToolResult reports a completed tool invocation; successes stay quiet.
func (c *Console) ToolResult(name string, isError bool) {
	if !isError {
		return
	}
	c.printf("  %s\n", c.render(errorStyle, fmt.Sprintf("✗ %s failed", name)))
}

// Thinking prints assistant commentary, suppressing short status noise.
func (c *Console) Thinking(text string) {
	if utf8.RuneCountInString(text) < minThinkingLength {
		return
	}
	display := strings.TrimSpace(strings.ReplaceAll(text, "\n", " "))
	display = truncateEnd(display, maxThinkingLength)
	c.printf("  %s\n", c.render(thinkingStyle, "→ "+display))
}

// Success prints the final summary with the generated script path.
func (c *Console) Success(scriptPath string) {
	c.printf("\n%s\n", c.render(successStyle, strings.Repeat("─", 50)))
	c.printf("%s\n\n", c.render(successStyle, "✨ Analysis Complete"))
	c.printf("   %s %d\n", c.render(dimStyle, "Tools:"), c.toolCount)
	c.printf("   %s %s\n\n", c.render(dimStyle, "Script:"), c.render(pathStyle, scriptPath))
}

// Error prints a failure message.
func (c *Console) Error(message string) {
	c.printf("\n%s %s\n", c.render(errorStyle, "✗ Error:"), message)
}

// Hint prints a dim remediation hint under an error.
func (c *Console) Hint(message string) {
	c.printf("%s\n", c.render(dimStyle, message))
}

// ToolCount reports how many tool invocations were observed.
func (c *Console) ToolCount() int {
	return c.toolCount
}

// ToolsUsed returns the ordered tool names observed so far.
func (c *Console) ToolsUsed() []string {
	return c.toolsUsed
}

// summarizeInput builds a short description of a tool's input parameters.
func summarizeInput(name string, input map[string]any) string {
	str := func(key string) string {
		v, _ := input[key].(string)
		return v
	}

	switch name {
	case "Read", "Edit":
		return truncatePath(str("file_path"))
	case "Write":
		return "→ " + truncatePath(str("file_path"))
	case "Bash":
		command := strings.TrimSpace(strings.ReplaceAll(str("command"), "\n", " "))
		return "$ " + truncateEnd(command, maxCommandLength)
	case "Grep", "Glob":
		return fmt.Sprintf("%q", str("pattern"))
	case "WebSearch":
		return fmt.Sprintf("%q", truncateEnd(str("query"), maxQueryLength))
	case "WebFetch":
		return truncateEnd(str("url"), maxCommandLength)
	}
	return ""
}

// truncatePath keeps the tail of long paths, which carries the file name.
// Truncation counts runes so multi-byte characters are never split.
func truncatePath(path string) string {
	runes := []rune(path)
	if len(runes) <= maxPathLength {
		return path
	}
	return "..." + string(runes[len(runes)-(maxPathLength-3):])
}

func truncateEnd(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
