// Package claudecli adapts the Claude Code CLI as an agent runtime: it
// spawns the CLI as a subprocess and decodes its stream-json output into
// the orchestrator's event union.
package claudecli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"go.uber.org/zap"

	"github.com/codehornets/reverse-api-engineer/pkg/engineer"
)

const defaultBinary = "claude"

// scanBufferSize bounds a single stream-json line; tool results can carry
// large file contents.
const scanBufferSize = 4 * 1024 * 1024

// Runtime implements engineer.Runtime by exec-ing the claude CLI.
type Runtime struct {
	binary string
	log    *zap.Logger
}

// New returns a runtime driving the claude binary from PATH. Logger may be
// nil.
func New(log *zap.Logger) *Runtime {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runtime{binary: defaultBinary, log: log}
}

// Run starts the CLI and streams decoded events. A missing or unstartable
// binary is reported as an error here; everything after a successful start
// is delivered in-stream, ending with a terminal result event.
func (r *Runtime) Run(ctx context.Context, task engineer.Task) (<-chan engineer.Event, error) {
	path, err := exec.LookPath(r.binary)
	if err != nil {
		return nil, fmt.Errorf("claude CLI not found in PATH: %w", err)
	}

	cmd := exec.CommandContext(ctx, path, buildArgs(task)...)
	cmd.Dir = task.WorkingDir

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("create stdout pipe: %w", err)
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start claude CLI: %w", err)
	}
	r.log.Debug("agent runtime started",
		zap.Int("pid", cmd.Process.Pid),
		zap.String("model", task.Model))

	events := make(chan engineer.Event)
	go func() {
		defer close(events)

		decoder := newStreamDecoder()
		scanner := bufio.NewScanner(stdout)
		scanner.Buffer(make([]byte, 0, 64*1024), scanBufferSize)

		sawResult := false
		for scanner.Scan() {
			for _, event := range decoder.Decode(scanner.Text()) {
				if sawResult {
					// The terminal event already went out; drain the rest.
					continue
				}
				if event.Kind == engineer.EventResult {
					sawResult = true
				}
				events <- event
			}
		}

		scanErr := scanner.Err()
		if scanErr != nil {
			// The subprocess may still be blocked writing the remainder of
			// the unreadable line; drain the pipe so Wait can return.
			r.log.Debug("agent stream unreadable", zap.Error(scanErr))
			io.Copy(io.Discard, stdout) //nolint:errcheck
		}

		waitErr := cmd.Wait()
		r.log.Debug("agent runtime exited", zap.Error(waitErr))

		if !sawResult {
			message := "agent runtime exited without a result"
			if scanErr != nil {
				message = fmt.Sprintf("agent output unreadable: %v", scanErr)
			} else if waitErr != nil {
				message = fmt.Sprintf("agent runtime failed: %v", waitErr)
			}
			if tail := stderrTail(stderr.String()); tail != "" {
				message += ": " + tail
			}
			events <- engineer.Event{
				Kind:    engineer.EventResult,
				IsError: true,
				Message: message,
			}
		}
	}()

	return events, nil
}

func buildArgs(task engineer.Task) []string {
	args := []string{
		"-p", task.Prompt,
		"--verbose",
		"--output-format", "stream-json",
	}
	if len(task.AllowedTools) > 0 {
		args = append(args, "--allowed-tools", strings.Join(task.AllowedTools, ","))
	}
	if task.PermissionMode != "" {
		args = append(args, "--permission-mode", task.PermissionMode)
	}
	if task.Model != "" {
		args = append(args, "--model", task.Model)
	}
	return args
}

// stderrTail returns the last non-empty stderr line, which is usually the
// most specific error the CLI printed.
func stderrTail(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}
