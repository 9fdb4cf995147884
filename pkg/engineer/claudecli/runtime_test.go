package claudecli

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codehornets/reverse-api-engineer/pkg/engineer"
)

func TestRunMissingBinary(t *testing.T) {
	rt := New(nil)
	rt.binary = "definitely-not-a-real-binary-9f8e7d"

	events, err := rt.Run(context.Background(), engineer.Task{Prompt: "x"})
	require.Error(t, err)
	assert.Nil(t, events)
	assert.Contains(t, err.Error(), "not found in PATH")
}

// A single output line beyond the scanner cap must still end the stream with
// exactly one terminal event instead of wedging on the blocked subprocess.
func TestRunOversizedLine(t *testing.T) {
	script := filepath.Join(t.TempDir(), "claude")
	body := `#!/bin/sh
printf '{"type":"noise","pad":"'
head -c 5242880 /dev/zero | tr '\0' 'a'
printf '"}\n{"type":"result","subtype":"success","is_error":false,"result":"done"}\n'
`
	require.NoError(t, os.WriteFile(script, []byte(body), 0o755))

	rt := New(nil)
	rt.binary = script

	events, err := rt.Run(context.Background(), engineer.Task{Prompt: "x"})
	require.NoError(t, err)

	var got []engineer.Event
	deadline := time.After(10 * time.Second)
	for open := true; open; {
		select {
		case ev, ok := <-events:
			if !ok {
				open = false
				break
			}
			got = append(got, ev)
		case <-deadline:
			t.Fatal("event stream never terminated")
		}
	}

	require.NotEmpty(t, got)
	last := got[len(got)-1]
	assert.Equal(t, engineer.EventResult, last.Kind)
	assert.True(t, last.IsError)
	assert.Contains(t, last.Message, "unreadable")
}
