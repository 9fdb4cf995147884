package claudecli

import (
	"encoding/json"

	"github.com/codehornets/reverse-api-engineer/pkg/engineer"
)

// streamDecoder turns stream-json lines into events. It tracks tool_use IDs
// so results can be attributed to the tool that produced them.
type streamDecoder struct {
	toolNames map[string]string
}

func newStreamDecoder() *streamDecoder {
	return &streamDecoder{toolNames: make(map[string]string)}
}

type streamLine struct {
	Type    string `json:"type"`
	IsError bool   `json:"is_error"`
	Result  string `json:"result"`
	Message *struct {
		Content []json.RawMessage `json:"content"`
	} `json:"message"`
}

type contentBlock struct {
	Type      string         `json:"type"`
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Input     map[string]any `json:"input"`
	Text      string         `json:"text"`
	ToolUseID string         `json:"tool_use_id"`
	IsError   bool           `json:"is_error"`
}

// Decode parses one line of runtime output. Non-JSON lines and unknown
// event types are ignored.
func (d *streamDecoder) Decode(line string) []engineer.Event {
	var raw streamLine
	if err := json.Unmarshal([]byte(line), &raw); err != nil {
		return nil
	}

	switch raw.Type {
	case "assistant", "user":
		if raw.Message == nil {
			return nil
		}
		return d.decodeContent(raw.Message.Content)
	case "result":
		return []engineer.Event{{
			Kind:    engineer.EventResult,
			IsError: raw.IsError,
			Message: raw.Result,
		}}
	}
	return nil
}

func (d *streamDecoder) decodeContent(content []json.RawMessage) []engineer.Event {
	var events []engineer.Event
	for _, rawBlock := range content {
		var block contentBlock
		if err := json.Unmarshal(rawBlock, &block); err != nil {
			continue
		}
		switch block.Type {
		case "tool_use":
			d.toolNames[block.ID] = block.Name
			events = append(events, engineer.Event{
				Kind:  engineer.EventToolStart,
				Tool:  block.Name,
				Input: block.Input,
			})
		case "tool_result":
			name := d.toolNames[block.ToolUseID]
			if name == "" {
				name = "Tool"
			}
			events = append(events, engineer.Event{
				Kind:    engineer.EventToolResult,
				Tool:    name,
				IsError: block.IsError,
			})
		case "text":
			if block.Text != "" {
				events = append(events, engineer.Event{
					Kind: engineer.EventAssistantText,
					Text: block.Text,
				})
			}
		}
	}
	return events
}
