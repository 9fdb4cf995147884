package run

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Metadata is the durable record linking a run to its original intent.
// It is written exactly once at session close and read back by later
// analysis to recover the prompt.
type Metadata struct {
	RunID     string `json:"run_id"`
	Prompt    string `json:"prompt"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	HARFile   string `json:"har_file"`
}

// Timestamp formats t the way metadata records store times.
func Timestamp(t time.Time) string {
	return t.Format(time.RFC3339)
}

// Save writes the metadata record to path as indented JSON. The file is
// written in a single call so a concurrent reader never sees a torn record.
func (m Metadata) Save(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encode metadata: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write metadata: %w", err)
	}
	return nil
}

// LoadMetadata reads a metadata record from path.
func LoadMetadata(path string) (Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("read metadata: %w", err)
	}
	var m Metadata
	if err := json.Unmarshal(data, &m); err != nil {
		return Metadata{}, fmt.Errorf("parse metadata %s: %w", path, err)
	}
	return m, nil
}
