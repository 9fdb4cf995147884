package run

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	harDirName     = "har"
	scriptsDirName = "scripts"

	// HARFileName is the archive file written inside each capture directory.
	HARFileName = "recording.har"

	// MetadataFileName is the metadata record written alongside the archive.
	MetadataFileName = "metadata.json"

	// ScriptFileName is the client script the analysis step generates.
	ScriptFileName = "api_client.py"

	// ReadmeFileName is the explanatory document generated with the script.
	ReadmeFileName = "README.md"
)

// Layout maps run identifiers to artifact paths under a project root.
// All paths are deterministic; directories are created lazily.
type Layout struct {
	root string
}

// NewLayout creates a layout rooted at root. An empty root uses the current
// working directory.
func NewLayout(root string) (Layout, error) {
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return Layout{}, fmt.Errorf("resolve working directory: %w", err)
		}
		root = wd
	}
	return Layout{root: root}, nil
}

// Root returns the project root the layout is anchored to.
func (l Layout) Root() string {
	return l.root
}

// CaptureDir returns har/<runID> under the root, creating it if needed.
// Creation is idempotent.
func (l Layout) CaptureDir(runID string) (string, error) {
	dir := filepath.Join(l.root, harDirName, runID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create capture dir: %w", err)
	}
	return dir, nil
}

// ScriptsDir returns scripts/<runID> under the root, creating it if needed.
func (l Layout) ScriptsDir(runID string) (string, error) {
	dir := filepath.Join(l.root, scriptsDirName, runID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create scripts dir: %w", err)
	}
	return dir, nil
}

// HARPath returns the archive path for a run. The path is computed without
// touching the filesystem.
func (l Layout) HARPath(runID string) string {
	return filepath.Join(l.root, harDirName, runID, HARFileName)
}

// MetadataPath returns the metadata record path for a run.
func (l Layout) MetadataPath(runID string) string {
	return filepath.Join(l.root, harDirName, runID, MetadataFileName)
}

// ScriptPath returns the generated client script path for a run.
func (l Layout) ScriptPath(runID string) string {
	return filepath.Join(l.root, scriptsDirName, runID, ScriptFileName)
}

// ReadmePath returns the generated README path for a run.
func (l Layout) ReadmePath(runID string) string {
	return filepath.Join(l.root, scriptsDirName, runID, ReadmeFileName)
}
