// Package project locates the project directory a session works in.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/autocode-dev/autocode/internal/defs"
)

// ErrNotFound indicates no ancestor holds a marker file.
var ErrNotFound = errors.New("project: no project directory found")

// FindRoot walks upward from start to the nearest directory holding the
// marker file markerName (defs.MarkerJSON when empty). Only the marker
// counts: a config directory alone does not make a project.
func FindRoot(start, markerName string) (string, error) {
	if markerName == "" {
		markerName = defs.MarkerJSON
	}

	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}

	for {
		if info, err := os.Stat(filepath.Join(dir, markerName)); err == nil && !info.IsDir() {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w in %s or any parent directory", ErrNotFound, start)
		}
		dir = parent
	}
}

// FindRootOrCurrent is like FindRoot but falls back to start itself.
func FindRootOrCurrent(start, markerName string) (string, error) {
	if root, err := FindRoot(start, markerName); err == nil {
		return root, nil
	}
	return filepath.Abs(start)
}
