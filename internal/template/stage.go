package template

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/autocode-dev/autocode/internal/defs"
)

// StageResult describes the outcome of StageSpecification.
type StageResult struct {
	// Staged is false when the destination already existed and was left alone.
	Staged      bool   `json:"staged"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
}

// StageSpecification copies the resolved specification into projectDir as
// app_spec.txt unless that file already exists. An existing copy is never
// overwritten, so edits made in place survive repeated session setup.
// The source is resolved first: a missing default spec is an error even
// when nothing would be copied.
func (r *Resolver) StageSpecification(projectDir string) (StageResult, error) {
	sel, err := r.ResolveSpec()
	if err != nil {
		return StageResult{}, fmt.Errorf("stage spec: %w", err)
	}

	dest := filepath.Join(filepath.Clean(projectDir), defs.AppSpecTXT)
	result := StageResult{Source: sel.Name, Destination: dest}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return result, fmt.Errorf("stage spec mkdir %q: %w", projectDir, err)
	}

	f, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			r.logger.Debug("spec already staged, leaving it in place", "path", dest)
			return result, nil
		}
		return result, fmt.Errorf("stage spec create %q: %w", dest, err)
	}

	if _, err := f.WriteString(sel.Content); err != nil {
		_ = f.Close()
		_ = os.Remove(dest)
		return result, fmt.Errorf("stage spec write %q: %w", dest, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(dest)
		return result, fmt.Errorf("stage spec close %q: %w", dest, err)
	}

	r.logger.Info("spec staged", "source", sel.Name, "path", dest)
	result.Staged = true
	return result, nil
}
