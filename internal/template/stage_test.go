package template

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func TestStageSpecificationIdempotent(t *testing.T) {
	t.Parallel()

	projectDir := t.TempDir()
	r := newTestResolver(t, promptsFS(), Options{})

	first, err := r.StageSpecification(projectDir)
	if err != nil {
		t.Fatalf("first StageSpecification error: %v", err)
	}
	if !first.Staged {
		t.Error("first call: Staged = false, want true")
	}
	dest := filepath.Join(projectDir, "app_spec.txt")
	if first.Destination != dest {
		t.Errorf("Destination = %q, want %q", first.Destination, dest)
	}
	if got := readFile(t, dest); got != "default app spec" {
		t.Fatalf("staged content = %q, want source content", got)
	}

	edited := "default app spec\n\nEdited by a human."
	if err := os.WriteFile(dest, []byte(edited), 0o644); err != nil {
		t.Fatalf("edit staged spec: %v", err)
	}

	second, err := r.StageSpecification(projectDir)
	if err != nil {
		t.Fatalf("second StageSpecification error: %v", err)
	}
	if second.Staged {
		t.Error("second call: Staged = true, want skipped")
	}
	if got := readFile(t, dest); got != edited {
		t.Errorf("staged spec was overwritten: got %q", got)
	}
}

func TestStageSpecificationProjectVariant(t *testing.T) {
	t.Parallel()

	projectDir := t.TempDir()
	r := newTestResolver(t, promptsFS(), Options{ActiveProject: "acme"})

	res, err := r.StageSpecification(projectDir)
	if err != nil {
		t.Fatalf("StageSpecification error: %v", err)
	}
	if res.Source != "acme_spec.txt" {
		t.Errorf("Source = %q, want acme_spec.txt", res.Source)
	}
	if got := readFile(t, filepath.Join(projectDir, "app_spec.txt")); got != "acme spec" {
		t.Errorf("staged content = %q, want acme spec", got)
	}
}

func TestStageSpecificationCreatesProjectDir(t *testing.T) {
	t.Parallel()

	projectDir := filepath.Join(t.TempDir(), "new", "project")
	r := newTestResolver(t, promptsFS(), Options{})

	if _, err := r.StageSpecification(projectDir); err != nil {
		t.Fatalf("StageSpecification error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(projectDir, "app_spec.txt")); err != nil {
		t.Errorf("staged spec missing: %v", err)
	}
}

func TestStageSpecificationMissingDefault(t *testing.T) {
	t.Parallel()

	projectDir := t.TempDir()
	fsys := fstest.MapFS{
		"coding_prompt.md": &fstest.MapFile{Data: []byte("coding")},
	}
	r := newTestResolver(t, fsys, Options{})

	_, err := r.StageSpecification(projectDir)
	if !errors.Is(err, ErrMissingTemplate) {
		t.Fatalf("StageSpecification error = %v, want ErrMissingTemplate", err)
	}
	if _, statErr := os.Stat(filepath.Join(projectDir, "app_spec.txt")); !errors.Is(statErr, os.ErrNotExist) {
		t.Errorf("no file should be created on failure, stat err = %v", statErr)
	}
}
