package session

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/autocode-dev/autocode/internal/state"
	"github.com/autocode-dev/autocode/internal/template"
)

func TestResolveRole(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		snap state.Snapshot
		want Role
	}{
		{"absent", state.Absent(state.ReasonNotFound, os.ErrNotExist), RoleInitializer},
		{"malformed", state.Absent(state.ReasonMalformed, state.ErrNotObject), RoleInitializer},
		{"not_initialized", state.Present(state.ProjectState{Initialized: false, TotalTasks: 3}), RoleInitializer},
		{"initialized", state.Present(state.ProjectState{Initialized: true}), RoleCodingAgent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ResolveRole(tt.snap); got != tt.want {
				t.Errorf("ResolveRole() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRoleMappings(t *testing.T) {
	t.Parallel()

	if RoleInitializer.Label() != "INITIALIZER" {
		t.Errorf("RoleInitializer.Label() = %q", RoleInitializer.Label())
	}
	if RoleCodingAgent.Label() != "CODING AGENT" {
		t.Errorf("RoleCodingAgent.Label() = %q", RoleCodingAgent.Label())
	}
	if RoleInitializer.PromptKind() != template.KindInitializer {
		t.Errorf("RoleInitializer.PromptKind() = %q", RoleInitializer.PromptKind())
	}
	if RoleCodingAgent.PromptKind() != template.KindCoding {
		t.Errorf("RoleCodingAgent.PromptKind() = %q", RoleCodingAgent.PromptKind())
	}
}

func TestRenderBanner(t *testing.T) {
	t.Parallel()

	got, err := RenderBanner(3, RoleCodingAgent)
	if err != nil {
		t.Fatalf("RenderBanner error: %v", err)
	}
	border := strings.Repeat("=", BannerWidth)
	want := border + "\n  SESSION 3: CODING AGENT\n" + border + "\n"
	if got != want {
		t.Errorf("RenderBanner() =\n%s\nwant\n%s", got, want)
	}

	for _, n := range []int{0, -1} {
		if _, err := RenderBanner(n, RoleInitializer); !errors.Is(err, ErrInvalidSessionNumber) {
			t.Errorf("RenderBanner(%d) error = %v, want ErrInvalidSessionNumber", n, err)
		}
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	t.Run("absent", func(t *testing.T) {
		t.Parallel()
		got := Summarize(state.Absent(state.ReasonNotFound, nil))
		if !strings.Contains(got, NotInitializedMessage) {
			t.Errorf("Summarize(absent) = %q", got)
		}
	})

	t.Run("full_state", func(t *testing.T) {
		t.Parallel()
		got := Summarize(state.Present(state.ProjectState{
			Initialized: true,
			TotalTasks:  12,
			MetaTaskID:  "86a9",
			ListName:    "Acme",
		}))
		for _, want := range []string{"List:                Acme", "Total tasks created: 12", "META task ID:        86a9"} {
			if !strings.Contains(got, want) {
				t.Errorf("summary missing %q:\n%s", want, got)
			}
		}
		if strings.Contains(got, "Setup incomplete") {
			t.Errorf("initialized state should not report incomplete setup:\n%s", got)
		}
	})

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		got := Summarize(state.Present(state.ProjectState{}))
		for _, want := range []string{"List:                unknown", "Total tasks created: 0", "META task ID:        unknown", "Setup incomplete"} {
			if !strings.Contains(got, want) {
				t.Errorf("summary missing %q:\n%s", want, got)
			}
		}
	})
}

func TestStylerNoColorPassthrough(t *testing.T) {
	t.Parallel()

	s := NewStyler(true)
	banner, _ := RenderBanner(1, RoleInitializer)
	if got := s.Banner(banner); got != banner {
		t.Errorf("Banner() modified text with color disabled: %q", got)
	}
	summary := Summarize(state.Absent(state.ReasonNotFound, nil))
	if got := s.Summary(summary); got != summary {
		t.Errorf("Summary() modified text with color disabled: %q", got)
	}
}

func TestStylerKeepsContent(t *testing.T) {
	t.Parallel()

	s := NewStyler(false)
	banner, _ := RenderBanner(2, RoleCodingAgent)
	got := s.Banner(banner)
	if !strings.Contains(got, "SESSION 2: CODING AGENT") {
		t.Errorf("styled banner lost its title: %q", got)
	}
	if strings.Count(got, "\n") != strings.Count(banner, "\n") {
		t.Errorf("styled banner changed line count")
	}
}

func testTemplates(t *testing.T) *template.Resolver {
	t.Helper()
	fsys := fstest.MapFS{
		"initializer_prompt.md": &fstest.MapFile{Data: []byte("initializer prompt")},
		"coding_prompt.md":      &fstest.MapFile{Data: []byte("coding prompt")},
		"app_spec.txt":          &fstest.MapFile{Data: []byte("spec body")},
	}
	r, err := template.NewResolver(fsys, template.Options{})
	if err != nil {
		t.Fatalf("NewResolver error: %v", err)
	}
	return r
}

func TestPrepareFirstSession(t *testing.T) {
	t.Parallel()

	projectDir := t.TempDir()
	plan, err := Prepare(state.NewStore(), testTemplates(t), PrepareInput{ProjectDir: projectDir, SessionNumber: 1})
	if err != nil {
		t.Fatalf("Prepare error: %v", err)
	}
	if plan.Role != RoleInitializer {
		t.Errorf("Role = %v, want initializer", plan.Role)
	}
	if plan.Prompt.Content != "initializer prompt" {
		t.Errorf("Prompt = %q", plan.Prompt.Content)
	}
	if !strings.Contains(plan.Banner, "SESSION 1: INITIALIZER") {
		t.Errorf("Banner = %q", plan.Banner)
	}
	if plan.Stage == nil || !plan.Stage.Staged {
		t.Fatalf("Stage = %+v, want staged spec", plan.Stage)
	}
	data, err := os.ReadFile(filepath.Join(projectDir, "app_spec.txt"))
	if err != nil || string(data) != "spec body" {
		t.Errorf("staged spec = %q, err = %v", data, err)
	}
}

func TestPrepareCodingSession(t *testing.T) {
	t.Parallel()

	projectDir := t.TempDir()
	marker := `{"initialized": true, "total_tasks": 5, "meta_task_id": "m1", "list_name": "L"}`
	if err := os.WriteFile(filepath.Join(projectDir, ".clickup_project.json"), []byte(marker), 0o644); err != nil {
		t.Fatalf("write marker: %v", err)
	}

	plan, err := Prepare(state.NewStore(), testTemplates(t), PrepareInput{ProjectDir: projectDir, SessionNumber: 4})
	if err != nil {
		t.Fatalf("Prepare error: %v", err)
	}
	if plan.Role != RoleCodingAgent {
		t.Errorf("Role = %v, want coding", plan.Role)
	}
	if plan.Prompt.Content != "coding prompt" {
		t.Errorf("Prompt = %q", plan.Prompt.Content)
	}
	if plan.Stage != nil {
		t.Errorf("coding session should not stage the spec, got %+v", plan.Stage)
	}
	if _, err := os.Stat(filepath.Join(projectDir, "app_spec.txt")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("app_spec.txt should not exist, stat err = %v", err)
	}
}

func TestPrepareMissingTemplate(t *testing.T) {
	t.Parallel()

	r, err := template.NewResolver(fstest.MapFS{}, template.Options{})
	if err != nil {
		t.Fatalf("NewResolver error: %v", err)
	}
	_, err = Prepare(state.NewStore(), r, PrepareInput{ProjectDir: t.TempDir(), SessionNumber: 1})
	if !errors.Is(err, template.ErrMissingTemplate) {
		t.Errorf("Prepare error = %v, want ErrMissingTemplate", err)
	}
}

func TestPrepareInvalidSessionNumber(t *testing.T) {
	t.Parallel()

	_, err := Prepare(state.NewStore(), testTemplates(t), PrepareInput{ProjectDir: t.TempDir()})
	if !errors.Is(err, ErrInvalidSessionNumber) {
		t.Errorf("Prepare error = %v, want ErrInvalidSessionNumber", err)
	}
}
