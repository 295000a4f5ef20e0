package session

import (
	"fmt"

	"github.com/autocode-dev/autocode/internal/state"
	"github.com/autocode-dev/autocode/internal/template"
)

// StateLoader loads the marker snapshot for a project directory.
type StateLoader interface {
	Load(projectDir string) state.Snapshot
}

// TemplateSource resolves prompts and stages the specification.
type TemplateSource interface {
	ResolvePrompt(kind template.Kind) (template.Selection, error)
	StageSpecification(projectDir string) (template.StageResult, error)
}

// PrepareInput identifies the session to prepare.
type PrepareInput struct {
	ProjectDir    string
	SessionNumber int
}

// Plan is everything the driver needs to start one session.
type Plan struct {
	Snapshot state.Snapshot
	Role     Role
	Banner   string
	Summary  string
	Prompt   template.Selection

	// Stage is nil for coding sessions, which never touch the staged spec.
	Stage *template.StageResult
}

// Prepare loads the marker, resolves the role and prompt, and stages the
// specification for initializer sessions. Only template lookup failures
// are returned; marker problems resolve to an initializer session.
func Prepare(loader StateLoader, templates TemplateSource, in PrepareInput) (*Plan, error) {
	snap := loader.Load(in.ProjectDir)
	role := ResolveRole(snap)

	banner, err := RenderBanner(in.SessionNumber, role)
	if err != nil {
		return nil, err
	}

	prompt, err := templates.ResolvePrompt(role.PromptKind())
	if err != nil {
		return nil, fmt.Errorf("resolve %s prompt: %w", role, err)
	}

	plan := &Plan{
		Snapshot: snap,
		Role:     role,
		Banner:   banner,
		Summary:  Summarize(snap),
		Prompt:   prompt,
	}

	if role == RoleInitializer {
		res, err := templates.StageSpecification(in.ProjectDir)
		if err != nil {
			return nil, err
		}
		plan.Stage = &res
	}

	return plan, nil
}
