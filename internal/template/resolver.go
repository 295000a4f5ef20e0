package template

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"slices"
	"strings"

	"github.com/autocode-dev/autocode/internal/defs"
)

// Options configures a Resolver.
type Options struct {
	// ActiveProject selects <project>_ template variants. Empty means defaults only.
	ActiveProject string

	// AllowReset permits ClearActiveProject. Without it the active project,
	// once set, stays for the lifetime of the Resolver.
	AllowReset bool

	// Logger receives template selection notices. Nil discards them.
	Logger *slog.Logger
}

// Selection is a resolved template file.
type Selection struct {
	Kind            string `json:"kind"`
	Name            string `json:"name"`
	ProjectSpecific bool   `json:"project_specific"`
	Content         string `json:"-"`
}

// Resolver picks prompt and specification files from a prompts directory.
// It is created once per session driver run and is not safe for concurrent
// mutation.
type Resolver struct {
	fsys       fs.FS
	active     string
	allowReset bool
	logger     *slog.Logger
}

// NewResolver creates a Resolver over fsys, the prompts directory.
// In production fsys is os.DirFS(promptsDir); in tests use testing/fstest.MapFS.
func NewResolver(fsys fs.FS, opts Options) (*Resolver, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	r := &Resolver{
		fsys:       fsys,
		allowReset: opts.AllowReset,
		logger:     logger,
	}
	if opts.ActiveProject != "" {
		if err := r.SetActiveProject(opts.ActiveProject); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// ActiveProject returns the active project name, if one is set.
func (r *Resolver) ActiveProject() (string, bool) {
	return r.active, r.active != ""
}

// SetActiveProject makes name the active project. The name is not checked
// against existing templates; resolution falls back to defaults when no
// variant exists.
func (r *Resolver) SetActiveProject(name string) error {
	n, err := normalizeProjectName(name)
	if err != nil {
		return err
	}
	prev := r.active
	r.active = n
	r.logger.Info("active project set", "project", n, "previous", prev)
	return nil
}

// ClearActiveProject returns the Resolver to default templates.
func (r *Resolver) ClearActiveProject() error {
	if !r.allowReset {
		return ErrResetDisabled
	}
	if r.active != "" {
		r.logger.Info("active project cleared", "previous", r.active)
	}
	r.active = ""
	return nil
}

// Prompt returns the prompt text for kind.
func (r *Resolver) Prompt(kind Kind) (string, error) {
	sel, err := r.ResolvePrompt(kind)
	if err != nil {
		return "", err
	}
	return sel.Content, nil
}

// ResolvePrompt selects <project>_<kind>_prompt.md when a project is active
// and the file exists, else <kind>_prompt.md.
func (r *Resolver) ResolvePrompt(kind Kind) (Selection, error) {
	if !kind.IsValid() {
		return Selection{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	variant := ""
	if r.active != "" {
		variant = projectPromptFile(r.active, kind)
	}
	return r.resolve(string(kind), variant, promptFile(kind))
}

// ResolveSpec selects <project>_spec.txt when a project is active and the
// file exists, else app_spec.txt.
func (r *Resolver) ResolveSpec() (Selection, error) {
	variant := ""
	if r.active != "" {
		variant = projectSpecFile(r.active)
	}
	return r.resolve("spec", variant, defs.AppSpecTXT)
}

func (r *Resolver) resolve(kind, variant, fallback string) (Selection, error) {
	tried := make([]string, 0, 2)

	if variant != "" {
		data, err := fs.ReadFile(r.fsys, variant)
		switch {
		case err == nil:
			r.logger.Info("using project-specific template", "kind", kind, "file", variant)
			return Selection{Kind: kind, Name: variant, ProjectSpecific: true, Content: string(data)}, nil
		case errors.Is(err, fs.ErrNotExist):
			tried = append(tried, variant)
		default:
			return Selection{}, fmt.Errorf("read template %q: %w", variant, err)
		}
	}

	data, err := fs.ReadFile(r.fsys, fallback)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			tried = append(tried, fallback)
			return Selection{}, fmt.Errorf("%w: %s (tried %s)", ErrMissingTemplate, kind, strings.Join(tried, ", "))
		}
		return Selection{}, fmt.Errorf("read template %q: %w", fallback, err)
	}
	return Selection{Kind: kind, Name: fallback, Content: string(data)}, nil
}

// Projects lists project names that have at least one variant file in the
// prompts directory, sorted.
func (r *Resolver) Projects() ([]string, error) {
	entries, err := fs.ReadDir(r.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("list prompts directory: %w", err)
	}

	suffixes := []string{
		"_" + promptFile(KindInitializer),
		"_" + promptFile(KindCoding),
		defs.SpecSuffix,
	}

	var projects []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || name == defs.AppSpecTXT {
			continue
		}
		for _, suffix := range suffixes {
			if project, ok := strings.CutSuffix(name, suffix); ok && project != "" {
				projects = append(projects, project)
				break
			}
		}
	}

	slices.Sort(projects)
	return slices.Compact(projects), nil
}
