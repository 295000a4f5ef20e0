// Package cli provides the Cobra command tree and dependency wiring for
// autocode. This file defines the Dependencies struct (Composition Root)
// that builds the state store, template resolver and logger from config
// and flags.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/autocode-dev/autocode/internal/config"
	"github.com/autocode-dev/autocode/internal/project"
	"github.com/autocode-dev/autocode/internal/state"
	"github.com/autocode-dev/autocode/internal/template"
	"github.com/autocode-dev/autocode/internal/ui"
)

// Dependencies holds the services used by one command invocation.
type Dependencies struct {
	Config     *config.Config
	ProjectDir string
	PromptsDir string
	Store      *state.Store
	Templates  *template.Resolver
	Terminal   *ui.Terminal
	Logger     *slog.Logger
}

// buildDependencies loads configuration, applies persistent flag overrides
// and wires the components. Flags beat environment, which beats the file.
// With discover set and no explicit --project-dir, the project directory is
// the nearest ancestor holding the marker file; session and stage never
// discover, so a fresh project nested in another one stays fresh.
func buildDependencies(cmd *cobra.Command, discover bool) (*Dependencies, error) {
	projectDir, err := filepath.Abs(getStringFlag(cmd, "project-dir"))
	if err != nil {
		return nil, fmt.Errorf("resolve project dir: %w", err)
	}

	cfg, warnings, err := loadConfig(cmd, projectDir)
	if err != nil {
		return nil, err
	}

	if discover && !cmd.Flags().Changed("project-dir") {
		root, err := project.FindRootOrCurrent(projectDir, cfg.Session.MarkerFile)
		if err != nil {
			return nil, fmt.Errorf("resolve project dir: %w", err)
		}
		if root != projectDir {
			projectDir = root
			if cfg, warnings, err = loadConfig(cmd, projectDir); err != nil {
				return nil, err
			}
		}
	}

	if dir := getStringFlag(cmd, "prompts-dir"); dir != "" {
		cfg.Prompts.Dir = dir
	}
	if name := getStringFlag(cmd, "project"); name != "" {
		cfg.Prompts.ActiveProject = name
	}
	if level := getStringFlag(cmd, "log-level"); level != "" {
		cfg.Log.Level = level
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	term := ui.NewTerminal()
	if getBoolFlag(cmd, "no-color") {
		term.ForceNoColor(true)
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg.Log)
	for _, w := range warnings {
		logger.Warn("config file ignored, using defaults", "error", w)
	}

	promptsDir, err := filepath.Abs(cfg.Prompts.Dir)
	if err != nil {
		return nil, fmt.Errorf("resolve prompts dir: %w", err)
	}

	d := &Dependencies{
		Config:     cfg,
		ProjectDir: projectDir,
		PromptsDir: promptsDir,
		Terminal:   term,
		Logger:     logger,
		Store: state.NewStore(
			state.WithMarkerName(cfg.Session.MarkerFile),
			state.WithLogger(logger),
		),
	}

	d.Templates, err = d.NewResolver(cfg.Prompts.ActiveProject)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// loadConfig reads config from --config-dir when given, else from the
// project's .autocode directory.
func loadConfig(cmd *cobra.Command, projectDir string) (*config.Config, []error, error) {
	var (
		cfg      *config.Config
		warnings []error
		err      error
	)
	if dir := getStringFlag(cmd, "config-dir"); dir != "" {
		cfg, warnings, err = config.LoadDir(dir)
	} else {
		cfg, warnings, err = config.Load(projectDir)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, warnings, nil
}

// NewResolver builds a template resolver over the prompts directory with
// the given active project.
func (d *Dependencies) NewResolver(activeProject string) (*template.Resolver, error) {
	info, err := os.Stat(d.PromptsDir)
	if err != nil {
		return nil, fmt.Errorf("prompts directory %s: %w", d.PromptsDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("prompts directory %s: not a directory", d.PromptsDir)
	}
	return template.NewResolver(os.DirFS(d.PromptsDir), template.Options{
		ActiveProject: activeProject,
		AllowReset:    d.Config.Prompts.AllowReset,
		Logger:        d.Logger,
	})
}

// getStringFlag retrieves a string flag value, including persistent flags.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value, including persistent flags.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}

// getIntFlag retrieves an int flag value.
func getIntFlag(cmd *cobra.Command, name string) int {
	val, err := cmd.Flags().GetInt(name)
	if err != nil {
		return 0
	}
	return val
}
