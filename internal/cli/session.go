package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/autocode-dev/autocode/internal/session"
	"github.com/autocode-dev/autocode/internal/template"
	"github.com/autocode-dev/autocode/internal/ui"
)

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Prepare the next autonomous session",
		Long: `Prepare the next autonomous session.

Reads the marker file, picks the session role, prints the session banner and
tracker status, stages the app spec for initializer sessions and emits the
prompt for the session.

The banner and status go to stderr; the prompt goes to stdout (or the file
named by --prompt-out) so a driver can pipe it straight into the agent.

Examples:
  autocode session --number 1
  autocode session --project acme --prompt-out /tmp/prompt.md
  autocode session --pick`,
		Args: cobra.NoArgs,
		RunE: runSession,
	}

	cmd.Flags().Int("number", 0, "Session number shown in the banner (default: session.start_number)")
	cmd.Flags().String("prompt-out", "", "Write the prompt to this file instead of stdout")
	cmd.Flags().Bool("pick", false, "Choose the active project interactively")
	cmd.Flags().Bool("json", false, "Print the session plan as JSON instead of the banner and prompt")
	return cmd
}

func runSession(cmd *cobra.Command, _ []string) error {
	deps, err := buildDependencies(cmd, false)
	if err != nil {
		return err
	}

	if getBoolFlag(cmd, "pick") {
		if err := pickProject(deps); err != nil {
			return err
		}
	}

	number := getIntFlag(cmd, "number")
	if number == 0 {
		number = deps.Config.Session.StartNumber
	}

	plan, err := session.Prepare(deps.Store, deps.Templates, session.PrepareInput{
		ProjectDir:    deps.ProjectDir,
		SessionNumber: number,
	})
	if err != nil {
		return err
	}

	if getBoolFlag(cmd, "json") {
		return writeJSON(cmd.OutOrStdout(), newPlanView(plan, number))
	}

	styler := session.NewStyler(deps.Terminal.NoColor())
	info := cmd.ErrOrStderr()
	_, _ = fmt.Fprintln(info)
	_, _ = fmt.Fprint(info, styler.Banner(plan.Banner))
	_, _ = fmt.Fprintln(info)
	_, _ = fmt.Fprint(info, styler.Summary(plan.Summary))
	_, _ = fmt.Fprintln(info)
	printStage(info, deps.PromptsDir, plan.Stage)
	printSelection(info, deps.PromptsDir, plan.Prompt)

	return emitPrompt(cmd.OutOrStdout(), getStringFlag(cmd, "prompt-out"), plan.Prompt.Content)
}

// pickProject replaces the resolver with one for the interactively chosen project.
func pickProject(deps *Dependencies) error {
	projects, err := deps.Templates.Projects()
	if err != nil {
		return err
	}
	current, _ := deps.Templates.ActiveProject()

	choice, err := ui.PickProject(deps.Terminal, projects, current, deps.Config.Prompts.AllowReset)
	if err != nil {
		if errors.Is(err, ui.ErrHeadless) {
			return fmt.Errorf("--pick: %w", err)
		}
		return err
	}
	if choice == current {
		return nil
	}

	if choice == ui.DefaultChoice {
		return deps.Templates.ClearActiveProject()
	}
	return deps.Templates.SetActiveProject(choice)
}

func printStage(w io.Writer, promptsDir string, res *template.StageResult) {
	if res == nil {
		return
	}
	if res.Staged {
		_, _ = fmt.Fprintf(w, "Spec staged: %s -> %s\n", filepath.Join(promptsDir, res.Source), res.Destination)
		return
	}
	_, _ = fmt.Fprintf(w, "Spec already present at %s, left unchanged\n", res.Destination)
}

func printSelection(w io.Writer, promptsDir string, sel template.Selection) {
	suffix := ""
	if sel.ProjectSpecific {
		suffix = " (project-specific)"
	}
	_, _ = fmt.Fprintf(w, "Prompt: %s%s\n", filepath.Join(promptsDir, sel.Name), suffix)
}

// emitPrompt writes the prompt to path, or to w when path is empty.
func emitPrompt(w io.Writer, path, content string) error {
	if path == "" {
		_, err := io.WriteString(w, content)
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write prompt: %w", err)
	}
	return nil
}

// planView is the JSON form of a session plan.
type planView struct {
	Session int                   `json:"session"`
	Role    string                `json:"role"`
	State   snapshotView          `json:"state"`
	Prompt  template.Selection    `json:"prompt"`
	Stage   *template.StageResult `json:"stage,omitempty"`
}

func newPlanView(plan *session.Plan, number int) planView {
	return planView{
		Session: number,
		Role:    plan.Role.String(),
		State:   newSnapshotView(plan.Snapshot),
		Prompt:  plan.Prompt,
		Stage:   plan.Stage,
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
