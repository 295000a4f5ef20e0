package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/autocode-dev/autocode/internal/template"
)

// renderWordWrap is the glamour wrap width for --render.
const renderWordWrap = 100

func newPromptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prompt <initializer|coding>",
		Short: "Print the resolved prompt for a session kind",
		Long: `Print the prompt that a session of the given kind would receive.

With --project (or prompts.active_project in config) the file
<project>_<kind>_prompt.md is used when it exists; otherwise <kind>_prompt.md.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(template.KindInitializer), string(template.KindCoding)},
		RunE:      runPrompt,
	}
	cmd.Flags().Bool("render", false, "Render the markdown for the terminal")
	return cmd
}

func runPrompt(cmd *cobra.Command, args []string) error {
	kind, err := template.ParseKind(args[0])
	if err != nil {
		return err
	}

	deps, err := buildDependencies(cmd, false)
	if err != nil {
		return err
	}

	sel, err := deps.Templates.ResolvePrompt(kind)
	if err != nil {
		return err
	}

	if !getBoolFlag(cmd, "render") {
		_, err := io.WriteString(cmd.OutOrStdout(), sel.Content)
		return err
	}

	rendered, err := renderMarkdown(sel.Content, deps.Terminal.NoColor())
	if err != nil {
		return err
	}
	_, err = io.WriteString(cmd.OutOrStdout(), rendered)
	return err
}

// renderMarkdown formats markdown for display; plain mode avoids ANSI styling.
func renderMarkdown(content string, noColor bool) (string, error) {
	style := glamour.WithAutoStyle()
	if noColor {
		style = glamour.WithStandardStyle("notty")
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(renderWordWrap))
	if err != nil {
		return "", fmt.Errorf("markdown renderer: %w", err)
	}
	out, err := r.Render(content)
	if err != nil {
		return "", fmt.Errorf("render prompt: %w", err)
	}
	return out, nil
}
