package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newProjectsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "projects",
		Short: "List project template variants found in the prompts directory",
		Args:  cobra.NoArgs,
		RunE:  runProjects,
	}
}

func runProjects(cmd *cobra.Command, _ []string) error {
	deps, err := buildDependencies(cmd, false)
	if err != nil {
		return err
	}

	projects, err := deps.Templates.Projects()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(projects) == 0 {
		_, _ = fmt.Fprintf(out, "No project variants in %s\n", deps.PromptsDir)
		return nil
	}

	active, _ := deps.Templates.ActiveProject()
	for _, p := range projects {
		marker := " "
		if p == active {
			marker = "*"
		}
		_, _ = fmt.Fprintf(out, "%s %s\n", marker, p)
	}
	return nil
}
