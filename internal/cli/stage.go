package cli

import (
	"github.com/spf13/cobra"
)

func newStageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stage",
		Short: "Copy the app spec into the project directory if it is not there yet",
		Long: `Copy the resolved specification (<project>_spec.txt or app_spec.txt)
into the project directory as app_spec.txt.

An existing app_spec.txt is never overwritten.`,
		Args: cobra.NoArgs,
		RunE: runStage,
	}
}

func runStage(cmd *cobra.Command, _ []string) error {
	deps, err := buildDependencies(cmd, false)
	if err != nil {
		return err
	}

	res, err := deps.Templates.StageSpecification(deps.ProjectDir)
	if err != nil {
		return err
	}
	printStage(cmd.OutOrStdout(), deps.PromptsDir, &res)
	return nil
}
