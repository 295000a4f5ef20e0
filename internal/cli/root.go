package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/autocode-dev/autocode/pkg/version"
)

// NewRootCmd builds the autocode command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "autocode",
		Short: "Session bookkeeping for autonomous coding runs tracked in ClickUp",
		Long: `autocode prepares each autonomous coding session.

It reads the ClickUp marker file in the project directory to decide whether
the next session is an initializer run or a coding run, resolves the prompt
for that run (project-specific variants first, defaults second) and stages
the app specification into the project exactly once.`,
		Version:       version.GetVersion(),
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.SetVersionTemplate(fmt.Sprintf("autocode %s\n", version.GetFullVersion()))

	pf := rootCmd.PersistentFlags()
	pf.String("project-dir", ".", "Project directory holding the marker file and staged spec")
	pf.String("config-dir", "", "Directory containing config.yaml (default: <project-dir>/.autocode)")
	pf.String("prompts-dir", "", "Prompts directory (default: ./prompts)")
	pf.String("project", "", "Active project selecting <project>_ prefixed templates")
	pf.String("log-level", "", "Log level: debug, info, warn or error")
	pf.Bool("no-color", false, "Disable coloured output")

	rootCmd.AddCommand(
		newSessionCmd(),
		newStatusCmd(),
		newPromptCmd(),
		newStageCmd(),
		newProjectsCmd(),
	)
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
