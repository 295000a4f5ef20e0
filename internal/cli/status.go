package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/autocode-dev/autocode/internal/session"
	"github.com/autocode-dev/autocode/internal/state"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the cached ClickUp project status for a project directory",
		Long: `Show the ClickUp project status cached in the marker file.

The marker is written by the tracker integration; the counts shown are what
it recorded last and may be stale. A missing, unreadable or malformed marker
is reported as "not yet initialized" (use --json to see which).`,
		Args: cobra.NoArgs,
		RunE: runStatus,
	}
	cmd.Flags().Bool("json", false, "Print the snapshot as JSON, including the absence reason")
	return cmd
}

func runStatus(cmd *cobra.Command, _ []string) error {
	deps, err := buildDependencies(cmd, true)
	if err != nil {
		return err
	}

	snap := deps.Store.Load(deps.ProjectDir)

	if getBoolFlag(cmd, "json") {
		view := newSnapshotView(snap)
		view.Marker = deps.Store.MarkerPath(deps.ProjectDir)
		return writeJSON(cmd.OutOrStdout(), view)
	}

	styler := session.NewStyler(deps.Terminal.NoColor())
	out := cmd.OutOrStdout()
	_, _ = fmt.Fprint(out, styler.Summary(session.Summarize(snap)))
	_, _ = fmt.Fprintf(out, "Next session: %s\n", session.ResolveRole(snap).Label())
	return nil
}

// snapshotView is the JSON form of a marker snapshot.
type snapshotView struct {
	Marker  string              `json:"marker,omitempty"`
	Present bool                `json:"present"`
	Reason  state.AbsentReason  `json:"reason,omitempty"`
	Error   string              `json:"error,omitempty"`
	State   *state.ProjectState `json:"state,omitempty"`
}

func newSnapshotView(snap state.Snapshot) snapshotView {
	view := snapshotView{
		Present: snap.Present(),
		Reason:  snap.Reason(),
	}
	if st, ok := snap.State(); ok {
		view.State = &st
	}
	if cause := snap.Cause(); cause != nil {
		view.Error = cause.Error()
	}
	return view
}
