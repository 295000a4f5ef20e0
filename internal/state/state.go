package state

import (
	"encoding/json"
	"maps"
)

// ProjectState is the content of the marker file. The counters are a cache of
// what the tracker integration last wrote; the remote tracker stays the source
// of truth and nothing here reconciles them.
type ProjectState struct {
	Initialized bool   `json:"initialized" mapstructure:"initialized"`
	TotalTasks  int    `json:"total_tasks" mapstructure:"total_tasks"`
	MetaTaskID  string `json:"meta_task_id,omitempty" mapstructure:"meta_task_id"`
	ListName    string `json:"list_name,omitempty" mapstructure:"list_name"`

	// Extra holds keys this package does not interpret, so that a
	// re-serialized state carries everything the collaborator wrote.
	Extra map[string]any `json:"-" mapstructure:",remain"`
}

// MarshalJSON writes the known fields merged over Extra.
func (s ProjectState) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(s.Extra)+4)
	maps.Copy(out, s.Extra)
	out["initialized"] = s.Initialized
	out["total_tasks"] = s.TotalTasks
	if s.MetaTaskID != "" {
		out["meta_task_id"] = s.MetaTaskID
	}
	if s.ListName != "" {
		out["list_name"] = s.ListName
	}
	return json.Marshal(out)
}

// AbsentReason says why a Snapshot carries no state.
type AbsentReason string

const (
	// ReasonNone marks a present Snapshot.
	ReasonNone AbsentReason = ""
	// ReasonNotFound means the marker file does not exist.
	ReasonNotFound AbsentReason = "not_found"
	// ReasonUnreadable means the marker exists but could not be read.
	ReasonUnreadable AbsentReason = "unreadable"
	// ReasonMalformed means the marker was read but is not a valid marker object.
	ReasonMalformed AbsentReason = "malformed"
)

// Snapshot is the result of loading a marker file: either a present
// ProjectState or an absence with its reason. Callers that only need the
// state ask Present or State; Reason and Cause exist for diagnostics.
type Snapshot struct {
	state  *ProjectState
	reason AbsentReason
	cause  error
}

// Present returns a Snapshot holding st.
func Present(st ProjectState) Snapshot {
	return Snapshot{state: &st}
}

// Absent returns a Snapshot with no state.
func Absent(reason AbsentReason, cause error) Snapshot {
	return Snapshot{reason: reason, cause: cause}
}

// Present reports whether the snapshot holds a state.
func (s Snapshot) Present() bool {
	return s.state != nil
}

// State returns a copy of the held state and true, or the zero value and false.
func (s Snapshot) State() (ProjectState, bool) {
	if s.state == nil {
		return ProjectState{}, false
	}
	return *s.state, true
}

// Initialized reports whether the snapshot is present and marked initialized.
func (s Snapshot) Initialized() bool {
	return s.state != nil && s.state.Initialized
}

// Reason returns ReasonNone for a present snapshot.
func (s Snapshot) Reason() AbsentReason {
	return s.reason
}

// Cause returns the underlying error for an absent snapshot, if any.
func (s Snapshot) Cause() error {
	return s.cause
}
