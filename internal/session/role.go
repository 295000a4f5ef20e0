// Package session decides what kind of autonomous session is about to run
// and prepares everything the driver needs to start it: the banner, the
// tracker status block, the prompt and, for a first run, the staged spec.
package session

import (
	"github.com/autocode-dev/autocode/internal/state"
	"github.com/autocode-dev/autocode/internal/template"
)

// Role is the session type.
type Role int

const (
	// RoleInitializer creates the remote ClickUp list and its tasks.
	RoleInitializer Role = iota
	// RoleCodingAgent works tasks from an existing list.
	RoleCodingAgent
)

// ResolveRole returns RoleCodingAgent only when the marker is present and
// initialized; every other case, including an unreadable marker, starts an
// initializer session.
func ResolveRole(snap state.Snapshot) Role {
	if snap.Initialized() {
		return RoleCodingAgent
	}
	return RoleInitializer
}

// Label returns the banner label.
func (r Role) Label() string {
	if r == RoleCodingAgent {
		return "CODING AGENT"
	}
	return "INITIALIZER"
}

// String implements fmt.Stringer.
func (r Role) String() string {
	if r == RoleCodingAgent {
		return "coding"
	}
	return "initializer"
}

// PromptKind maps the role to its prompt template family.
func (r Role) PromptKind() template.Kind {
	if r == RoleCodingAgent {
		return template.KindCoding
	}
	return template.KindInitializer
}
