// Package state reads the ClickUp marker file that the tracker integration
// leaves in a project directory. It is read-only: every failure to obtain a
// usable marker collapses to an absent Snapshot instead of an error.
package state

import "errors"

// Sentinel errors recorded as the cause of an absent Snapshot.
var (
	// ErrNotObject indicates the marker decoded to valid JSON that is not an object.
	ErrNotObject = errors.New("state: marker is not a JSON object")

	// ErrEmptyMarker indicates the marker file exists but has no content.
	ErrEmptyMarker = errors.New("state: marker file is empty")

	// ErrSchema indicates the marker object failed schema validation.
	ErrSchema = errors.New("state: marker violates schema")
)
