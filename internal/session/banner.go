package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/autocode-dev/autocode/internal/state"
)

// BannerWidth is the width of the banner border.
const BannerWidth = 70

// ErrInvalidSessionNumber indicates a session number below 1.
var ErrInvalidSessionNumber = errors.New("session: session number must be positive")

// RenderBanner formats the session header:
//
//	======================================================================
//	  SESSION 3: CODING AGENT
//	======================================================================
func RenderBanner(sessionNumber int, role Role) (string, error) {
	if sessionNumber < 1 {
		return "", fmt.Errorf("%w: got %d", ErrInvalidSessionNumber, sessionNumber)
	}
	border := strings.Repeat("=", BannerWidth)
	var b strings.Builder
	b.WriteString(border)
	b.WriteByte('\n')
	fmt.Fprintf(&b, "  SESSION %d: %s\n", sessionNumber, role.Label())
	b.WriteString(border)
	b.WriteByte('\n')
	return b.String(), nil
}

// NotInitializedMessage is the summary for a project without a usable marker.
const NotInitializedMessage = "ClickUp project not yet initialized"

// Summarize formats the tracker status recorded in the marker. The values
// are whatever the tracker integration cached on its last write and may lag
// behind ClickUp.
func Summarize(snap state.Snapshot) string {
	st, ok := snap.State()
	if !ok {
		return NotInitializedMessage + "\n"
	}

	var b strings.Builder
	b.WriteString("ClickUp Project Status:\n")
	fmt.Fprintf(&b, "  List:                %s\n", orUnknown(st.ListName))
	fmt.Fprintf(&b, "  Total tasks created: %d\n", st.TotalTasks)
	fmt.Fprintf(&b, "  META task ID:        %s\n", orUnknown(st.MetaTaskID))
	if !st.Initialized {
		b.WriteString("  Setup incomplete: the next session re-runs the initializer\n")
	}
	b.WriteString("  (cached values; check ClickUp for current task status)\n")
	return b.String()
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
