package ui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
)

// DefaultChoice is the picker value meaning "no active project".
const DefaultChoice = ""

var (
	// ErrCancelled indicates the user aborted the picker.
	ErrCancelled = errors.New("ui: selection cancelled")

	// ErrHeadless indicates an interactive prompt was requested without a terminal.
	ErrHeadless = errors.New("ui: interactive selection requires a terminal")
)

// ProjectOptions builds the picker entries: the default templates first,
// then each project. current is preselected when present. The default
// entry is left out when a project is active and allowReset is false,
// since choosing it could not be applied.
func ProjectOptions(projects []string, current string, allowReset bool) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(projects)+1)
	if current == "" || allowReset {
		opts = append(opts, huh.NewOption("(default templates)", DefaultChoice).Selected(current == ""))
	}
	for _, p := range projects {
		opts = append(opts, huh.NewOption(p, p).Selected(p == current))
	}
	return opts
}

// PickProject asks the user to choose a project variant. It returns
// DefaultChoice when the user keeps the default templates.
func PickProject(term *Terminal, projects []string, current string, allowReset bool) (string, error) {
	if term.IsHeadless() {
		return "", ErrHeadless
	}

	choice := current
	sel := huh.NewSelect[string]().
		Title("Active project").
		Description("Project-specific prompts take priority over the defaults").
		Options(ProjectOptions(projects, current, allowReset)...).
		Value(&choice)

	if err := huh.NewForm(huh.NewGroup(sel)).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("project picker: %w", err)
	}
	return choice, nil
}
