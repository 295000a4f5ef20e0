// Package ui holds the small amount of terminal interaction autocode needs:
// TTY detection for colour and prompts, and the interactive project picker.
package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// Terminal reports whether input and output are attached to a terminal.
// Detection can be forced for tests and for --no-color.
type Terminal struct {
	forcedHeadless *bool
	forcedNoColor  *bool
}

// NewTerminal creates a Terminal that detects TTY state from os.Stdin and os.Stdout.
func NewTerminal() *Terminal {
	return &Terminal{}
}

// IsHeadless returns true when stdin is not a terminal, so interactive
// prompts cannot be shown.
func (t *Terminal) IsHeadless() bool {
	if t.forcedHeadless != nil {
		return *t.forcedHeadless
	}
	return !isTerminal(os.Stdin)
}

// NoColor returns true when output should be plain: NO_COLOR is set or
// stdout is not a terminal.
func (t *Terminal) NoColor() bool {
	if t.forcedNoColor != nil {
		return *t.forcedNoColor
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return true
	}
	return !isTerminal(os.Stdout)
}

// ForceHeadless overrides stdin detection.
func (t *Terminal) ForceHeadless(headless bool) {
	t.forcedHeadless = &headless
}

// ForceNoColor overrides stdout detection.
func (t *Terminal) ForceNoColor(noColor bool) {
	t.forcedNoColor = &noColor
}

// ClearForce removes any forced overrides.
func (t *Terminal) ClearForce() {
	t.forcedHeadless = nil
	t.forcedNoColor = nil
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
