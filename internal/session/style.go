package session

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styler colours banner and summary text for terminal output. A Styler
// created with color disabled returns its input unchanged.
type Styler struct {
	noColor     bool
	borderStyle lipgloss.Style
	titleStyle  lipgloss.Style
	headStyle   lipgloss.Style
	mutedStyle  lipgloss.Style
}

// NewStyler creates a Styler. Pass noColor for pipes, files and --no-color.
func NewStyler(noColor bool) *Styler {
	s := &Styler{noColor: noColor}
	if noColor {
		return s
	}
	s.borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	s.titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#10B981"))
	s.headStyle = lipgloss.NewStyle().Bold(true)
	s.mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	return s
}

// Banner styles a banner produced by RenderBanner.
func (s *Styler) Banner(text string) string {
	if s.noColor {
		return text
	}
	return s.mapLines(text, func(line string) string {
		if strings.HasPrefix(line, "=") {
			return s.borderStyle.Render(line)
		}
		return s.titleStyle.Render(line)
	})
}

// Summary styles a block produced by Summarize.
func (s *Styler) Summary(text string) string {
	if s.noColor {
		return text
	}
	first := true
	return s.mapLines(text, func(line string) string {
		defer func() { first = false }()
		switch {
		case first:
			return s.headStyle.Render(line)
		case strings.HasPrefix(strings.TrimSpace(line), "("):
			return s.mutedStyle.Render(line)
		default:
			return line
		}
	})
}

// mapLines applies fn to each non-empty line, keeping line breaks.
func (s *Styler) mapLines(text string, fn func(string) string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line == "" {
			continue
		}
		lines[i] = fn(line)
	}
	return strings.Join(lines, "\n")
}
