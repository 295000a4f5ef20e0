package template

import (
	"fmt"
	"strings"

	"github.com/autocode-dev/autocode/internal/defs"
)

// Kind identifies a prompt family.
type Kind string

const (
	KindInitializer Kind = "initializer"
	KindCoding      Kind = "coding"
)

// IsValid reports whether k is a known prompt kind.
func (k Kind) IsValid() bool {
	return k == KindInitializer || k == KindCoding
}

// ParseKind converts a CLI argument into a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.IsValid() {
		return "", fmt.Errorf("%w: %q (want %s or %s)", ErrUnknownKind, s, KindInitializer, KindCoding)
	}
	return k, nil
}

// promptFile returns "<kind>_prompt.md".
func promptFile(k Kind) string {
	return string(k) + defs.PromptSuffix
}

// projectPromptFile returns "<project>_<kind>_prompt.md".
func projectPromptFile(project string, k Kind) string {
	return project + "_" + promptFile(k)
}

// projectSpecFile returns "<project>_spec.txt".
func projectSpecFile(project string) string {
	return project + defs.SpecSuffix
}
