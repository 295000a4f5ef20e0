package template

import (
	"fmt"
	"io/fs"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// normalizeProjectName trims and NFC-normalizes name and checks that it can
// be used as a file name prefix inside the prompts directory.
func normalizeProjectName(name string) (string, error) {
	n := norm.NFC.String(strings.TrimSpace(name))
	if n == "" {
		return "", fmt.Errorf("%w: empty name", ErrInvalidProjectName)
	}
	if n == "." || n == ".." || strings.ContainsAny(n, `/\`) || strings.ContainsRune(n, 0) {
		return "", fmt.Errorf("%w: %q", ErrInvalidProjectName, name)
	}
	if !fs.ValidPath(projectSpecFile(n)) {
		return "", fmt.Errorf("%w: %q", ErrInvalidProjectName, name)
	}
	return n, nil
}
