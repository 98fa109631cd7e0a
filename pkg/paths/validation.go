package paths

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/ezlink/pkg/errors"
)

// MaxPathLength is the longest path accepted (common filesystem limit)
const MaxPathLength = 4096

// ValidatePath performs structural validation on a path.
// It checks for:
// - Empty paths
// - Null bytes
// - Excessive path length
func ValidatePath(path string) error {
	if path == "" {
		return errors.New(errors.ErrMissingInput, "path cannot be empty")
	}

	if strings.Contains(path, "\x00") {
		return errors.New(errors.ErrInvalidInput, "path contains null bytes")
	}

	if len(path) > MaxPathLength {
		return errors.New(errors.ErrInvalidInput, "path exceeds maximum length")
	}

	return nil
}

// SanitizePath attempts to clean and make a path safe for use.
// It:
// - Trims surrounding whitespace
// - Expands a leading ~
// - Resolves . and .. elements and redundant separators
func SanitizePath(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}

	return filepath.Clean(ExpandHome(path))
}

// ResolvePath sanitizes path and makes it absolute against the working
// directory. Link targets are stored as given, so a relative source would
// be read relative to the link's own directory instead. Empty input stays
// empty for the validator to report.
func ResolvePath(path string) (string, error) {
	path = SanitizePath(path)
	if path == "" {
		return "", nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInvalidInput, "cannot resolve path").
			WithDetail("path", path)
	}
	return abs, nil
}

// ContainsPath checks if child is parent or lies below it.
// Both paths are made absolute before comparison.
func ContainsPath(parent, child string) bool {
	parent, err := filepath.Abs(SanitizePath(parent))
	if err != nil {
		return false
	}
	child, err = filepath.Abs(SanitizePath(child))
	if err != nil {
		return false
	}

	rel, err := filepath.Rel(parent, child)
	if err != nil {
		return false
	}

	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
