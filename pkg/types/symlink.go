package types

import (
	"strings"

	"github.com/arthur-debert/ezlink/pkg/errors"
)

// SymlinkType selects the kind of link to create
type SymlinkType int

const (
	// SymlinkAuto inspects the source at creation time
	SymlinkAuto SymlinkType = iota
	// SymlinkFile forces a file link
	SymlinkFile
	// SymlinkDirectory forces a directory link
	SymlinkDirectory
)

// String returns the string representation of the symlink type
func (t SymlinkType) String() string {
	switch t {
	case SymlinkAuto:
		return "auto"
	case SymlinkFile:
		return "file"
	case SymlinkDirectory:
		return "dir"
	default:
		return "unknown"
	}
}

// ParseSymlinkType parses a string into a SymlinkType value
func ParseSymlinkType(s string) (SymlinkType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return SymlinkAuto, nil
	case "file", "f":
		return SymlinkFile, nil
	case "dir", "directory", "d":
		return SymlinkDirectory, nil
	default:
		return SymlinkAuto, errors.Newf(errors.ErrInvalidInput,
			"unknown symlink type %q (expected auto, file or dir)", s)
	}
}

// MarshalText implements encoding.TextMarshaler
func (t SymlinkType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *SymlinkType) UnmarshalText(text []byte) error {
	parsed, err := ParseSymlinkType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// SourceKind is what the validator found at the source path
type SourceKind int

const (
	// SourceFile is anything that is not a directory
	SourceFile SourceKind = iota
	// SourceDirectory is a directory, or a symlink resolving to one
	SourceDirectory
)

// String returns the string representation of the source kind
func (k SourceKind) String() string {
	if k == SourceDirectory {
		return "directory"
	}
	return "file"
}

// LinkRequest is one user action: link Destination to Source
type LinkRequest struct {
	Source      string      `json:"source" yaml:"source"`
	Destination string      `json:"destination" yaml:"destination"`
	Type        SymlinkType `json:"type" yaml:"type"`
}

// HistoryEntry records a successfully created link
type HistoryEntry struct {
	Source      string `json:"source" yaml:"source"`
	Destination string `json:"destination" yaml:"destination"`
}

// String renders the entry the way the history list shows it
func (e HistoryEntry) String() string {
	return e.Source + " -> " + e.Destination
}
