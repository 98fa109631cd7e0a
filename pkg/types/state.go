package types

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
)

// ConflictState is derived per request from the destination path
type ConflictState int

const (
	// NoConflict means nothing exists at the destination
	NoConflict ConflictState = iota
	// DestinationExists means a file, directory or link is in the way
	DestinationExists
)

// String returns the string representation of the conflict state
func (c ConflictState) String() string {
	switch c {
	case NoConflict:
		return "no-conflict"
	case DestinationExists:
		return "destination-exists"
	default:
		return "unknown"
	}
}

// EngineState is the position of the engine in its request workflow
type EngineState int

const (
	StateIdle EngineState = iota
	StateValidating
	StateConfirmationPending
	StateLinking
	StateDone
)

// String returns the string representation of the engine state
func (s EngineState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateConfirmationPending:
		return "confirmation-pending"
	case StateLinking:
		return "linking"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// MergeReport summarizes a merge of the destination tree into the source
type MergeReport struct {
	FilesCopied int   `json:"files_copied" yaml:"files_copied"`
	DirsCreated int   `json:"dirs_created" yaml:"dirs_created"`
	LinksCopied int   `json:"links_copied" yaml:"links_copied"`
	BytesCopied int64 `json:"bytes_copied" yaml:"bytes_copied"`

	// Overwritten lists paths, relative to the source, that existed before
	// the merge and were replaced by the destination's copy.
	Overwritten []string `json:"overwritten,omitempty" yaml:"overwritten,omitempty"`
}

// Summary renders the report as one line, e.g. "3 files, 1 directory (12 kB)"
func (r MergeReport) Summary() string {
	s := fmt.Sprintf("%d %s, %d %s",
		r.FilesCopied, english.PluralWord(r.FilesCopied, "file", ""),
		r.DirsCreated, english.PluralWord(r.DirsCreated, "directory", "directories"))
	if r.LinksCopied > 0 {
		s += fmt.Sprintf(", %d %s", r.LinksCopied, english.PluralWord(r.LinksCopied, "link", ""))
	}
	s += fmt.Sprintf(" (%s)", humanize.Bytes(uint64(r.BytesCopied)))
	if n := len(r.Overwritten); n > 0 {
		s += fmt.Sprintf(", %d overwritten", n)
	}
	return s
}
