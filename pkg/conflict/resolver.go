package conflict

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize/english"

	"github.com/arthur-debert/ezlink/pkg/errors"
	"github.com/arthur-debert/ezlink/pkg/logging"
	"github.com/arthur-debert/ezlink/pkg/types"
)

// Resolver computes the conflict state of a destination path
type Resolver struct {
	fs types.FS
}

// NewResolver creates a resolver that inspects fs
func NewResolver(fs types.FS) *Resolver {
	return &Resolver{fs: fs}
}

// Resolve reports whether anything already exists at destination.
// Errors other than "does not exist" are returned as IO errors.
func (r *Resolver) Resolve(destination string) (types.ConflictState, error) {
	logger := logging.GetLogger("conflict.resolver")

	_, err := r.fs.Lstat(destination)
	switch {
	case err == nil:
		logger.Debug().
			Str("destination", destination).
			Msg("Destination exists, confirmation required")
		return types.DestinationExists, nil
	case os.IsNotExist(err):
		logger.Trace().
			Str("destination", destination).
			Msg("Destination is free")
		return types.NoConflict, nil
	default:
		logger.Error().
			Err(err).
			Str("destination", destination).
			Msg("Error checking destination")
		return types.NoConflict, errors.Wrap(err, errors.ErrIO, "cannot inspect destination").
			WithDetail("destination", destination)
	}
}

// Describe returns a short description of what is at destination, for the
// confirmation prompt. It returns "" when nothing is there.
func (r *Resolver) Describe(destination string) string {
	info, err := r.fs.Lstat(destination)
	if err != nil {
		return ""
	}

	switch {
	case info.Mode()&os.ModeSymlink != 0:
		target, err := r.fs.Readlink(destination)
		if err != nil {
			return fmt.Sprintf("%s is a symlink.", destination)
		}
		return fmt.Sprintf("%s is a symlink to %s.", destination, target)
	case info.IsDir():
		entries, err := r.fs.ReadDir(destination)
		if err != nil {
			return fmt.Sprintf("%s is a directory.", destination)
		}
		return fmt.Sprintf("%s is a directory with %s.", destination, english.Plural(len(entries), "entry", "entries"))
	default:
		return fmt.Sprintf("%s is a file, not a directory; it cannot be merged.", destination)
	}
}
