package linker

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/ezlink/pkg/errors"
	"github.com/arthur-debert/ezlink/pkg/logging"
	"github.com/arthur-debert/ezlink/pkg/types"
)

// Creator makes one symlink per call
type Creator struct {
	fs     types.FS
	logger zerolog.Logger
}

// NewCreator creates a link creator working on fs
func NewCreator(fs types.FS) *Creator {
	return &Creator{
		fs:     fs,
		logger: logging.GetLogger("linker"),
	}
}

// CreateLink makes destination a symlink to source and returns the kind it
// used. Missing parent directories of destination are created; the ones
// created here are removed again if the link cannot be made.
func (c *Creator) CreateLink(source, destination string, kind types.SymlinkType) (types.SymlinkType, error) {
	resolved, err := c.resolveKind(source, kind)
	if err != nil {
		return kind, err
	}

	parent := filepath.Dir(destination)
	created := c.missingAncestors(parent)

	if err := c.fs.MkdirAll(parent, 0755); err != nil {
		c.logger.Error().Err(err).Str("parent", parent).Msg("Failed to create parent directory")
		c.cleanup(created)
		return resolved, errors.Wrap(err, errors.ErrIO, "cannot create parent directory").
			WithDetail("path", parent)
	}
	if len(created) > 0 {
		c.logger.Debug().Str("parent", parent).Int("created", len(created)).Msg("Created parent directories")
	}

	switch resolved {
	case types.SymlinkDirectory:
		err = c.fs.SymlinkDir(source, destination)
	default:
		err = c.fs.SymlinkFile(source, destination)
	}
	if err != nil {
		c.logger.Error().
			Err(err).
			Str("source", source).
			Str("destination", destination).
			Str("kind", resolved.String()).
			Msg("Failed to create symlink")
		c.cleanup(created)
		return resolved, errors.Wrap(err, errors.ErrIO, "cannot create symlink").
			WithDetail("source", source).
			WithDetail("destination", destination)
	}

	c.logger.Info().
		Str("source", source).
		Str("destination", destination).
		Str("kind", resolved.String()).
		Msg("Symlink created")
	return resolved, nil
}

// resolveKind turns SymlinkAuto into file or directory by statting source
func (c *Creator) resolveKind(source string, kind types.SymlinkType) (types.SymlinkType, error) {
	if kind != types.SymlinkAuto {
		return kind, nil
	}

	info, err := c.fs.Stat(source)
	if err != nil {
		return kind, errors.Wrap(err, errors.ErrIO, "cannot inspect source").
			WithDetail("source", source)
	}
	if info.IsDir() {
		return types.SymlinkDirectory, nil
	}
	return types.SymlinkFile, nil
}

// missingAncestors lists dir and its ancestors that do not exist yet,
// deepest first
func (c *Creator) missingAncestors(dir string) []string {
	var missing []string
	for {
		if _, err := c.fs.Lstat(dir); err == nil || !os.IsNotExist(err) {
			return missing
		}
		missing = append(missing, dir)
		next := filepath.Dir(dir)
		if next == dir {
			return missing
		}
		dir = next
	}
}

// cleanup removes directories created by this call, deepest first. Remove
// fails on non-empty directories, which is what we want.
func (c *Creator) cleanup(created []string) {
	for _, dir := range created {
		if err := c.fs.Remove(dir); err != nil && !os.IsNotExist(err) {
			c.logger.Warn().Err(err).Str("dir", dir).Msg("Could not remove parent directory after failed link")
			return
		}
	}
}
