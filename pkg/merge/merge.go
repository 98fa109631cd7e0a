package merge

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/ezlink/pkg/errors"
	"github.com/arthur-debert/ezlink/pkg/logging"
	"github.com/arthur-debert/ezlink/pkg/paths"
	"github.com/arthur-debert/ezlink/pkg/types"
)

// Phases recorded in the "phase" detail of merge errors
const (
	PhaseCheck  = "check"
	PhaseCopy   = "copy"
	PhaseRemove = "remove"
)

// Executor copies a destination tree into a source tree and then removes it
type Executor struct {
	fs     types.FS
	logger zerolog.Logger
}

// NewExecutor creates an executor working on fs
func NewExecutor(fs types.FS) *Executor {
	return &Executor{
		fs:     fs,
		logger: logging.GetLogger("merge"),
	}
}

// Merge copies everything under destination into source, then removes
// destination. Every failure is an IO error carrying the phase it happened in.
func (e *Executor) Merge(destination, source string) (types.MergeReport, error) {
	done := logging.LogOperationStart(e.logger, "merge")
	defer done()

	var report types.MergeReport

	if err := e.check(destination, source); err != nil {
		return report, err
	}

	overwritten := mapset.NewThreadUnsafeSet[string]()
	if err := e.copyTree(destination, source, "", &report, overwritten); err != nil {
		report.Overwritten = sorted(overwritten)
		return report, err
	}
	report.Overwritten = sorted(overwritten)

	e.logger.Info().
		Str("from", destination).
		Str("into", source).
		Int("files", report.FilesCopied).
		Int("dirs", report.DirsCreated).
		Int("links", report.LinksCopied).
		Int("overwritten", len(report.Overwritten)).
		Str("size", humanize.Bytes(uint64(report.BytesCopied))).
		Msg("Copied destination tree into source")

	if err := e.fs.RemoveAll(destination); err != nil {
		e.logger.Error().Err(err).Str("destination", destination).Msg("Failed to remove merged destination")
		return report, phaseError(err, PhaseRemove, "failed to remove destination after merge", destination)
	}

	e.logger.Debug().Str("destination", destination).Msg("Removed merged destination")
	return report, nil
}

// check refuses merges that cannot work or would eat their own input
func (e *Executor) check(destination, source string) error {
	destInfo, err := e.fs.Stat(destination)
	if err != nil {
		return phaseError(err, PhaseCheck, "cannot read destination", destination)
	}
	if !destInfo.IsDir() {
		return phaseError(nil, PhaseCheck, "destination is not a directory, nothing to merge", destination)
	}

	srcInfo, err := e.fs.Stat(source)
	if err != nil {
		return phaseError(err, PhaseCheck, "cannot read source", source)
	}
	if !srcInfo.IsDir() {
		return phaseError(nil, PhaseCheck, "source is not a directory, cannot merge into it", source)
	}

	if os.SameFile(destInfo, srcInfo) || filepath.Clean(destination) == filepath.Clean(source) {
		return phaseError(nil, PhaseCheck, "destination and source are the same directory", destination)
	}

	if paths.ContainsPath(destination, source) {
		return phaseError(nil, PhaseCheck, "source is inside destination", source)
	}

	return nil
}

// copyTree walks fromDir depth-first in name order, mirroring it under intoDir.
// rel is the slash path below the merge roots, used for reporting.
func (e *Executor) copyTree(fromDir, intoDir, rel string, report *types.MergeReport, overwritten mapset.Set[string]) error {
	entries, err := e.fs.ReadDir(fromDir)
	if err != nil {
		return phaseError(err, PhaseCopy, "cannot list directory", fromDir)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, entry := range entries {
		from := filepath.Join(fromDir, entry.Name())
		into := filepath.Join(intoDir, entry.Name())
		entryRel := entry.Name()
		if rel != "" {
			entryRel = rel + "/" + entry.Name()
		}

		info, err := e.fs.Lstat(from)
		if err != nil {
			return phaseError(err, PhaseCopy, "cannot read entry", from)
		}

		existing, existErr := e.fs.Lstat(into)
		exists := existErr == nil
		if existErr != nil && !os.IsNotExist(existErr) {
			return phaseError(existErr, PhaseCopy, "cannot inspect target", into)
		}

		switch {
		case info.IsDir():
			if exists && !existing.IsDir() {
				return phaseError(nil, PhaseCopy, "cannot merge a directory over a file", into)
			}
			if !exists {
				if err := e.fs.MkdirAll(into, info.Mode().Perm()); err != nil {
					return phaseError(err, PhaseCopy, "cannot create directory", into)
				}
				report.DirsCreated++
			}
			if err := e.copyTree(from, into, entryRel, report, overwritten); err != nil {
				return err
			}

		case info.Mode()&fs.ModeSymlink != 0:
			if err := e.replaceable(into, existing, exists, entryRel, overwritten); err != nil {
				return err
			}
			target, err := e.fs.Readlink(from)
			if err != nil {
				return phaseError(err, PhaseCopy, "cannot read link", from)
			}
			if err := e.fs.Symlink(target, into); err != nil {
				return phaseError(err, PhaseCopy, "cannot recreate link", into)
			}
			report.LinksCopied++

		default:
			if err := e.replaceable(into, existing, exists, entryRel, overwritten); err != nil {
				return err
			}
			n, err := e.copyFile(from, into, info.Mode().Perm())
			if err != nil {
				return err
			}
			report.FilesCopied++
			report.BytesCopied += n
		}

		e.logger.Trace().Str("entry", entryRel).Msg("Merged entry")
	}

	return nil
}

// copyFile streams one regular file; into is created or truncated
func (e *Executor) copyFile(from, into string, perm fs.FileMode) (int64, error) {
	in, err := e.fs.Open(from)
	if err != nil {
		return 0, phaseError(err, PhaseCopy, "cannot read file", from)
	}
	defer func() {
		_ = in.Close()
	}()

	out, err := e.fs.Create(into, perm)
	if err != nil {
		return 0, phaseError(err, PhaseCopy, "cannot write file", into)
	}

	n, err := io.Copy(out, in)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return n, phaseError(err, PhaseCopy, "cannot write file", into)
	}
	return n, nil
}

// replaceable clears a colliding non-directory so the incoming entry can
// take its place, recording the collision.
func (e *Executor) replaceable(into string, existing fs.FileInfo, exists bool, rel string, overwritten mapset.Set[string]) error {
	if !exists {
		return nil
	}
	if existing.IsDir() {
		return phaseError(nil, PhaseCopy, "cannot replace a directory with a file", into)
	}

	e.logger.Warn().
		Str("path", into).
		Msg("Merge overwrites existing file in source")
	overwritten.Add(rel)

	if err := e.fs.Remove(into); err != nil {
		return phaseError(err, PhaseCopy, "cannot replace existing file", into)
	}
	return nil
}

// FailedPhase returns the phase a merge error came from, or "" if err is not
// a merge error.
func FailedPhase(err error) string {
	v, _ := errors.GetDetail(err, "phase")
	phase, _ := v.(string)
	return phase
}

func phaseError(err error, phase, message, path string) error {
	var linkErr *errors.LinkError
	if err != nil {
		linkErr = errors.Wrap(err, errors.ErrIO, message)
	} else {
		linkErr = errors.New(errors.ErrIO, message)
	}
	return linkErr.WithDetail("phase", phase).WithDetail("path", path)
}

func sorted(set mapset.Set[string]) []string {
	if set.Cardinality() == 0 {
		return nil
	}
	out := set.ToSlice()
	sort.Strings(out)
	return out
}
