package paths

import (
	"os"

	"github.com/arthur-debert/ezlink/pkg/errors"
	"github.com/arthur-debert/ezlink/pkg/logging"
	"github.com/arthur-debert/ezlink/pkg/types"
)

// Messages shown to the operator for validation failures
const (
	MsgMissingInput   = "Please select both source and destination."
	MsgSourceNotFound = "Source does not exist."
)

// Validator checks a source/destination pair before any filesystem
// mutation. It only ever reads.
type Validator struct {
	fs types.FS
}

// NewValidator creates a validator reading through fs
func NewValidator(fs types.FS) *Validator {
	return &Validator{fs: fs}
}

// Validate checks that both paths are given and the source exists, and
// reports whether the source is a directory. A missing destination is the
// normal case and not an error.
func (v *Validator) Validate(source, destination string) (types.SourceKind, error) {
	logger := logging.GetLogger("paths.validator")

	if source == "" || destination == "" {
		return types.SourceFile, errors.New(errors.ErrMissingInput, MsgMissingInput).
			WithDetail("source", source).
			WithDetail("destination", destination)
	}

	for _, p := range []string{source, destination} {
		if err := ValidatePath(p); err != nil {
			return types.SourceFile, err
		}
	}

	// Stat follows links: a link to a directory is a directory source.
	info, err := v.fs.Stat(source)
	if err != nil {
		if os.IsNotExist(err) {
			return types.SourceFile, errors.New(errors.ErrSourceNotFound, MsgSourceNotFound).
				WithDetail("source", source)
		}
		return types.SourceFile, errors.Wrapf(err, errors.ErrIO, "failed to inspect source %s", source)
	}

	kind := types.SourceFile
	if info.IsDir() {
		kind = types.SourceDirectory
	}

	logger.Trace().
		Str("source", source).
		Str("destination", destination).
		Str("kind", kind.String()).
		Msg("request validated")

	return kind, nil
}
