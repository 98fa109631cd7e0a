// Package opener shows a path in the platform's file manager. It is a side
// channel of the shell and never touches the link engine.
package opener

import (
	"os"
	"os/exec"
	"runtime"

	"github.com/google/shlex"

	"github.com/arthur-debert/ezlink/pkg/errors"
	"github.com/arthur-debert/ezlink/pkg/logging"
	"github.com/arthur-debert/ezlink/pkg/paths"
	"github.com/arthur-debert/ezlink/pkg/types"
)

// MsgPathMissing is returned when the path to open does not exist
const MsgPathMissing = "Path does not exist"

// Runner starts a detached process
type Runner interface {
	Start(name string, args ...string) error
}

// ExecRunner starts processes with os/exec and does not wait for them
type ExecRunner struct{}

// Start launches name with args and releases it
func (ExecRunner) Start(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}

// Options configures an Opener
type Options struct {
	// Command replaces the platform default; extra words are passed as
	// arguments before the path
	Command string

	Runner Runner
	FS     types.FS

	// GOOS selects the platform default; runtime.GOOS when empty
	GOOS string
}

// Opener opens paths in a file manager
type Opener struct {
	opts Options
}

// New creates an opener
func New(opts Options) *Opener {
	if opts.Runner == nil {
		opts.Runner = ExecRunner{}
	}
	if opts.GOOS == "" {
		opts.GOOS = runtime.GOOS
	}
	return &Opener{opts: opts}
}

// Open shows path in the file manager
func (o *Opener) Open(path string) error {
	logger := logging.GetLogger("opener")
	path = paths.SanitizePath(path)

	if !o.exists(path) {
		return errors.New(errors.ErrOpenFailed, MsgPathMissing).WithDetail("path", path)
	}

	name, args, label, err := o.command()
	if err != nil {
		logger.Error().Err(err).Str("command", o.opts.Command).Msg("Invalid opener command")
		return errors.Wrap(err, errors.ErrOpenFailed, "Invalid opener command").
			WithDetail("command", o.opts.Command)
	}
	args = append(args, path)

	logger.Debug().Str("command", name).Strs("args", args).Msg("Opening path")

	if err := o.opts.Runner.Start(name, args...); err != nil {
		logger.Error().Err(err).Str("command", name).Msg("Failed to open path")
		return errors.Wrapf(err, errors.ErrOpenFailed, "Failed to open %s", label).
			WithDetail("path", path)
	}
	return nil
}

// Message renders an Open error the way the shell shows it,
// e.g. "Failed to open file manager: exec: "xdg-open": executable file not found in $PATH"
func Message(err error) string {
	linkErr, ok := err.(*errors.LinkError)
	if !ok {
		return err.Error()
	}
	if linkErr.Wrapped == nil {
		return linkErr.Message
	}
	return linkErr.Message + ": " + linkErr.Wrapped.Error()
}

func (o *Opener) exists(path string) bool {
	if path == "" {
		return false
	}
	if o.opts.FS != nil {
		_, err := o.opts.FS.Stat(path)
		return err == nil
	}
	_, err := os.Stat(path)
	return err == nil
}

// command returns the program, its leading arguments and the name used in
// error messages. A configured command is split with shell quoting rules.
func (o *Opener) command() (string, []string, string, error) {
	fields, err := shlex.Split(o.opts.Command)
	if err != nil {
		return "", nil, "", err
	}
	if len(fields) > 0 {
		return fields[0], fields[1:], fields[0], nil
	}

	switch o.opts.GOOS {
	case "windows":
		return "explorer", nil, "file explorer", nil
	case "darwin":
		return "open", nil, "Finder", nil
	default:
		return "xdg-open", nil, "file manager", nil
	}
}
