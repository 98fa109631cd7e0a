package engine

import (
	"github.com/rs/zerolog"

	"github.com/arthur-debert/ezlink/pkg/conflict"
	"github.com/arthur-debert/ezlink/pkg/errors"
	"github.com/arthur-debert/ezlink/pkg/filesystem"
	"github.com/arthur-debert/ezlink/pkg/history"
	"github.com/arthur-debert/ezlink/pkg/linker"
	"github.com/arthur-debert/ezlink/pkg/logging"
	"github.com/arthur-debert/ezlink/pkg/merge"
	"github.com/arthur-debert/ezlink/pkg/paths"
	"github.com/arthur-debert/ezlink/pkg/types"
)

// Operator-facing messages
const (
	MsgLinked        = "Symlink created successfully!"
	MsgMergedLinked  = "Folders merged and symlink created successfully!"
	MsgConfirmMerge  = "Destination already exists. Do you want to merge its contents into the source?"
	MsgCancelled     = "Operation cancelled."
	MsgPending       = "A merge confirmation is already pending. Answer it first."
	MsgNothingToDo   = "There is no request waiting for confirmation."
	MsgMergeFailed   = "Error merging folders: "
	MsgRemoveFailed  = "Error removing original destination folder: "
	MsgLinkFailed    = "Error creating symlink: "
	MsgRelinkFailed  = "Error creating symlink after merge: "
	MsgConflictCheck = "Error checking destination: "
)

// Options configures an Engine
type Options struct {
	// FS is the filesystem all components work on; the OS filesystem when nil
	FS types.FS
}

// Engine processes link requests one at a time
type Engine struct {
	validator *paths.Validator
	resolver  *conflict.Resolver
	merger    *merge.Executor
	linker    *linker.Creator
	history   *history.Log

	state   types.EngineState
	pending *types.LinkRequest
	logger  zerolog.Logger
}

// New creates an idle engine with an empty history
func New(opts Options) *Engine {
	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	return &Engine{
		validator: paths.NewValidator(fs),
		resolver:  conflict.NewResolver(fs),
		merger:    merge.NewExecutor(fs),
		linker:    linker.NewCreator(fs),
		history:   history.New(),
		state:     types.StateIdle,
		logger:    logging.GetLogger("engine"),
	}
}

// State returns where the engine is in its workflow
func (e *Engine) State() types.EngineState {
	return e.state
}

// Pending returns the request waiting for ConfirmMerge, if any
func (e *Engine) Pending() (types.LinkRequest, bool) {
	if e.pending == nil {
		return types.LinkRequest{}, false
	}
	return *e.pending, true
}

// RecentLinks returns the last successful links, most recent last
func (e *Engine) RecentLinks() []types.HistoryEntry {
	return e.history.Items()
}

// RequestLink starts a request to make destination a link to source.
// If the destination is occupied the request is parked and the outcome
// asks for confirmation; nothing is touched until ConfirmMerge.
func (e *Engine) RequestLink(source, destination string, kind types.SymlinkType) types.Outcome {
	req := types.LinkRequest{
		Source:      paths.SanitizePath(source),
		Destination: paths.SanitizePath(destination),
		Type:        kind,
	}

	if e.state == types.StateConfirmationPending {
		e.logger.Warn().
			Str("pending", e.pending.Destination).
			Str("requested", req.Destination).
			Msg("Rejecting request while a confirmation is pending")
		return types.Failure(MsgPending, req, errors.New(errors.ErrConfirmPending, MsgPending))
	}

	e.transition(types.StateValidating)

	if err := resolve(&req); err != nil {
		return e.finish(types.Failure(errors.Cause(err), req, err))
	}

	if _, err := e.validator.Validate(req.Source, req.Destination); err != nil {
		return e.finish(types.Failure(errors.Cause(err), req, err))
	}

	state, err := e.resolver.Resolve(req.Destination)
	if err != nil {
		return e.finish(types.Failure(MsgConflictCheck+errors.Cause(err), req, err))
	}

	if state == types.DestinationExists {
		e.pending = &req
		e.transition(types.StateConfirmationPending)

		prompt := MsgConfirmMerge
		if desc := e.resolver.Describe(req.Destination); desc != "" {
			prompt += " " + desc
		}
		return types.ConfirmationRequired(prompt, req)
	}

	return e.link(req, nil)
}

// ConfirmMerge answers the pending confirmation. Yes merges the destination
// into the source and then links; No cancels without touching anything.
func (e *Engine) ConfirmMerge(approved bool) types.Outcome {
	if e.pending == nil {
		return types.Failure(MsgNothingToDo, types.LinkRequest{}, errors.New(errors.ErrNoPendingRequest, MsgNothingToDo))
	}

	req := *e.pending
	e.pending = nil

	if !approved {
		e.logger.Info().Str("destination", req.Destination).Msg("Merge declined")
		return e.finish(types.Failure(MsgCancelled, req, errors.New(errors.ErrCancelled, MsgCancelled)))
	}

	e.transition(types.StateLinking)

	report, err := e.merger.Merge(req.Destination, req.Source)
	if err != nil {
		msg := MsgMergeFailed
		if merge.FailedPhase(err) == merge.PhaseRemove {
			msg = MsgRemoveFailed
		}
		out := types.Failure(msg+errors.Cause(err), req, err)
		out.Merge = &report
		return e.finish(out)
	}

	return e.link(req, &report)
}

// link runs the link step; report is set when a merge came first
func (e *Engine) link(req types.LinkRequest, report *types.MergeReport) types.Outcome {
	if e.state != types.StateLinking {
		e.transition(types.StateLinking)
	}

	kind, err := e.linker.CreateLink(req.Source, req.Destination, req.Type)
	if err != nil {
		msg := MsgLinkFailed
		if report != nil {
			msg = MsgRelinkFailed
		}
		out := types.Failure(msg+errors.Cause(err), req, err)
		out.Merge = report
		return e.finish(out)
	}

	e.history.Record(req.Source, req.Destination)

	msg := MsgLinked
	if report != nil {
		msg = MsgMergedLinked
	}
	out := types.Success(msg, req, kind)
	out.Merge = report
	return e.finish(out)
}

// resolve makes both request paths absolute
func resolve(req *types.LinkRequest) error {
	source, err := paths.ResolvePath(req.Source)
	if err != nil {
		return err
	}
	destination, err := paths.ResolvePath(req.Destination)
	if err != nil {
		return err
	}
	req.Source, req.Destination = source, destination
	return nil
}

// finish passes through Done and back to Idle, handing out the outcome
func (e *Engine) finish(out types.Outcome) types.Outcome {
	e.transition(types.StateDone)

	event := e.logger.Debug()
	if out.IsError() {
		event = e.logger.Error().Str("code", string(out.Code))
	}
	event.
		Str("kind", out.Kind.String()).
		Str("source", out.Request.Source).
		Str("destination", out.Request.Destination).
		Msg(out.Message)

	e.transition(types.StateIdle)
	return out
}

func (e *Engine) transition(to types.EngineState) {
	e.logger.Debug().
		Str("from", e.state.String()).
		Str("to", to.String()).
		Msg("State transition")
	e.state = to
}
