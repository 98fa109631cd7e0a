package ezlink

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/google/shlex"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/ezlink/pkg/engine"
	"github.com/arthur-debert/ezlink/pkg/errors"
	"github.com/arthur-debert/ezlink/pkg/logging"
	"github.com/arthur-debert/ezlink/pkg/opener"
	"github.com/arthur-debert/ezlink/pkg/types"
	"github.com/arthur-debert/ezlink/pkg/ui"
)

type sessionOptions struct {
	engine   *engine.Engine
	opener   *opener.Opener
	renderer ui.Renderer
	kind     types.SymlinkType

	// prompts receives the input prompt, kept off the rendered output
	prompts io.Writer
}

// session drives one engine from line-based input. Confirmations are
// answered by later lines, so history and the pending request live as
// long as the input does.
type session struct {
	sessionOptions
	logger zerolog.Logger
}

func newSession(opts sessionOptions) *session {
	if opts.prompts == nil {
		opts.prompts = io.Discard
	}
	return &session{
		sessionOptions: opts,
		logger:         logging.GetLogger("cmd.session"),
	}
}

// run reads commands until quit or end of input
func (s *session) run(in io.Reader) error {
	scanner := bufio.NewScanner(in)

	s.prompt()
	for scanner.Scan() {
		quit, err := s.handle(scanner.Text())
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
		s.prompt()
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf(MsgErrReadSession, err)
	}
	s.logger.Debug().Msg("Session input closed")
	return nil
}

func (s *session) prompt() {
	p := MsgSessionPrompt
	if s.engine.State() == types.StateConfirmationPending {
		p = MsgSessionPending
	}
	_, _ = fmt.Fprint(s.prompts, p)
}

// handle runs one input line; it reports whether the session should end.
// Only rendering failures are returned as errors.
func (s *session) handle(line string) (bool, error) {
	words, err := shlex.Split(line)
	if err != nil {
		return false, s.renderer.RenderError(
			errors.Wrap(err, errors.ErrInvalidInput, "could not parse command"))
	}
	if len(words) == 0 {
		return false, nil
	}

	s.logger.Trace().Strs("words", words).Msg("Session command")

	switch strings.ToLower(words[0]) {
	case "link", "ln":
		if len(words) < 3 || len(words) > 4 {
			return false, s.usage("link <source> <destination> [auto|file|dir]")
		}
		kind := s.kind
		if len(words) == 4 {
			if kind, err = types.ParseSymlinkType(words[3]); err != nil {
				return false, s.renderer.RenderError(err)
			}
		}
		return false, s.renderer.RenderResult(s.engine.RequestLink(words[1], words[2], kind))

	case "yes", "y":
		return false, s.renderer.RenderResult(s.engine.ConfirmMerge(true))

	case "no", "n":
		return false, s.renderer.RenderResult(s.engine.ConfirmMerge(false))

	case "history", "recent":
		return false, s.renderer.RenderResult(s.engine.RecentLinks())

	case "open":
		if len(words) != 2 {
			return false, s.usage("open <path>")
		}
		if err := s.opener.Open(words[1]); err != nil {
			return false, s.renderer.RenderResult(
				types.Failure(opener.Message(err), types.LinkRequest{}, err))
		}
		return false, s.renderer.RenderMessage(fmt.Sprintf(MsgOpened, words[1]))

	case "type":
		if len(words) != 2 {
			return false, s.usage("type <auto|file|dir>")
		}
		kind, err := types.ParseSymlinkType(words[1])
		if err != nil {
			return false, s.renderer.RenderError(err)
		}
		s.kind = kind
		return false, s.renderer.RenderMessage(fmt.Sprintf(MsgTypeSet, kind))

	case "help", "?":
		return false, s.renderer.RenderMessage(MsgSessionHelp)

	case "quit", "exit", "q":
		return true, nil

	default:
		return false, s.renderer.RenderMessage(fmt.Sprintf(MsgUnknownCommand, words[0]))
	}
}

func (s *session) usage(syntax string) error {
	return s.renderer.RenderMessage(fmt.Sprintf(MsgSessionUsage, syntax))
}
