// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/ezlink/pkg/errors"
	"github.com/arthur-debert/ezlink/pkg/types"
)

// Renderer provides rich terminal output using lipgloss styles and pterm prefixes
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case types.Outcome:
		return r.renderOutcome(v)
	case *types.Outcome:
		return r.renderOutcome(*v)
	case []types.HistoryEntry:
		return r.renderHistory(v)
	default:
		// For unknown types, just print them
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) renderOutcome(o types.Outcome) error {
	switch o.Kind {
	case types.OutcomeSuccess:
		if _, err := fmt.Fprintf(r.output, "%s %s\n",
			pterm.Success.Prefix.Style.Sprint(" "+pterm.Success.Prefix.Text+" "),
			successStyle.Render(o.Message)); err != nil {
			return err
		}
		kind := ""
		if o.LinkType != nil {
			kind = dimStyle.Render(fmt.Sprintf("(%s link)", o.LinkType))
		}
		if _, err := fmt.Fprintf(r.output, "  %s → %s %s\n",
			pathStyle.Render(o.Request.Destination),
			pathStyle.Render(o.Request.Source),
			kind); err != nil {
			return err
		}
		if o.Merge != nil {
			_, err := fmt.Fprintf(r.output, "  %s\n", dimStyle.Render("merged "+o.Merge.Summary()))
			return err
		}
		return nil

	case types.OutcomeConfirmationRequired:
		_, err := fmt.Fprintf(r.output, "%s %s\n",
			pterm.Warning.Prefix.Style.Sprint(" "+pterm.Warning.Prefix.Text+" "),
			promptStyle.Render(o.Message))
		return err

	default:
		code := ""
		if o.Code != "" {
			code = " " + dimStyle.Render("["+string(o.Code)+"]")
		}
		_, err := fmt.Fprintf(r.output, "%s %s%s\n",
			pterm.Error.Prefix.Style.Sprint(" "+pterm.Error.Prefix.Text+" "),
			errorStyle.Render(o.Message),
			code)
		return err
	}
}

func (r *Renderer) renderHistory(entries []types.HistoryEntry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(r.output, dimStyle.Render("No links created yet."))
		return err
	}
	if _, err := fmt.Fprintln(r.output, headerStyle.Render("Recent links")); err != nil {
		return err
	}
	for i, e := range entries {
		if _, err := fmt.Fprintf(r.output, "  %s %s → %s\n",
			dimStyle.Render(fmt.Sprintf("%d.", i+1)),
			pathStyle.Render(e.Destination),
			pathStyle.Render(e.Source)); err != nil {
			return err
		}
	}
	return nil
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	code := errors.GetErrorCode(err)
	_, werr := fmt.Fprintf(r.output, "%s %s %s\n",
		pterm.Error.Prefix.Style.Sprint(" "+pterm.Error.Prefix.Text+" "),
		errorStyle.Render(errors.Cause(err)),
		dimStyle.Render("["+string(code)+"]"))
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintf(r.output, "%s %s\n",
		pterm.Info.Prefix.Style.Sprint(" "+pterm.Info.Prefix.Text+" "),
		msg)
	return err
}
