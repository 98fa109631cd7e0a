// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/ezlink/pkg/errors"
	"github.com/arthur-debert/ezlink/pkg/types"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders any result type as plain text
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
		if _, err := fmt.Fprintln(r.output, o.Message); err != nil {
			return err
		}
		kind := ""
		if o.LinkType != nil {
			kind = fmt.Sprintf(" (%s link)", o.LinkType)
		}
		if _, err := fmt.Fprintf(r.output, "  %s -> %s%s\n", o.Request.Destination, o.Request.Source, kind); err != nil {
			return err
		}
		if o.Merge != nil {
			_, err := fmt.Fprintf(r.output, "  merged: %s\n", o.Merge.Summary())
			return err
		}
		return nil
	case types.OutcomeConfirmationRequired:
		_, err := fmt.Fprintln(r.output, o.Message)
		return err
	default:
		_, err := fmt.Fprintf(r.output, "Error: %s\n", o.Message)
		return err
	}
}

func (r *Renderer) renderHistory(entries []types.HistoryEntry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(r.output, "No links created yet.")
		return err
	}
	if _, err := fmt.Fprintln(r.output, "Recent links:"); err != nil {
		return err
	}
	for i, e := range entries {
		if _, err := fmt.Fprintf(r.output, "  %d. %s\n", i+1, e); err != nil {
			return err
		}
	}
	return nil
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %s\n", errors.Cause(err))
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
