// Package json provides machine-readable JSON output.
//
// Every value is written as one object tagged by "kind": an outcome
// ("success", "error", "confirmation_required"), "history" or "message".
// Scripts can branch on kind and ok without knowing the Go types.
package json

import (
	"encoding/json"
	stderrors "errors"
	"io"

	"github.com/arthur-debert/ezlink/pkg/errors"
	"github.com/arthur-debert/ezlink/pkg/types"
)

// outcomeDoc flattens an Outcome; the request paths sit at the top level
type outcomeDoc struct {
	Kind          types.OutcomeKind      `json:"kind"`
	OK            bool                   `json:"ok"`
	Message       string                 `json:"message"`
	Code          errors.ErrorCode       `json:"code,omitempty"`
	Source        string                 `json:"source,omitempty"`
	Destination   string                 `json:"destination,omitempty"`
	RequestedType *types.SymlinkType     `json:"requested_type,omitempty"`
	LinkType      *types.SymlinkType     `json:"link_type,omitempty"`
	Merge         *mergeDoc              `json:"merge,omitempty"`
	Details       map[string]interface{} `json:"details,omitempty"`
}

type mergeDoc struct {
	Summary string `json:"summary"`
	*types.MergeReport
}

type historyDoc struct {
	Kind  string               `json:"kind"`
	Links []types.HistoryEntry `json:"links"`
}

type errorDoc struct {
	Kind    string                 `json:"kind"`
	OK      bool                   `json:"ok"`
	Code    errors.ErrorCode       `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

type messageDoc struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Renderer provides JSON output for machine consumption
type Renderer struct {
	output  io.Writer
	encoder *json.Encoder
}

// New creates a new JSON renderer
func New(output io.Writer) (*Renderer, error) {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &Renderer{
		output:  output,
		encoder: encoder,
	}, nil
}

// RenderResult renders outcomes and history in their documented shape;
// anything else is encoded as is
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case types.Outcome:
		return r.encoder.Encode(newOutcomeDoc(v))
	case *types.Outcome:
		return r.encoder.Encode(newOutcomeDoc(*v))
	case []types.HistoryEntry:
		if v == nil {
			v = []types.HistoryEntry{}
		}
		return r.encoder.Encode(historyDoc{Kind: "history", Links: v})
	default:
		return r.encoder.Encode(result)
	}
}

// RenderError renders an error as JSON
func (r *Renderer) RenderError(err error) error {
	return r.encoder.Encode(errorDoc{
		Kind:    "error",
		Code:    errors.GetErrorCode(err),
		Message: errors.Cause(err),
		Details: details(err),
	})
}

// RenderMessage renders a simple message as JSON
func (r *Renderer) RenderMessage(msg string) error {
	return r.encoder.Encode(messageDoc{Kind: "message", Message: msg})
}

func newOutcomeDoc(o types.Outcome) outcomeDoc {
	doc := outcomeDoc{
		Kind:        o.Kind,
		OK:          o.IsSuccess(),
		Message:     o.Message,
		Code:        o.Code,
		Source:      o.Request.Source,
		Destination: o.Request.Destination,
		LinkType:    o.LinkType,
		Details:     details(o.Err),
	}
	if o.Request.Source != "" || o.Request.Destination != "" {
		requested := o.Request.Type
		doc.RequestedType = &requested
	}
	if o.Merge != nil {
		doc.Merge = &mergeDoc{Summary: o.Merge.Summary(), MergeReport: o.Merge}
	}
	return doc
}

func details(err error) map[string]interface{} {
	var linkErr *errors.LinkError
	if !stderrors.As(err, &linkErr) || len(linkErr.Details) == 0 {
		return nil
	}
	return linkErr.Details
}
