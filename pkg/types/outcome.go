package types

import (
	"github.com/arthur-debert/ezlink/pkg/errors"
)

// OutcomeKind tags an Outcome
type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeError
	OutcomeConfirmationRequired
)

// String returns the string representation of the outcome kind
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeError:
		return "error"
	case OutcomeConfirmationRequired:
		return "confirmation_required"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler
func (k OutcomeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Outcome is the single result the engine hands back for every call.
// Shells render it and drop it; it carries no state of its own.
type Outcome struct {
	Kind    OutcomeKind      `json:"kind" yaml:"kind"`
	Message string           `json:"message" yaml:"message"`
	Code    errors.ErrorCode `json:"code,omitempty" yaml:"code,omitempty"`
	Request LinkRequest      `json:"request" yaml:"request"`

	// LinkType is the kind actually created, Auto resolved
	LinkType *SymlinkType `json:"link_type,omitempty" yaml:"link_type,omitempty"`
	Merge    *MergeReport `json:"merge,omitempty" yaml:"merge,omitempty"`

	Err error `json:"-" yaml:"-"`
}

// Success builds a success outcome for req
func Success(message string, req LinkRequest, linkType SymlinkType) Outcome {
	return Outcome{
		Kind:     OutcomeSuccess,
		Message:  message,
		Request:  req,
		LinkType: &linkType,
	}
}

// Failure builds an error outcome; the code is taken from err
func Failure(message string, req LinkRequest, err error) Outcome {
	return Outcome{
		Kind:    OutcomeError,
		Message: message,
		Code:    errors.GetErrorCode(err),
		Request: req,
		Err:     err,
	}
}

// ConfirmationRequired builds the outcome that suspends a request
func ConfirmationRequired(prompt string, req LinkRequest) Outcome {
	return Outcome{
		Kind:    OutcomeConfirmationRequired,
		Message: prompt,
		Request: req,
	}
}

// IsSuccess reports whether the outcome is a success
func (o Outcome) IsSuccess() bool { return o.Kind == OutcomeSuccess }

// IsError reports whether the outcome is an error
func (o Outcome) IsError() bool { return o.Kind == OutcomeError }

// NeedsConfirmation reports whether the request is waiting for ConfirmMerge
func (o Outcome) NeedsConfirmation() bool { return o.Kind == OutcomeConfirmationRequired }
