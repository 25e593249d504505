package uri

import (
	"github.com/ghettovoice/uriparser/internal/errorutil"
	"github.com/ghettovoice/uriparser/internal/grammar"
)

// Error is a sentinel error type of the package.
type Error = errorutil.Error

const (
	// ErrMalformedInput is returned when the input is not a valid URI reference.
	ErrMalformedInput = grammar.ErrMalformedInput
	// ErrConversion is returned when a filename and a URI can not be converted to each other.
	ErrConversion Error = "filename conversion failed"
	// ErrUnsupportedInput is returned when the form encoder gets a value of unsupported shape.
	ErrUnsupportedInput Error = "unsupported input"
	// ErrInvalidArgument is returned when an invalid argument is provided.
	ErrInvalidArgument = errorutil.ErrInvalidArgument
)

// SyntaxError describes where parsing stopped.
// It wraps [ErrMalformedInput].
type SyntaxError = grammar.SyntaxError
