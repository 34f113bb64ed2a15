// Package cv provides the validated résumé data model and its serialization engine.
package cv

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Every error returned by this package wraps exactly one of them.
var (
	ErrInvalidType      = errors.New("invalid type")
	ErrInvalidFormat    = errors.New("invalid format")
	ErrUnknownEnumValue = errors.New("unknown enum value")
	ErrEmptyCollection  = errors.New("collection is empty")
	ErrNotFound         = errors.New("value not found")
	ErrMissingField     = errors.New("missing field")
	ErrUnknownField     = errors.New("unknown field")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrIndexOutOfRange  = errors.New("index out of range")
)

// ValidationError describes a rejected write or load step on a single field
type ValidationError struct {
	Field   string
	Kind    error
	Message string
	// Allowed lists the accepted values for ErrUnknownEnumValue failures
	Allowed []string
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation error: ")
	if e.Field != "" {
		sb.WriteString(fmt.Sprintf("'%s': ", e.Field))
	}
	sb.WriteString(e.Message)
	if len(e.Allowed) > 0 {
		sb.WriteString(fmt.Sprintf(" (allowed: %s)", strings.Join(e.Allowed, ", ")))
	}
	return sb.String()
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

func newError(kind error, field, format string, args ...any) *ValidationError {
	return &ValidationError{
		Field:   field,
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// withPath prefixes the field of a ValidationError with the location of the
// element that produced it, e.g. "works[1].projects[0]" + "start".
func withPath(err error, path string) error {
	var ve *ValidationError
	if !errors.As(err, &ve) {
		return fmt.Errorf("%s: %w", path, err)
	}
	out := *ve
	if out.Field == "" {
		out.Field = path
	} else {
		out.Field = path + "." + out.Field
	}
	return &out
}
