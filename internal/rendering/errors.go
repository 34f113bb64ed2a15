// Package rendering fills text templates with a serialized résumé.
package rendering

import "fmt"

// TemplateError represents an error reading or parsing a template file
type TemplateError struct {
	Path    string
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s: %s", e.Path, e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// RenderError represents a failure executing a template or writing its output
type RenderError struct {
	Template string
	Message  string
	Cause    error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %s: %v", e.Template, e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s: %s", e.Template, e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
