// Package rendering fills text templates with a serialized résumé.
package rendering

import (
	"fmt"
	"strings"
	"text/template"
)

// Funcs returns the functions available to every résumé template.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"format_date": FormatDate,
		"client":      Client,
		"join":        Join,
		"latex":       EscapeLaTeX,
	}
}

// Confidential is printed for a confidential project without a redacted label
const Confidential = "Confidential"

// Client returns the label to print for a serialized project: its name when
// the project is not confidential, its redacted label otherwise. A project
// missing the confidential flag is treated as confidential.
func Client(project map[string]any) string {
	name, _ := project["name"].(string)
	redacted, _ := project["redacted"].(string)
	confidential, ok := project["confidential"].(bool)
	if !ok {
		confidential = true
	}
	if !confidential && name != "" {
		return name
	}
	if redacted != "" {
		return redacted
	}
	return Confidential
}

// Join concatenates the text form of every element of a serialized list.
func Join(items []any, sep string) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, toString(item))
	}
	return strings.Join(parts, sep)
}

func toString(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}
