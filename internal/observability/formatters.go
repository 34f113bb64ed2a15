// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/cv-builder/internal/cv"
	"github.com/jonathan/cv-builder/internal/rendering"
	"github.com/jonathan/cv-builder/internal/schemas"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most width runes, marking the cut with "..."
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func period(start int, end *int) string {
	return fmt.Sprintf("%s - %s", rendering.FormatDate(start), rendering.FormatDate(end))
}

// PrintEmployee outputs a human-readable summary of a loaded résumé.
func (p *Printer) PrintEmployee(e *cv.Employee) {
	if e == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:      %s %s\n", deref(e.Firstname()), deref(e.Lastname())))
	sb.WriteString(fmt.Sprintf("Position:  %s\n", deref(e.Position())))
	sb.WriteString(fmt.Sprintf("Languages: %d  Skills: %d  Trainings: %d\n",
		len(e.Languages()), len(e.ITSkills()), len(e.Trainings())))
	sb.WriteString("\n")

	works := e.Works()
	if len(works) > 0 {
		sb.WriteString("Work Experience:\n")
		count := min(len(works), maxItemsToShow)
		for i := 0; i < count; i++ {
			w := works[i]
			sb.WriteString(fmt.Sprintf("  • %s (%s)\n", w.Employer(), period(w.Start(), w.End())))
			if n := len(w.Projects()); n > 0 {
				sb.WriteString(fmt.Sprintf("    %d projects\n", n))
			}
		}
		if len(works) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(works)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	educations := e.Educations()
	if len(educations) > 0 {
		sb.WriteString("Education:\n")
		count := min(len(educations), 3)
		for i := 0; i < count; i++ {
			ed := educations[i]
			sb.WriteString(fmt.Sprintf("  • %s, %s (%s)\n", ed.Degree(), ed.School(), period(ed.Start(), ed.End())))
		}
		if len(educations) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(educations)-3))
		}
	}

	p.printBox("LOADED RÉSUMÉ", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRenderedFiles outputs the files written by a build.
func (p *Printer) PrintRenderedFiles(paths []string) {
	if len(paths) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Rendered %d files:\n\n", len(paths)))
	for _, path := range paths {
		sb.WriteString(fmt.Sprintf("• %s\n", path))
	}

	p.printBox("RENDERED OUTPUT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSchemaErrors outputs every schema violation found in a document.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintSchemaErrors(validationErr *schemas.ValidationError) {
	if validationErr == nil || len(validationErr.Errors) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO SCHEMA ERRORS FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d schema errors:\n\n", len(validationErr.Errors)))

	for i, fe := range validationErr.Errors {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", fe.Field))
		sb.WriteString(fmt.Sprintf("  %s\n", fe.Message))
		if i < len(validationErr.Errors)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SCHEMA ERRORS", sb.String())
}
