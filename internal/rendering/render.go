// Package rendering fills text templates with a serialized résumé.
package rendering

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"golang.org/x/sync/errgroup"
)

// ParseTemplate reads and parses a template file with the résumé functions.
func ParseTemplate(path string) (*template.Template, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		message := "failed to read template file"
		if os.IsNotExist(err) {
			message = "template file not found"
		}
		return nil, &TemplateError{Path: path, Message: message, Cause: err}
	}

	tmpl, err := template.New(filepath.Base(path)).Funcs(Funcs()).Parse(string(content))
	if err != nil {
		return nil, &TemplateError{Path: path, Message: "failed to parse template", Cause: err}
	}
	return tmpl, nil
}

// Render executes the template at path against a serialized résumé.
func Render(path string, data map[string]any) (string, error) {
	tmpl, err := ParseTemplate(path)
	if err != nil {
		return "", err
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return "", &RenderError{Template: path, Message: "failed to execute template", Cause: err}
	}
	return result.String(), nil
}

// OutputPath names the rendered file of a template inside outputDir: the
// template base name without a trailing ".tmpl".
func OutputPath(templatePath, outputDir string) string {
	name := strings.TrimSuffix(filepath.Base(templatePath), ".tmpl")
	return filepath.Join(outputDir, name)
}

// RenderAll renders every template into outputDir concurrently and returns the
// written paths in template order. data is only read, so the templates share it.
// The first failure cancels the remaining renders.
func RenderAll(ctx context.Context, templatePaths []string, outputDir string, data map[string]any) ([]string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, &RenderError{Template: outputDir, Message: "failed to create output directory", Cause: err}
	}

	outputs := make([]string, len(templatePaths))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range templatePaths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rendered, err := Render(path, data)
			if err != nil {
				return err
			}
			out := OutputPath(path, outputDir)
			if err := os.WriteFile(out, []byte(rendered), 0644); err != nil {
				return &RenderError{Template: path, Message: "failed to write output file", Cause: err}
			}
			outputs[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outputs, nil
}
