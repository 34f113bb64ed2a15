// Package document reads and writes résumé JSON files.
package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/cv-builder/internal/cv"
)

// Load reads a résumé JSON file and builds its Employee tree
func Load(path string) (*cv.Employee, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}
	return Parse(content)
}

// Parse decodes résumé JSON content, strips its nulls and builds the Employee tree.
// Numbers are kept as json.Number so large date codes stay exact.
func Parse(content []byte) (*cv.Employee, error) {
	doc, err := Decode(content)
	if err != nil {
		return nil, err
	}

	employee, err := cv.LoadEmployee(doc)
	if err != nil {
		return nil, &LoadError{
			Message: "invalid résumé",
			Cause:   err,
		}
	}
	return employee, nil
}

// Decode parses JSON content into a generic value with nulls removed.
func Decode(content []byte) (any, error) {
	decoder := json.NewDecoder(bytes.NewReader(content))
	decoder.UseNumber()

	var doc any
	if err := decoder.Decode(&doc); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}
	if decoder.More() {
		return nil, &LoadError{Message: "unexpected content after the JSON document"}
	}
	return cv.PruneNulls(doc), nil
}

// Save writes the Employee as indented JSON, fields in declaration order.
// With keepNull every field is written and the file loads back unchanged.
func Save(path string, employee *cv.Employee, keepNull bool) error {
	content, err := cv.MarshalIndentJSON(employee, keepNull, "", "  ")
	if err != nil {
		return &SaveError{
			Message: "failed to marshal résumé",
			Cause:   err,
		}
	}
	content = append(content, '\n')

	outputDir := filepath.Dir(path)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return &SaveError{
			Message: fmt.Sprintf("failed to create output directory %s", outputDir),
			Cause:   err,
		}
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return &SaveError{
			Message: fmt.Sprintf("failed to write file %s", path),
			Cause:   err,
		}
	}
	return nil
}
