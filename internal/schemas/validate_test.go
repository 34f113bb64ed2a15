package schemas

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validEmployee = `{
	"lastname": "Doe",
	"firstname": "John",
	"position": "Consultant",
	"languages": [{"name": "English", "irl_scale": "Native", "cefr_level": null}],
	"works": [{"employer": "Acme", "start": 202001, "end": null, "projects": [{"name": "X", "start": 202002}]}],
	"educations": [{"school": "Uni", "degree": "BSc", "start": 2012}]
}`

func fieldsOf(err *ValidationError) []string {
	fields := make([]string, 0, len(err.Errors))
	for _, fe := range err.Errors {
		fields = append(fields, fe.Field)
	}
	return fields
}

func TestValidateEmployee_Valid(t *testing.T) {
	assert.NoError(t, ValidateEmployee([]byte(validEmployee)))
}

func TestValidateEmployee_SampleFixture(t *testing.T) {
	err := ValidateEmployeeFile(filepath.Join("..", "..", "testdata", "valid", "employee.json"))
	assert.NoError(t, err)
}

func TestValidateEmployee_Violations(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantField string
	}{
		{
			name:      "missing works",
			content:   strings.Replace(validEmployee, `"works"`, `"jobs"`, 1),
			wantField: "(root)",
		},
		{
			name:      "education year as string",
			content:   strings.Replace(validEmployee, `"start": 2012`, `"start": "2012"`, 1),
			wantField: "educations.0.start",
		},
		{
			name:      "four digit work start",
			content:   strings.Replace(validEmployee, `"start": 202001`, `"start": 2020`, 1),
			wantField: "works.0.start",
		},
		{
			name:      "unknown project key",
			content:   strings.Replace(validEmployee, `"name": "X"`, `"name": "X", "client": "Y"`, 1),
			wantField: "works.0.projects.0",
		},
		{
			name:      "summary as scalar",
			content:   strings.Replace(validEmployee, `"lastname": "Doe",`, `"lastname": "Doe", "summary": "text",`, 1),
			wantField: "summary",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmployee([]byte(tt.content))
			require.Error(t, err)

			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr), "error should be ValidationError type")
			assert.Contains(t, fieldsOf(validationErr), tt.wantField)
		})
	}
}

func TestValidateEmployee_MalformedJSON(t *testing.T) {
	err := ValidateEmployee([]byte("{ invalid json }"))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestValidateEmployeeFile_NotFound(t *testing.T) {
	err := ValidateEmployeeFile("nonexistent.json")
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestValidateJSON_Files(t *testing.T) {
	tmpDir := t.TempDir()
	schemaPath := filepath.Join(tmpDir, "schema.json")
	validPath := filepath.Join(tmpDir, "valid.json")
	invalidPath := filepath.Join(tmpDir, "invalid.json")

	schema := `{"type": "object", "required": ["name"], "properties": {"name": {"type": "string"}}}`
	require.NoError(t, os.WriteFile(schemaPath, []byte(schema), 0644))
	require.NoError(t, os.WriteFile(validPath, []byte(`{"name": "French"}`), 0644))
	require.NoError(t, os.WriteFile(invalidPath, []byte(`{"name": 3}`), 0644))

	assert.NoError(t, ValidateJSON(schemaPath, validPath))

	err := ValidateJSON(schemaPath, invalidPath)
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, []string{"name"}, fieldsOf(validationErr))

	err = ValidateJSON(filepath.Join(tmpDir, "nonexistent_schema.json"), validPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	err = ValidateJSON(schemaPath, filepath.Join(tmpDir, "nonexistent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSONString(t *testing.T) {
	schema := `{"type": "object", "properties": {"cefr_level": {"enum": ["A1", "A2"]}}}`

	assert.NoError(t, ValidateJSONString(schema, `{"cefr_level": "A1"}`))
	assert.Error(t, ValidateJSONString(schema, `{"cefr_level": "Z9"}`))
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Errors: []FieldError{
		{Field: "works.0.start", Message: "Must be greater than or equal to 100000"},
		{Field: "(root)", Message: "educations is required"},
	}}

	msg := err.Error()
	assert.Contains(t, msg, "validation failed:")
	assert.Contains(t, msg, "1. works.0.start: Must be greater than or equal to 100000")
	assert.Contains(t, msg, "2. (root): educations is required")
}
