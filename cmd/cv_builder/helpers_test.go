package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/cv-builder/internal/config"
	"github.com/stretchr/testify/require"
)

var (
	sampleEmployee  = filepath.Join("..", "..", "testdata", "valid", "employee.json")
	sampleTemplate  = filepath.Join("..", "..", "testdata", "templates", "resume.md.tmpl")
	badDateEmployee = filepath.Join("..", "..", "testdata", "invalid", "bad_date.json")
)

// resetFlags clears every command flag variable and isolates the test from
// a config file named in the environment.
func resetFlags(t *testing.T) {
	t.Helper()
	t.Setenv(config.EnvConfigPath, "")

	configPath, verbose = "", false
	validateInputFile = ""
	normalizeInputFile, normalizeOutputFile, normalizeSortOrder, normalizeKeepNull = "", "", "", false
	buildInputFile, buildTemplates, buildOutputDir, buildDisclose = "", nil, "", nil
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func getBinaryPath(t *testing.T) string {
	binaryName := "cv_builder"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/cv_builder ./cmd/cv_builder'", binaryPath)
	}

	return binaryPath
}
