package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/cv-builder/internal/document"
	"github.com/jonathan/cv-builder/internal/observability"
	"github.com/jonathan/cv-builder/internal/schemas"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a résumé document",
	Long:  "Checks a résumé JSON document against the employee schema, then loads it through the model field rules.",
	RunE:  runValidate,
}

var validateInputFile string

func init() {
	validateCmd.Flags().StringVarP(&validateInputFile, "in", "i", "", "Path to résumé JSON file (required)")

	if err := validateCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	content, err := os.ReadFile(validateInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	if err := schemas.ValidateEmployee(content); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			observability.NewPrinter(os.Stdout).PrintSchemaErrors(validationErr)
			return fmt.Errorf("validation failed: %d schema errors", len(validationErr.Errors))
		}
		return fmt.Errorf("validation failed: %w", err)
	}
	log.Debug().Str("path", validateInputFile).Msg("schema check passed")

	employee, err := document.Parse(content)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	if verbose {
		observability.NewPrinter(os.Stdout).PrintEmployee(employee)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Validation passed: %s\n", validateInputFile)
	return nil
}
