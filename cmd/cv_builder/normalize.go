package main

import (
	"fmt"
	"os"

	"github.com/jonathan/cv-builder/internal/config"
	"github.com/jonathan/cv-builder/internal/document"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: "Load, sort and rewrite a résumé document",
	Long:  "Loads a résumé JSON file, sorts works, projects and educations by period, and writes it back in field declaration order.",
	RunE:  runNormalize,
}

var (
	normalizeInputFile  string
	normalizeOutputFile string
	normalizeSortOrder  string
	normalizeKeepNull   bool
)

func init() {
	normalizeCmd.Flags().StringVarP(&normalizeInputFile, "in", "i", "", "Path to input résumé JSON file")
	normalizeCmd.Flags().StringVarP(&normalizeOutputFile, "out", "o", "", "Path to output normalized JSON file (required)")
	normalizeCmd.Flags().StringVar(&normalizeSortOrder, "order", "", "Sort direction: asc or desc (default desc)")
	normalizeCmd.Flags().BoolVar(&normalizeKeepNull, "keep-null", false, "Write absent fields as null instead of dropping them")

	if err := normalizeCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(normalizeCmd)
}

func runNormalize(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(config.Config{
		Input:     normalizeInputFile,
		SortOrder: normalizeSortOrder,
		KeepNull:  normalizeKeepNull,
	})
	if err != nil {
		return fmt.Errorf("failed to resolve configuration: %w", err)
	}
	if cfg.Input == "" {
		return fmt.Errorf("an input file is required (--in or config 'input')")
	}

	employee, err := document.Load(cfg.Input)
	if err != nil {
		return fmt.Errorf("failed to load résumé: %w", err)
	}

	if err := sortEmployee(employee, cfg.SortOrder); err != nil {
		return fmt.Errorf("failed to normalize résumé: %w", err)
	}

	if err := document.Save(normalizeOutputFile, employee, cfg.KeepNull); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	log.Debug().Str("order", cfg.SortOrder).Bool("keep_null", cfg.KeepNull).Msg("résumé normalized")

	_, _ = fmt.Fprintf(os.Stdout, "Successfully normalized résumé\n")
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", normalizeOutputFile)

	return nil
}
