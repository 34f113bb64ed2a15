package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/cv-builder/internal/config"
	"github.com/jonathan/cv-builder/internal/cv"
	"github.com/jonathan/cv-builder/internal/document"
	"github.com/jonathan/cv-builder/internal/observability"
	"github.com/jonathan/cv-builder/internal/rendering"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render a résumé through templates",
	Long:  "Loads a résumé, discloses the selected client names, sorts every dated list (newest first by default) and renders each template into the output directory.",
	RunE:  runBuild,
}

var (
	buildInputFile string
	buildTemplates []string
	buildOutputDir string
	buildDisclose  []string
)

func init() {
	buildCmd.Flags().StringVarP(&buildInputFile, "in", "i", "", "Path to résumé JSON file")
	buildCmd.Flags().StringSliceVarP(&buildTemplates, "template", "t", nil, "Template file to render (repeatable)")
	buildCmd.Flags().StringVarP(&buildOutputDir, "out-dir", "o", "", "Directory receiving rendered files (default out)")
	buildCmd.Flags().StringSliceVar(&buildDisclose, "disclose", nil, "Project names whose client name may be shown (repeatable)")

	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(config.Config{
		Input:     buildInputFile,
		Templates: buildTemplates,
		OutputDir: buildOutputDir,
		Disclose:  buildDisclose,
	})
	if err != nil {
		return fmt.Errorf("failed to resolve configuration: %w", err)
	}
	if cfg.Input == "" {
		return fmt.Errorf("an input file is required (--in or config 'input')")
	}
	if len(cfg.Templates) == 0 {
		return fmt.Errorf("at least one template is required (--template or config 'templates')")
	}

	employee, err := document.Load(cfg.Input)
	if err != nil {
		return fmt.Errorf("failed to load résumé: %w", err)
	}

	if disclosed := employee.DiscloseProjects(cfg.Disclose...); disclosed > 0 {
		log.Info().Int("projects", disclosed).Msg("client names disclosed")
	}

	if err := sortEmployee(employee, cfg.SortOrder); err != nil {
		return fmt.Errorf("failed to sort résumé: %w", err)
	}

	ctx := context.Background()
	if cmd != nil && cmd.Context() != nil {
		ctx = cmd.Context()
	}

	outputs, err := rendering.RenderAll(ctx, cfg.Templates, cfg.OutputDir, cv.ToDict(employee, false))
	if err != nil {
		return fmt.Errorf("failed to render templates: %w", err)
	}

	if verbose || cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintEmployee(employee)
		printer.PrintRenderedFiles(outputs)
	}
	for _, out := range outputs {
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", out)
	}

	return nil
}
