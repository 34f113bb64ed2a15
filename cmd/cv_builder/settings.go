package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/cv-builder/internal/config"
	"github.com/jonathan/cv-builder/internal/cv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// resolveConfig layers flag values over the config file over built-in defaults.
func resolveConfig(flags config.Config) (config.Config, error) {
	path := configPath
	if path == "" {
		path = os.Getenv(config.EnvConfigPath)
	}

	fileCfg := config.Config{}
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return config.Config{}, err
		}
		fileCfg = *loaded
		log.Debug().Str("path", path).Msg("config loaded")
	}

	defaults := fileCfg.MergeWithDefaults(config.Defaults())
	merged := flags.MergeWithDefaults(defaults)
	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}

	if merged.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	return merged, nil
}

// sortEmployee orders works, their projects and educations. Unset collections
// are left alone.
func sortEmployee(e *cv.Employee, order string) error {
	sortOrder, err := cv.ParseSortOrder(order)
	if err != nil {
		return err
	}

	steps := []struct {
		name string
		sort func(cv.SortOrder) error
	}{
		{"works", e.SortWorks},
		{"projects", e.SortProjects},
		{"educations", e.SortEducations},
	}
	for _, step := range steps {
		err := step.sort(sortOrder)
		if errors.Is(err, cv.ErrEmptyCollection) {
			log.Debug().Str("collection", step.name).Msg("nothing to sort")
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to sort %s: %w", step.name, err)
		}
	}
	return nil
}
