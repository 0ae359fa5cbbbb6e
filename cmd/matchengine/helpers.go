package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/Samtech361/Jobupdates-cs-project/internal/config"
	"github.com/Samtech361/Jobupdates-cs-project/internal/schemas"
	"github.com/Samtech361/Jobupdates-cs-project/internal/taxonomy"
	"github.com/Samtech361/Jobupdates-cs-project/internal/types"
)

// loadJob reads a job posting JSON file, validating it against the bundled
// schema when the schema file can be found. A schema that cannot be loaded
// only warns; a posting that fails validation is an error.
func loadJob(path string) (*types.JobPosting, error) {
	if path == "" {
		return nil, fmt.Errorf("job file is required (--job or config)")
	}

	if schemaPath := schemas.ResolveSchemaPath("schemas/job_posting.schema.json"); schemaPath != "" {
		if err := schemas.ValidateJSONFile(schemaPath, path); err != nil {
			var validationErr *schemas.ValidationError
			if errors.As(err, &validationErr) {
				return nil, fmt.Errorf("job posting failed schema validation: %w", err)
			}
			fmt.Fprintf(os.Stderr, "Warning: skipping schema validation: %v\n", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file: %w", err)
	}

	var job types.JobPosting
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to parse job JSON: %w", err)
	}
	return &job, nil
}

// loadResume reads a plain-text resume file.
func loadResume(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("resume file is required (--resume or config)")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read resume file: %w", err)
	}
	return string(data), nil
}

// loadTaxonomy loads a custom taxonomy file, or returns nil for the
// built-in default when path is empty.
func loadTaxonomy(path string) (*taxonomy.Taxonomy, error) {
	if path == "" {
		return nil, nil
	}
	tax, err := taxonomy.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load taxonomy: %w", err)
	}
	return tax, nil
}

// applyConfig fills unset flag values from an optional config file.
// Explicit flags win over config values.
func applyConfig(configPath string, job, resume, taxonomyPath *string, verbose *bool) error {
	if configPath == "" {
		return nil
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	flags := config.Config{Job: *job, Resume: *resume, Taxonomy: *taxonomyPath, Verbose: *verbose}
	merged := flags.MergeWithDefaults(*cfg)
	*job = merged.Job
	*resume = merged.Resume
	*taxonomyPath = merged.Taxonomy
	*verbose = merged.Verbose
	return nil
}

// printJSON writes indented JSON to stdout.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
