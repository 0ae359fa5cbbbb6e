// Package schemas provides JSON Schema validation for engine inputs
// (job postings, custom taxonomies).
package schemas

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ResolveSchemaPath attempts to find a schema file by trying multiple common
// path resolutions: relative to the current working directory, then one and
// two levels up. This is useful when CLI commands and tests run from
// different working directories. Returns "" if no candidate exists.
func ResolveSchemaPath(relativePath string) string {
	candidates := []string{
		relativePath,
		filepath.Join("..", relativePath),
		filepath.Join("..", "..", relativePath),
	}
	for _, candidate := range candidates {
		if absPath, err := filepath.Abs(candidate); err == nil {
			if _, err := os.Stat(absPath); err == nil {
				return absPath
			}
		}
	}
	return ""
}

// FieldError is a single validation failure at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError reports a document that does not conform to its schema.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError reports a schema that could not be loaded or parsed,
// as opposed to a document that failed validation against it.
type SchemaLoadError struct {
	Path  string
	Cause error
}

func (e *SchemaLoadError) Error() string {
	return fmt.Sprintf("failed to load schema %s: %v", e.Path, e.Cause)
}

func (e *SchemaLoadError) Unwrap() error { return e.Cause }

// ValidateJSONFile validates a JSON document file against a JSON Schema
// file. Returns *ValidationError when the document does not conform and
// *SchemaLoadError when the schema itself cannot be used.
func ValidateJSONFile(schemaPath, jsonPath string) error {
	schemaAbs, err := filepath.Abs(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to resolve schema path: %w", err)
	}
	jsonAbs, err := filepath.Abs(jsonPath)
	if err != nil {
		return fmt.Errorf("failed to resolve JSON path: %w", err)
	}
	if _, err := os.Stat(jsonAbs); os.IsNotExist(err) {
		return fmt.Errorf("JSON file not found: %s", jsonAbs)
	}

	return validate(
		gojsonschema.NewReferenceLoader("file://"+schemaAbs),
		gojsonschema.NewReferenceLoader("file://"+jsonAbs),
		schemaAbs,
	)
}

// ValidateJSONString validates JSON content against schema content, both
// given as strings.
func ValidateJSONString(schemaContent, jsonContent string) error {
	return validate(
		gojsonschema.NewStringLoader(schemaContent),
		gojsonschema.NewStringLoader(jsonContent),
		"(string schema)",
	)
}

func validate(schemaLoader, documentLoader gojsonschema.JSONLoader, schemaPath string) error {
	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{Path: schemaPath, Cause: err}
	}
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
