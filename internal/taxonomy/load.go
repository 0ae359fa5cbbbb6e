package taxonomy

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Samtech361/Jobupdates-cs-project/internal/schemas"
)

// taxonomyFile is the on-disk JSON shape for custom taxonomies. Categories
// are an ordered array so the file controls category order.
type taxonomyFile struct {
	Categories []struct {
		Name   string   `json:"name"`
		Skills []string `json:"skills"`
	} `json:"categories"`
}

// LoadFile reads a custom taxonomy from a JSON file. When a taxonomy schema
// is available it is validated first, so malformed vocabularies fail with
// field-level errors instead of building a silently empty taxonomy.
func LoadFile(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read taxonomy file %s: %w", path, err)
	}

	if schemaPath := schemas.ResolveSchemaPath("schemas/taxonomy.schema.json"); schemaPath != "" {
		if err := schemas.ValidateJSONFile(schemaPath, path); err != nil {
			return nil, fmt.Errorf("taxonomy file %s is invalid: %w", path, err)
		}
	}

	var file taxonomyFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy JSON: %w", err)
	}

	categories := make([]string, 0, len(file.Categories))
	skills := make(map[string][]string, len(file.Categories))
	for _, cat := range file.Categories {
		categories = append(categories, cat.Name)
		skills[cat.Name] = cat.Skills
	}

	return New(categories, skills)
}
