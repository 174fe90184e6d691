package project

import (
	"embed"
	"fmt"
	"os"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed schemas/modelforge-config.v1.schema.json
var schemaFS embed.FS

// SchemaIssue is one schema violation.
type SchemaIssue struct {
	Field       string
	Type        string
	Description string
}

// ValidateSchema checks a project file against the embedded JSON schema.
// The returned error is only set when validation could not run.
func ValidateSchema(configFile string) ([]SchemaIssue, error) {
	data, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", configFile, err)
	}
	return ValidateSchemaBytes(data)
}

// ValidateSchemaBytes checks yaml project file content against the embedded JSON schema.
func ValidateSchemaBytes(data []byte) ([]SchemaIssue, error) {
	schemaBytes, err := schemaFS.ReadFile("schemas/modelforge-config.v1.schema.json")
	if err != nil {
		return nil, fmt.Errorf("failed to load JSON schema: %w", err)
	}

	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if doc == nil {
		doc = map[string]interface{}{}
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaBytes),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	issues := make([]SchemaIssue, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		issues = append(issues, SchemaIssue{
			Field:       desc.Field(),
			Type:        desc.Type(),
			Description: desc.Description(),
		})
	}
	return issues, nil
}
