package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// GenerateSchema returns the JSON schema for the configuration as
// pretty-printed JSON.
func GenerateSchema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	schema := r.Reflect(&Config{})

	schema.ID = "https://github.com/bnema/plotfont/config.schema.json"
	schema.Title = "plotfont Configuration"
	schema.Description = "Configuration schema for plotfont, a font preference tool for gonum/plot"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
