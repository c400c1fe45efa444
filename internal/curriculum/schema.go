package curriculum

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// daySchema is the JSON Schema every day file must satisfy. Structural rules
// that a schema cannot express (answer index in range, duplicate prompts)
// live in checkDay.
var daySchema = map[string]any{
	"type":     "object",
	"required": []any{"title", "questions"},
	"properties": map[string]any{
		"title": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type":     "object",
				"required": []any{"type", "question"},
				"properties": map[string]any{
					"type": map[string]any{
						"type": "string",
						"enum": []any{"mcq", "numeric", "repeat"},
					},
					"question": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"options": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"answer":      map[string]any{"type": "number"},
					"tolerance":   map[string]any{"type": "number", "minimum": 0},
					"answer_text": map[string]any{"type": "string"},
					"explanation": map[string]any{"type": "string"},
				},
			},
		},
	},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateSchema checks a raw day file against daySchema.
func validateSchema(raw []byte) error {
	compileOnce.Do(func() {
		compiledSchema, compileErr = compileDaySchema()
	})
	if compileErr != nil {
		return fmt.Errorf("compile day schema: %w", compileErr)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := compiledSchema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

func compileDaySchema() (*jsonschema.Schema, error) {
	// The jsonschema library expects a parsed JSON value (any), not raw bytes.
	defBytes, err := json.Marshal(daySchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	const schemaURL = "schema://day-file.json"
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(schemaURL)
}
