package quiz

import (
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const bankSchemaURL = "schema://question-bank.json"

// bankSchema is the JSON schema every bank file must satisfy before it is
// decoded into Items.
var bankSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"version": map[string]any{
			"type":    "integer",
			"minimum": 1,
		},
		"items": map[string]any{
			"type":  "array",
			"items": itemSchema,
		},
	},
	"required":             []any{"version", "items"},
	"additionalProperties": false,
}

var itemSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":       map[string]any{"type": "integer", "minimum": 1},
		"title":    map[string]any{"type": "string", "minLength": 1},
		"question": map[string]any{"type": "string", "minLength": 1},
		"code":     map[string]any{"type": "string"},
		"choices": map[string]any{
			"type":     "array",
			"items":    map[string]any{"type": "string"},
			"minItems": 2,
		},
		"correct_index": map[string]any{"type": "integer", "minimum": 0},
		"explanation":   map[string]any{"type": "string"},
		"tags": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"level": map[string]any{
			"type": "string",
			"enum": []any{"intro", "beginner", "beginner-plus", "intermediate"},
		},
	},
	"required":             []any{"id", "title", "question", "choices", "correct_index", "explanation", "tags", "level"},
	"additionalProperties": false,
}

var (
	compiledOnce   sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// compiledBankSchema compiles the bank schema on first use.
func compiledBankSchema() (*jsonschema.Schema, error) {
	compiledOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource(bankSchemaURL, bankSchema); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(bankSchemaURL)
		if compileErr != nil {
			compileErr = fmt.Errorf("compile: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// validateDocument checks a parsed JSON document against the bank schema.
func validateDocument(doc any) error {
	schema, err := compiledBankSchema()
	if err != nil {
		return fmt.Errorf("bank schema: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("%w: schema validation failed: %w", ErrInvalidBank, err)
	}
	return nil
}
