package storage

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/state.schema.json
var stateSchemaJSON string

const stateSchemaURL = "ecoquest://schemas/state.schema.json"

var (
	stateSchemaOnce sync.Once
	stateSchema     *jsonschema.Schema
	stateSchemaErr  error
)

func compiledStateSchema() (*jsonschema.Schema, error) {
	stateSchemaOnce.Do(func() {
		stateSchema, stateSchemaErr = jsonschema.CompileString(stateSchemaURL, stateSchemaJSON)
	})
	return stateSchema, stateSchemaErr
}

// ValidateDocument checks that data has the shape of a saved game state.
// It does not require fields that the decoder knows how to default.
func ValidateDocument(data []byte) error {
	schema, err := compiledStateSchema()
	if err != nil {
		return fmt.Errorf("compile state schema: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("parse document: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("invalid document: %w", err)
	}
	return nil
}
