package validator

import (
	"bytes"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/andyballingall/unity-markup/internal/unity"
)

// NewUnityValidator registers the exported Unity JSON Schema with c and compiles it.
func NewUnityValidator(c Compiler) (Validator, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(unity.JSONSchema()))
	if err != nil {
		return nil, fmt.Errorf("unity schema is not valid JSON: %w", err)
	}
	if err := c.AddSchema(unity.SchemaID, doc); err != nil {
		return nil, fmt.Errorf("unity schema could not be registered: %w", err)
	}
	v, err := c.Compile(unity.SchemaID)
	if err != nil {
		return nil, fmt.Errorf("unity schema does not compile: %w", err)
	}
	return v, nil
}

// ValidateJSON parses data and validates the result with v.
func ValidateJSON(v Validator, data []byte) error {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("not valid JSON: %w", err)
	}
	return v.Validate(doc)
}
