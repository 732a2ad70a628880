// Package validator checks documents against the exported Unity JSON Schema.
// It is a second opinion next to unity.Validate, used by `unity schema` and
// `unity validate --schema-check`.
package validator

// JSONDocument is a decoded JSON value as produced by jsonschema.UnmarshalJSON.
type JSONDocument = any

// Validator checks one decoded document.
type Validator interface {
	Validate(doc JSONDocument) error
}

// Compiler turns registered schema resources into Validators.
type Compiler interface {
	// AddSchema registers a decoded schema under id.
	AddSchema(id string, schema JSONDocument) error

	// Compile returns a Validator for the schema registered under id.
	Compile(id string) (Validator, error)

	// Clear drops every registered resource.
	Clear()
}
