package unity

import (
	_ "embed"
	"slices"
)

// SchemaID is the $id of the exported JSON Schema.
const SchemaID = "https://unity.example.com/unity.schema.json"

//go:embed unity.schema.json
var schemaJSON []byte

// JSONSchema returns a draft 2020-12 JSON Schema describing Unity documents,
// for use by editors and JSON Schema tooling. It mirrors the grammar checked by
// Validate but reports problems in JSON Schema terms.
func JSONSchema() []byte {
	return slices.Clone(schemaJSON)
}
