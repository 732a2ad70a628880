package validator

import (
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// NewSanthoshCompiler returns a Compiler backed by santhosh-tekuri/jsonschema/v6.
// It is safe for concurrent use. Schemas without $schema default to draft 2020-12.
func NewSanthoshCompiler() Compiler {
	return &santhoshCompiler{c: newJSONSchemaCompiler()}
}

func newJSONSchemaCompiler() *jsonschema.Compiler {
	c := jsonschema.NewCompiler()
	c.DefaultDraft(jsonschema.Draft2020)
	return c
}

type schemaValidator struct {
	schema *jsonschema.Schema
}

func (v schemaValidator) Validate(doc JSONDocument) error {
	return v.schema.Validate(doc)
}

type santhoshCompiler struct {
	mu sync.Mutex
	c  *jsonschema.Compiler
}

func (s *santhoshCompiler) AddSchema(id string, schema JSONDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.AddResource(id, schema)
}

func (s *santhoshCompiler) Compile(id string) (Validator, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sch, err := s.c.Compile(id)
	if err != nil {
		return nil, err
	}
	return schemaValidator{schema: sch}, nil
}

func (s *santhoshCompiler) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c = newJSONSchemaCompiler()
}
