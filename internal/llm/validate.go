package llm

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Schema pairs an extraction JSON schema document with its compiled form.
// The schema is fixed by the template snapshot, so callers compile it once
// per run and reuse it for every extraction call.
type Schema struct {
	doc      map[string]any
	compiled *jsonschema.Schema
}

// CompileSchema compiles a schema document built by
// BuildExtractionJSONSchema.
func CompileSchema(doc map[string]any) (*Schema, error) {
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return &Schema{doc: doc, compiled: compiled}, nil
}

// JSON renders the schema document for prompt embedding.
func (s *Schema) JSON() string {
	if s == nil {
		return "{}"
	}
	b, _ := json.MarshalIndent(s.doc, "", "  ")
	return string(b)
}

// Validate checks that data conforms to the schema. A nil schema accepts
// everything.
func (s *Schema) Validate(data []byte) error {
	if s == nil {
		return nil
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := s.compiled.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
