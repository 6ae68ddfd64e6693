package llm

import (
	"strings"
	"testing"

	"github.com/veridoc-ai/veridoc/internal/entity"
)

func compiledTestSchema(t *testing.T) *Schema {
	t.Helper()
	doc := BuildExtractionJSONSchema([]entity.TemplateField{
		{Name: "policy_number", Type: "string", Required: true},
		{Name: "coverage_amount", Type: "number", Required: true},
	})
	schema, err := CompileSchema(doc)
	if err != nil {
		t.Fatalf("CompileSchema: %v", err)
	}
	return schema
}

func TestCompiledSchemaAcceptsConformingPayload(t *testing.T) {
	schema := compiledTestSchema(t)

	payload := `{"fields":[{"name":"policy_number","value":"GL-1","confidence":0.9}]}`
	if err := schema.Validate([]byte(payload)); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	// Reusable across calls: a second validation against the same compiled
	// schema must behave identically.
	if err := schema.Validate([]byte(payload)); err != nil {
		t.Fatalf("second Validate: %v", err)
	}
}

func TestCompiledSchemaRejectsMalformedPayload(t *testing.T) {
	schema := compiledTestSchema(t)

	if err := schema.Validate([]byte(`{"fields":"not-an-array"}`)); err == nil {
		t.Error("expected rejection for wrong fields type")
	}
	if err := schema.Validate([]byte(`not json`)); err == nil {
		t.Error("expected rejection for invalid JSON")
	}
}

func TestCompiledSchemaJSONEmbedsDocument(t *testing.T) {
	schema := compiledTestSchema(t)
	rendered := schema.JSON()
	if !strings.Contains(rendered, `"fields"`) {
		t.Errorf("rendered schema missing fields property: %s", rendered)
	}
}

func TestNilSchemaIsPermissive(t *testing.T) {
	var schema *Schema
	if err := schema.Validate([]byte(`anything`)); err != nil {
		t.Errorf("nil schema must accept everything, got %v", err)
	}
	if schema.JSON() != "{}" {
		t.Errorf("nil schema JSON = %q", schema.JSON())
	}
}
