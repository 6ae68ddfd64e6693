package llm

import (
	"strings"
	"testing"

	"github.com/veridoc-ai/veridoc/internal/entity"
)

func TestBuildPromptSubstitutesMarker(t *testing.T) {
	got := BuildPrompt("Extract fields from:\n{{DOCUMENT_TEXT}}\nReturn JSON.", "page one text")
	if strings.Contains(got, DocumentTextMarker) {
		t.Error("marker not substituted")
	}
	if !strings.Contains(got, "page one text") {
		t.Error("document text missing from prompt")
	}
}

func TestBuildPromptAppendsWhenMarkerAbsent(t *testing.T) {
	got := BuildPrompt("Extract the policy fields.", "the document")
	if !strings.HasPrefix(got, "Extract the policy fields.") {
		t.Errorf("prompt prefix lost: %q", got)
	}
	if !strings.Contains(got, "the document") {
		t.Error("document text not appended")
	}
}

func TestBuildExtractionJSONSchema(t *testing.T) {
	fields := []entity.TemplateField{
		{Name: "insurer", Type: "string", Required: true},
		{Name: "liability_limit", Type: "number"},
	}
	schema := BuildExtractionJSONSchema(fields)

	props, ok := schema["properties"].(map[string]any)
	if !ok {
		t.Fatalf("schema has no properties map: %v", schema)
	}
	if _, ok := props["fields"]; !ok {
		t.Fatalf("schema missing fields property: %v", props)
	}
}
