package llm

import "strings"

// DocumentTextMarker is the placeholder in a template's extraction prompt
// where the chunked document text is substituted.
const DocumentTextMarker = "{{DOCUMENT_TEXT}}"

// BuildPrompt substitutes the concatenated chunk text into the template's
// extraction prompt. Prompts without the marker get the text appended so a
// misconfigured template still extracts something.
func BuildPrompt(extractionPrompt, documentText string) string {
	if strings.Contains(extractionPrompt, DocumentTextMarker) {
		return strings.ReplaceAll(extractionPrompt, DocumentTextMarker, documentText)
	}
	var b strings.Builder
	b.WriteString(extractionPrompt)
	b.WriteString("\n\nDocument text:\n")
	b.WriteString(documentText)
	return b.String()
}
