package entity

// TemplateField is one field the template asks the extraction backend for.
type TemplateField struct {
	Name        string `json:"name"`
	Type        string `json:"type"` // string|number|boolean|date|array
	Description string `json:"description,omitempty"`
	Required    bool   `json:"required"`
}

// FieldRule binds a validation rule to a template field.
// Threshold carries the literal value for min_value; the other rules
// ignore it.
type FieldRule struct {
	FieldName string  `json:"field_name"`
	Rule      string  `json:"rule"` // required|date_after_today|min_value|min_threshold|boolean_required
	Threshold float64 `json:"threshold,omitempty"`
}

// DetectionKeywords is the tiered keyword profile used to score whether an
// uploaded document matches the template's expected type.
type DetectionKeywords struct {
	DocType string   `json:"doc_type"`
	High    []string `json:"high,omitempty"`
	Medium  []string `json:"medium,omitempty"`
	Low     []string `json:"low,omitempty"`
}

// Template is the read-only template configuration. A run holds a frozen
// copy of this, snapshotted at launch time.
type Template struct {
	Slug              string             `json:"slug"`
	Version           int                `json:"version"`
	Fields            []TemplateField    `json:"fields"`
	Validators        []FieldRule        `json:"validators,omitempty"`
	ExtractionPrompt  string             `json:"extraction_prompt"`
	DetectionKeywords *DetectionKeywords `json:"detection_keywords,omitempty"`
}

// RulesForField returns the template's rules for one field, in declared order.
func (t *Template) RulesForField(name string) []FieldRule {
	var out []FieldRule
	for _, r := range t.Validators {
		if r.FieldName == name {
			out = append(out, r)
		}
	}
	return out
}
