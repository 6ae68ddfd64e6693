package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/veridoc-ai/veridoc/constants"
)

// Evidence locates where a field's value was found in the source document.
type Evidence struct {
	Text      string `json:"text"`
	Page      int    `json:"page"`
	CharStart int    `json:"char_start"`
	CharEnd   int    `json:"char_end"`
}

// ValidationError is one rule finding for a field.
type ValidationError struct {
	Rule     string `json:"rule"`
	Message  string `json:"message"`
	Severity string `json:"severity"` // error|warning
}

// ExtractionRecord is the extracted-data result for one (run, document) pair.
type ExtractionRecord struct {
	ID           uuid.UUID              `json:"id"`
	RunID        uuid.UUID              `json:"run_id"`
	DocumentID   uuid.UUID              `json:"document_id"`
	RecordStatus constants.RecordStatus `json:"record_status"`
	FailedRules  []string               `json:"failed_rules,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
}

// ExtractionField is one extracted field value within a record.
type ExtractionField struct {
	ID               uuid.UUID             `json:"id"`
	RecordID         uuid.UUID             `json:"record_id"`
	FieldName        string                `json:"field_name"`
	FieldType        string                `json:"field_type"`
	ExtractedValue   json.RawMessage       `json:"extracted_value,omitempty"`
	Confidence       float32               `json:"confidence"`
	Evidence         []Evidence            `json:"evidence,omitempty"`
	FieldStatus      constants.FieldStatus `json:"field_status"`
	ValidationErrors []ValidationError     `json:"validation_errors,omitempty"`
}

// ReviewEvent records a human review mutation on an extraction field:
// old value, new value, action, actor, timestamp.
type ReviewEvent struct {
	ID        uuid.UUID              `json:"id"`
	FieldID   uuid.UUID              `json:"field_id"`
	Action    constants.ReviewAction `json:"action"`
	OldValue  json.RawMessage        `json:"old_value,omitempty"`
	NewValue  json.RawMessage        `json:"new_value,omitempty"`
	Actor     string                 `json:"actor"`
	CreatedAt time.Time              `json:"created_at"`
}
