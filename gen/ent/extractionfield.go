// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/veridoc-ai/veridoc/gen/ent/extractionfield"
	"github.com/veridoc-ai/veridoc/gen/ent/extractionrecord"
)

// ExtractionField is the model entity for the ExtractionField schema.
type ExtractionField struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// RecordID holds the value of the "record_id" field.
	RecordID uuid.UUID `json:"record_id,omitempty"`
	// FieldName holds the value of the "field_name" field.
	FieldName string `json:"field_name,omitempty"`
	// FieldType holds the value of the "field_type" field.
	FieldType string `json:"field_type,omitempty"`
	// ExtractedValue holds the value of the "extracted_value" field.
	ExtractedValue json.RawMessage `json:"extracted_value,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float32 `json:"confidence,omitempty"`
	// Evidence holds the value of the "evidence" field.
	Evidence json.RawMessage `json:"evidence,omitempty"`
	// FieldStatus holds the value of the "field_status" field.
	FieldStatus string `json:"field_status,omitempty"`
	// ValidationErrors holds the value of the "validation_errors" field.
	ValidationErrors json.RawMessage `json:"validation_errors,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExtractionFieldQuery when eager-loading is set.
	Edges        ExtractionFieldEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExtractionFieldEdges holds the relations/edges for other nodes in the graph.
type ExtractionFieldEdges struct {
	// Record holds the value of the record edge.
	Record *ExtractionRecord `json:"record,omitempty"`
	// ReviewEvents holds the value of the review_events edge.
	ReviewEvents []*ReviewEvent `json:"review_events,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// RecordOrErr returns the Record value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExtractionFieldEdges) RecordOrErr() (*ExtractionRecord, error) {
	if e.Record != nil {
		return e.Record, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: extractionrecord.Label}
	}
	return nil, &NotLoadedError{edge: "record"}
}

// ReviewEventsOrErr returns the ReviewEvents value or an error if the edge
// was not loaded in eager-loading.
func (e ExtractionFieldEdges) ReviewEventsOrErr() ([]*ReviewEvent, error) {
	if e.loadedTypes[1] {
		return e.ReviewEvents, nil
	}
	return nil, &NotLoadedError{edge: "review_events"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExtractionField) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case extractionfield.FieldExtractedValue, extractionfield.FieldEvidence, extractionfield.FieldValidationErrors:
			values[i] = new([]byte)
		case extractionfield.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case extractionfield.FieldFieldName, extractionfield.FieldFieldType, extractionfield.FieldFieldStatus:
			values[i] = new(sql.NullString)
		case extractionfield.FieldID, extractionfield.FieldRecordID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExtractionField fields.
func (_m *ExtractionField) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case extractionfield.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case extractionfield.FieldRecordID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field record_id", values[i])
			} else if value != nil {
				_m.RecordID = *value
			}
		case extractionfield.FieldFieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field field_name", values[i])
			} else if value.Valid {
				_m.FieldName = value.String
			}
		case extractionfield.FieldFieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field field_type", values[i])
			} else if value.Valid {
				_m.FieldType = value.String
			}
		case extractionfield.FieldExtractedValue:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_value", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExtractedValue); err != nil {
					return fmt.Errorf("unmarshal field extracted_value: %w", err)
				}
			}
		case extractionfield.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = float32(value.Float64)
			}
		case extractionfield.FieldEvidence:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field evidence", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Evidence); err != nil {
					return fmt.Errorf("unmarshal field evidence: %w", err)
				}
			}
		case extractionfield.FieldFieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field field_status", values[i])
			} else if value.Valid {
				_m.FieldStatus = value.String
			}
		case extractionfield.FieldValidationErrors:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field validation_errors", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ValidationErrors); err != nil {
					return fmt.Errorf("unmarshal field validation_errors: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExtractionField.
// This includes values selected through modifiers, order, etc.
func (_m *ExtractionField) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRecord queries the "record" edge of the ExtractionField entity.
func (_m *ExtractionField) QueryRecord() *ExtractionRecordQuery {
	return NewExtractionFieldClient(_m.config).QueryRecord(_m)
}

// QueryReviewEvents queries the "review_events" edge of the ExtractionField entity.
func (_m *ExtractionField) QueryReviewEvents() *ReviewEventQuery {
	return NewExtractionFieldClient(_m.config).QueryReviewEvents(_m)
}

// Update returns a builder for updating this ExtractionField.
// Note that you need to call ExtractionField.Unwrap() before calling this method if this ExtractionField
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExtractionField) Update() *ExtractionFieldUpdateOne {
	return NewExtractionFieldClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExtractionField entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExtractionField) Unwrap() *ExtractionField {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExtractionField is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExtractionField) String() string {
	var builder strings.Builder
	builder.WriteString("ExtractionField(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("record_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecordID))
	builder.WriteString(", ")
	builder.WriteString("field_name=")
	builder.WriteString(_m.FieldName)
	builder.WriteString(", ")
	builder.WriteString("field_type=")
	builder.WriteString(_m.FieldType)
	builder.WriteString(", ")
	builder.WriteString("extracted_value=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExtractedValue))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("evidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Evidence))
	builder.WriteString(", ")
	builder.WriteString("field_status=")
	builder.WriteString(_m.FieldStatus)
	builder.WriteString(", ")
	builder.WriteString("validation_errors=")
	builder.WriteString(fmt.Sprintf("%v", _m.ValidationErrors))
	builder.WriteByte(')')
	return builder.String()
}

// ExtractionFields is a parsable slice of ExtractionField.
type ExtractionFields []*ExtractionField
