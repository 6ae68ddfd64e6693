// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/veridoc-ai/veridoc/gen/ent/document"
	"github.com/veridoc-ai/veridoc/gen/ent/extractionrecord"
	"github.com/veridoc-ai/veridoc/gen/ent/run"
)

// ExtractionRecord is the model entity for the ExtractionRecord schema.
type ExtractionRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID uuid.UUID `json:"run_id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID uuid.UUID `json:"document_id,omitempty"`
	// RecordStatus holds the value of the "record_status" field.
	RecordStatus string `json:"record_status,omitempty"`
	// FailedRules holds the value of the "failed_rules" field.
	FailedRules json.RawMessage `json:"failed_rules,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExtractionRecordQuery when eager-loading is set.
	Edges        ExtractionRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExtractionRecordEdges holds the relations/edges for other nodes in the graph.
type ExtractionRecordEdges struct {
	// Run holds the value of the run edge.
	Run *Run `json:"run,omitempty"`
	// Document holds the value of the document edge.
	Document *Document `json:"document,omitempty"`
	// Fields holds the value of the fields edge.
	Fields []*ExtractionField `json:"fields,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// RunOrErr returns the Run value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExtractionRecordEdges) RunOrErr() (*Run, error) {
	if e.Run != nil {
		return e.Run, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: run.Label}
	}
	return nil, &NotLoadedError{edge: "run"}
}

// DocumentOrErr returns the Document value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExtractionRecordEdges) DocumentOrErr() (*Document, error) {
	if e.Document != nil {
		return e.Document, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: document.Label}
	}
	return nil, &NotLoadedError{edge: "document"}
}

// FieldsOrErr returns the Fields value or an error if the edge
// was not loaded in eager-loading.
func (e ExtractionRecordEdges) FieldsOrErr() ([]*ExtractionField, error) {
	if e.loadedTypes[2] {
		return e.Fields, nil
	}
	return nil, &NotLoadedError{edge: "fields"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExtractionRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case extractionrecord.FieldFailedRules:
			values[i] = new([]byte)
		case extractionrecord.FieldRecordStatus:
			values[i] = new(sql.NullString)
		case extractionrecord.FieldCreatedAt, extractionrecord.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case extractionrecord.FieldID, extractionrecord.FieldRunID, extractionrecord.FieldDocumentID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExtractionRecord fields.
func (_m *ExtractionRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case extractionrecord.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case extractionrecord.FieldRunID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value != nil {
				_m.RunID = *value
			}
		case extractionrecord.FieldDocumentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value != nil {
				_m.DocumentID = *value
			}
		case extractionrecord.FieldRecordStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field record_status", values[i])
			} else if value.Valid {
				_m.RecordStatus = value.String
			}
		case extractionrecord.FieldFailedRules:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field failed_rules", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FailedRules); err != nil {
					return fmt.Errorf("unmarshal field failed_rules: %w", err)
				}
			}
		case extractionrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case extractionrecord.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExtractionRecord.
// This includes values selected through modifiers, order, etc.
func (_m *ExtractionRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRun queries the "run" edge of the ExtractionRecord entity.
func (_m *ExtractionRecord) QueryRun() *RunQuery {
	return NewExtractionRecordClient(_m.config).QueryRun(_m)
}

// QueryDocument queries the "document" edge of the ExtractionRecord entity.
func (_m *ExtractionRecord) QueryDocument() *DocumentQuery {
	return NewExtractionRecordClient(_m.config).QueryDocument(_m)
}

// QueryFields queries the "fields" edge of the ExtractionRecord entity.
func (_m *ExtractionRecord) QueryFields() *ExtractionFieldQuery {
	return NewExtractionRecordClient(_m.config).QueryFields(_m)
}

// Update returns a builder for updating this ExtractionRecord.
// Note that you need to call ExtractionRecord.Unwrap() before calling this method if this ExtractionRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExtractionRecord) Update() *ExtractionRecordUpdateOne {
	return NewExtractionRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExtractionRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExtractionRecord) Unwrap() *ExtractionRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExtractionRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExtractionRecord) String() string {
	var builder strings.Builder
	builder.WriteString("ExtractionRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RunID))
	builder.WriteString(", ")
	builder.WriteString("document_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocumentID))
	builder.WriteString(", ")
	builder.WriteString("record_status=")
	builder.WriteString(_m.RecordStatus)
	builder.WriteString(", ")
	builder.WriteString("failed_rules=")
	builder.WriteString(fmt.Sprintf("%v", _m.FailedRules))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ExtractionRecords is a parsable slice of ExtractionRecord.
type ExtractionRecords []*ExtractionRecord
