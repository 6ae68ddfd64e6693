// Code generated by ent, DO NOT EDIT.

package extractionfield

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the extractionfield type in the database.
	Label = "extraction_field"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRecordID holds the string denoting the record_id field in the database.
	FieldRecordID = "record_id"
	// FieldFieldName holds the string denoting the field_name field in the database.
	FieldFieldName = "field_name"
	// FieldFieldType holds the string denoting the field_type field in the database.
	FieldFieldType = "field_type"
	// FieldExtractedValue holds the string denoting the extracted_value field in the database.
	FieldExtractedValue = "extracted_value"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldEvidence holds the string denoting the evidence field in the database.
	FieldEvidence = "evidence"
	// FieldFieldStatus holds the string denoting the field_status field in the database.
	FieldFieldStatus = "field_status"
	// FieldValidationErrors holds the string denoting the validation_errors field in the database.
	FieldValidationErrors = "validation_errors"
	// EdgeRecord holds the string denoting the record edge name in mutations.
	EdgeRecord = "record"
	// EdgeReviewEvents holds the string denoting the review_events edge name in mutations.
	EdgeReviewEvents = "review_events"
	// Table holds the table name of the extractionfield in the database.
	Table = "extraction_fields"
	// RecordTable is the table that holds the record relation/edge.
	RecordTable = "extraction_fields"
	// RecordInverseTable is the table name for the ExtractionRecord entity.
	// It exists in this package in order to avoid circular dependency with the "extractionrecord" package.
	RecordInverseTable = "extraction_records"
	// RecordColumn is the table column denoting the record relation/edge.
	RecordColumn = "record_id"
	// ReviewEventsTable is the table that holds the review_events relation/edge.
	ReviewEventsTable = "review_events"
	// ReviewEventsInverseTable is the table name for the ReviewEvent entity.
	// It exists in this package in order to avoid circular dependency with the "reviewevent" package.
	ReviewEventsInverseTable = "review_events"
	// ReviewEventsColumn is the table column denoting the review_events relation/edge.
	ReviewEventsColumn = "field_id"
)

// Columns holds all SQL columns for extractionfield fields.
var Columns = []string{
	FieldID,
	FieldRecordID,
	FieldFieldName,
	FieldFieldType,
	FieldExtractedValue,
	FieldConfidence,
	FieldEvidence,
	FieldFieldStatus,
	FieldValidationErrors,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// FieldNameValidator is a validator for the "field_name" field. It is called by the builders before save.
	FieldNameValidator func(string) error
	// FieldTypeValidator is a validator for the "field_type" field. It is called by the builders before save.
	FieldTypeValidator func(string) error
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float32
	// DefaultFieldStatus holds the default value on creation for the "field_status" field.
	DefaultFieldStatus string
	// FieldStatusValidator is a validator for the "field_status" field. It is called by the builders before save.
	FieldStatusValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ExtractionField queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRecordID orders the results by the record_id field.
func ByRecordID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecordID, opts...).ToFunc()
}

// ByFieldName orders the results by the field_name field.
func ByFieldName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFieldName, opts...).ToFunc()
}

// ByFieldType orders the results by the field_type field.
func ByFieldType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFieldType, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByFieldStatus orders the results by the field_status field.
func ByFieldStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFieldStatus, opts...).ToFunc()
}

// ByRecordField orders the results by record field.
func ByRecordField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRecordStep(), sql.OrderByField(field, opts...))
	}
}

// ByReviewEventsCount orders the results by review_events count.
func ByReviewEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newReviewEventsStep(), opts...)
	}
}

// ByReviewEvents orders the results by review_events terms.
func ByReviewEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newReviewEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newRecordStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RecordInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RecordTable, RecordColumn),
	)
}
func newReviewEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ReviewEventsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ReviewEventsTable, ReviewEventsColumn),
	)
}
