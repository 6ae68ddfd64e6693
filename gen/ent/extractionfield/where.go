// Code generated by ent, DO NOT EDIT.

package extractionfield

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/veridoc-ai/veridoc/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldLTE(FieldID, id))
}

// RecordID applies equality check predicate on the "record_id" field. It's identical to RecordIDEQ.
func RecordID(v uuid.UUID) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldEQ(FieldRecordID, v))
}

// FieldName applies equality check predicate on the "field_name" field. It's identical to FieldNameEQ.
func FieldName(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldEQ(FieldFieldName, v))
}

// FieldType applies equality check predicate on the "field_type" field. It's identical to FieldTypeEQ.
func FieldType(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldEQ(FieldFieldType, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float32) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldEQ(FieldConfidence, v))
}

// FieldStatus applies equality check predicate on the "field_status" field. It's identical to FieldStatusEQ.
func FieldStatus(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldEQ(FieldFieldStatus, v))
}

// RecordIDEQ applies the EQ predicate on the "record_id" field.
func RecordIDEQ(v uuid.UUID) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldEQ(FieldRecordID, v))
}

// RecordIDNEQ applies the NEQ predicate on the "record_id" field.
func RecordIDNEQ(v uuid.UUID) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldNEQ(FieldRecordID, v))
}

// RecordIDIn applies the In predicate on the "record_id" field.
func RecordIDIn(vs ...uuid.UUID) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldIn(FieldRecordID, vs...))
}

// RecordIDNotIn applies the NotIn predicate on the "record_id" field.
func RecordIDNotIn(vs ...uuid.UUID) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldNotIn(FieldRecordID, vs...))
}

// FieldNameEQ applies the EQ predicate on the "field_name" field.
func FieldNameEQ(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldEQ(FieldFieldName, v))
}

// FieldNameNEQ applies the NEQ predicate on the "field_name" field.
func FieldNameNEQ(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldNEQ(FieldFieldName, v))
}

// FieldNameIn applies the In predicate on the "field_name" field.
func FieldNameIn(vs ...string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldIn(FieldFieldName, vs...))
}

// FieldNameNotIn applies the NotIn predicate on the "field_name" field.
func FieldNameNotIn(vs ...string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldNotIn(FieldFieldName, vs...))
}

// FieldNameGT applies the GT predicate on the "field_name" field.
func FieldNameGT(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldGT(FieldFieldName, v))
}

// FieldNameGTE applies the GTE predicate on the "field_name" field.
func FieldNameGTE(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldGTE(FieldFieldName, v))
}

// FieldNameLT applies the LT predicate on the "field_name" field.
func FieldNameLT(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldLT(FieldFieldName, v))
}

// FieldNameLTE applies the LTE predicate on the "field_name" field.
func FieldNameLTE(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldLTE(FieldFieldName, v))
}

// FieldNameContains applies the Contains predicate on the "field_name" field.
func FieldNameContains(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldContains(FieldFieldName, v))
}

// FieldNameHasPrefix applies the HasPrefix predicate on the "field_name" field.
func FieldNameHasPrefix(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldHasPrefix(FieldFieldName, v))
}

// FieldNameHasSuffix applies the HasSuffix predicate on the "field_name" field.
func FieldNameHasSuffix(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldHasSuffix(FieldFieldName, v))
}

// FieldNameEqualFold applies the EqualFold predicate on the "field_name" field.
func FieldNameEqualFold(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldEqualFold(FieldFieldName, v))
}

// FieldNameContainsFold applies the ContainsFold predicate on the "field_name" field.
func FieldNameContainsFold(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldContainsFold(FieldFieldName, v))
}

// FieldTypeEQ applies the EQ predicate on the "field_type" field.
func FieldTypeEQ(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldEQ(FieldFieldType, v))
}

// FieldTypeNEQ applies the NEQ predicate on the "field_type" field.
func FieldTypeNEQ(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldNEQ(FieldFieldType, v))
}

// FieldTypeIn applies the In predicate on the "field_type" field.
func FieldTypeIn(vs ...string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldIn(FieldFieldType, vs...))
}

// FieldTypeNotIn applies the NotIn predicate on the "field_type" field.
func FieldTypeNotIn(vs ...string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldNotIn(FieldFieldType, vs...))
}

// FieldTypeGT applies the GT predicate on the "field_type" field.
func FieldTypeGT(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldGT(FieldFieldType, v))
}

// FieldTypeGTE applies the GTE predicate on the "field_type" field.
func FieldTypeGTE(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldGTE(FieldFieldType, v))
}

// FieldTypeLT applies the LT predicate on the "field_type" field.
func FieldTypeLT(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldLT(FieldFieldType, v))
}

// FieldTypeLTE applies the LTE predicate on the "field_type" field.
func FieldTypeLTE(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldLTE(FieldFieldType, v))
}

// FieldTypeContains applies the Contains predicate on the "field_type" field.
func FieldTypeContains(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldContains(FieldFieldType, v))
}

// FieldTypeHasPrefix applies the HasPrefix predicate on the "field_type" field.
func FieldTypeHasPrefix(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldHasPrefix(FieldFieldType, v))
}

// FieldTypeHasSuffix applies the HasSuffix predicate on the "field_type" field.
func FieldTypeHasSuffix(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldHasSuffix(FieldFieldType, v))
}

// FieldTypeEqualFold applies the EqualFold predicate on the "field_type" field.
func FieldTypeEqualFold(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldEqualFold(FieldFieldType, v))
}

// FieldTypeContainsFold applies the ContainsFold predicate on the "field_type" field.
func FieldTypeContainsFold(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldContainsFold(FieldFieldType, v))
}

// ExtractedValueIsNil applies the IsNil predicate on the "extracted_value" field.
func ExtractedValueIsNil() predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldIsNull(FieldExtractedValue))
}

// ExtractedValueNotNil applies the NotNil predicate on the "extracted_value" field.
func ExtractedValueNotNil() predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldNotNull(FieldExtractedValue))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float32) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float32) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float32) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float32) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float32) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float32) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float32) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float32) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldLTE(FieldConfidence, v))
}

// EvidenceIsNil applies the IsNil predicate on the "evidence" field.
func EvidenceIsNil() predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldIsNull(FieldEvidence))
}

// EvidenceNotNil applies the NotNil predicate on the "evidence" field.
func EvidenceNotNil() predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldNotNull(FieldEvidence))
}

// FieldStatusEQ applies the EQ predicate on the "field_status" field.
func FieldStatusEQ(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldEQ(FieldFieldStatus, v))
}

// FieldStatusNEQ applies the NEQ predicate on the "field_status" field.
func FieldStatusNEQ(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldNEQ(FieldFieldStatus, v))
}

// FieldStatusIn applies the In predicate on the "field_status" field.
func FieldStatusIn(vs ...string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldIn(FieldFieldStatus, vs...))
}

// FieldStatusNotIn applies the NotIn predicate on the "field_status" field.
func FieldStatusNotIn(vs ...string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldNotIn(FieldFieldStatus, vs...))
}

// FieldStatusGT applies the GT predicate on the "field_status" field.
func FieldStatusGT(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldGT(FieldFieldStatus, v))
}

// FieldStatusGTE applies the GTE predicate on the "field_status" field.
func FieldStatusGTE(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldGTE(FieldFieldStatus, v))
}

// FieldStatusLT applies the LT predicate on the "field_status" field.
func FieldStatusLT(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldLT(FieldFieldStatus, v))
}

// FieldStatusLTE applies the LTE predicate on the "field_status" field.
func FieldStatusLTE(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldLTE(FieldFieldStatus, v))
}

// FieldStatusContains applies the Contains predicate on the "field_status" field.
func FieldStatusContains(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldContains(FieldFieldStatus, v))
}

// FieldStatusHasPrefix applies the HasPrefix predicate on the "field_status" field.
func FieldStatusHasPrefix(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldHasPrefix(FieldFieldStatus, v))
}

// FieldStatusHasSuffix applies the HasSuffix predicate on the "field_status" field.
func FieldStatusHasSuffix(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldHasSuffix(FieldFieldStatus, v))
}

// FieldStatusEqualFold applies the EqualFold predicate on the "field_status" field.
func FieldStatusEqualFold(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldEqualFold(FieldFieldStatus, v))
}

// FieldStatusContainsFold applies the ContainsFold predicate on the "field_status" field.
func FieldStatusContainsFold(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldContainsFold(FieldFieldStatus, v))
}

// ValidationErrorsIsNil applies the IsNil predicate on the "validation_errors" field.
func ValidationErrorsIsNil() predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldIsNull(FieldValidationErrors))
}

// ValidationErrorsNotNil applies the NotNil predicate on the "validation_errors" field.
func ValidationErrorsNotNil() predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldNotNull(FieldValidationErrors))
}

// HasRecord applies the HasEdge predicate on the "record" edge.
func HasRecord() predicate.ExtractionField {
	return predicate.ExtractionField(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RecordTable, RecordColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRecordWith applies the HasEdge predicate on the "record" edge with a given conditions (other predicates).
func HasRecordWith(preds ...predicate.ExtractionRecord) predicate.ExtractionField {
	return predicate.ExtractionField(func(s *sql.Selector) {
		step := newRecordStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasReviewEvents applies the HasEdge predicate on the "review_events" edge.
func HasReviewEvents() predicate.ExtractionField {
	return predicate.ExtractionField(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ReviewEventsTable, ReviewEventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReviewEventsWith applies the HasEdge predicate on the "review_events" edge with a given conditions (other predicates).
func HasReviewEventsWith(preds ...predicate.ReviewEvent) predicate.ExtractionField {
	return predicate.ExtractionField(func(s *sql.Selector) {
		step := newReviewEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExtractionField) predicate.ExtractionField {
	return predicate.ExtractionField(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExtractionField) predicate.ExtractionField {
	return predicate.ExtractionField(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExtractionField) predicate.ExtractionField {
	return predicate.ExtractionField(sql.NotPredicates(p))
}
