// Code generated by ent, DO NOT EDIT.

package extractionrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/veridoc-ai/veridoc/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldLTE(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v uuid.UUID) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEQ(FieldRunID, v))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v uuid.UUID) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEQ(FieldDocumentID, v))
}

// RecordStatus applies equality check predicate on the "record_status" field. It's identical to RecordStatusEQ.
func RecordStatus(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEQ(FieldRecordStatus, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v uuid.UUID) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v uuid.UUID) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...uuid.UUID) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...uuid.UUID) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNotIn(FieldRunID, vs...))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v uuid.UUID) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v uuid.UUID) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...uuid.UUID) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...uuid.UUID) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNotIn(FieldDocumentID, vs...))
}

// RecordStatusEQ applies the EQ predicate on the "record_status" field.
func RecordStatusEQ(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEQ(FieldRecordStatus, v))
}

// RecordStatusNEQ applies the NEQ predicate on the "record_status" field.
func RecordStatusNEQ(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNEQ(FieldRecordStatus, v))
}

// RecordStatusIn applies the In predicate on the "record_status" field.
func RecordStatusIn(vs ...string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldIn(FieldRecordStatus, vs...))
}

// RecordStatusNotIn applies the NotIn predicate on the "record_status" field.
func RecordStatusNotIn(vs ...string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNotIn(FieldRecordStatus, vs...))
}

// RecordStatusGT applies the GT predicate on the "record_status" field.
func RecordStatusGT(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldGT(FieldRecordStatus, v))
}

// RecordStatusGTE applies the GTE predicate on the "record_status" field.
func RecordStatusGTE(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldGTE(FieldRecordStatus, v))
}

// RecordStatusLT applies the LT predicate on the "record_status" field.
func RecordStatusLT(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldLT(FieldRecordStatus, v))
}

// RecordStatusLTE applies the LTE predicate on the "record_status" field.
func RecordStatusLTE(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldLTE(FieldRecordStatus, v))
}

// RecordStatusContains applies the Contains predicate on the "record_status" field.
func RecordStatusContains(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldContains(FieldRecordStatus, v))
}

// RecordStatusHasPrefix applies the HasPrefix predicate on the "record_status" field.
func RecordStatusHasPrefix(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldHasPrefix(FieldRecordStatus, v))
}

// RecordStatusHasSuffix applies the HasSuffix predicate on the "record_status" field.
func RecordStatusHasSuffix(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldHasSuffix(FieldRecordStatus, v))
}

// RecordStatusEqualFold applies the EqualFold predicate on the "record_status" field.
func RecordStatusEqualFold(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEqualFold(FieldRecordStatus, v))
}

// RecordStatusContainsFold applies the ContainsFold predicate on the "record_status" field.
func RecordStatusContainsFold(v string) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldContainsFold(FieldRecordStatus, v))
}

// FailedRulesIsNil applies the IsNil predicate on the "failed_rules" field.
func FailedRulesIsNil() predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldIsNull(FieldFailedRules))
}

// FailedRulesNotNil applies the NotNil predicate on the "failed_rules" field.
func FailedRulesNotNil() predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNotNull(FieldFailedRules))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.ExtractionRecord {
	return predicate.ExtractionRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.Run) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.ExtractionRecord {
	return predicate.ExtractionRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFields applies the HasEdge predicate on the "fields" edge.
func HasFields() predicate.ExtractionRecord {
	return predicate.ExtractionRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FieldsTable, FieldsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFieldsWith applies the HasEdge predicate on the "fields" edge with a given conditions (other predicates).
func HasFieldsWith(preds ...predicate.ExtractionField) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(func(s *sql.Selector) {
		step := newFieldsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExtractionRecord) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExtractionRecord) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExtractionRecord) predicate.ExtractionRecord {
	return predicate.ExtractionRecord(sql.NotPredicates(p))
}
