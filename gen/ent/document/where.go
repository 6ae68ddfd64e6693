// Code generated by ent, DO NOT EDIT.

package document

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/veridoc-ai/veridoc/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldProjectID, v))
}

// FileURL applies equality check predicate on the "file_url" field. It's identical to FileURLEQ.
func FileURL(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFileURL, v))
}

// FileType applies equality check predicate on the "file_type" field. It's identical to FileTypeEQ.
func FileType(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFileType, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldStatus, v))
}

// DocTypeScore applies equality check predicate on the "doc_type_score" field. It's identical to DocTypeScoreEQ.
func DocTypeScore(v float64) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldDocTypeScore, v))
}

// DocTypeDetected applies equality check predicate on the "doc_type_detected" field. It's identical to DocTypeDetectedEQ.
func DocTypeDetected(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldDocTypeDetected, v))
}

// DocTypeReason applies equality check predicate on the "doc_type_reason" field. It's identical to DocTypeReasonEQ.
func DocTypeReason(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldDocTypeReason, v))
}

// SkipReason applies equality check predicate on the "skip_reason" field. It's identical to SkipReasonEQ.
func SkipReason(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldSkipReason, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldProjectID, vs...))
}

// FileURLEQ applies the EQ predicate on the "file_url" field.
func FileURLEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFileURL, v))
}

// FileURLNEQ applies the NEQ predicate on the "file_url" field.
func FileURLNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldFileURL, v))
}

// FileURLIn applies the In predicate on the "file_url" field.
func FileURLIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldFileURL, vs...))
}

// FileURLNotIn applies the NotIn predicate on the "file_url" field.
func FileURLNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldFileURL, vs...))
}

// FileURLGT applies the GT predicate on the "file_url" field.
func FileURLGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldFileURL, v))
}

// FileURLGTE applies the GTE predicate on the "file_url" field.
func FileURLGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldFileURL, v))
}

// FileURLLT applies the LT predicate on the "file_url" field.
func FileURLLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldFileURL, v))
}

// FileURLLTE applies the LTE predicate on the "file_url" field.
func FileURLLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldFileURL, v))
}

// FileURLContains applies the Contains predicate on the "file_url" field.
func FileURLContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldFileURL, v))
}

// FileURLHasPrefix applies the HasPrefix predicate on the "file_url" field.
func FileURLHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldFileURL, v))
}

// FileURLHasSuffix applies the HasSuffix predicate on the "file_url" field.
func FileURLHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldFileURL, v))
}

// FileURLEqualFold applies the EqualFold predicate on the "file_url" field.
func FileURLEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldFileURL, v))
}

// FileURLContainsFold applies the ContainsFold predicate on the "file_url" field.
func FileURLContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldFileURL, v))
}

// FileTypeEQ applies the EQ predicate on the "file_type" field.
func FileTypeEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFileType, v))
}

// FileTypeNEQ applies the NEQ predicate on the "file_type" field.
func FileTypeNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldFileType, v))
}

// FileTypeIn applies the In predicate on the "file_type" field.
func FileTypeIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldFileType, vs...))
}

// FileTypeNotIn applies the NotIn predicate on the "file_type" field.
func FileTypeNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldFileType, vs...))
}

// FileTypeGT applies the GT predicate on the "file_type" field.
func FileTypeGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldFileType, v))
}

// FileTypeGTE applies the GTE predicate on the "file_type" field.
func FileTypeGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldFileType, v))
}

// FileTypeLT applies the LT predicate on the "file_type" field.
func FileTypeLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldFileType, v))
}

// FileTypeLTE applies the LTE predicate on the "file_type" field.
func FileTypeLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldFileType, v))
}

// FileTypeContains applies the Contains predicate on the "file_type" field.
func FileTypeContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldFileType, v))
}

// FileTypeHasPrefix applies the HasPrefix predicate on the "file_type" field.
func FileTypeHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldFileType, v))
}

// FileTypeHasSuffix applies the HasSuffix predicate on the "file_type" field.
func FileTypeHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldFileType, v))
}

// FileTypeEqualFold applies the EqualFold predicate on the "file_type" field.
func FileTypeEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldFileType, v))
}

// FileTypeContainsFold applies the ContainsFold predicate on the "file_type" field.
func FileTypeContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldFileType, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldStatus, v))
}

// DocTypeScoreEQ applies the EQ predicate on the "doc_type_score" field.
func DocTypeScoreEQ(v float64) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldDocTypeScore, v))
}

// DocTypeScoreNEQ applies the NEQ predicate on the "doc_type_score" field.
func DocTypeScoreNEQ(v float64) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldDocTypeScore, v))
}

// DocTypeScoreIn applies the In predicate on the "doc_type_score" field.
func DocTypeScoreIn(vs ...float64) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldDocTypeScore, vs...))
}

// DocTypeScoreNotIn applies the NotIn predicate on the "doc_type_score" field.
func DocTypeScoreNotIn(vs ...float64) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldDocTypeScore, vs...))
}

// DocTypeScoreGT applies the GT predicate on the "doc_type_score" field.
func DocTypeScoreGT(v float64) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldDocTypeScore, v))
}

// DocTypeScoreGTE applies the GTE predicate on the "doc_type_score" field.
func DocTypeScoreGTE(v float64) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldDocTypeScore, v))
}

// DocTypeScoreLT applies the LT predicate on the "doc_type_score" field.
func DocTypeScoreLT(v float64) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldDocTypeScore, v))
}

// DocTypeScoreLTE applies the LTE predicate on the "doc_type_score" field.
func DocTypeScoreLTE(v float64) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldDocTypeScore, v))
}

// DocTypeScoreIsNil applies the IsNil predicate on the "doc_type_score" field.
func DocTypeScoreIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldDocTypeScore))
}

// DocTypeScoreNotNil applies the NotNil predicate on the "doc_type_score" field.
func DocTypeScoreNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldDocTypeScore))
}

// DocTypeDetectedEQ applies the EQ predicate on the "doc_type_detected" field.
func DocTypeDetectedEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldDocTypeDetected, v))
}

// DocTypeDetectedNEQ applies the NEQ predicate on the "doc_type_detected" field.
func DocTypeDetectedNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldDocTypeDetected, v))
}

// DocTypeDetectedIn applies the In predicate on the "doc_type_detected" field.
func DocTypeDetectedIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldDocTypeDetected, vs...))
}

// DocTypeDetectedNotIn applies the NotIn predicate on the "doc_type_detected" field.
func DocTypeDetectedNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldDocTypeDetected, vs...))
}

// DocTypeDetectedGT applies the GT predicate on the "doc_type_detected" field.
func DocTypeDetectedGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldDocTypeDetected, v))
}

// DocTypeDetectedGTE applies the GTE predicate on the "doc_type_detected" field.
func DocTypeDetectedGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldDocTypeDetected, v))
}

// DocTypeDetectedLT applies the LT predicate on the "doc_type_detected" field.
func DocTypeDetectedLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldDocTypeDetected, v))
}

// DocTypeDetectedLTE applies the LTE predicate on the "doc_type_detected" field.
func DocTypeDetectedLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldDocTypeDetected, v))
}

// DocTypeDetectedContains applies the Contains predicate on the "doc_type_detected" field.
func DocTypeDetectedContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldDocTypeDetected, v))
}

// DocTypeDetectedHasPrefix applies the HasPrefix predicate on the "doc_type_detected" field.
func DocTypeDetectedHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldDocTypeDetected, v))
}

// DocTypeDetectedHasSuffix applies the HasSuffix predicate on the "doc_type_detected" field.
func DocTypeDetectedHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldDocTypeDetected, v))
}

// DocTypeDetectedIsNil applies the IsNil predicate on the "doc_type_detected" field.
func DocTypeDetectedIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldDocTypeDetected))
}

// DocTypeDetectedNotNil applies the NotNil predicate on the "doc_type_detected" field.
func DocTypeDetectedNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldDocTypeDetected))
}

// DocTypeDetectedEqualFold applies the EqualFold predicate on the "doc_type_detected" field.
func DocTypeDetectedEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldDocTypeDetected, v))
}

// DocTypeDetectedContainsFold applies the ContainsFold predicate on the "doc_type_detected" field.
func DocTypeDetectedContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldDocTypeDetected, v))
}

// DocTypeReasonEQ applies the EQ predicate on the "doc_type_reason" field.
func DocTypeReasonEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldDocTypeReason, v))
}

// DocTypeReasonNEQ applies the NEQ predicate on the "doc_type_reason" field.
func DocTypeReasonNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldDocTypeReason, v))
}

// DocTypeReasonIn applies the In predicate on the "doc_type_reason" field.
func DocTypeReasonIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldDocTypeReason, vs...))
}

// DocTypeReasonNotIn applies the NotIn predicate on the "doc_type_reason" field.
func DocTypeReasonNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldDocTypeReason, vs...))
}

// DocTypeReasonGT applies the GT predicate on the "doc_type_reason" field.
func DocTypeReasonGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldDocTypeReason, v))
}

// DocTypeReasonGTE applies the GTE predicate on the "doc_type_reason" field.
func DocTypeReasonGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldDocTypeReason, v))
}

// DocTypeReasonLT applies the LT predicate on the "doc_type_reason" field.
func DocTypeReasonLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldDocTypeReason, v))
}

// DocTypeReasonLTE applies the LTE predicate on the "doc_type_reason" field.
func DocTypeReasonLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldDocTypeReason, v))
}

// DocTypeReasonContains applies the Contains predicate on the "doc_type_reason" field.
func DocTypeReasonContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldDocTypeReason, v))
}

// DocTypeReasonHasPrefix applies the HasPrefix predicate on the "doc_type_reason" field.
func DocTypeReasonHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldDocTypeReason, v))
}

// DocTypeReasonHasSuffix applies the HasSuffix predicate on the "doc_type_reason" field.
func DocTypeReasonHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldDocTypeReason, v))
}

// DocTypeReasonIsNil applies the IsNil predicate on the "doc_type_reason" field.
func DocTypeReasonIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldDocTypeReason))
}

// DocTypeReasonNotNil applies the NotNil predicate on the "doc_type_reason" field.
func DocTypeReasonNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldDocTypeReason))
}

// DocTypeReasonEqualFold applies the EqualFold predicate on the "doc_type_reason" field.
func DocTypeReasonEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldDocTypeReason, v))
}

// DocTypeReasonContainsFold applies the ContainsFold predicate on the "doc_type_reason" field.
func DocTypeReasonContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldDocTypeReason, v))
}

// SkipReasonEQ applies the EQ predicate on the "skip_reason" field.
func SkipReasonEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldSkipReason, v))
}

// SkipReasonNEQ applies the NEQ predicate on the "skip_reason" field.
func SkipReasonNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldSkipReason, v))
}

// SkipReasonIn applies the In predicate on the "skip_reason" field.
func SkipReasonIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldSkipReason, vs...))
}

// SkipReasonNotIn applies the NotIn predicate on the "skip_reason" field.
func SkipReasonNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldSkipReason, vs...))
}

// SkipReasonGT applies the GT predicate on the "skip_reason" field.
func SkipReasonGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldSkipReason, v))
}

// SkipReasonGTE applies the GTE predicate on the "skip_reason" field.
func SkipReasonGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldSkipReason, v))
}

// SkipReasonLT applies the LT predicate on the "skip_reason" field.
func SkipReasonLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldSkipReason, v))
}

// SkipReasonLTE applies the LTE predicate on the "skip_reason" field.
func SkipReasonLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldSkipReason, v))
}

// SkipReasonContains applies the Contains predicate on the "skip_reason" field.
func SkipReasonContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldSkipReason, v))
}

// SkipReasonHasPrefix applies the HasPrefix predicate on the "skip_reason" field.
func SkipReasonHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldSkipReason, v))
}

// SkipReasonHasSuffix applies the HasSuffix predicate on the "skip_reason" field.
func SkipReasonHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldSkipReason, v))
}

// SkipReasonIsNil applies the IsNil predicate on the "skip_reason" field.
func SkipReasonIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldSkipReason))
}

// SkipReasonNotNil applies the NotNil predicate on the "skip_reason" field.
func SkipReasonNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldSkipReason))
}

// SkipReasonEqualFold applies the EqualFold predicate on the "skip_reason" field.
func SkipReasonEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldSkipReason, v))
}

// SkipReasonContainsFold applies the ContainsFold predicate on the "skip_reason" field.
func SkipReasonContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldSkipReason, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSteps applies the HasEdge predicate on the "steps" edge.
func HasSteps() predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StepsTable, StepsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStepsWith applies the HasEdge predicate on the "steps" edge with a given conditions (other predicates).
func HasStepsWith(preds ...predicate.RunStep) predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := newStepsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRecords applies the HasEdge predicate on the "records" edge.
func HasRecords() predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RecordsTable, RecordsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRecordsWith applies the HasEdge predicate on the "records" edge with a given conditions (other predicates).
func HasRecordsWith(preds ...predicate.ExtractionRecord) predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := newRecordsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Document) predicate.Document {
	return predicate.Document(sql.NotPredicates(p))
}
