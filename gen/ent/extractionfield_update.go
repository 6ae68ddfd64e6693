// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/veridoc-ai/veridoc/gen/ent/extractionfield"
	"github.com/veridoc-ai/veridoc/gen/ent/extractionrecord"
	"github.com/veridoc-ai/veridoc/gen/ent/predicate"
	"github.com/veridoc-ai/veridoc/gen/ent/reviewevent"
)

// ExtractionFieldUpdate is the builder for updating ExtractionField entities.
type ExtractionFieldUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractionFieldMutation
}

// Where appends a list predicates to the ExtractionFieldUpdate builder.
func (_u *ExtractionFieldUpdate) Where(ps ...predicate.ExtractionField) *ExtractionFieldUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRecordID sets the "record_id" field.
func (_u *ExtractionFieldUpdate) SetRecordID(v uuid.UUID) *ExtractionFieldUpdate {
	_u.mutation.SetRecordID(v)
	return _u
}

// SetNillableRecordID sets the "record_id" field if the given value is not nil.
func (_u *ExtractionFieldUpdate) SetNillableRecordID(v *uuid.UUID) *ExtractionFieldUpdate {
	if v != nil {
		_u.SetRecordID(*v)
	}
	return _u
}

// SetFieldName sets the "field_name" field.
func (_u *ExtractionFieldUpdate) SetFieldName(v string) *ExtractionFieldUpdate {
	_u.mutation.SetFieldName(v)
	return _u
}

// SetNillableFieldName sets the "field_name" field if the given value is not nil.
func (_u *ExtractionFieldUpdate) SetNillableFieldName(v *string) *ExtractionFieldUpdate {
	if v != nil {
		_u.SetFieldName(*v)
	}
	return _u
}

// SetFieldType sets the "field_type" field.
func (_u *ExtractionFieldUpdate) SetFieldType(v string) *ExtractionFieldUpdate {
	_u.mutation.SetFieldType(v)
	return _u
}

// SetNillableFieldType sets the "field_type" field if the given value is not nil.
func (_u *ExtractionFieldUpdate) SetNillableFieldType(v *string) *ExtractionFieldUpdate {
	if v != nil {
		_u.SetFieldType(*v)
	}
	return _u
}

// SetExtractedValue sets the "extracted_value" field.
func (_u *ExtractionFieldUpdate) SetExtractedValue(v json.RawMessage) *ExtractionFieldUpdate {
	_u.mutation.SetExtractedValue(v)
	return _u
}

// AppendExtractedValue appends value to the "extracted_value" field.
func (_u *ExtractionFieldUpdate) AppendExtractedValue(v json.RawMessage) *ExtractionFieldUpdate {
	_u.mutation.AppendExtractedValue(v)
	return _u
}

// ClearExtractedValue clears the value of the "extracted_value" field.
func (_u *ExtractionFieldUpdate) ClearExtractedValue() *ExtractionFieldUpdate {
	_u.mutation.ClearExtractedValue()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ExtractionFieldUpdate) SetConfidence(v float32) *ExtractionFieldUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ExtractionFieldUpdate) SetNillableConfidence(v *float32) *ExtractionFieldUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ExtractionFieldUpdate) AddConfidence(v float32) *ExtractionFieldUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetEvidence sets the "evidence" field.
func (_u *ExtractionFieldUpdate) SetEvidence(v json.RawMessage) *ExtractionFieldUpdate {
	_u.mutation.SetEvidence(v)
	return _u
}

// AppendEvidence appends value to the "evidence" field.
func (_u *ExtractionFieldUpdate) AppendEvidence(v json.RawMessage) *ExtractionFieldUpdate {
	_u.mutation.AppendEvidence(v)
	return _u
}

// ClearEvidence clears the value of the "evidence" field.
func (_u *ExtractionFieldUpdate) ClearEvidence() *ExtractionFieldUpdate {
	_u.mutation.ClearEvidence()
	return _u
}

// SetFieldStatus sets the "field_status" field.
func (_u *ExtractionFieldUpdate) SetFieldStatus(v string) *ExtractionFieldUpdate {
	_u.mutation.SetFieldStatus(v)
	return _u
}

// SetNillableFieldStatus sets the "field_status" field if the given value is not nil.
func (_u *ExtractionFieldUpdate) SetNillableFieldStatus(v *string) *ExtractionFieldUpdate {
	if v != nil {
		_u.SetFieldStatus(*v)
	}
	return _u
}

// SetValidationErrors sets the "validation_errors" field.
func (_u *ExtractionFieldUpdate) SetValidationErrors(v json.RawMessage) *ExtractionFieldUpdate {
	_u.mutation.SetValidationErrors(v)
	return _u
}

// AppendValidationErrors appends value to the "validation_errors" field.
func (_u *ExtractionFieldUpdate) AppendValidationErrors(v json.RawMessage) *ExtractionFieldUpdate {
	_u.mutation.AppendValidationErrors(v)
	return _u
}

// ClearValidationErrors clears the value of the "validation_errors" field.
func (_u *ExtractionFieldUpdate) ClearValidationErrors() *ExtractionFieldUpdate {
	_u.mutation.ClearValidationErrors()
	return _u
}

// SetRecord sets the "record" edge to the ExtractionRecord entity.
func (_u *ExtractionFieldUpdate) SetRecord(v *ExtractionRecord) *ExtractionFieldUpdate {
	return _u.SetRecordID(v.ID)
}

// AddReviewEventIDs adds the "review_events" edge to the ReviewEvent entity by IDs.
func (_u *ExtractionFieldUpdate) AddReviewEventIDs(ids ...uuid.UUID) *ExtractionFieldUpdate {
	_u.mutation.AddReviewEventIDs(ids...)
	return _u
}

// AddReviewEvents adds the "review_events" edges to the ReviewEvent entity.
func (_u *ExtractionFieldUpdate) AddReviewEvents(v ...*ReviewEvent) *ExtractionFieldUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReviewEventIDs(ids...)
}

// Mutation returns the ExtractionFieldMutation object of the builder.
func (_u *ExtractionFieldUpdate) Mutation() *ExtractionFieldMutation {
	return _u.mutation
}

// ClearRecord clears the "record" edge to the ExtractionRecord entity.
func (_u *ExtractionFieldUpdate) ClearRecord() *ExtractionFieldUpdate {
	_u.mutation.ClearRecord()
	return _u
}

// ClearReviewEvents clears all "review_events" edges to the ReviewEvent entity.
func (_u *ExtractionFieldUpdate) ClearReviewEvents() *ExtractionFieldUpdate {
	_u.mutation.ClearReviewEvents()
	return _u
}

// RemoveReviewEventIDs removes the "review_events" edge to ReviewEvent entities by IDs.
func (_u *ExtractionFieldUpdate) RemoveReviewEventIDs(ids ...uuid.UUID) *ExtractionFieldUpdate {
	_u.mutation.RemoveReviewEventIDs(ids...)
	return _u
}

// RemoveReviewEvents removes "review_events" edges to ReviewEvent entities.
func (_u *ExtractionFieldUpdate) RemoveReviewEvents(v ...*ReviewEvent) *ExtractionFieldUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReviewEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractionFieldUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionFieldUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractionFieldUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionFieldUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionFieldUpdate) check() error {
	if v, ok := _u.mutation.FieldName(); ok {
		if err := extractionfield.FieldNameValidator(v); err != nil {
			return &ValidationError{Name: "field_name", err: fmt.Errorf(`ent: validator failed for field "ExtractionField.field_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FieldType(); ok {
		if err := extractionfield.FieldTypeValidator(v); err != nil {
			return &ValidationError{Name: "field_type", err: fmt.Errorf(`ent: validator failed for field "ExtractionField.field_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FieldStatus(); ok {
		if err := extractionfield.FieldStatusValidator(v); err != nil {
			return &ValidationError{Name: "field_status", err: fmt.Errorf(`ent: validator failed for field "ExtractionField.field_status": %w`, err)}
		}
	}
	if _u.mutation.RecordCleared() && len(_u.mutation.RecordIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractionField.record"`)
	}
	return nil
}

func (_u *ExtractionFieldUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionfield.Table, extractionfield.Columns, sqlgraph.NewFieldSpec(extractionfield.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FieldName(); ok {
		_spec.SetField(extractionfield.FieldFieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FieldType(); ok {
		_spec.SetField(extractionfield.FieldFieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractedValue(); ok {
		_spec.SetField(extractionfield.FieldExtractedValue, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedValue(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionfield.FieldExtractedValue, value)
		})
	}
	if _u.mutation.ExtractedValueCleared() {
		_spec.ClearField(extractionfield.FieldExtractedValue, field.TypeJSON)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(extractionfield.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(extractionfield.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.Evidence(); ok {
		_spec.SetField(extractionfield.FieldEvidence, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEvidence(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionfield.FieldEvidence, value)
		})
	}
	if _u.mutation.EvidenceCleared() {
		_spec.ClearField(extractionfield.FieldEvidence, field.TypeJSON)
	}
	if value, ok := _u.mutation.FieldStatus(); ok {
		_spec.SetField(extractionfield.FieldFieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ValidationErrors(); ok {
		_spec.SetField(extractionfield.FieldValidationErrors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedValidationErrors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionfield.FieldValidationErrors, value)
		})
	}
	if _u.mutation.ValidationErrorsCleared() {
		_spec.ClearField(extractionfield.FieldValidationErrors, field.TypeJSON)
	}
	if _u.mutation.RecordCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionfield.RecordTable,
			Columns: []string{extractionfield.RecordColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionrecord.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecordIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionfield.RecordTable,
			Columns: []string{extractionfield.RecordColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReviewEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionfield.ReviewEventsTable,
			Columns: []string{extractionfield.ReviewEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reviewevent.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReviewEventsIDs(); len(nodes) > 0 && !_u.mutation.ReviewEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionfield.ReviewEventsTable,
			Columns: []string{extractionfield.ReviewEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reviewevent.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReviewEventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionfield.ReviewEventsTable,
			Columns: []string{extractionfield.ReviewEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reviewevent.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractionfield.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractionFieldUpdateOne is the builder for updating a single ExtractionField entity.
type ExtractionFieldUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractionFieldMutation
}

// SetRecordID sets the "record_id" field.
func (_u *ExtractionFieldUpdateOne) SetRecordID(v uuid.UUID) *ExtractionFieldUpdateOne {
	_u.mutation.SetRecordID(v)
	return _u
}

// SetNillableRecordID sets the "record_id" field if the given value is not nil.
func (_u *ExtractionFieldUpdateOne) SetNillableRecordID(v *uuid.UUID) *ExtractionFieldUpdateOne {
	if v != nil {
		_u.SetRecordID(*v)
	}
	return _u
}

// SetFieldName sets the "field_name" field.
func (_u *ExtractionFieldUpdateOne) SetFieldName(v string) *ExtractionFieldUpdateOne {
	_u.mutation.SetFieldName(v)
	return _u
}

// SetNillableFieldName sets the "field_name" field if the given value is not nil.
func (_u *ExtractionFieldUpdateOne) SetNillableFieldName(v *string) *ExtractionFieldUpdateOne {
	if v != nil {
		_u.SetFieldName(*v)
	}
	return _u
}

// SetFieldType sets the "field_type" field.
func (_u *ExtractionFieldUpdateOne) SetFieldType(v string) *ExtractionFieldUpdateOne {
	_u.mutation.SetFieldType(v)
	return _u
}

// SetNillableFieldType sets the "field_type" field if the given value is not nil.
func (_u *ExtractionFieldUpdateOne) SetNillableFieldType(v *string) *ExtractionFieldUpdateOne {
	if v != nil {
		_u.SetFieldType(*v)
	}
	return _u
}

// SetExtractedValue sets the "extracted_value" field.
func (_u *ExtractionFieldUpdateOne) SetExtractedValue(v json.RawMessage) *ExtractionFieldUpdateOne {
	_u.mutation.SetExtractedValue(v)
	return _u
}

// AppendExtractedValue appends value to the "extracted_value" field.
func (_u *ExtractionFieldUpdateOne) AppendExtractedValue(v json.RawMessage) *ExtractionFieldUpdateOne {
	_u.mutation.AppendExtractedValue(v)
	return _u
}

// ClearExtractedValue clears the value of the "extracted_value" field.
func (_u *ExtractionFieldUpdateOne) ClearExtractedValue() *ExtractionFieldUpdateOne {
	_u.mutation.ClearExtractedValue()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ExtractionFieldUpdateOne) SetConfidence(v float32) *ExtractionFieldUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ExtractionFieldUpdateOne) SetNillableConfidence(v *float32) *ExtractionFieldUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ExtractionFieldUpdateOne) AddConfidence(v float32) *ExtractionFieldUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetEvidence sets the "evidence" field.
func (_u *ExtractionFieldUpdateOne) SetEvidence(v json.RawMessage) *ExtractionFieldUpdateOne {
	_u.mutation.SetEvidence(v)
	return _u
}

// AppendEvidence appends value to the "evidence" field.
func (_u *ExtractionFieldUpdateOne) AppendEvidence(v json.RawMessage) *ExtractionFieldUpdateOne {
	_u.mutation.AppendEvidence(v)
	return _u
}

// ClearEvidence clears the value of the "evidence" field.
func (_u *ExtractionFieldUpdateOne) ClearEvidence() *ExtractionFieldUpdateOne {
	_u.mutation.ClearEvidence()
	return _u
}

// SetFieldStatus sets the "field_status" field.
func (_u *ExtractionFieldUpdateOne) SetFieldStatus(v string) *ExtractionFieldUpdateOne {
	_u.mutation.SetFieldStatus(v)
	return _u
}

// SetNillableFieldStatus sets the "field_status" field if the given value is not nil.
func (_u *ExtractionFieldUpdateOne) SetNillableFieldStatus(v *string) *ExtractionFieldUpdateOne {
	if v != nil {
		_u.SetFieldStatus(*v)
	}
	return _u
}

// SetValidationErrors sets the "validation_errors" field.
func (_u *ExtractionFieldUpdateOne) SetValidationErrors(v json.RawMessage) *ExtractionFieldUpdateOne {
	_u.mutation.SetValidationErrors(v)
	return _u
}

// AppendValidationErrors appends value to the "validation_errors" field.
func (_u *ExtractionFieldUpdateOne) AppendValidationErrors(v json.RawMessage) *ExtractionFieldUpdateOne {
	_u.mutation.AppendValidationErrors(v)
	return _u
}

// ClearValidationErrors clears the value of the "validation_errors" field.
func (_u *ExtractionFieldUpdateOne) ClearValidationErrors() *ExtractionFieldUpdateOne {
	_u.mutation.ClearValidationErrors()
	return _u
}

// SetRecord sets the "record" edge to the ExtractionRecord entity.
func (_u *ExtractionFieldUpdateOne) SetRecord(v *ExtractionRecord) *ExtractionFieldUpdateOne {
	return _u.SetRecordID(v.ID)
}

// AddReviewEventIDs adds the "review_events" edge to the ReviewEvent entity by IDs.
func (_u *ExtractionFieldUpdateOne) AddReviewEventIDs(ids ...uuid.UUID) *ExtractionFieldUpdateOne {
	_u.mutation.AddReviewEventIDs(ids...)
	return _u
}

// AddReviewEvents adds the "review_events" edges to the ReviewEvent entity.
func (_u *ExtractionFieldUpdateOne) AddReviewEvents(v ...*ReviewEvent) *ExtractionFieldUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReviewEventIDs(ids...)
}

// Mutation returns the ExtractionFieldMutation object of the builder.
func (_u *ExtractionFieldUpdateOne) Mutation() *ExtractionFieldMutation {
	return _u.mutation
}

// ClearRecord clears the "record" edge to the ExtractionRecord entity.
func (_u *ExtractionFieldUpdateOne) ClearRecord() *ExtractionFieldUpdateOne {
	_u.mutation.ClearRecord()
	return _u
}

// ClearReviewEvents clears all "review_events" edges to the ReviewEvent entity.
func (_u *ExtractionFieldUpdateOne) ClearReviewEvents() *ExtractionFieldUpdateOne {
	_u.mutation.ClearReviewEvents()
	return _u
}

// RemoveReviewEventIDs removes the "review_events" edge to ReviewEvent entities by IDs.
func (_u *ExtractionFieldUpdateOne) RemoveReviewEventIDs(ids ...uuid.UUID) *ExtractionFieldUpdateOne {
	_u.mutation.RemoveReviewEventIDs(ids...)
	return _u
}

// RemoveReviewEvents removes "review_events" edges to ReviewEvent entities.
func (_u *ExtractionFieldUpdateOne) RemoveReviewEvents(v ...*ReviewEvent) *ExtractionFieldUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReviewEventIDs(ids...)
}

// Where appends a list predicates to the ExtractionFieldUpdate builder.
func (_u *ExtractionFieldUpdateOne) Where(ps ...predicate.ExtractionField) *ExtractionFieldUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractionFieldUpdateOne) Select(field string, fields ...string) *ExtractionFieldUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractionField entity.
func (_u *ExtractionFieldUpdateOne) Save(ctx context.Context) (*ExtractionField, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionFieldUpdateOne) SaveX(ctx context.Context) *ExtractionField {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractionFieldUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionFieldUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionFieldUpdateOne) check() error {
	if v, ok := _u.mutation.FieldName(); ok {
		if err := extractionfield.FieldNameValidator(v); err != nil {
			return &ValidationError{Name: "field_name", err: fmt.Errorf(`ent: validator failed for field "ExtractionField.field_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FieldType(); ok {
		if err := extractionfield.FieldTypeValidator(v); err != nil {
			return &ValidationError{Name: "field_type", err: fmt.Errorf(`ent: validator failed for field "ExtractionField.field_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FieldStatus(); ok {
		if err := extractionfield.FieldStatusValidator(v); err != nil {
			return &ValidationError{Name: "field_status", err: fmt.Errorf(`ent: validator failed for field "ExtractionField.field_status": %w`, err)}
		}
	}
	if _u.mutation.RecordCleared() && len(_u.mutation.RecordIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractionField.record"`)
	}
	return nil
}

func (_u *ExtractionFieldUpdateOne) sqlSave(ctx context.Context) (_node *ExtractionField, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionfield.Table, extractionfield.Columns, sqlgraph.NewFieldSpec(extractionfield.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractionField.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractionfield.FieldID)
		for _, f := range fields {
			if !extractionfield.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractionfield.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FieldName(); ok {
		_spec.SetField(extractionfield.FieldFieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FieldType(); ok {
		_spec.SetField(extractionfield.FieldFieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractedValue(); ok {
		_spec.SetField(extractionfield.FieldExtractedValue, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedValue(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionfield.FieldExtractedValue, value)
		})
	}
	if _u.mutation.ExtractedValueCleared() {
		_spec.ClearField(extractionfield.FieldExtractedValue, field.TypeJSON)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(extractionfield.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(extractionfield.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.Evidence(); ok {
		_spec.SetField(extractionfield.FieldEvidence, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEvidence(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionfield.FieldEvidence, value)
		})
	}
	if _u.mutation.EvidenceCleared() {
		_spec.ClearField(extractionfield.FieldEvidence, field.TypeJSON)
	}
	if value, ok := _u.mutation.FieldStatus(); ok {
		_spec.SetField(extractionfield.FieldFieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ValidationErrors(); ok {
		_spec.SetField(extractionfield.FieldValidationErrors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedValidationErrors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionfield.FieldValidationErrors, value)
		})
	}
	if _u.mutation.ValidationErrorsCleared() {
		_spec.ClearField(extractionfield.FieldValidationErrors, field.TypeJSON)
	}
	if _u.mutation.RecordCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionfield.RecordTable,
			Columns: []string{extractionfield.RecordColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionrecord.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecordIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionfield.RecordTable,
			Columns: []string{extractionfield.RecordColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReviewEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionfield.ReviewEventsTable,
			Columns: []string{extractionfield.ReviewEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reviewevent.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReviewEventsIDs(); len(nodes) > 0 && !_u.mutation.ReviewEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionfield.ReviewEventsTable,
			Columns: []string{extractionfield.ReviewEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reviewevent.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReviewEventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionfield.ReviewEventsTable,
			Columns: []string{extractionfield.ReviewEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reviewevent.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ExtractionField{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractionfield.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
