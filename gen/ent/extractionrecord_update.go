// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/veridoc-ai/veridoc/gen/ent/document"
	"github.com/veridoc-ai/veridoc/gen/ent/extractionfield"
	"github.com/veridoc-ai/veridoc/gen/ent/extractionrecord"
	"github.com/veridoc-ai/veridoc/gen/ent/predicate"
	"github.com/veridoc-ai/veridoc/gen/ent/run"
)

// ExtractionRecordUpdate is the builder for updating ExtractionRecord entities.
type ExtractionRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractionRecordMutation
}

// Where appends a list predicates to the ExtractionRecordUpdate builder.
func (_u *ExtractionRecordUpdate) Where(ps ...predicate.ExtractionRecord) *ExtractionRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *ExtractionRecordUpdate) SetRunID(v uuid.UUID) *ExtractionRecordUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *ExtractionRecordUpdate) SetNillableRunID(v *uuid.UUID) *ExtractionRecordUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *ExtractionRecordUpdate) SetDocumentID(v uuid.UUID) *ExtractionRecordUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ExtractionRecordUpdate) SetNillableDocumentID(v *uuid.UUID) *ExtractionRecordUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetRecordStatus sets the "record_status" field.
func (_u *ExtractionRecordUpdate) SetRecordStatus(v string) *ExtractionRecordUpdate {
	_u.mutation.SetRecordStatus(v)
	return _u
}

// SetNillableRecordStatus sets the "record_status" field if the given value is not nil.
func (_u *ExtractionRecordUpdate) SetNillableRecordStatus(v *string) *ExtractionRecordUpdate {
	if v != nil {
		_u.SetRecordStatus(*v)
	}
	return _u
}

// SetFailedRules sets the "failed_rules" field.
func (_u *ExtractionRecordUpdate) SetFailedRules(v json.RawMessage) *ExtractionRecordUpdate {
	_u.mutation.SetFailedRules(v)
	return _u
}

// AppendFailedRules appends value to the "failed_rules" field.
func (_u *ExtractionRecordUpdate) AppendFailedRules(v json.RawMessage) *ExtractionRecordUpdate {
	_u.mutation.AppendFailedRules(v)
	return _u
}

// ClearFailedRules clears the value of the "failed_rules" field.
func (_u *ExtractionRecordUpdate) ClearFailedRules() *ExtractionRecordUpdate {
	_u.mutation.ClearFailedRules()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ExtractionRecordUpdate) SetCreatedAt(v time.Time) *ExtractionRecordUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ExtractionRecordUpdate) SetNillableCreatedAt(v *time.Time) *ExtractionRecordUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExtractionRecordUpdate) SetUpdatedAt(v time.Time) *ExtractionRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetRun sets the "run" edge to the Run entity.
func (_u *ExtractionRecordUpdate) SetRun(v *Run) *ExtractionRecordUpdate {
	return _u.SetRunID(v.ID)
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *ExtractionRecordUpdate) SetDocument(v *Document) *ExtractionRecordUpdate {
	return _u.SetDocumentID(v.ID)
}

// AddFieldIDs adds the "fields" edge to the ExtractionField entity by IDs.
func (_u *ExtractionRecordUpdate) AddFieldIDs(ids ...uuid.UUID) *ExtractionRecordUpdate {
	_u.mutation.AddFieldIDs(ids...)
	return _u
}

// AddFields adds the "fields" edges to the ExtractionField entity.
func (_u *ExtractionRecordUpdate) AddFields(v ...*ExtractionField) *ExtractionRecordUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFieldIDs(ids...)
}

// Mutation returns the ExtractionRecordMutation object of the builder.
func (_u *ExtractionRecordUpdate) Mutation() *ExtractionRecordMutation {
	return _u.mutation
}

// ClearRun clears the "run" edge to the Run entity.
func (_u *ExtractionRecordUpdate) ClearRun() *ExtractionRecordUpdate {
	_u.mutation.ClearRun()
	return _u
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *ExtractionRecordUpdate) ClearDocument() *ExtractionRecordUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// ClearFields clears all "fields" edges to the ExtractionField entity.
func (_u *ExtractionRecordUpdate) ClearFields() *ExtractionRecordUpdate {
	_u.mutation.ClearFields()
	return _u
}

// RemoveFieldIDs removes the "fields" edge to ExtractionField entities by IDs.
func (_u *ExtractionRecordUpdate) RemoveFieldIDs(ids ...uuid.UUID) *ExtractionRecordUpdate {
	_u.mutation.RemoveFieldIDs(ids...)
	return _u
}

// RemoveFields removes "fields" edges to ExtractionField entities.
func (_u *ExtractionRecordUpdate) RemoveFields(v ...*ExtractionField) *ExtractionRecordUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFieldIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractionRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractionRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExtractionRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := extractionrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionRecordUpdate) check() error {
	if v, ok := _u.mutation.RecordStatus(); ok {
		if err := extractionrecord.RecordStatusValidator(v); err != nil {
			return &ValidationError{Name: "record_status", err: fmt.Errorf(`ent: validator failed for field "ExtractionRecord.record_status": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractionRecord.run"`)
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractionRecord.document"`)
	}
	return nil
}

func (_u *ExtractionRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionrecord.Table, extractionrecord.Columns, sqlgraph.NewFieldSpec(extractionrecord.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RecordStatus(); ok {
		_spec.SetField(extractionrecord.FieldRecordStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.FailedRules(); ok {
		_spec.SetField(extractionrecord.FieldFailedRules, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFailedRules(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionrecord.FieldFailedRules, value)
		})
	}
	if _u.mutation.FailedRulesCleared() {
		_spec.ClearField(extractionrecord.FieldFailedRules, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(extractionrecord.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(extractionrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.RunCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionrecord.RunTable,
			Columns: []string{extractionrecord.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(run.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionrecord.RunTable,
			Columns: []string{extractionrecord.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(run.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionrecord.DocumentTable,
			Columns: []string{extractionrecord.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionrecord.DocumentTable,
			Columns: []string{extractionrecord.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FieldsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionrecord.FieldsTable,
			Columns: []string{extractionrecord.FieldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionfield.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFieldsIDs(); len(nodes) > 0 && !_u.mutation.FieldsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionrecord.FieldsTable,
			Columns: []string{extractionrecord.FieldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionfield.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FieldsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionrecord.FieldsTable,
			Columns: []string{extractionrecord.FieldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionfield.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractionrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractionRecordUpdateOne is the builder for updating a single ExtractionRecord entity.
type ExtractionRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractionRecordMutation
}

// SetRunID sets the "run_id" field.
func (_u *ExtractionRecordUpdateOne) SetRunID(v uuid.UUID) *ExtractionRecordUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *ExtractionRecordUpdateOne) SetNillableRunID(v *uuid.UUID) *ExtractionRecordUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *ExtractionRecordUpdateOne) SetDocumentID(v uuid.UUID) *ExtractionRecordUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ExtractionRecordUpdateOne) SetNillableDocumentID(v *uuid.UUID) *ExtractionRecordUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetRecordStatus sets the "record_status" field.
func (_u *ExtractionRecordUpdateOne) SetRecordStatus(v string) *ExtractionRecordUpdateOne {
	_u.mutation.SetRecordStatus(v)
	return _u
}

// SetNillableRecordStatus sets the "record_status" field if the given value is not nil.
func (_u *ExtractionRecordUpdateOne) SetNillableRecordStatus(v *string) *ExtractionRecordUpdateOne {
	if v != nil {
		_u.SetRecordStatus(*v)
	}
	return _u
}

// SetFailedRules sets the "failed_rules" field.
func (_u *ExtractionRecordUpdateOne) SetFailedRules(v json.RawMessage) *ExtractionRecordUpdateOne {
	_u.mutation.SetFailedRules(v)
	return _u
}

// AppendFailedRules appends value to the "failed_rules" field.
func (_u *ExtractionRecordUpdateOne) AppendFailedRules(v json.RawMessage) *ExtractionRecordUpdateOne {
	_u.mutation.AppendFailedRules(v)
	return _u
}

// ClearFailedRules clears the value of the "failed_rules" field.
func (_u *ExtractionRecordUpdateOne) ClearFailedRules() *ExtractionRecordUpdateOne {
	_u.mutation.ClearFailedRules()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ExtractionRecordUpdateOne) SetCreatedAt(v time.Time) *ExtractionRecordUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ExtractionRecordUpdateOne) SetNillableCreatedAt(v *time.Time) *ExtractionRecordUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExtractionRecordUpdateOne) SetUpdatedAt(v time.Time) *ExtractionRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetRun sets the "run" edge to the Run entity.
func (_u *ExtractionRecordUpdateOne) SetRun(v *Run) *ExtractionRecordUpdateOne {
	return _u.SetRunID(v.ID)
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *ExtractionRecordUpdateOne) SetDocument(v *Document) *ExtractionRecordUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// AddFieldIDs adds the "fields" edge to the ExtractionField entity by IDs.
func (_u *ExtractionRecordUpdateOne) AddFieldIDs(ids ...uuid.UUID) *ExtractionRecordUpdateOne {
	_u.mutation.AddFieldIDs(ids...)
	return _u
}

// AddFields adds the "fields" edges to the ExtractionField entity.
func (_u *ExtractionRecordUpdateOne) AddFields(v ...*ExtractionField) *ExtractionRecordUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFieldIDs(ids...)
}

// Mutation returns the ExtractionRecordMutation object of the builder.
func (_u *ExtractionRecordUpdateOne) Mutation() *ExtractionRecordMutation {
	return _u.mutation
}

// ClearRun clears the "run" edge to the Run entity.
func (_u *ExtractionRecordUpdateOne) ClearRun() *ExtractionRecordUpdateOne {
	_u.mutation.ClearRun()
	return _u
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *ExtractionRecordUpdateOne) ClearDocument() *ExtractionRecordUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// ClearFields clears all "fields" edges to the ExtractionField entity.
func (_u *ExtractionRecordUpdateOne) ClearFields() *ExtractionRecordUpdateOne {
	_u.mutation.ClearFields()
	return _u
}

// RemoveFieldIDs removes the "fields" edge to ExtractionField entities by IDs.
func (_u *ExtractionRecordUpdateOne) RemoveFieldIDs(ids ...uuid.UUID) *ExtractionRecordUpdateOne {
	_u.mutation.RemoveFieldIDs(ids...)
	return _u
}

// RemoveFields removes "fields" edges to ExtractionField entities.
func (_u *ExtractionRecordUpdateOne) RemoveFields(v ...*ExtractionField) *ExtractionRecordUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFieldIDs(ids...)
}

// Where appends a list predicates to the ExtractionRecordUpdate builder.
func (_u *ExtractionRecordUpdateOne) Where(ps ...predicate.ExtractionRecord) *ExtractionRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractionRecordUpdateOne) Select(field string, fields ...string) *ExtractionRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractionRecord entity.
func (_u *ExtractionRecordUpdateOne) Save(ctx context.Context) (*ExtractionRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionRecordUpdateOne) SaveX(ctx context.Context) *ExtractionRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractionRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExtractionRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := extractionrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionRecordUpdateOne) check() error {
	if v, ok := _u.mutation.RecordStatus(); ok {
		if err := extractionrecord.RecordStatusValidator(v); err != nil {
			return &ValidationError{Name: "record_status", err: fmt.Errorf(`ent: validator failed for field "ExtractionRecord.record_status": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractionRecord.run"`)
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractionRecord.document"`)
	}
	return nil
}

func (_u *ExtractionRecordUpdateOne) sqlSave(ctx context.Context) (_node *ExtractionRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionrecord.Table, extractionrecord.Columns, sqlgraph.NewFieldSpec(extractionrecord.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractionRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractionrecord.FieldID)
		for _, f := range fields {
			if !extractionrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractionrecord.FieldID {
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
	if value, ok := _u.mutation.RecordStatus(); ok {
		_spec.SetField(extractionrecord.FieldRecordStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.FailedRules(); ok {
		_spec.SetField(extractionrecord.FieldFailedRules, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFailedRules(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionrecord.FieldFailedRules, value)
		})
	}
	if _u.mutation.FailedRulesCleared() {
		_spec.ClearField(extractionrecord.FieldFailedRules, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(extractionrecord.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(extractionrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.RunCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionrecord.RunTable,
			Columns: []string{extractionrecord.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(run.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionrecord.RunTable,
			Columns: []string{extractionrecord.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(run.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionrecord.DocumentTable,
			Columns: []string{extractionrecord.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionrecord.DocumentTable,
			Columns: []string{extractionrecord.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FieldsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionrecord.FieldsTable,
			Columns: []string{extractionrecord.FieldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionfield.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFieldsIDs(); len(nodes) > 0 && !_u.mutation.FieldsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionrecord.FieldsTable,
			Columns: []string{extractionrecord.FieldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionfield.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FieldsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionrecord.FieldsTable,
			Columns: []string{extractionrecord.FieldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionfield.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ExtractionRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractionrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
