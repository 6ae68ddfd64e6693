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
	"github.com/veridoc-ai/veridoc/gen/ent/predicate"
	"github.com/veridoc-ai/veridoc/gen/ent/run"
	"github.com/veridoc-ai/veridoc/gen/ent/runstep"
)

// RunStepUpdate is the builder for updating RunStep entities.
type RunStepUpdate struct {
	config
	hooks    []Hook
	mutation *RunStepMutation
}

// Where appends a list predicates to the RunStepUpdate builder.
func (_u *RunStepUpdate) Where(ps ...predicate.RunStep) *RunStepUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *RunStepUpdate) SetRunID(v uuid.UUID) *RunStepUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *RunStepUpdate) SetNillableRunID(v *uuid.UUID) *RunStepUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *RunStepUpdate) SetDocumentID(v uuid.UUID) *RunStepUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *RunStepUpdate) SetNillableDocumentID(v *uuid.UUID) *RunStepUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetStepName sets the "step_name" field.
func (_u *RunStepUpdate) SetStepName(v string) *RunStepUpdate {
	_u.mutation.SetStepName(v)
	return _u
}

// SetNillableStepName sets the "step_name" field if the given value is not nil.
func (_u *RunStepUpdate) SetNillableStepName(v *string) *RunStepUpdate {
	if v != nil {
		_u.SetStepName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RunStepUpdate) SetStatus(v string) *RunStepUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RunStepUpdate) SetNillableStatus(v *string) *RunStepUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetInput sets the "input" field.
func (_u *RunStepUpdate) SetInput(v json.RawMessage) *RunStepUpdate {
	_u.mutation.SetInput(v)
	return _u
}

// AppendInput appends value to the "input" field.
func (_u *RunStepUpdate) AppendInput(v json.RawMessage) *RunStepUpdate {
	_u.mutation.AppendInput(v)
	return _u
}

// ClearInput clears the value of the "input" field.
func (_u *RunStepUpdate) ClearInput() *RunStepUpdate {
	_u.mutation.ClearInput()
	return _u
}

// SetOutput sets the "output" field.
func (_u *RunStepUpdate) SetOutput(v json.RawMessage) *RunStepUpdate {
	_u.mutation.SetOutput(v)
	return _u
}

// AppendOutput appends value to the "output" field.
func (_u *RunStepUpdate) AppendOutput(v json.RawMessage) *RunStepUpdate {
	_u.mutation.AppendOutput(v)
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *RunStepUpdate) ClearOutput() *RunStepUpdate {
	_u.mutation.ClearOutput()
	return _u
}

// SetError sets the "error" field.
func (_u *RunStepUpdate) SetError(v string) *RunStepUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *RunStepUpdate) SetNillableError(v *string) *RunStepUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *RunStepUpdate) ClearError() *RunStepUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *RunStepUpdate) SetStartedAt(v time.Time) *RunStepUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *RunStepUpdate) SetNillableStartedAt(v *time.Time) *RunStepUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *RunStepUpdate) ClearStartedAt() *RunStepUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *RunStepUpdate) SetFinishedAt(v time.Time) *RunStepUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *RunStepUpdate) SetNillableFinishedAt(v *time.Time) *RunStepUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *RunStepUpdate) ClearFinishedAt() *RunStepUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetRun sets the "run" edge to the Run entity.
func (_u *RunStepUpdate) SetRun(v *Run) *RunStepUpdate {
	return _u.SetRunID(v.ID)
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *RunStepUpdate) SetDocument(v *Document) *RunStepUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the RunStepMutation object of the builder.
func (_u *RunStepUpdate) Mutation() *RunStepMutation {
	return _u.mutation
}

// ClearRun clears the "run" edge to the Run entity.
func (_u *RunStepUpdate) ClearRun() *RunStepUpdate {
	_u.mutation.ClearRun()
	return _u
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *RunStepUpdate) ClearDocument() *RunStepUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RunStepUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunStepUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RunStepUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunStepUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunStepUpdate) check() error {
	if v, ok := _u.mutation.StepName(); ok {
		if err := runstep.StepNameValidator(v); err != nil {
			return &ValidationError{Name: "step_name", err: fmt.Errorf(`ent: validator failed for field "RunStep.step_name": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RunStep.run"`)
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RunStep.document"`)
	}
	return nil
}

func (_u *RunStepUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(runstep.Table, runstep.Columns, sqlgraph.NewFieldSpec(runstep.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StepName(); ok {
		_spec.SetField(runstep.FieldStepName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(runstep.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Input(); ok {
		_spec.SetField(runstep.FieldInput, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedInput(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, runstep.FieldInput, value)
		})
	}
	if _u.mutation.InputCleared() {
		_spec.ClearField(runstep.FieldInput, field.TypeJSON)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(runstep.FieldOutput, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOutput(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, runstep.FieldOutput, value)
		})
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(runstep.FieldOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(runstep.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(runstep.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(runstep.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(runstep.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(runstep.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(runstep.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.RunCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   runstep.RunTable,
			Columns: []string{runstep.RunColumn},
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
			Table:   runstep.RunTable,
			Columns: []string{runstep.RunColumn},
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
			Table:   runstep.DocumentTable,
			Columns: []string{runstep.DocumentColumn},
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
			Table:   runstep.DocumentTable,
			Columns: []string{runstep.DocumentColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{runstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RunStepUpdateOne is the builder for updating a single RunStep entity.
type RunStepUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RunStepMutation
}

// SetRunID sets the "run_id" field.
func (_u *RunStepUpdateOne) SetRunID(v uuid.UUID) *RunStepUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *RunStepUpdateOne) SetNillableRunID(v *uuid.UUID) *RunStepUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *RunStepUpdateOne) SetDocumentID(v uuid.UUID) *RunStepUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *RunStepUpdateOne) SetNillableDocumentID(v *uuid.UUID) *RunStepUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetStepName sets the "step_name" field.
func (_u *RunStepUpdateOne) SetStepName(v string) *RunStepUpdateOne {
	_u.mutation.SetStepName(v)
	return _u
}

// SetNillableStepName sets the "step_name" field if the given value is not nil.
func (_u *RunStepUpdateOne) SetNillableStepName(v *string) *RunStepUpdateOne {
	if v != nil {
		_u.SetStepName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RunStepUpdateOne) SetStatus(v string) *RunStepUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RunStepUpdateOne) SetNillableStatus(v *string) *RunStepUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetInput sets the "input" field.
func (_u *RunStepUpdateOne) SetInput(v json.RawMessage) *RunStepUpdateOne {
	_u.mutation.SetInput(v)
	return _u
}

// AppendInput appends value to the "input" field.
func (_u *RunStepUpdateOne) AppendInput(v json.RawMessage) *RunStepUpdateOne {
	_u.mutation.AppendInput(v)
	return _u
}

// ClearInput clears the value of the "input" field.
func (_u *RunStepUpdateOne) ClearInput() *RunStepUpdateOne {
	_u.mutation.ClearInput()
	return _u
}

// SetOutput sets the "output" field.
func (_u *RunStepUpdateOne) SetOutput(v json.RawMessage) *RunStepUpdateOne {
	_u.mutation.SetOutput(v)
	return _u
}

// AppendOutput appends value to the "output" field.
func (_u *RunStepUpdateOne) AppendOutput(v json.RawMessage) *RunStepUpdateOne {
	_u.mutation.AppendOutput(v)
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *RunStepUpdateOne) ClearOutput() *RunStepUpdateOne {
	_u.mutation.ClearOutput()
	return _u
}

// SetError sets the "error" field.
func (_u *RunStepUpdateOne) SetError(v string) *RunStepUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *RunStepUpdateOne) SetNillableError(v *string) *RunStepUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *RunStepUpdateOne) ClearError() *RunStepUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *RunStepUpdateOne) SetStartedAt(v time.Time) *RunStepUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *RunStepUpdateOne) SetNillableStartedAt(v *time.Time) *RunStepUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *RunStepUpdateOne) ClearStartedAt() *RunStepUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *RunStepUpdateOne) SetFinishedAt(v time.Time) *RunStepUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *RunStepUpdateOne) SetNillableFinishedAt(v *time.Time) *RunStepUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *RunStepUpdateOne) ClearFinishedAt() *RunStepUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetRun sets the "run" edge to the Run entity.
func (_u *RunStepUpdateOne) SetRun(v *Run) *RunStepUpdateOne {
	return _u.SetRunID(v.ID)
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *RunStepUpdateOne) SetDocument(v *Document) *RunStepUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the RunStepMutation object of the builder.
func (_u *RunStepUpdateOne) Mutation() *RunStepMutation {
	return _u.mutation
}

// ClearRun clears the "run" edge to the Run entity.
func (_u *RunStepUpdateOne) ClearRun() *RunStepUpdateOne {
	_u.mutation.ClearRun()
	return _u
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *RunStepUpdateOne) ClearDocument() *RunStepUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the RunStepUpdate builder.
func (_u *RunStepUpdateOne) Where(ps ...predicate.RunStep) *RunStepUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RunStepUpdateOne) Select(field string, fields ...string) *RunStepUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RunStep entity.
func (_u *RunStepUpdateOne) Save(ctx context.Context) (*RunStep, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunStepUpdateOne) SaveX(ctx context.Context) *RunStep {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RunStepUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunStepUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunStepUpdateOne) check() error {
	if v, ok := _u.mutation.StepName(); ok {
		if err := runstep.StepNameValidator(v); err != nil {
			return &ValidationError{Name: "step_name", err: fmt.Errorf(`ent: validator failed for field "RunStep.step_name": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RunStep.run"`)
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RunStep.document"`)
	}
	return nil
}

func (_u *RunStepUpdateOne) sqlSave(ctx context.Context) (_node *RunStep, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(runstep.Table, runstep.Columns, sqlgraph.NewFieldSpec(runstep.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RunStep.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, runstep.FieldID)
		for _, f := range fields {
			if !runstep.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != runstep.FieldID {
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
	if value, ok := _u.mutation.StepName(); ok {
		_spec.SetField(runstep.FieldStepName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(runstep.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Input(); ok {
		_spec.SetField(runstep.FieldInput, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedInput(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, runstep.FieldInput, value)
		})
	}
	if _u.mutation.InputCleared() {
		_spec.ClearField(runstep.FieldInput, field.TypeJSON)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(runstep.FieldOutput, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOutput(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, runstep.FieldOutput, value)
		})
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(runstep.FieldOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(runstep.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(runstep.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(runstep.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(runstep.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(runstep.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(runstep.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.RunCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   runstep.RunTable,
			Columns: []string{runstep.RunColumn},
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
			Table:   runstep.RunTable,
			Columns: []string{runstep.RunColumn},
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
			Table:   runstep.DocumentTable,
			Columns: []string{runstep.DocumentColumn},
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
			Table:   runstep.DocumentTable,
			Columns: []string{runstep.DocumentColumn},
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
	_node = &RunStep{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{runstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
