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
	"github.com/veridoc-ai/veridoc/gen/ent/predicate"
	"github.com/veridoc-ai/veridoc/gen/ent/reviewevent"
)

// ReviewEventUpdate is the builder for updating ReviewEvent entities.
type ReviewEventUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewEventMutation
}

// Where appends a list predicates to the ReviewEventUpdate builder.
func (_u *ReviewEventUpdate) Where(ps ...predicate.ReviewEvent) *ReviewEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFieldID sets the "field_id" field.
func (_u *ReviewEventUpdate) SetFieldID(v uuid.UUID) *ReviewEventUpdate {
	_u.mutation.SetFieldID(v)
	return _u
}

// SetNillableFieldID sets the "field_id" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableFieldID(v *uuid.UUID) *ReviewEventUpdate {
	if v != nil {
		_u.SetFieldID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *ReviewEventUpdate) SetAction(v string) *ReviewEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableAction(v *string) *ReviewEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetOldValue sets the "old_value" field.
func (_u *ReviewEventUpdate) SetOldValue(v json.RawMessage) *ReviewEventUpdate {
	_u.mutation.SetOldValue(v)
	return _u
}

// AppendOldValue appends value to the "old_value" field.
func (_u *ReviewEventUpdate) AppendOldValue(v json.RawMessage) *ReviewEventUpdate {
	_u.mutation.AppendOldValue(v)
	return _u
}

// ClearOldValue clears the value of the "old_value" field.
func (_u *ReviewEventUpdate) ClearOldValue() *ReviewEventUpdate {
	_u.mutation.ClearOldValue()
	return _u
}

// SetNewValue sets the "new_value" field.
func (_u *ReviewEventUpdate) SetNewValue(v json.RawMessage) *ReviewEventUpdate {
	_u.mutation.SetNewValue(v)
	return _u
}

// AppendNewValue appends value to the "new_value" field.
func (_u *ReviewEventUpdate) AppendNewValue(v json.RawMessage) *ReviewEventUpdate {
	_u.mutation.AppendNewValue(v)
	return _u
}

// ClearNewValue clears the value of the "new_value" field.
func (_u *ReviewEventUpdate) ClearNewValue() *ReviewEventUpdate {
	_u.mutation.ClearNewValue()
	return _u
}

// SetActor sets the "actor" field.
func (_u *ReviewEventUpdate) SetActor(v string) *ReviewEventUpdate {
	_u.mutation.SetActor(v)
	return _u
}

// SetNillableActor sets the "actor" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableActor(v *string) *ReviewEventUpdate {
	if v != nil {
		_u.SetActor(*v)
	}
	return _u
}

// SetExtractionFieldID sets the "extraction_field" edge to the ExtractionField entity by ID.
func (_u *ReviewEventUpdate) SetExtractionFieldID(id uuid.UUID) *ReviewEventUpdate {
	_u.mutation.SetExtractionFieldID(id)
	return _u
}

// SetExtractionField sets the "extraction_field" edge to the ExtractionField entity.
func (_u *ReviewEventUpdate) SetExtractionField(v *ExtractionField) *ReviewEventUpdate {
	return _u.SetExtractionFieldID(v.ID)
}

// Mutation returns the ReviewEventMutation object of the builder.
func (_u *ReviewEventUpdate) Mutation() *ReviewEventMutation {
	return _u.mutation
}

// ClearExtractionField clears the "extraction_field" edge to the ExtractionField entity.
func (_u *ReviewEventUpdate) ClearExtractionField() *ReviewEventUpdate {
	_u.mutation.ClearExtractionField()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReviewEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReviewEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewEventUpdate) check() error {
	if v, ok := _u.mutation.Action(); ok {
		if err := reviewevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Actor(); ok {
		if err := reviewevent.ActorValidator(v); err != nil {
			return &ValidationError{Name: "actor", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.actor": %w`, err)}
		}
	}
	if _u.mutation.ExtractionFieldCleared() && len(_u.mutation.ExtractionFieldIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ReviewEvent.extraction_field"`)
	}
	return nil
}

func (_u *ReviewEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewevent.Table, reviewevent.Columns, sqlgraph.NewFieldSpec(reviewevent.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(reviewevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.OldValue(); ok {
		_spec.SetField(reviewevent.FieldOldValue, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOldValue(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, reviewevent.FieldOldValue, value)
		})
	}
	if _u.mutation.OldValueCleared() {
		_spec.ClearField(reviewevent.FieldOldValue, field.TypeJSON)
	}
	if value, ok := _u.mutation.NewValue(); ok {
		_spec.SetField(reviewevent.FieldNewValue, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedNewValue(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, reviewevent.FieldNewValue, value)
		})
	}
	if _u.mutation.NewValueCleared() {
		_spec.ClearField(reviewevent.FieldNewValue, field.TypeJSON)
	}
	if value, ok := _u.mutation.Actor(); ok {
		_spec.SetField(reviewevent.FieldActor, field.TypeString, value)
	}
	if _u.mutation.ExtractionFieldCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reviewevent.ExtractionFieldTable,
			Columns: []string{reviewevent.ExtractionFieldColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionfield.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExtractionFieldIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reviewevent.ExtractionFieldTable,
			Columns: []string{reviewevent.ExtractionFieldColumn},
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
			err = &NotFoundError{reviewevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReviewEventUpdateOne is the builder for updating a single ReviewEvent entity.
type ReviewEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewEventMutation
}

// SetFieldID sets the "field_id" field.
func (_u *ReviewEventUpdateOne) SetFieldID(v uuid.UUID) *ReviewEventUpdateOne {
	_u.mutation.SetFieldID(v)
	return _u
}

// SetNillableFieldID sets the "field_id" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableFieldID(v *uuid.UUID) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetFieldID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *ReviewEventUpdateOne) SetAction(v string) *ReviewEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableAction(v *string) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetOldValue sets the "old_value" field.
func (_u *ReviewEventUpdateOne) SetOldValue(v json.RawMessage) *ReviewEventUpdateOne {
	_u.mutation.SetOldValue(v)
	return _u
}

// AppendOldValue appends value to the "old_value" field.
func (_u *ReviewEventUpdateOne) AppendOldValue(v json.RawMessage) *ReviewEventUpdateOne {
	_u.mutation.AppendOldValue(v)
	return _u
}

// ClearOldValue clears the value of the "old_value" field.
func (_u *ReviewEventUpdateOne) ClearOldValue() *ReviewEventUpdateOne {
	_u.mutation.ClearOldValue()
	return _u
}

// SetNewValue sets the "new_value" field.
func (_u *ReviewEventUpdateOne) SetNewValue(v json.RawMessage) *ReviewEventUpdateOne {
	_u.mutation.SetNewValue(v)
	return _u
}

// AppendNewValue appends value to the "new_value" field.
func (_u *ReviewEventUpdateOne) AppendNewValue(v json.RawMessage) *ReviewEventUpdateOne {
	_u.mutation.AppendNewValue(v)
	return _u
}

// ClearNewValue clears the value of the "new_value" field.
func (_u *ReviewEventUpdateOne) ClearNewValue() *ReviewEventUpdateOne {
	_u.mutation.ClearNewValue()
	return _u
}

// SetActor sets the "actor" field.
func (_u *ReviewEventUpdateOne) SetActor(v string) *ReviewEventUpdateOne {
	_u.mutation.SetActor(v)
	return _u
}

// SetNillableActor sets the "actor" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableActor(v *string) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetActor(*v)
	}
	return _u
}

// SetExtractionFieldID sets the "extraction_field" edge to the ExtractionField entity by ID.
func (_u *ReviewEventUpdateOne) SetExtractionFieldID(id uuid.UUID) *ReviewEventUpdateOne {
	_u.mutation.SetExtractionFieldID(id)
	return _u
}

// SetExtractionField sets the "extraction_field" edge to the ExtractionField entity.
func (_u *ReviewEventUpdateOne) SetExtractionField(v *ExtractionField) *ReviewEventUpdateOne {
	return _u.SetExtractionFieldID(v.ID)
}

// Mutation returns the ReviewEventMutation object of the builder.
func (_u *ReviewEventUpdateOne) Mutation() *ReviewEventMutation {
	return _u.mutation
}

// ClearExtractionField clears the "extraction_field" edge to the ExtractionField entity.
func (_u *ReviewEventUpdateOne) ClearExtractionField() *ReviewEventUpdateOne {
	_u.mutation.ClearExtractionField()
	return _u
}

// Where appends a list predicates to the ReviewEventUpdate builder.
func (_u *ReviewEventUpdateOne) Where(ps ...predicate.ReviewEvent) *ReviewEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReviewEventUpdateOne) Select(field string, fields ...string) *ReviewEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReviewEvent entity.
func (_u *ReviewEventUpdateOne) Save(ctx context.Context) (*ReviewEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewEventUpdateOne) SaveX(ctx context.Context) *ReviewEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReviewEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewEventUpdateOne) check() error {
	if v, ok := _u.mutation.Action(); ok {
		if err := reviewevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Actor(); ok {
		if err := reviewevent.ActorValidator(v); err != nil {
			return &ValidationError{Name: "actor", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.actor": %w`, err)}
		}
	}
	if _u.mutation.ExtractionFieldCleared() && len(_u.mutation.ExtractionFieldIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ReviewEvent.extraction_field"`)
	}
	return nil
}

func (_u *ReviewEventUpdateOne) sqlSave(ctx context.Context) (_node *ReviewEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewevent.Table, reviewevent.Columns, sqlgraph.NewFieldSpec(reviewevent.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReviewEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewevent.FieldID)
		for _, f := range fields {
			if !reviewevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reviewevent.FieldID {
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
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(reviewevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.OldValue(); ok {
		_spec.SetField(reviewevent.FieldOldValue, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOldValue(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, reviewevent.FieldOldValue, value)
		})
	}
	if _u.mutation.OldValueCleared() {
		_spec.ClearField(reviewevent.FieldOldValue, field.TypeJSON)
	}
	if value, ok := _u.mutation.NewValue(); ok {
		_spec.SetField(reviewevent.FieldNewValue, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedNewValue(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, reviewevent.FieldNewValue, value)
		})
	}
	if _u.mutation.NewValueCleared() {
		_spec.ClearField(reviewevent.FieldNewValue, field.TypeJSON)
	}
	if value, ok := _u.mutation.Actor(); ok {
		_spec.SetField(reviewevent.FieldActor, field.TypeString, value)
	}
	if _u.mutation.ExtractionFieldCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reviewevent.ExtractionFieldTable,
			Columns: []string{reviewevent.ExtractionFieldColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionfield.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExtractionFieldIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reviewevent.ExtractionFieldTable,
			Columns: []string{reviewevent.ExtractionFieldColumn},
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
	_node = &ReviewEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
