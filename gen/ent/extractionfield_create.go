// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/veridoc-ai/veridoc/gen/ent/extractionfield"
	"github.com/veridoc-ai/veridoc/gen/ent/extractionrecord"
	"github.com/veridoc-ai/veridoc/gen/ent/reviewevent"
)

// ExtractionFieldCreate is the builder for creating a ExtractionField entity.
type ExtractionFieldCreate struct {
	config
	mutation *ExtractionFieldMutation
	hooks    []Hook
}

// SetRecordID sets the "record_id" field.
func (_c *ExtractionFieldCreate) SetRecordID(v uuid.UUID) *ExtractionFieldCreate {
	_c.mutation.SetRecordID(v)
	return _c
}

// SetFieldName sets the "field_name" field.
func (_c *ExtractionFieldCreate) SetFieldName(v string) *ExtractionFieldCreate {
	_c.mutation.SetFieldName(v)
	return _c
}

// SetFieldType sets the "field_type" field.
func (_c *ExtractionFieldCreate) SetFieldType(v string) *ExtractionFieldCreate {
	_c.mutation.SetFieldType(v)
	return _c
}

// SetExtractedValue sets the "extracted_value" field.
func (_c *ExtractionFieldCreate) SetExtractedValue(v json.RawMessage) *ExtractionFieldCreate {
	_c.mutation.SetExtractedValue(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *ExtractionFieldCreate) SetConfidence(v float32) *ExtractionFieldCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *ExtractionFieldCreate) SetNillableConfidence(v *float32) *ExtractionFieldCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetEvidence sets the "evidence" field.
func (_c *ExtractionFieldCreate) SetEvidence(v json.RawMessage) *ExtractionFieldCreate {
	_c.mutation.SetEvidence(v)
	return _c
}

// SetFieldStatus sets the "field_status" field.
func (_c *ExtractionFieldCreate) SetFieldStatus(v string) *ExtractionFieldCreate {
	_c.mutation.SetFieldStatus(v)
	return _c
}

// SetNillableFieldStatus sets the "field_status" field if the given value is not nil.
func (_c *ExtractionFieldCreate) SetNillableFieldStatus(v *string) *ExtractionFieldCreate {
	if v != nil {
		_c.SetFieldStatus(*v)
	}
	return _c
}

// SetValidationErrors sets the "validation_errors" field.
func (_c *ExtractionFieldCreate) SetValidationErrors(v json.RawMessage) *ExtractionFieldCreate {
	_c.mutation.SetValidationErrors(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractionFieldCreate) SetID(v uuid.UUID) *ExtractionFieldCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ExtractionFieldCreate) SetNillableID(v *uuid.UUID) *ExtractionFieldCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetRecord sets the "record" edge to the ExtractionRecord entity.
func (_c *ExtractionFieldCreate) SetRecord(v *ExtractionRecord) *ExtractionFieldCreate {
	return _c.SetRecordID(v.ID)
}

// AddReviewEventIDs adds the "review_events" edge to the ReviewEvent entity by IDs.
func (_c *ExtractionFieldCreate) AddReviewEventIDs(ids ...uuid.UUID) *ExtractionFieldCreate {
	_c.mutation.AddReviewEventIDs(ids...)
	return _c
}

// AddReviewEvents adds the "review_events" edges to the ReviewEvent entity.
func (_c *ExtractionFieldCreate) AddReviewEvents(v ...*ReviewEvent) *ExtractionFieldCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddReviewEventIDs(ids...)
}

// Mutation returns the ExtractionFieldMutation object of the builder.
func (_c *ExtractionFieldCreate) Mutation() *ExtractionFieldMutation {
	return _c.mutation
}

// Save creates the ExtractionField in the database.
func (_c *ExtractionFieldCreate) Save(ctx context.Context) (*ExtractionField, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractionFieldCreate) SaveX(ctx context.Context) *ExtractionField {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionFieldCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionFieldCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractionFieldCreate) defaults() {
	if _, ok := _c.mutation.Confidence(); !ok {
		v := extractionfield.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.FieldStatus(); !ok {
		v := extractionfield.DefaultFieldStatus
		_c.mutation.SetFieldStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := extractionfield.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractionFieldCreate) check() error {
	if _, ok := _c.mutation.RecordID(); !ok {
		return &ValidationError{Name: "record_id", err: errors.New(`ent: missing required field "ExtractionField.record_id"`)}
	}
	if _, ok := _c.mutation.FieldName(); !ok {
		return &ValidationError{Name: "field_name", err: errors.New(`ent: missing required field "ExtractionField.field_name"`)}
	}
	if v, ok := _c.mutation.FieldName(); ok {
		if err := extractionfield.FieldNameValidator(v); err != nil {
			return &ValidationError{Name: "field_name", err: fmt.Errorf(`ent: validator failed for field "ExtractionField.field_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FieldType(); !ok {
		return &ValidationError{Name: "field_type", err: errors.New(`ent: missing required field "ExtractionField.field_type"`)}
	}
	if v, ok := _c.mutation.FieldType(); ok {
		if err := extractionfield.FieldTypeValidator(v); err != nil {
			return &ValidationError{Name: "field_type", err: fmt.Errorf(`ent: validator failed for field "ExtractionField.field_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "ExtractionField.confidence"`)}
	}
	if _, ok := _c.mutation.FieldStatus(); !ok {
		return &ValidationError{Name: "field_status", err: errors.New(`ent: missing required field "ExtractionField.field_status"`)}
	}
	if v, ok := _c.mutation.FieldStatus(); ok {
		if err := extractionfield.FieldStatusValidator(v); err != nil {
			return &ValidationError{Name: "field_status", err: fmt.Errorf(`ent: validator failed for field "ExtractionField.field_status": %w`, err)}
		}
	}
	if len(_c.mutation.RecordIDs()) == 0 {
		return &ValidationError{Name: "record", err: errors.New(`ent: missing required edge "ExtractionField.record"`)}
	}
	return nil
}

func (_c *ExtractionFieldCreate) sqlSave(ctx context.Context) (*ExtractionField, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExtractionFieldCreate) createSpec() (*ExtractionField, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractionField{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extractionfield.Table, sqlgraph.NewFieldSpec(extractionfield.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.FieldName(); ok {
		_spec.SetField(extractionfield.FieldFieldName, field.TypeString, value)
		_node.FieldName = value
	}
	if value, ok := _c.mutation.FieldType(); ok {
		_spec.SetField(extractionfield.FieldFieldType, field.TypeString, value)
		_node.FieldType = value
	}
	if value, ok := _c.mutation.ExtractedValue(); ok {
		_spec.SetField(extractionfield.FieldExtractedValue, field.TypeJSON, value)
		_node.ExtractedValue = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(extractionfield.FieldConfidence, field.TypeFloat32, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Evidence(); ok {
		_spec.SetField(extractionfield.FieldEvidence, field.TypeJSON, value)
		_node.Evidence = value
	}
	if value, ok := _c.mutation.FieldStatus(); ok {
		_spec.SetField(extractionfield.FieldFieldStatus, field.TypeString, value)
		_node.FieldStatus = value
	}
	if value, ok := _c.mutation.ValidationErrors(); ok {
		_spec.SetField(extractionfield.FieldValidationErrors, field.TypeJSON, value)
		_node.ValidationErrors = value
	}
	if nodes := _c.mutation.RecordIDs(); len(nodes) > 0 {
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
		_node.RecordID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ReviewEventsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExtractionFieldCreateBulk is the builder for creating many ExtractionField entities in bulk.
type ExtractionFieldCreateBulk struct {
	config
	err      error
	builders []*ExtractionFieldCreate
}

// Save creates the ExtractionField entities in the database.
func (_c *ExtractionFieldCreateBulk) Save(ctx context.Context) ([]*ExtractionField, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractionField, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractionFieldMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ExtractionFieldCreateBulk) SaveX(ctx context.Context) []*ExtractionField {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionFieldCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionFieldCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
