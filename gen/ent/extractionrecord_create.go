// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/veridoc-ai/veridoc/gen/ent/document"
	"github.com/veridoc-ai/veridoc/gen/ent/extractionfield"
	"github.com/veridoc-ai/veridoc/gen/ent/extractionrecord"
	"github.com/veridoc-ai/veridoc/gen/ent/run"
)

// ExtractionRecordCreate is the builder for creating a ExtractionRecord entity.
type ExtractionRecordCreate struct {
	config
	mutation *ExtractionRecordMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *ExtractionRecordCreate) SetRunID(v uuid.UUID) *ExtractionRecordCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetDocumentID sets the "document_id" field.
func (_c *ExtractionRecordCreate) SetDocumentID(v uuid.UUID) *ExtractionRecordCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetRecordStatus sets the "record_status" field.
func (_c *ExtractionRecordCreate) SetRecordStatus(v string) *ExtractionRecordCreate {
	_c.mutation.SetRecordStatus(v)
	return _c
}

// SetNillableRecordStatus sets the "record_status" field if the given value is not nil.
func (_c *ExtractionRecordCreate) SetNillableRecordStatus(v *string) *ExtractionRecordCreate {
	if v != nil {
		_c.SetRecordStatus(*v)
	}
	return _c
}

// SetFailedRules sets the "failed_rules" field.
func (_c *ExtractionRecordCreate) SetFailedRules(v json.RawMessage) *ExtractionRecordCreate {
	_c.mutation.SetFailedRules(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExtractionRecordCreate) SetCreatedAt(v time.Time) *ExtractionRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExtractionRecordCreate) SetNillableCreatedAt(v *time.Time) *ExtractionRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ExtractionRecordCreate) SetUpdatedAt(v time.Time) *ExtractionRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ExtractionRecordCreate) SetNillableUpdatedAt(v *time.Time) *ExtractionRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractionRecordCreate) SetID(v uuid.UUID) *ExtractionRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ExtractionRecordCreate) SetNillableID(v *uuid.UUID) *ExtractionRecordCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetRun sets the "run" edge to the Run entity.
func (_c *ExtractionRecordCreate) SetRun(v *Run) *ExtractionRecordCreate {
	return _c.SetRunID(v.ID)
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *ExtractionRecordCreate) SetDocument(v *Document) *ExtractionRecordCreate {
	return _c.SetDocumentID(v.ID)
}

// AddFieldIDs adds the "fields" edge to the ExtractionField entity by IDs.
func (_c *ExtractionRecordCreate) AddFieldIDs(ids ...uuid.UUID) *ExtractionRecordCreate {
	_c.mutation.AddFieldIDs(ids...)
	return _c
}

// AddFields adds the "fields" edges to the ExtractionField entity.
func (_c *ExtractionRecordCreate) AddFields(v ...*ExtractionField) *ExtractionRecordCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFieldIDs(ids...)
}

// Mutation returns the ExtractionRecordMutation object of the builder.
func (_c *ExtractionRecordCreate) Mutation() *ExtractionRecordMutation {
	return _c.mutation
}

// Save creates the ExtractionRecord in the database.
func (_c *ExtractionRecordCreate) Save(ctx context.Context) (*ExtractionRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractionRecordCreate) SaveX(ctx context.Context) *ExtractionRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractionRecordCreate) defaults() {
	if _, ok := _c.mutation.RecordStatus(); !ok {
		v := extractionrecord.DefaultRecordStatus
		_c.mutation.SetRecordStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := extractionrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := extractionrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := extractionrecord.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractionRecordCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "ExtractionRecord.run_id"`)}
	}
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "ExtractionRecord.document_id"`)}
	}
	if _, ok := _c.mutation.RecordStatus(); !ok {
		return &ValidationError{Name: "record_status", err: errors.New(`ent: missing required field "ExtractionRecord.record_status"`)}
	}
	if v, ok := _c.mutation.RecordStatus(); ok {
		if err := extractionrecord.RecordStatusValidator(v); err != nil {
			return &ValidationError{Name: "record_status", err: fmt.Errorf(`ent: validator failed for field "ExtractionRecord.record_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExtractionRecord.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ExtractionRecord.updated_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "ExtractionRecord.run"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "ExtractionRecord.document"`)}
	}
	return nil
}

func (_c *ExtractionRecordCreate) sqlSave(ctx context.Context) (*ExtractionRecord, error) {
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

func (_c *ExtractionRecordCreate) createSpec() (*ExtractionRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractionRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extractionrecord.Table, sqlgraph.NewFieldSpec(extractionrecord.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.RecordStatus(); ok {
		_spec.SetField(extractionrecord.FieldRecordStatus, field.TypeString, value)
		_node.RecordStatus = value
	}
	if value, ok := _c.mutation.FailedRules(); ok {
		_spec.SetField(extractionrecord.FieldFailedRules, field.TypeJSON, value)
		_node.FailedRules = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(extractionrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(extractionrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
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
		_node.RunID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FieldsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExtractionRecordCreateBulk is the builder for creating many ExtractionRecord entities in bulk.
type ExtractionRecordCreateBulk struct {
	config
	err      error
	builders []*ExtractionRecordCreate
}

// Save creates the ExtractionRecord entities in the database.
func (_c *ExtractionRecordCreateBulk) Save(ctx context.Context) ([]*ExtractionRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractionRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractionRecordMutation)
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
func (_c *ExtractionRecordCreateBulk) SaveX(ctx context.Context) []*ExtractionRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
