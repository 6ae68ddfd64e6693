// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/veridoc-ai/veridoc/gen/ent/document"
	"github.com/veridoc-ai/veridoc/gen/ent/extractionrecord"
	"github.com/veridoc-ai/veridoc/gen/ent/predicate"
	"github.com/veridoc-ai/veridoc/gen/ent/project"
	"github.com/veridoc-ai/veridoc/gen/ent/runstep"
)

// DocumentUpdate is the builder for updating Document entities.
type DocumentUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentMutation
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdate) Where(ps ...predicate.Document) *DocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *DocumentUpdate) SetProjectID(v uuid.UUID) *DocumentUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableProjectID(v *uuid.UUID) *DocumentUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetFileURL sets the "file_url" field.
func (_u *DocumentUpdate) SetFileURL(v string) *DocumentUpdate {
	_u.mutation.SetFileURL(v)
	return _u
}

// SetNillableFileURL sets the "file_url" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFileURL(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFileURL(*v)
	}
	return _u
}

// SetFileType sets the "file_type" field.
func (_u *DocumentUpdate) SetFileType(v string) *DocumentUpdate {
	_u.mutation.SetFileType(v)
	return _u
}

// SetNillableFileType sets the "file_type" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFileType(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFileType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DocumentUpdate) SetStatus(v string) *DocumentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableStatus(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDocTypeScore sets the "doc_type_score" field.
func (_u *DocumentUpdate) SetDocTypeScore(v float64) *DocumentUpdate {
	_u.mutation.ResetDocTypeScore()
	_u.mutation.SetDocTypeScore(v)
	return _u
}

// SetNillableDocTypeScore sets the "doc_type_score" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableDocTypeScore(v *float64) *DocumentUpdate {
	if v != nil {
		_u.SetDocTypeScore(*v)
	}
	return _u
}

// AddDocTypeScore adds value to the "doc_type_score" field.
func (_u *DocumentUpdate) AddDocTypeScore(v float64) *DocumentUpdate {
	_u.mutation.AddDocTypeScore(v)
	return _u
}

// ClearDocTypeScore clears the value of the "doc_type_score" field.
func (_u *DocumentUpdate) ClearDocTypeScore() *DocumentUpdate {
	_u.mutation.ClearDocTypeScore()
	return _u
}

// SetDocTypeDetected sets the "doc_type_detected" field.
func (_u *DocumentUpdate) SetDocTypeDetected(v string) *DocumentUpdate {
	_u.mutation.SetDocTypeDetected(v)
	return _u
}

// SetNillableDocTypeDetected sets the "doc_type_detected" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableDocTypeDetected(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetDocTypeDetected(*v)
	}
	return _u
}

// ClearDocTypeDetected clears the value of the "doc_type_detected" field.
func (_u *DocumentUpdate) ClearDocTypeDetected() *DocumentUpdate {
	_u.mutation.ClearDocTypeDetected()
	return _u
}

// SetDocTypeReason sets the "doc_type_reason" field.
func (_u *DocumentUpdate) SetDocTypeReason(v string) *DocumentUpdate {
	_u.mutation.SetDocTypeReason(v)
	return _u
}

// SetNillableDocTypeReason sets the "doc_type_reason" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableDocTypeReason(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetDocTypeReason(*v)
	}
	return _u
}

// ClearDocTypeReason clears the value of the "doc_type_reason" field.
func (_u *DocumentUpdate) ClearDocTypeReason() *DocumentUpdate {
	_u.mutation.ClearDocTypeReason()
	return _u
}

// SetSkipReason sets the "skip_reason" field.
func (_u *DocumentUpdate) SetSkipReason(v string) *DocumentUpdate {
	_u.mutation.SetSkipReason(v)
	return _u
}

// SetNillableSkipReason sets the "skip_reason" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableSkipReason(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetSkipReason(*v)
	}
	return _u
}

// ClearSkipReason clears the value of the "skip_reason" field.
func (_u *DocumentUpdate) ClearSkipReason() *DocumentUpdate {
	_u.mutation.ClearSkipReason()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DocumentUpdate) SetCreatedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableCreatedAt(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocumentUpdate) SetUpdatedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *DocumentUpdate) SetProject(v *Project) *DocumentUpdate {
	return _u.SetProjectID(v.ID)
}

// AddStepIDs adds the "steps" edge to the RunStep entity by IDs.
func (_u *DocumentUpdate) AddStepIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the RunStep entity.
func (_u *DocumentUpdate) AddSteps(v ...*RunStep) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// AddRecordIDs adds the "records" edge to the ExtractionRecord entity by IDs.
func (_u *DocumentUpdate) AddRecordIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.AddRecordIDs(ids...)
	return _u
}

// AddRecords adds the "records" edges to the ExtractionRecord entity.
func (_u *DocumentUpdate) AddRecords(v ...*ExtractionRecord) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRecordIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdate) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *DocumentUpdate) ClearProject() *DocumentUpdate {
	_u.mutation.ClearProject()
	return _u
}

// ClearSteps clears all "steps" edges to the RunStep entity.
func (_u *DocumentUpdate) ClearSteps() *DocumentUpdate {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to RunStep entities by IDs.
func (_u *DocumentUpdate) RemoveStepIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to RunStep entities.
func (_u *DocumentUpdate) RemoveSteps(v ...*RunStep) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// ClearRecords clears all "records" edges to the ExtractionRecord entity.
func (_u *DocumentUpdate) ClearRecords() *DocumentUpdate {
	_u.mutation.ClearRecords()
	return _u
}

// RemoveRecordIDs removes the "records" edge to ExtractionRecord entities by IDs.
func (_u *DocumentUpdate) RemoveRecordIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.RemoveRecordIDs(ids...)
	return _u
}

// RemoveRecords removes "records" edges to ExtractionRecord entities.
func (_u *DocumentUpdate) RemoveRecords(v ...*ExtractionRecord) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRecordIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocumentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := document.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdate) check() error {
	if v, ok := _u.mutation.FileURL(); ok {
		if err := document.FileURLValidator(v); err != nil {
			return &ValidationError{Name: "file_url", err: fmt.Errorf(`ent: validator failed for field "Document.file_url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileType(); ok {
		if err := document.FileTypeValidator(v); err != nil {
			return &ValidationError{Name: "file_type", err: fmt.Errorf(`ent: validator failed for field "Document.file_type": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Document.project"`)
	}
	return nil
}

func (_u *DocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FileURL(); ok {
		_spec.SetField(document.FieldFileURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileType(); ok {
		_spec.SetField(document.FieldFileType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(document.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocTypeScore(); ok {
		_spec.SetField(document.FieldDocTypeScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDocTypeScore(); ok {
		_spec.AddField(document.FieldDocTypeScore, field.TypeFloat64, value)
	}
	if _u.mutation.DocTypeScoreCleared() {
		_spec.ClearField(document.FieldDocTypeScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.DocTypeDetected(); ok {
		_spec.SetField(document.FieldDocTypeDetected, field.TypeString, value)
	}
	if _u.mutation.DocTypeDetectedCleared() {
		_spec.ClearField(document.FieldDocTypeDetected, field.TypeString)
	}
	if value, ok := _u.mutation.DocTypeReason(); ok {
		_spec.SetField(document.FieldDocTypeReason, field.TypeString, value)
	}
	if _u.mutation.DocTypeReasonCleared() {
		_spec.ClearField(document.FieldDocTypeReason, field.TypeString)
	}
	if value, ok := _u.mutation.SkipReason(); ok {
		_spec.SetField(document.FieldSkipReason, field.TypeString, value)
	}
	if _u.mutation.SkipReasonCleared() {
		_spec.ClearField(document.FieldSkipReason, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(document.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(document.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.ProjectTable,
			Columns: []string{document.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.ProjectTable,
			Columns: []string{document.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.StepsTable,
			Columns: []string{document.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runstep.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.StepsTable,
			Columns: []string{document.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runstep.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.StepsTable,
			Columns: []string{document.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runstep.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.RecordsTable,
			Columns: []string{document.RecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionrecord.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRecordsIDs(); len(nodes) > 0 && !_u.mutation.RecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.RecordsTable,
			Columns: []string{document.RecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecordsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.RecordsTable,
			Columns: []string{document.RecordsColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentUpdateOne is the builder for updating a single Document entity.
type DocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentMutation
}

// SetProjectID sets the "project_id" field.
func (_u *DocumentUpdateOne) SetProjectID(v uuid.UUID) *DocumentUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableProjectID(v *uuid.UUID) *DocumentUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetFileURL sets the "file_url" field.
func (_u *DocumentUpdateOne) SetFileURL(v string) *DocumentUpdateOne {
	_u.mutation.SetFileURL(v)
	return _u
}

// SetNillableFileURL sets the "file_url" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFileURL(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFileURL(*v)
	}
	return _u
}

// SetFileType sets the "file_type" field.
func (_u *DocumentUpdateOne) SetFileType(v string) *DocumentUpdateOne {
	_u.mutation.SetFileType(v)
	return _u
}

// SetNillableFileType sets the "file_type" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFileType(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFileType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DocumentUpdateOne) SetStatus(v string) *DocumentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableStatus(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDocTypeScore sets the "doc_type_score" field.
func (_u *DocumentUpdateOne) SetDocTypeScore(v float64) *DocumentUpdateOne {
	_u.mutation.ResetDocTypeScore()
	_u.mutation.SetDocTypeScore(v)
	return _u
}

// SetNillableDocTypeScore sets the "doc_type_score" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableDocTypeScore(v *float64) *DocumentUpdateOne {
	if v != nil {
		_u.SetDocTypeScore(*v)
	}
	return _u
}

// AddDocTypeScore adds value to the "doc_type_score" field.
func (_u *DocumentUpdateOne) AddDocTypeScore(v float64) *DocumentUpdateOne {
	_u.mutation.AddDocTypeScore(v)
	return _u
}

// ClearDocTypeScore clears the value of the "doc_type_score" field.
func (_u *DocumentUpdateOne) ClearDocTypeScore() *DocumentUpdateOne {
	_u.mutation.ClearDocTypeScore()
	return _u
}

// SetDocTypeDetected sets the "doc_type_detected" field.
func (_u *DocumentUpdateOne) SetDocTypeDetected(v string) *DocumentUpdateOne {
	_u.mutation.SetDocTypeDetected(v)
	return _u
}

// SetNillableDocTypeDetected sets the "doc_type_detected" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableDocTypeDetected(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetDocTypeDetected(*v)
	}
	return _u
}

// ClearDocTypeDetected clears the value of the "doc_type_detected" field.
func (_u *DocumentUpdateOne) ClearDocTypeDetected() *DocumentUpdateOne {
	_u.mutation.ClearDocTypeDetected()
	return _u
}

// SetDocTypeReason sets the "doc_type_reason" field.
func (_u *DocumentUpdateOne) SetDocTypeReason(v string) *DocumentUpdateOne {
	_u.mutation.SetDocTypeReason(v)
	return _u
}

// SetNillableDocTypeReason sets the "doc_type_reason" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableDocTypeReason(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetDocTypeReason(*v)
	}
	return _u
}

// ClearDocTypeReason clears the value of the "doc_type_reason" field.
func (_u *DocumentUpdateOne) ClearDocTypeReason() *DocumentUpdateOne {
	_u.mutation.ClearDocTypeReason()
	return _u
}

// SetSkipReason sets the "skip_reason" field.
func (_u *DocumentUpdateOne) SetSkipReason(v string) *DocumentUpdateOne {
	_u.mutation.SetSkipReason(v)
	return _u
}

// SetNillableSkipReason sets the "skip_reason" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableSkipReason(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetSkipReason(*v)
	}
	return _u
}

// ClearSkipReason clears the value of the "skip_reason" field.
func (_u *DocumentUpdateOne) ClearSkipReason() *DocumentUpdateOne {
	_u.mutation.ClearSkipReason()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DocumentUpdateOne) SetCreatedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableCreatedAt(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocumentUpdateOne) SetUpdatedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *DocumentUpdateOne) SetProject(v *Project) *DocumentUpdateOne {
	return _u.SetProjectID(v.ID)
}

// AddStepIDs adds the "steps" edge to the RunStep entity by IDs.
func (_u *DocumentUpdateOne) AddStepIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the RunStep entity.
func (_u *DocumentUpdateOne) AddSteps(v ...*RunStep) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// AddRecordIDs adds the "records" edge to the ExtractionRecord entity by IDs.
func (_u *DocumentUpdateOne) AddRecordIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.AddRecordIDs(ids...)
	return _u
}

// AddRecords adds the "records" edges to the ExtractionRecord entity.
func (_u *DocumentUpdateOne) AddRecords(v ...*ExtractionRecord) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRecordIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdateOne) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *DocumentUpdateOne) ClearProject() *DocumentUpdateOne {
	_u.mutation.ClearProject()
	return _u
}

// ClearSteps clears all "steps" edges to the RunStep entity.
func (_u *DocumentUpdateOne) ClearSteps() *DocumentUpdateOne {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to RunStep entities by IDs.
func (_u *DocumentUpdateOne) RemoveStepIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to RunStep entities.
func (_u *DocumentUpdateOne) RemoveSteps(v ...*RunStep) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// ClearRecords clears all "records" edges to the ExtractionRecord entity.
func (_u *DocumentUpdateOne) ClearRecords() *DocumentUpdateOne {
	_u.mutation.ClearRecords()
	return _u
}

// RemoveRecordIDs removes the "records" edge to ExtractionRecord entities by IDs.
func (_u *DocumentUpdateOne) RemoveRecordIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.RemoveRecordIDs(ids...)
	return _u
}

// RemoveRecords removes "records" edges to ExtractionRecord entities.
func (_u *DocumentUpdateOne) RemoveRecords(v ...*ExtractionRecord) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRecordIDs(ids...)
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdateOne) Where(ps ...predicate.Document) *DocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentUpdateOne) Select(field string, fields ...string) *DocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Document entity.
func (_u *DocumentUpdateOne) Save(ctx context.Context) (*Document, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdateOne) SaveX(ctx context.Context) *Document {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocumentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := document.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdateOne) check() error {
	if v, ok := _u.mutation.FileURL(); ok {
		if err := document.FileURLValidator(v); err != nil {
			return &ValidationError{Name: "file_url", err: fmt.Errorf(`ent: validator failed for field "Document.file_url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileType(); ok {
		if err := document.FileTypeValidator(v); err != nil {
			return &ValidationError{Name: "file_type", err: fmt.Errorf(`ent: validator failed for field "Document.file_type": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Document.project"`)
	}
	return nil
}

func (_u *DocumentUpdateOne) sqlSave(ctx context.Context) (_node *Document, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Document.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, document.FieldID)
		for _, f := range fields {
			if !document.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != document.FieldID {
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
	if value, ok := _u.mutation.FileURL(); ok {
		_spec.SetField(document.FieldFileURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileType(); ok {
		_spec.SetField(document.FieldFileType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(document.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocTypeScore(); ok {
		_spec.SetField(document.FieldDocTypeScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDocTypeScore(); ok {
		_spec.AddField(document.FieldDocTypeScore, field.TypeFloat64, value)
	}
	if _u.mutation.DocTypeScoreCleared() {
		_spec.ClearField(document.FieldDocTypeScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.DocTypeDetected(); ok {
		_spec.SetField(document.FieldDocTypeDetected, field.TypeString, value)
	}
	if _u.mutation.DocTypeDetectedCleared() {
		_spec.ClearField(document.FieldDocTypeDetected, field.TypeString)
	}
	if value, ok := _u.mutation.DocTypeReason(); ok {
		_spec.SetField(document.FieldDocTypeReason, field.TypeString, value)
	}
	if _u.mutation.DocTypeReasonCleared() {
		_spec.ClearField(document.FieldDocTypeReason, field.TypeString)
	}
	if value, ok := _u.mutation.SkipReason(); ok {
		_spec.SetField(document.FieldSkipReason, field.TypeString, value)
	}
	if _u.mutation.SkipReasonCleared() {
		_spec.ClearField(document.FieldSkipReason, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(document.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(document.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.ProjectTable,
			Columns: []string{document.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.ProjectTable,
			Columns: []string{document.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.StepsTable,
			Columns: []string{document.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runstep.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.StepsTable,
			Columns: []string{document.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runstep.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.StepsTable,
			Columns: []string{document.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runstep.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.RecordsTable,
			Columns: []string{document.RecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionrecord.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRecordsIDs(); len(nodes) > 0 && !_u.mutation.RecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.RecordsTable,
			Columns: []string{document.RecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecordsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.RecordsTable,
			Columns: []string{document.RecordsColumn},
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
	_node = &Document{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
