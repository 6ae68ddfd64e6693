// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/veridoc-ai/veridoc/db/ent/schema"
	"github.com/veridoc-ai/veridoc/gen/ent/document"
	"github.com/veridoc-ai/veridoc/gen/ent/extractionfield"
	"github.com/veridoc-ai/veridoc/gen/ent/extractionrecord"
	"github.com/veridoc-ai/veridoc/gen/ent/project"
	"github.com/veridoc-ai/veridoc/gen/ent/reviewevent"
	"github.com/veridoc-ai/veridoc/gen/ent/run"
	"github.com/veridoc-ai/veridoc/gen/ent/runstep"
	"github.com/veridoc-ai/veridoc/gen/ent/template"
	"github.com/veridoc-ai/veridoc/gen/ent/workspace"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescFileURL is the schema descriptor for file_url field.
	documentDescFileURL := documentFields[2].Descriptor()
	// document.FileURLValidator is a validator for the "file_url" field. It is called by the builders before save.
	document.FileURLValidator = documentDescFileURL.Validators[0].(func(string) error)
	// documentDescFileType is the schema descriptor for file_type field.
	documentDescFileType := documentFields[3].Descriptor()
	// document.FileTypeValidator is a validator for the "file_type" field. It is called by the builders before save.
	document.FileTypeValidator = func() func(string) error {
		validators := documentDescFileType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(file_type string) error {
			for _, fn := range fns {
				if err := fn(file_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentDescStatus is the schema descriptor for status field.
	documentDescStatus := documentFields[4].Descriptor()
	// document.DefaultStatus holds the default value on creation for the status field.
	document.DefaultStatus = documentDescStatus.Default.(string)
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[9].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	// documentDescUpdatedAt is the schema descriptor for updated_at field.
	documentDescUpdatedAt := documentFields[10].Descriptor()
	// document.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	document.DefaultUpdatedAt = documentDescUpdatedAt.Default.(func() time.Time)
	// document.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	document.UpdateDefaultUpdatedAt = documentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	extractionfieldFields := schema.ExtractionField{}.Fields()
	_ = extractionfieldFields
	// extractionfieldDescFieldName is the schema descriptor for field_name field.
	extractionfieldDescFieldName := extractionfieldFields[2].Descriptor()
	// extractionfield.FieldNameValidator is a validator for the "field_name" field. It is called by the builders before save.
	extractionfield.FieldNameValidator = extractionfieldDescFieldName.Validators[0].(func(string) error)
	// extractionfieldDescFieldType is the schema descriptor for field_type field.
	extractionfieldDescFieldType := extractionfieldFields[3].Descriptor()
	// extractionfield.FieldTypeValidator is a validator for the "field_type" field. It is called by the builders before save.
	extractionfield.FieldTypeValidator = extractionfieldDescFieldType.Validators[0].(func(string) error)
	// extractionfieldDescConfidence is the schema descriptor for confidence field.
	extractionfieldDescConfidence := extractionfieldFields[5].Descriptor()
	// extractionfield.DefaultConfidence holds the default value on creation for the confidence field.
	extractionfield.DefaultConfidence = extractionfieldDescConfidence.Default.(float32)
	// extractionfieldDescFieldStatus is the schema descriptor for field_status field.
	extractionfieldDescFieldStatus := extractionfieldFields[7].Descriptor()
	// extractionfield.DefaultFieldStatus holds the default value on creation for the field_status field.
	extractionfield.DefaultFieldStatus = extractionfieldDescFieldStatus.Default.(string)
	// extractionfield.FieldStatusValidator is a validator for the "field_status" field. It is called by the builders before save.
	extractionfield.FieldStatusValidator = extractionfieldDescFieldStatus.Validators[0].(func(string) error)
	// extractionfieldDescID is the schema descriptor for id field.
	extractionfieldDescID := extractionfieldFields[0].Descriptor()
	// extractionfield.DefaultID holds the default value on creation for the id field.
	extractionfield.DefaultID = extractionfieldDescID.Default.(func() uuid.UUID)
	extractionrecordFields := schema.ExtractionRecord{}.Fields()
	_ = extractionrecordFields
	// extractionrecordDescRecordStatus is the schema descriptor for record_status field.
	extractionrecordDescRecordStatus := extractionrecordFields[3].Descriptor()
	// extractionrecord.DefaultRecordStatus holds the default value on creation for the record_status field.
	extractionrecord.DefaultRecordStatus = extractionrecordDescRecordStatus.Default.(string)
	// extractionrecord.RecordStatusValidator is a validator for the "record_status" field. It is called by the builders before save.
	extractionrecord.RecordStatusValidator = extractionrecordDescRecordStatus.Validators[0].(func(string) error)
	// extractionrecordDescCreatedAt is the schema descriptor for created_at field.
	extractionrecordDescCreatedAt := extractionrecordFields[5].Descriptor()
	// extractionrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	extractionrecord.DefaultCreatedAt = extractionrecordDescCreatedAt.Default.(func() time.Time)
	// extractionrecordDescUpdatedAt is the schema descriptor for updated_at field.
	extractionrecordDescUpdatedAt := extractionrecordFields[6].Descriptor()
	// extractionrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	extractionrecord.DefaultUpdatedAt = extractionrecordDescUpdatedAt.Default.(func() time.Time)
	// extractionrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	extractionrecord.UpdateDefaultUpdatedAt = extractionrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	// extractionrecordDescID is the schema descriptor for id field.
	extractionrecordDescID := extractionrecordFields[0].Descriptor()
	// extractionrecord.DefaultID holds the default value on creation for the id field.
	extractionrecord.DefaultID = extractionrecordDescID.Default.(func() uuid.UUID)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescName is the schema descriptor for name field.
	projectDescName := projectFields[2].Descriptor()
	// project.NameValidator is a validator for the "name" field. It is called by the builders before save.
	project.NameValidator = projectDescName.Validators[0].(func(string) error)
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[5].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	// projectDescUpdatedAt is the schema descriptor for updated_at field.
	projectDescUpdatedAt := projectFields[6].Descriptor()
	// project.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	project.DefaultUpdatedAt = projectDescUpdatedAt.Default.(func() time.Time)
	// project.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	project.UpdateDefaultUpdatedAt = projectDescUpdatedAt.UpdateDefault.(func() time.Time)
	// projectDescID is the schema descriptor for id field.
	projectDescID := projectFields[0].Descriptor()
	// project.DefaultID holds the default value on creation for the id field.
	project.DefaultID = projectDescID.Default.(func() uuid.UUID)
	revieweventFields := schema.ReviewEvent{}.Fields()
	_ = revieweventFields
	// revieweventDescAction is the schema descriptor for action field.
	revieweventDescAction := revieweventFields[2].Descriptor()
	// reviewevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	reviewevent.ActionValidator = func() func(string) error {
		validators := revieweventDescAction.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(action string) error {
			for _, fn := range fns {
				if err := fn(action); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// revieweventDescActor is the schema descriptor for actor field.
	revieweventDescActor := revieweventFields[5].Descriptor()
	// reviewevent.ActorValidator is a validator for the "actor" field. It is called by the builders before save.
	reviewevent.ActorValidator = revieweventDescActor.Validators[0].(func(string) error)
	// revieweventDescCreatedAt is the schema descriptor for created_at field.
	revieweventDescCreatedAt := revieweventFields[6].Descriptor()
	// reviewevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	reviewevent.DefaultCreatedAt = revieweventDescCreatedAt.Default.(func() time.Time)
	// revieweventDescID is the schema descriptor for id field.
	revieweventDescID := revieweventFields[0].Descriptor()
	// reviewevent.DefaultID holds the default value on creation for the id field.
	reviewevent.DefaultID = revieweventDescID.Default.(func() uuid.UUID)
	runFields := schema.Run{}.Fields()
	_ = runFields
	// runDescStatus is the schema descriptor for status field.
	runDescStatus := runFields[2].Descriptor()
	// run.DefaultStatus holds the default value on creation for the status field.
	run.DefaultStatus = runDescStatus.Default.(string)
	// run.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	run.StatusValidator = runDescStatus.Validators[0].(func(string) error)
	// runDescCostEstimate is the schema descriptor for cost_estimate field.
	runDescCostEstimate := runFields[7].Descriptor()
	// run.DefaultCostEstimate holds the default value on creation for the cost_estimate field.
	run.DefaultCostEstimate = runDescCostEstimate.Default.(float64)
	// runDescProcessedCount is the schema descriptor for processed_count field.
	runDescProcessedCount := runFields[8].Descriptor()
	// run.DefaultProcessedCount holds the default value on creation for the processed_count field.
	run.DefaultProcessedCount = runDescProcessedCount.Default.(int)
	// runDescSkippedCount is the schema descriptor for skipped_count field.
	runDescSkippedCount := runFields[9].Descriptor()
	// run.DefaultSkippedCount holds the default value on creation for the skipped_count field.
	run.DefaultSkippedCount = runDescSkippedCount.Default.(int)
	// runDescCreatedAt is the schema descriptor for created_at field.
	runDescCreatedAt := runFields[11].Descriptor()
	// run.DefaultCreatedAt holds the default value on creation for the created_at field.
	run.DefaultCreatedAt = runDescCreatedAt.Default.(func() time.Time)
	// runDescID is the schema descriptor for id field.
	runDescID := runFields[0].Descriptor()
	// run.DefaultID holds the default value on creation for the id field.
	run.DefaultID = runDescID.Default.(func() uuid.UUID)
	runstepFields := schema.RunStep{}.Fields()
	_ = runstepFields
	// runstepDescStepName is the schema descriptor for step_name field.
	runstepDescStepName := runstepFields[3].Descriptor()
	// runstep.StepNameValidator is a validator for the "step_name" field. It is called by the builders before save.
	runstep.StepNameValidator = func() func(string) error {
		validators := runstepDescStepName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(step_name string) error {
			for _, fn := range fns {
				if err := fn(step_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// runstepDescStatus is the schema descriptor for status field.
	runstepDescStatus := runstepFields[4].Descriptor()
	// runstep.DefaultStatus holds the default value on creation for the status field.
	runstep.DefaultStatus = runstepDescStatus.Default.(string)
	// runstepDescID is the schema descriptor for id field.
	runstepDescID := runstepFields[0].Descriptor()
	// runstep.DefaultID holds the default value on creation for the id field.
	runstep.DefaultID = runstepDescID.Default.(func() uuid.UUID)
	templateFields := schema.Template{}.Fields()
	_ = templateFields
	// templateDescSlug is the schema descriptor for slug field.
	templateDescSlug := templateFields[1].Descriptor()
	// template.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	template.SlugValidator = templateDescSlug.Validators[0].(func(string) error)
	// templateDescVersion is the schema descriptor for version field.
	templateDescVersion := templateFields[2].Descriptor()
	// template.DefaultVersion holds the default value on creation for the version field.
	template.DefaultVersion = templateDescVersion.Default.(int)
	// templateDescCreatedAt is the schema descriptor for created_at field.
	templateDescCreatedAt := templateFields[4].Descriptor()
	// template.DefaultCreatedAt holds the default value on creation for the created_at field.
	template.DefaultCreatedAt = templateDescCreatedAt.Default.(func() time.Time)
	// templateDescUpdatedAt is the schema descriptor for updated_at field.
	templateDescUpdatedAt := templateFields[5].Descriptor()
	// template.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	template.DefaultUpdatedAt = templateDescUpdatedAt.Default.(func() time.Time)
	// template.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	template.UpdateDefaultUpdatedAt = templateDescUpdatedAt.UpdateDefault.(func() time.Time)
	// templateDescID is the schema descriptor for id field.
	templateDescID := templateFields[0].Descriptor()
	// template.DefaultID holds the default value on creation for the id field.
	template.DefaultID = templateDescID.Default.(func() uuid.UUID)
	workspaceFields := schema.Workspace{}.Fields()
	_ = workspaceFields
	// workspaceDescName is the schema descriptor for name field.
	workspaceDescName := workspaceFields[1].Descriptor()
	// workspace.NameValidator is a validator for the "name" field. It is called by the builders before save.
	workspace.NameValidator = workspaceDescName.Validators[0].(func(string) error)
	// workspaceDescCreatedAt is the schema descriptor for created_at field.
	workspaceDescCreatedAt := workspaceFields[3].Descriptor()
	// workspace.DefaultCreatedAt holds the default value on creation for the created_at field.
	workspace.DefaultCreatedAt = workspaceDescCreatedAt.Default.(func() time.Time)
	// workspaceDescUpdatedAt is the schema descriptor for updated_at field.
	workspaceDescUpdatedAt := workspaceFields[4].Descriptor()
	// workspace.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	workspace.DefaultUpdatedAt = workspaceDescUpdatedAt.Default.(func() time.Time)
	// workspace.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	workspace.UpdateDefaultUpdatedAt = workspaceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// workspaceDescID is the schema descriptor for id field.
	workspaceDescID := workspaceFields[0].Descriptor()
	// workspace.DefaultID holds the default value on creation for the id field.
	workspace.DefaultID = workspaceDescID.Default.(func() uuid.UUID)
}
