// Package utils converts between generated ent rows and entity structs.
package utils

import (
	"encoding/json"
	"fmt"

	"github.com/veridoc-ai/veridoc/constants"
	"github.com/veridoc-ai/veridoc/gen/ent"
	"github.com/veridoc-ai/veridoc/internal/entity"
)

// ToRun converts an ent row, decoding the frozen snapshots. A run whose
// snapshots cannot be decoded is unusable, so this returns an error.
func ToRun(r *ent.Run) (*entity.Run, error) {
	out := &entity.Run{
		ID:             r.ID,
		ProjectID:      r.ProjectID,
		Status:         constants.RunStatus(r.Status),
		StartedAt:      r.StartedAt,
		FinishedAt:     r.FinishedAt,
		CostEstimate:   r.CostEstimate,
		ProcessedCount: r.ProcessedCount,
		SkippedCount:   r.SkippedCount,
		ErrorMessage:   r.ErrorMessage,
		CreatedAt:      r.CreatedAt,
	}
	if len(r.SettingsSnapshot) > 0 {
		if err := json.Unmarshal(r.SettingsSnapshot, &out.SettingsSnapshot); err != nil {
			return nil, fmt.Errorf("decode settings snapshot for run %s: %w", r.ID, err)
		}
	}
	if len(r.TemplateSnapshot) > 0 {
		if err := json.Unmarshal(r.TemplateSnapshot, &out.TemplateSnapshot); err != nil {
			return nil, fmt.Errorf("decode template snapshot for run %s: %w", r.ID, err)
		}
	}
	return out, nil
}

func ToRunStep(s *ent.RunStep) *entity.RunStep {
	return &entity.RunStep{
		ID:         s.ID,
		RunID:      s.RunID,
		DocumentID: s.DocumentID,
		StepName:   constants.StepName(s.StepName),
		Status:     constants.StepStatus(s.Status),
		Input:      s.Input,
		Output:     s.Output,
		Error:      s.Error,
		StartedAt:  s.StartedAt,
		FinishedAt: s.FinishedAt,
	}
}

func ToDocument(d *ent.Document) *entity.Document {
	updated := d.UpdatedAt
	return &entity.Document{
		ID:              d.ID,
		ProjectID:       d.ProjectID,
		FileURL:         d.FileURL,
		FileType:        d.FileType,
		Status:          d.Status,
		DocTypeScore:    d.DocTypeScore,
		DocTypeDetected: d.DocTypeDetected,
		DocTypeReason:   d.DocTypeReason,
		SkipReason:      d.SkipReason,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       &updated,
	}
}

func ToProject(p *ent.Project) *entity.Project {
	out := &entity.Project{
		ID:               p.ID,
		WorkspaceID:      p.WorkspaceID,
		Name:             p.Name,
		APIKeyCiphertext: p.APIKeyCiphertext,
		CreatedAt:        p.CreatedAt,
	}
	if len(p.Requirements) > 0 {
		// Malformed requirements degrade to none; validation rules that
		// depend on them are skipped rather than wrong.
		_ = json.Unmarshal(p.Requirements, &out.Requirements)
	}
	return out
}

func ToWorkspace(w *ent.Workspace) *entity.Workspace {
	return &entity.Workspace{
		ID:               w.ID,
		Name:             w.Name,
		APIKeyCiphertext: w.APIKeyCiphertext,
		CreatedAt:        w.CreatedAt,
	}
}

// ToTemplate decodes the stored template config.
func ToTemplate(t *ent.Template) (*entity.Template, error) {
	var out entity.Template
	if err := json.Unmarshal(t.Config, &out); err != nil {
		return nil, fmt.Errorf("decode template config for %s v%d: %w", t.Slug, t.Version, err)
	}
	out.Slug = t.Slug
	out.Version = t.Version
	return &out, nil
}

func ToRecord(r *ent.ExtractionRecord) *entity.ExtractionRecord {
	out := &entity.ExtractionRecord{
		ID:           r.ID,
		RunID:        r.RunID,
		DocumentID:   r.DocumentID,
		RecordStatus: constants.RecordStatus(r.RecordStatus),
		CreatedAt:    r.CreatedAt,
	}
	if len(r.FailedRules) > 0 {
		_ = json.Unmarshal(r.FailedRules, &out.FailedRules)
	}
	return out
}

func ToField(f *ent.ExtractionField) *entity.ExtractionField {
	out := &entity.ExtractionField{
		ID:             f.ID,
		RecordID:       f.RecordID,
		FieldName:      f.FieldName,
		FieldType:      f.FieldType,
		ExtractedValue: f.ExtractedValue,
		Confidence:     f.Confidence,
		FieldStatus:    constants.FieldStatus(f.FieldStatus),
	}
	if len(f.Evidence) > 0 {
		_ = json.Unmarshal(f.Evidence, &out.Evidence)
	}
	if len(f.ValidationErrors) > 0 {
		_ = json.Unmarshal(f.ValidationErrors, &out.ValidationErrors)
	}
	return out
}

func ToReviewEvent(e *ent.ReviewEvent) *entity.ReviewEvent {
	return &entity.ReviewEvent{
		ID:        e.ID,
		FieldID:   e.FieldID,
		Action:    constants.ReviewAction(e.Action),
		OldValue:  e.OldValue,
		NewValue:  e.NewValue,
		Actor:     e.Actor,
		CreatedAt: e.CreatedAt,
	}
}
