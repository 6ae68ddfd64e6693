package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/veridoc-ai/veridoc/constants"
	"github.com/veridoc-ai/veridoc/gen/ent"
	"github.com/veridoc-ai/veridoc/gen/ent/extractionfield"
	"github.com/veridoc-ai/veridoc/gen/ent/extractionrecord"
	"github.com/veridoc-ai/veridoc/internal/entity"
	"github.com/veridoc-ai/veridoc/internal/utils"
)

type RecordRepository interface {
	CreateRecord(ctx context.Context, runID, documentID uuid.UUID) (*entity.ExtractionRecord, error)
	CreateField(ctx context.Context, field *entity.ExtractionField) (*entity.ExtractionField, error)
	FinalizeRecord(ctx context.Context, recordID uuid.UUID, status constants.RecordStatus, failedRules []string) error
	FindForRunDocument(ctx context.Context, runID, documentID uuid.UUID) (*entity.ExtractionRecord, error)
	ListForRun(ctx context.Context, runID uuid.UUID) ([]*entity.ExtractionRecord, error)
	ListFields(ctx context.Context, recordID uuid.UUID) ([]*entity.ExtractionField, error)
}

type recordRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewRecordRepository(entc *ent.Client, log *slog.Logger) RecordRepository {
	return &recordRepo{ent: entc, log: log}
}

func (r *recordRepo) CreateRecord(ctx context.Context, runID, documentID uuid.UUID) (*entity.ExtractionRecord, error) {
	row, err := r.ent.ExtractionRecord.
		Create().
		SetRunID(runID).
		SetDocumentID(documentID).
		Save(ctx)
	if err != nil {
		r.log.Error("extraction_record create failed", "run_id", runID, "document_id", documentID, "err", err)
		return nil, err
	}
	return utils.ToRecord(row), nil
}

func (r *recordRepo) CreateField(ctx context.Context, f *entity.ExtractionField) (*entity.ExtractionField, error) {
	create := r.ent.ExtractionField.
		Create().
		SetRecordID(f.RecordID).
		SetFieldName(f.FieldName).
		SetFieldType(f.FieldType).
		SetConfidence(f.Confidence).
		SetFieldStatus(string(f.FieldStatus))
	if len(f.ExtractedValue) > 0 {
		create = create.SetExtractedValue(f.ExtractedValue)
	}
	if len(f.Evidence) > 0 {
		if b, err := json.Marshal(f.Evidence); err == nil {
			create = create.SetEvidence(b)
		}
	}
	if len(f.ValidationErrors) > 0 {
		if b, err := json.Marshal(f.ValidationErrors); err == nil {
			create = create.SetValidationErrors(b)
		}
	}
	row, err := create.Save(ctx)
	if err != nil {
		r.log.Error("extraction_field create failed", "record_id", f.RecordID, "field", f.FieldName, "err", err)
		return nil, err
	}
	return utils.ToField(row), nil
}

func (r *recordRepo) FinalizeRecord(ctx context.Context, recordID uuid.UUID, status constants.RecordStatus, failedRules []string) error {
	upd := r.ent.ExtractionRecord.
		UpdateOneID(recordID).
		SetRecordStatus(string(status))
	if len(failedRules) > 0 {
		if b, err := json.Marshal(failedRules); err == nil {
			upd = upd.SetFailedRules(b)
		}
	}
	_, err := upd.Save(ctx)
	if err != nil {
		r.log.Error("extraction_record finalize failed", "record_id", recordID, "err", err)
		return err
	}
	r.log.Info("extraction_record finalized", "record_id", recordID, "status", status)
	return nil
}

func (r *recordRepo) FindForRunDocument(ctx context.Context, runID, documentID uuid.UUID) (*entity.ExtractionRecord, error) {
	row, err := r.ent.ExtractionRecord.
		Query().
		Where(
			extractionrecord.RunID(runID),
			extractionrecord.DocumentID(documentID),
		).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return utils.ToRecord(row), nil
}

func (r *recordRepo) ListForRun(ctx context.Context, runID uuid.UUID) ([]*entity.ExtractionRecord, error) {
	rows, err := r.ent.ExtractionRecord.
		Query().
		Where(extractionrecord.RunID(runID)).
		Order(ent.Asc(extractionrecord.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.ExtractionRecord, len(rows))
	for i, row := range rows {
		out[i] = utils.ToRecord(row)
	}
	return out, nil
}

func (r *recordRepo) ListFields(ctx context.Context, recordID uuid.UUID) ([]*entity.ExtractionField, error) {
	rows, err := r.ent.ExtractionField.
		Query().
		Where(extractionfield.RecordID(recordID)).
		Order(ent.Asc(extractionfield.FieldFieldName)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.ExtractionField, len(rows))
	for i, row := range rows {
		out[i] = utils.ToField(row)
	}
	return out, nil
}
