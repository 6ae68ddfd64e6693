package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/veridoc-ai/veridoc/gen/ent"
	"github.com/veridoc-ai/veridoc/gen/ent/document"
	"github.com/veridoc-ai/veridoc/internal/entity"
	"github.com/veridoc-ai/veridoc/internal/utils"
)

type DocumentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	// ListForProject returns the project's documents in upload order.
	ListForProject(ctx context.Context, projectID uuid.UUID) ([]*entity.Document, error)
	SaveClassification(ctx context.Context, id uuid.UUID, score float64, detectedType, reason string) error
	SetSkipReason(ctx context.Context, id uuid.UUID, reason string) error
}

type documentRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewDocumentRepository(entc *ent.Client, log *slog.Logger) DocumentRepository {
	return &documentRepo{ent: entc, log: log}
}

func (r *documentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	row, err := r.ent.Document.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToDocument(row), nil
}

func (r *documentRepo) ListForProject(ctx context.Context, projectID uuid.UUID) ([]*entity.Document, error) {
	rows, err := r.ent.Document.
		Query().
		Where(document.ProjectID(projectID)).
		Order(ent.Asc(document.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.log.Error("document list failed", "project_id", projectID, "err", err)
		return nil, err
	}
	out := make([]*entity.Document, len(rows))
	for i, row := range rows {
		out[i] = utils.ToDocument(row)
	}
	return out, nil
}

func (r *documentRepo) SaveClassification(ctx context.Context, id uuid.UUID, score float64, detectedType, reason string) error {
	_, err := r.ent.Document.
		UpdateOneID(id).
		SetDocTypeScore(score).
		SetDocTypeDetected(detectedType).
		SetDocTypeReason(reason).
		Save(ctx)
	if err != nil {
		r.log.Error("document save classification failed", "document_id", id, "err", err)
	}
	return err
}

func (r *documentRepo) SetSkipReason(ctx context.Context, id uuid.UUID, reason string) error {
	_, err := r.ent.Document.
		UpdateOneID(id).
		SetSkipReason(reason).
		SetStatus("SKIPPED").
		Save(ctx)
	if err != nil {
		r.log.Error("document set skip reason failed", "document_id", id, "err", err)
	}
	return err
}
