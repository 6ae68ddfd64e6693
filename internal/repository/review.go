package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/veridoc-ai/veridoc/gen/ent"
	"github.com/veridoc-ai/veridoc/gen/ent/reviewevent"
	"github.com/veridoc-ai/veridoc/internal/common"
	"github.com/veridoc-ai/veridoc/internal/entity"
	"github.com/veridoc-ai/veridoc/internal/utils"
)

type ReviewRepository interface {
	GetField(ctx context.Context, fieldID uuid.UUID) (*entity.ExtractionField, error)
	// ApplyEdit writes the new value and status onto the field and appends the
	// audit event in one transaction.
	ApplyEdit(ctx context.Context, event *entity.ReviewEvent, newStatus string) (*entity.ReviewEvent, error)
	ListEvents(ctx context.Context, fieldID uuid.UUID) ([]*entity.ReviewEvent, error)
}

type reviewRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewReviewRepository(entc *ent.Client, log *slog.Logger) ReviewRepository {
	return &reviewRepo{ent: entc, log: log}
}

func (r *reviewRepo) GetField(ctx context.Context, fieldID uuid.UUID) (*entity.ExtractionField, error) {
	row, err := r.ent.ExtractionField.Get(ctx, fieldID)
	if ent.IsNotFound(err) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return utils.ToField(row), nil
}

func (r *reviewRepo) ApplyEdit(ctx context.Context, event *entity.ReviewEvent, newStatus string) (*entity.ReviewEvent, error) {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return nil, err
	}
	upd := tx.ExtractionField.
		UpdateOneID(event.FieldID).
		SetFieldStatus(newStatus)
	if len(event.NewValue) > 0 {
		upd = upd.SetExtractedValue(event.NewValue)
	}
	if _, err := upd.Save(ctx); err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	create := tx.ReviewEvent.
		Create().
		SetFieldID(event.FieldID).
		SetAction(string(event.Action)).
		SetActor(event.Actor)
	if len(event.OldValue) > 0 {
		create = create.SetOldValue(event.OldValue)
	}
	if len(event.NewValue) > 0 {
		create = create.SetNewValue(event.NewValue)
	}
	row, err := create.Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	r.log.Info("review.applied", "field_id", event.FieldID, "action", event.Action, "actor", event.Actor)
	return utils.ToReviewEvent(row), nil
}

func (r *reviewRepo) ListEvents(ctx context.Context, fieldID uuid.UUID) ([]*entity.ReviewEvent, error) {
	rows, err := r.ent.ReviewEvent.
		Query().
		Where(reviewevent.FieldIDEQ(fieldID)).
		Order(ent.Asc(reviewevent.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.ReviewEvent, len(rows))
	for i, row := range rows {
		out[i] = utils.ToReviewEvent(row)
	}
	return out, nil
}
