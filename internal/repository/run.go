package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/veridoc-ai/veridoc/constants"
	"github.com/veridoc-ai/veridoc/gen/ent"
	"github.com/veridoc-ai/veridoc/internal/entity"
	"github.com/veridoc-ai/veridoc/internal/utils"
)

type RunRepository interface {
	// Create snapshots settings and template into the run at creation time;
	// later edits to the live project/template must not leak into it.
	Create(ctx context.Context, projectID uuid.UUID, settings entity.RunSettings, tpl entity.Template) (*entity.Run, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Run, error)
	MarkProcessing(ctx context.Context, id uuid.UUID) error
	// AddCost and the counters are additive so concurrent runs stay correct.
	AddCost(ctx context.Context, id uuid.UUID, delta float64) error
	IncrementProcessed(ctx context.Context, id uuid.UUID) error
	IncrementSkipped(ctx context.Context, id uuid.UUID) error
	Finalize(ctx context.Context, id uuid.UUID, status constants.RunStatus, errorMessage *string) error
}

type runRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewRunRepository(entc *ent.Client, log *slog.Logger) RunRepository {
	return &runRepo{ent: entc, log: log}
}

func (r *runRepo) Create(ctx context.Context, projectID uuid.UUID, settings entity.RunSettings, tpl entity.Template) (*entity.Run, error) {
	settingsJSON, err := json.Marshal(settings)
	if err != nil {
		return nil, err
	}
	tplJSON, err := json.Marshal(tpl)
	if err != nil {
		return nil, err
	}
	row, err := r.ent.Run.
		Create().
		SetProjectID(projectID).
		SetStatus(string(constants.RunStatusPending)).
		SetSettingsSnapshot(settingsJSON).
		SetTemplateSnapshot(tplJSON).
		Save(ctx)
	if err != nil {
		r.log.Error("run create failed", "project_id", projectID, "err", err)
		return nil, err
	}
	r.log.Info("run created", "run_id", row.ID, "project_id", projectID, "template", tpl.Slug)
	return utils.ToRun(row)
}

func (r *runRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Run, error) {
	row, err := r.ent.Run.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToRun(row)
}

func (r *runRepo) MarkProcessing(ctx context.Context, id uuid.UUID) error {
	_, err := r.ent.Run.
		UpdateOneID(id).
		SetStatus(string(constants.RunStatusProcessing)).
		SetStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("run mark processing failed", "run_id", id, "err", err)
	}
	return err
}

func (r *runRepo) AddCost(ctx context.Context, id uuid.UUID, delta float64) error {
	_, err := r.ent.Run.
		UpdateOneID(id).
		AddCostEstimate(delta).
		Save(ctx)
	if err != nil {
		r.log.Error("run add cost failed", "run_id", id, "delta", delta, "err", err)
	}
	return err
}

func (r *runRepo) IncrementProcessed(ctx context.Context, id uuid.UUID) error {
	_, err := r.ent.Run.
		UpdateOneID(id).
		AddProcessedCount(1).
		Save(ctx)
	if err != nil {
		r.log.Error("run increment processed failed", "run_id", id, "err", err)
	}
	return err
}

func (r *runRepo) IncrementSkipped(ctx context.Context, id uuid.UUID) error {
	_, err := r.ent.Run.
		UpdateOneID(id).
		AddSkippedCount(1).
		Save(ctx)
	if err != nil {
		r.log.Error("run increment skipped failed", "run_id", id, "err", err)
	}
	return err
}

func (r *runRepo) Finalize(ctx context.Context, id uuid.UUID, status constants.RunStatus, errorMessage *string) error {
	upd := r.ent.Run.
		UpdateOneID(id).
		SetStatus(string(status)).
		SetFinishedAt(time.Now())
	if errorMessage != nil {
		upd = upd.SetErrorMessage(*errorMessage)
	}
	_, err := upd.Save(ctx)
	if err != nil {
		r.log.Error("run finalize failed", "run_id", id, "status", status, "err", err)
		return err
	}
	r.log.Info("run finalized", "run_id", id, "status", status)
	return nil
}
