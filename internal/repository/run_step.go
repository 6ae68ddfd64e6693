package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/veridoc-ai/veridoc/constants"
	"github.com/veridoc-ai/veridoc/gen/ent"
	"github.com/veridoc-ai/veridoc/gen/ent/runstep"
	"github.com/veridoc-ai/veridoc/internal/entity"
	"github.com/veridoc-ai/veridoc/internal/utils"
)

type RunStepRepository interface {
	Create(ctx context.Context, runID, documentID uuid.UUID, stepName constants.StepName, input []byte) (*entity.RunStep, error)
	MarkRunning(ctx context.Context, id uuid.UUID) error
	MarkCompleted(ctx context.Context, id uuid.UUID, output []byte) error
	MarkFailed(ctx context.Context, id uuid.UUID, message string) error
	// FindCompleted is the idempotency guard: a re-invoked run skips stages
	// that already completed for the same (run, document, step).
	FindCompleted(ctx context.Context, runID, documentID uuid.UUID, stepName constants.StepName) (*entity.RunStep, error)
}

type runStepRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewRunStepRepository(entc *ent.Client, log *slog.Logger) RunStepRepository {
	return &runStepRepo{ent: entc, log: log}
}

func (r *runStepRepo) Create(ctx context.Context, runID, documentID uuid.UUID, stepName constants.StepName, input []byte) (*entity.RunStep, error) {
	create := r.ent.RunStep.
		Create().
		SetRunID(runID).
		SetDocumentID(documentID).
		SetStepName(string(stepName)).
		SetStatus(string(constants.StepStatusPending))
	if len(input) > 0 {
		create = create.SetInput(input)
	}
	row, err := create.Save(ctx)
	if err != nil {
		r.log.Error("run_step create failed", "run_id", runID, "document_id", documentID, "step", stepName, "err", err)
		return nil, err
	}
	return utils.ToRunStep(row), nil
}

func (r *runStepRepo) MarkRunning(ctx context.Context, id uuid.UUID) error {
	_, err := r.ent.RunStep.
		UpdateOneID(id).
		SetStatus(string(constants.StepStatusRunning)).
		SetStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("run_step mark running failed", "step_id", id, "err", err)
	}
	return err
}

func (r *runStepRepo) MarkCompleted(ctx context.Context, id uuid.UUID, output []byte) error {
	upd := r.ent.RunStep.
		UpdateOneID(id).
		SetStatus(string(constants.StepStatusCompleted)).
		SetFinishedAt(time.Now())
	if len(output) > 0 {
		upd = upd.SetOutput(output)
	}
	_, err := upd.Save(ctx)
	if err != nil {
		r.log.Error("run_step mark completed failed", "step_id", id, "err", err)
	}
	return err
}

func (r *runStepRepo) MarkFailed(ctx context.Context, id uuid.UUID, message string) error {
	_, err := r.ent.RunStep.
		UpdateOneID(id).
		SetStatus(string(constants.StepStatusFailed)).
		SetError(message).
		SetFinishedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("run_step mark failed failed", "step_id", id, "err", err)
	}
	return err
}

func (r *runStepRepo) FindCompleted(ctx context.Context, runID, documentID uuid.UUID, stepName constants.StepName) (*entity.RunStep, error) {
	row, err := r.ent.RunStep.
		Query().
		Where(
			runstep.RunID(runID),
			runstep.DocumentID(documentID),
			runstep.StepName(string(stepName)),
			runstep.Status(string(constants.StepStatusCompleted)),
		).
		Order(ent.Desc(runstep.FieldStartedAt)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return utils.ToRunStep(row), nil
}
