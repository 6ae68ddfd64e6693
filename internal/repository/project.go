package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/veridoc-ai/veridoc/gen/ent"
	"github.com/veridoc-ai/veridoc/internal/common"
	"github.com/veridoc-ai/veridoc/internal/entity"
	"github.com/veridoc-ai/veridoc/internal/utils"
)

type ProjectRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Project, error)
	GetWorkspace(ctx context.Context, id uuid.UUID) (*entity.Workspace, error)
}

type projectRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewProjectRepository(entc *ent.Client, log *slog.Logger) ProjectRepository {
	return &projectRepo{ent: entc, log: log}
}

func (r *projectRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	row, err := r.ent.Project.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return utils.ToProject(row), nil
}

func (r *projectRepo) GetWorkspace(ctx context.Context, id uuid.UUID) (*entity.Workspace, error) {
	row, err := r.ent.Workspace.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return utils.ToWorkspace(row), nil
}
