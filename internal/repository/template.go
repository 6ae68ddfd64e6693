package repository

import (
	"context"
	"log/slog"

	"github.com/veridoc-ai/veridoc/gen/ent"
	"github.com/veridoc-ai/veridoc/gen/ent/template"
	"github.com/veridoc-ai/veridoc/internal/common"
	"github.com/veridoc-ai/veridoc/internal/entity"
	"github.com/veridoc-ai/veridoc/internal/utils"
)

type TemplateRepository interface {
	// GetBySlug returns the newest version of the named template.
	GetBySlug(ctx context.Context, slug string) (*entity.Template, error)
	GetBySlugVersion(ctx context.Context, slug string, version int) (*entity.Template, error)
}

type templateRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewTemplateRepository(entc *ent.Client, log *slog.Logger) TemplateRepository {
	return &templateRepo{ent: entc, log: log}
}

func (r *templateRepo) GetBySlug(ctx context.Context, slug string) (*entity.Template, error) {
	row, err := r.ent.Template.
		Query().
		Where(template.Slug(slug)).
		Order(ent.Desc(template.FieldVersion)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return utils.ToTemplate(row)
}

func (r *templateRepo) GetBySlugVersion(ctx context.Context, slug string, version int) (*entity.Template, error) {
	row, err := r.ent.Template.
		Query().
		Where(template.Slug(slug), template.Version(version)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return utils.ToTemplate(row)
}
