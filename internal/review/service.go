package review

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/veridoc-ai/veridoc/constants"
	"github.com/veridoc-ai/veridoc/internal/common"
	"github.com/veridoc-ai/veridoc/internal/entity"
	"github.com/veridoc-ai/veridoc/internal/repository"
)

// Service applies human review actions to extracted fields. Every mutation is
// recorded as a ReviewEvent so the original machine-extracted value stays
// reconstructable from the audit trail.
type Service struct {
	reviews repository.ReviewRepository
	log     *slog.Logger
}

func NewService(reviews repository.ReviewRepository, log *slog.Logger) *Service {
	return &Service{reviews: reviews, log: log}
}

// Edit replaces a field's value with a reviewer-supplied one. The field moves
// to PASS since a human has vouched for it.
func (s *Service) Edit(ctx context.Context, fieldID uuid.UUID, newValue json.RawMessage, actor string) (*entity.ReviewEvent, error) {
	if len(newValue) == 0 {
		return nil, fmt.Errorf("%w: edit requires a new value", common.ErrInvalidInput)
	}
	field, err := s.reviews.GetField(ctx, fieldID)
	if err != nil {
		return nil, err
	}
	event := &entity.ReviewEvent{
		FieldID:  fieldID,
		Action:   constants.ReviewActionEdit,
		OldValue: field.ExtractedValue,
		NewValue: newValue,
		Actor:    actor,
	}
	return s.reviews.ApplyEdit(ctx, event, string(constants.FieldStatusPass))
}

// Approve accepts the extracted value as-is.
func (s *Service) Approve(ctx context.Context, fieldID uuid.UUID, actor string) (*entity.ReviewEvent, error) {
	field, err := s.reviews.GetField(ctx, fieldID)
	if err != nil {
		return nil, err
	}
	event := &entity.ReviewEvent{
		FieldID:  fieldID,
		Action:   constants.ReviewActionApprove,
		OldValue: field.ExtractedValue,
		Actor:    actor,
	}
	return s.reviews.ApplyEdit(ctx, event, string(constants.FieldStatusPass))
}

// Reject marks the extracted value as wrong without supplying a replacement.
func (s *Service) Reject(ctx context.Context, fieldID uuid.UUID, actor string) (*entity.ReviewEvent, error) {
	field, err := s.reviews.GetField(ctx, fieldID)
	if err != nil {
		return nil, err
	}
	event := &entity.ReviewEvent{
		FieldID:  fieldID,
		Action:   constants.ReviewActionReject,
		OldValue: field.ExtractedValue,
		Actor:    actor,
	}
	return s.reviews.ApplyEdit(ctx, event, string(constants.FieldStatusFailValidation))
}

// History returns the field's review events oldest first.
func (s *Service) History(ctx context.Context, fieldID uuid.UUID) ([]*entity.ReviewEvent, error) {
	return s.reviews.ListEvents(ctx, fieldID)
}
