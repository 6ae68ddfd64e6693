package review

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/veridoc-ai/veridoc/constants"
	"github.com/veridoc-ai/veridoc/internal/common"
	"github.com/veridoc-ai/veridoc/internal/entity"
)

type fakeReviews struct {
	fields map[uuid.UUID]*entity.ExtractionField
	events []*entity.ReviewEvent
}

func (f *fakeReviews) GetField(ctx context.Context, fieldID uuid.UUID) (*entity.ExtractionField, error) {
	field, ok := f.fields[fieldID]
	if !ok {
		return nil, common.ErrNotFound
	}
	return field, nil
}

func (f *fakeReviews) ApplyEdit(ctx context.Context, event *entity.ReviewEvent, newStatus string) (*entity.ReviewEvent, error) {
	field, ok := f.fields[event.FieldID]
	if !ok {
		return nil, common.ErrNotFound
	}
	field.FieldStatus = constants.FieldStatus(newStatus)
	if len(event.NewValue) > 0 {
		field.ExtractedValue = event.NewValue
	}
	copied := *event
	copied.ID = uuid.New()
	f.events = append(f.events, &copied)
	return &copied, nil
}

func (f *fakeReviews) ListEvents(ctx context.Context, fieldID uuid.UUID) ([]*entity.ReviewEvent, error) {
	var out []*entity.ReviewEvent
	for _, e := range f.events {
		if e.FieldID == fieldID {
			out = append(out, e)
		}
	}
	return out, nil
}

func newTestService() (*Service, *fakeReviews, uuid.UUID) {
	repo := &fakeReviews{fields: map[uuid.UUID]*entity.ExtractionField{}}
	fieldID := uuid.New()
	repo.fields[fieldID] = &entity.ExtractionField{
		ID:             fieldID,
		FieldName:      "coverage_amount",
		FieldType:      "number",
		ExtractedValue: json.RawMessage(`1000000`),
		FieldStatus:    constants.FieldStatusNeedsReview,
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(repo, log), repo, fieldID
}

func TestEditReplacesValueAndRecordsOldValue(t *testing.T) {
	svc, repo, fieldID := newTestService()

	event, err := svc.Edit(context.Background(), fieldID, json.RawMessage(`2000000`), "reviewer@acme")
	if err != nil {
		t.Fatalf("Edit: %v", err)
	}
	if event.Action != constants.ReviewActionEdit {
		t.Errorf("action = %s, want EDIT", event.Action)
	}
	if string(event.OldValue) != `1000000` {
		t.Errorf("old value = %s, want original extracted value", event.OldValue)
	}
	if string(event.NewValue) != `2000000` {
		t.Errorf("new value = %s", event.NewValue)
	}
	field := repo.fields[fieldID]
	if string(field.ExtractedValue) != `2000000` {
		t.Errorf("field value = %s, want replaced", field.ExtractedValue)
	}
	if field.FieldStatus != constants.FieldStatusPass {
		t.Errorf("field status = %s, want PASS after human edit", field.FieldStatus)
	}
}

func TestEditRequiresNewValue(t *testing.T) {
	svc, repo, fieldID := newTestService()

	if _, err := svc.Edit(context.Background(), fieldID, nil, "reviewer@acme"); !errors.Is(err, common.ErrInvalidInput) {
		t.Fatalf("Edit without value = %v, want ErrInvalidInput", err)
	}
	if len(repo.events) != 0 {
		t.Errorf("rejected edit must not append events, got %d", len(repo.events))
	}
}

func TestApproveKeepsValueAndPasses(t *testing.T) {
	svc, repo, fieldID := newTestService()

	event, err := svc.Approve(context.Background(), fieldID, "reviewer@acme")
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if event.Action != constants.ReviewActionApprove {
		t.Errorf("action = %s, want APPROVE", event.Action)
	}
	field := repo.fields[fieldID]
	if string(field.ExtractedValue) != `1000000` {
		t.Errorf("approve must not change the value, got %s", field.ExtractedValue)
	}
	if field.FieldStatus != constants.FieldStatusPass {
		t.Errorf("field status = %s, want PASS", field.FieldStatus)
	}
}

func TestRejectMarksFailValidation(t *testing.T) {
	svc, repo, fieldID := newTestService()

	event, err := svc.Reject(context.Background(), fieldID, "reviewer@acme")
	if err != nil {
		t.Fatalf("Reject: %v", err)
	}
	if event.Action != constants.ReviewActionReject {
		t.Errorf("action = %s, want REJECT", event.Action)
	}
	if repo.fields[fieldID].FieldStatus != constants.FieldStatusFailValidation {
		t.Errorf("field status = %s, want FAIL_VALIDATION", repo.fields[fieldID].FieldStatus)
	}
}

func TestHistoryReturnsAuditTrail(t *testing.T) {
	svc, _, fieldID := newTestService()

	if _, err := svc.Edit(context.Background(), fieldID, json.RawMessage(`2000000`), "a"); err != nil {
		t.Fatalf("Edit: %v", err)
	}
	if _, err := svc.Approve(context.Background(), fieldID, "b"); err != nil {
		t.Fatalf("Approve: %v", err)
	}

	events, err := svc.History(context.Background(), fieldID)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("history length = %d, want 2", len(events))
	}
	if events[0].Action != constants.ReviewActionEdit || events[1].Action != constants.ReviewActionApprove {
		t.Errorf("history order = %s, %s", events[0].Action, events[1].Action)
	}
	// The second event's old value is the first edit's replacement, so the
	// original machine value stays reconstructable from the trail.
	if string(events[1].OldValue) != `2000000` {
		t.Errorf("second old value = %s, want 2000000", events[1].OldValue)
	}
}

func TestUnknownFieldReturnsNotFound(t *testing.T) {
	svc, _, _ := newTestService()
	if _, err := svc.Approve(context.Background(), uuid.New(), "reviewer@acme"); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("Approve unknown field = %v, want ErrNotFound", err)
	}
}
