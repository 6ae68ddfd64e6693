package orchestrator

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/veridoc-ai/veridoc/constants"
	"github.com/veridoc-ai/veridoc/internal/entity"
)

// stepRecorder is the minimal RunStepRepository for exercising execStage
// directly.
type stepRecorder struct {
	last *entity.RunStep
}

func (r *stepRecorder) Create(ctx context.Context, runID, documentID uuid.UUID, stepName constants.StepName, input []byte) (*entity.RunStep, error) {
	r.last = &entity.RunStep{
		ID:         uuid.New(),
		RunID:      runID,
		DocumentID: documentID,
		StepName:   stepName,
		Status:     constants.StepStatusPending,
		Input:      input,
	}
	return r.last, nil
}

func (r *stepRecorder) MarkRunning(ctx context.Context, id uuid.UUID) error {
	r.last.Status = constants.StepStatusRunning
	return nil
}

func (r *stepRecorder) MarkCompleted(ctx context.Context, id uuid.UUID, output []byte) error {
	r.last.Status = constants.StepStatusCompleted
	r.last.Output = output
	return nil
}

func (r *stepRecorder) MarkFailed(ctx context.Context, id uuid.UUID, message string) error {
	r.last.Status = constants.StepStatusFailed
	r.last.Error = &message
	return nil
}

func (r *stepRecorder) FindCompleted(ctx context.Context, runID, documentID uuid.UUID, stepName constants.StepName) (*entity.RunStep, error) {
	return nil, nil
}

func stageTestOrchestrator(steps *stepRecorder) *Orchestrator {
	return New(Deps{
		Steps: steps,
		Log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestExecStageFailsOnUnencodableOutput(t *testing.T) {
	steps := &stepRecorder{}
	o := stageTestOrchestrator(steps)

	// A channel cannot be JSON-encoded; a COMPLETED step with no output
	// would replay as a zero value, so the stage must fail instead.
	_, err := execStage(context.Background(), o, uuid.New(), uuid.New(), constants.StepChunkDocument, nil,
		func(ctx context.Context) (chan int, error) {
			return make(chan int), nil
		})
	if err == nil {
		t.Fatal("expected an error for unencodable stage output")
	}
	if steps.last.Status != constants.StepStatusFailed {
		t.Errorf("step status = %s, want FAILED", steps.last.Status)
	}
	if steps.last.Error == nil {
		t.Error("failed step must record the encode error")
	}
}

func TestExecStageToleratesUnencodableInput(t *testing.T) {
	steps := &stepRecorder{}
	o := stageTestOrchestrator(steps)

	out, err := execStage(context.Background(), o, uuid.New(), uuid.New(), constants.StepChunkDocument, make(chan int),
		func(ctx context.Context) (int, error) {
			return 42, nil
		})
	if err != nil {
		t.Fatalf("execStage: %v", err)
	}
	if out != 42 {
		t.Errorf("out = %d, want 42", out)
	}
	if steps.last.Status != constants.StepStatusCompleted {
		t.Errorf("step status = %s, want COMPLETED", steps.last.Status)
	}
	if steps.last.Input != nil {
		t.Errorf("unencodable input must be dropped, got %q", steps.last.Input)
	}
}
