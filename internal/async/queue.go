package async

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Job is the smallest useful unit. Extend as needed later (priority, retry
// budget, etc).
type Job struct {
	RunID       uuid.UUID `json:"run_id"`
	Force       bool      `json:"force,omitempty"` // enqueue even if deduplicated
	SubmittedAt time.Time `json:"submitted_at"`
	TraceID     string    `json:"trace_id,omitempty"`
}

// ErrDuplicate reports that the run is already queued or in flight.
var ErrDuplicate = errors.New("run already enqueued")

// ErrRateLimited reports that the run-start rate limit is exhausted for the
// current window.
var ErrRateLimited = errors.New("run-start rate limit exceeded")

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	// Dequeue blocks until a job is available or ctx is done.
	Dequeue(ctx context.Context) (*Job, error)
	// Done releases the dedup claim after a worker finishes the job.
	Done(ctx context.Context, job Job)
	Close() error
}
