package async

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestMemoryQueueFIFO(t *testing.T) {
	q := NewMemoryQueue(8)
	defer q.Close()

	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	for _, id := range ids {
		if err := q.Enqueue(context.Background(), Job{RunID: id, SubmittedAt: time.Now()}); err != nil {
			t.Fatalf("enqueue: %v", err)
		}
	}
	for i, want := range ids {
		job, err := q.Dequeue(context.Background())
		if err != nil {
			t.Fatalf("dequeue %d: %v", i, err)
		}
		if job.RunID != want {
			t.Errorf("dequeue %d = %s, want %s", i, job.RunID, want)
		}
	}
}

func TestMemoryQueueDequeueCancellation(t *testing.T) {
	q := NewMemoryQueue(1)
	defer q.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if _, err := q.Dequeue(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("dequeue on empty queue = %v, want deadline exceeded", err)
	}
}

func TestMemoryQueueEnqueueBlocksWhenFull(t *testing.T) {
	q := NewMemoryQueue(1)
	defer q.Close()

	if err := q.Enqueue(context.Background(), Job{RunID: uuid.New()}); err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := q.Enqueue(ctx, Job{RunID: uuid.New()}); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("enqueue past capacity = %v, want deadline exceeded", err)
	}
}

func TestMemoryQueueCloseIdempotent(t *testing.T) {
	q := NewMemoryQueue(1)
	if err := q.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := q.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
	if _, err := q.Dequeue(context.Background()); !errors.Is(err, context.Canceled) {
		t.Fatalf("dequeue after close = %v, want canceled", err)
	}
}
