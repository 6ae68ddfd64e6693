package worker

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/veridoc-ai/veridoc/internal/async"
	"github.com/veridoc-ai/veridoc/internal/common"
	"github.com/veridoc-ai/veridoc/internal/orchestrator"
)

// Pool consumes run jobs from the queue and drives the orchestrator, at most
// Concurrency runs in flight. Run failures are terminal states recorded on
// the run itself, so the pool never re-enqueues.
type Pool struct {
	queue       async.Queue
	orch        *orchestrator.Orchestrator
	metrics     *Metrics
	concurrency int
	log         *slog.Logger
}

func NewPool(queue async.Queue, orch *orchestrator.Orchestrator, metrics *Metrics, concurrency int, log *slog.Logger) *Pool {
	if concurrency <= 0 {
		concurrency = 1
	}
	if metrics == nil {
		metrics = DefaultMetrics()
	}
	if log == nil {
		log = slog.Default()
	}
	return &Pool{queue: queue, orch: orch, metrics: metrics, concurrency: concurrency, log: log}
}

// Run blocks until ctx is cancelled, then waits for in-flight runs to finish.
func (p *Pool) Run(ctx context.Context) error {
	p.log.Info("worker.pool.start", "concurrency", p.concurrency)
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(p.concurrency)

	for {
		job, err := p.queue.Dequeue(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				break
			}
			p.log.Error("worker.dequeue.failed", "err", err)
			select {
			case <-time.After(time.Second):
				continue
			case <-ctx.Done():
			}
			break
		}
		j := *job
		eg.Go(func() error {
			p.execute(gctx, j)
			return nil
		})
	}

	err := eg.Wait()
	p.log.Info("worker.pool.stopped")
	return err
}

func (p *Pool) execute(ctx context.Context, job async.Job) {
	if job.TraceID != "" {
		ctx = common.WithRequestID(ctx, job.TraceID)
	}
	p.metrics.RunsStarted.Inc()
	p.metrics.JobsInFlight.Inc()
	start := time.Now()
	defer func() {
		p.metrics.JobsInFlight.Dec()
		p.metrics.RunSeconds.Observe(time.Since(start).Seconds())
		p.queue.Done(context.WithoutCancel(ctx), job)
	}()

	if err := p.orch.Execute(ctx, job.RunID); err != nil {
		p.metrics.RunsFailed.Inc()
		p.log.Error("worker.run.failed", "run_id", job.RunID, "err", err)
		return
	}
	p.metrics.RunsCompleted.Inc()
}
