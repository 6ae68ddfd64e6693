package async

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefixDedup = "dedup:"
	keyPrefixRate  = "rate:"

	dequeueTimeout = 5 * time.Second
)

// RedisConfig tunes the Redis-backed run queue.
type RedisConfig struct {
	// QueueKey is the list that holds pending jobs.
	QueueKey string
	// DedupTTL bounds how long an unfinished run blocks re-enqueueing.
	DedupTTL time.Duration
	// RateLimit caps run starts per RateWindow. Zero disables the limiter.
	RateLimit  int
	RateWindow time.Duration
}

// RedisQueue is the shared job transport between the API tier and workers.
// Enqueue deduplicates per run and enforces the global run-start rate limit.
type RedisQueue struct {
	client *redis.Client
	cfg    RedisConfig
	log    *slog.Logger
}

func NewRedisQueue(client *redis.Client, cfg RedisConfig, log *slog.Logger) *RedisQueue {
	if cfg.QueueKey == "" {
		cfg.QueueKey = "veridoc:runs"
	}
	if cfg.DedupTTL <= 0 {
		cfg.DedupTTL = time.Hour
	}
	if cfg.RateWindow <= 0 {
		cfg.RateWindow = time.Minute
	}
	if log == nil {
		log = slog.Default()
	}
	return &RedisQueue{client: client, cfg: cfg, log: log}
}

func (q *RedisQueue) dedupKey(job Job) string {
	return keyPrefixDedup + q.cfg.QueueKey + ":" + job.RunID.String()
}

func (q *RedisQueue) Enqueue(ctx context.Context, job Job) error {
	if job.SubmittedAt.IsZero() {
		job.SubmittedAt = time.Now()
	}

	if !job.Force {
		ok, err := q.client.SetNX(ctx, q.dedupKey(job), "1", q.cfg.DedupTTL).Result()
		if err != nil {
			return fmt.Errorf("queue dedup check: %w", err)
		}
		if !ok {
			return ErrDuplicate
		}
	}

	if q.cfg.RateLimit > 0 {
		window := time.Now().Unix() / int64(q.cfg.RateWindow/time.Second)
		rateKey := fmt.Sprintf("%s%s:%d", keyPrefixRate, q.cfg.QueueKey, window)
		count, err := q.client.Incr(ctx, rateKey).Result()
		if err != nil {
			return fmt.Errorf("queue rate counter: %w", err)
		}
		if count == 1 {
			q.client.Expire(ctx, rateKey, q.cfg.RateWindow)
		}
		if count > int64(q.cfg.RateLimit) {
			q.client.Del(ctx, q.dedupKey(job))
			return ErrRateLimited
		}
	}

	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal job: %w", err)
	}
	if err := q.client.LPush(ctx, q.cfg.QueueKey, data).Err(); err != nil {
		return fmt.Errorf("enqueue job: %w", err)
	}
	q.log.Info("queue.enqueued", "run_id", job.RunID, "trace_id", job.TraceID)
	return nil
}

func (q *RedisQueue) Dequeue(ctx context.Context) (*Job, error) {
	for {
		res, err := q.client.BRPop(ctx, dequeueTimeout, q.cfg.QueueKey).Result()
		if err == redis.Nil {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
				continue
			}
		}
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, fmt.Errorf("dequeue job: %w", err)
		}
		// BRPop returns [key, value].
		var job Job
		if err := json.Unmarshal([]byte(res[1]), &job); err != nil {
			q.log.Error("queue.malformed_job", "payload", res[1], "err", err)
			continue
		}
		return &job, nil
	}
}

func (q *RedisQueue) Done(ctx context.Context, job Job) {
	if err := q.client.Del(ctx, q.dedupKey(job)).Err(); err != nil {
		q.log.Error("queue.dedup_release_failed", "run_id", job.RunID, "err", err)
	}
}

func (q *RedisQueue) Close() error {
	return q.client.Close()
}

var _ Queue = (*RedisQueue)(nil)
