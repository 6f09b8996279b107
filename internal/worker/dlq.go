package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Failed jobs land on a dead-letter list per source queue (dlq:{queue}).
// Storage calls get a single attempt, so the DLQ is the only replay path:
// an operator can LRANGE the list and re-LPUSH the payloads.
const dlqPrefix = "dlq:"

type dlqEntry struct {
	Queue    string          `json:"queue"`
	JobType  string          `json:"job_type"`
	Payload  json.RawMessage `json:"payload"`
	Reason   string          `json:"reason"`
	FailedAt time.Time       `json:"failed_at"`
}

// parkInDLQ moves a failed job to the dead-letter list. Errors here are only
// logged; losing the DLQ write must not take the worker down.
func parkInDLQ(ctx context.Context, rdb *redis.Client, queue string, job Job, reason string) {
	entry := dlqEntry{
		Queue:    queue,
		JobType:  job.Type,
		Payload:  job.Payload,
		Reason:   reason,
		FailedAt: time.Now().UTC(),
	}
	data, err := json.Marshal(entry)
	if err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("dlq: marshal")
		return
	}
	if err := rdb.LPush(ctx, dlqPrefix+queue, data).Err(); err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("dlq: push")
		return
	}
	log.Warn().
		Str("queue", queue).
		Str("job_type", job.Type).
		Str("reason", reason).
		Msg("job parked in dead letter queue")
}

// DLQLength reports the dead-letter backlog for a queue; the health handler
// and dashboards read it.
func DLQLength(ctx context.Context, rdb *redis.Client, queue string) (int64, error) {
	return rdb.LLen(ctx, dlqPrefix+queue).Result()
}
