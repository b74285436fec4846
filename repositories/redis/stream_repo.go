package redis

import (
	// Go Internal Packages
	"context"

	// Local Packages
	ack "tx-simulator/ack"
	models "tx-simulator/models"

	// External Packages
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// StreamAdder is the subset of the redis client the stream sink needs.
type StreamAdder interface {
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
}

// StreamRepository appends transactions to a redis stream. Consumers read it with XREAD
// or a consumer group.
type StreamRepository struct {
	client StreamAdder
	logger *zap.Logger
	stream string
	maxLen int64
}

// NewStreamRepository appends to stream, trimming it to roughly maxLen entries when maxLen > 0.
func NewStreamRepository(client StreamAdder, logger *zap.Logger, stream string, maxLen int64) *StreamRepository {
	return &StreamRepository{client: client, logger: logger, stream: stream, maxLen: maxLen}
}

// Publish stores the record under the "data" field. XADD replies synchronously, so the
// result is already resolved to the stream entry id.
func (r *StreamRepository) Publish(ctx context.Context, record models.Record) ack.Result {
	args := &redis.XAddArgs{
		Stream: r.stream,
		Values: map[string]any{"key": record.Key, "data": record.Value},
	}
	if r.maxLen > 0 {
		args.MaxLen = r.maxLen
		args.Approx = true
	}

	id, err := r.client.XAdd(ctx, args).Result()
	if err == nil {
		r.logger.Debug("appended to stream", zap.String("stream", r.stream), zap.String("id", id))
	}
	return ack.Resolved(id, err)
}
