package realtime

import (
	"context"
	"encoding/json"

	"lendhub/internal/pkg/config"
	"lendhub/internal/pkg/errs"

	"github.com/go-redis/redis/v8"
)

// RedisPublisher fans events out over redis pub/sub; websocket edge
// servers subscribe to the rental channels and push to clients.
type RedisPublisher struct {
	client *redis.Client
}

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{client: client}
}

func (p *RedisPublisher) Publish(ctx context.Context, channel string, event Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "failed to serialize event")
	}

	if err := p.client.Publish(ctx, channel, body).Err(); err != nil {
		return errs.Wrap(err, "failed to publish event")
	}
	return nil
}
