package bootstrap

import (
	"context"

	"lendhub/internal/pkg/config"
	"lendhub/internal/realtime"

	"github.com/go-redis/redis/v8"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedis,
		fx.Annotate(
			realtime.NewRedisPublisher,
			fx.As(new(realtime.Publisher)),
		),
	),
)

func NewRedis(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	client := realtime.NewRedisClient(cfg.Redis)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client
}
