package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"
	"quickpay-backend/config"
	redisclient "quickpay-backend/redis"
)

func InitRedis(ctx context.Context) {
	if config.Conf.Redis.Addr == "" {
		log.Info("redis address not set, pay policy cache disabled")
		return
	}
	client, err := redisclient.NewClient(ctx)
	if err != nil {
		log.WithError(err).Warn("redis unavailable, pay policy cache disabled")
		return
	}
	redisclient.Client = client
}
