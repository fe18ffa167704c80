package di

import (
	"time"

	"airwave/config"
	"airwave/infras/otel"
	"airwave/internal/domains/player"

	"github.com/redis/go-redis/v9"
)

func providePlayerStore(client *redis.Client, cfg *config.Config, ot otel.Otel) player.Store {
	return player.NewStore(client, time.Duration(cfg.Player.SessionTTLSeconds)*time.Second, ot)
}
