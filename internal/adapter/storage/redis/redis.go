package redis

import (
	"context"
	"fmt"

	"bank-ledger/config"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// keyPrefix namespaces every key this service writes.
const keyPrefix = "ledger:"

// NewClient creates a Redis client and verifies connectivity.
func NewClient(ctx context.Context, cfg config.RedisConfig, log zerolog.Logger) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	log.Info().
		Str("addr", cfg.Addr()).
		Int("db", cfg.DB).
		Msg("Redis connection established")

	return client, nil
}

// Pinger reports Redis reachability on /health.
type Pinger struct {
	client goredis.Cmdable
}

// NewPinger wraps a client for health reporting.
func NewPinger(client goredis.Cmdable) *Pinger {
	return &Pinger{client: client}
}

// Name identifies the dependency.
func (p *Pinger) Name() string {
	return "redis"
}

// Ping expects a PONG reply.
func (p *Pinger) Ping(ctx context.Context) error {
	reply, err := p.client.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	if reply != "PONG" {
		return fmt.Errorf("redis ping: unexpected reply %q", reply)
	}
	return nil
}
