package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"lol-stats/internal/config"
	"lol-stats/internal/constants"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// AccountCache maps a riot id on a routing cluster to its puuid. Lookups never
// fail: misses and backend errors both report ok=false.
type AccountCache interface {
	GetPuuid(ctx context.Context, cluster, gameName, tagLine string) (string, bool)
	SetPuuid(ctx context.Context, cluster, gameName, tagLine, puuid string)
	Close() error
}

func New(cfg *config.Config, logger zerolog.Logger) AccountCache {
	if cfg.RedisAddr == "" {
		logger.Info().Msg("REDIS_ADDR not set, account cache disabled")
		return NoopAccountCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		Password:     cfg.RedisPassword,
		DB:           0,
		MaxRetries:   1,
		PoolSize:     20,
		MinIdleConns: 2,
		DialTimeout:  constants.CacheTimeout,
		ReadTimeout:  constants.CacheTimeout,
		WriteTimeout: constants.CacheTimeout,
	})

	logger.Info().Str("addr", cfg.RedisAddr).Msg("account cache enabled")
	return NewRedisAccountCache(client, constants.AccountCacheTTL, logger)
}

func AccountKey(cluster, gameName, tagLine string) string {
	return fmt.Sprintf("account:%s:%s:%s", cluster, strings.ToLower(gameName), strings.ToLower(tagLine))
}

type RedisAccountCache struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

func NewRedisAccountCache(client *redis.Client, ttl time.Duration, logger zerolog.Logger) *RedisAccountCache {
	return &RedisAccountCache{client: client, ttl: ttl, logger: logger}
}

func (c *RedisAccountCache) GetPuuid(ctx context.Context, cluster, gameName, tagLine string) (string, bool) {
	key := AccountKey(cluster, gameName, tagLine)
	val, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false
	}
	if err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("account cache read failed")
		return "", false
	}
	return val, val != ""
}

func (c *RedisAccountCache) SetPuuid(ctx context.Context, cluster, gameName, tagLine, puuid string) {
	key := AccountKey(cluster, gameName, tagLine)
	if err := c.client.Set(ctx, key, puuid, c.ttl).Err(); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("account cache write failed")
	}
}

func (c *RedisAccountCache) Close() error {
	return c.client.Close()
}

type NoopAccountCache struct{}

func (NoopAccountCache) GetPuuid(context.Context, string, string, string) (string, bool) {
	return "", false
}

func (NoopAccountCache) SetPuuid(context.Context, string, string, string, string) {}

func (NoopAccountCache) Close() error { return nil }
