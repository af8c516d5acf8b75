// Package redis caches rendered public site payloads. Every helper is a
// no-op when Rdb is nil, so tests and redis-less deployments work unchanged.
package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var Rdb *redis.Client

const sitePrefix = "site:"

func InitRedis(redisAddress string, redisUsername string, redisPassword string) {
	Rdb = redis.NewClient(&redis.Options{
		Addr:     redisAddress,
		Username: redisUsername,
		Password: redisPassword,
		DB:       0,
	})
}

// CacheSitePage stores a rendered public payload under site:<key>.
func CacheSitePage(ctx context.Context, key string, payload []byte, ttl time.Duration) {
	if Rdb == nil {
		return
	}
	if err := Rdb.Set(ctx, sitePrefix+key, payload, ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("[redis] failed to cache site page")
	}
}

// GetSitePage returns the cached payload for site:<key>, if any.
func GetSitePage(ctx context.Context, key string) ([]byte, bool) {
	if Rdb == nil {
		return nil, false
	}
	payload, err := Rdb.Get(ctx, sitePrefix+key).Bytes()
	if err != nil {
		return nil, false
	}
	return payload, true
}

// InvalidateSitePages drops every cached site:* payload. Called after any
// admin mutation that can change what the public site shows.
func InvalidateSitePages(ctx context.Context) {
	if Rdb == nil {
		return
	}
	keys, err := Rdb.Keys(ctx, sitePrefix+"*").Result()
	if err != nil {
		log.Warn().Err(err).Msg("[redis] failed to list site cache keys")
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := Rdb.Del(ctx, keys...).Err(); err != nil {
		log.Warn().Err(err).Msg("[redis] failed to invalidate site cache")
		return
	}
	log.Debug().Int("keys", len(keys)).Msg("[redis] invalidated site cache")
}
