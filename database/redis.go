package database

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/b4dow/uptask-backend/config"
)

// ConnectRedis opens the Redis connection used by the project cache. Redis
// is optional: when it is unreachable the cache degrades to pass-through,
// so this logs and returns nil instead of failing the process.
func ConnectRedis(cfg *config.Config) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("Failed to connect to Redis, caching disabled: %v", err)
		return nil
	}

	log.Println("Redis connection successfully opened.")
	return rdb
}
