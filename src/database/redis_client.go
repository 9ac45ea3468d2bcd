package database

import (
	"context"
	"log"

	"Backend-EaseForm/src/config"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client
var RedisCtx = context.Background()
var RedisURI string

// InitRedis connects to Redis if REDIS_URI is configured. Redis is optional:
// without it refresh tokens are not persisted and the token blacklist is
// disabled, which is acceptable in development.
func InitRedis(cfg config.Config) {
	if cfg.RedisURI == "" {
		log.Println("⚠️ REDIS_URI not set. Running without Redis.")
		return
	}

	RedisURI = cfg.RedisURI
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisURI,
		Password: "",
		DB:       0,
	})
	if _, err := RedisClient.Ping(RedisCtx).Result(); err != nil {
		log.Println("⚠️ Failed to connect Redis: " + err.Error())
		RedisClient = nil
		RedisURI = ""
		return
	}
	log.Println("✅ Redis connected successfully")
}
