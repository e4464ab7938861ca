package utils

import (
	"context"
	"strconv"
	"time"

	"github.com/Romain-GUILLEMOT/TaskyBack/config"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client
var Ctx = context.Background()

func InitRedis() {
	cfg := config.GetConfig()
	db, _ := strconv.Atoi(cfg.RedisDB)

	Redis = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisHost,
		Password: cfg.RedisPass,
		DB:       db,
	})

	if _, err := Redis.Ping(Ctx).Result(); err != nil {
		Fatal("Redis connection failed", "error", err)
	}

	Success("Redis connected successfully.")
}

func RedisSet(key, value string, ttl time.Duration) error {
	return Redis.Set(Ctx, key, value, ttl).Err()
}

func RedisGet(key string) (string, error) {
	return Redis.Get(Ctx, key).Result()
}

func RedisDel(key string) error {
	return Redis.Del(Ctx, key).Err()
}
