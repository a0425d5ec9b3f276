package config

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

var Ctx = context.Background()

var RedisClient *redis.Client

// ConnectRedis kết nối đến Redis, trả lỗi nếu chưa cấu hình hoặc không kết nối được.
// Cache là best-effort: mọi chỗ gọi đều bỏ qua cache khi có lỗi.
func ConnectRedis() (*redis.Client, error) {
	addr := GetEnv("REDIS_ADDR", "")
	if addr == "" {
		return nil, fmt.Errorf("REDIS_ADDR chưa được cấu hình")
	}

	RDB := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: GetEnv("REDIS_USER", ""),
		Password: GetEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	if _, err := RDB.Ping(Ctx).Result(); err != nil {
		return nil, err
	}

	return RDB, nil
}
