package cache

import (
	"context"

	"code_tutor/internal/platform/config"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var RDB *redis.Client

func ConnectRedis() {
	RDB = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDB,
	})

	if _, err := RDB.Ping(context.Background()).Result(); err != nil {
		logrus.Fatalf("Could not connect to Redis: %v", err)
	}
	logrus.WithField("addr", config.AppConfig.RedisAddr).Info("Connected to Redis")
}

func CloseRedis() {
	if RDB != nil {
		RDB.Close()
		logrus.Info("Redis connection closed")
	}
}
