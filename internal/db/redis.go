package db

import (
	"context"
	"time"

	"fiscalblog/internal/config"
	"fiscalblog/internal/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient возвращает nil, если Redis не настроен или не отвечает:
// сайт продолжает работать без кэша.
func NewRedisClient(cfg *config.Config) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Log.Warn("Redis недоступен, продолжаем без кэша", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		_ = client.Close()
		return nil
	}
	logger.Log.Info("Redis подключён", zap.String("addr", cfg.RedisAddr))
	return client
}
