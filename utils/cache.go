package utils

import (
	"context"
	"log"
	"time"

	"vendora/config"

	"github.com/go-redis/redis/v8"
)

var (
	// AuthCacheClient is the dedicated client for auth token caching.
	AuthCacheClient *redis.Client
	// ViewsCacheClient is the dedicated client for the page-view dedup window.
	ViewsCacheClient *redis.Client
)

// InitAuthCache initializes the Redis client for auth token caching.
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := AuthCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Auth Cache): %v", err)
	}
}

// GetAuthCacheClient returns the Redis client for auth token caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}

// InitViewsCache initializes the Redis client for page-view dedup.
func InitViewsCache() {
	ViewsCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisViewsDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := ViewsCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Views Cache): %v", err)
	}
}

// GetViewsCacheClient returns the Redis client for page-view dedup.
func GetViewsCacheClient() *redis.Client {
	if ViewsCacheClient == nil {
		InitViewsCache()
	}
	return ViewsCacheClient
}
