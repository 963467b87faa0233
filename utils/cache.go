// File: fixify/utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"fixify/config"

	"github.com/go-redis/redis/v8"
)

const AuthCachePrefix = "auth:"

// CatalogServicesKey caches the public list of active catalog services.
// Admin catalog writes drop it.
const CatalogServicesKey = "catalog:services"

var (
	// CacheClient is the generic cache client.
	CacheClient *redis.Client
	// AuthCacheClient is the dedicated client for authorization caching.
	AuthCacheClient *redis.Client
	// OTPCacheClient holds pending OTP hashes with a short TTL.
	OTPCacheClient *redis.Client
	// PresenceCacheClient tracks which chat users are currently online.
	PresenceCacheClient *redis.Client
	// LockCacheClient backs the per-slot booking locks.
	LockCacheClient *redis.Client
)

func newClient(db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (db %d): %v", db, err)
	}
	return client
}

// InitRedis initializes all Redis clients.
func InitRedis() {
	CacheClient = newClient(config.AppConfig.RedisCacheDB)
	AuthCacheClient = newClient(config.AppConfig.RedisAuthDB)
	OTPCacheClient = newClient(config.AppConfig.RedisOTPDB)
	PresenceCacheClient = newClient(config.AppConfig.RedisPresenceDB)
	LockCacheClient = newClient(config.AppConfig.RedisLockDB)
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		CacheClient = newClient(config.AppConfig.RedisCacheDB)
	}
	return CacheClient
}

// GetAuthCacheClient returns the Redis client for authorization caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		AuthCacheClient = newClient(config.AppConfig.RedisAuthDB)
	}
	return AuthCacheClient
}

// GetOTPCacheClient returns the Redis client for OTP storage.
func GetOTPCacheClient() *redis.Client {
	if OTPCacheClient == nil {
		OTPCacheClient = newClient(config.AppConfig.RedisOTPDB)
	}
	return OTPCacheClient
}

// GetPresenceCacheClient returns the Redis client for chat presence.
func GetPresenceCacheClient() *redis.Client {
	if PresenceCacheClient == nil {
		PresenceCacheClient = newClient(config.AppConfig.RedisPresenceDB)
	}
	return PresenceCacheClient
}

// GetLockCacheClient returns the Redis client backing slot locks.
func GetLockCacheClient() *redis.Client {
	if LockCacheClient == nil {
		LockCacheClient = newClient(config.AppConfig.RedisLockDB)
	}
	return LockCacheClient
}
