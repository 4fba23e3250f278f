package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mobilitree/backend/internal/domain/tariff"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisScheduleCache decorates a tariff.ScheduleRepository with a Redis
// read-through cache. Tariff schedules change rarely and are read on
// every invoicing call, so a short TTL removes most schedule lookups
// from the database without risking stale pricing for long.
//
// Cache failures degrade to the underlying repository; a Redis outage
// never fails an invoicing call.
type RedisScheduleCache struct {
	inner     tariff.ScheduleRepository
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
	logger    *zap.Logger
}

// NewRedisScheduleCache creates a schedule cache over an existing Redis client
func NewRedisScheduleCache(inner tariff.ScheduleRepository, client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisScheduleCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisScheduleCache{
		inner:     inner,
		client:    client,
		keyPrefix: "tariff:schedule:",
		ttl:       ttl,
		logger:    logger.Named("schedule-cache"),
	}
}

// NewRedisClient creates a Redis client and verifies connectivity
func NewRedisClient(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

// GetSchedule returns the cached schedule when present, otherwise loads it
// from the underlying repository and caches the result
func (c *RedisScheduleCache) GetSchedule(ctx context.Context, facilityID string) (*tariff.TariffSchedule, error) {
	key := c.keyPrefix + facilityID

	raw, err := c.client.Get(ctx, key).Result()
	switch {
	case err == nil:
		var schedule tariff.TariffSchedule
		if unmarshalErr := json.Unmarshal([]byte(raw), &schedule); unmarshalErr == nil {
			return &schedule, nil
		}
		// A corrupt entry falls through to the repository and is rewritten
		c.logger.Warn("corrupt cache entry",
			zap.String("facility_id", facilityID))
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("cache read failed",
			zap.String("facility_id", facilityID),
			zap.Error(err))
	}

	schedule, err := c.inner.GetSchedule(ctx, facilityID)
	if err != nil {
		return nil, err
	}

	if jsonBytes, marshalErr := json.Marshal(schedule); marshalErr == nil {
		if setErr := c.client.Set(ctx, key, jsonBytes, c.ttl).Err(); setErr != nil {
			c.logger.Warn("cache write failed",
				zap.String("facility_id", facilityID),
				zap.Error(setErr))
		}
	}
	return schedule, nil
}

// SaveSchedule writes through to the underlying repository and invalidates
// the cached entry
func (c *RedisScheduleCache) SaveSchedule(ctx context.Context, schedule *tariff.TariffSchedule) error {
	if err := c.inner.SaveSchedule(ctx, schedule); err != nil {
		return err
	}
	if err := c.client.Del(ctx, c.keyPrefix+schedule.FacilityID).Err(); err != nil {
		c.logger.Warn("cache invalidation failed",
			zap.String("facility_id", schedule.FacilityID),
			zap.Error(err))
	}
	return nil
}

// Close closes the Redis client
func (c *RedisScheduleCache) Close() error {
	return c.client.Close()
}

// Ensure RedisScheduleCache implements ScheduleRepository
var _ tariff.ScheduleRepository = (*RedisScheduleCache)(nil)
