package storage

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache keeps per-day and all-time dish order counters in sorted sets,
// fed by the aggregation consumer and read by the analytics service.
type RedisCache struct {
	Client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{Client: client}
}

func (c *RedisCache) dailyKey(date string) string {
	return "analytics:daily:" + date
}

const allTimeKey = "analytics:alltime"

func (c *RedisCache) IncrDishCount(ctx context.Context, date string, dishID, quantity int) error {
	member := strconv.Itoa(dishID)
	key := c.dailyKey(date)
	if err := c.Client.ZIncrBy(ctx, key, float64(quantity), member).Err(); err != nil {
		return err
	}
	c.Client.Expire(ctx, key, 7*24*time.Hour)
	return c.Client.ZIncrBy(ctx, allTimeKey, float64(quantity), member).Err()
}

type DishCount struct {
	DishID int     `json:"dishId"`
	Name   string  `json:"name"`
	Count  float64 `json:"count"`
}

// TopDishes returns the highest-scored dishes for a day; an empty date reads
// the all-time set. Names are resolved by the caller.
func (c *RedisCache) TopDishes(ctx context.Context, date string, limit int) ([]DishCount, error) {
	key := allTimeKey
	if date != "" {
		key = c.dailyKey(date)
	}
	results, err := c.Client.ZRevRangeWithScores(ctx, key, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	var top []DishCount
	for _, result := range results {
		dishID, err := strconv.Atoi(result.Member.(string))
		if err != nil {
			continue
		}
		top = append(top, DishCount{DishID: dishID, Count: result.Score})
	}
	return top, nil
}

// RedisSessionStore maps a browsing session to the order ids it created.
type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{Client: client, TTL: ttl}
}

func (s *RedisSessionStore) sessionKey(sessionID string) string {
	return "session:" + sessionID
}

func (s *RedisSessionStore) Append(ctx context.Context, sessionID, orderID string) error {
	key := s.sessionKey(sessionID)
	if err := s.Client.RPush(ctx, key, orderID).Err(); err != nil {
		return err
	}
	if s.TTL > 0 {
		s.Client.Expire(ctx, key, s.TTL)
	}
	return nil
}

func (s *RedisSessionStore) IDs(ctx context.Context, sessionID string) ([]string, error) {
	ids, err := s.Client.LRange(ctx, s.sessionKey(sessionID), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	return ids, nil
}
