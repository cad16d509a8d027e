package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/bekosher/bekosher-api/models"
	"github.com/bekosher/bekosher-api/services"
	"github.com/redis/go-redis/v9"
)

// MenuCache keeps the public category tree of each establishment in Redis.
// Availability is never stored here.
type MenuCache struct {
	Client *redis.Client
	TTL    time.Duration
}

var _ services.MenuCache = (*MenuCache)(nil)

func NewMenuCache(client *redis.Client, ttl time.Duration) *MenuCache {
	return &MenuCache{Client: client, TTL: ttl}
}

func (c *MenuCache) Key(establishmentID uint) string {
	return "menu:" + strconv.FormatUint(uint64(establishmentID), 10)
}

func (c *MenuCache) Get(ctx context.Context, establishmentID uint) ([]models.Category, bool, error) {
	payload, err := c.Client.Get(ctx, c.Key(establishmentID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var categories []models.Category
	if err := json.Unmarshal(payload, &categories); err != nil {
		return nil, false, err
	}
	return categories, true, nil
}

func (c *MenuCache) Set(ctx context.Context, establishmentID uint, categories []models.Category) error {
	payload, err := json.Marshal(categories)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, c.Key(establishmentID), payload, c.TTL).Err()
}

func (c *MenuCache) Invalidate(ctx context.Context, establishmentID uint) error {
	return c.Client.Del(ctx, c.Key(establishmentID)).Err()
}
