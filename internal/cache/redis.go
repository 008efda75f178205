package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Domenick1991/travelgo/config"
	"github.com/Domenick1991/travelgo/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client          *redis.Client
	destinationsTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, destinationsTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:          redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		destinationsTTL: destinationsTTL,
	}
}

func (c *RedisCache) GetDestinations(ctx context.Context) ([]domain.Destination, error) {
	data, err := c.client.Get(ctx, destinationsKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var destinations []domain.Destination
	if err := json.Unmarshal(data, &destinations); err != nil {
		return nil, err
	}
	return destinations, nil
}

func (c *RedisCache) SetDestinations(ctx context.Context, destinations []domain.Destination) error {
	payload, err := json.Marshal(destinations)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, destinationsKey(), payload, c.destinationsTTL).Err()
}

func destinationsKey() string {
	return "cache:destinations"
}
