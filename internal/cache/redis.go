package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/driventix/service-hotel/internal/application"
	"github.com/driventix/service-hotel/internal/platform/config"
)

// RedisCache caches eligibility-gated hotel reads. Entries expire on TTL;
// occupancy counts shown from cache can therefore lag the bookings table by
// up to one TTL.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache creates a redis-backed hotel cache.
func NewRedisCache(cfg config.RedisConfig, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
		ttl: ttl,
	}
}

// GetHotels returns the cached hotel list, or (nil, nil) on a miss.
func (c *RedisCache) GetHotels(ctx context.Context) ([]application.HotelDTO, error) {
	data, err := c.client.Get(ctx, hotelsKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read hotels from cache: %w", err)
	}

	var hotels []application.HotelDTO
	if err := json.Unmarshal(data, &hotels); err != nil {
		return nil, fmt.Errorf("failed to decode cached hotels: %w", err)
	}
	return hotels, nil
}

// SetHotels stores the hotel list with the configured TTL.
func (c *RedisCache) SetHotels(ctx context.Context, hotels []application.HotelDTO) error {
	payload, err := json.Marshal(hotels)
	if err != nil {
		return fmt.Errorf("failed to encode hotels for cache: %w", err)
	}
	return c.client.Set(ctx, hotelsKey(), payload, c.ttl).Err()
}

// GetHotel returns a cached hotel with rooms, or (nil, nil) on a miss.
func (c *RedisCache) GetHotel(ctx context.Context, hotelID int64) (*application.HotelWithRoomsDTO, error) {
	data, err := c.client.Get(ctx, hotelKey(hotelID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read hotel from cache: %w", err)
	}

	var hotel application.HotelWithRoomsDTO
	if err := json.Unmarshal(data, &hotel); err != nil {
		return nil, fmt.Errorf("failed to decode cached hotel: %w", err)
	}
	return &hotel, nil
}

// SetHotel stores a hotel with rooms with the configured TTL.
func (c *RedisCache) SetHotel(ctx context.Context, hotel *application.HotelWithRoomsDTO) error {
	payload, err := json.Marshal(hotel)
	if err != nil {
		return fmt.Errorf("failed to encode hotel for cache: %w", err)
	}
	return c.client.Set(ctx, hotelKey(hotel.ID), payload, c.ttl).Err()
}

// Close closes the underlying redis client.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

func hotelsKey() string {
	return "cache:hotels"
}

func hotelKey(id int64) string {
	return "cache:hotels:" + strconv.FormatInt(id, 10)
}
