package service

import (
	"context"
	"strings"

	"clickgate/internal/config"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	bloomFilterKey   = "cg:bloom"
	bloomFallbackKey = "cg:bloom:fallback"
)

// RedisClient is the subset of the Redis client the Bloom service needs
type RedisClient interface {
	Do(ctx context.Context, args ...interface{}) *redis.Cmd
	SAdd(ctx context.Context, key string, members ...interface{}) *redis.IntCmd
	SIsMember(ctx context.Context, key string, member interface{}) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// BloomService pre-screens generated short codes. It uses the RedisBloom
// module when the server has it and an exact Redis set otherwise.
type BloomService struct {
	client    RedisClient
	capacity  int64
	errorRate float64
	native    bool
}

// NewBloomService creates a new Bloom Service and reserves the filter
func NewBloomService(client RedisClient, cfg *config.BloomConfig) *BloomService {
	bs := &BloomService{
		client:    client,
		capacity:  cfg.Capacity,
		errorRate: cfg.ErrorRate,
	}
	bs.reserve(context.Background())
	return bs
}

func (bs *BloomService) reserve(ctx context.Context) {
	err := bs.client.Do(ctx, "BF.RESERVE", bloomFilterKey, bs.errorRate, bs.capacity).Err()
	switch {
	case err == nil:
		bs.native = true
		log.Info().
			Int64("capacity", bs.capacity).
			Float64("error_rate", bs.errorRate).
			Msg("Bloom Filter created")
	case strings.Contains(err.Error(), "item exists"):
		bs.native = true
		log.Info().Msg("Bloom Filter already exists")
	default:
		log.Warn().Err(err).Msg("RedisBloom not available, using a Redis set for short code screening")
	}
}

// Add records a short code
func (bs *BloomService) Add(ctx context.Context, shortCode string) error {
	if bs.native {
		return bs.client.Do(ctx, "BF.ADD", bloomFilterKey, shortCode).Err()
	}
	return bs.client.SAdd(ctx, bloomFallbackKey, shortCode).Err()
}

// Exists reports whether a short code might have been added
func (bs *BloomService) Exists(ctx context.Context, shortCode string) (bool, error) {
	if bs.native {
		n, err := bs.client.Do(ctx, "BF.EXISTS", bloomFilterKey, shortCode).Int()
		if err != nil {
			return false, err
		}
		return n == 1, nil
	}
	return bs.client.SIsMember(ctx, bloomFallbackKey, shortCode).Result()
}

// GetCapacity returns the capacity of the Bloom Filter
func (bs *BloomService) GetCapacity() int64 {
	return bs.capacity
}

// IsAvailable reports whether the RedisBloom filter is in use
func (bs *BloomService) IsAvailable(ctx context.Context) bool {
	if !bs.native {
		return false
	}
	return bs.client.Do(ctx, "BF.INFO", bloomFilterKey).Err() == nil
}

// Reset drops every recorded code
func (bs *BloomService) Reset(ctx context.Context) error {
	return bs.client.Del(ctx, bloomFilterKey, bloomFallbackKey).Err()
}
