package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"clickgate/internal/config"
	"clickgate/internal/model"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	// LinkKeyPrefix prefixes cached link documents
	LinkKeyPrefix = "cg:link:"
	// LinkVersionKeyPrefix prefixes the per-link eviction counter
	LinkVersionKeyPrefix = "cg:link:ver:"
	// DefaultLinkCacheTTL is used when no TTL is configured
	DefaultLinkCacheTTL = time.Hour
	// linkVersionTTL outlives any cache entry written against the counter
	linkVersionTTL = 24 * time.Hour
)

// saveLinkScript writes the entry only while the eviction counter still
// matches the version the caller read before loading the link.
var saveLinkScript = redis.NewScript(`
local current = redis.call('GET', KEYS[2])
if (current or '0') ~= ARGV[1] then
	return 0
end
redis.call('SET', KEYS[1], ARGV[2], 'PX', ARGV[3])
return 1
`)

// RedisRepository caches Link documents in Redis
type RedisRepository struct {
	client *redis.Client
	cfg    *config.RedisConfig
}

// NewRedisRepository creates a new Redis repository
func NewRedisRepository(cfg *config.RedisConfig) *RedisRepository {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Error().Err(err).Msg("Failed to connect to Redis")
	} else {
		log.Info().Msg("Redis connected successfully")
	}

	return &RedisRepository{
		client: rdb,
		cfg:    cfg,
	}
}

// GetClient returns the Redis client
func (r *RedisRepository) GetClient() *redis.Client {
	return r.client
}

// LinkVersion returns the eviction counter for shortCode. Read it before
// loading the link from the store and pass it to SaveLink.
func (r *RedisRepository) LinkVersion(ctx context.Context, shortCode string) (int64, error) {
	v, err := r.client.Get(ctx, r.versionKey(shortCode)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}

// SaveLink caches a link for ttl unless DeleteLink ran since version was read.
// It reports whether the entry was written.
func (r *RedisRepository) SaveLink(ctx context.Context, link *model.Link, ttl time.Duration, version int64) (bool, error) {
	data, err := json.Marshal(link)
	if err != nil {
		return false, fmt.Errorf("failed to marshal link: %w", err)
	}
	if ttl <= 0 {
		ttl = DefaultLinkCacheTTL
	}

	keys := []string{r.linkKey(link.ShortCode), r.versionKey(link.ShortCode)}
	saved, err := saveLinkScript.Run(ctx, r.client, keys, version, data, ttl.Milliseconds()).Int()
	if err != nil {
		return false, err
	}
	return saved == 1, nil
}

// GetLink returns a cached link, or ErrNotFound on a miss
func (r *RedisRepository) GetLink(ctx context.Context, shortCode string) (*model.Link, error) {
	data, err := r.client.Get(ctx, r.linkKey(shortCode)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var link model.Link
	if err := json.Unmarshal(data, &link); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached link: %w", err)
	}
	return &link, nil
}

// DeleteLink evicts a cached link and bumps its eviction counter, so refills
// that loaded the link before the eviction are dropped.
func (r *RedisRepository) DeleteLink(ctx context.Context, shortCode string) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, r.linkKey(shortCode))
		pipe.Incr(ctx, r.versionKey(shortCode))
		pipe.Expire(ctx, r.versionKey(shortCode), linkVersionTTL)
		return nil
	})
	return err
}

// Close closes the Redis connection
func (r *RedisRepository) Close() error {
	return r.client.Close()
}

func (r *RedisRepository) linkKey(shortCode string) string {
	return LinkKeyPrefix + shortCode
}

func (r *RedisRepository) versionKey(shortCode string) string {
	return LinkVersionKeyPrefix + shortCode
}
