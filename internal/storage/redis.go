package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/neexbeast/travel-companion/internal/account"
)

// DefaultRedisKey is the key holding the users document when none is configured.
const DefaultRedisKey = "travel:users"

// ConnectRedis parses redisURL, creates a client, and verifies connectivity with a ping.
func ConnectRedis(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	return client, nil
}

// RedisStore keeps the users mapping as one JSON document under a single key.
type RedisStore struct {
	client *redis.Client
	key    string
	log    *slog.Logger
}

// NewRedisStore constructs a RedisStore. An empty key selects DefaultRedisKey.
func NewRedisStore(client *redis.Client, key string, log *slog.Logger) *RedisStore {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisStore{client: client, key: key, log: log}
}

// Load reads the users document. A missing key yields an empty mapping; an
// unreadable payload is logged and also yields an empty mapping.
func (s *RedisStore) Load(ctx context.Context) (account.Users, error) {
	val, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return account.Users{}, nil
		}
		return nil, fmt.Errorf("redis get %s: %w", s.key, err)
	}

	users, err := decodeUsers(ctx, val)
	if err != nil {
		s.log.Warn("corrupted users document in redis, starting fresh", "key", s.key, "err", err)
		return account.Users{}, nil
	}
	return users, nil
}

// Save writes the users document without expiry.
func (s *RedisStore) Save(ctx context.Context, users account.Users) error {
	b, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("marshaling users: %w", err)
	}

	if err := s.client.Set(ctx, s.key, b, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", s.key, err)
	}

	return nil
}
